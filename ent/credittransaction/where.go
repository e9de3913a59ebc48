// Code generated by ent, DO NOT EDIT.

package credittransaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stenobot-io/stenobot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldContainsFold(FieldID, id))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldOrganizationID, v))
}

// ParentTransactionID applies equality check predicate on the "parent_transaction_id" field. It's identical to ParentTransactionIDEQ.
func ParentTransactionID(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldParentTransactionID, v))
}

// CenticreditsBefore applies equality check predicate on the "centicredits_before" field. It's identical to CenticreditsBeforeEQ.
func CenticreditsBefore(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldCenticreditsBefore, v))
}

// CenticreditsAfter applies equality check predicate on the "centicredits_after" field. It's identical to CenticreditsAfterEQ.
func CenticreditsAfter(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldCenticreditsAfter, v))
}

// CenticreditsDelta applies equality check predicate on the "centicredits_delta" field. It's identical to CenticreditsDeltaEQ.
func CenticreditsDelta(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldCenticreditsDelta, v))
}

// BotID applies equality check predicate on the "bot_id" field. It's identical to BotIDEQ.
func BotID(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldBotID, v))
}

// StripePaymentIntentID applies equality check predicate on the "stripe_payment_intent_id" field. It's identical to StripePaymentIntentIDEQ.
func StripePaymentIntentID(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldStripePaymentIntentID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldDescription, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDGT applies the GT predicate on the "organization_id" field.
func OrganizationIDGT(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGT(FieldOrganizationID, v))
}

// OrganizationIDGTE applies the GTE predicate on the "organization_id" field.
func OrganizationIDGTE(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGTE(FieldOrganizationID, v))
}

// OrganizationIDLT applies the LT predicate on the "organization_id" field.
func OrganizationIDLT(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLT(FieldOrganizationID, v))
}

// OrganizationIDLTE applies the LTE predicate on the "organization_id" field.
func OrganizationIDLTE(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLTE(FieldOrganizationID, v))
}

// OrganizationIDContains applies the Contains predicate on the "organization_id" field.
func OrganizationIDContains(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldContains(FieldOrganizationID, v))
}

// OrganizationIDHasPrefix applies the HasPrefix predicate on the "organization_id" field.
func OrganizationIDHasPrefix(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldHasPrefix(FieldOrganizationID, v))
}

// OrganizationIDHasSuffix applies the HasSuffix predicate on the "organization_id" field.
func OrganizationIDHasSuffix(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldHasSuffix(FieldOrganizationID, v))
}

// OrganizationIDEqualFold applies the EqualFold predicate on the "organization_id" field.
func OrganizationIDEqualFold(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEqualFold(FieldOrganizationID, v))
}

// OrganizationIDContainsFold applies the ContainsFold predicate on the "organization_id" field.
func OrganizationIDContainsFold(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldContainsFold(FieldOrganizationID, v))
}

// ParentTransactionIDEQ applies the EQ predicate on the "parent_transaction_id" field.
func ParentTransactionIDEQ(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldParentTransactionID, v))
}

// ParentTransactionIDNEQ applies the NEQ predicate on the "parent_transaction_id" field.
func ParentTransactionIDNEQ(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNEQ(FieldParentTransactionID, v))
}

// ParentTransactionIDIn applies the In predicate on the "parent_transaction_id" field.
func ParentTransactionIDIn(vs ...string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldIn(FieldParentTransactionID, vs...))
}

// ParentTransactionIDNotIn applies the NotIn predicate on the "parent_transaction_id" field.
func ParentTransactionIDNotIn(vs ...string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNotIn(FieldParentTransactionID, vs...))
}

// ParentTransactionIDGT applies the GT predicate on the "parent_transaction_id" field.
func ParentTransactionIDGT(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGT(FieldParentTransactionID, v))
}

// ParentTransactionIDGTE applies the GTE predicate on the "parent_transaction_id" field.
func ParentTransactionIDGTE(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGTE(FieldParentTransactionID, v))
}

// ParentTransactionIDLT applies the LT predicate on the "parent_transaction_id" field.
func ParentTransactionIDLT(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLT(FieldParentTransactionID, v))
}

// ParentTransactionIDLTE applies the LTE predicate on the "parent_transaction_id" field.
func ParentTransactionIDLTE(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLTE(FieldParentTransactionID, v))
}

// ParentTransactionIDContains applies the Contains predicate on the "parent_transaction_id" field.
func ParentTransactionIDContains(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldContains(FieldParentTransactionID, v))
}

// ParentTransactionIDHasPrefix applies the HasPrefix predicate on the "parent_transaction_id" field.
func ParentTransactionIDHasPrefix(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldHasPrefix(FieldParentTransactionID, v))
}

// ParentTransactionIDHasSuffix applies the HasSuffix predicate on the "parent_transaction_id" field.
func ParentTransactionIDHasSuffix(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldHasSuffix(FieldParentTransactionID, v))
}

// ParentTransactionIDIsNil applies the IsNil predicate on the "parent_transaction_id" field.
func ParentTransactionIDIsNil() predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldIsNull(FieldParentTransactionID))
}

// ParentTransactionIDNotNil applies the NotNil predicate on the "parent_transaction_id" field.
func ParentTransactionIDNotNil() predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNotNull(FieldParentTransactionID))
}

// ParentTransactionIDEqualFold applies the EqualFold predicate on the "parent_transaction_id" field.
func ParentTransactionIDEqualFold(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEqualFold(FieldParentTransactionID, v))
}

// ParentTransactionIDContainsFold applies the ContainsFold predicate on the "parent_transaction_id" field.
func ParentTransactionIDContainsFold(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldContainsFold(FieldParentTransactionID, v))
}

// CenticreditsBeforeEQ applies the EQ predicate on the "centicredits_before" field.
func CenticreditsBeforeEQ(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldCenticreditsBefore, v))
}

// CenticreditsBeforeNEQ applies the NEQ predicate on the "centicredits_before" field.
func CenticreditsBeforeNEQ(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNEQ(FieldCenticreditsBefore, v))
}

// CenticreditsBeforeIn applies the In predicate on the "centicredits_before" field.
func CenticreditsBeforeIn(vs ...int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldIn(FieldCenticreditsBefore, vs...))
}

// CenticreditsBeforeNotIn applies the NotIn predicate on the "centicredits_before" field.
func CenticreditsBeforeNotIn(vs ...int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNotIn(FieldCenticreditsBefore, vs...))
}

// CenticreditsBeforeGT applies the GT predicate on the "centicredits_before" field.
func CenticreditsBeforeGT(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGT(FieldCenticreditsBefore, v))
}

// CenticreditsBeforeGTE applies the GTE predicate on the "centicredits_before" field.
func CenticreditsBeforeGTE(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGTE(FieldCenticreditsBefore, v))
}

// CenticreditsBeforeLT applies the LT predicate on the "centicredits_before" field.
func CenticreditsBeforeLT(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLT(FieldCenticreditsBefore, v))
}

// CenticreditsBeforeLTE applies the LTE predicate on the "centicredits_before" field.
func CenticreditsBeforeLTE(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLTE(FieldCenticreditsBefore, v))
}

// CenticreditsAfterEQ applies the EQ predicate on the "centicredits_after" field.
func CenticreditsAfterEQ(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldCenticreditsAfter, v))
}

// CenticreditsAfterNEQ applies the NEQ predicate on the "centicredits_after" field.
func CenticreditsAfterNEQ(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNEQ(FieldCenticreditsAfter, v))
}

// CenticreditsAfterIn applies the In predicate on the "centicredits_after" field.
func CenticreditsAfterIn(vs ...int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldIn(FieldCenticreditsAfter, vs...))
}

// CenticreditsAfterNotIn applies the NotIn predicate on the "centicredits_after" field.
func CenticreditsAfterNotIn(vs ...int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNotIn(FieldCenticreditsAfter, vs...))
}

// CenticreditsAfterGT applies the GT predicate on the "centicredits_after" field.
func CenticreditsAfterGT(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGT(FieldCenticreditsAfter, v))
}

// CenticreditsAfterGTE applies the GTE predicate on the "centicredits_after" field.
func CenticreditsAfterGTE(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGTE(FieldCenticreditsAfter, v))
}

// CenticreditsAfterLT applies the LT predicate on the "centicredits_after" field.
func CenticreditsAfterLT(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLT(FieldCenticreditsAfter, v))
}

// CenticreditsAfterLTE applies the LTE predicate on the "centicredits_after" field.
func CenticreditsAfterLTE(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLTE(FieldCenticreditsAfter, v))
}

// CenticreditsDeltaEQ applies the EQ predicate on the "centicredits_delta" field.
func CenticreditsDeltaEQ(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldCenticreditsDelta, v))
}

// CenticreditsDeltaNEQ applies the NEQ predicate on the "centicredits_delta" field.
func CenticreditsDeltaNEQ(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNEQ(FieldCenticreditsDelta, v))
}

// CenticreditsDeltaIn applies the In predicate on the "centicredits_delta" field.
func CenticreditsDeltaIn(vs ...int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldIn(FieldCenticreditsDelta, vs...))
}

// CenticreditsDeltaNotIn applies the NotIn predicate on the "centicredits_delta" field.
func CenticreditsDeltaNotIn(vs ...int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNotIn(FieldCenticreditsDelta, vs...))
}

// CenticreditsDeltaGT applies the GT predicate on the "centicredits_delta" field.
func CenticreditsDeltaGT(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGT(FieldCenticreditsDelta, v))
}

// CenticreditsDeltaGTE applies the GTE predicate on the "centicredits_delta" field.
func CenticreditsDeltaGTE(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGTE(FieldCenticreditsDelta, v))
}

// CenticreditsDeltaLT applies the LT predicate on the "centicredits_delta" field.
func CenticreditsDeltaLT(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLT(FieldCenticreditsDelta, v))
}

// CenticreditsDeltaLTE applies the LTE predicate on the "centicredits_delta" field.
func CenticreditsDeltaLTE(v int64) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLTE(FieldCenticreditsDelta, v))
}

// BotIDEQ applies the EQ predicate on the "bot_id" field.
func BotIDEQ(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldBotID, v))
}

// BotIDNEQ applies the NEQ predicate on the "bot_id" field.
func BotIDNEQ(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNEQ(FieldBotID, v))
}

// BotIDIn applies the In predicate on the "bot_id" field.
func BotIDIn(vs ...string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldIn(FieldBotID, vs...))
}

// BotIDNotIn applies the NotIn predicate on the "bot_id" field.
func BotIDNotIn(vs ...string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNotIn(FieldBotID, vs...))
}

// BotIDGT applies the GT predicate on the "bot_id" field.
func BotIDGT(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGT(FieldBotID, v))
}

// BotIDGTE applies the GTE predicate on the "bot_id" field.
func BotIDGTE(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGTE(FieldBotID, v))
}

// BotIDLT applies the LT predicate on the "bot_id" field.
func BotIDLT(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLT(FieldBotID, v))
}

// BotIDLTE applies the LTE predicate on the "bot_id" field.
func BotIDLTE(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLTE(FieldBotID, v))
}

// BotIDContains applies the Contains predicate on the "bot_id" field.
func BotIDContains(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldContains(FieldBotID, v))
}

// BotIDHasPrefix applies the HasPrefix predicate on the "bot_id" field.
func BotIDHasPrefix(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldHasPrefix(FieldBotID, v))
}

// BotIDHasSuffix applies the HasSuffix predicate on the "bot_id" field.
func BotIDHasSuffix(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldHasSuffix(FieldBotID, v))
}

// BotIDIsNil applies the IsNil predicate on the "bot_id" field.
func BotIDIsNil() predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldIsNull(FieldBotID))
}

// BotIDNotNil applies the NotNil predicate on the "bot_id" field.
func BotIDNotNil() predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNotNull(FieldBotID))
}

// BotIDEqualFold applies the EqualFold predicate on the "bot_id" field.
func BotIDEqualFold(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEqualFold(FieldBotID, v))
}

// BotIDContainsFold applies the ContainsFold predicate on the "bot_id" field.
func BotIDContainsFold(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldContainsFold(FieldBotID, v))
}

// StripePaymentIntentIDEQ applies the EQ predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDEQ(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDNEQ applies the NEQ predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDNEQ(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNEQ(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDIn applies the In predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDIn(vs ...string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldIn(FieldStripePaymentIntentID, vs...))
}

// StripePaymentIntentIDNotIn applies the NotIn predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDNotIn(vs ...string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNotIn(FieldStripePaymentIntentID, vs...))
}

// StripePaymentIntentIDGT applies the GT predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDGT(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGT(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDGTE applies the GTE predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDGTE(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGTE(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDLT applies the LT predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDLT(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLT(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDLTE applies the LTE predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDLTE(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLTE(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDContains applies the Contains predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDContains(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldContains(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDHasPrefix applies the HasPrefix predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDHasPrefix(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldHasPrefix(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDHasSuffix applies the HasSuffix predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDHasSuffix(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldHasSuffix(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDIsNil applies the IsNil predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDIsNil() predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldIsNull(FieldStripePaymentIntentID))
}

// StripePaymentIntentIDNotNil applies the NotNil predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDNotNil() predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNotNull(FieldStripePaymentIntentID))
}

// StripePaymentIntentIDEqualFold applies the EqualFold predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDEqualFold(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEqualFold(FieldStripePaymentIntentID, v))
}

// StripePaymentIntentIDContainsFold applies the ContainsFold predicate on the "stripe_payment_intent_id" field.
func StripePaymentIntentIDContainsFold(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldContainsFold(FieldStripePaymentIntentID, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldContainsFold(FieldDescription, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.FieldLTE(FieldCreatedAt, v))
}

// HasOrganization applies the HasEdge predicate on the "organization" edge.
func HasOrganization() predicate.CreditTransaction {
	return predicate.CreditTransaction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OrganizationTable, OrganizationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrganizationWith applies the HasEdge predicate on the "organization" edge with a given conditions (other predicates).
func HasOrganizationWith(preds ...predicate.Organization) predicate.CreditTransaction {
	return predicate.CreditTransaction(func(s *sql.Selector) {
		step := newOrganizationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.CreditTransaction {
	return predicate.CreditTransaction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.CreditTransaction) predicate.CreditTransaction {
	return predicate.CreditTransaction(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChildren applies the HasEdge predicate on the "children" edge.
func HasChildren() predicate.CreditTransaction {
	return predicate.CreditTransaction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChildrenWith applies the HasEdge predicate on the "children" edge with a given conditions (other predicates).
func HasChildrenWith(preds ...predicate.CreditTransaction) predicate.CreditTransaction {
	return predicate.CreditTransaction(func(s *sql.Selector) {
		step := newChildrenStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CreditTransaction) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CreditTransaction) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CreditTransaction) predicate.CreditTransaction {
	return predicate.CreditTransaction(sql.NotPredicates(p))
}

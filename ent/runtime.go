// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/stenobot-io/stenobot/ent/apikey"
	"github.com/stenobot-io/stenobot/ent/bot"
	"github.com/stenobot-io/stenobot/ent/botevent"
	"github.com/stenobot-io/stenobot/ent/chatmessage"
	"github.com/stenobot-io/stenobot/ent/credittransaction"
	"github.com/stenobot-io/stenobot/ent/organization"
	"github.com/stenobot-io/stenobot/ent/participant"
	"github.com/stenobot-io/stenobot/ent/project"
	"github.com/stenobot-io/stenobot/ent/projectcredential"
	"github.com/stenobot-io/stenobot/ent/recording"
	"github.com/stenobot-io/stenobot/ent/schema"
	"github.com/stenobot-io/stenobot/ent/utterance"
	"github.com/stenobot-io/stenobot/ent/webhookdeliveryattempt"
	"github.com/stenobot-io/stenobot/ent/webhooksubscription"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	apikeyFields := schema.APIKey{}.Fields()
	_ = apikeyFields
	// apikeyDescCreatedAt is the schema descriptor for created_at field.
	apikeyDescCreatedAt := apikeyFields[4].Descriptor()
	// apikey.DefaultCreatedAt holds the default value on creation for the created_at field.
	apikey.DefaultCreatedAt = apikeyDescCreatedAt.Default.(func() time.Time)
	botFields := schema.Bot{}.Fields()
	_ = botFields
	// botDescName is the schema descriptor for name field.
	botDescName := botFields[2].Descriptor()
	// bot.DefaultName holds the default value on creation for the name field.
	bot.DefaultName = botDescName.Default.(string)
	// botDescState is the schema descriptor for state field.
	botDescState := botFields[4].Descriptor()
	// bot.DefaultState holds the default value on creation for the state field.
	bot.DefaultState = lifecycle.BotState(botDescState.Default.(int))
	// botDescVersion is the schema descriptor for version field.
	botDescVersion := botFields[12].Descriptor()
	// bot.DefaultVersion holds the default value on creation for the version field.
	bot.DefaultVersion = botDescVersion.Default.(int64)
	// botDescCreatedAt is the schema descriptor for created_at field.
	botDescCreatedAt := botFields[13].Descriptor()
	// bot.DefaultCreatedAt holds the default value on creation for the created_at field.
	bot.DefaultCreatedAt = botDescCreatedAt.Default.(func() time.Time)
	// botDescUpdatedAt is the schema descriptor for updated_at field.
	botDescUpdatedAt := botFields[14].Descriptor()
	// bot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bot.DefaultUpdatedAt = botDescUpdatedAt.Default.(func() time.Time)
	// bot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bot.UpdateDefaultUpdatedAt = botDescUpdatedAt.UpdateDefault.(func() time.Time)
	boteventFields := schema.BotEvent{}.Fields()
	_ = boteventFields
	// boteventDescCreatedAt is the schema descriptor for created_at field.
	boteventDescCreatedAt := boteventFields[7].Descriptor()
	// botevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	botevent.DefaultCreatedAt = boteventDescCreatedAt.Default.(func() time.Time)
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[5].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	credittransactionFields := schema.CreditTransaction{}.Fields()
	_ = credittransactionFields
	// credittransactionDescCreatedAt is the schema descriptor for created_at field.
	credittransactionDescCreatedAt := credittransactionFields[9].Descriptor()
	// credittransaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	credittransaction.DefaultCreatedAt = credittransactionDescCreatedAt.Default.(func() time.Time)
	organizationFields := schema.Organization{}.Fields()
	_ = organizationFields
	// organizationDescCenticredits is the schema descriptor for centicredits field.
	organizationDescCenticredits := organizationFields[2].Descriptor()
	// organization.DefaultCenticredits holds the default value on creation for the centicredits field.
	organization.DefaultCenticredits = organizationDescCenticredits.Default.(int64)
	// organizationDescCreatedAt is the schema descriptor for created_at field.
	organizationDescCreatedAt := organizationFields[3].Descriptor()
	// organization.DefaultCreatedAt holds the default value on creation for the created_at field.
	organization.DefaultCreatedAt = organizationDescCreatedAt.Default.(func() time.Time)
	participantFields := schema.Participant{}.Fields()
	_ = participantFields
	// participantDescIsHost is the schema descriptor for is_host field.
	participantDescIsHost := participantFields[4].Descriptor()
	// participant.DefaultIsHost holds the default value on creation for the is_host field.
	participant.DefaultIsHost = participantDescIsHost.Default.(bool)
	// participantDescCreatedAt is the schema descriptor for created_at field.
	participantDescCreatedAt := participantFields[5].Descriptor()
	// participant.DefaultCreatedAt holds the default value on creation for the created_at field.
	participant.DefaultCreatedAt = participantDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[4].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	projectcredentialFields := schema.ProjectCredential{}.Fields()
	_ = projectcredentialFields
	// projectcredentialDescCreatedAt is the schema descriptor for created_at field.
	projectcredentialDescCreatedAt := projectcredentialFields[4].Descriptor()
	// projectcredential.DefaultCreatedAt holds the default value on creation for the created_at field.
	projectcredential.DefaultCreatedAt = projectcredentialDescCreatedAt.Default.(func() time.Time)
	// projectcredentialDescUpdatedAt is the schema descriptor for updated_at field.
	projectcredentialDescUpdatedAt := projectcredentialFields[5].Descriptor()
	// projectcredential.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	projectcredential.DefaultUpdatedAt = projectcredentialDescUpdatedAt.Default.(func() time.Time)
	// projectcredential.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	projectcredential.UpdateDefaultUpdatedAt = projectcredentialDescUpdatedAt.UpdateDefault.(func() time.Time)
	recordingFields := schema.Recording{}.Fields()
	_ = recordingFields
	// recordingDescVersion is the schema descriptor for version field.
	recordingDescVersion := recordingFields[10].Descriptor()
	// recording.DefaultVersion holds the default value on creation for the version field.
	recording.DefaultVersion = recordingDescVersion.Default.(int64)
	// recordingDescCreatedAt is the schema descriptor for created_at field.
	recordingDescCreatedAt := recordingFields[11].Descriptor()
	// recording.DefaultCreatedAt holds the default value on creation for the created_at field.
	recording.DefaultCreatedAt = recordingDescCreatedAt.Default.(func() time.Time)
	utteranceFields := schema.Utterance{}.Fields()
	_ = utteranceFields
	// utteranceDescCreatedAt is the schema descriptor for created_at field.
	utteranceDescCreatedAt := utteranceFields[7].Descriptor()
	// utterance.DefaultCreatedAt holds the default value on creation for the created_at field.
	utterance.DefaultCreatedAt = utteranceDescCreatedAt.Default.(func() time.Time)
	// utteranceDescUpdatedAt is the schema descriptor for updated_at field.
	utteranceDescUpdatedAt := utteranceFields[8].Descriptor()
	// utterance.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	utterance.DefaultUpdatedAt = utteranceDescUpdatedAt.Default.(func() time.Time)
	// utterance.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	utterance.UpdateDefaultUpdatedAt = utteranceDescUpdatedAt.UpdateDefault.(func() time.Time)
	webhookdeliveryattemptFields := schema.WebhookDeliveryAttempt{}.Fields()
	_ = webhookdeliveryattemptFields
	// webhookdeliveryattemptDescAttemptCount is the schema descriptor for attempt_count field.
	webhookdeliveryattemptDescAttemptCount := webhookdeliveryattemptFields[9].Descriptor()
	// webhookdeliveryattempt.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	webhookdeliveryattempt.DefaultAttemptCount = webhookdeliveryattemptDescAttemptCount.Default.(int)
	// webhookdeliveryattemptDescCreatedAt is the schema descriptor for created_at field.
	webhookdeliveryattemptDescCreatedAt := webhookdeliveryattemptFields[14].Descriptor()
	// webhookdeliveryattempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookdeliveryattempt.DefaultCreatedAt = webhookdeliveryattemptDescCreatedAt.Default.(func() time.Time)
	webhooksubscriptionFields := schema.WebhookSubscription{}.Fields()
	_ = webhooksubscriptionFields
	// webhooksubscriptionDescIsActive is the schema descriptor for is_active field.
	webhooksubscriptionDescIsActive := webhooksubscriptionFields[5].Descriptor()
	// webhooksubscription.DefaultIsActive holds the default value on creation for the is_active field.
	webhooksubscription.DefaultIsActive = webhooksubscriptionDescIsActive.Default.(bool)
	// webhooksubscriptionDescCreatedAt is the schema descriptor for created_at field.
	webhooksubscriptionDescCreatedAt := webhooksubscriptionFields[6].Descriptor()
	// webhooksubscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhooksubscription.DefaultCreatedAt = webhooksubscriptionDescCreatedAt.Default.(func() time.Time)
}

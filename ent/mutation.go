// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stenobot-io/stenobot/ent/apikey"
	"github.com/stenobot-io/stenobot/ent/bot"
	"github.com/stenobot-io/stenobot/ent/botevent"
	"github.com/stenobot-io/stenobot/ent/chatmessage"
	"github.com/stenobot-io/stenobot/ent/credittransaction"
	"github.com/stenobot-io/stenobot/ent/organization"
	"github.com/stenobot-io/stenobot/ent/participant"
	"github.com/stenobot-io/stenobot/ent/predicate"
	"github.com/stenobot-io/stenobot/ent/project"
	"github.com/stenobot-io/stenobot/ent/projectcredential"
	"github.com/stenobot-io/stenobot/ent/recording"
	"github.com/stenobot-io/stenobot/ent/utterance"
	"github.com/stenobot-io/stenobot/ent/webhookdeliveryattempt"
	"github.com/stenobot-io/stenobot/ent/webhooksubscription"
	"github.com/stenobot-io/stenobot/pkg/lifecycle"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAPIKey                 = "APIKey"
	TypeBot                    = "Bot"
	TypeBotEvent               = "BotEvent"
	TypeChatMessage            = "ChatMessage"
	TypeCreditTransaction      = "CreditTransaction"
	TypeOrganization           = "Organization"
	TypeParticipant            = "Participant"
	TypeProject                = "Project"
	TypeProjectCredential      = "ProjectCredential"
	TypeRecording              = "Recording"
	TypeUtterance              = "Utterance"
	TypeWebhookDeliveryAttempt = "WebhookDeliveryAttempt"
	TypeWebhookSubscription    = "WebhookSubscription"
)

// APIKeyMutation represents an operation that mutates the APIKey nodes in the graph.
type APIKeyMutation struct {
	config
	op             Op
	typ            string
	id             *string
	name           *string
	token_digest   *string
	created_at     *time.Time
	disabled_at    *time.Time
	clearedFields  map[string]struct{}
	project        *string
	clearedproject bool
	done           bool
	oldValue       func(context.Context) (*APIKey, error)
	predicates     []predicate.APIKey
}

var _ ent.Mutation = (*APIKeyMutation)(nil)

// apikeyOption allows management of the mutation configuration using functional options.
type apikeyOption func(*APIKeyMutation)

// newAPIKeyMutation creates new mutation for the APIKey entity.
func newAPIKeyMutation(c config, op Op, opts ...apikeyOption) *APIKeyMutation {
	m := &APIKeyMutation{
		config:        c,
		op:            op,
		typ:           TypeAPIKey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAPIKeyID sets the ID field of the mutation.
func withAPIKeyID(id string) apikeyOption {
	return func(m *APIKeyMutation) {
		var (
			err   error
			once  sync.Once
			value *APIKey
		)
		m.oldValue = func(ctx context.Context) (*APIKey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().APIKey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAPIKey sets the old APIKey of the mutation.
func withAPIKey(node *APIKey) apikeyOption {
	return func(m *APIKeyMutation) {
		m.oldValue = func(context.Context) (*APIKey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m APIKeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m APIKeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of APIKey entities.
func (m *APIKeyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *APIKeyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *APIKeyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().APIKey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *APIKeyMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *APIKeyMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *APIKeyMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *APIKeyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *APIKeyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *APIKeyMutation) ResetName() {
	m.name = nil
}

// SetTokenDigest sets the "token_digest" field.
func (m *APIKeyMutation) SetTokenDigest(s string) {
	m.token_digest = &s
}

// TokenDigest returns the value of the "token_digest" field in the mutation.
func (m *APIKeyMutation) TokenDigest() (r string, exists bool) {
	v := m.token_digest
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenDigest returns the old "token_digest" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldTokenDigest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenDigest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenDigest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenDigest: %w", err)
	}
	return oldValue.TokenDigest, nil
}

// ResetTokenDigest resets all changes to the "token_digest" field.
func (m *APIKeyMutation) ResetTokenDigest() {
	m.token_digest = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *APIKeyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *APIKeyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *APIKeyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDisabledAt sets the "disabled_at" field.
func (m *APIKeyMutation) SetDisabledAt(t time.Time) {
	m.disabled_at = &t
}

// DisabledAt returns the value of the "disabled_at" field in the mutation.
func (m *APIKeyMutation) DisabledAt() (r time.Time, exists bool) {
	v := m.disabled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDisabledAt returns the old "disabled_at" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldDisabledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisabledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisabledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisabledAt: %w", err)
	}
	return oldValue.DisabledAt, nil
}

// ClearDisabledAt clears the value of the "disabled_at" field.
func (m *APIKeyMutation) ClearDisabledAt() {
	m.disabled_at = nil
	m.clearedFields[apikey.FieldDisabledAt] = struct{}{}
}

// DisabledAtCleared returns if the "disabled_at" field was cleared in this mutation.
func (m *APIKeyMutation) DisabledAtCleared() bool {
	_, ok := m.clearedFields[apikey.FieldDisabledAt]
	return ok
}

// ResetDisabledAt resets all changes to the "disabled_at" field.
func (m *APIKeyMutation) ResetDisabledAt() {
	m.disabled_at = nil
	delete(m.clearedFields, apikey.FieldDisabledAt)
}

// ClearProject clears the "project" edge to the Project entity.
func (m *APIKeyMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[apikey.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *APIKeyMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *APIKeyMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *APIKeyMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the APIKeyMutation builder.
func (m *APIKeyMutation) Where(ps ...predicate.APIKey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the APIKeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *APIKeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.APIKey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *APIKeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *APIKeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (APIKey).
func (m *APIKeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *APIKeyMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.project != nil {
		fields = append(fields, apikey.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, apikey.FieldName)
	}
	if m.token_digest != nil {
		fields = append(fields, apikey.FieldTokenDigest)
	}
	if m.created_at != nil {
		fields = append(fields, apikey.FieldCreatedAt)
	}
	if m.disabled_at != nil {
		fields = append(fields, apikey.FieldDisabledAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *APIKeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case apikey.FieldProjectID:
		return m.ProjectID()
	case apikey.FieldName:
		return m.Name()
	case apikey.FieldTokenDigest:
		return m.TokenDigest()
	case apikey.FieldCreatedAt:
		return m.CreatedAt()
	case apikey.FieldDisabledAt:
		return m.DisabledAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *APIKeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case apikey.FieldProjectID:
		return m.OldProjectID(ctx)
	case apikey.FieldName:
		return m.OldName(ctx)
	case apikey.FieldTokenDigest:
		return m.OldTokenDigest(ctx)
	case apikey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case apikey.FieldDisabledAt:
		return m.OldDisabledAt(ctx)
	}
	return nil, fmt.Errorf("unknown APIKey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIKeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case apikey.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case apikey.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case apikey.FieldTokenDigest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenDigest(v)
		return nil
	case apikey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case apikey.FieldDisabledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisabledAt(v)
		return nil
	}
	return fmt.Errorf("unknown APIKey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *APIKeyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *APIKeyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIKeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown APIKey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *APIKeyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(apikey.FieldDisabledAt) {
		fields = append(fields, apikey.FieldDisabledAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *APIKeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *APIKeyMutation) ClearField(name string) error {
	switch name {
	case apikey.FieldDisabledAt:
		m.ClearDisabledAt()
		return nil
	}
	return fmt.Errorf("unknown APIKey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *APIKeyMutation) ResetField(name string) error {
	switch name {
	case apikey.FieldProjectID:
		m.ResetProjectID()
		return nil
	case apikey.FieldName:
		m.ResetName()
		return nil
	case apikey.FieldTokenDigest:
		m.ResetTokenDigest()
		return nil
	case apikey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case apikey.FieldDisabledAt:
		m.ResetDisabledAt()
		return nil
	}
	return fmt.Errorf("unknown APIKey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *APIKeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, apikey.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *APIKeyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case apikey.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *APIKeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *APIKeyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *APIKeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, apikey.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *APIKeyMutation) EdgeCleared(name string) bool {
	switch name {
	case apikey.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *APIKeyMutation) ClearEdge(name string) error {
	switch name {
	case apikey.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown APIKey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *APIKeyMutation) ResetEdge(name string) error {
	switch name {
	case apikey.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown APIKey edge %s", name)
}

// BotMutation represents an operation that mutates the Bot nodes in the graph.
type BotMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	name                         *string
	meeting_url                  *string
	state                        *lifecycle.BotState
	addstate                     *lifecycle.BotState
	session_kind                 *lifecycle.SessionKind
	settings                     *map[string]interface{}
	metadata                     *map[string]interface{}
	first_heartbeat_timestamp    *int64
	addfirst_heartbeat_timestamp *int64
	last_heartbeat_timestamp     *int64
	addlast_heartbeat_timestamp  *int64
	join_at                      *time.Time
	deduplication_key            *string
	version                      *int64
	addversion                   *int64
	created_at                   *time.Time
	updated_at                   *time.Time
	clearedFields                map[string]struct{}
	project                      *string
	clearedproject               bool
	events                       map[string]struct{}
	removedevents                map[string]struct{}
	clearedevents                bool
	recordings                   map[string]struct{}
	removedrecordings            map[string]struct{}
	clearedrecordings            bool
	participants                 map[string]struct{}
	removedparticipants          map[string]struct{}
	clearedparticipants          bool
	chat_messages                map[string]struct{}
	removedchat_messages         map[string]struct{}
	clearedchat_messages         bool
	done                         bool
	oldValue                     func(context.Context) (*Bot, error)
	predicates                   []predicate.Bot
}

var _ ent.Mutation = (*BotMutation)(nil)

// botOption allows management of the mutation configuration using functional options.
type botOption func(*BotMutation)

// newBotMutation creates new mutation for the Bot entity.
func newBotMutation(c config, op Op, opts ...botOption) *BotMutation {
	m := &BotMutation{
		config:        c,
		op:            op,
		typ:           TypeBot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBotID sets the ID field of the mutation.
func withBotID(id string) botOption {
	return func(m *BotMutation) {
		var (
			err   error
			once  sync.Once
			value *Bot
		)
		m.oldValue = func(ctx context.Context) (*Bot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Bot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBot sets the old Bot of the mutation.
func withBot(node *Bot) botOption {
	return func(m *BotMutation) {
		m.oldValue = func(context.Context) (*Bot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Bot entities.
func (m *BotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Bot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *BotMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *BotMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *BotMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *BotMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BotMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BotMutation) ResetName() {
	m.name = nil
}

// SetMeetingURL sets the "meeting_url" field.
func (m *BotMutation) SetMeetingURL(s string) {
	m.meeting_url = &s
}

// MeetingURL returns the value of the "meeting_url" field in the mutation.
func (m *BotMutation) MeetingURL() (r string, exists bool) {
	v := m.meeting_url
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingURL returns the old "meeting_url" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldMeetingURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingURL: %w", err)
	}
	return oldValue.MeetingURL, nil
}

// ResetMeetingURL resets all changes to the "meeting_url" field.
func (m *BotMutation) ResetMeetingURL() {
	m.meeting_url = nil
}

// SetState sets the "state" field.
func (m *BotMutation) SetState(ls lifecycle.BotState) {
	m.state = &ls
	m.addstate = nil
}

// State returns the value of the "state" field in the mutation.
func (m *BotMutation) State() (r lifecycle.BotState, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldState(ctx context.Context) (v lifecycle.BotState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// AddState adds ls to the "state" field.
func (m *BotMutation) AddState(ls lifecycle.BotState) {
	if m.addstate != nil {
		*m.addstate += ls
	} else {
		m.addstate = &ls
	}
}

// AddedState returns the value that was added to the "state" field in this mutation.
func (m *BotMutation) AddedState() (r lifecycle.BotState, exists bool) {
	v := m.addstate
	if v == nil {
		return
	}
	return *v, true
}

// ResetState resets all changes to the "state" field.
func (m *BotMutation) ResetState() {
	m.state = nil
	m.addstate = nil
}

// SetSessionKind sets the "session_kind" field.
func (m *BotMutation) SetSessionKind(lk lifecycle.SessionKind) {
	m.session_kind = &lk
}

// SessionKind returns the value of the "session_kind" field in the mutation.
func (m *BotMutation) SessionKind() (r lifecycle.SessionKind, exists bool) {
	v := m.session_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionKind returns the old "session_kind" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldSessionKind(ctx context.Context) (v lifecycle.SessionKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionKind: %w", err)
	}
	return oldValue.SessionKind, nil
}

// ResetSessionKind resets all changes to the "session_kind" field.
func (m *BotMutation) ResetSessionKind() {
	m.session_kind = nil
}

// SetSettings sets the "settings" field.
func (m *BotMutation) SetSettings(value map[string]interface{}) {
	m.settings = &value
}

// Settings returns the value of the "settings" field in the mutation.
func (m *BotMutation) Settings() (r map[string]interface{}, exists bool) {
	v := m.settings
	if v == nil {
		return
	}
	return *v, true
}

// OldSettings returns the old "settings" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldSettings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSettings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSettings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSettings: %w", err)
	}
	return oldValue.Settings, nil
}

// ClearSettings clears the value of the "settings" field.
func (m *BotMutation) ClearSettings() {
	m.settings = nil
	m.clearedFields[bot.FieldSettings] = struct{}{}
}

// SettingsCleared returns if the "settings" field was cleared in this mutation.
func (m *BotMutation) SettingsCleared() bool {
	_, ok := m.clearedFields[bot.FieldSettings]
	return ok
}

// ResetSettings resets all changes to the "settings" field.
func (m *BotMutation) ResetSettings() {
	m.settings = nil
	delete(m.clearedFields, bot.FieldSettings)
}

// SetMetadata sets the "metadata" field.
func (m *BotMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *BotMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *BotMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[bot.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *BotMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[bot.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *BotMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, bot.FieldMetadata)
}

// SetFirstHeartbeatTimestamp sets the "first_heartbeat_timestamp" field.
func (m *BotMutation) SetFirstHeartbeatTimestamp(i int64) {
	m.first_heartbeat_timestamp = &i
	m.addfirst_heartbeat_timestamp = nil
}

// FirstHeartbeatTimestamp returns the value of the "first_heartbeat_timestamp" field in the mutation.
func (m *BotMutation) FirstHeartbeatTimestamp() (r int64, exists bool) {
	v := m.first_heartbeat_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstHeartbeatTimestamp returns the old "first_heartbeat_timestamp" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldFirstHeartbeatTimestamp(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstHeartbeatTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstHeartbeatTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstHeartbeatTimestamp: %w", err)
	}
	return oldValue.FirstHeartbeatTimestamp, nil
}

// AddFirstHeartbeatTimestamp adds i to the "first_heartbeat_timestamp" field.
func (m *BotMutation) AddFirstHeartbeatTimestamp(i int64) {
	if m.addfirst_heartbeat_timestamp != nil {
		*m.addfirst_heartbeat_timestamp += i
	} else {
		m.addfirst_heartbeat_timestamp = &i
	}
}

// AddedFirstHeartbeatTimestamp returns the value that was added to the "first_heartbeat_timestamp" field in this mutation.
func (m *BotMutation) AddedFirstHeartbeatTimestamp() (r int64, exists bool) {
	v := m.addfirst_heartbeat_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// ClearFirstHeartbeatTimestamp clears the value of the "first_heartbeat_timestamp" field.
func (m *BotMutation) ClearFirstHeartbeatTimestamp() {
	m.first_heartbeat_timestamp = nil
	m.addfirst_heartbeat_timestamp = nil
	m.clearedFields[bot.FieldFirstHeartbeatTimestamp] = struct{}{}
}

// FirstHeartbeatTimestampCleared returns if the "first_heartbeat_timestamp" field was cleared in this mutation.
func (m *BotMutation) FirstHeartbeatTimestampCleared() bool {
	_, ok := m.clearedFields[bot.FieldFirstHeartbeatTimestamp]
	return ok
}

// ResetFirstHeartbeatTimestamp resets all changes to the "first_heartbeat_timestamp" field.
func (m *BotMutation) ResetFirstHeartbeatTimestamp() {
	m.first_heartbeat_timestamp = nil
	m.addfirst_heartbeat_timestamp = nil
	delete(m.clearedFields, bot.FieldFirstHeartbeatTimestamp)
}

// SetLastHeartbeatTimestamp sets the "last_heartbeat_timestamp" field.
func (m *BotMutation) SetLastHeartbeatTimestamp(i int64) {
	m.last_heartbeat_timestamp = &i
	m.addlast_heartbeat_timestamp = nil
}

// LastHeartbeatTimestamp returns the value of the "last_heartbeat_timestamp" field in the mutation.
func (m *BotMutation) LastHeartbeatTimestamp() (r int64, exists bool) {
	v := m.last_heartbeat_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatTimestamp returns the old "last_heartbeat_timestamp" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldLastHeartbeatTimestamp(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatTimestamp: %w", err)
	}
	return oldValue.LastHeartbeatTimestamp, nil
}

// AddLastHeartbeatTimestamp adds i to the "last_heartbeat_timestamp" field.
func (m *BotMutation) AddLastHeartbeatTimestamp(i int64) {
	if m.addlast_heartbeat_timestamp != nil {
		*m.addlast_heartbeat_timestamp += i
	} else {
		m.addlast_heartbeat_timestamp = &i
	}
}

// AddedLastHeartbeatTimestamp returns the value that was added to the "last_heartbeat_timestamp" field in this mutation.
func (m *BotMutation) AddedLastHeartbeatTimestamp() (r int64, exists bool) {
	v := m.addlast_heartbeat_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// ClearLastHeartbeatTimestamp clears the value of the "last_heartbeat_timestamp" field.
func (m *BotMutation) ClearLastHeartbeatTimestamp() {
	m.last_heartbeat_timestamp = nil
	m.addlast_heartbeat_timestamp = nil
	m.clearedFields[bot.FieldLastHeartbeatTimestamp] = struct{}{}
}

// LastHeartbeatTimestampCleared returns if the "last_heartbeat_timestamp" field was cleared in this mutation.
func (m *BotMutation) LastHeartbeatTimestampCleared() bool {
	_, ok := m.clearedFields[bot.FieldLastHeartbeatTimestamp]
	return ok
}

// ResetLastHeartbeatTimestamp resets all changes to the "last_heartbeat_timestamp" field.
func (m *BotMutation) ResetLastHeartbeatTimestamp() {
	m.last_heartbeat_timestamp = nil
	m.addlast_heartbeat_timestamp = nil
	delete(m.clearedFields, bot.FieldLastHeartbeatTimestamp)
}

// SetJoinAt sets the "join_at" field.
func (m *BotMutation) SetJoinAt(t time.Time) {
	m.join_at = &t
}

// JoinAt returns the value of the "join_at" field in the mutation.
func (m *BotMutation) JoinAt() (r time.Time, exists bool) {
	v := m.join_at
	if v == nil {
		return
	}
	return *v, true
}

// OldJoinAt returns the old "join_at" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldJoinAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJoinAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJoinAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJoinAt: %w", err)
	}
	return oldValue.JoinAt, nil
}

// ClearJoinAt clears the value of the "join_at" field.
func (m *BotMutation) ClearJoinAt() {
	m.join_at = nil
	m.clearedFields[bot.FieldJoinAt] = struct{}{}
}

// JoinAtCleared returns if the "join_at" field was cleared in this mutation.
func (m *BotMutation) JoinAtCleared() bool {
	_, ok := m.clearedFields[bot.FieldJoinAt]
	return ok
}

// ResetJoinAt resets all changes to the "join_at" field.
func (m *BotMutation) ResetJoinAt() {
	m.join_at = nil
	delete(m.clearedFields, bot.FieldJoinAt)
}

// SetDeduplicationKey sets the "deduplication_key" field.
func (m *BotMutation) SetDeduplicationKey(s string) {
	m.deduplication_key = &s
}

// DeduplicationKey returns the value of the "deduplication_key" field in the mutation.
func (m *BotMutation) DeduplicationKey() (r string, exists bool) {
	v := m.deduplication_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDeduplicationKey returns the old "deduplication_key" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldDeduplicationKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeduplicationKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeduplicationKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeduplicationKey: %w", err)
	}
	return oldValue.DeduplicationKey, nil
}

// ClearDeduplicationKey clears the value of the "deduplication_key" field.
func (m *BotMutation) ClearDeduplicationKey() {
	m.deduplication_key = nil
	m.clearedFields[bot.FieldDeduplicationKey] = struct{}{}
}

// DeduplicationKeyCleared returns if the "deduplication_key" field was cleared in this mutation.
func (m *BotMutation) DeduplicationKeyCleared() bool {
	_, ok := m.clearedFields[bot.FieldDeduplicationKey]
	return ok
}

// ResetDeduplicationKey resets all changes to the "deduplication_key" field.
func (m *BotMutation) ResetDeduplicationKey() {
	m.deduplication_key = nil
	delete(m.clearedFields, bot.FieldDeduplicationKey)
}

// SetVersion sets the "version" field.
func (m *BotMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *BotMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *BotMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *BotMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *BotMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BotMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BotMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Bot entity.
// If the Bot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BotMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *BotMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[bot.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *BotMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *BotMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *BotMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddEventIDs adds the "events" edge to the BotEvent entity by ids.
func (m *BotMutation) AddEventIDs(ids ...string) {
	if m.events == nil {
		m.events = make(map[string]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the BotEvent entity.
func (m *BotMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the BotEvent entity was cleared.
func (m *BotMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the BotEvent entity by IDs.
func (m *BotMutation) RemoveEventIDs(ids ...string) {
	if m.removedevents == nil {
		m.removedevents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the BotEvent entity.
func (m *BotMutation) RemovedEventsIDs() (ids []string) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *BotMutation) EventsIDs() (ids []string) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *BotMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// AddRecordingIDs adds the "recordings" edge to the Recording entity by ids.
func (m *BotMutation) AddRecordingIDs(ids ...string) {
	if m.recordings == nil {
		m.recordings = make(map[string]struct{})
	}
	for i := range ids {
		m.recordings[ids[i]] = struct{}{}
	}
}

// ClearRecordings clears the "recordings" edge to the Recording entity.
func (m *BotMutation) ClearRecordings() {
	m.clearedrecordings = true
}

// RecordingsCleared reports if the "recordings" edge to the Recording entity was cleared.
func (m *BotMutation) RecordingsCleared() bool {
	return m.clearedrecordings
}

// RemoveRecordingIDs removes the "recordings" edge to the Recording entity by IDs.
func (m *BotMutation) RemoveRecordingIDs(ids ...string) {
	if m.removedrecordings == nil {
		m.removedrecordings = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.recordings, ids[i])
		m.removedrecordings[ids[i]] = struct{}{}
	}
}

// RemovedRecordings returns the removed IDs of the "recordings" edge to the Recording entity.
func (m *BotMutation) RemovedRecordingsIDs() (ids []string) {
	for id := range m.removedrecordings {
		ids = append(ids, id)
	}
	return
}

// RecordingsIDs returns the "recordings" edge IDs in the mutation.
func (m *BotMutation) RecordingsIDs() (ids []string) {
	for id := range m.recordings {
		ids = append(ids, id)
	}
	return
}

// ResetRecordings resets all changes to the "recordings" edge.
func (m *BotMutation) ResetRecordings() {
	m.recordings = nil
	m.clearedrecordings = false
	m.removedrecordings = nil
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by ids.
func (m *BotMutation) AddParticipantIDs(ids ...string) {
	if m.participants == nil {
		m.participants = make(map[string]struct{})
	}
	for i := range ids {
		m.participants[ids[i]] = struct{}{}
	}
}

// ClearParticipants clears the "participants" edge to the Participant entity.
func (m *BotMutation) ClearParticipants() {
	m.clearedparticipants = true
}

// ParticipantsCleared reports if the "participants" edge to the Participant entity was cleared.
func (m *BotMutation) ParticipantsCleared() bool {
	return m.clearedparticipants
}

// RemoveParticipantIDs removes the "participants" edge to the Participant entity by IDs.
func (m *BotMutation) RemoveParticipantIDs(ids ...string) {
	if m.removedparticipants == nil {
		m.removedparticipants = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.participants, ids[i])
		m.removedparticipants[ids[i]] = struct{}{}
	}
}

// RemovedParticipants returns the removed IDs of the "participants" edge to the Participant entity.
func (m *BotMutation) RemovedParticipantsIDs() (ids []string) {
	for id := range m.removedparticipants {
		ids = append(ids, id)
	}
	return
}

// ParticipantsIDs returns the "participants" edge IDs in the mutation.
func (m *BotMutation) ParticipantsIDs() (ids []string) {
	for id := range m.participants {
		ids = append(ids, id)
	}
	return
}

// ResetParticipants resets all changes to the "participants" edge.
func (m *BotMutation) ResetParticipants() {
	m.participants = nil
	m.clearedparticipants = false
	m.removedparticipants = nil
}

// AddChatMessageIDs adds the "chat_messages" edge to the ChatMessage entity by ids.
func (m *BotMutation) AddChatMessageIDs(ids ...string) {
	if m.chat_messages == nil {
		m.chat_messages = make(map[string]struct{})
	}
	for i := range ids {
		m.chat_messages[ids[i]] = struct{}{}
	}
}

// ClearChatMessages clears the "chat_messages" edge to the ChatMessage entity.
func (m *BotMutation) ClearChatMessages() {
	m.clearedchat_messages = true
}

// ChatMessagesCleared reports if the "chat_messages" edge to the ChatMessage entity was cleared.
func (m *BotMutation) ChatMessagesCleared() bool {
	return m.clearedchat_messages
}

// RemoveChatMessageIDs removes the "chat_messages" edge to the ChatMessage entity by IDs.
func (m *BotMutation) RemoveChatMessageIDs(ids ...string) {
	if m.removedchat_messages == nil {
		m.removedchat_messages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chat_messages, ids[i])
		m.removedchat_messages[ids[i]] = struct{}{}
	}
}

// RemovedChatMessages returns the removed IDs of the "chat_messages" edge to the ChatMessage entity.
func (m *BotMutation) RemovedChatMessagesIDs() (ids []string) {
	for id := range m.removedchat_messages {
		ids = append(ids, id)
	}
	return
}

// ChatMessagesIDs returns the "chat_messages" edge IDs in the mutation.
func (m *BotMutation) ChatMessagesIDs() (ids []string) {
	for id := range m.chat_messages {
		ids = append(ids, id)
	}
	return
}

// ResetChatMessages resets all changes to the "chat_messages" edge.
func (m *BotMutation) ResetChatMessages() {
	m.chat_messages = nil
	m.clearedchat_messages = false
	m.removedchat_messages = nil
}

// Where appends a list predicates to the BotMutation builder.
func (m *BotMutation) Where(ps ...predicate.Bot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Bot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Bot).
func (m *BotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BotMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.project != nil {
		fields = append(fields, bot.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, bot.FieldName)
	}
	if m.meeting_url != nil {
		fields = append(fields, bot.FieldMeetingURL)
	}
	if m.state != nil {
		fields = append(fields, bot.FieldState)
	}
	if m.session_kind != nil {
		fields = append(fields, bot.FieldSessionKind)
	}
	if m.settings != nil {
		fields = append(fields, bot.FieldSettings)
	}
	if m.metadata != nil {
		fields = append(fields, bot.FieldMetadata)
	}
	if m.first_heartbeat_timestamp != nil {
		fields = append(fields, bot.FieldFirstHeartbeatTimestamp)
	}
	if m.last_heartbeat_timestamp != nil {
		fields = append(fields, bot.FieldLastHeartbeatTimestamp)
	}
	if m.join_at != nil {
		fields = append(fields, bot.FieldJoinAt)
	}
	if m.deduplication_key != nil {
		fields = append(fields, bot.FieldDeduplicationKey)
	}
	if m.version != nil {
		fields = append(fields, bot.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, bot.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, bot.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bot.FieldProjectID:
		return m.ProjectID()
	case bot.FieldName:
		return m.Name()
	case bot.FieldMeetingURL:
		return m.MeetingURL()
	case bot.FieldState:
		return m.State()
	case bot.FieldSessionKind:
		return m.SessionKind()
	case bot.FieldSettings:
		return m.Settings()
	case bot.FieldMetadata:
		return m.Metadata()
	case bot.FieldFirstHeartbeatTimestamp:
		return m.FirstHeartbeatTimestamp()
	case bot.FieldLastHeartbeatTimestamp:
		return m.LastHeartbeatTimestamp()
	case bot.FieldJoinAt:
		return m.JoinAt()
	case bot.FieldDeduplicationKey:
		return m.DeduplicationKey()
	case bot.FieldVersion:
		return m.Version()
	case bot.FieldCreatedAt:
		return m.CreatedAt()
	case bot.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bot.FieldProjectID:
		return m.OldProjectID(ctx)
	case bot.FieldName:
		return m.OldName(ctx)
	case bot.FieldMeetingURL:
		return m.OldMeetingURL(ctx)
	case bot.FieldState:
		return m.OldState(ctx)
	case bot.FieldSessionKind:
		return m.OldSessionKind(ctx)
	case bot.FieldSettings:
		return m.OldSettings(ctx)
	case bot.FieldMetadata:
		return m.OldMetadata(ctx)
	case bot.FieldFirstHeartbeatTimestamp:
		return m.OldFirstHeartbeatTimestamp(ctx)
	case bot.FieldLastHeartbeatTimestamp:
		return m.OldLastHeartbeatTimestamp(ctx)
	case bot.FieldJoinAt:
		return m.OldJoinAt(ctx)
	case bot.FieldDeduplicationKey:
		return m.OldDeduplicationKey(ctx)
	case bot.FieldVersion:
		return m.OldVersion(ctx)
	case bot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case bot.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Bot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bot.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case bot.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case bot.FieldMeetingURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingURL(v)
		return nil
	case bot.FieldState:
		v, ok := value.(lifecycle.BotState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case bot.FieldSessionKind:
		v, ok := value.(lifecycle.SessionKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionKind(v)
		return nil
	case bot.FieldSettings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSettings(v)
		return nil
	case bot.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case bot.FieldFirstHeartbeatTimestamp:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstHeartbeatTimestamp(v)
		return nil
	case bot.FieldLastHeartbeatTimestamp:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatTimestamp(v)
		return nil
	case bot.FieldJoinAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJoinAt(v)
		return nil
	case bot.FieldDeduplicationKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeduplicationKey(v)
		return nil
	case bot.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case bot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case bot.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Bot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BotMutation) AddedFields() []string {
	var fields []string
	if m.addstate != nil {
		fields = append(fields, bot.FieldState)
	}
	if m.addfirst_heartbeat_timestamp != nil {
		fields = append(fields, bot.FieldFirstHeartbeatTimestamp)
	}
	if m.addlast_heartbeat_timestamp != nil {
		fields = append(fields, bot.FieldLastHeartbeatTimestamp)
	}
	if m.addversion != nil {
		fields = append(fields, bot.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bot.FieldState:
		return m.AddedState()
	case bot.FieldFirstHeartbeatTimestamp:
		return m.AddedFirstHeartbeatTimestamp()
	case bot.FieldLastHeartbeatTimestamp:
		return m.AddedLastHeartbeatTimestamp()
	case bot.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bot.FieldState:
		v, ok := value.(lifecycle.BotState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddState(v)
		return nil
	case bot.FieldFirstHeartbeatTimestamp:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFirstHeartbeatTimestamp(v)
		return nil
	case bot.FieldLastHeartbeatTimestamp:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastHeartbeatTimestamp(v)
		return nil
	case bot.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Bot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(bot.FieldSettings) {
		fields = append(fields, bot.FieldSettings)
	}
	if m.FieldCleared(bot.FieldMetadata) {
		fields = append(fields, bot.FieldMetadata)
	}
	if m.FieldCleared(bot.FieldFirstHeartbeatTimestamp) {
		fields = append(fields, bot.FieldFirstHeartbeatTimestamp)
	}
	if m.FieldCleared(bot.FieldLastHeartbeatTimestamp) {
		fields = append(fields, bot.FieldLastHeartbeatTimestamp)
	}
	if m.FieldCleared(bot.FieldJoinAt) {
		fields = append(fields, bot.FieldJoinAt)
	}
	if m.FieldCleared(bot.FieldDeduplicationKey) {
		fields = append(fields, bot.FieldDeduplicationKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BotMutation) ClearField(name string) error {
	switch name {
	case bot.FieldSettings:
		m.ClearSettings()
		return nil
	case bot.FieldMetadata:
		m.ClearMetadata()
		return nil
	case bot.FieldFirstHeartbeatTimestamp:
		m.ClearFirstHeartbeatTimestamp()
		return nil
	case bot.FieldLastHeartbeatTimestamp:
		m.ClearLastHeartbeatTimestamp()
		return nil
	case bot.FieldJoinAt:
		m.ClearJoinAt()
		return nil
	case bot.FieldDeduplicationKey:
		m.ClearDeduplicationKey()
		return nil
	}
	return fmt.Errorf("unknown Bot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BotMutation) ResetField(name string) error {
	switch name {
	case bot.FieldProjectID:
		m.ResetProjectID()
		return nil
	case bot.FieldName:
		m.ResetName()
		return nil
	case bot.FieldMeetingURL:
		m.ResetMeetingURL()
		return nil
	case bot.FieldState:
		m.ResetState()
		return nil
	case bot.FieldSessionKind:
		m.ResetSessionKind()
		return nil
	case bot.FieldSettings:
		m.ResetSettings()
		return nil
	case bot.FieldMetadata:
		m.ResetMetadata()
		return nil
	case bot.FieldFirstHeartbeatTimestamp:
		m.ResetFirstHeartbeatTimestamp()
		return nil
	case bot.FieldLastHeartbeatTimestamp:
		m.ResetLastHeartbeatTimestamp()
		return nil
	case bot.FieldJoinAt:
		m.ResetJoinAt()
		return nil
	case bot.FieldDeduplicationKey:
		m.ResetDeduplicationKey()
		return nil
	case bot.FieldVersion:
		m.ResetVersion()
		return nil
	case bot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case bot.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Bot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BotMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.project != nil {
		edges = append(edges, bot.EdgeProject)
	}
	if m.events != nil {
		edges = append(edges, bot.EdgeEvents)
	}
	if m.recordings != nil {
		edges = append(edges, bot.EdgeRecordings)
	}
	if m.participants != nil {
		edges = append(edges, bot.EdgeParticipants)
	}
	if m.chat_messages != nil {
		edges = append(edges, bot.EdgeChatMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case bot.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case bot.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	case bot.EdgeRecordings:
		ids := make([]ent.Value, 0, len(m.recordings))
		for id := range m.recordings {
			ids = append(ids, id)
		}
		return ids
	case bot.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.participants))
		for id := range m.participants {
			ids = append(ids, id)
		}
		return ids
	case bot.EdgeChatMessages:
		ids := make([]ent.Value, 0, len(m.chat_messages))
		for id := range m.chat_messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedevents != nil {
		edges = append(edges, bot.EdgeEvents)
	}
	if m.removedrecordings != nil {
		edges = append(edges, bot.EdgeRecordings)
	}
	if m.removedparticipants != nil {
		edges = append(edges, bot.EdgeParticipants)
	}
	if m.removedchat_messages != nil {
		edges = append(edges, bot.EdgeChatMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BotMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case bot.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	case bot.EdgeRecordings:
		ids := make([]ent.Value, 0, len(m.removedrecordings))
		for id := range m.removedrecordings {
			ids = append(ids, id)
		}
		return ids
	case bot.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.removedparticipants))
		for id := range m.removedparticipants {
			ids = append(ids, id)
		}
		return ids
	case bot.EdgeChatMessages:
		ids := make([]ent.Value, 0, len(m.removedchat_messages))
		for id := range m.removedchat_messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedproject {
		edges = append(edges, bot.EdgeProject)
	}
	if m.clearedevents {
		edges = append(edges, bot.EdgeEvents)
	}
	if m.clearedrecordings {
		edges = append(edges, bot.EdgeRecordings)
	}
	if m.clearedparticipants {
		edges = append(edges, bot.EdgeParticipants)
	}
	if m.clearedchat_messages {
		edges = append(edges, bot.EdgeChatMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BotMutation) EdgeCleared(name string) bool {
	switch name {
	case bot.EdgeProject:
		return m.clearedproject
	case bot.EdgeEvents:
		return m.clearedevents
	case bot.EdgeRecordings:
		return m.clearedrecordings
	case bot.EdgeParticipants:
		return m.clearedparticipants
	case bot.EdgeChatMessages:
		return m.clearedchat_messages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BotMutation) ClearEdge(name string) error {
	switch name {
	case bot.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Bot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BotMutation) ResetEdge(name string) error {
	switch name {
	case bot.EdgeProject:
		m.ResetProject()
		return nil
	case bot.EdgeEvents:
		m.ResetEvents()
		return nil
	case bot.EdgeRecordings:
		m.ResetRecordings()
		return nil
	case bot.EdgeParticipants:
		m.ResetParticipants()
		return nil
	case bot.EdgeChatMessages:
		m.ResetChatMessages()
		return nil
	}
	return fmt.Errorf("unknown Bot edge %s", name)
}

// BotEventMutation represents an operation that mutates the BotEvent nodes in the graph.
type BotEventMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	old_state                 *lifecycle.BotState
	addold_state              *lifecycle.BotState
	new_state                 *lifecycle.BotState
	addnew_state              *lifecycle.BotState
	event_kind                *lifecycle.EventKind
	event_sub_kind            *lifecycle.EventSubKind
	metadata                  *map[string]interface{}
	created_at                *time.Time
	requested_action_taken_at *time.Time
	clearedFields             map[string]struct{}
	bot                       *string
	clearedbot                bool
	done                      bool
	oldValue                  func(context.Context) (*BotEvent, error)
	predicates                []predicate.BotEvent
}

var _ ent.Mutation = (*BotEventMutation)(nil)

// boteventOption allows management of the mutation configuration using functional options.
type boteventOption func(*BotEventMutation)

// newBotEventMutation creates new mutation for the BotEvent entity.
func newBotEventMutation(c config, op Op, opts ...boteventOption) *BotEventMutation {
	m := &BotEventMutation{
		config:        c,
		op:            op,
		typ:           TypeBotEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBotEventID sets the ID field of the mutation.
func withBotEventID(id string) boteventOption {
	return func(m *BotEventMutation) {
		var (
			err   error
			once  sync.Once
			value *BotEvent
		)
		m.oldValue = func(ctx context.Context) (*BotEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BotEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBotEvent sets the old BotEvent of the mutation.
func withBotEvent(node *BotEvent) boteventOption {
	return func(m *BotEventMutation) {
		m.oldValue = func(context.Context) (*BotEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BotEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BotEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BotEvent entities.
func (m *BotEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BotEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BotEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BotEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBotID sets the "bot_id" field.
func (m *BotEventMutation) SetBotID(s string) {
	m.bot = &s
}

// BotID returns the value of the "bot_id" field in the mutation.
func (m *BotEventMutation) BotID() (r string, exists bool) {
	v := m.bot
	if v == nil {
		return
	}
	return *v, true
}

// OldBotID returns the old "bot_id" field's value of the BotEvent entity.
// If the BotEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotEventMutation) OldBotID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotID: %w", err)
	}
	return oldValue.BotID, nil
}

// ResetBotID resets all changes to the "bot_id" field.
func (m *BotEventMutation) ResetBotID() {
	m.bot = nil
}

// SetOldState sets the "old_state" field.
func (m *BotEventMutation) SetOldState(ls lifecycle.BotState) {
	m.old_state = &ls
	m.addold_state = nil
}

// OldState returns the value of the "old_state" field in the mutation.
func (m *BotEventMutation) OldState() (r lifecycle.BotState, exists bool) {
	v := m.old_state
	if v == nil {
		return
	}
	return *v, true
}

// OldOldState returns the old "old_state" field's value of the BotEvent entity.
// If the BotEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotEventMutation) OldOldState(ctx context.Context) (v lifecycle.BotState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldState: %w", err)
	}
	return oldValue.OldState, nil
}

// AddOldState adds ls to the "old_state" field.
func (m *BotEventMutation) AddOldState(ls lifecycle.BotState) {
	if m.addold_state != nil {
		*m.addold_state += ls
	} else {
		m.addold_state = &ls
	}
}

// AddedOldState returns the value that was added to the "old_state" field in this mutation.
func (m *BotEventMutation) AddedOldState() (r lifecycle.BotState, exists bool) {
	v := m.addold_state
	if v == nil {
		return
	}
	return *v, true
}

// ResetOldState resets all changes to the "old_state" field.
func (m *BotEventMutation) ResetOldState() {
	m.old_state = nil
	m.addold_state = nil
}

// SetNewState sets the "new_state" field.
func (m *BotEventMutation) SetNewState(ls lifecycle.BotState) {
	m.new_state = &ls
	m.addnew_state = nil
}

// NewState returns the value of the "new_state" field in the mutation.
func (m *BotEventMutation) NewState() (r lifecycle.BotState, exists bool) {
	v := m.new_state
	if v == nil {
		return
	}
	return *v, true
}

// OldNewState returns the old "new_state" field's value of the BotEvent entity.
// If the BotEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotEventMutation) OldNewState(ctx context.Context) (v lifecycle.BotState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewState: %w", err)
	}
	return oldValue.NewState, nil
}

// AddNewState adds ls to the "new_state" field.
func (m *BotEventMutation) AddNewState(ls lifecycle.BotState) {
	if m.addnew_state != nil {
		*m.addnew_state += ls
	} else {
		m.addnew_state = &ls
	}
}

// AddedNewState returns the value that was added to the "new_state" field in this mutation.
func (m *BotEventMutation) AddedNewState() (r lifecycle.BotState, exists bool) {
	v := m.addnew_state
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewState resets all changes to the "new_state" field.
func (m *BotEventMutation) ResetNewState() {
	m.new_state = nil
	m.addnew_state = nil
}

// SetEventKind sets the "event_kind" field.
func (m *BotEventMutation) SetEventKind(lk lifecycle.EventKind) {
	m.event_kind = &lk
}

// EventKind returns the value of the "event_kind" field in the mutation.
func (m *BotEventMutation) EventKind() (r lifecycle.EventKind, exists bool) {
	v := m.event_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldEventKind returns the old "event_kind" field's value of the BotEvent entity.
// If the BotEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotEventMutation) OldEventKind(ctx context.Context) (v lifecycle.EventKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventKind: %w", err)
	}
	return oldValue.EventKind, nil
}

// ResetEventKind resets all changes to the "event_kind" field.
func (m *BotEventMutation) ResetEventKind() {
	m.event_kind = nil
}

// SetEventSubKind sets the "event_sub_kind" field.
func (m *BotEventMutation) SetEventSubKind(lsk lifecycle.EventSubKind) {
	m.event_sub_kind = &lsk
}

// EventSubKind returns the value of the "event_sub_kind" field in the mutation.
func (m *BotEventMutation) EventSubKind() (r lifecycle.EventSubKind, exists bool) {
	v := m.event_sub_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldEventSubKind returns the old "event_sub_kind" field's value of the BotEvent entity.
// If the BotEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotEventMutation) OldEventSubKind(ctx context.Context) (v *lifecycle.EventSubKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventSubKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventSubKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventSubKind: %w", err)
	}
	return oldValue.EventSubKind, nil
}

// ClearEventSubKind clears the value of the "event_sub_kind" field.
func (m *BotEventMutation) ClearEventSubKind() {
	m.event_sub_kind = nil
	m.clearedFields[botevent.FieldEventSubKind] = struct{}{}
}

// EventSubKindCleared returns if the "event_sub_kind" field was cleared in this mutation.
func (m *BotEventMutation) EventSubKindCleared() bool {
	_, ok := m.clearedFields[botevent.FieldEventSubKind]
	return ok
}

// ResetEventSubKind resets all changes to the "event_sub_kind" field.
func (m *BotEventMutation) ResetEventSubKind() {
	m.event_sub_kind = nil
	delete(m.clearedFields, botevent.FieldEventSubKind)
}

// SetMetadata sets the "metadata" field.
func (m *BotEventMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *BotEventMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the BotEvent entity.
// If the BotEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotEventMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *BotEventMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[botevent.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *BotEventMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[botevent.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *BotEventMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, botevent.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *BotEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BotEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BotEvent entity.
// If the BotEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BotEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRequestedActionTakenAt sets the "requested_action_taken_at" field.
func (m *BotEventMutation) SetRequestedActionTakenAt(t time.Time) {
	m.requested_action_taken_at = &t
}

// RequestedActionTakenAt returns the value of the "requested_action_taken_at" field in the mutation.
func (m *BotEventMutation) RequestedActionTakenAt() (r time.Time, exists bool) {
	v := m.requested_action_taken_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedActionTakenAt returns the old "requested_action_taken_at" field's value of the BotEvent entity.
// If the BotEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotEventMutation) OldRequestedActionTakenAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedActionTakenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedActionTakenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedActionTakenAt: %w", err)
	}
	return oldValue.RequestedActionTakenAt, nil
}

// ClearRequestedActionTakenAt clears the value of the "requested_action_taken_at" field.
func (m *BotEventMutation) ClearRequestedActionTakenAt() {
	m.requested_action_taken_at = nil
	m.clearedFields[botevent.FieldRequestedActionTakenAt] = struct{}{}
}

// RequestedActionTakenAtCleared returns if the "requested_action_taken_at" field was cleared in this mutation.
func (m *BotEventMutation) RequestedActionTakenAtCleared() bool {
	_, ok := m.clearedFields[botevent.FieldRequestedActionTakenAt]
	return ok
}

// ResetRequestedActionTakenAt resets all changes to the "requested_action_taken_at" field.
func (m *BotEventMutation) ResetRequestedActionTakenAt() {
	m.requested_action_taken_at = nil
	delete(m.clearedFields, botevent.FieldRequestedActionTakenAt)
}

// ClearBot clears the "bot" edge to the Bot entity.
func (m *BotEventMutation) ClearBot() {
	m.clearedbot = true
	m.clearedFields[botevent.FieldBotID] = struct{}{}
}

// BotCleared reports if the "bot" edge to the Bot entity was cleared.
func (m *BotEventMutation) BotCleared() bool {
	return m.clearedbot
}

// BotIDs returns the "bot" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BotID instead. It exists only for internal usage by the builders.
func (m *BotEventMutation) BotIDs() (ids []string) {
	if id := m.bot; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBot resets all changes to the "bot" edge.
func (m *BotEventMutation) ResetBot() {
	m.bot = nil
	m.clearedbot = false
}

// Where appends a list predicates to the BotEventMutation builder.
func (m *BotEventMutation) Where(ps ...predicate.BotEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BotEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BotEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BotEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BotEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BotEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BotEvent).
func (m *BotEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BotEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.bot != nil {
		fields = append(fields, botevent.FieldBotID)
	}
	if m.old_state != nil {
		fields = append(fields, botevent.FieldOldState)
	}
	if m.new_state != nil {
		fields = append(fields, botevent.FieldNewState)
	}
	if m.event_kind != nil {
		fields = append(fields, botevent.FieldEventKind)
	}
	if m.event_sub_kind != nil {
		fields = append(fields, botevent.FieldEventSubKind)
	}
	if m.metadata != nil {
		fields = append(fields, botevent.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, botevent.FieldCreatedAt)
	}
	if m.requested_action_taken_at != nil {
		fields = append(fields, botevent.FieldRequestedActionTakenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BotEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case botevent.FieldBotID:
		return m.BotID()
	case botevent.FieldOldState:
		return m.OldState()
	case botevent.FieldNewState:
		return m.NewState()
	case botevent.FieldEventKind:
		return m.EventKind()
	case botevent.FieldEventSubKind:
		return m.EventSubKind()
	case botevent.FieldMetadata:
		return m.Metadata()
	case botevent.FieldCreatedAt:
		return m.CreatedAt()
	case botevent.FieldRequestedActionTakenAt:
		return m.RequestedActionTakenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BotEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case botevent.FieldBotID:
		return m.OldBotID(ctx)
	case botevent.FieldOldState:
		return m.OldOldState(ctx)
	case botevent.FieldNewState:
		return m.OldNewState(ctx)
	case botevent.FieldEventKind:
		return m.OldEventKind(ctx)
	case botevent.FieldEventSubKind:
		return m.OldEventSubKind(ctx)
	case botevent.FieldMetadata:
		return m.OldMetadata(ctx)
	case botevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case botevent.FieldRequestedActionTakenAt:
		return m.OldRequestedActionTakenAt(ctx)
	}
	return nil, fmt.Errorf("unknown BotEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BotEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case botevent.FieldBotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotID(v)
		return nil
	case botevent.FieldOldState:
		v, ok := value.(lifecycle.BotState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldState(v)
		return nil
	case botevent.FieldNewState:
		v, ok := value.(lifecycle.BotState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewState(v)
		return nil
	case botevent.FieldEventKind:
		v, ok := value.(lifecycle.EventKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventKind(v)
		return nil
	case botevent.FieldEventSubKind:
		v, ok := value.(lifecycle.EventSubKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventSubKind(v)
		return nil
	case botevent.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case botevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case botevent.FieldRequestedActionTakenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedActionTakenAt(v)
		return nil
	}
	return fmt.Errorf("unknown BotEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BotEventMutation) AddedFields() []string {
	var fields []string
	if m.addold_state != nil {
		fields = append(fields, botevent.FieldOldState)
	}
	if m.addnew_state != nil {
		fields = append(fields, botevent.FieldNewState)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BotEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case botevent.FieldOldState:
		return m.AddedOldState()
	case botevent.FieldNewState:
		return m.AddedNewState()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BotEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case botevent.FieldOldState:
		v, ok := value.(lifecycle.BotState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOldState(v)
		return nil
	case botevent.FieldNewState:
		v, ok := value.(lifecycle.BotState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewState(v)
		return nil
	}
	return fmt.Errorf("unknown BotEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BotEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(botevent.FieldEventSubKind) {
		fields = append(fields, botevent.FieldEventSubKind)
	}
	if m.FieldCleared(botevent.FieldMetadata) {
		fields = append(fields, botevent.FieldMetadata)
	}
	if m.FieldCleared(botevent.FieldRequestedActionTakenAt) {
		fields = append(fields, botevent.FieldRequestedActionTakenAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BotEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BotEventMutation) ClearField(name string) error {
	switch name {
	case botevent.FieldEventSubKind:
		m.ClearEventSubKind()
		return nil
	case botevent.FieldMetadata:
		m.ClearMetadata()
		return nil
	case botevent.FieldRequestedActionTakenAt:
		m.ClearRequestedActionTakenAt()
		return nil
	}
	return fmt.Errorf("unknown BotEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BotEventMutation) ResetField(name string) error {
	switch name {
	case botevent.FieldBotID:
		m.ResetBotID()
		return nil
	case botevent.FieldOldState:
		m.ResetOldState()
		return nil
	case botevent.FieldNewState:
		m.ResetNewState()
		return nil
	case botevent.FieldEventKind:
		m.ResetEventKind()
		return nil
	case botevent.FieldEventSubKind:
		m.ResetEventSubKind()
		return nil
	case botevent.FieldMetadata:
		m.ResetMetadata()
		return nil
	case botevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case botevent.FieldRequestedActionTakenAt:
		m.ResetRequestedActionTakenAt()
		return nil
	}
	return fmt.Errorf("unknown BotEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BotEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.bot != nil {
		edges = append(edges, botevent.EdgeBot)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BotEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case botevent.EdgeBot:
		if id := m.bot; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BotEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BotEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BotEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbot {
		edges = append(edges, botevent.EdgeBot)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BotEventMutation) EdgeCleared(name string) bool {
	switch name {
	case botevent.EdgeBot:
		return m.clearedbot
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BotEventMutation) ClearEdge(name string) error {
	switch name {
	case botevent.EdgeBot:
		m.ClearBot()
		return nil
	}
	return fmt.Errorf("unknown BotEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BotEventMutation) ResetEdge(name string) error {
	switch name {
	case botevent.EdgeBot:
		m.ResetBot()
		return nil
	}
	return fmt.Errorf("unknown BotEvent edge %s", name)
}

// ChatMessageMutation represents an operation that mutates the ChatMessage nodes in the graph.
type ChatMessageMutation struct {
	config
	op              Op
	typ             string
	id              *string
	participant_id  *string
	text            *string
	timestamp_ms    *int64
	addtimestamp_ms *int64
	created_at      *time.Time
	clearedFields   map[string]struct{}
	bot             *string
	clearedbot      bool
	done            bool
	oldValue        func(context.Context) (*ChatMessage, error)
	predicates      []predicate.ChatMessage
}

var _ ent.Mutation = (*ChatMessageMutation)(nil)

// chatmessageOption allows management of the mutation configuration using functional options.
type chatmessageOption func(*ChatMessageMutation)

// newChatMessageMutation creates new mutation for the ChatMessage entity.
func newChatMessageMutation(c config, op Op, opts ...chatmessageOption) *ChatMessageMutation {
	m := &ChatMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeChatMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatMessageID sets the ID field of the mutation.
func withChatMessageID(id string) chatmessageOption {
	return func(m *ChatMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatMessage
		)
		m.oldValue = func(ctx context.Context) (*ChatMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatMessage sets the old ChatMessage of the mutation.
func withChatMessage(node *ChatMessage) chatmessageOption {
	return func(m *ChatMessageMutation) {
		m.oldValue = func(context.Context) (*ChatMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatMessage entities.
func (m *ChatMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBotID sets the "bot_id" field.
func (m *ChatMessageMutation) SetBotID(s string) {
	m.bot = &s
}

// BotID returns the value of the "bot_id" field in the mutation.
func (m *ChatMessageMutation) BotID() (r string, exists bool) {
	v := m.bot
	if v == nil {
		return
	}
	return *v, true
}

// OldBotID returns the old "bot_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldBotID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotID: %w", err)
	}
	return oldValue.BotID, nil
}

// ResetBotID resets all changes to the "bot_id" field.
func (m *ChatMessageMutation) ResetBotID() {
	m.bot = nil
}

// SetParticipantID sets the "participant_id" field.
func (m *ChatMessageMutation) SetParticipantID(s string) {
	m.participant_id = &s
}

// ParticipantID returns the value of the "participant_id" field in the mutation.
func (m *ChatMessageMutation) ParticipantID() (r string, exists bool) {
	v := m.participant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantID returns the old "participant_id" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldParticipantID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantID: %w", err)
	}
	return oldValue.ParticipantID, nil
}

// ClearParticipantID clears the value of the "participant_id" field.
func (m *ChatMessageMutation) ClearParticipantID() {
	m.participant_id = nil
	m.clearedFields[chatmessage.FieldParticipantID] = struct{}{}
}

// ParticipantIDCleared returns if the "participant_id" field was cleared in this mutation.
func (m *ChatMessageMutation) ParticipantIDCleared() bool {
	_, ok := m.clearedFields[chatmessage.FieldParticipantID]
	return ok
}

// ResetParticipantID resets all changes to the "participant_id" field.
func (m *ChatMessageMutation) ResetParticipantID() {
	m.participant_id = nil
	delete(m.clearedFields, chatmessage.FieldParticipantID)
}

// SetText sets the "text" field.
func (m *ChatMessageMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *ChatMessageMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *ChatMessageMutation) ResetText() {
	m.text = nil
}

// SetTimestampMs sets the "timestamp_ms" field.
func (m *ChatMessageMutation) SetTimestampMs(i int64) {
	m.timestamp_ms = &i
	m.addtimestamp_ms = nil
}

// TimestampMs returns the value of the "timestamp_ms" field in the mutation.
func (m *ChatMessageMutation) TimestampMs() (r int64, exists bool) {
	v := m.timestamp_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestampMs returns the old "timestamp_ms" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldTimestampMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestampMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestampMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestampMs: %w", err)
	}
	return oldValue.TimestampMs, nil
}

// AddTimestampMs adds i to the "timestamp_ms" field.
func (m *ChatMessageMutation) AddTimestampMs(i int64) {
	if m.addtimestamp_ms != nil {
		*m.addtimestamp_ms += i
	} else {
		m.addtimestamp_ms = &i
	}
}

// AddedTimestampMs returns the value that was added to the "timestamp_ms" field in this mutation.
func (m *ChatMessageMutation) AddedTimestampMs() (r int64, exists bool) {
	v := m.addtimestamp_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimestampMs resets all changes to the "timestamp_ms" field.
func (m *ChatMessageMutation) ResetTimestampMs() {
	m.timestamp_ms = nil
	m.addtimestamp_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatMessage entity.
// If the ChatMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearBot clears the "bot" edge to the Bot entity.
func (m *ChatMessageMutation) ClearBot() {
	m.clearedbot = true
	m.clearedFields[chatmessage.FieldBotID] = struct{}{}
}

// BotCleared reports if the "bot" edge to the Bot entity was cleared.
func (m *ChatMessageMutation) BotCleared() bool {
	return m.clearedbot
}

// BotIDs returns the "bot" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BotID instead. It exists only for internal usage by the builders.
func (m *ChatMessageMutation) BotIDs() (ids []string) {
	if id := m.bot; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBot resets all changes to the "bot" edge.
func (m *ChatMessageMutation) ResetBot() {
	m.bot = nil
	m.clearedbot = false
}

// Where appends a list predicates to the ChatMessageMutation builder.
func (m *ChatMessageMutation) Where(ps ...predicate.ChatMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatMessage).
func (m *ChatMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatMessageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.bot != nil {
		fields = append(fields, chatmessage.FieldBotID)
	}
	if m.participant_id != nil {
		fields = append(fields, chatmessage.FieldParticipantID)
	}
	if m.text != nil {
		fields = append(fields, chatmessage.FieldText)
	}
	if m.timestamp_ms != nil {
		fields = append(fields, chatmessage.FieldTimestampMs)
	}
	if m.created_at != nil {
		fields = append(fields, chatmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldBotID:
		return m.BotID()
	case chatmessage.FieldParticipantID:
		return m.ParticipantID()
	case chatmessage.FieldText:
		return m.Text()
	case chatmessage.FieldTimestampMs:
		return m.TimestampMs()
	case chatmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatmessage.FieldBotID:
		return m.OldBotID(ctx)
	case chatmessage.FieldParticipantID:
		return m.OldParticipantID(ctx)
	case chatmessage.FieldText:
		return m.OldText(ctx)
	case chatmessage.FieldTimestampMs:
		return m.OldTimestampMs(ctx)
	case chatmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldBotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotID(v)
		return nil
	case chatmessage.FieldParticipantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantID(v)
		return nil
	case chatmessage.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case chatmessage.FieldTimestampMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestampMs(v)
		return nil
	case chatmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatMessageMutation) AddedFields() []string {
	var fields []string
	if m.addtimestamp_ms != nil {
		fields = append(fields, chatmessage.FieldTimestampMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chatmessage.FieldTimestampMs:
		return m.AddedTimestampMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chatmessage.FieldTimestampMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimestampMs(v)
		return nil
	}
	return fmt.Errorf("unknown ChatMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatmessage.FieldParticipantID) {
		fields = append(fields, chatmessage.FieldParticipantID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatMessageMutation) ClearField(name string) error {
	switch name {
	case chatmessage.FieldParticipantID:
		m.ClearParticipantID()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatMessageMutation) ResetField(name string) error {
	switch name {
	case chatmessage.FieldBotID:
		m.ResetBotID()
		return nil
	case chatmessage.FieldParticipantID:
		m.ResetParticipantID()
		return nil
	case chatmessage.FieldText:
		m.ResetText()
		return nil
	case chatmessage.FieldTimestampMs:
		m.ResetTimestampMs()
		return nil
	case chatmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.bot != nil {
		edges = append(edges, chatmessage.EdgeBot)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatmessage.EdgeBot:
		if id := m.bot; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbot {
		edges = append(edges, chatmessage.EdgeBot)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case chatmessage.EdgeBot:
		return m.clearedbot
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatMessageMutation) ClearEdge(name string) error {
	switch name {
	case chatmessage.EdgeBot:
		m.ClearBot()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatMessageMutation) ResetEdge(name string) error {
	switch name {
	case chatmessage.EdgeBot:
		m.ResetBot()
		return nil
	}
	return fmt.Errorf("unknown ChatMessage edge %s", name)
}

// CreditTransactionMutation represents an operation that mutates the CreditTransaction nodes in the graph.
type CreditTransactionMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	centicredits_before      *int64
	addcenticredits_before   *int64
	centicredits_after       *int64
	addcenticredits_after    *int64
	centicredits_delta       *int64
	addcenticredits_delta    *int64
	bot_id                   *string
	stripe_payment_intent_id *string
	description              *string
	created_at               *time.Time
	clearedFields            map[string]struct{}
	organization             *string
	clearedorganization      bool
	parent                   *string
	clearedparent            bool
	children                 map[string]struct{}
	removedchildren          map[string]struct{}
	clearedchildren          bool
	done                     bool
	oldValue                 func(context.Context) (*CreditTransaction, error)
	predicates               []predicate.CreditTransaction
}

var _ ent.Mutation = (*CreditTransactionMutation)(nil)

// credittransactionOption allows management of the mutation configuration using functional options.
type credittransactionOption func(*CreditTransactionMutation)

// newCreditTransactionMutation creates new mutation for the CreditTransaction entity.
func newCreditTransactionMutation(c config, op Op, opts ...credittransactionOption) *CreditTransactionMutation {
	m := &CreditTransactionMutation{
		config:        c,
		op:            op,
		typ:           TypeCreditTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCreditTransactionID sets the ID field of the mutation.
func withCreditTransactionID(id string) credittransactionOption {
	return func(m *CreditTransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *CreditTransaction
		)
		m.oldValue = func(ctx context.Context) (*CreditTransaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CreditTransaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCreditTransaction sets the old CreditTransaction of the mutation.
func withCreditTransaction(node *CreditTransaction) credittransactionOption {
	return func(m *CreditTransactionMutation) {
		m.oldValue = func(context.Context) (*CreditTransaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CreditTransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CreditTransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CreditTransaction entities.
func (m *CreditTransactionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CreditTransactionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CreditTransactionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CreditTransaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrganizationID sets the "organization_id" field.
func (m *CreditTransactionMutation) SetOrganizationID(s string) {
	m.organization = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *CreditTransactionMutation) OrganizationID() (r string, exists bool) {
	v := m.organization
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the CreditTransaction entity.
// If the CreditTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditTransactionMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *CreditTransactionMutation) ResetOrganizationID() {
	m.organization = nil
}

// SetParentTransactionID sets the "parent_transaction_id" field.
func (m *CreditTransactionMutation) SetParentTransactionID(s string) {
	m.parent = &s
}

// ParentTransactionID returns the value of the "parent_transaction_id" field in the mutation.
func (m *CreditTransactionMutation) ParentTransactionID() (r string, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTransactionID returns the old "parent_transaction_id" field's value of the CreditTransaction entity.
// If the CreditTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditTransactionMutation) OldParentTransactionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTransactionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTransactionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTransactionID: %w", err)
	}
	return oldValue.ParentTransactionID, nil
}

// ClearParentTransactionID clears the value of the "parent_transaction_id" field.
func (m *CreditTransactionMutation) ClearParentTransactionID() {
	m.parent = nil
	m.clearedFields[credittransaction.FieldParentTransactionID] = struct{}{}
}

// ParentTransactionIDCleared returns if the "parent_transaction_id" field was cleared in this mutation.
func (m *CreditTransactionMutation) ParentTransactionIDCleared() bool {
	_, ok := m.clearedFields[credittransaction.FieldParentTransactionID]
	return ok
}

// ResetParentTransactionID resets all changes to the "parent_transaction_id" field.
func (m *CreditTransactionMutation) ResetParentTransactionID() {
	m.parent = nil
	delete(m.clearedFields, credittransaction.FieldParentTransactionID)
}

// SetCenticreditsBefore sets the "centicredits_before" field.
func (m *CreditTransactionMutation) SetCenticreditsBefore(i int64) {
	m.centicredits_before = &i
	m.addcenticredits_before = nil
}

// CenticreditsBefore returns the value of the "centicredits_before" field in the mutation.
func (m *CreditTransactionMutation) CenticreditsBefore() (r int64, exists bool) {
	v := m.centicredits_before
	if v == nil {
		return
	}
	return *v, true
}

// OldCenticreditsBefore returns the old "centicredits_before" field's value of the CreditTransaction entity.
// If the CreditTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditTransactionMutation) OldCenticreditsBefore(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCenticreditsBefore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCenticreditsBefore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCenticreditsBefore: %w", err)
	}
	return oldValue.CenticreditsBefore, nil
}

// AddCenticreditsBefore adds i to the "centicredits_before" field.
func (m *CreditTransactionMutation) AddCenticreditsBefore(i int64) {
	if m.addcenticredits_before != nil {
		*m.addcenticredits_before += i
	} else {
		m.addcenticredits_before = &i
	}
}

// AddedCenticreditsBefore returns the value that was added to the "centicredits_before" field in this mutation.
func (m *CreditTransactionMutation) AddedCenticreditsBefore() (r int64, exists bool) {
	v := m.addcenticredits_before
	if v == nil {
		return
	}
	return *v, true
}

// ResetCenticreditsBefore resets all changes to the "centicredits_before" field.
func (m *CreditTransactionMutation) ResetCenticreditsBefore() {
	m.centicredits_before = nil
	m.addcenticredits_before = nil
}

// SetCenticreditsAfter sets the "centicredits_after" field.
func (m *CreditTransactionMutation) SetCenticreditsAfter(i int64) {
	m.centicredits_after = &i
	m.addcenticredits_after = nil
}

// CenticreditsAfter returns the value of the "centicredits_after" field in the mutation.
func (m *CreditTransactionMutation) CenticreditsAfter() (r int64, exists bool) {
	v := m.centicredits_after
	if v == nil {
		return
	}
	return *v, true
}

// OldCenticreditsAfter returns the old "centicredits_after" field's value of the CreditTransaction entity.
// If the CreditTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditTransactionMutation) OldCenticreditsAfter(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCenticreditsAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCenticreditsAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCenticreditsAfter: %w", err)
	}
	return oldValue.CenticreditsAfter, nil
}

// AddCenticreditsAfter adds i to the "centicredits_after" field.
func (m *CreditTransactionMutation) AddCenticreditsAfter(i int64) {
	if m.addcenticredits_after != nil {
		*m.addcenticredits_after += i
	} else {
		m.addcenticredits_after = &i
	}
}

// AddedCenticreditsAfter returns the value that was added to the "centicredits_after" field in this mutation.
func (m *CreditTransactionMutation) AddedCenticreditsAfter() (r int64, exists bool) {
	v := m.addcenticredits_after
	if v == nil {
		return
	}
	return *v, true
}

// ResetCenticreditsAfter resets all changes to the "centicredits_after" field.
func (m *CreditTransactionMutation) ResetCenticreditsAfter() {
	m.centicredits_after = nil
	m.addcenticredits_after = nil
}

// SetCenticreditsDelta sets the "centicredits_delta" field.
func (m *CreditTransactionMutation) SetCenticreditsDelta(i int64) {
	m.centicredits_delta = &i
	m.addcenticredits_delta = nil
}

// CenticreditsDelta returns the value of the "centicredits_delta" field in the mutation.
func (m *CreditTransactionMutation) CenticreditsDelta() (r int64, exists bool) {
	v := m.centicredits_delta
	if v == nil {
		return
	}
	return *v, true
}

// OldCenticreditsDelta returns the old "centicredits_delta" field's value of the CreditTransaction entity.
// If the CreditTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditTransactionMutation) OldCenticreditsDelta(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCenticreditsDelta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCenticreditsDelta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCenticreditsDelta: %w", err)
	}
	return oldValue.CenticreditsDelta, nil
}

// AddCenticreditsDelta adds i to the "centicredits_delta" field.
func (m *CreditTransactionMutation) AddCenticreditsDelta(i int64) {
	if m.addcenticredits_delta != nil {
		*m.addcenticredits_delta += i
	} else {
		m.addcenticredits_delta = &i
	}
}

// AddedCenticreditsDelta returns the value that was added to the "centicredits_delta" field in this mutation.
func (m *CreditTransactionMutation) AddedCenticreditsDelta() (r int64, exists bool) {
	v := m.addcenticredits_delta
	if v == nil {
		return
	}
	return *v, true
}

// ResetCenticreditsDelta resets all changes to the "centicredits_delta" field.
func (m *CreditTransactionMutation) ResetCenticreditsDelta() {
	m.centicredits_delta = nil
	m.addcenticredits_delta = nil
}

// SetBotID sets the "bot_id" field.
func (m *CreditTransactionMutation) SetBotID(s string) {
	m.bot_id = &s
}

// BotID returns the value of the "bot_id" field in the mutation.
func (m *CreditTransactionMutation) BotID() (r string, exists bool) {
	v := m.bot_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBotID returns the old "bot_id" field's value of the CreditTransaction entity.
// If the CreditTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditTransactionMutation) OldBotID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotID: %w", err)
	}
	return oldValue.BotID, nil
}

// ClearBotID clears the value of the "bot_id" field.
func (m *CreditTransactionMutation) ClearBotID() {
	m.bot_id = nil
	m.clearedFields[credittransaction.FieldBotID] = struct{}{}
}

// BotIDCleared returns if the "bot_id" field was cleared in this mutation.
func (m *CreditTransactionMutation) BotIDCleared() bool {
	_, ok := m.clearedFields[credittransaction.FieldBotID]
	return ok
}

// ResetBotID resets all changes to the "bot_id" field.
func (m *CreditTransactionMutation) ResetBotID() {
	m.bot_id = nil
	delete(m.clearedFields, credittransaction.FieldBotID)
}

// SetStripePaymentIntentID sets the "stripe_payment_intent_id" field.
func (m *CreditTransactionMutation) SetStripePaymentIntentID(s string) {
	m.stripe_payment_intent_id = &s
}

// StripePaymentIntentID returns the value of the "stripe_payment_intent_id" field in the mutation.
func (m *CreditTransactionMutation) StripePaymentIntentID() (r string, exists bool) {
	v := m.stripe_payment_intent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStripePaymentIntentID returns the old "stripe_payment_intent_id" field's value of the CreditTransaction entity.
// If the CreditTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditTransactionMutation) OldStripePaymentIntentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStripePaymentIntentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStripePaymentIntentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStripePaymentIntentID: %w", err)
	}
	return oldValue.StripePaymentIntentID, nil
}

// ClearStripePaymentIntentID clears the value of the "stripe_payment_intent_id" field.
func (m *CreditTransactionMutation) ClearStripePaymentIntentID() {
	m.stripe_payment_intent_id = nil
	m.clearedFields[credittransaction.FieldStripePaymentIntentID] = struct{}{}
}

// StripePaymentIntentIDCleared returns if the "stripe_payment_intent_id" field was cleared in this mutation.
func (m *CreditTransactionMutation) StripePaymentIntentIDCleared() bool {
	_, ok := m.clearedFields[credittransaction.FieldStripePaymentIntentID]
	return ok
}

// ResetStripePaymentIntentID resets all changes to the "stripe_payment_intent_id" field.
func (m *CreditTransactionMutation) ResetStripePaymentIntentID() {
	m.stripe_payment_intent_id = nil
	delete(m.clearedFields, credittransaction.FieldStripePaymentIntentID)
}

// SetDescription sets the "description" field.
func (m *CreditTransactionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CreditTransactionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the CreditTransaction entity.
// If the CreditTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditTransactionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CreditTransactionMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[credittransaction.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CreditTransactionMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[credittransaction.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CreditTransactionMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, credittransaction.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *CreditTransactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CreditTransactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CreditTransaction entity.
// If the CreditTransaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditTransactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CreditTransactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (m *CreditTransactionMutation) ClearOrganization() {
	m.clearedorganization = true
	m.clearedFields[credittransaction.FieldOrganizationID] = struct{}{}
}

// OrganizationCleared reports if the "organization" edge to the Organization entity was cleared.
func (m *CreditTransactionMutation) OrganizationCleared() bool {
	return m.clearedorganization
}

// OrganizationIDs returns the "organization" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrganizationID instead. It exists only for internal usage by the builders.
func (m *CreditTransactionMutation) OrganizationIDs() (ids []string) {
	if id := m.organization; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrganization resets all changes to the "organization" edge.
func (m *CreditTransactionMutation) ResetOrganization() {
	m.organization = nil
	m.clearedorganization = false
}

// SetParentID sets the "parent" edge to the CreditTransaction entity by id.
func (m *CreditTransactionMutation) SetParentID(id string) {
	m.parent = &id
}

// ClearParent clears the "parent" edge to the CreditTransaction entity.
func (m *CreditTransactionMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[credittransaction.FieldParentTransactionID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the CreditTransaction entity was cleared.
func (m *CreditTransactionMutation) ParentCleared() bool {
	return m.ParentTransactionIDCleared() || m.clearedparent
}

// ParentID returns the "parent" edge ID in the mutation.
func (m *CreditTransactionMutation) ParentID() (id string, exists bool) {
	if m.parent != nil {
		return *m.parent, true
	}
	return
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *CreditTransactionMutation) ParentIDs() (ids []string) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *CreditTransactionMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddChildIDs adds the "children" edge to the CreditTransaction entity by ids.
func (m *CreditTransactionMutation) AddChildIDs(ids ...string) {
	if m.children == nil {
		m.children = make(map[string]struct{})
	}
	for i := range ids {
		m.children[ids[i]] = struct{}{}
	}
}

// ClearChildren clears the "children" edge to the CreditTransaction entity.
func (m *CreditTransactionMutation) ClearChildren() {
	m.clearedchildren = true
}

// ChildrenCleared reports if the "children" edge to the CreditTransaction entity was cleared.
func (m *CreditTransactionMutation) ChildrenCleared() bool {
	return m.clearedchildren
}

// RemoveChildIDs removes the "children" edge to the CreditTransaction entity by IDs.
func (m *CreditTransactionMutation) RemoveChildIDs(ids ...string) {
	if m.removedchildren == nil {
		m.removedchildren = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.children, ids[i])
		m.removedchildren[ids[i]] = struct{}{}
	}
}

// RemovedChildren returns the removed IDs of the "children" edge to the CreditTransaction entity.
func (m *CreditTransactionMutation) RemovedChildrenIDs() (ids []string) {
	for id := range m.removedchildren {
		ids = append(ids, id)
	}
	return
}

// ChildrenIDs returns the "children" edge IDs in the mutation.
func (m *CreditTransactionMutation) ChildrenIDs() (ids []string) {
	for id := range m.children {
		ids = append(ids, id)
	}
	return
}

// ResetChildren resets all changes to the "children" edge.
func (m *CreditTransactionMutation) ResetChildren() {
	m.children = nil
	m.clearedchildren = false
	m.removedchildren = nil
}

// Where appends a list predicates to the CreditTransactionMutation builder.
func (m *CreditTransactionMutation) Where(ps ...predicate.CreditTransaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CreditTransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CreditTransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CreditTransaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CreditTransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CreditTransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CreditTransaction).
func (m *CreditTransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CreditTransactionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.organization != nil {
		fields = append(fields, credittransaction.FieldOrganizationID)
	}
	if m.parent != nil {
		fields = append(fields, credittransaction.FieldParentTransactionID)
	}
	if m.centicredits_before != nil {
		fields = append(fields, credittransaction.FieldCenticreditsBefore)
	}
	if m.centicredits_after != nil {
		fields = append(fields, credittransaction.FieldCenticreditsAfter)
	}
	if m.centicredits_delta != nil {
		fields = append(fields, credittransaction.FieldCenticreditsDelta)
	}
	if m.bot_id != nil {
		fields = append(fields, credittransaction.FieldBotID)
	}
	if m.stripe_payment_intent_id != nil {
		fields = append(fields, credittransaction.FieldStripePaymentIntentID)
	}
	if m.description != nil {
		fields = append(fields, credittransaction.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, credittransaction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CreditTransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case credittransaction.FieldOrganizationID:
		return m.OrganizationID()
	case credittransaction.FieldParentTransactionID:
		return m.ParentTransactionID()
	case credittransaction.FieldCenticreditsBefore:
		return m.CenticreditsBefore()
	case credittransaction.FieldCenticreditsAfter:
		return m.CenticreditsAfter()
	case credittransaction.FieldCenticreditsDelta:
		return m.CenticreditsDelta()
	case credittransaction.FieldBotID:
		return m.BotID()
	case credittransaction.FieldStripePaymentIntentID:
		return m.StripePaymentIntentID()
	case credittransaction.FieldDescription:
		return m.Description()
	case credittransaction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CreditTransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case credittransaction.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case credittransaction.FieldParentTransactionID:
		return m.OldParentTransactionID(ctx)
	case credittransaction.FieldCenticreditsBefore:
		return m.OldCenticreditsBefore(ctx)
	case credittransaction.FieldCenticreditsAfter:
		return m.OldCenticreditsAfter(ctx)
	case credittransaction.FieldCenticreditsDelta:
		return m.OldCenticreditsDelta(ctx)
	case credittransaction.FieldBotID:
		return m.OldBotID(ctx)
	case credittransaction.FieldStripePaymentIntentID:
		return m.OldStripePaymentIntentID(ctx)
	case credittransaction.FieldDescription:
		return m.OldDescription(ctx)
	case credittransaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CreditTransaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreditTransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case credittransaction.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case credittransaction.FieldParentTransactionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTransactionID(v)
		return nil
	case credittransaction.FieldCenticreditsBefore:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCenticreditsBefore(v)
		return nil
	case credittransaction.FieldCenticreditsAfter:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCenticreditsAfter(v)
		return nil
	case credittransaction.FieldCenticreditsDelta:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCenticreditsDelta(v)
		return nil
	case credittransaction.FieldBotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotID(v)
		return nil
	case credittransaction.FieldStripePaymentIntentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStripePaymentIntentID(v)
		return nil
	case credittransaction.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case credittransaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CreditTransaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CreditTransactionMutation) AddedFields() []string {
	var fields []string
	if m.addcenticredits_before != nil {
		fields = append(fields, credittransaction.FieldCenticreditsBefore)
	}
	if m.addcenticredits_after != nil {
		fields = append(fields, credittransaction.FieldCenticreditsAfter)
	}
	if m.addcenticredits_delta != nil {
		fields = append(fields, credittransaction.FieldCenticreditsDelta)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CreditTransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case credittransaction.FieldCenticreditsBefore:
		return m.AddedCenticreditsBefore()
	case credittransaction.FieldCenticreditsAfter:
		return m.AddedCenticreditsAfter()
	case credittransaction.FieldCenticreditsDelta:
		return m.AddedCenticreditsDelta()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreditTransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case credittransaction.FieldCenticreditsBefore:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCenticreditsBefore(v)
		return nil
	case credittransaction.FieldCenticreditsAfter:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCenticreditsAfter(v)
		return nil
	case credittransaction.FieldCenticreditsDelta:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCenticreditsDelta(v)
		return nil
	}
	return fmt.Errorf("unknown CreditTransaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CreditTransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(credittransaction.FieldParentTransactionID) {
		fields = append(fields, credittransaction.FieldParentTransactionID)
	}
	if m.FieldCleared(credittransaction.FieldBotID) {
		fields = append(fields, credittransaction.FieldBotID)
	}
	if m.FieldCleared(credittransaction.FieldStripePaymentIntentID) {
		fields = append(fields, credittransaction.FieldStripePaymentIntentID)
	}
	if m.FieldCleared(credittransaction.FieldDescription) {
		fields = append(fields, credittransaction.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CreditTransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CreditTransactionMutation) ClearField(name string) error {
	switch name {
	case credittransaction.FieldParentTransactionID:
		m.ClearParentTransactionID()
		return nil
	case credittransaction.FieldBotID:
		m.ClearBotID()
		return nil
	case credittransaction.FieldStripePaymentIntentID:
		m.ClearStripePaymentIntentID()
		return nil
	case credittransaction.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown CreditTransaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CreditTransactionMutation) ResetField(name string) error {
	switch name {
	case credittransaction.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case credittransaction.FieldParentTransactionID:
		m.ResetParentTransactionID()
		return nil
	case credittransaction.FieldCenticreditsBefore:
		m.ResetCenticreditsBefore()
		return nil
	case credittransaction.FieldCenticreditsAfter:
		m.ResetCenticreditsAfter()
		return nil
	case credittransaction.FieldCenticreditsDelta:
		m.ResetCenticreditsDelta()
		return nil
	case credittransaction.FieldBotID:
		m.ResetBotID()
		return nil
	case credittransaction.FieldStripePaymentIntentID:
		m.ResetStripePaymentIntentID()
		return nil
	case credittransaction.FieldDescription:
		m.ResetDescription()
		return nil
	case credittransaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CreditTransaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CreditTransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.organization != nil {
		edges = append(edges, credittransaction.EdgeOrganization)
	}
	if m.parent != nil {
		edges = append(edges, credittransaction.EdgeParent)
	}
	if m.children != nil {
		edges = append(edges, credittransaction.EdgeChildren)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CreditTransactionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case credittransaction.EdgeOrganization:
		if id := m.organization; id != nil {
			return []ent.Value{*id}
		}
	case credittransaction.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case credittransaction.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.children))
		for id := range m.children {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CreditTransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedchildren != nil {
		edges = append(edges, credittransaction.EdgeChildren)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CreditTransactionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case credittransaction.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.removedchildren))
		for id := range m.removedchildren {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CreditTransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedorganization {
		edges = append(edges, credittransaction.EdgeOrganization)
	}
	if m.clearedparent {
		edges = append(edges, credittransaction.EdgeParent)
	}
	if m.clearedchildren {
		edges = append(edges, credittransaction.EdgeChildren)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CreditTransactionMutation) EdgeCleared(name string) bool {
	switch name {
	case credittransaction.EdgeOrganization:
		return m.clearedorganization
	case credittransaction.EdgeParent:
		return m.clearedparent
	case credittransaction.EdgeChildren:
		return m.clearedchildren
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CreditTransactionMutation) ClearEdge(name string) error {
	switch name {
	case credittransaction.EdgeOrganization:
		m.ClearOrganization()
		return nil
	case credittransaction.EdgeParent:
		m.ClearParent()
		return nil
	}
	return fmt.Errorf("unknown CreditTransaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CreditTransactionMutation) ResetEdge(name string) error {
	switch name {
	case credittransaction.EdgeOrganization:
		m.ResetOrganization()
		return nil
	case credittransaction.EdgeParent:
		m.ResetParent()
		return nil
	case credittransaction.EdgeChildren:
		m.ResetChildren()
		return nil
	}
	return fmt.Errorf("unknown CreditTransaction edge %s", name)
}

// OrganizationMutation represents an operation that mutates the Organization nodes in the graph.
type OrganizationMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	name                       *string
	centicredits               *int64
	addcenticredits            *int64
	created_at                 *time.Time
	clearedFields              map[string]struct{}
	projects                   map[string]struct{}
	removedprojects            map[string]struct{}
	clearedprojects            bool
	credit_transactions        map[string]struct{}
	removedcredit_transactions map[string]struct{}
	clearedcredit_transactions bool
	done                       bool
	oldValue                   func(context.Context) (*Organization, error)
	predicates                 []predicate.Organization
}

var _ ent.Mutation = (*OrganizationMutation)(nil)

// organizationOption allows management of the mutation configuration using functional options.
type organizationOption func(*OrganizationMutation)

// newOrganizationMutation creates new mutation for the Organization entity.
func newOrganizationMutation(c config, op Op, opts ...organizationOption) *OrganizationMutation {
	m := &OrganizationMutation{
		config:        c,
		op:            op,
		typ:           TypeOrganization,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrganizationID sets the ID field of the mutation.
func withOrganizationID(id string) organizationOption {
	return func(m *OrganizationMutation) {
		var (
			err   error
			once  sync.Once
			value *Organization
		)
		m.oldValue = func(ctx context.Context) (*Organization, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Organization.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrganization sets the old Organization of the mutation.
func withOrganization(node *Organization) organizationOption {
	return func(m *OrganizationMutation) {
		m.oldValue = func(context.Context) (*Organization, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrganizationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrganizationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Organization entities.
func (m *OrganizationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrganizationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrganizationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Organization.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *OrganizationMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *OrganizationMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *OrganizationMutation) ResetName() {
	m.name = nil
}

// SetCenticredits sets the "centicredits" field.
func (m *OrganizationMutation) SetCenticredits(i int64) {
	m.centicredits = &i
	m.addcenticredits = nil
}

// Centicredits returns the value of the "centicredits" field in the mutation.
func (m *OrganizationMutation) Centicredits() (r int64, exists bool) {
	v := m.centicredits
	if v == nil {
		return
	}
	return *v, true
}

// OldCenticredits returns the old "centicredits" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldCenticredits(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCenticredits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCenticredits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCenticredits: %w", err)
	}
	return oldValue.Centicredits, nil
}

// AddCenticredits adds i to the "centicredits" field.
func (m *OrganizationMutation) AddCenticredits(i int64) {
	if m.addcenticredits != nil {
		*m.addcenticredits += i
	} else {
		m.addcenticredits = &i
	}
}

// AddedCenticredits returns the value that was added to the "centicredits" field in this mutation.
func (m *OrganizationMutation) AddedCenticredits() (r int64, exists bool) {
	v := m.addcenticredits
	if v == nil {
		return
	}
	return *v, true
}

// ResetCenticredits resets all changes to the "centicredits" field.
func (m *OrganizationMutation) ResetCenticredits() {
	m.centicredits = nil
	m.addcenticredits = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OrganizationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrganizationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Organization entity.
// If the Organization object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrganizationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrganizationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddProjectIDs adds the "projects" edge to the Project entity by ids.
func (m *OrganizationMutation) AddProjectIDs(ids ...string) {
	if m.projects == nil {
		m.projects = make(map[string]struct{})
	}
	for i := range ids {
		m.projects[ids[i]] = struct{}{}
	}
}

// ClearProjects clears the "projects" edge to the Project entity.
func (m *OrganizationMutation) ClearProjects() {
	m.clearedprojects = true
}

// ProjectsCleared reports if the "projects" edge to the Project entity was cleared.
func (m *OrganizationMutation) ProjectsCleared() bool {
	return m.clearedprojects
}

// RemoveProjectIDs removes the "projects" edge to the Project entity by IDs.
func (m *OrganizationMutation) RemoveProjectIDs(ids ...string) {
	if m.removedprojects == nil {
		m.removedprojects = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.projects, ids[i])
		m.removedprojects[ids[i]] = struct{}{}
	}
}

// RemovedProjects returns the removed IDs of the "projects" edge to the Project entity.
func (m *OrganizationMutation) RemovedProjectsIDs() (ids []string) {
	for id := range m.removedprojects {
		ids = append(ids, id)
	}
	return
}

// ProjectsIDs returns the "projects" edge IDs in the mutation.
func (m *OrganizationMutation) ProjectsIDs() (ids []string) {
	for id := range m.projects {
		ids = append(ids, id)
	}
	return
}

// ResetProjects resets all changes to the "projects" edge.
func (m *OrganizationMutation) ResetProjects() {
	m.projects = nil
	m.clearedprojects = false
	m.removedprojects = nil
}

// AddCreditTransactionIDs adds the "credit_transactions" edge to the CreditTransaction entity by ids.
func (m *OrganizationMutation) AddCreditTransactionIDs(ids ...string) {
	if m.credit_transactions == nil {
		m.credit_transactions = make(map[string]struct{})
	}
	for i := range ids {
		m.credit_transactions[ids[i]] = struct{}{}
	}
}

// ClearCreditTransactions clears the "credit_transactions" edge to the CreditTransaction entity.
func (m *OrganizationMutation) ClearCreditTransactions() {
	m.clearedcredit_transactions = true
}

// CreditTransactionsCleared reports if the "credit_transactions" edge to the CreditTransaction entity was cleared.
func (m *OrganizationMutation) CreditTransactionsCleared() bool {
	return m.clearedcredit_transactions
}

// RemoveCreditTransactionIDs removes the "credit_transactions" edge to the CreditTransaction entity by IDs.
func (m *OrganizationMutation) RemoveCreditTransactionIDs(ids ...string) {
	if m.removedcredit_transactions == nil {
		m.removedcredit_transactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.credit_transactions, ids[i])
		m.removedcredit_transactions[ids[i]] = struct{}{}
	}
}

// RemovedCreditTransactions returns the removed IDs of the "credit_transactions" edge to the CreditTransaction entity.
func (m *OrganizationMutation) RemovedCreditTransactionsIDs() (ids []string) {
	for id := range m.removedcredit_transactions {
		ids = append(ids, id)
	}
	return
}

// CreditTransactionsIDs returns the "credit_transactions" edge IDs in the mutation.
func (m *OrganizationMutation) CreditTransactionsIDs() (ids []string) {
	for id := range m.credit_transactions {
		ids = append(ids, id)
	}
	return
}

// ResetCreditTransactions resets all changes to the "credit_transactions" edge.
func (m *OrganizationMutation) ResetCreditTransactions() {
	m.credit_transactions = nil
	m.clearedcredit_transactions = false
	m.removedcredit_transactions = nil
}

// Where appends a list predicates to the OrganizationMutation builder.
func (m *OrganizationMutation) Where(ps ...predicate.Organization) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrganizationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrganizationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Organization, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrganizationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrganizationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Organization).
func (m *OrganizationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrganizationMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, organization.FieldName)
	}
	if m.centicredits != nil {
		fields = append(fields, organization.FieldCenticredits)
	}
	if m.created_at != nil {
		fields = append(fields, organization.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrganizationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case organization.FieldName:
		return m.Name()
	case organization.FieldCenticredits:
		return m.Centicredits()
	case organization.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrganizationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case organization.FieldName:
		return m.OldName(ctx)
	case organization.FieldCenticredits:
		return m.OldCenticredits(ctx)
	case organization.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Organization field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrganizationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case organization.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case organization.FieldCenticredits:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCenticredits(v)
		return nil
	case organization.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Organization field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrganizationMutation) AddedFields() []string {
	var fields []string
	if m.addcenticredits != nil {
		fields = append(fields, organization.FieldCenticredits)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrganizationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case organization.FieldCenticredits:
		return m.AddedCenticredits()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrganizationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case organization.FieldCenticredits:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCenticredits(v)
		return nil
	}
	return fmt.Errorf("unknown Organization numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrganizationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrganizationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrganizationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Organization nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrganizationMutation) ResetField(name string) error {
	switch name {
	case organization.FieldName:
		m.ResetName()
		return nil
	case organization.FieldCenticredits:
		m.ResetCenticredits()
		return nil
	case organization.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Organization field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrganizationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.projects != nil {
		edges = append(edges, organization.EdgeProjects)
	}
	if m.credit_transactions != nil {
		edges = append(edges, organization.EdgeCreditTransactions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrganizationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case organization.EdgeProjects:
		ids := make([]ent.Value, 0, len(m.projects))
		for id := range m.projects {
			ids = append(ids, id)
		}
		return ids
	case organization.EdgeCreditTransactions:
		ids := make([]ent.Value, 0, len(m.credit_transactions))
		for id := range m.credit_transactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrganizationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedprojects != nil {
		edges = append(edges, organization.EdgeProjects)
	}
	if m.removedcredit_transactions != nil {
		edges = append(edges, organization.EdgeCreditTransactions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrganizationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case organization.EdgeProjects:
		ids := make([]ent.Value, 0, len(m.removedprojects))
		for id := range m.removedprojects {
			ids = append(ids, id)
		}
		return ids
	case organization.EdgeCreditTransactions:
		ids := make([]ent.Value, 0, len(m.removedcredit_transactions))
		for id := range m.removedcredit_transactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrganizationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedprojects {
		edges = append(edges, organization.EdgeProjects)
	}
	if m.clearedcredit_transactions {
		edges = append(edges, organization.EdgeCreditTransactions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrganizationMutation) EdgeCleared(name string) bool {
	switch name {
	case organization.EdgeProjects:
		return m.clearedprojects
	case organization.EdgeCreditTransactions:
		return m.clearedcredit_transactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrganizationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Organization unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrganizationMutation) ResetEdge(name string) error {
	switch name {
	case organization.EdgeProjects:
		m.ResetProjects()
		return nil
	case organization.EdgeCreditTransactions:
		m.ResetCreditTransactions()
		return nil
	}
	return fmt.Errorf("unknown Organization edge %s", name)
}

// ParticipantMutation represents an operation that mutates the Participant nodes in the graph.
type ParticipantMutation struct {
	config
	op            Op
	typ           string
	id            *string
	platform_uuid *string
	full_name     *string
	is_host       *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	bot           *string
	clearedbot    bool
	done          bool
	oldValue      func(context.Context) (*Participant, error)
	predicates    []predicate.Participant
}

var _ ent.Mutation = (*ParticipantMutation)(nil)

// participantOption allows management of the mutation configuration using functional options.
type participantOption func(*ParticipantMutation)

// newParticipantMutation creates new mutation for the Participant entity.
func newParticipantMutation(c config, op Op, opts ...participantOption) *ParticipantMutation {
	m := &ParticipantMutation{
		config:        c,
		op:            op,
		typ:           TypeParticipant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParticipantID sets the ID field of the mutation.
func withParticipantID(id string) participantOption {
	return func(m *ParticipantMutation) {
		var (
			err   error
			once  sync.Once
			value *Participant
		)
		m.oldValue = func(ctx context.Context) (*Participant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Participant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParticipant sets the old Participant of the mutation.
func withParticipant(node *Participant) participantOption {
	return func(m *ParticipantMutation) {
		m.oldValue = func(context.Context) (*Participant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParticipantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParticipantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Participant entities.
func (m *ParticipantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParticipantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParticipantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Participant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBotID sets the "bot_id" field.
func (m *ParticipantMutation) SetBotID(s string) {
	m.bot = &s
}

// BotID returns the value of the "bot_id" field in the mutation.
func (m *ParticipantMutation) BotID() (r string, exists bool) {
	v := m.bot
	if v == nil {
		return
	}
	return *v, true
}

// OldBotID returns the old "bot_id" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldBotID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotID: %w", err)
	}
	return oldValue.BotID, nil
}

// ResetBotID resets all changes to the "bot_id" field.
func (m *ParticipantMutation) ResetBotID() {
	m.bot = nil
}

// SetPlatformUUID sets the "platform_uuid" field.
func (m *ParticipantMutation) SetPlatformUUID(s string) {
	m.platform_uuid = &s
}

// PlatformUUID returns the value of the "platform_uuid" field in the mutation.
func (m *ParticipantMutation) PlatformUUID() (r string, exists bool) {
	v := m.platform_uuid
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformUUID returns the old "platform_uuid" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldPlatformUUID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformUUID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformUUID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformUUID: %w", err)
	}
	return oldValue.PlatformUUID, nil
}

// ResetPlatformUUID resets all changes to the "platform_uuid" field.
func (m *ParticipantMutation) ResetPlatformUUID() {
	m.platform_uuid = nil
}

// SetFullName sets the "full_name" field.
func (m *ParticipantMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *ParticipantMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *ParticipantMutation) ResetFullName() {
	m.full_name = nil
}

// SetIsHost sets the "is_host" field.
func (m *ParticipantMutation) SetIsHost(b bool) {
	m.is_host = &b
}

// IsHost returns the value of the "is_host" field in the mutation.
func (m *ParticipantMutation) IsHost() (r bool, exists bool) {
	v := m.is_host
	if v == nil {
		return
	}
	return *v, true
}

// OldIsHost returns the old "is_host" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldIsHost(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsHost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsHost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsHost: %w", err)
	}
	return oldValue.IsHost, nil
}

// ResetIsHost resets all changes to the "is_host" field.
func (m *ParticipantMutation) ResetIsHost() {
	m.is_host = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ParticipantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ParticipantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ParticipantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearBot clears the "bot" edge to the Bot entity.
func (m *ParticipantMutation) ClearBot() {
	m.clearedbot = true
	m.clearedFields[participant.FieldBotID] = struct{}{}
}

// BotCleared reports if the "bot" edge to the Bot entity was cleared.
func (m *ParticipantMutation) BotCleared() bool {
	return m.clearedbot
}

// BotIDs returns the "bot" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BotID instead. It exists only for internal usage by the builders.
func (m *ParticipantMutation) BotIDs() (ids []string) {
	if id := m.bot; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBot resets all changes to the "bot" edge.
func (m *ParticipantMutation) ResetBot() {
	m.bot = nil
	m.clearedbot = false
}

// Where appends a list predicates to the ParticipantMutation builder.
func (m *ParticipantMutation) Where(ps ...predicate.Participant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParticipantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParticipantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Participant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParticipantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParticipantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Participant).
func (m *ParticipantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParticipantMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.bot != nil {
		fields = append(fields, participant.FieldBotID)
	}
	if m.platform_uuid != nil {
		fields = append(fields, participant.FieldPlatformUUID)
	}
	if m.full_name != nil {
		fields = append(fields, participant.FieldFullName)
	}
	if m.is_host != nil {
		fields = append(fields, participant.FieldIsHost)
	}
	if m.created_at != nil {
		fields = append(fields, participant.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParticipantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case participant.FieldBotID:
		return m.BotID()
	case participant.FieldPlatformUUID:
		return m.PlatformUUID()
	case participant.FieldFullName:
		return m.FullName()
	case participant.FieldIsHost:
		return m.IsHost()
	case participant.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParticipantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case participant.FieldBotID:
		return m.OldBotID(ctx)
	case participant.FieldPlatformUUID:
		return m.OldPlatformUUID(ctx)
	case participant.FieldFullName:
		return m.OldFullName(ctx)
	case participant.FieldIsHost:
		return m.OldIsHost(ctx)
	case participant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Participant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case participant.FieldBotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotID(v)
		return nil
	case participant.FieldPlatformUUID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformUUID(v)
		return nil
	case participant.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case participant.FieldIsHost:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsHost(v)
		return nil
	case participant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Participant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParticipantMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParticipantMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Participant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParticipantMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParticipantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParticipantMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Participant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParticipantMutation) ResetField(name string) error {
	switch name {
	case participant.FieldBotID:
		m.ResetBotID()
		return nil
	case participant.FieldPlatformUUID:
		m.ResetPlatformUUID()
		return nil
	case participant.FieldFullName:
		m.ResetFullName()
		return nil
	case participant.FieldIsHost:
		m.ResetIsHost()
		return nil
	case participant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Participant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParticipantMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.bot != nil {
		edges = append(edges, participant.EdgeBot)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParticipantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case participant.EdgeBot:
		if id := m.bot; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParticipantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParticipantMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParticipantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbot {
		edges = append(edges, participant.EdgeBot)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParticipantMutation) EdgeCleared(name string) bool {
	switch name {
	case participant.EdgeBot:
		return m.clearedbot
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParticipantMutation) ClearEdge(name string) error {
	switch name {
	case participant.EdgeBot:
		m.ClearBot()
		return nil
	}
	return fmt.Errorf("unknown Participant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParticipantMutation) ResetEdge(name string) error {
	switch name {
	case participant.EdgeBot:
		m.ResetBot()
		return nil
	}
	return fmt.Errorf("unknown Participant edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	name                         *string
	webhook_secret               *string
	created_at                   *time.Time
	clearedFields                map[string]struct{}
	organization                 *string
	clearedorganization          bool
	bots                         map[string]struct{}
	removedbots                  map[string]struct{}
	clearedbots                  bool
	api_keys                     map[string]struct{}
	removedapi_keys              map[string]struct{}
	clearedapi_keys              bool
	webhook_subscriptions        map[string]struct{}
	removedwebhook_subscriptions map[string]struct{}
	clearedwebhook_subscriptions bool
	credentials                  map[string]struct{}
	removedcredentials           map[string]struct{}
	clearedcredentials           bool
	done                         bool
	oldValue                     func(context.Context) (*Project, error)
	predicates                   []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrganizationID sets the "organization_id" field.
func (m *ProjectMutation) SetOrganizationID(s string) {
	m.organization = &s
}

// OrganizationID returns the value of the "organization_id" field in the mutation.
func (m *ProjectMutation) OrganizationID() (r string, exists bool) {
	v := m.organization
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizationID returns the old "organization_id" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldOrganizationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizationID: %w", err)
	}
	return oldValue.OrganizationID, nil
}

// ResetOrganizationID resets all changes to the "organization_id" field.
func (m *ProjectMutation) ResetOrganizationID() {
	m.organization = nil
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetWebhookSecret sets the "webhook_secret" field.
func (m *ProjectMutation) SetWebhookSecret(s string) {
	m.webhook_secret = &s
}

// WebhookSecret returns the value of the "webhook_secret" field in the mutation.
func (m *ProjectMutation) WebhookSecret() (r string, exists bool) {
	v := m.webhook_secret
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookSecret returns the old "webhook_secret" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldWebhookSecret(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookSecret: %w", err)
	}
	return oldValue.WebhookSecret, nil
}

// ResetWebhookSecret resets all changes to the "webhook_secret" field.
func (m *ProjectMutation) ResetWebhookSecret() {
	m.webhook_secret = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (m *ProjectMutation) ClearOrganization() {
	m.clearedorganization = true
	m.clearedFields[project.FieldOrganizationID] = struct{}{}
}

// OrganizationCleared reports if the "organization" edge to the Organization entity was cleared.
func (m *ProjectMutation) OrganizationCleared() bool {
	return m.clearedorganization
}

// OrganizationIDs returns the "organization" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrganizationID instead. It exists only for internal usage by the builders.
func (m *ProjectMutation) OrganizationIDs() (ids []string) {
	if id := m.organization; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrganization resets all changes to the "organization" edge.
func (m *ProjectMutation) ResetOrganization() {
	m.organization = nil
	m.clearedorganization = false
}

// AddBotIDs adds the "bots" edge to the Bot entity by ids.
func (m *ProjectMutation) AddBotIDs(ids ...string) {
	if m.bots == nil {
		m.bots = make(map[string]struct{})
	}
	for i := range ids {
		m.bots[ids[i]] = struct{}{}
	}
}

// ClearBots clears the "bots" edge to the Bot entity.
func (m *ProjectMutation) ClearBots() {
	m.clearedbots = true
}

// BotsCleared reports if the "bots" edge to the Bot entity was cleared.
func (m *ProjectMutation) BotsCleared() bool {
	return m.clearedbots
}

// RemoveBotIDs removes the "bots" edge to the Bot entity by IDs.
func (m *ProjectMutation) RemoveBotIDs(ids ...string) {
	if m.removedbots == nil {
		m.removedbots = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.bots, ids[i])
		m.removedbots[ids[i]] = struct{}{}
	}
}

// RemovedBots returns the removed IDs of the "bots" edge to the Bot entity.
func (m *ProjectMutation) RemovedBotsIDs() (ids []string) {
	for id := range m.removedbots {
		ids = append(ids, id)
	}
	return
}

// BotsIDs returns the "bots" edge IDs in the mutation.
func (m *ProjectMutation) BotsIDs() (ids []string) {
	for id := range m.bots {
		ids = append(ids, id)
	}
	return
}

// ResetBots resets all changes to the "bots" edge.
func (m *ProjectMutation) ResetBots() {
	m.bots = nil
	m.clearedbots = false
	m.removedbots = nil
}

// AddAPIKeyIDs adds the "api_keys" edge to the APIKey entity by ids.
func (m *ProjectMutation) AddAPIKeyIDs(ids ...string) {
	if m.api_keys == nil {
		m.api_keys = make(map[string]struct{})
	}
	for i := range ids {
		m.api_keys[ids[i]] = struct{}{}
	}
}

// ClearAPIKeys clears the "api_keys" edge to the APIKey entity.
func (m *ProjectMutation) ClearAPIKeys() {
	m.clearedapi_keys = true
}

// APIKeysCleared reports if the "api_keys" edge to the APIKey entity was cleared.
func (m *ProjectMutation) APIKeysCleared() bool {
	return m.clearedapi_keys
}

// RemoveAPIKeyIDs removes the "api_keys" edge to the APIKey entity by IDs.
func (m *ProjectMutation) RemoveAPIKeyIDs(ids ...string) {
	if m.removedapi_keys == nil {
		m.removedapi_keys = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.api_keys, ids[i])
		m.removedapi_keys[ids[i]] = struct{}{}
	}
}

// RemovedAPIKeys returns the removed IDs of the "api_keys" edge to the APIKey entity.
func (m *ProjectMutation) RemovedAPIKeysIDs() (ids []string) {
	for id := range m.removedapi_keys {
		ids = append(ids, id)
	}
	return
}

// APIKeysIDs returns the "api_keys" edge IDs in the mutation.
func (m *ProjectMutation) APIKeysIDs() (ids []string) {
	for id := range m.api_keys {
		ids = append(ids, id)
	}
	return
}

// ResetAPIKeys resets all changes to the "api_keys" edge.
func (m *ProjectMutation) ResetAPIKeys() {
	m.api_keys = nil
	m.clearedapi_keys = false
	m.removedapi_keys = nil
}

// AddWebhookSubscriptionIDs adds the "webhook_subscriptions" edge to the WebhookSubscription entity by ids.
func (m *ProjectMutation) AddWebhookSubscriptionIDs(ids ...string) {
	if m.webhook_subscriptions == nil {
		m.webhook_subscriptions = make(map[string]struct{})
	}
	for i := range ids {
		m.webhook_subscriptions[ids[i]] = struct{}{}
	}
}

// ClearWebhookSubscriptions clears the "webhook_subscriptions" edge to the WebhookSubscription entity.
func (m *ProjectMutation) ClearWebhookSubscriptions() {
	m.clearedwebhook_subscriptions = true
}

// WebhookSubscriptionsCleared reports if the "webhook_subscriptions" edge to the WebhookSubscription entity was cleared.
func (m *ProjectMutation) WebhookSubscriptionsCleared() bool {
	return m.clearedwebhook_subscriptions
}

// RemoveWebhookSubscriptionIDs removes the "webhook_subscriptions" edge to the WebhookSubscription entity by IDs.
func (m *ProjectMutation) RemoveWebhookSubscriptionIDs(ids ...string) {
	if m.removedwebhook_subscriptions == nil {
		m.removedwebhook_subscriptions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.webhook_subscriptions, ids[i])
		m.removedwebhook_subscriptions[ids[i]] = struct{}{}
	}
}

// RemovedWebhookSubscriptions returns the removed IDs of the "webhook_subscriptions" edge to the WebhookSubscription entity.
func (m *ProjectMutation) RemovedWebhookSubscriptionsIDs() (ids []string) {
	for id := range m.removedwebhook_subscriptions {
		ids = append(ids, id)
	}
	return
}

// WebhookSubscriptionsIDs returns the "webhook_subscriptions" edge IDs in the mutation.
func (m *ProjectMutation) WebhookSubscriptionsIDs() (ids []string) {
	for id := range m.webhook_subscriptions {
		ids = append(ids, id)
	}
	return
}

// ResetWebhookSubscriptions resets all changes to the "webhook_subscriptions" edge.
func (m *ProjectMutation) ResetWebhookSubscriptions() {
	m.webhook_subscriptions = nil
	m.clearedwebhook_subscriptions = false
	m.removedwebhook_subscriptions = nil
}

// AddCredentialIDs adds the "credentials" edge to the ProjectCredential entity by ids.
func (m *ProjectMutation) AddCredentialIDs(ids ...string) {
	if m.credentials == nil {
		m.credentials = make(map[string]struct{})
	}
	for i := range ids {
		m.credentials[ids[i]] = struct{}{}
	}
}

// ClearCredentials clears the "credentials" edge to the ProjectCredential entity.
func (m *ProjectMutation) ClearCredentials() {
	m.clearedcredentials = true
}

// CredentialsCleared reports if the "credentials" edge to the ProjectCredential entity was cleared.
func (m *ProjectMutation) CredentialsCleared() bool {
	return m.clearedcredentials
}

// RemoveCredentialIDs removes the "credentials" edge to the ProjectCredential entity by IDs.
func (m *ProjectMutation) RemoveCredentialIDs(ids ...string) {
	if m.removedcredentials == nil {
		m.removedcredentials = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.credentials, ids[i])
		m.removedcredentials[ids[i]] = struct{}{}
	}
}

// RemovedCredentials returns the removed IDs of the "credentials" edge to the ProjectCredential entity.
func (m *ProjectMutation) RemovedCredentialsIDs() (ids []string) {
	for id := range m.removedcredentials {
		ids = append(ids, id)
	}
	return
}

// CredentialsIDs returns the "credentials" edge IDs in the mutation.
func (m *ProjectMutation) CredentialsIDs() (ids []string) {
	for id := range m.credentials {
		ids = append(ids, id)
	}
	return
}

// ResetCredentials resets all changes to the "credentials" edge.
func (m *ProjectMutation) ResetCredentials() {
	m.credentials = nil
	m.clearedcredentials = false
	m.removedcredentials = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.organization != nil {
		fields = append(fields, project.FieldOrganizationID)
	}
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.webhook_secret != nil {
		fields = append(fields, project.FieldWebhookSecret)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldOrganizationID:
		return m.OrganizationID()
	case project.FieldName:
		return m.Name()
	case project.FieldWebhookSecret:
		return m.WebhookSecret()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldOrganizationID:
		return m.OldOrganizationID(ctx)
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldWebhookSecret:
		return m.OldWebhookSecret(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldOrganizationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizationID(v)
		return nil
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldWebhookSecret:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookSecret(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldOrganizationID:
		m.ResetOrganizationID()
		return nil
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldWebhookSecret:
		m.ResetWebhookSecret()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.organization != nil {
		edges = append(edges, project.EdgeOrganization)
	}
	if m.bots != nil {
		edges = append(edges, project.EdgeBots)
	}
	if m.api_keys != nil {
		edges = append(edges, project.EdgeAPIKeys)
	}
	if m.webhook_subscriptions != nil {
		edges = append(edges, project.EdgeWebhookSubscriptions)
	}
	if m.credentials != nil {
		edges = append(edges, project.EdgeCredentials)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeOrganization:
		if id := m.organization; id != nil {
			return []ent.Value{*id}
		}
	case project.EdgeBots:
		ids := make([]ent.Value, 0, len(m.bots))
		for id := range m.bots {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeAPIKeys:
		ids := make([]ent.Value, 0, len(m.api_keys))
		for id := range m.api_keys {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeWebhookSubscriptions:
		ids := make([]ent.Value, 0, len(m.webhook_subscriptions))
		for id := range m.webhook_subscriptions {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeCredentials:
		ids := make([]ent.Value, 0, len(m.credentials))
		for id := range m.credentials {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedbots != nil {
		edges = append(edges, project.EdgeBots)
	}
	if m.removedapi_keys != nil {
		edges = append(edges, project.EdgeAPIKeys)
	}
	if m.removedwebhook_subscriptions != nil {
		edges = append(edges, project.EdgeWebhookSubscriptions)
	}
	if m.removedcredentials != nil {
		edges = append(edges, project.EdgeCredentials)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeBots:
		ids := make([]ent.Value, 0, len(m.removedbots))
		for id := range m.removedbots {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeAPIKeys:
		ids := make([]ent.Value, 0, len(m.removedapi_keys))
		for id := range m.removedapi_keys {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeWebhookSubscriptions:
		ids := make([]ent.Value, 0, len(m.removedwebhook_subscriptions))
		for id := range m.removedwebhook_subscriptions {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeCredentials:
		ids := make([]ent.Value, 0, len(m.removedcredentials))
		for id := range m.removedcredentials {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedorganization {
		edges = append(edges, project.EdgeOrganization)
	}
	if m.clearedbots {
		edges = append(edges, project.EdgeBots)
	}
	if m.clearedapi_keys {
		edges = append(edges, project.EdgeAPIKeys)
	}
	if m.clearedwebhook_subscriptions {
		edges = append(edges, project.EdgeWebhookSubscriptions)
	}
	if m.clearedcredentials {
		edges = append(edges, project.EdgeCredentials)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeOrganization:
		return m.clearedorganization
	case project.EdgeBots:
		return m.clearedbots
	case project.EdgeAPIKeys:
		return m.clearedapi_keys
	case project.EdgeWebhookSubscriptions:
		return m.clearedwebhook_subscriptions
	case project.EdgeCredentials:
		return m.clearedcredentials
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	case project.EdgeOrganization:
		m.ClearOrganization()
		return nil
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeOrganization:
		m.ResetOrganization()
		return nil
	case project.EdgeBots:
		m.ResetBots()
		return nil
	case project.EdgeAPIKeys:
		m.ResetAPIKeys()
		return nil
	case project.EdgeWebhookSubscriptions:
		m.ResetWebhookSubscriptions()
		return nil
	case project.EdgeCredentials:
		m.ResetCredentials()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// ProjectCredentialMutation represents an operation that mutates the ProjectCredential nodes in the graph.
type ProjectCredentialMutation struct {
	config
	op              Op
	typ             string
	id              *string
	credential_kind *string
	encrypted_blob  *[]byte
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	project         *string
	clearedproject  bool
	done            bool
	oldValue        func(context.Context) (*ProjectCredential, error)
	predicates      []predicate.ProjectCredential
}

var _ ent.Mutation = (*ProjectCredentialMutation)(nil)

// projectcredentialOption allows management of the mutation configuration using functional options.
type projectcredentialOption func(*ProjectCredentialMutation)

// newProjectCredentialMutation creates new mutation for the ProjectCredential entity.
func newProjectCredentialMutation(c config, op Op, opts ...projectcredentialOption) *ProjectCredentialMutation {
	m := &ProjectCredentialMutation{
		config:        c,
		op:            op,
		typ:           TypeProjectCredential,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectCredentialID sets the ID field of the mutation.
func withProjectCredentialID(id string) projectcredentialOption {
	return func(m *ProjectCredentialMutation) {
		var (
			err   error
			once  sync.Once
			value *ProjectCredential
		)
		m.oldValue = func(ctx context.Context) (*ProjectCredential, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProjectCredential.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProjectCredential sets the old ProjectCredential of the mutation.
func withProjectCredential(node *ProjectCredential) projectcredentialOption {
	return func(m *ProjectCredentialMutation) {
		m.oldValue = func(context.Context) (*ProjectCredential, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectCredentialMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectCredentialMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProjectCredential entities.
func (m *ProjectCredentialMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectCredentialMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectCredentialMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProjectCredential.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ProjectCredentialMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ProjectCredentialMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ProjectCredential entity.
// If the ProjectCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectCredentialMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ProjectCredentialMutation) ResetProjectID() {
	m.project = nil
}

// SetCredentialKind sets the "credential_kind" field.
func (m *ProjectCredentialMutation) SetCredentialKind(s string) {
	m.credential_kind = &s
}

// CredentialKind returns the value of the "credential_kind" field in the mutation.
func (m *ProjectCredentialMutation) CredentialKind() (r string, exists bool) {
	v := m.credential_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldCredentialKind returns the old "credential_kind" field's value of the ProjectCredential entity.
// If the ProjectCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectCredentialMutation) OldCredentialKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCredentialKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCredentialKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCredentialKind: %w", err)
	}
	return oldValue.CredentialKind, nil
}

// ResetCredentialKind resets all changes to the "credential_kind" field.
func (m *ProjectCredentialMutation) ResetCredentialKind() {
	m.credential_kind = nil
}

// SetEncryptedBlob sets the "encrypted_blob" field.
func (m *ProjectCredentialMutation) SetEncryptedBlob(b []byte) {
	m.encrypted_blob = &b
}

// EncryptedBlob returns the value of the "encrypted_blob" field in the mutation.
func (m *ProjectCredentialMutation) EncryptedBlob() (r []byte, exists bool) {
	v := m.encrypted_blob
	if v == nil {
		return
	}
	return *v, true
}

// OldEncryptedBlob returns the old "encrypted_blob" field's value of the ProjectCredential entity.
// If the ProjectCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectCredentialMutation) OldEncryptedBlob(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEncryptedBlob is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEncryptedBlob requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEncryptedBlob: %w", err)
	}
	return oldValue.EncryptedBlob, nil
}

// ResetEncryptedBlob resets all changes to the "encrypted_blob" field.
func (m *ProjectCredentialMutation) ResetEncryptedBlob() {
	m.encrypted_blob = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectCredentialMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectCredentialMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProjectCredential entity.
// If the ProjectCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectCredentialMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectCredentialMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectCredentialMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectCredentialMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProjectCredential entity.
// If the ProjectCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectCredentialMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectCredentialMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *ProjectCredentialMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[projectcredential.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *ProjectCredentialMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *ProjectCredentialMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *ProjectCredentialMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// Where appends a list predicates to the ProjectCredentialMutation builder.
func (m *ProjectCredentialMutation) Where(ps ...predicate.ProjectCredential) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectCredentialMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectCredentialMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProjectCredential, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectCredentialMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectCredentialMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProjectCredential).
func (m *ProjectCredentialMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectCredentialMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.project != nil {
		fields = append(fields, projectcredential.FieldProjectID)
	}
	if m.credential_kind != nil {
		fields = append(fields, projectcredential.FieldCredentialKind)
	}
	if m.encrypted_blob != nil {
		fields = append(fields, projectcredential.FieldEncryptedBlob)
	}
	if m.created_at != nil {
		fields = append(fields, projectcredential.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, projectcredential.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectCredentialMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case projectcredential.FieldProjectID:
		return m.ProjectID()
	case projectcredential.FieldCredentialKind:
		return m.CredentialKind()
	case projectcredential.FieldEncryptedBlob:
		return m.EncryptedBlob()
	case projectcredential.FieldCreatedAt:
		return m.CreatedAt()
	case projectcredential.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectCredentialMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case projectcredential.FieldProjectID:
		return m.OldProjectID(ctx)
	case projectcredential.FieldCredentialKind:
		return m.OldCredentialKind(ctx)
	case projectcredential.FieldEncryptedBlob:
		return m.OldEncryptedBlob(ctx)
	case projectcredential.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case projectcredential.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProjectCredential field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectCredentialMutation) SetField(name string, value ent.Value) error {
	switch name {
	case projectcredential.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case projectcredential.FieldCredentialKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCredentialKind(v)
		return nil
	case projectcredential.FieldEncryptedBlob:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEncryptedBlob(v)
		return nil
	case projectcredential.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case projectcredential.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectCredential field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectCredentialMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectCredentialMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectCredentialMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProjectCredential numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectCredentialMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectCredentialMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectCredentialMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProjectCredential nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectCredentialMutation) ResetField(name string) error {
	switch name {
	case projectcredential.FieldProjectID:
		m.ResetProjectID()
		return nil
	case projectcredential.FieldCredentialKind:
		m.ResetCredentialKind()
		return nil
	case projectcredential.FieldEncryptedBlob:
		m.ResetEncryptedBlob()
		return nil
	case projectcredential.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case projectcredential.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProjectCredential field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectCredentialMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.project != nil {
		edges = append(edges, projectcredential.EdgeProject)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectCredentialMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case projectcredential.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectCredentialMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectCredentialMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectCredentialMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproject {
		edges = append(edges, projectcredential.EdgeProject)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectCredentialMutation) EdgeCleared(name string) bool {
	switch name {
	case projectcredential.EdgeProject:
		return m.clearedproject
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectCredentialMutation) ClearEdge(name string) error {
	switch name {
	case projectcredential.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown ProjectCredential unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectCredentialMutation) ResetEdge(name string) error {
	switch name {
	case projectcredential.EdgeProject:
		m.ResetProject()
		return nil
	}
	return fmt.Errorf("unknown ProjectCredential edge %s", name)
}

// RecordingMutation represents an operation that mutates the Recording nodes in the graph.
type RecordingMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	recording_kind        *lifecycle.RecordingKind
	transcription_kind    *lifecycle.TranscriptionKind
	state                 *lifecycle.RecordingState
	transcription_state   *lifecycle.TranscriptionState
	started_at            *time.Time
	completed_at          *time.Time
	media_blob_id         *string
	failure_reasons       *[]string
	appendfailure_reasons []string
	version               *int64
	addversion            *int64
	created_at            *time.Time
	clearedFields         map[string]struct{}
	bot                   *string
	clearedbot            bool
	utterances            map[string]struct{}
	removedutterances     map[string]struct{}
	clearedutterances     bool
	done                  bool
	oldValue              func(context.Context) (*Recording, error)
	predicates            []predicate.Recording
}

var _ ent.Mutation = (*RecordingMutation)(nil)

// recordingOption allows management of the mutation configuration using functional options.
type recordingOption func(*RecordingMutation)

// newRecordingMutation creates new mutation for the Recording entity.
func newRecordingMutation(c config, op Op, opts ...recordingOption) *RecordingMutation {
	m := &RecordingMutation{
		config:        c,
		op:            op,
		typ:           TypeRecording,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecordingID sets the ID field of the mutation.
func withRecordingID(id string) recordingOption {
	return func(m *RecordingMutation) {
		var (
			err   error
			once  sync.Once
			value *Recording
		)
		m.oldValue = func(ctx context.Context) (*Recording, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Recording.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecording sets the old Recording of the mutation.
func withRecording(node *Recording) recordingOption {
	return func(m *RecordingMutation) {
		m.oldValue = func(context.Context) (*Recording, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecordingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecordingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Recording entities.
func (m *RecordingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecordingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecordingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Recording.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBotID sets the "bot_id" field.
func (m *RecordingMutation) SetBotID(s string) {
	m.bot = &s
}

// BotID returns the value of the "bot_id" field in the mutation.
func (m *RecordingMutation) BotID() (r string, exists bool) {
	v := m.bot
	if v == nil {
		return
	}
	return *v, true
}

// OldBotID returns the old "bot_id" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldBotID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotID: %w", err)
	}
	return oldValue.BotID, nil
}

// ResetBotID resets all changes to the "bot_id" field.
func (m *RecordingMutation) ResetBotID() {
	m.bot = nil
}

// SetRecordingKind sets the "recording_kind" field.
func (m *RecordingMutation) SetRecordingKind(lk lifecycle.RecordingKind) {
	m.recording_kind = &lk
}

// RecordingKind returns the value of the "recording_kind" field in the mutation.
func (m *RecordingMutation) RecordingKind() (r lifecycle.RecordingKind, exists bool) {
	v := m.recording_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordingKind returns the old "recording_kind" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldRecordingKind(ctx context.Context) (v lifecycle.RecordingKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordingKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordingKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordingKind: %w", err)
	}
	return oldValue.RecordingKind, nil
}

// ResetRecordingKind resets all changes to the "recording_kind" field.
func (m *RecordingMutation) ResetRecordingKind() {
	m.recording_kind = nil
}

// SetTranscriptionKind sets the "transcription_kind" field.
func (m *RecordingMutation) SetTranscriptionKind(lk lifecycle.TranscriptionKind) {
	m.transcription_kind = &lk
}

// TranscriptionKind returns the value of the "transcription_kind" field in the mutation.
func (m *RecordingMutation) TranscriptionKind() (r lifecycle.TranscriptionKind, exists bool) {
	v := m.transcription_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptionKind returns the old "transcription_kind" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldTranscriptionKind(ctx context.Context) (v lifecycle.TranscriptionKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptionKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptionKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptionKind: %w", err)
	}
	return oldValue.TranscriptionKind, nil
}

// ResetTranscriptionKind resets all changes to the "transcription_kind" field.
func (m *RecordingMutation) ResetTranscriptionKind() {
	m.transcription_kind = nil
}

// SetState sets the "state" field.
func (m *RecordingMutation) SetState(ls lifecycle.RecordingState) {
	m.state = &ls
}

// State returns the value of the "state" field in the mutation.
func (m *RecordingMutation) State() (r lifecycle.RecordingState, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldState(ctx context.Context) (v lifecycle.RecordingState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *RecordingMutation) ResetState() {
	m.state = nil
}

// SetTranscriptionState sets the "transcription_state" field.
func (m *RecordingMutation) SetTranscriptionState(ls lifecycle.TranscriptionState) {
	m.transcription_state = &ls
}

// TranscriptionState returns the value of the "transcription_state" field in the mutation.
func (m *RecordingMutation) TranscriptionState() (r lifecycle.TranscriptionState, exists bool) {
	v := m.transcription_state
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscriptionState returns the old "transcription_state" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldTranscriptionState(ctx context.Context) (v lifecycle.TranscriptionState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscriptionState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscriptionState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscriptionState: %w", err)
	}
	return oldValue.TranscriptionState, nil
}

// ResetTranscriptionState resets all changes to the "transcription_state" field.
func (m *RecordingMutation) ResetTranscriptionState() {
	m.transcription_state = nil
}

// SetStartedAt sets the "started_at" field.
func (m *RecordingMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *RecordingMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *RecordingMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[recording.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *RecordingMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[recording.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *RecordingMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, recording.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *RecordingMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *RecordingMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *RecordingMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[recording.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *RecordingMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[recording.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *RecordingMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, recording.FieldCompletedAt)
}

// SetMediaBlobID sets the "media_blob_id" field.
func (m *RecordingMutation) SetMediaBlobID(s string) {
	m.media_blob_id = &s
}

// MediaBlobID returns the value of the "media_blob_id" field in the mutation.
func (m *RecordingMutation) MediaBlobID() (r string, exists bool) {
	v := m.media_blob_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaBlobID returns the old "media_blob_id" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldMediaBlobID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaBlobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaBlobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaBlobID: %w", err)
	}
	return oldValue.MediaBlobID, nil
}

// ClearMediaBlobID clears the value of the "media_blob_id" field.
func (m *RecordingMutation) ClearMediaBlobID() {
	m.media_blob_id = nil
	m.clearedFields[recording.FieldMediaBlobID] = struct{}{}
}

// MediaBlobIDCleared returns if the "media_blob_id" field was cleared in this mutation.
func (m *RecordingMutation) MediaBlobIDCleared() bool {
	_, ok := m.clearedFields[recording.FieldMediaBlobID]
	return ok
}

// ResetMediaBlobID resets all changes to the "media_blob_id" field.
func (m *RecordingMutation) ResetMediaBlobID() {
	m.media_blob_id = nil
	delete(m.clearedFields, recording.FieldMediaBlobID)
}

// SetFailureReasons sets the "failure_reasons" field.
func (m *RecordingMutation) SetFailureReasons(s []string) {
	m.failure_reasons = &s
	m.appendfailure_reasons = nil
}

// FailureReasons returns the value of the "failure_reasons" field in the mutation.
func (m *RecordingMutation) FailureReasons() (r []string, exists bool) {
	v := m.failure_reasons
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReasons returns the old "failure_reasons" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldFailureReasons(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReasons is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReasons requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReasons: %w", err)
	}
	return oldValue.FailureReasons, nil
}

// AppendFailureReasons adds s to the "failure_reasons" field.
func (m *RecordingMutation) AppendFailureReasons(s []string) {
	m.appendfailure_reasons = append(m.appendfailure_reasons, s...)
}

// AppendedFailureReasons returns the list of values that were appended to the "failure_reasons" field in this mutation.
func (m *RecordingMutation) AppendedFailureReasons() ([]string, bool) {
	if len(m.appendfailure_reasons) == 0 {
		return nil, false
	}
	return m.appendfailure_reasons, true
}

// ClearFailureReasons clears the value of the "failure_reasons" field.
func (m *RecordingMutation) ClearFailureReasons() {
	m.failure_reasons = nil
	m.appendfailure_reasons = nil
	m.clearedFields[recording.FieldFailureReasons] = struct{}{}
}

// FailureReasonsCleared returns if the "failure_reasons" field was cleared in this mutation.
func (m *RecordingMutation) FailureReasonsCleared() bool {
	_, ok := m.clearedFields[recording.FieldFailureReasons]
	return ok
}

// ResetFailureReasons resets all changes to the "failure_reasons" field.
func (m *RecordingMutation) ResetFailureReasons() {
	m.failure_reasons = nil
	m.appendfailure_reasons = nil
	delete(m.clearedFields, recording.FieldFailureReasons)
}

// SetVersion sets the "version" field.
func (m *RecordingMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *RecordingMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *RecordingMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *RecordingMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *RecordingMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RecordingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecordingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Recording entity.
// If the Recording object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecordingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RecordingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearBot clears the "bot" edge to the Bot entity.
func (m *RecordingMutation) ClearBot() {
	m.clearedbot = true
	m.clearedFields[recording.FieldBotID] = struct{}{}
}

// BotCleared reports if the "bot" edge to the Bot entity was cleared.
func (m *RecordingMutation) BotCleared() bool {
	return m.clearedbot
}

// BotIDs returns the "bot" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BotID instead. It exists only for internal usage by the builders.
func (m *RecordingMutation) BotIDs() (ids []string) {
	if id := m.bot; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBot resets all changes to the "bot" edge.
func (m *RecordingMutation) ResetBot() {
	m.bot = nil
	m.clearedbot = false
}

// AddUtteranceIDs adds the "utterances" edge to the Utterance entity by ids.
func (m *RecordingMutation) AddUtteranceIDs(ids ...string) {
	if m.utterances == nil {
		m.utterances = make(map[string]struct{})
	}
	for i := range ids {
		m.utterances[ids[i]] = struct{}{}
	}
}

// ClearUtterances clears the "utterances" edge to the Utterance entity.
func (m *RecordingMutation) ClearUtterances() {
	m.clearedutterances = true
}

// UtterancesCleared reports if the "utterances" edge to the Utterance entity was cleared.
func (m *RecordingMutation) UtterancesCleared() bool {
	return m.clearedutterances
}

// RemoveUtteranceIDs removes the "utterances" edge to the Utterance entity by IDs.
func (m *RecordingMutation) RemoveUtteranceIDs(ids ...string) {
	if m.removedutterances == nil {
		m.removedutterances = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.utterances, ids[i])
		m.removedutterances[ids[i]] = struct{}{}
	}
}

// RemovedUtterances returns the removed IDs of the "utterances" edge to the Utterance entity.
func (m *RecordingMutation) RemovedUtterancesIDs() (ids []string) {
	for id := range m.removedutterances {
		ids = append(ids, id)
	}
	return
}

// UtterancesIDs returns the "utterances" edge IDs in the mutation.
func (m *RecordingMutation) UtterancesIDs() (ids []string) {
	for id := range m.utterances {
		ids = append(ids, id)
	}
	return
}

// ResetUtterances resets all changes to the "utterances" edge.
func (m *RecordingMutation) ResetUtterances() {
	m.utterances = nil
	m.clearedutterances = false
	m.removedutterances = nil
}

// Where appends a list predicates to the RecordingMutation builder.
func (m *RecordingMutation) Where(ps ...predicate.Recording) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecordingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecordingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Recording, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecordingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecordingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Recording).
func (m *RecordingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecordingMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.bot != nil {
		fields = append(fields, recording.FieldBotID)
	}
	if m.recording_kind != nil {
		fields = append(fields, recording.FieldRecordingKind)
	}
	if m.transcription_kind != nil {
		fields = append(fields, recording.FieldTranscriptionKind)
	}
	if m.state != nil {
		fields = append(fields, recording.FieldState)
	}
	if m.transcription_state != nil {
		fields = append(fields, recording.FieldTranscriptionState)
	}
	if m.started_at != nil {
		fields = append(fields, recording.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, recording.FieldCompletedAt)
	}
	if m.media_blob_id != nil {
		fields = append(fields, recording.FieldMediaBlobID)
	}
	if m.failure_reasons != nil {
		fields = append(fields, recording.FieldFailureReasons)
	}
	if m.version != nil {
		fields = append(fields, recording.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, recording.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecordingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recording.FieldBotID:
		return m.BotID()
	case recording.FieldRecordingKind:
		return m.RecordingKind()
	case recording.FieldTranscriptionKind:
		return m.TranscriptionKind()
	case recording.FieldState:
		return m.State()
	case recording.FieldTranscriptionState:
		return m.TranscriptionState()
	case recording.FieldStartedAt:
		return m.StartedAt()
	case recording.FieldCompletedAt:
		return m.CompletedAt()
	case recording.FieldMediaBlobID:
		return m.MediaBlobID()
	case recording.FieldFailureReasons:
		return m.FailureReasons()
	case recording.FieldVersion:
		return m.Version()
	case recording.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecordingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recording.FieldBotID:
		return m.OldBotID(ctx)
	case recording.FieldRecordingKind:
		return m.OldRecordingKind(ctx)
	case recording.FieldTranscriptionKind:
		return m.OldTranscriptionKind(ctx)
	case recording.FieldState:
		return m.OldState(ctx)
	case recording.FieldTranscriptionState:
		return m.OldTranscriptionState(ctx)
	case recording.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case recording.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case recording.FieldMediaBlobID:
		return m.OldMediaBlobID(ctx)
	case recording.FieldFailureReasons:
		return m.OldFailureReasons(ctx)
	case recording.FieldVersion:
		return m.OldVersion(ctx)
	case recording.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Recording field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecordingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recording.FieldBotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotID(v)
		return nil
	case recording.FieldRecordingKind:
		v, ok := value.(lifecycle.RecordingKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordingKind(v)
		return nil
	case recording.FieldTranscriptionKind:
		v, ok := value.(lifecycle.TranscriptionKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptionKind(v)
		return nil
	case recording.FieldState:
		v, ok := value.(lifecycle.RecordingState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case recording.FieldTranscriptionState:
		v, ok := value.(lifecycle.TranscriptionState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscriptionState(v)
		return nil
	case recording.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case recording.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case recording.FieldMediaBlobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaBlobID(v)
		return nil
	case recording.FieldFailureReasons:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReasons(v)
		return nil
	case recording.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case recording.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Recording field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecordingMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, recording.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecordingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recording.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecordingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recording.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Recording numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecordingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recording.FieldStartedAt) {
		fields = append(fields, recording.FieldStartedAt)
	}
	if m.FieldCleared(recording.FieldCompletedAt) {
		fields = append(fields, recording.FieldCompletedAt)
	}
	if m.FieldCleared(recording.FieldMediaBlobID) {
		fields = append(fields, recording.FieldMediaBlobID)
	}
	if m.FieldCleared(recording.FieldFailureReasons) {
		fields = append(fields, recording.FieldFailureReasons)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecordingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecordingMutation) ClearField(name string) error {
	switch name {
	case recording.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case recording.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case recording.FieldMediaBlobID:
		m.ClearMediaBlobID()
		return nil
	case recording.FieldFailureReasons:
		m.ClearFailureReasons()
		return nil
	}
	return fmt.Errorf("unknown Recording nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecordingMutation) ResetField(name string) error {
	switch name {
	case recording.FieldBotID:
		m.ResetBotID()
		return nil
	case recording.FieldRecordingKind:
		m.ResetRecordingKind()
		return nil
	case recording.FieldTranscriptionKind:
		m.ResetTranscriptionKind()
		return nil
	case recording.FieldState:
		m.ResetState()
		return nil
	case recording.FieldTranscriptionState:
		m.ResetTranscriptionState()
		return nil
	case recording.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case recording.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case recording.FieldMediaBlobID:
		m.ResetMediaBlobID()
		return nil
	case recording.FieldFailureReasons:
		m.ResetFailureReasons()
		return nil
	case recording.FieldVersion:
		m.ResetVersion()
		return nil
	case recording.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Recording field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecordingMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.bot != nil {
		edges = append(edges, recording.EdgeBot)
	}
	if m.utterances != nil {
		edges = append(edges, recording.EdgeUtterances)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecordingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case recording.EdgeBot:
		if id := m.bot; id != nil {
			return []ent.Value{*id}
		}
	case recording.EdgeUtterances:
		ids := make([]ent.Value, 0, len(m.utterances))
		for id := range m.utterances {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecordingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedutterances != nil {
		edges = append(edges, recording.EdgeUtterances)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecordingMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case recording.EdgeUtterances:
		ids := make([]ent.Value, 0, len(m.removedutterances))
		for id := range m.removedutterances {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecordingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbot {
		edges = append(edges, recording.EdgeBot)
	}
	if m.clearedutterances {
		edges = append(edges, recording.EdgeUtterances)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecordingMutation) EdgeCleared(name string) bool {
	switch name {
	case recording.EdgeBot:
		return m.clearedbot
	case recording.EdgeUtterances:
		return m.clearedutterances
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecordingMutation) ClearEdge(name string) error {
	switch name {
	case recording.EdgeBot:
		m.ClearBot()
		return nil
	}
	return fmt.Errorf("unknown Recording unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecordingMutation) ResetEdge(name string) error {
	switch name {
	case recording.EdgeBot:
		m.ResetBot()
		return nil
	case recording.EdgeUtterances:
		m.ResetUtterances()
		return nil
	}
	return fmt.Errorf("unknown Recording edge %s", name)
}

// UtteranceMutation represents an operation that mutates the Utterance nodes in the graph.
type UtteranceMutation struct {
	config
	op               Op
	typ              string
	id               *string
	participant_id   *string
	timestamp_ms     *int64
	addtimestamp_ms  *int64
	duration_ms      *int64
	addduration_ms   *int64
	transcription    *map[string]interface{}
	failure_reason   *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	recording        *string
	clearedrecording bool
	done             bool
	oldValue         func(context.Context) (*Utterance, error)
	predicates       []predicate.Utterance
}

var _ ent.Mutation = (*UtteranceMutation)(nil)

// utteranceOption allows management of the mutation configuration using functional options.
type utteranceOption func(*UtteranceMutation)

// newUtteranceMutation creates new mutation for the Utterance entity.
func newUtteranceMutation(c config, op Op, opts ...utteranceOption) *UtteranceMutation {
	m := &UtteranceMutation{
		config:        c,
		op:            op,
		typ:           TypeUtterance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUtteranceID sets the ID field of the mutation.
func withUtteranceID(id string) utteranceOption {
	return func(m *UtteranceMutation) {
		var (
			err   error
			once  sync.Once
			value *Utterance
		)
		m.oldValue = func(ctx context.Context) (*Utterance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Utterance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUtterance sets the old Utterance of the mutation.
func withUtterance(node *Utterance) utteranceOption {
	return func(m *UtteranceMutation) {
		m.oldValue = func(context.Context) (*Utterance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UtteranceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UtteranceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Utterance entities.
func (m *UtteranceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UtteranceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UtteranceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Utterance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRecordingID sets the "recording_id" field.
func (m *UtteranceMutation) SetRecordingID(s string) {
	m.recording = &s
}

// RecordingID returns the value of the "recording_id" field in the mutation.
func (m *UtteranceMutation) RecordingID() (r string, exists bool) {
	v := m.recording
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordingID returns the old "recording_id" field's value of the Utterance entity.
// If the Utterance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtteranceMutation) OldRecordingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordingID: %w", err)
	}
	return oldValue.RecordingID, nil
}

// ResetRecordingID resets all changes to the "recording_id" field.
func (m *UtteranceMutation) ResetRecordingID() {
	m.recording = nil
}

// SetParticipantID sets the "participant_id" field.
func (m *UtteranceMutation) SetParticipantID(s string) {
	m.participant_id = &s
}

// ParticipantID returns the value of the "participant_id" field in the mutation.
func (m *UtteranceMutation) ParticipantID() (r string, exists bool) {
	v := m.participant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantID returns the old "participant_id" field's value of the Utterance entity.
// If the Utterance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtteranceMutation) OldParticipantID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantID: %w", err)
	}
	return oldValue.ParticipantID, nil
}

// ClearParticipantID clears the value of the "participant_id" field.
func (m *UtteranceMutation) ClearParticipantID() {
	m.participant_id = nil
	m.clearedFields[utterance.FieldParticipantID] = struct{}{}
}

// ParticipantIDCleared returns if the "participant_id" field was cleared in this mutation.
func (m *UtteranceMutation) ParticipantIDCleared() bool {
	_, ok := m.clearedFields[utterance.FieldParticipantID]
	return ok
}

// ResetParticipantID resets all changes to the "participant_id" field.
func (m *UtteranceMutation) ResetParticipantID() {
	m.participant_id = nil
	delete(m.clearedFields, utterance.FieldParticipantID)
}

// SetTimestampMs sets the "timestamp_ms" field.
func (m *UtteranceMutation) SetTimestampMs(i int64) {
	m.timestamp_ms = &i
	m.addtimestamp_ms = nil
}

// TimestampMs returns the value of the "timestamp_ms" field in the mutation.
func (m *UtteranceMutation) TimestampMs() (r int64, exists bool) {
	v := m.timestamp_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestampMs returns the old "timestamp_ms" field's value of the Utterance entity.
// If the Utterance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtteranceMutation) OldTimestampMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestampMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestampMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestampMs: %w", err)
	}
	return oldValue.TimestampMs, nil
}

// AddTimestampMs adds i to the "timestamp_ms" field.
func (m *UtteranceMutation) AddTimestampMs(i int64) {
	if m.addtimestamp_ms != nil {
		*m.addtimestamp_ms += i
	} else {
		m.addtimestamp_ms = &i
	}
}

// AddedTimestampMs returns the value that was added to the "timestamp_ms" field in this mutation.
func (m *UtteranceMutation) AddedTimestampMs() (r int64, exists bool) {
	v := m.addtimestamp_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimestampMs resets all changes to the "timestamp_ms" field.
func (m *UtteranceMutation) ResetTimestampMs() {
	m.timestamp_ms = nil
	m.addtimestamp_ms = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *UtteranceMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *UtteranceMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the Utterance entity.
// If the Utterance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtteranceMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *UtteranceMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *UtteranceMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *UtteranceMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetTranscription sets the "transcription" field.
func (m *UtteranceMutation) SetTranscription(value map[string]interface{}) {
	m.transcription = &value
}

// Transcription returns the value of the "transcription" field in the mutation.
func (m *UtteranceMutation) Transcription() (r map[string]interface{}, exists bool) {
	v := m.transcription
	if v == nil {
		return
	}
	return *v, true
}

// OldTranscription returns the old "transcription" field's value of the Utterance entity.
// If the Utterance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtteranceMutation) OldTranscription(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranscription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranscription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranscription: %w", err)
	}
	return oldValue.Transcription, nil
}

// ClearTranscription clears the value of the "transcription" field.
func (m *UtteranceMutation) ClearTranscription() {
	m.transcription = nil
	m.clearedFields[utterance.FieldTranscription] = struct{}{}
}

// TranscriptionCleared returns if the "transcription" field was cleared in this mutation.
func (m *UtteranceMutation) TranscriptionCleared() bool {
	_, ok := m.clearedFields[utterance.FieldTranscription]
	return ok
}

// ResetTranscription resets all changes to the "transcription" field.
func (m *UtteranceMutation) ResetTranscription() {
	m.transcription = nil
	delete(m.clearedFields, utterance.FieldTranscription)
}

// SetFailureReason sets the "failure_reason" field.
func (m *UtteranceMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *UtteranceMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the Utterance entity.
// If the Utterance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtteranceMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *UtteranceMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[utterance.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *UtteranceMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[utterance.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *UtteranceMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, utterance.FieldFailureReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *UtteranceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UtteranceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Utterance entity.
// If the Utterance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtteranceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UtteranceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UtteranceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UtteranceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Utterance entity.
// If the Utterance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UtteranceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UtteranceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRecording clears the "recording" edge to the Recording entity.
func (m *UtteranceMutation) ClearRecording() {
	m.clearedrecording = true
	m.clearedFields[utterance.FieldRecordingID] = struct{}{}
}

// RecordingCleared reports if the "recording" edge to the Recording entity was cleared.
func (m *UtteranceMutation) RecordingCleared() bool {
	return m.clearedrecording
}

// RecordingIDs returns the "recording" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecordingID instead. It exists only for internal usage by the builders.
func (m *UtteranceMutation) RecordingIDs() (ids []string) {
	if id := m.recording; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecording resets all changes to the "recording" edge.
func (m *UtteranceMutation) ResetRecording() {
	m.recording = nil
	m.clearedrecording = false
}

// Where appends a list predicates to the UtteranceMutation builder.
func (m *UtteranceMutation) Where(ps ...predicate.Utterance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UtteranceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UtteranceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Utterance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UtteranceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UtteranceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Utterance).
func (m *UtteranceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UtteranceMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.recording != nil {
		fields = append(fields, utterance.FieldRecordingID)
	}
	if m.participant_id != nil {
		fields = append(fields, utterance.FieldParticipantID)
	}
	if m.timestamp_ms != nil {
		fields = append(fields, utterance.FieldTimestampMs)
	}
	if m.duration_ms != nil {
		fields = append(fields, utterance.FieldDurationMs)
	}
	if m.transcription != nil {
		fields = append(fields, utterance.FieldTranscription)
	}
	if m.failure_reason != nil {
		fields = append(fields, utterance.FieldFailureReason)
	}
	if m.created_at != nil {
		fields = append(fields, utterance.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, utterance.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UtteranceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case utterance.FieldRecordingID:
		return m.RecordingID()
	case utterance.FieldParticipantID:
		return m.ParticipantID()
	case utterance.FieldTimestampMs:
		return m.TimestampMs()
	case utterance.FieldDurationMs:
		return m.DurationMs()
	case utterance.FieldTranscription:
		return m.Transcription()
	case utterance.FieldFailureReason:
		return m.FailureReason()
	case utterance.FieldCreatedAt:
		return m.CreatedAt()
	case utterance.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UtteranceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case utterance.FieldRecordingID:
		return m.OldRecordingID(ctx)
	case utterance.FieldParticipantID:
		return m.OldParticipantID(ctx)
	case utterance.FieldTimestampMs:
		return m.OldTimestampMs(ctx)
	case utterance.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case utterance.FieldTranscription:
		return m.OldTranscription(ctx)
	case utterance.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case utterance.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case utterance.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Utterance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UtteranceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case utterance.FieldRecordingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordingID(v)
		return nil
	case utterance.FieldParticipantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantID(v)
		return nil
	case utterance.FieldTimestampMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestampMs(v)
		return nil
	case utterance.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case utterance.FieldTranscription:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranscription(v)
		return nil
	case utterance.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case utterance.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case utterance.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Utterance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UtteranceMutation) AddedFields() []string {
	var fields []string
	if m.addtimestamp_ms != nil {
		fields = append(fields, utterance.FieldTimestampMs)
	}
	if m.addduration_ms != nil {
		fields = append(fields, utterance.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UtteranceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case utterance.FieldTimestampMs:
		return m.AddedTimestampMs()
	case utterance.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UtteranceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case utterance.FieldTimestampMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimestampMs(v)
		return nil
	case utterance.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown Utterance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UtteranceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(utterance.FieldParticipantID) {
		fields = append(fields, utterance.FieldParticipantID)
	}
	if m.FieldCleared(utterance.FieldTranscription) {
		fields = append(fields, utterance.FieldTranscription)
	}
	if m.FieldCleared(utterance.FieldFailureReason) {
		fields = append(fields, utterance.FieldFailureReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UtteranceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UtteranceMutation) ClearField(name string) error {
	switch name {
	case utterance.FieldParticipantID:
		m.ClearParticipantID()
		return nil
	case utterance.FieldTranscription:
		m.ClearTranscription()
		return nil
	case utterance.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	}
	return fmt.Errorf("unknown Utterance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UtteranceMutation) ResetField(name string) error {
	switch name {
	case utterance.FieldRecordingID:
		m.ResetRecordingID()
		return nil
	case utterance.FieldParticipantID:
		m.ResetParticipantID()
		return nil
	case utterance.FieldTimestampMs:
		m.ResetTimestampMs()
		return nil
	case utterance.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case utterance.FieldTranscription:
		m.ResetTranscription()
		return nil
	case utterance.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case utterance.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case utterance.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Utterance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UtteranceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.recording != nil {
		edges = append(edges, utterance.EdgeRecording)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UtteranceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case utterance.EdgeRecording:
		if id := m.recording; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UtteranceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UtteranceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UtteranceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrecording {
		edges = append(edges, utterance.EdgeRecording)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UtteranceMutation) EdgeCleared(name string) bool {
	switch name {
	case utterance.EdgeRecording:
		return m.clearedrecording
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UtteranceMutation) ClearEdge(name string) error {
	switch name {
	case utterance.EdgeRecording:
		m.ClearRecording()
		return nil
	}
	return fmt.Errorf("unknown Utterance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UtteranceMutation) ResetEdge(name string) error {
	switch name {
	case utterance.EdgeRecording:
		m.ResetRecording()
		return nil
	}
	return fmt.Errorf("unknown Utterance edge %s", name)
}

// WebhookDeliveryAttemptMutation represents an operation that mutates the WebhookDeliveryAttempt nodes in the graph.
type WebhookDeliveryAttemptMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	bot_id                   *string
	calendar_id              *string
	zoom_oauth_connection_id *string
	trigger                  *lifecycle.TriggerKind
	addtrigger               *lifecycle.TriggerKind
	idempotency_key          *string
	payload                  *map[string]interface{}
	status                   *lifecycle.DeliveryStatus
	attempt_count            *int
	addattempt_count         *int
	response_bodies          *[]string
	appendresponse_bodies    []string
	next_attempt_at          *time.Time
	last_attempted_at        *time.Time
	succeeded_at             *time.Time
	created_at               *time.Time
	clearedFields            map[string]struct{}
	subscription             *string
	clearedsubscription      bool
	done                     bool
	oldValue                 func(context.Context) (*WebhookDeliveryAttempt, error)
	predicates               []predicate.WebhookDeliveryAttempt
}

var _ ent.Mutation = (*WebhookDeliveryAttemptMutation)(nil)

// webhookdeliveryattemptOption allows management of the mutation configuration using functional options.
type webhookdeliveryattemptOption func(*WebhookDeliveryAttemptMutation)

// newWebhookDeliveryAttemptMutation creates new mutation for the WebhookDeliveryAttempt entity.
func newWebhookDeliveryAttemptMutation(c config, op Op, opts ...webhookdeliveryattemptOption) *WebhookDeliveryAttemptMutation {
	m := &WebhookDeliveryAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookDeliveryAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookDeliveryAttemptID sets the ID field of the mutation.
func withWebhookDeliveryAttemptID(id string) webhookdeliveryattemptOption {
	return func(m *WebhookDeliveryAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookDeliveryAttempt
		)
		m.oldValue = func(ctx context.Context) (*WebhookDeliveryAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookDeliveryAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookDeliveryAttempt sets the old WebhookDeliveryAttempt of the mutation.
func withWebhookDeliveryAttempt(node *WebhookDeliveryAttempt) webhookdeliveryattemptOption {
	return func(m *WebhookDeliveryAttemptMutation) {
		m.oldValue = func(context.Context) (*WebhookDeliveryAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookDeliveryAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookDeliveryAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookDeliveryAttempt entities.
func (m *WebhookDeliveryAttemptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookDeliveryAttemptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookDeliveryAttemptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookDeliveryAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubscriptionID sets the "subscription_id" field.
func (m *WebhookDeliveryAttemptMutation) SetSubscriptionID(s string) {
	m.subscription = &s
}

// SubscriptionID returns the value of the "subscription_id" field in the mutation.
func (m *WebhookDeliveryAttemptMutation) SubscriptionID() (r string, exists bool) {
	v := m.subscription
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscriptionID returns the old "subscription_id" field's value of the WebhookDeliveryAttempt entity.
// If the WebhookDeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryAttemptMutation) OldSubscriptionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscriptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscriptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscriptionID: %w", err)
	}
	return oldValue.SubscriptionID, nil
}

// ResetSubscriptionID resets all changes to the "subscription_id" field.
func (m *WebhookDeliveryAttemptMutation) ResetSubscriptionID() {
	m.subscription = nil
}

// SetBotID sets the "bot_id" field.
func (m *WebhookDeliveryAttemptMutation) SetBotID(s string) {
	m.bot_id = &s
}

// BotID returns the value of the "bot_id" field in the mutation.
func (m *WebhookDeliveryAttemptMutation) BotID() (r string, exists bool) {
	v := m.bot_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBotID returns the old "bot_id" field's value of the WebhookDeliveryAttempt entity.
// If the WebhookDeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryAttemptMutation) OldBotID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotID: %w", err)
	}
	return oldValue.BotID, nil
}

// ClearBotID clears the value of the "bot_id" field.
func (m *WebhookDeliveryAttemptMutation) ClearBotID() {
	m.bot_id = nil
	m.clearedFields[webhookdeliveryattempt.FieldBotID] = struct{}{}
}

// BotIDCleared returns if the "bot_id" field was cleared in this mutation.
func (m *WebhookDeliveryAttemptMutation) BotIDCleared() bool {
	_, ok := m.clearedFields[webhookdeliveryattempt.FieldBotID]
	return ok
}

// ResetBotID resets all changes to the "bot_id" field.
func (m *WebhookDeliveryAttemptMutation) ResetBotID() {
	m.bot_id = nil
	delete(m.clearedFields, webhookdeliveryattempt.FieldBotID)
}

// SetCalendarID sets the "calendar_id" field.
func (m *WebhookDeliveryAttemptMutation) SetCalendarID(s string) {
	m.calendar_id = &s
}

// CalendarID returns the value of the "calendar_id" field in the mutation.
func (m *WebhookDeliveryAttemptMutation) CalendarID() (r string, exists bool) {
	v := m.calendar_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCalendarID returns the old "calendar_id" field's value of the WebhookDeliveryAttempt entity.
// If the WebhookDeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryAttemptMutation) OldCalendarID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalendarID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalendarID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalendarID: %w", err)
	}
	return oldValue.CalendarID, nil
}

// ClearCalendarID clears the value of the "calendar_id" field.
func (m *WebhookDeliveryAttemptMutation) ClearCalendarID() {
	m.calendar_id = nil
	m.clearedFields[webhookdeliveryattempt.FieldCalendarID] = struct{}{}
}

// CalendarIDCleared returns if the "calendar_id" field was cleared in this mutation.
func (m *WebhookDeliveryAttemptMutation) CalendarIDCleared() bool {
	_, ok := m.clearedFields[webhookdeliveryattempt.FieldCalendarID]
	return ok
}

// ResetCalendarID resets all changes to the "calendar_id" field.
func (m *WebhookDeliveryAttemptMutation) ResetCalendarID() {
	m.calendar_id = nil
	delete(m.clearedFields, webhookdeliveryattempt.FieldCalendarID)
}

// SetZoomOauthConnectionID sets the "zoom_oauth_connection_id" field.
func (m *WebhookDeliveryAttemptMutation) SetZoomOauthConnectionID(s string) {
	m.zoom_oauth_connection_id = &s
}

// ZoomOauthConnectionID returns the value of the "zoom_oauth_connection_id" field in the mutation.
func (m *WebhookDeliveryAttemptMutation) ZoomOauthConnectionID() (r string, exists bool) {
	v := m.zoom_oauth_connection_id
	if v == nil {
		return
	}
	return *v, true
}

// OldZoomOauthConnectionID returns the old "zoom_oauth_connection_id" field's value of the WebhookDeliveryAttempt entity.
// If the WebhookDeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryAttemptMutation) OldZoomOauthConnectionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZoomOauthConnectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZoomOauthConnectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZoomOauthConnectionID: %w", err)
	}
	return oldValue.ZoomOauthConnectionID, nil
}

// ClearZoomOauthConnectionID clears the value of the "zoom_oauth_connection_id" field.
func (m *WebhookDeliveryAttemptMutation) ClearZoomOauthConnectionID() {
	m.zoom_oauth_connection_id = nil
	m.clearedFields[webhookdeliveryattempt.FieldZoomOauthConnectionID] = struct{}{}
}

// ZoomOauthConnectionIDCleared returns if the "zoom_oauth_connection_id" field was cleared in this mutation.
func (m *WebhookDeliveryAttemptMutation) ZoomOauthConnectionIDCleared() bool {
	_, ok := m.clearedFields[webhookdeliveryattempt.FieldZoomOauthConnectionID]
	return ok
}

// ResetZoomOauthConnectionID resets all changes to the "zoom_oauth_connection_id" field.
func (m *WebhookDeliveryAttemptMutation) ResetZoomOauthConnectionID() {
	m.zoom_oauth_connection_id = nil
	delete(m.clearedFields, webhookdeliveryattempt.FieldZoomOauthConnectionID)
}

// SetTrigger sets the "trigger" field.
func (m *WebhookDeliveryAttemptMutation) SetTrigger(lk lifecycle.TriggerKind) {
	m.trigger = &lk
	m.addtrigger = nil
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *WebhookDeliveryAttemptMutation) Trigger() (r lifecycle.TriggerKind, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the WebhookDeliveryAttempt entity.
// If the WebhookDeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryAttemptMutation) OldTrigger(ctx context.Context) (v lifecycle.TriggerKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// AddTrigger adds lk to the "trigger" field.
func (m *WebhookDeliveryAttemptMutation) AddTrigger(lk lifecycle.TriggerKind) {
	if m.addtrigger != nil {
		*m.addtrigger += lk
	} else {
		m.addtrigger = &lk
	}
}

// AddedTrigger returns the value that was added to the "trigger" field in this mutation.
func (m *WebhookDeliveryAttemptMutation) AddedTrigger() (r lifecycle.TriggerKind, exists bool) {
	v := m.addtrigger
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *WebhookDeliveryAttemptMutation) ResetTrigger() {
	m.trigger = nil
	m.addtrigger = nil
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *WebhookDeliveryAttemptMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *WebhookDeliveryAttemptMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the WebhookDeliveryAttempt entity.
// If the WebhookDeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryAttemptMutation) OldIdempotencyKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *WebhookDeliveryAttemptMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
}

// SetPayload sets the "payload" field.
func (m *WebhookDeliveryAttemptMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *WebhookDeliveryAttemptMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the WebhookDeliveryAttempt entity.
// If the WebhookDeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryAttemptMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *WebhookDeliveryAttemptMutation) ResetPayload() {
	m.payload = nil
}

// SetStatus sets the "status" field.
func (m *WebhookDeliveryAttemptMutation) SetStatus(ls lifecycle.DeliveryStatus) {
	m.status = &ls
}

// Status returns the value of the "status" field in the mutation.
func (m *WebhookDeliveryAttemptMutation) Status() (r lifecycle.DeliveryStatus, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WebhookDeliveryAttempt entity.
// If the WebhookDeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryAttemptMutation) OldStatus(ctx context.Context) (v lifecycle.DeliveryStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WebhookDeliveryAttemptMutation) ResetStatus() {
	m.status = nil
}

// SetAttemptCount sets the "attempt_count" field.
func (m *WebhookDeliveryAttemptMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *WebhookDeliveryAttemptMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the WebhookDeliveryAttempt entity.
// If the WebhookDeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryAttemptMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *WebhookDeliveryAttemptMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *WebhookDeliveryAttemptMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *WebhookDeliveryAttemptMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetResponseBodies sets the "response_bodies" field.
func (m *WebhookDeliveryAttemptMutation) SetResponseBodies(s []string) {
	m.response_bodies = &s
	m.appendresponse_bodies = nil
}

// ResponseBodies returns the value of the "response_bodies" field in the mutation.
func (m *WebhookDeliveryAttemptMutation) ResponseBodies() (r []string, exists bool) {
	v := m.response_bodies
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBodies returns the old "response_bodies" field's value of the WebhookDeliveryAttempt entity.
// If the WebhookDeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryAttemptMutation) OldResponseBodies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBodies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBodies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBodies: %w", err)
	}
	return oldValue.ResponseBodies, nil
}

// AppendResponseBodies adds s to the "response_bodies" field.
func (m *WebhookDeliveryAttemptMutation) AppendResponseBodies(s []string) {
	m.appendresponse_bodies = append(m.appendresponse_bodies, s...)
}

// AppendedResponseBodies returns the list of values that were appended to the "response_bodies" field in this mutation.
func (m *WebhookDeliveryAttemptMutation) AppendedResponseBodies() ([]string, bool) {
	if len(m.appendresponse_bodies) == 0 {
		return nil, false
	}
	return m.appendresponse_bodies, true
}

// ClearResponseBodies clears the value of the "response_bodies" field.
func (m *WebhookDeliveryAttemptMutation) ClearResponseBodies() {
	m.response_bodies = nil
	m.appendresponse_bodies = nil
	m.clearedFields[webhookdeliveryattempt.FieldResponseBodies] = struct{}{}
}

// ResponseBodiesCleared returns if the "response_bodies" field was cleared in this mutation.
func (m *WebhookDeliveryAttemptMutation) ResponseBodiesCleared() bool {
	_, ok := m.clearedFields[webhookdeliveryattempt.FieldResponseBodies]
	return ok
}

// ResetResponseBodies resets all changes to the "response_bodies" field.
func (m *WebhookDeliveryAttemptMutation) ResetResponseBodies() {
	m.response_bodies = nil
	m.appendresponse_bodies = nil
	delete(m.clearedFields, webhookdeliveryattempt.FieldResponseBodies)
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (m *WebhookDeliveryAttemptMutation) SetNextAttemptAt(t time.Time) {
	m.next_attempt_at = &t
}

// NextAttemptAt returns the value of the "next_attempt_at" field in the mutation.
func (m *WebhookDeliveryAttemptMutation) NextAttemptAt() (r time.Time, exists bool) {
	v := m.next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAttemptAt returns the old "next_attempt_at" field's value of the WebhookDeliveryAttempt entity.
// If the WebhookDeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryAttemptMutation) OldNextAttemptAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAttemptAt: %w", err)
	}
	return oldValue.NextAttemptAt, nil
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (m *WebhookDeliveryAttemptMutation) ClearNextAttemptAt() {
	m.next_attempt_at = nil
	m.clearedFields[webhookdeliveryattempt.FieldNextAttemptAt] = struct{}{}
}

// NextAttemptAtCleared returns if the "next_attempt_at" field was cleared in this mutation.
func (m *WebhookDeliveryAttemptMutation) NextAttemptAtCleared() bool {
	_, ok := m.clearedFields[webhookdeliveryattempt.FieldNextAttemptAt]
	return ok
}

// ResetNextAttemptAt resets all changes to the "next_attempt_at" field.
func (m *WebhookDeliveryAttemptMutation) ResetNextAttemptAt() {
	m.next_attempt_at = nil
	delete(m.clearedFields, webhookdeliveryattempt.FieldNextAttemptAt)
}

// SetLastAttemptedAt sets the "last_attempted_at" field.
func (m *WebhookDeliveryAttemptMutation) SetLastAttemptedAt(t time.Time) {
	m.last_attempted_at = &t
}

// LastAttemptedAt returns the value of the "last_attempted_at" field in the mutation.
func (m *WebhookDeliveryAttemptMutation) LastAttemptedAt() (r time.Time, exists bool) {
	v := m.last_attempted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAttemptedAt returns the old "last_attempted_at" field's value of the WebhookDeliveryAttempt entity.
// If the WebhookDeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryAttemptMutation) OldLastAttemptedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAttemptedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAttemptedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAttemptedAt: %w", err)
	}
	return oldValue.LastAttemptedAt, nil
}

// ClearLastAttemptedAt clears the value of the "last_attempted_at" field.
func (m *WebhookDeliveryAttemptMutation) ClearLastAttemptedAt() {
	m.last_attempted_at = nil
	m.clearedFields[webhookdeliveryattempt.FieldLastAttemptedAt] = struct{}{}
}

// LastAttemptedAtCleared returns if the "last_attempted_at" field was cleared in this mutation.
func (m *WebhookDeliveryAttemptMutation) LastAttemptedAtCleared() bool {
	_, ok := m.clearedFields[webhookdeliveryattempt.FieldLastAttemptedAt]
	return ok
}

// ResetLastAttemptedAt resets all changes to the "last_attempted_at" field.
func (m *WebhookDeliveryAttemptMutation) ResetLastAttemptedAt() {
	m.last_attempted_at = nil
	delete(m.clearedFields, webhookdeliveryattempt.FieldLastAttemptedAt)
}

// SetSucceededAt sets the "succeeded_at" field.
func (m *WebhookDeliveryAttemptMutation) SetSucceededAt(t time.Time) {
	m.succeeded_at = &t
}

// SucceededAt returns the value of the "succeeded_at" field in the mutation.
func (m *WebhookDeliveryAttemptMutation) SucceededAt() (r time.Time, exists bool) {
	v := m.succeeded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSucceededAt returns the old "succeeded_at" field's value of the WebhookDeliveryAttempt entity.
// If the WebhookDeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryAttemptMutation) OldSucceededAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSucceededAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSucceededAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSucceededAt: %w", err)
	}
	return oldValue.SucceededAt, nil
}

// ClearSucceededAt clears the value of the "succeeded_at" field.
func (m *WebhookDeliveryAttemptMutation) ClearSucceededAt() {
	m.succeeded_at = nil
	m.clearedFields[webhookdeliveryattempt.FieldSucceededAt] = struct{}{}
}

// SucceededAtCleared returns if the "succeeded_at" field was cleared in this mutation.
func (m *WebhookDeliveryAttemptMutation) SucceededAtCleared() bool {
	_, ok := m.clearedFields[webhookdeliveryattempt.FieldSucceededAt]
	return ok
}

// ResetSucceededAt resets all changes to the "succeeded_at" field.
func (m *WebhookDeliveryAttemptMutation) ResetSucceededAt() {
	m.succeeded_at = nil
	delete(m.clearedFields, webhookdeliveryattempt.FieldSucceededAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *WebhookDeliveryAttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WebhookDeliveryAttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WebhookDeliveryAttempt entity.
// If the WebhookDeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookDeliveryAttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WebhookDeliveryAttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSubscription clears the "subscription" edge to the WebhookSubscription entity.
func (m *WebhookDeliveryAttemptMutation) ClearSubscription() {
	m.clearedsubscription = true
	m.clearedFields[webhookdeliveryattempt.FieldSubscriptionID] = struct{}{}
}

// SubscriptionCleared reports if the "subscription" edge to the WebhookSubscription entity was cleared.
func (m *WebhookDeliveryAttemptMutation) SubscriptionCleared() bool {
	return m.clearedsubscription
}

// SubscriptionIDs returns the "subscription" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubscriptionID instead. It exists only for internal usage by the builders.
func (m *WebhookDeliveryAttemptMutation) SubscriptionIDs() (ids []string) {
	if id := m.subscription; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubscription resets all changes to the "subscription" edge.
func (m *WebhookDeliveryAttemptMutation) ResetSubscription() {
	m.subscription = nil
	m.clearedsubscription = false
}

// Where appends a list predicates to the WebhookDeliveryAttemptMutation builder.
func (m *WebhookDeliveryAttemptMutation) Where(ps ...predicate.WebhookDeliveryAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookDeliveryAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookDeliveryAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookDeliveryAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookDeliveryAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookDeliveryAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookDeliveryAttempt).
func (m *WebhookDeliveryAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookDeliveryAttemptMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.subscription != nil {
		fields = append(fields, webhookdeliveryattempt.FieldSubscriptionID)
	}
	if m.bot_id != nil {
		fields = append(fields, webhookdeliveryattempt.FieldBotID)
	}
	if m.calendar_id != nil {
		fields = append(fields, webhookdeliveryattempt.FieldCalendarID)
	}
	if m.zoom_oauth_connection_id != nil {
		fields = append(fields, webhookdeliveryattempt.FieldZoomOauthConnectionID)
	}
	if m.trigger != nil {
		fields = append(fields, webhookdeliveryattempt.FieldTrigger)
	}
	if m.idempotency_key != nil {
		fields = append(fields, webhookdeliveryattempt.FieldIdempotencyKey)
	}
	if m.payload != nil {
		fields = append(fields, webhookdeliveryattempt.FieldPayload)
	}
	if m.status != nil {
		fields = append(fields, webhookdeliveryattempt.FieldStatus)
	}
	if m.attempt_count != nil {
		fields = append(fields, webhookdeliveryattempt.FieldAttemptCount)
	}
	if m.response_bodies != nil {
		fields = append(fields, webhookdeliveryattempt.FieldResponseBodies)
	}
	if m.next_attempt_at != nil {
		fields = append(fields, webhookdeliveryattempt.FieldNextAttemptAt)
	}
	if m.last_attempted_at != nil {
		fields = append(fields, webhookdeliveryattempt.FieldLastAttemptedAt)
	}
	if m.succeeded_at != nil {
		fields = append(fields, webhookdeliveryattempt.FieldSucceededAt)
	}
	if m.created_at != nil {
		fields = append(fields, webhookdeliveryattempt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookDeliveryAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhookdeliveryattempt.FieldSubscriptionID:
		return m.SubscriptionID()
	case webhookdeliveryattempt.FieldBotID:
		return m.BotID()
	case webhookdeliveryattempt.FieldCalendarID:
		return m.CalendarID()
	case webhookdeliveryattempt.FieldZoomOauthConnectionID:
		return m.ZoomOauthConnectionID()
	case webhookdeliveryattempt.FieldTrigger:
		return m.Trigger()
	case webhookdeliveryattempt.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case webhookdeliveryattempt.FieldPayload:
		return m.Payload()
	case webhookdeliveryattempt.FieldStatus:
		return m.Status()
	case webhookdeliveryattempt.FieldAttemptCount:
		return m.AttemptCount()
	case webhookdeliveryattempt.FieldResponseBodies:
		return m.ResponseBodies()
	case webhookdeliveryattempt.FieldNextAttemptAt:
		return m.NextAttemptAt()
	case webhookdeliveryattempt.FieldLastAttemptedAt:
		return m.LastAttemptedAt()
	case webhookdeliveryattempt.FieldSucceededAt:
		return m.SucceededAt()
	case webhookdeliveryattempt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookDeliveryAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhookdeliveryattempt.FieldSubscriptionID:
		return m.OldSubscriptionID(ctx)
	case webhookdeliveryattempt.FieldBotID:
		return m.OldBotID(ctx)
	case webhookdeliveryattempt.FieldCalendarID:
		return m.OldCalendarID(ctx)
	case webhookdeliveryattempt.FieldZoomOauthConnectionID:
		return m.OldZoomOauthConnectionID(ctx)
	case webhookdeliveryattempt.FieldTrigger:
		return m.OldTrigger(ctx)
	case webhookdeliveryattempt.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case webhookdeliveryattempt.FieldPayload:
		return m.OldPayload(ctx)
	case webhookdeliveryattempt.FieldStatus:
		return m.OldStatus(ctx)
	case webhookdeliveryattempt.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case webhookdeliveryattempt.FieldResponseBodies:
		return m.OldResponseBodies(ctx)
	case webhookdeliveryattempt.FieldNextAttemptAt:
		return m.OldNextAttemptAt(ctx)
	case webhookdeliveryattempt.FieldLastAttemptedAt:
		return m.OldLastAttemptedAt(ctx)
	case webhookdeliveryattempt.FieldSucceededAt:
		return m.OldSucceededAt(ctx)
	case webhookdeliveryattempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookDeliveryAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookDeliveryAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhookdeliveryattempt.FieldSubscriptionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscriptionID(v)
		return nil
	case webhookdeliveryattempt.FieldBotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotID(v)
		return nil
	case webhookdeliveryattempt.FieldCalendarID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalendarID(v)
		return nil
	case webhookdeliveryattempt.FieldZoomOauthConnectionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZoomOauthConnectionID(v)
		return nil
	case webhookdeliveryattempt.FieldTrigger:
		v, ok := value.(lifecycle.TriggerKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case webhookdeliveryattempt.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case webhookdeliveryattempt.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case webhookdeliveryattempt.FieldStatus:
		v, ok := value.(lifecycle.DeliveryStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case webhookdeliveryattempt.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case webhookdeliveryattempt.FieldResponseBodies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBodies(v)
		return nil
	case webhookdeliveryattempt.FieldNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAttemptAt(v)
		return nil
	case webhookdeliveryattempt.FieldLastAttemptedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAttemptedAt(v)
		return nil
	case webhookdeliveryattempt.FieldSucceededAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSucceededAt(v)
		return nil
	case webhookdeliveryattempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookDeliveryAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookDeliveryAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addtrigger != nil {
		fields = append(fields, webhookdeliveryattempt.FieldTrigger)
	}
	if m.addattempt_count != nil {
		fields = append(fields, webhookdeliveryattempt.FieldAttemptCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookDeliveryAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case webhookdeliveryattempt.FieldTrigger:
		return m.AddedTrigger()
	case webhookdeliveryattempt.FieldAttemptCount:
		return m.AddedAttemptCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookDeliveryAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case webhookdeliveryattempt.FieldTrigger:
		v, ok := value.(lifecycle.TriggerKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrigger(v)
		return nil
	case webhookdeliveryattempt.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookDeliveryAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookDeliveryAttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhookdeliveryattempt.FieldBotID) {
		fields = append(fields, webhookdeliveryattempt.FieldBotID)
	}
	if m.FieldCleared(webhookdeliveryattempt.FieldCalendarID) {
		fields = append(fields, webhookdeliveryattempt.FieldCalendarID)
	}
	if m.FieldCleared(webhookdeliveryattempt.FieldZoomOauthConnectionID) {
		fields = append(fields, webhookdeliveryattempt.FieldZoomOauthConnectionID)
	}
	if m.FieldCleared(webhookdeliveryattempt.FieldResponseBodies) {
		fields = append(fields, webhookdeliveryattempt.FieldResponseBodies)
	}
	if m.FieldCleared(webhookdeliveryattempt.FieldNextAttemptAt) {
		fields = append(fields, webhookdeliveryattempt.FieldNextAttemptAt)
	}
	if m.FieldCleared(webhookdeliveryattempt.FieldLastAttemptedAt) {
		fields = append(fields, webhookdeliveryattempt.FieldLastAttemptedAt)
	}
	if m.FieldCleared(webhookdeliveryattempt.FieldSucceededAt) {
		fields = append(fields, webhookdeliveryattempt.FieldSucceededAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookDeliveryAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookDeliveryAttemptMutation) ClearField(name string) error {
	switch name {
	case webhookdeliveryattempt.FieldBotID:
		m.ClearBotID()
		return nil
	case webhookdeliveryattempt.FieldCalendarID:
		m.ClearCalendarID()
		return nil
	case webhookdeliveryattempt.FieldZoomOauthConnectionID:
		m.ClearZoomOauthConnectionID()
		return nil
	case webhookdeliveryattempt.FieldResponseBodies:
		m.ClearResponseBodies()
		return nil
	case webhookdeliveryattempt.FieldNextAttemptAt:
		m.ClearNextAttemptAt()
		return nil
	case webhookdeliveryattempt.FieldLastAttemptedAt:
		m.ClearLastAttemptedAt()
		return nil
	case webhookdeliveryattempt.FieldSucceededAt:
		m.ClearSucceededAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookDeliveryAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookDeliveryAttemptMutation) ResetField(name string) error {
	switch name {
	case webhookdeliveryattempt.FieldSubscriptionID:
		m.ResetSubscriptionID()
		return nil
	case webhookdeliveryattempt.FieldBotID:
		m.ResetBotID()
		return nil
	case webhookdeliveryattempt.FieldCalendarID:
		m.ResetCalendarID()
		return nil
	case webhookdeliveryattempt.FieldZoomOauthConnectionID:
		m.ResetZoomOauthConnectionID()
		return nil
	case webhookdeliveryattempt.FieldTrigger:
		m.ResetTrigger()
		return nil
	case webhookdeliveryattempt.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case webhookdeliveryattempt.FieldPayload:
		m.ResetPayload()
		return nil
	case webhookdeliveryattempt.FieldStatus:
		m.ResetStatus()
		return nil
	case webhookdeliveryattempt.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case webhookdeliveryattempt.FieldResponseBodies:
		m.ResetResponseBodies()
		return nil
	case webhookdeliveryattempt.FieldNextAttemptAt:
		m.ResetNextAttemptAt()
		return nil
	case webhookdeliveryattempt.FieldLastAttemptedAt:
		m.ResetLastAttemptedAt()
		return nil
	case webhookdeliveryattempt.FieldSucceededAt:
		m.ResetSucceededAt()
		return nil
	case webhookdeliveryattempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookDeliveryAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookDeliveryAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.subscription != nil {
		edges = append(edges, webhookdeliveryattempt.EdgeSubscription)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookDeliveryAttemptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case webhookdeliveryattempt.EdgeSubscription:
		if id := m.subscription; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookDeliveryAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookDeliveryAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookDeliveryAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsubscription {
		edges = append(edges, webhookdeliveryattempt.EdgeSubscription)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookDeliveryAttemptMutation) EdgeCleared(name string) bool {
	switch name {
	case webhookdeliveryattempt.EdgeSubscription:
		return m.clearedsubscription
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookDeliveryAttemptMutation) ClearEdge(name string) error {
	switch name {
	case webhookdeliveryattempt.EdgeSubscription:
		m.ClearSubscription()
		return nil
	}
	return fmt.Errorf("unknown WebhookDeliveryAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookDeliveryAttemptMutation) ResetEdge(name string) error {
	switch name {
	case webhookdeliveryattempt.EdgeSubscription:
		m.ResetSubscription()
		return nil
	}
	return fmt.Errorf("unknown WebhookDeliveryAttempt edge %s", name)
}

// WebhookSubscriptionMutation represents an operation that mutates the WebhookSubscription nodes in the graph.
type WebhookSubscriptionMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	bot_id                   *string
	url                      *string
	triggers                 *[]lifecycle.TriggerKind
	appendtriggers           []lifecycle.TriggerKind
	is_active                *bool
	created_at               *time.Time
	clearedFields            map[string]struct{}
	project                  *string
	clearedproject           bool
	delivery_attempts        map[string]struct{}
	removeddelivery_attempts map[string]struct{}
	cleareddelivery_attempts bool
	done                     bool
	oldValue                 func(context.Context) (*WebhookSubscription, error)
	predicates               []predicate.WebhookSubscription
}

var _ ent.Mutation = (*WebhookSubscriptionMutation)(nil)

// webhooksubscriptionOption allows management of the mutation configuration using functional options.
type webhooksubscriptionOption func(*WebhookSubscriptionMutation)

// newWebhookSubscriptionMutation creates new mutation for the WebhookSubscription entity.
func newWebhookSubscriptionMutation(c config, op Op, opts ...webhooksubscriptionOption) *WebhookSubscriptionMutation {
	m := &WebhookSubscriptionMutation{
		config:        c,
		op:            op,
		typ:           TypeWebhookSubscription,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWebhookSubscriptionID sets the ID field of the mutation.
func withWebhookSubscriptionID(id string) webhooksubscriptionOption {
	return func(m *WebhookSubscriptionMutation) {
		var (
			err   error
			once  sync.Once
			value *WebhookSubscription
		)
		m.oldValue = func(ctx context.Context) (*WebhookSubscription, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WebhookSubscription.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWebhookSubscription sets the old WebhookSubscription of the mutation.
func withWebhookSubscription(node *WebhookSubscription) webhooksubscriptionOption {
	return func(m *WebhookSubscriptionMutation) {
		m.oldValue = func(context.Context) (*WebhookSubscription, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WebhookSubscriptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WebhookSubscriptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WebhookSubscription entities.
func (m *WebhookSubscriptionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WebhookSubscriptionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WebhookSubscriptionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WebhookSubscription.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *WebhookSubscriptionMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *WebhookSubscriptionMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the WebhookSubscription entity.
// If the WebhookSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookSubscriptionMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *WebhookSubscriptionMutation) ResetProjectID() {
	m.project = nil
}

// SetBotID sets the "bot_id" field.
func (m *WebhookSubscriptionMutation) SetBotID(s string) {
	m.bot_id = &s
}

// BotID returns the value of the "bot_id" field in the mutation.
func (m *WebhookSubscriptionMutation) BotID() (r string, exists bool) {
	v := m.bot_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBotID returns the old "bot_id" field's value of the WebhookSubscription entity.
// If the WebhookSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookSubscriptionMutation) OldBotID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotID: %w", err)
	}
	return oldValue.BotID, nil
}

// ClearBotID clears the value of the "bot_id" field.
func (m *WebhookSubscriptionMutation) ClearBotID() {
	m.bot_id = nil
	m.clearedFields[webhooksubscription.FieldBotID] = struct{}{}
}

// BotIDCleared returns if the "bot_id" field was cleared in this mutation.
func (m *WebhookSubscriptionMutation) BotIDCleared() bool {
	_, ok := m.clearedFields[webhooksubscription.FieldBotID]
	return ok
}

// ResetBotID resets all changes to the "bot_id" field.
func (m *WebhookSubscriptionMutation) ResetBotID() {
	m.bot_id = nil
	delete(m.clearedFields, webhooksubscription.FieldBotID)
}

// SetURL sets the "url" field.
func (m *WebhookSubscriptionMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *WebhookSubscriptionMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the WebhookSubscription entity.
// If the WebhookSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookSubscriptionMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *WebhookSubscriptionMutation) ResetURL() {
	m.url = nil
}

// SetTriggers sets the "triggers" field.
func (m *WebhookSubscriptionMutation) SetTriggers(lk []lifecycle.TriggerKind) {
	m.triggers = &lk
	m.appendtriggers = nil
}

// Triggers returns the value of the "triggers" field in the mutation.
func (m *WebhookSubscriptionMutation) Triggers() (r []lifecycle.TriggerKind, exists bool) {
	v := m.triggers
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggers returns the old "triggers" field's value of the WebhookSubscription entity.
// If the WebhookSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookSubscriptionMutation) OldTriggers(ctx context.Context) (v []lifecycle.TriggerKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggers: %w", err)
	}
	return oldValue.Triggers, nil
}

// AppendTriggers adds lk to the "triggers" field.
func (m *WebhookSubscriptionMutation) AppendTriggers(lk []lifecycle.TriggerKind) {
	m.appendtriggers = append(m.appendtriggers, lk...)
}

// AppendedTriggers returns the list of values that were appended to the "triggers" field in this mutation.
func (m *WebhookSubscriptionMutation) AppendedTriggers() ([]lifecycle.TriggerKind, bool) {
	if len(m.appendtriggers) == 0 {
		return nil, false
	}
	return m.appendtriggers, true
}

// ResetTriggers resets all changes to the "triggers" field.
func (m *WebhookSubscriptionMutation) ResetTriggers() {
	m.triggers = nil
	m.appendtriggers = nil
}

// SetIsActive sets the "is_active" field.
func (m *WebhookSubscriptionMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *WebhookSubscriptionMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the WebhookSubscription entity.
// If the WebhookSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookSubscriptionMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *WebhookSubscriptionMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WebhookSubscriptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WebhookSubscriptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WebhookSubscription entity.
// If the WebhookSubscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WebhookSubscriptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WebhookSubscriptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *WebhookSubscriptionMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[webhooksubscription.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *WebhookSubscriptionMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *WebhookSubscriptionMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *WebhookSubscriptionMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddDeliveryAttemptIDs adds the "delivery_attempts" edge to the WebhookDeliveryAttempt entity by ids.
func (m *WebhookSubscriptionMutation) AddDeliveryAttemptIDs(ids ...string) {
	if m.delivery_attempts == nil {
		m.delivery_attempts = make(map[string]struct{})
	}
	for i := range ids {
		m.delivery_attempts[ids[i]] = struct{}{}
	}
}

// ClearDeliveryAttempts clears the "delivery_attempts" edge to the WebhookDeliveryAttempt entity.
func (m *WebhookSubscriptionMutation) ClearDeliveryAttempts() {
	m.cleareddelivery_attempts = true
}

// DeliveryAttemptsCleared reports if the "delivery_attempts" edge to the WebhookDeliveryAttempt entity was cleared.
func (m *WebhookSubscriptionMutation) DeliveryAttemptsCleared() bool {
	return m.cleareddelivery_attempts
}

// RemoveDeliveryAttemptIDs removes the "delivery_attempts" edge to the WebhookDeliveryAttempt entity by IDs.
func (m *WebhookSubscriptionMutation) RemoveDeliveryAttemptIDs(ids ...string) {
	if m.removeddelivery_attempts == nil {
		m.removeddelivery_attempts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.delivery_attempts, ids[i])
		m.removeddelivery_attempts[ids[i]] = struct{}{}
	}
}

// RemovedDeliveryAttempts returns the removed IDs of the "delivery_attempts" edge to the WebhookDeliveryAttempt entity.
func (m *WebhookSubscriptionMutation) RemovedDeliveryAttemptsIDs() (ids []string) {
	for id := range m.removeddelivery_attempts {
		ids = append(ids, id)
	}
	return
}

// DeliveryAttemptsIDs returns the "delivery_attempts" edge IDs in the mutation.
func (m *WebhookSubscriptionMutation) DeliveryAttemptsIDs() (ids []string) {
	for id := range m.delivery_attempts {
		ids = append(ids, id)
	}
	return
}

// ResetDeliveryAttempts resets all changes to the "delivery_attempts" edge.
func (m *WebhookSubscriptionMutation) ResetDeliveryAttempts() {
	m.delivery_attempts = nil
	m.cleareddelivery_attempts = false
	m.removeddelivery_attempts = nil
}

// Where appends a list predicates to the WebhookSubscriptionMutation builder.
func (m *WebhookSubscriptionMutation) Where(ps ...predicate.WebhookSubscription) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WebhookSubscriptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WebhookSubscriptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WebhookSubscription, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WebhookSubscriptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WebhookSubscriptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WebhookSubscription).
func (m *WebhookSubscriptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WebhookSubscriptionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.project != nil {
		fields = append(fields, webhooksubscription.FieldProjectID)
	}
	if m.bot_id != nil {
		fields = append(fields, webhooksubscription.FieldBotID)
	}
	if m.url != nil {
		fields = append(fields, webhooksubscription.FieldURL)
	}
	if m.triggers != nil {
		fields = append(fields, webhooksubscription.FieldTriggers)
	}
	if m.is_active != nil {
		fields = append(fields, webhooksubscription.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, webhooksubscription.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WebhookSubscriptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case webhooksubscription.FieldProjectID:
		return m.ProjectID()
	case webhooksubscription.FieldBotID:
		return m.BotID()
	case webhooksubscription.FieldURL:
		return m.URL()
	case webhooksubscription.FieldTriggers:
		return m.Triggers()
	case webhooksubscription.FieldIsActive:
		return m.IsActive()
	case webhooksubscription.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WebhookSubscriptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case webhooksubscription.FieldProjectID:
		return m.OldProjectID(ctx)
	case webhooksubscription.FieldBotID:
		return m.OldBotID(ctx)
	case webhooksubscription.FieldURL:
		return m.OldURL(ctx)
	case webhooksubscription.FieldTriggers:
		return m.OldTriggers(ctx)
	case webhooksubscription.FieldIsActive:
		return m.OldIsActive(ctx)
	case webhooksubscription.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WebhookSubscription field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookSubscriptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case webhooksubscription.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case webhooksubscription.FieldBotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotID(v)
		return nil
	case webhooksubscription.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case webhooksubscription.FieldTriggers:
		v, ok := value.([]lifecycle.TriggerKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggers(v)
		return nil
	case webhooksubscription.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case webhooksubscription.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WebhookSubscription field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WebhookSubscriptionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WebhookSubscriptionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WebhookSubscriptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WebhookSubscription numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WebhookSubscriptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(webhooksubscription.FieldBotID) {
		fields = append(fields, webhooksubscription.FieldBotID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WebhookSubscriptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WebhookSubscriptionMutation) ClearField(name string) error {
	switch name {
	case webhooksubscription.FieldBotID:
		m.ClearBotID()
		return nil
	}
	return fmt.Errorf("unknown WebhookSubscription nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WebhookSubscriptionMutation) ResetField(name string) error {
	switch name {
	case webhooksubscription.FieldProjectID:
		m.ResetProjectID()
		return nil
	case webhooksubscription.FieldBotID:
		m.ResetBotID()
		return nil
	case webhooksubscription.FieldURL:
		m.ResetURL()
		return nil
	case webhooksubscription.FieldTriggers:
		m.ResetTriggers()
		return nil
	case webhooksubscription.FieldIsActive:
		m.ResetIsActive()
		return nil
	case webhooksubscription.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WebhookSubscription field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WebhookSubscriptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, webhooksubscription.EdgeProject)
	}
	if m.delivery_attempts != nil {
		edges = append(edges, webhooksubscription.EdgeDeliveryAttempts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WebhookSubscriptionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case webhooksubscription.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case webhooksubscription.EdgeDeliveryAttempts:
		ids := make([]ent.Value, 0, len(m.delivery_attempts))
		for id := range m.delivery_attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WebhookSubscriptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddelivery_attempts != nil {
		edges = append(edges, webhooksubscription.EdgeDeliveryAttempts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WebhookSubscriptionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case webhooksubscription.EdgeDeliveryAttempts:
		ids := make([]ent.Value, 0, len(m.removeddelivery_attempts))
		for id := range m.removeddelivery_attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WebhookSubscriptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, webhooksubscription.EdgeProject)
	}
	if m.cleareddelivery_attempts {
		edges = append(edges, webhooksubscription.EdgeDeliveryAttempts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WebhookSubscriptionMutation) EdgeCleared(name string) bool {
	switch name {
	case webhooksubscription.EdgeProject:
		return m.clearedproject
	case webhooksubscription.EdgeDeliveryAttempts:
		return m.cleareddelivery_attempts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WebhookSubscriptionMutation) ClearEdge(name string) error {
	switch name {
	case webhooksubscription.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown WebhookSubscription unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WebhookSubscriptionMutation) ResetEdge(name string) error {
	switch name {
	case webhooksubscription.EdgeProject:
		m.ResetProject()
		return nil
	case webhooksubscription.EdgeDeliveryAttempts:
		m.ResetDeliveryAttempts()
		return nil
	}
	return fmt.Errorf("unknown WebhookSubscription edge %s", name)
}

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// APIKey is the predicate function for apikey builders.
type APIKey func(*sql.Selector)

// Bot is the predicate function for bot builders.
type Bot func(*sql.Selector)

// BotEvent is the predicate function for botevent builders.
type BotEvent func(*sql.Selector)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// CreditTransaction is the predicate function for credittransaction builders.
type CreditTransaction func(*sql.Selector)

// Organization is the predicate function for organization builders.
type Organization func(*sql.Selector)

// Participant is the predicate function for participant builders.
type Participant func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// ProjectCredential is the predicate function for projectcredential builders.
type ProjectCredential func(*sql.Selector)

// Recording is the predicate function for recording builders.
type Recording func(*sql.Selector)

// Utterance is the predicate function for utterance builders.
type Utterance func(*sql.Selector)

// WebhookDeliveryAttempt is the predicate function for webhookdeliveryattempt builders.
type WebhookDeliveryAttempt func(*sql.Selector)

// WebhookSubscription is the predicate function for webhooksubscription builders.
type WebhookSubscription func(*sql.Selector)

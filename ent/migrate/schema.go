// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// APIKeysColumns holds the columns for the "api_keys" table.
	APIKeysColumns = []*schema.Column{
		{Name: "api_key_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "token_digest", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "disabled_at", Type: field.TypeTime, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// APIKeysTable holds the schema information for the "api_keys" table.
	APIKeysTable = &schema.Table{
		Name:       "api_keys",
		Columns:    APIKeysColumns,
		PrimaryKey: []*schema.Column{APIKeysColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "api_keys_projects_api_keys",
				Columns:    []*schema.Column{APIKeysColumns[5]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// BotsColumns holds the columns for the "bots" table.
	BotsColumns = []*schema.Column{
		{Name: "bot_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Default: "Notetaker"},
		{Name: "meeting_url", Type: field.TypeString},
		{Name: "state", Type: field.TypeInt, Default: 1},
		{Name: "session_kind", Type: field.TypeEnum, Enums: []string{"bot", "app_session"}, Default: "bot"},
		{Name: "settings", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "first_heartbeat_timestamp", Type: field.TypeInt64, Nullable: true},
		{Name: "last_heartbeat_timestamp", Type: field.TypeInt64, Nullable: true},
		{Name: "join_at", Type: field.TypeTime, Nullable: true},
		{Name: "deduplication_key", Type: field.TypeString, Nullable: true},
		{Name: "version", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// BotsTable holds the schema information for the "bots" table.
	BotsTable = &schema.Table{
		Name:       "bots",
		Columns:    BotsColumns,
		PrimaryKey: []*schema.Column{BotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bots_projects_bots",
				Columns:    []*schema.Column{BotsColumns[14]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "bot_project_id_state",
				Unique:  false,
				Columns: []*schema.Column{BotsColumns[14], BotsColumns[3]},
			},
			{
				Name:    "bot_state_join_at",
				Unique:  false,
				Columns: []*schema.Column{BotsColumns[3], BotsColumns[9]},
			},
			{
				Name:    "bot_project_id_deduplication_key",
				Unique:  true,
				Columns: []*schema.Column{BotsColumns[14], BotsColumns[10]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deduplication_key IS NOT NULL AND state NOT IN (7, 9, 10)",
				},
			},
		},
	}
	// BotEventsColumns holds the columns for the "bot_events" table.
	BotEventsColumns = []*schema.Column{
		{Name: "bot_event_id", Type: field.TypeString, Unique: true},
		{Name: "old_state", Type: field.TypeInt},
		{Name: "new_state", Type: field.TypeInt},
		{Name: "event_kind", Type: field.TypeEnum, Enums: []string{"join_requested", "bot_put_in_waiting_room", "bot_joined_meeting", "bot_recording_permission_granted", "bot_recording_permission_denied", "recording_paused", "recording_resumed", "meeting_ended", "leave_requested", "bot_left_meeting", "post_processing_completed", "fatal_error", "could_not_join", "data_deleted", "staged", "bot_began_joining_breakout_room", "bot_joined_breakout_room", "bot_began_leaving_breakout_room", "bot_left_breakout_room", "connect_requested", "bot_connected", "disconnect_requested", "bot_disconnected"}},
		{Name: "event_sub_kind", Type: field.TypeEnum, Nullable: true, Enums: []string{"process_terminated", "attendee_internal_error", "out_of_credits", "rtmp_connection_failed", "ui_element_not_found", "heartbeat_timeout", "bot_not_launched", "meeting_not_started_waiting_for_host", "unable_to_connect_to_meeting", "waiting_room_timeout_exceeded", "zoom_authorization_failed", "login_required", "authorized_user_not_in_meeting_timeout_exceeded", "bot_login_attempt_failed", "zoom_meeting_status_failed", "unpublished_zoom_app", "zoom_sdk_internal_error", "request_to_join_denied", "meeting_not_found", "user_requested", "auto_leave_silence", "auto_leave_only_participant_in_meeting", "auto_leave_max_uptime_exceeded", "auto_leave_could_not_enable_closed_captions", "host_denied_permission", "request_timed_out", "host_client_cannot_grant_permission"}},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "requested_action_taken_at", Type: field.TypeTime, Nullable: true},
		{Name: "bot_id", Type: field.TypeString},
	}
	// BotEventsTable holds the schema information for the "bot_events" table.
	BotEventsTable = &schema.Table{
		Name:       "bot_events",
		Columns:    BotEventsColumns,
		PrimaryKey: []*schema.Column{BotEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "bot_events_bots_events",
				Columns:    []*schema.Column{BotEventsColumns[8]},
				RefColumns: []*schema.Column{BotsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "botevent_bot_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{BotEventsColumns[8], BotEventsColumns[6]},
			},
		},
	}
	// ChatMessagesColumns holds the columns for the "chat_messages" table.
	ChatMessagesColumns = []*schema.Column{
		{Name: "chat_message_id", Type: field.TypeString, Unique: true},
		{Name: "participant_id", Type: field.TypeString, Nullable: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "timestamp_ms", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "bot_id", Type: field.TypeString},
	}
	// ChatMessagesTable holds the schema information for the "chat_messages" table.
	ChatMessagesTable = &schema.Table{
		Name:       "chat_messages",
		Columns:    ChatMessagesColumns,
		PrimaryKey: []*schema.Column{ChatMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_messages_bots_chat_messages",
				Columns:    []*schema.Column{ChatMessagesColumns[5]},
				RefColumns: []*schema.Column{BotsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatmessage_bot_id_timestamp_ms",
				Unique:  false,
				Columns: []*schema.Column{ChatMessagesColumns[5], ChatMessagesColumns[3]},
			},
		},
	}
	// CreditTransactionsColumns holds the columns for the "credit_transactions" table.
	CreditTransactionsColumns = []*schema.Column{
		{Name: "credit_transaction_id", Type: field.TypeString, Unique: true},
		{Name: "centicredits_before", Type: field.TypeInt64},
		{Name: "centicredits_after", Type: field.TypeInt64},
		{Name: "centicredits_delta", Type: field.TypeInt64},
		{Name: "bot_id", Type: field.TypeString, Nullable: true},
		{Name: "stripe_payment_intent_id", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "parent_transaction_id", Type: field.TypeString, Nullable: true},
		{Name: "organization_id", Type: field.TypeString},
	}
	// CreditTransactionsTable holds the schema information for the "credit_transactions" table.
	CreditTransactionsTable = &schema.Table{
		Name:       "credit_transactions",
		Columns:    CreditTransactionsColumns,
		PrimaryKey: []*schema.Column{CreditTransactionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "credit_transactions_credit_transactions_children",
				Columns:    []*schema.Column{CreditTransactionsColumns[8]},
				RefColumns: []*schema.Column{CreditTransactionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "credit_transactions_organizations_credit_transactions",
				Columns:    []*schema.Column{CreditTransactionsColumns[9]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "credittransaction_parent_transaction_id",
				Unique:  true,
				Columns: []*schema.Column{CreditTransactionsColumns[8]},
				Annotation: &entsql.IndexAnnotation{
					Where: "parent_transaction_id IS NOT NULL",
				},
			},
			{
				Name:    "credittransaction_organization_id",
				Unique:  true,
				Columns: []*schema.Column{CreditTransactionsColumns[9]},
				Annotation: &entsql.IndexAnnotation{
					Where: "parent_transaction_id IS NULL",
				},
			},
			{
				Name:    "credittransaction_bot_id",
				Unique:  true,
				Columns: []*schema.Column{CreditTransactionsColumns[4]},
				Annotation: &entsql.IndexAnnotation{
					Where: "bot_id IS NOT NULL",
				},
			},
			{
				Name:    "credittransaction_stripe_payment_intent_id",
				Unique:  true,
				Columns: []*schema.Column{CreditTransactionsColumns[5]},
				Annotation: &entsql.IndexAnnotation{
					Where: "stripe_payment_intent_id IS NOT NULL",
				},
			},
		},
	}
	// OrganizationsColumns holds the columns for the "organizations" table.
	OrganizationsColumns = []*schema.Column{
		{Name: "organization_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "centicredits", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OrganizationsTable holds the schema information for the "organizations" table.
	OrganizationsTable = &schema.Table{
		Name:       "organizations",
		Columns:    OrganizationsColumns,
		PrimaryKey: []*schema.Column{OrganizationsColumns[0]},
	}
	// ParticipantsColumns holds the columns for the "participants" table.
	ParticipantsColumns = []*schema.Column{
		{Name: "participant_id", Type: field.TypeString, Unique: true},
		{Name: "platform_uuid", Type: field.TypeString},
		{Name: "full_name", Type: field.TypeString},
		{Name: "is_host", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "bot_id", Type: field.TypeString},
	}
	// ParticipantsTable holds the schema information for the "participants" table.
	ParticipantsTable = &schema.Table{
		Name:       "participants",
		Columns:    ParticipantsColumns,
		PrimaryKey: []*schema.Column{ParticipantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "participants_bots_participants",
				Columns:    []*schema.Column{ParticipantsColumns[5]},
				RefColumns: []*schema.Column{BotsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "participant_bot_id_platform_uuid",
				Unique:  true,
				Columns: []*schema.Column{ParticipantsColumns[5], ParticipantsColumns[1]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "webhook_secret", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "organization_id", Type: field.TypeString},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "projects_organizations_projects",
				Columns:    []*schema.Column{ProjectsColumns[4]},
				RefColumns: []*schema.Column{OrganizationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ProjectCredentialsColumns holds the columns for the "project_credentials" table.
	ProjectCredentialsColumns = []*schema.Column{
		{Name: "project_credential_id", Type: field.TypeString, Unique: true},
		{Name: "credential_kind", Type: field.TypeString},
		{Name: "encrypted_blob", Type: field.TypeBytes},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// ProjectCredentialsTable holds the schema information for the "project_credentials" table.
	ProjectCredentialsTable = &schema.Table{
		Name:       "project_credentials",
		Columns:    ProjectCredentialsColumns,
		PrimaryKey: []*schema.Column{ProjectCredentialsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "project_credentials_projects_credentials",
				Columns:    []*schema.Column{ProjectCredentialsColumns[5]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "projectcredential_project_id_credential_kind",
				Unique:  true,
				Columns: []*schema.Column{ProjectCredentialsColumns[5], ProjectCredentialsColumns[1]},
			},
		},
	}
	// RecordingsColumns holds the columns for the "recordings" table.
	RecordingsColumns = []*schema.Column{
		{Name: "recording_id", Type: field.TypeString, Unique: true},
		{Name: "recording_kind", Type: field.TypeEnum, Enums: []string{"audio_and_video", "audio_only", "no_recording"}, Default: "audio_and_video"},
		{Name: "transcription_kind", Type: field.TypeEnum, Enums: []string{"none", "realtime", "post_meeting", "closed_caption"}, Default: "none"},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"not_started", "in_progress", "paused", "complete", "failed"}, Default: "not_started"},
		{Name: "transcription_state", Type: field.TypeEnum, Enums: []string{"not_started", "in_progress", "complete", "failed"}, Default: "not_started"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "media_blob_id", Type: field.TypeString, Nullable: true},
		{Name: "failure_reasons", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "bot_id", Type: field.TypeString},
	}
	// RecordingsTable holds the schema information for the "recordings" table.
	RecordingsTable = &schema.Table{
		Name:       "recordings",
		Columns:    RecordingsColumns,
		PrimaryKey: []*schema.Column{RecordingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "recordings_bots_recordings",
				Columns:    []*schema.Column{RecordingsColumns[11]},
				RefColumns: []*schema.Column{BotsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "recording_bot_id",
				Unique:  true,
				Columns: []*schema.Column{RecordingsColumns[11]},
				Annotation: &entsql.IndexAnnotation{
					Where: "state IN ('in_progress', 'paused')",
				},
			},
			{
				Name:    "recording_bot_id_state",
				Unique:  false,
				Columns: []*schema.Column{RecordingsColumns[11], RecordingsColumns[3]},
			},
		},
	}
	// UtterancesColumns holds the columns for the "utterances" table.
	UtterancesColumns = []*schema.Column{
		{Name: "utterance_id", Type: field.TypeString, Unique: true},
		{Name: "participant_id", Type: field.TypeString, Nullable: true},
		{Name: "timestamp_ms", Type: field.TypeInt64},
		{Name: "duration_ms", Type: field.TypeInt64},
		{Name: "transcription", Type: field.TypeJSON, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "recording_id", Type: field.TypeString},
	}
	// UtterancesTable holds the schema information for the "utterances" table.
	UtterancesTable = &schema.Table{
		Name:       "utterances",
		Columns:    UtterancesColumns,
		PrimaryKey: []*schema.Column{UtterancesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "utterances_recordings_utterances",
				Columns:    []*schema.Column{UtterancesColumns[8]},
				RefColumns: []*schema.Column{RecordingsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "utterance_recording_id_timestamp_ms",
				Unique:  false,
				Columns: []*schema.Column{UtterancesColumns[8], UtterancesColumns[2]},
			},
		},
	}
	// WebhookDeliveryAttemptsColumns holds the columns for the "webhook_delivery_attempts" table.
	WebhookDeliveryAttemptsColumns = []*schema.Column{
		{Name: "webhook_delivery_attempt_id", Type: field.TypeString, Unique: true},
		{Name: "bot_id", Type: field.TypeString, Nullable: true},
		{Name: "calendar_id", Type: field.TypeString, Nullable: true},
		{Name: "zoom_oauth_connection_id", Type: field.TypeString, Nullable: true},
		{Name: "trigger", Type: field.TypeInt},
		{Name: "idempotency_key", Type: field.TypeString, Unique: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "success", "failure"}, Default: "pending"},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "response_bodies", Type: field.TypeJSON, Nullable: true},
		{Name: "next_attempt_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_attempted_at", Type: field.TypeTime, Nullable: true},
		{Name: "succeeded_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "subscription_id", Type: field.TypeString},
	}
	// WebhookDeliveryAttemptsTable holds the schema information for the "webhook_delivery_attempts" table.
	WebhookDeliveryAttemptsTable = &schema.Table{
		Name:       "webhook_delivery_attempts",
		Columns:    WebhookDeliveryAttemptsColumns,
		PrimaryKey: []*schema.Column{WebhookDeliveryAttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "webhook_delivery_attempts_webhook_subscriptions_delivery_attempts",
				Columns:    []*schema.Column{WebhookDeliveryAttemptsColumns[14]},
				RefColumns: []*schema.Column{WebhookSubscriptionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "webhookdeliveryattempt_status_next_attempt_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveryAttemptsColumns[7], WebhookDeliveryAttemptsColumns[10]},
			},
			{
				Name:    "webhookdeliveryattempt_bot_id_trigger",
				Unique:  false,
				Columns: []*schema.Column{WebhookDeliveryAttemptsColumns[1], WebhookDeliveryAttemptsColumns[4]},
			},
		},
	}
	// WebhookSubscriptionsColumns holds the columns for the "webhook_subscriptions" table.
	WebhookSubscriptionsColumns = []*schema.Column{
		{Name: "webhook_subscription_id", Type: field.TypeString, Unique: true},
		{Name: "bot_id", Type: field.TypeString, Nullable: true},
		{Name: "url", Type: field.TypeString},
		{Name: "triggers", Type: field.TypeJSON},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// WebhookSubscriptionsTable holds the schema information for the "webhook_subscriptions" table.
	WebhookSubscriptionsTable = &schema.Table{
		Name:       "webhook_subscriptions",
		Columns:    WebhookSubscriptionsColumns,
		PrimaryKey: []*schema.Column{WebhookSubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "webhook_subscriptions_projects_webhook_subscriptions",
				Columns:    []*schema.Column{WebhookSubscriptionsColumns[6]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "webhooksubscription_project_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{WebhookSubscriptionsColumns[6], WebhookSubscriptionsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		APIKeysTable,
		BotsTable,
		BotEventsTable,
		ChatMessagesTable,
		CreditTransactionsTable,
		OrganizationsTable,
		ParticipantsTable,
		ProjectsTable,
		ProjectCredentialsTable,
		RecordingsTable,
		UtterancesTable,
		WebhookDeliveryAttemptsTable,
		WebhookSubscriptionsTable,
	}
)

func init() {
	APIKeysTable.ForeignKeys[0].RefTable = ProjectsTable
	BotsTable.ForeignKeys[0].RefTable = ProjectsTable
	BotEventsTable.ForeignKeys[0].RefTable = BotsTable
	ChatMessagesTable.ForeignKeys[0].RefTable = BotsTable
	CreditTransactionsTable.ForeignKeys[0].RefTable = CreditTransactionsTable
	CreditTransactionsTable.ForeignKeys[1].RefTable = OrganizationsTable
	ParticipantsTable.ForeignKeys[0].RefTable = BotsTable
	ProjectsTable.ForeignKeys[0].RefTable = OrganizationsTable
	ProjectCredentialsTable.ForeignKeys[0].RefTable = ProjectsTable
	RecordingsTable.ForeignKeys[0].RefTable = BotsTable
	UtterancesTable.ForeignKeys[0].RefTable = RecordingsTable
	WebhookDeliveryAttemptsTable.ForeignKeys[0].RefTable = WebhookSubscriptionsTable
	WebhookSubscriptionsTable.ForeignKeys[0].RefTable = ProjectsTable
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdminGroupLinksColumns holds the columns for the "admin_group_links" table.
	AdminGroupLinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "admin_id", Type: field.TypeString},
		{Name: "group_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AdminGroupLinksTable holds the schema information for the "admin_group_links" table.
	AdminGroupLinksTable = &schema.Table{
		Name:       "admin_group_links",
		Columns:    AdminGroupLinksColumns,
		PrimaryKey: []*schema.Column{AdminGroupLinksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "admingrouplink_admin_id_group_id",
				Unique:  true,
				Columns: []*schema.Column{AdminGroupLinksColumns[1], AdminGroupLinksColumns[2]},
			},
			{
				Name:    "admingrouplink_group_id",
				Unique:  false,
				Columns: []*schema.Column{AdminGroupLinksColumns[2]},
			},
		},
	}
	// AdminSessionsColumns holds the columns for the "admin_sessions" table.
	AdminSessionsColumns = []*schema.Column{
		{Name: "admin_id", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"awaiting_group_name", "awaiting_qr_scan"}, Default: "awaiting_group_name"},
		{Name: "pending_group_id", Type: field.TypeString, Nullable: true},
		{Name: "pending_group_name", Type: field.TypeString, Nullable: true},
		{Name: "pending_token", Type: field.TypeString, Nullable: true},
		{Name: "lang", Type: field.TypeEnum, Enums: []string{"uk", "en"}, Default: "en"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AdminSessionsTable holds the schema information for the "admin_sessions" table.
	AdminSessionsTable = &schema.Table{
		Name:       "admin_sessions",
		Columns:    AdminSessionsColumns,
		PrimaryKey: []*schema.Column{AdminSessionsColumns[0]},
	}
	// CaseEvidencesColumns holds the columns for the "case_evidences" table.
	CaseEvidencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "message_id", Type: field.TypeString},
		{Name: "message_ts", Type: field.TypeInt64},
		{Name: "position", Type: field.TypeInt},
		{Name: "case_id", Type: field.TypeString},
	}
	// CaseEvidencesTable holds the schema information for the "case_evidences" table.
	CaseEvidencesTable = &schema.Table{
		Name:       "case_evidences",
		Columns:    CaseEvidencesColumns,
		PrimaryKey: []*schema.Column{CaseEvidencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "case_evidences_support_cases_evidence",
				Columns:    []*schema.Column{CaseEvidencesColumns[4]},
				RefColumns: []*schema.Column{SupportCasesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "caseevidence_case_id_message_id",
				Unique:  true,
				Columns: []*schema.Column{CaseEvidencesColumns[4], CaseEvidencesColumns[1]},
			},
			{
				Name:    "caseevidence_message_ts",
				Unique:  false,
				Columns: []*schema.Column{CaseEvidencesColumns[2]},
			},
		},
	}
	// GroupBuffersColumns holds the columns for the "group_buffers" table.
	GroupBuffersColumns = []*schema.Column{
		{Name: "group_id", Type: field.TypeString, Unique: true},
		{Name: "buffer_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "doc_urls", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GroupBuffersTable holds the schema information for the "group_buffers" table.
	GroupBuffersTable = &schema.Table{
		Name:       "group_buffers",
		Columns:    GroupBuffersColumns,
		PrimaryKey: []*schema.Column{GroupBuffersColumns[0]},
	}
	// HistoryTokensColumns holds the columns for the "history_tokens" table.
	HistoryTokensColumns = []*schema.Column{
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "admin_id", Type: field.TypeString},
		{Name: "group_id", Type: field.TypeString},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "consumed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// HistoryTokensTable holds the schema information for the "history_tokens" table.
	HistoryTokensTable = &schema.Table{
		Name:       "history_tokens",
		Columns:    HistoryTokensColumns,
		PrimaryKey: []*schema.Column{HistoryTokensColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "historytoken_admin_id",
				Unique:  false,
				Columns: []*schema.Column{HistoryTokensColumns[1]},
			},
			{
				Name:    "historytoken_expires_at",
				Unique:  false,
				Columns: []*schema.Column{HistoryTokensColumns[3]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"buffer_update", "maybe_respond", "history_link"}},
		{Name: "group_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeBytes},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "done", "failed", "cancelled"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "next_visible_at", Type: field.TypeTime},
		{Name: "lease_expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_next_visible_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[6]},
			},
			{
				Name:    "job_type_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[4]},
			},
			{
				Name:    "job_status_lease_expires_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[7]},
			},
			{
				Name:    "job_group_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2]},
			},
		},
	}
	// RawMessagesColumns holds the columns for the "raw_messages" table.
	RawMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "group_id", Type: field.TypeString},
		{Name: "message_id", Type: field.TypeString},
		{Name: "ts", Type: field.TypeInt64},
		{Name: "sender_hash", Type: field.TypeString},
		{Name: "sender_name", Type: field.TypeString, Nullable: true},
		{Name: "content_text", Type: field.TypeString, Size: 2147483647},
		{Name: "image_paths", Type: field.TypeJSON, Nullable: true},
		{Name: "reply_to_id", Type: field.TypeString, Nullable: true},
		{Name: "reaction_count", Type: field.TypeInt, Default: 0},
		{Name: "from_bot", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RawMessagesTable holds the schema information for the "raw_messages" table.
	RawMessagesTable = &schema.Table{
		Name:       "raw_messages",
		Columns:    RawMessagesColumns,
		PrimaryKey: []*schema.Column{RawMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rawmessage_group_id_message_id",
				Unique:  true,
				Columns: []*schema.Column{RawMessagesColumns[1], RawMessagesColumns[2]},
			},
			{
				Name:    "rawmessage_group_id_ts",
				Unique:  false,
				Columns: []*schema.Column{RawMessagesColumns[1], RawMessagesColumns[3]},
			},
		},
	}
	// ReactionsColumns holds the columns for the "reactions" table.
	ReactionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "group_id", Type: field.TypeString},
		{Name: "target_ts", Type: field.TypeInt64},
		{Name: "target_author", Type: field.TypeString},
		{Name: "sender_hash", Type: field.TypeString},
		{Name: "emoji", Type: field.TypeString},
		{Name: "is_positive", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ReactionsTable holds the schema information for the "reactions" table.
	ReactionsTable = &schema.Table{
		Name:       "reactions",
		Columns:    ReactionsColumns,
		PrimaryKey: []*schema.Column{ReactionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reaction_group_id_target_ts_target_author_sender_hash_emoji",
				Unique:  true,
				Columns: []*schema.Column{ReactionsColumns[1], ReactionsColumns[2], ReactionsColumns[3], ReactionsColumns[4], ReactionsColumns[5]},
			},
			{
				Name:    "reaction_group_id_target_ts",
				Unique:  false,
				Columns: []*schema.Column{ReactionsColumns[1], ReactionsColumns[2]},
			},
		},
	}
	// SentRepliesColumns holds the columns for the "sent_replies" table.
	SentRepliesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "group_id", Type: field.TypeString},
		{Name: "message_id", Type: field.TypeString},
		{Name: "sent_at", Type: field.TypeTime},
	}
	// SentRepliesTable holds the schema information for the "sent_replies" table.
	SentRepliesTable = &schema.Table{
		Name:       "sent_replies",
		Columns:    SentRepliesColumns,
		PrimaryKey: []*schema.Column{SentRepliesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sentreply_group_id_message_id",
				Unique:  true,
				Columns: []*schema.Column{SentRepliesColumns[1], SentRepliesColumns[2]},
			},
		},
	}
	// SupportCasesColumns holds the columns for the "support_cases" table.
	SupportCasesColumns = []*schema.Column{
		{Name: "case_id", Type: field.TypeString, Unique: true},
		{Name: "group_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "solved", "archived"}, Default: "open"},
		{Name: "problem_title", Type: field.TypeString},
		{Name: "problem_summary", Type: field.TypeString, Size: 2147483647},
		{Name: "solution_summary", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "dedup_embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "in_index", Type: field.TypeBool, Default: false},
		{Name: "closed_emoji", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SupportCasesTable holds the schema information for the "support_cases" table.
	SupportCasesTable = &schema.Table{
		Name:       "support_cases",
		Columns:    SupportCasesColumns,
		PrimaryKey: []*schema.Column{SupportCasesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "supportcase_group_id_status",
				Unique:  false,
				Columns: []*schema.Column{SupportCasesColumns[1], SupportCasesColumns[2]},
			},
			{
				Name:    "supportcase_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{SupportCasesColumns[2], SupportCasesColumns[11]},
			},
			{
				Name:    "supportcase_group_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{SupportCasesColumns[1], SupportCasesColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdminGroupLinksTable,
		AdminSessionsTable,
		CaseEvidencesTable,
		GroupBuffersTable,
		HistoryTokensTable,
		JobsTable,
		RawMessagesTable,
		ReactionsTable,
		SentRepliesTable,
		SupportCasesTable,
	}
)

func init() {
	CaseEvidencesTable.ForeignKeys[0].RefTable = SupportCasesTable
}

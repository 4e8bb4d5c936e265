// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdminGroupLink is the predicate function for admingrouplink builders.
type AdminGroupLink func(*sql.Selector)

// AdminSession is the predicate function for adminsession builders.
type AdminSession func(*sql.Selector)

// CaseEvidence is the predicate function for caseevidence builders.
type CaseEvidence func(*sql.Selector)

// GroupBuffer is the predicate function for groupbuffer builders.
type GroupBuffer func(*sql.Selector)

// HistoryToken is the predicate function for historytoken builders.
type HistoryToken func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// RawMessage is the predicate function for rawmessage builders.
type RawMessage func(*sql.Selector)

// Reaction is the predicate function for reaction builders.
type Reaction func(*sql.Selector)

// SentReply is the predicate function for sentreply builders.
type SentReply func(*sql.Selector)

// SupportCase is the predicate function for supportcase builders.
type SupportCase func(*sql.Selector)

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/casemine/casemine/ent/admingrouplink"
	"github.com/casemine/casemine/ent/adminsession"
	"github.com/casemine/casemine/ent/groupbuffer"
	"github.com/casemine/casemine/ent/historytoken"
	"github.com/casemine/casemine/ent/job"
	"github.com/casemine/casemine/ent/rawmessage"
	"github.com/casemine/casemine/ent/reaction"
	"github.com/casemine/casemine/ent/schema"
	"github.com/casemine/casemine/ent/sentreply"
	"github.com/casemine/casemine/ent/supportcase"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	admingrouplinkFields := schema.AdminGroupLink{}.Fields()
	_ = admingrouplinkFields
	// admingrouplinkDescCreatedAt is the schema descriptor for created_at field.
	admingrouplinkDescCreatedAt := admingrouplinkFields[2].Descriptor()
	// admingrouplink.DefaultCreatedAt holds the default value on creation for the created_at field.
	admingrouplink.DefaultCreatedAt = admingrouplinkDescCreatedAt.Default.(func() time.Time)
	adminsessionFields := schema.AdminSession{}.Fields()
	_ = adminsessionFields
	// adminsessionDescCreatedAt is the schema descriptor for created_at field.
	adminsessionDescCreatedAt := adminsessionFields[6].Descriptor()
	// adminsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	adminsession.DefaultCreatedAt = adminsessionDescCreatedAt.Default.(func() time.Time)
	// adminsessionDescUpdatedAt is the schema descriptor for updated_at field.
	adminsessionDescUpdatedAt := adminsessionFields[7].Descriptor()
	// adminsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	adminsession.DefaultUpdatedAt = adminsessionDescUpdatedAt.Default.(func() time.Time)
	// adminsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	adminsession.UpdateDefaultUpdatedAt = adminsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	groupbufferFields := schema.GroupBuffer{}.Fields()
	_ = groupbufferFields
	// groupbufferDescBufferText is the schema descriptor for buffer_text field.
	groupbufferDescBufferText := groupbufferFields[1].Descriptor()
	// groupbuffer.DefaultBufferText holds the default value on creation for the buffer_text field.
	groupbuffer.DefaultBufferText = groupbufferDescBufferText.Default.(string)
	// groupbufferDescUpdatedAt is the schema descriptor for updated_at field.
	groupbufferDescUpdatedAt := groupbufferFields[3].Descriptor()
	// groupbuffer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	groupbuffer.DefaultUpdatedAt = groupbufferDescUpdatedAt.Default.(func() time.Time)
	// groupbuffer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	groupbuffer.UpdateDefaultUpdatedAt = groupbufferDescUpdatedAt.UpdateDefault.(func() time.Time)
	historytokenFields := schema.HistoryToken{}.Fields()
	_ = historytokenFields
	// historytokenDescConsumed is the schema descriptor for consumed field.
	historytokenDescConsumed := historytokenFields[4].Descriptor()
	// historytoken.DefaultConsumed holds the default value on creation for the consumed field.
	historytoken.DefaultConsumed = historytokenDescConsumed.Default.(bool)
	// historytokenDescCreatedAt is the schema descriptor for created_at field.
	historytokenDescCreatedAt := historytokenFields[5].Descriptor()
	// historytoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	historytoken.DefaultCreatedAt = historytokenDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescAttempts is the schema descriptor for attempts field.
	jobDescAttempts := jobFields[5].Descriptor()
	// job.DefaultAttempts holds the default value on creation for the attempts field.
	job.DefaultAttempts = jobDescAttempts.Default.(int)
	// jobDescNextVisibleAt is the schema descriptor for next_visible_at field.
	jobDescNextVisibleAt := jobFields[6].Descriptor()
	// job.DefaultNextVisibleAt holds the default value on creation for the next_visible_at field.
	job.DefaultNextVisibleAt = jobDescNextVisibleAt.Default.(func() time.Time)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[10].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[11].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	rawmessageFields := schema.RawMessage{}.Fields()
	_ = rawmessageFields
	// rawmessageDescReactionCount is the schema descriptor for reaction_count field.
	rawmessageDescReactionCount := rawmessageFields[9].Descriptor()
	// rawmessage.DefaultReactionCount holds the default value on creation for the reaction_count field.
	rawmessage.DefaultReactionCount = rawmessageDescReactionCount.Default.(int)
	// rawmessageDescFromBot is the schema descriptor for from_bot field.
	rawmessageDescFromBot := rawmessageFields[10].Descriptor()
	// rawmessage.DefaultFromBot holds the default value on creation for the from_bot field.
	rawmessage.DefaultFromBot = rawmessageDescFromBot.Default.(bool)
	// rawmessageDescCreatedAt is the schema descriptor for created_at field.
	rawmessageDescCreatedAt := rawmessageFields[11].Descriptor()
	// rawmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	rawmessage.DefaultCreatedAt = rawmessageDescCreatedAt.Default.(func() time.Time)
	reactionFields := schema.Reaction{}.Fields()
	_ = reactionFields
	// reactionDescIsPositive is the schema descriptor for is_positive field.
	reactionDescIsPositive := reactionFields[5].Descriptor()
	// reaction.DefaultIsPositive holds the default value on creation for the is_positive field.
	reaction.DefaultIsPositive = reactionDescIsPositive.Default.(bool)
	// reactionDescCreatedAt is the schema descriptor for created_at field.
	reactionDescCreatedAt := reactionFields[6].Descriptor()
	// reaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	reaction.DefaultCreatedAt = reactionDescCreatedAt.Default.(func() time.Time)
	sentreplyFields := schema.SentReply{}.Fields()
	_ = sentreplyFields
	// sentreplyDescSentAt is the schema descriptor for sent_at field.
	sentreplyDescSentAt := sentreplyFields[2].Descriptor()
	// sentreply.DefaultSentAt holds the default value on creation for the sent_at field.
	sentreply.DefaultSentAt = sentreplyDescSentAt.Default.(func() time.Time)
	supportcaseFields := schema.SupportCase{}.Fields()
	_ = supportcaseFields
	// supportcaseDescSolutionSummary is the schema descriptor for solution_summary field.
	supportcaseDescSolutionSummary := supportcaseFields[5].Descriptor()
	// supportcase.DefaultSolutionSummary holds the default value on creation for the solution_summary field.
	supportcase.DefaultSolutionSummary = supportcaseDescSolutionSummary.Default.(string)
	// supportcaseDescInIndex is the schema descriptor for in_index field.
	supportcaseDescInIndex := supportcaseFields[8].Descriptor()
	// supportcase.DefaultInIndex holds the default value on creation for the in_index field.
	supportcase.DefaultInIndex = supportcaseDescInIndex.Default.(bool)
	// supportcaseDescCreatedAt is the schema descriptor for created_at field.
	supportcaseDescCreatedAt := supportcaseFields[10].Descriptor()
	// supportcase.DefaultCreatedAt holds the default value on creation for the created_at field.
	supportcase.DefaultCreatedAt = supportcaseDescCreatedAt.Default.(func() time.Time)
	// supportcaseDescUpdatedAt is the schema descriptor for updated_at field.
	supportcaseDescUpdatedAt := supportcaseFields[11].Descriptor()
	// supportcase.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	supportcase.DefaultUpdatedAt = supportcaseDescUpdatedAt.Default.(func() time.Time)
	// supportcase.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	supportcase.UpdateDefaultUpdatedAt = supportcaseDescUpdatedAt.UpdateDefault.(func() time.Time)
}

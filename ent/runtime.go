// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/wuyifannppp/poco-agent/ent/agentmessage"
	"github.com/wuyifannppp/poco-agent/ent/agentrun"
	"github.com/wuyifannppp/poco-agent/ent/agentsession"
	"github.com/wuyifannppp/poco-agent/ent/mcppreset"
	"github.com/wuyifannppp/poco-agent/ent/project"
	"github.com/wuyifannppp/poco-agent/ent/schema"
	"github.com/wuyifannppp/poco-agent/ent/skillpreset"
	"github.com/wuyifannppp/poco-agent/ent/toolexecution"
	"github.com/wuyifannppp/poco-agent/ent/usagelog"
	"github.com/wuyifannppp/poco-agent/ent/userenvvar"
	"github.com/wuyifannppp/poco-agent/ent/usermcpconfig"
	"github.com/wuyifannppp/poco-agent/ent/userskillinstall"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentmessageFields := schema.AgentMessage{}.Fields()
	_ = agentmessageFields
	// agentmessageDescCreatedAt is the schema descriptor for created_at field.
	agentmessageDescCreatedAt := agentmessageFields[5].Descriptor()
	// agentmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentmessage.DefaultCreatedAt = agentmessageDescCreatedAt.Default.(func() time.Time)
	agentrunFields := schema.AgentRun{}.Fields()
	_ = agentrunFields
	// agentrunDescAttempt is the schema descriptor for attempt field.
	agentrunDescAttempt := agentrunFields[12].Descriptor()
	// agentrun.DefaultAttempt holds the default value on creation for the attempt field.
	agentrun.DefaultAttempt = agentrunDescAttempt.Default.(int)
	// agentrunDescCancelRequested is the schema descriptor for cancel_requested field.
	agentrunDescCancelRequested := agentrunFields[13].Descriptor()
	// agentrun.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	agentrun.DefaultCancelRequested = agentrunDescCancelRequested.Default.(bool)
	// agentrunDescCreatedAt is the schema descriptor for created_at field.
	agentrunDescCreatedAt := agentrunFields[14].Descriptor()
	// agentrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentrun.DefaultCreatedAt = agentrunDescCreatedAt.Default.(func() time.Time)
	// agentrunDescUpdatedAt is the schema descriptor for updated_at field.
	agentrunDescUpdatedAt := agentrunFields[15].Descriptor()
	// agentrun.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentrun.DefaultUpdatedAt = agentrunDescUpdatedAt.Default.(func() time.Time)
	// agentrun.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentrun.UpdateDefaultUpdatedAt = agentrunDescUpdatedAt.UpdateDefault.(func() time.Time)
	agentsessionFields := schema.AgentSession{}.Fields()
	_ = agentsessionFields
	// agentsessionDescIsDeleted is the schema descriptor for is_deleted field.
	agentsessionDescIsDeleted := agentsessionFields[11].Descriptor()
	// agentsession.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	agentsession.DefaultIsDeleted = agentsessionDescIsDeleted.Default.(bool)
	// agentsessionDescCreatedAt is the schema descriptor for created_at field.
	agentsessionDescCreatedAt := agentsessionFields[12].Descriptor()
	// agentsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentsession.DefaultCreatedAt = agentsessionDescCreatedAt.Default.(func() time.Time)
	// agentsessionDescUpdatedAt is the schema descriptor for updated_at field.
	agentsessionDescUpdatedAt := agentsessionFields[13].Descriptor()
	// agentsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agentsession.DefaultUpdatedAt = agentsessionDescUpdatedAt.Default.(func() time.Time)
	// agentsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agentsession.UpdateDefaultUpdatedAt = agentsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	mcppresetFields := schema.McpPreset{}.Fields()
	_ = mcppresetFields
	// mcppresetDescCreatedAt is the schema descriptor for created_at field.
	mcppresetDescCreatedAt := mcppresetFields[3].Descriptor()
	// mcppreset.DefaultCreatedAt holds the default value on creation for the created_at field.
	mcppreset.DefaultCreatedAt = mcppresetDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescIsDeleted is the schema descriptor for is_deleted field.
	projectDescIsDeleted := projectFields[3].Descriptor()
	// project.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	project.DefaultIsDeleted = projectDescIsDeleted.Default.(bool)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[4].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[5].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	skillpresetFields := schema.SkillPreset{}.Fields()
	_ = skillpresetFields
	// skillpresetDescCreatedAt is the schema descriptor for created_at field.
	skillpresetDescCreatedAt := skillpresetFields[3].Descriptor()
	// skillpreset.DefaultCreatedAt holds the default value on creation for the created_at field.
	skillpreset.DefaultCreatedAt = skillpresetDescCreatedAt.Default.(func() time.Time)
	toolexecutionFields := schema.ToolExecution{}.Fields()
	_ = toolexecutionFields
	// toolexecutionDescCreatedAt is the schema descriptor for created_at field.
	toolexecutionDescCreatedAt := toolexecutionFields[10].Descriptor()
	// toolexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	toolexecution.DefaultCreatedAt = toolexecutionDescCreatedAt.Default.(func() time.Time)
	usagelogFields := schema.UsageLog{}.Fields()
	_ = usagelogFields
	// usagelogDescInputTokens is the schema descriptor for input_tokens field.
	usagelogDescInputTokens := usagelogFields[3].Descriptor()
	// usagelog.DefaultInputTokens holds the default value on creation for the input_tokens field.
	usagelog.DefaultInputTokens = usagelogDescInputTokens.Default.(int)
	// usagelogDescOutputTokens is the schema descriptor for output_tokens field.
	usagelogDescOutputTokens := usagelogFields[4].Descriptor()
	// usagelog.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	usagelog.DefaultOutputTokens = usagelogDescOutputTokens.Default.(int)
	// usagelogDescCacheReadTokens is the schema descriptor for cache_read_tokens field.
	usagelogDescCacheReadTokens := usagelogFields[5].Descriptor()
	// usagelog.DefaultCacheReadTokens holds the default value on creation for the cache_read_tokens field.
	usagelog.DefaultCacheReadTokens = usagelogDescCacheReadTokens.Default.(int)
	// usagelogDescCacheWriteTokens is the schema descriptor for cache_write_tokens field.
	usagelogDescCacheWriteTokens := usagelogFields[6].Descriptor()
	// usagelog.DefaultCacheWriteTokens holds the default value on creation for the cache_write_tokens field.
	usagelog.DefaultCacheWriteTokens = usagelogDescCacheWriteTokens.Default.(int)
	// usagelogDescCreatedAt is the schema descriptor for created_at field.
	usagelogDescCreatedAt := usagelogFields[8].Descriptor()
	// usagelog.DefaultCreatedAt holds the default value on creation for the created_at field.
	usagelog.DefaultCreatedAt = usagelogDescCreatedAt.Default.(func() time.Time)
	userenvvarFields := schema.UserEnvVar{}.Fields()
	_ = userenvvarFields
	// userenvvarDescCreatedAt is the schema descriptor for created_at field.
	userenvvarDescCreatedAt := userenvvarFields[4].Descriptor()
	// userenvvar.DefaultCreatedAt holds the default value on creation for the created_at field.
	userenvvar.DefaultCreatedAt = userenvvarDescCreatedAt.Default.(func() time.Time)
	// userenvvarDescUpdatedAt is the schema descriptor for updated_at field.
	userenvvarDescUpdatedAt := userenvvarFields[5].Descriptor()
	// userenvvar.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userenvvar.DefaultUpdatedAt = userenvvarDescUpdatedAt.Default.(func() time.Time)
	// userenvvar.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userenvvar.UpdateDefaultUpdatedAt = userenvvarDescUpdatedAt.UpdateDefault.(func() time.Time)
	usermcpconfigFields := schema.UserMcpConfig{}.Fields()
	_ = usermcpconfigFields
	// usermcpconfigDescEnabled is the schema descriptor for enabled field.
	usermcpconfigDescEnabled := usermcpconfigFields[4].Descriptor()
	// usermcpconfig.DefaultEnabled holds the default value on creation for the enabled field.
	usermcpconfig.DefaultEnabled = usermcpconfigDescEnabled.Default.(bool)
	// usermcpconfigDescCreatedAt is the schema descriptor for created_at field.
	usermcpconfigDescCreatedAt := usermcpconfigFields[5].Descriptor()
	// usermcpconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	usermcpconfig.DefaultCreatedAt = usermcpconfigDescCreatedAt.Default.(func() time.Time)
	// usermcpconfigDescUpdatedAt is the schema descriptor for updated_at field.
	usermcpconfigDescUpdatedAt := usermcpconfigFields[6].Descriptor()
	// usermcpconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usermcpconfig.DefaultUpdatedAt = usermcpconfigDescUpdatedAt.Default.(func() time.Time)
	// usermcpconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usermcpconfig.UpdateDefaultUpdatedAt = usermcpconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	userskillinstallFields := schema.UserSkillInstall{}.Fields()
	_ = userskillinstallFields
	// userskillinstallDescEnabled is the schema descriptor for enabled field.
	userskillinstallDescEnabled := userskillinstallFields[3].Descriptor()
	// userskillinstall.DefaultEnabled holds the default value on creation for the enabled field.
	userskillinstall.DefaultEnabled = userskillinstallDescEnabled.Default.(bool)
	// userskillinstallDescCreatedAt is the schema descriptor for created_at field.
	userskillinstallDescCreatedAt := userskillinstallFields[4].Descriptor()
	// userskillinstall.DefaultCreatedAt holds the default value on creation for the created_at field.
	userskillinstall.DefaultCreatedAt = userskillinstallDescCreatedAt.Default.(func() time.Time)
}

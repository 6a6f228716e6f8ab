// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentMessage is the predicate function for agentmessage builders.
type AgentMessage func(*sql.Selector)

// AgentRun is the predicate function for agentrun builders.
type AgentRun func(*sql.Selector)

// AgentSession is the predicate function for agentsession builders.
type AgentSession func(*sql.Selector)

// McpPreset is the predicate function for mcppreset builders.
type McpPreset func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// SkillPreset is the predicate function for skillpreset builders.
type SkillPreset func(*sql.Selector)

// ToolExecution is the predicate function for toolexecution builders.
type ToolExecution func(*sql.Selector)

// UsageLog is the predicate function for usagelog builders.
type UsageLog func(*sql.Selector)

// UserEnvVar is the predicate function for userenvvar builders.
type UserEnvVar func(*sql.Selector)

// UserMcpConfig is the predicate function for usermcpconfig builders.
type UserMcpConfig func(*sql.Selector)

// UserSkillInstall is the predicate function for userskillinstall builders.
type UserSkillInstall func(*sql.Selector)

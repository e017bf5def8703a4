// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the configuration schema.
const DefinedFieldsCount = 6

// Client - these keys configure how the GraphQL client is constructed by NewFromConfig.
const (
	ClientToken     = "client.token"
	ClientTimeout   = "client.timeout"
	ClientUserAgent = "client.user_agent"
)

// Logging Infrastructure - these keys manage the library's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

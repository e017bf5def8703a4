// Package constant defines immutable library-level identifiers and defaults.
package constant

const (
	// Anilist is the canonical library identifier used for filesystem paths and environment prefixes.
	Anilist = "anilist"

	// Version is the current library semantic version string.
	Version = "0.1.0"

	// UserAgent is the default HTTP User-Agent sent with every GraphQL request.
	UserAgent = "anilist-go/" + Version

	// Endpoint is the AniList GraphQL endpoint. It is not configurable.
	Endpoint = "https://graphql.anilist.co"
)

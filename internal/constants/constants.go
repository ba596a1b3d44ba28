package constants

// Centralized constants for env keys, routes, JSON keys and log fields.
const (
	// Environment variable keys
	EnvConfigPath = "MATCHSIM_CONFIG"
	EnvDBPath     = "MATCHSIM_DB"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Routes used by the backend router
const (
	RouteAPIPrefix   = "/api"
	RouteMatches     = "/matches"
	RouteMatchByID   = "/matches/:matchID"
	RouteMatchEvents = "/matches/:matchID/events"
	RouteMatchStats  = "/matches/:matchID/stats"
	RouteVersion     = "/version"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrInvalidMatchID      = "Invalid match ID"
	ErrMatchNotFound       = "Match not found"
	ErrMatchAlreadyExists  = "Match already exists"
	ErrFailedFetchMatches  = "Failed to fetch matches"
	ErrFailedFetchEvents   = "Failed to fetch events"
	ErrFailedFetchStats    = "Failed to fetch stats"
	ErrFailedSimulateMatch = "Failed to simulate match"
	ErrRosterInvalid       = "Roster is invalid"
)

// Logging field names
const (
	LogFieldMatchID  = "match_id"
	LogFieldHomeTeam = "home_team"
	LogFieldAwayTeam = "away_team"
	LogFieldTicks    = "ticks"
	LogFieldAddr     = "addr"
	LogFieldTag      = "tag"
)

package constants

// Session / context keys
const (
	SessionCookieName  = "interview_session"
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// Password rules
const (
	MinPasswordLength = 8
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Question drawing
const (
	DefaultRandomQuestionCount = 3
)

// Scoring
const (
	MinScore = 0
	MaxScore = 5
)

// Resume uploads
const (
	MaxResumeSizeBytes = 10 << 20 // 10MB
)

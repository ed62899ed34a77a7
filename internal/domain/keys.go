package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)

// Roles carried in the access token.
const (
	RoleCandidate   = "candidate"
	RoleInterviewer = "interviewer"
	RoleClient      = "client"
	RoleAdmin       = "admin"
)

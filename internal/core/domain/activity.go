package domain

import "time"

// ActivityAction identifies an account event worth keeping.
type ActivityAction string

const (
	ActionSignup       ActivityAction = "signup"
	ActionSignin       ActivityAction = "signin"
	ActionSigninFailed ActivityAction = "signin_failed"
	ActionLogout       ActivityAction = "logout"
	ActionJobPosted    ActivityAction = "job_posted"
	ActionApplied      ActivityAction = "application_submitted"
)

// ActivityEntry is one row of the account activity log.
type ActivityEntry struct {
	UserID      uint64 // zero when the actor is unknown (failed signin)
	Action      ActivityAction
	Description string
	IPAddress   string
	Timestamp   time.Time
}

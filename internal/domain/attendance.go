package domain

import "clubmanager/auth/users"

// Attendance carries the two independent flags of a (user, event) pair:
// Confirmed is the player's stated intent, Present is the coach's record
// of actual attendance. Neither implies the other.
type Attendance struct {
	UserID    int64
	Event     EventRef
	Confirmed bool
	Present   bool
}

// AttendeeStatus is one row of an event roster: every player appears,
// with both flags false when no ledger record exists yet.
type AttendeeStatus struct {
	Player    users.User
	Confirmed bool
	Present   bool
}

type Evaluation struct {
	MatchID  int64
	PlayerID int64
	CoachID  int64
	Rating   float64
	Comment  string
}

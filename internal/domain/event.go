package domain

// DateLayout is the storage and form format of every event date. Stored
// as text so lexical ordering matches chronological ordering.
const DateLayout = "2006-01-02T15:04"

type EventKind string

const (
	EventMatch    EventKind = "match"
	EventTraining EventKind = "training"
)

// EventRef identifies a single schedulable event of either kind.
type EventRef struct {
	Kind EventKind
	ID   int64
}

type Match struct {
	ID       int64
	Date     string
	Opponent string
	Location string
	// Scores stay nil until the match is played; an explicit nil write
	// clears them again.
	HomeScore *int32
	AwayScore *int32
	TeamID    int64
}

func (m Match) Ref() EventRef {
	return EventRef{Kind: EventMatch, ID: m.ID}
}

type Training struct {
	ID          int64
	Date        string
	Location    string
	Description string
	TeamID      int64
}

func (t Training) Ref() EventRef {
	return EventRef{Kind: EventTraining, ID: t.ID}
}

// Event is the kind-agnostic projection used by dashboards.
type Event struct {
	Ref      EventRef
	Date     string
	Location string
	Title    string
}

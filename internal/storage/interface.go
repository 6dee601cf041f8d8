package storage

import (
	"context"

	"clubmanager/auth/users"
	"clubmanager/internal/domain"
)

// Missing rows map to sql.ErrNoRows across every storage interface.

type UserStorage interface {
	ListUsers(ctx context.Context) ([]users.User, error)
	ListPlayers(ctx context.Context) ([]users.User, error)
	GetUser(ctx context.Context, id int64) (users.User, error)
	GetPlayer(ctx context.Context, id int64) (users.User, error)
	CreateUser(ctx context.Context, user users.User, passwordHash string) (users.User, error)
	UpdateUser(ctx context.Context, user users.User) error
	UpdateProfile(ctx context.Context, user users.User) error
	DeleteUser(ctx context.Context, id int64) error
}

type MatchStorage interface {
	ListMatches(ctx context.Context) ([]domain.Match, error)
	GetMatch(ctx context.Context, id int64) (domain.Match, error)
	CreateMatch(ctx context.Context, match domain.Match) (domain.Match, error)
	UpdateMatch(ctx context.Context, match domain.Match) error
	// UpdateScore writes both scores as given; nil clears a stored score.
	UpdateScore(ctx context.Context, id int64, home *int32, away *int32) error
	DeleteMatch(ctx context.Context, id int64) error
}

type TrainingStorage interface {
	ListTrainings(ctx context.Context) ([]domain.Training, error)
	GetTraining(ctx context.Context, id int64) (domain.Training, error)
	CreateTraining(ctx context.Context, training domain.Training) (domain.Training, error)
	UpdateTraining(ctx context.Context, training domain.Training) error
	DeleteTraining(ctx context.Context, id int64) error
}

type AttendanceStorage interface {
	GetAttendance(ctx context.Context, userID int64, event domain.EventRef) (domain.Attendance, error)
	SetConfirmation(ctx context.Context, userID int64, event domain.EventRef, value bool) error
	SetPresence(ctx context.Context, userID int64, event domain.EventRef, value bool) error
	// ToggleConfirmation flips the flag in a single conditional update and
	// returns the new value. Concurrent toggles serialize instead of
	// losing updates.
	ToggleConfirmation(ctx context.Context, userID int64, event domain.EventRef) (bool, error)
	ListAttendees(ctx context.Context, event domain.EventRef) ([]domain.AttendeeStatus, error)
}

type EvaluationStorage interface {
	UpsertEvaluation(ctx context.Context, eval domain.Evaluation) error
	GetEvaluation(ctx context.Context, matchID int64, playerID int64) (domain.Evaluation, error)
	ListMatchEvaluations(ctx context.Context, matchID int64) ([]domain.Evaluation, error)
}

type ItemStorage interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	CreateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	// TotalPrice sums every item's price; an empty table totals 0.
	TotalPrice(ctx context.Context) (float64, error)
}

type StatsStorage interface {
	CountConfirmed(ctx context.Context, userID int64, kind domain.EventKind) (int64, error)
	CountEvents(ctx context.Context, kind domain.EventKind) (int64, error)
}

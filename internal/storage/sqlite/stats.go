package sqlite

import (
	"context"

	"clubmanager/gen/table"
	"clubmanager/internal/domain"

	"github.com/go-jet/jet/v2/sqlite"
)

func (s *Storage) CountConfirmed(ctx context.Context, userID int64, kind domain.EventKind) (int64, error) {
	eventPresent := table.Attendance.MatchID.IS_NOT_NULL()
	if kind == domain.EventTraining {
		eventPresent = table.Attendance.TrainingID.IS_NOT_NULL()
	}

	var dest struct {
		Count int64
	}
	err := table.Attendance.
		SELECT(sqlite.COUNT(table.Attendance.ID).AS("count")).
		FROM(table.Attendance).
		WHERE(table.Attendance.UserID.EQ(sqlite.Int(userID)).
			AND(eventPresent).
			AND(table.Attendance.Confirmed.IS_TRUE())).
		QueryContext(ctx, s.db, &dest)
	if err != nil {
		return 0, err
	}
	return dest.Count, nil
}

func (s *Storage) CountEvents(ctx context.Context, kind domain.EventKind) (int64, error) {
	var dest struct {
		Count int64
	}
	var err error
	if kind == domain.EventMatch {
		err = table.Matches.
			SELECT(sqlite.COUNT(table.Matches.ID).AS("count")).
			FROM(table.Matches).
			QueryContext(ctx, s.db, &dest)
	} else {
		err = table.Trainings.
			SELECT(sqlite.COUNT(table.Trainings.ID).AS("count")).
			FROM(table.Trainings).
			QueryContext(ctx, s.db, &dest)
	}
	if err != nil {
		return 0, err
	}
	return dest.Count, nil
}

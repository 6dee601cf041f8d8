package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"clubmanager/auth/users"
	"clubmanager/gen/model"
	"clubmanager/gen/table"
	"clubmanager/internal/domain"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
)

func attendanceEventFilter(event domain.EventRef) sqlite.BoolExpression {
	if event.Kind == domain.EventMatch {
		return table.Attendance.MatchID.EQ(sqlite.Int(event.ID))
	}
	return table.Attendance.TrainingID.EQ(sqlite.Int(event.ID))
}

func (s *Storage) GetAttendance(ctx context.Context, userID int64, event domain.EventRef) (domain.Attendance, error) {
	var dbAtt model.Attendance
	err := table.Attendance.
		SELECT(table.Attendance.AllColumns).
		FROM(table.Attendance).
		WHERE(table.Attendance.UserID.EQ(sqlite.Int(userID)).
			AND(attendanceEventFilter(event))).
		QueryContext(ctx, s.db, &dbAtt)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Attendance{}, sql.ErrNoRows
		}
		return domain.Attendance{}, err
	}
	return convertAttendanceToDomain(dbAtt), nil
}

// SetConfirmation upserts the row and writes only the confirmed column,
// so a presence mark recorded by the coach is never disturbed.
func (s *Storage) SetConfirmation(ctx context.Context, userID int64, event domain.EventRef, value bool) error {
	return s.upsertFlag(ctx, event, domain.Attendance{
		UserID:    userID,
		Event:     event,
		Confirmed: value,
	}, true)
}

// SetPresence is the symmetric upsert touching only the present column.
func (s *Storage) SetPresence(ctx context.Context, userID int64, event domain.EventRef, value bool) error {
	return s.upsertFlag(ctx, event, domain.Attendance{
		UserID:  userID,
		Event:   event,
		Present: value,
	}, false)
}

func (s *Storage) upsertFlag(ctx context.Context, event domain.EventRef, att domain.Attendance, confirmed bool) error {
	stmt := table.Attendance.
		INSERT(
			table.Attendance.UserID,
			table.Attendance.MatchID,
			table.Attendance.TrainingID,
			table.Attendance.Present,
			table.Attendance.Confirmed,
		).
		MODEL(convertAttendanceFromDomain(att))

	column, excluded := table.Attendance.Present, table.Attendance.EXCLUDED.Present
	if confirmed {
		column, excluded = table.Attendance.Confirmed, table.Attendance.EXCLUDED.Confirmed
	}
	if event.Kind == domain.EventMatch {
		stmt = stmt.
			ON_CONFLICT(table.Attendance.UserID, table.Attendance.MatchID).
			DO_UPDATE(sqlite.SET(column.SET(excluded)))
	} else {
		stmt = stmt.
			ON_CONFLICT(table.Attendance.UserID, table.Attendance.TrainingID).
			DO_UPDATE(sqlite.SET(column.SET(excluded)))
	}
	_, err := stmt.ExecContext(ctx, s.db)
	return err
}

// ToggleConfirmation flips the confirmed flag with a conditional update
// instead of read-then-write, so two concurrent toggles cannot both
// observe the same starting value and lose one of the flips. The lazily
// created row starts at false, making the first toggle land on true.
func (s *Storage) ToggleConfirmation(ctx context.Context, userID int64, event domain.EventRef) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer rollback(tx, s.log)

	insert := table.Attendance.
		INSERT(
			table.Attendance.UserID,
			table.Attendance.MatchID,
			table.Attendance.TrainingID,
			table.Attendance.Present,
			table.Attendance.Confirmed,
		).
		MODEL(convertAttendanceFromDomain(domain.Attendance{UserID: userID, Event: event}))
	if event.Kind == domain.EventMatch {
		insert = insert.ON_CONFLICT(table.Attendance.UserID, table.Attendance.MatchID).DO_NOTHING()
	} else {
		insert = insert.ON_CONFLICT(table.Attendance.UserID, table.Attendance.TrainingID).DO_NOTHING()
	}
	if _, err := insert.ExecContext(ctx, tx); err != nil {
		return false, err
	}

	var updated model.Attendance
	err = table.Attendance.
		UPDATE(table.Attendance.Confirmed).
		SET(sqlite.NOT(table.Attendance.Confirmed)).
		WHERE(table.Attendance.UserID.EQ(sqlite.Int(userID)).
			AND(attendanceEventFilter(event))).
		RETURNING(table.Attendance.AllColumns).
		QueryContext(ctx, tx, &updated)
	if err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	return updated.Confirmed, nil
}

// ListAttendees returns every player left-joined against the ledger for
// one event; players without a row show both flags false. Ordered by last
// name, then first name.
func (s *Storage) ListAttendees(ctx context.Context, event domain.EventRef) ([]domain.AttendeeStatus, error) {
	joinOn := table.Attendance.UserID.EQ(table.Users.ID).
		AND(attendanceEventFilter(event))

	var rows []struct {
		model.Users
		Attendance *model.Attendance
	}
	err := table.Users.
		SELECT(
			userColumns,
			table.Attendance.AllColumns,
		).
		FROM(table.Users.LEFT_JOIN(table.Attendance, joinOn)).
		WHERE(table.Users.Role.EQ(sqlite.String(users.RolePlayer.String()))).
		ORDER_BY(table.Users.LastName.ASC(), table.Users.FirstName.ASC()).
		QueryContext(ctx, s.db, &rows)
	if err != nil {
		return nil, err
	}

	attendees := make([]domain.AttendeeStatus, 0, len(rows))
	for _, row := range rows {
		player, err := convertUserToDomain(row.Users)
		if err != nil {
			return nil, err
		}
		status := domain.AttendeeStatus{Player: player}
		if row.Attendance != nil {
			status.Confirmed = row.Attendance.Confirmed
			status.Present = row.Attendance.Present
		}
		attendees = append(attendees, status)
	}
	return attendees, nil
}

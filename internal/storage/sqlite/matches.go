package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"clubmanager/gen/model"
	"clubmanager/gen/table"
	"clubmanager/internal/domain"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
)

func (s *Storage) ListMatches(ctx context.Context) ([]domain.Match, error) {
	var dbMatches []model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		ORDER_BY(table.Matches.Date.DESC()).
		QueryContext(ctx, s.db, &dbMatches)
	if err != nil {
		return nil, err
	}
	matches := make([]domain.Match, 0, len(dbMatches))
	for _, m := range dbMatches {
		matches = append(matches, convertMatchToDomain(m))
	}
	return matches, nil
}

func (s *Storage) GetMatch(ctx context.Context, id int64) (domain.Match, error) {
	var dbMatch model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		WHERE(table.Matches.ID.EQ(sqlite.Int(id))).
		QueryContext(ctx, s.db, &dbMatch)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Match{}, sql.ErrNoRows
		}
		return domain.Match{}, err
	}
	return convertMatchToDomain(dbMatch), nil
}

func (s *Storage) CreateMatch(ctx context.Context, match domain.Match) (domain.Match, error) {
	var inserted model.Matches
	err := table.Matches.
		INSERT(table.Matches.MutableColumns).
		MODEL(convertMatchFromDomain(match)).
		RETURNING(table.Matches.AllColumns).
		QueryContext(ctx, s.db, &inserted)
	if err != nil {
		return domain.Match{}, err
	}
	return convertMatchToDomain(inserted), nil
}

func (s *Storage) UpdateMatch(ctx context.Context, match domain.Match) error {
	_, err := table.Matches.
		UPDATE(
			table.Matches.Date,
			table.Matches.Opponent,
			table.Matches.Location,
		).
		MODEL(convertMatchFromDomain(match)).
		WHERE(table.Matches.ID.EQ(sqlite.Int(match.ID))).
		ExecContext(ctx, s.db)
	return err
}

// UpdateScore always writes both columns. A nil value stores NULL, so
// clearing a score is an explicit act, distinct from leaving it alone.
func (s *Storage) UpdateScore(ctx context.Context, id int64, home *int32, away *int32) error {
	_, err := table.Matches.
		UPDATE(table.Matches.HomeScore, table.Matches.AwayScore).
		MODEL(model.Matches{HomeScore: home, AwayScore: away}).
		WHERE(table.Matches.ID.EQ(sqlite.Int(id))).
		ExecContext(ctx, s.db)
	return err
}

// DeleteMatch removes the match together with its attendance and
// evaluation rows. Single transaction, no orphans on partial failure.
func (s *Storage) DeleteMatch(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollback(tx, s.log)

	_, err = table.Attendance.
		DELETE().
		WHERE(table.Attendance.MatchID.EQ(sqlite.Int(id))).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	_, err = table.Evaluations.
		DELETE().
		WHERE(table.Evaluations.MatchID.EQ(sqlite.Int(id))).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	_, err = table.Matches.
		DELETE().
		WHERE(table.Matches.ID.EQ(sqlite.Int(id))).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	return tx.Commit()
}

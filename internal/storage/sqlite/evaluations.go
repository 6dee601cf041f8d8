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

// UpsertEvaluation keeps at most one row per (match, player). A repeated
// save overwrites rating, comment and the authoring coach wholesale.
func (s *Storage) UpsertEvaluation(ctx context.Context, eval domain.Evaluation) error {
	_, err := table.Evaluations.
		INSERT(table.Evaluations.MutableColumns).
		MODEL(convertEvaluationFromDomain(eval)).
		ON_CONFLICT(table.Evaluations.MatchID, table.Evaluations.PlayerID).
		DO_UPDATE(sqlite.SET(
			table.Evaluations.CoachID.SET(table.Evaluations.EXCLUDED.CoachID),
			table.Evaluations.Rating.SET(table.Evaluations.EXCLUDED.Rating),
			table.Evaluations.Comment.SET(table.Evaluations.EXCLUDED.Comment),
		)).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) GetEvaluation(ctx context.Context, matchID int64, playerID int64) (domain.Evaluation, error) {
	var dbEval model.Evaluations
	err := table.Evaluations.
		SELECT(table.Evaluations.AllColumns).
		FROM(table.Evaluations).
		WHERE(table.Evaluations.MatchID.EQ(sqlite.Int(matchID)).
			AND(table.Evaluations.PlayerID.EQ(sqlite.Int(playerID)))).
		QueryContext(ctx, s.db, &dbEval)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Evaluation{}, sql.ErrNoRows
		}
		return domain.Evaluation{}, err
	}
	return convertEvaluationToDomain(dbEval), nil
}

func (s *Storage) ListMatchEvaluations(ctx context.Context, matchID int64) ([]domain.Evaluation, error) {
	var dbEvals []model.Evaluations
	err := table.Evaluations.
		SELECT(table.Evaluations.AllColumns).
		FROM(table.Evaluations).
		WHERE(table.Evaluations.MatchID.EQ(sqlite.Int(matchID))).
		QueryContext(ctx, s.db, &dbEvals)
	if err != nil {
		return nil, err
	}
	evals := make([]domain.Evaluation, 0, len(dbEvals))
	for _, e := range dbEvals {
		evals = append(evals, convertEvaluationToDomain(e))
	}
	return evals, nil
}

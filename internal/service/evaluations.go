package service

import (
	"context"
	"database/sql"
	"errors"

	"clubmanager/internal/domain"
	"clubmanager/internal/storage"

	"github.com/sirupsen/logrus"
)

type EvaluationService struct {
	ledger storage.EvaluationStorage
	log    *logrus.Entry
}

func NewEvaluationService(ledger storage.EvaluationStorage, l *logrus.Logger) *EvaluationService {
	return &EvaluationService{
		ledger: ledger,
		log:    l.WithField("from", "evaluation-service"),
	}
}

// Save upserts a coach's evaluation of a player's match. The latest save
// wins wholesale, including the coach attribution.
func (s *EvaluationService) Save(ctx context.Context, matchID, playerID, coachID int64, rating float64, comment string) error {
	if err := invalid(validateRating(rating)); err != nil {
		return err
	}
	return s.ledger.UpsertEvaluation(ctx, domain.Evaluation{
		MatchID:  matchID,
		PlayerID: playerID,
		CoachID:  coachID,
		Rating:   rating,
		Comment:  comment,
	})
}

// Get returns the evaluation and whether one exists.
func (s *EvaluationService) Get(ctx context.Context, matchID, playerID int64) (domain.Evaluation, bool, error) {
	eval, err := s.ledger.GetEvaluation(ctx, matchID, playerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Evaluation{}, false, nil
		}
		return domain.Evaluation{}, false, err
	}
	return eval, true, nil
}

func (s *EvaluationService) ListByMatch(ctx context.Context, matchID int64) ([]domain.Evaluation, error) {
	return s.ledger.ListMatchEvaluations(ctx, matchID)
}

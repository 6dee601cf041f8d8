package service

import (
	"context"
	"strings"

	"clubmanager/internal/domain"
	"clubmanager/internal/notify"
	"clubmanager/internal/storage"

	"github.com/sirupsen/logrus"
)

// defaultTeamID is the club's own team; the schema seeds it. Opponents
// are free text on the match itself.
const defaultTeamID = 1

type MatchService struct {
	matches  storage.MatchStorage
	notifier notify.Notifier
	log      *logrus.Entry
}

func NewMatchService(matches storage.MatchStorage, notifier notify.Notifier, l *logrus.Logger) *MatchService {
	return &MatchService{
		matches:  matches,
		notifier: notifier,
		log:      l.WithField("from", "match-service"),
	}
}

func (s *MatchService) List(ctx context.Context) ([]domain.Match, error) {
	return s.matches.ListMatches(ctx)
}

func (s *MatchService) Get(ctx context.Context, id int64) (domain.Match, error) {
	return s.matches.GetMatch(ctx, id)
}

func (s *MatchService) Create(ctx context.Context, date, opponent, location string) (domain.Match, error) {
	var opponentErr error
	if strings.TrimSpace(opponent) == "" {
		opponentErr = errOpponentRequired
	}
	if err := invalid(validateDate(date), opponentErr, validateLocation(location)); err != nil {
		return domain.Match{}, err
	}
	match, err := s.matches.CreateMatch(ctx, domain.Match{
		Date:     date,
		Opponent: opponent,
		Location: location,
		TeamID:   defaultTeamID,
	})
	if err != nil {
		return domain.Match{}, err
	}
	s.log.WithField("match_id", match.ID).Info("match created")
	s.notifier.EventCreated(domain.EventMatch, match.Date+" vs "+match.Opponent+", "+match.Location)
	return match, nil
}

func (s *MatchService) Update(ctx context.Context, id int64, date, opponent, location string) error {
	var opponentErr error
	if strings.TrimSpace(opponent) == "" {
		opponentErr = errOpponentRequired
	}
	if err := invalid(validateDate(date), opponentErr, validateLocation(location)); err != nil {
		return err
	}
	return s.matches.UpdateMatch(ctx, domain.Match{
		ID:       id,
		Date:     date,
		Opponent: opponent,
		Location: location,
	})
}

// SetScore records the result. Passing nil for both clears a previously
// stored result, which is different from not submitting the form at all.
func (s *MatchService) SetScore(ctx context.Context, id int64, home *int32, away *int32) error {
	if err := invalid(validateScore(home), validateScore(away)); err != nil {
		return err
	}
	return s.matches.UpdateScore(ctx, id, home, away)
}

func (s *MatchService) Delete(ctx context.Context, id int64) error {
	if err := s.matches.DeleteMatch(ctx, id); err != nil {
		return err
	}
	s.log.WithField("match_id", id).Info("match deleted")
	return nil
}

package service

import (
	"context"
	"math"

	"clubmanager/internal/domain"
	"clubmanager/internal/storage"
)

type StatsService struct {
	stats storage.StatsStorage
}

func NewStatsService(stats storage.StatsStorage) *StatsService {
	return &StatsService{stats: stats}
}

// PlayerStats derives attendance percentages from confirmed ledger rows.
func (s *StatsService) PlayerStats(ctx context.Context, playerID int64) (domain.PlayerStats, error) {
	matchesAttended, err := s.stats.CountConfirmed(ctx, playerID, domain.EventMatch)
	if err != nil {
		return domain.PlayerStats{}, err
	}
	trainingsAttended, err := s.stats.CountConfirmed(ctx, playerID, domain.EventTraining)
	if err != nil {
		return domain.PlayerStats{}, err
	}
	totalMatches, err := s.stats.CountEvents(ctx, domain.EventMatch)
	if err != nil {
		return domain.PlayerStats{}, err
	}
	totalTrainings, err := s.stats.CountEvents(ctx, domain.EventTraining)
	if err != nil {
		return domain.PlayerStats{}, err
	}
	return domain.PlayerStats{
		MatchesAttended:     matchesAttended,
		TrainingsAttended:   trainingsAttended,
		TotalMatches:        totalMatches,
		TotalTrainings:      totalTrainings,
		MatchesPercentage:   percentage(matchesAttended, totalMatches),
		TrainingsPercentage: percentage(trainingsAttended, totalTrainings),
	}, nil
}

// percentage rounds to the nearest whole percent; an empty schedule is 0,
// not a division error.
func percentage(part, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

package web

import (
	"sort"
	"time"

	"clubmanager/auth/users"
	"clubmanager/internal/domain"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleDashboard(ctx *fiber.Ctx) error {
	user := currentUser(ctx)
	if user.IsZero() {
		return ctx.Render("landing", newData("FK Lokomotíva"), "layouts/main")
	}

	matches, err := s.svc.Matches.List(ctx.Context())
	if err != nil {
		return err
	}
	trainings, err := s.svc.Trainings.List(ctx.Context())
	if err != nil {
		return err
	}

	d := newData("Prehľad").WithUser(user).
		With("MatchCount", len(matches)).
		With("TrainingCount", len(trainings))

	switch user.Role {
	case users.RoleAdmin:
		players, err := s.svc.Players.List(ctx.Context())
		if err != nil {
			return err
		}
		recent := matches
		if len(recent) > 5 {
			recent = recent[:5]
		}
		d = d.With("PlayerCount", len(players)).With("RecentMatches", recent)
	case users.RoleCoach:
		players, err := s.svc.Players.List(ctx.Context())
		if err != nil {
			return err
		}
		upcoming := upcomingEvents(matches, trainings)
		if len(upcoming) > 0 {
			d = d.With("NextEvent", upcoming[0])
		}
		d = d.With("PlayerCount", len(players)).With("Upcoming", upcoming)
	case users.RolePlayer:
		d = d.With("Upcoming", upcomingEvents(matches, trainings))
	}
	return ctx.Render("dashboard", d, "layouts/main")
}

// upcomingEvents merges both kinds into one schedule, soonest first. The
// date format sorts lexically, so string comparison is enough.
func upcomingEvents(matches []domain.Match, trainings []domain.Training) []domain.Event {
	now := time.Now().Format(domain.DateLayout)
	var events []domain.Event
	for _, m := range matches {
		if m.Date < now {
			continue
		}
		events = append(events, domain.Event{
			Ref:      m.Ref(),
			Date:     m.Date,
			Location: m.Location,
			Title:    "Zápas vs " + m.Opponent,
		})
	}
	for _, t := range trainings {
		if t.Date < now {
			continue
		}
		events = append(events, domain.Event{
			Ref:      t.Ref(),
			Date:     t.Date,
			Location: t.Location,
			Title:    "Tréning",
		})
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
	return events
}

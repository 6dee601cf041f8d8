package web

import (
	"database/sql"
	"errors"

	"clubmanager/auth/users"
	"clubmanager/internal/domain"
	"clubmanager/internal/service"
	"clubmanager/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleMatches(ctx *fiber.Ctx) error {
	user := currentUser(ctx)
	matches, err := s.svc.Matches.List(ctx.Context())
	if err != nil {
		return err
	}
	d := newData("Zápasy").WithUser(user).With("Matches", matches)
	if user.Role == users.RolePlayer {
		confirmed := make(map[int64]bool, len(matches))
		for _, m := range matches {
			c, err := s.svc.Attendance.Confirmation(ctx.Context(), user.ID, m.Ref())
			if err != nil {
				return err
			}
			confirmed[m.ID] = c
		}
		d = d.With("Confirmed", confirmed)
	}
	return ctx.Render("matches", d, "layouts/main")
}

func (s *Server) handleNewMatchGet(ctx *fiber.Ctx) error {
	return ctx.Render("matchForm", newData("Nový zápas").
		WithUser(currentUser(ctx)).
		With("Action", webpath.NewMatch), "layouts/main")
}

func (s *Server) handleNewMatchPost(ctx *fiber.Ctx) error {
	form := parseEventForm(ctx)
	_, err := s.svc.Matches.Create(ctx.Context(), form.date, form.opponent, form.location)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return ctx.Status(fiber.StatusBadRequest).Render("matchForm", newData("Nový zápas").
				WithUser(currentUser(ctx)).
				WithErrors(err).
				With("Action", webpath.NewMatch), "layouts/main")
		}
		return err
	}
	return ctx.Redirect(webpath.Matches)
}

func (s *Server) handleEditMatchGet(ctx *fiber.Ctx) error {
	match, ok, err := s.loadMatch(ctx)
	if err != nil || !ok {
		return err
	}
	return ctx.Render("matchForm", newData("Upraviť zápas").
		WithUser(currentUser(ctx)).
		With("Match", match), "layouts/main")
}

func (s *Server) handleEditMatchPost(ctx *fiber.Ctx) error {
	match, ok, err := s.loadMatch(ctx)
	if err != nil || !ok {
		return err
	}
	form := parseEventForm(ctx)
	err = s.svc.Matches.Update(ctx.Context(), match.ID, form.date, form.opponent, form.location)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return ctx.Status(fiber.StatusBadRequest).Render("matchForm", newData("Upraviť zápas").
				WithUser(currentUser(ctx)).
				WithErrors(err).
				With("Match", match), "layouts/main")
		}
		return err
	}
	return ctx.Redirect(webpath.Matches)
}

// handleMatchScore records (or clears) the result. Empty fields mean no
// result, which is not the same as 0:0.
func (s *Server) handleMatchScore(ctx *fiber.Ctx) error {
	match, ok, err := s.loadMatch(ctx)
	if err != nil || !ok {
		return err
	}
	form, err := parseScoreForm(ctx)
	if err == nil {
		err = s.svc.Matches.SetScore(ctx.Context(), match.ID, form.home, form.away)
	}
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) || errors.Is(err, errScoreNotNumber) {
			return ctx.Status(fiber.StatusBadRequest).Render("matchForm", newData("Upraviť zápas").
				WithUser(currentUser(ctx)).
				WithErrors(err).
				With("Match", match), "layouts/main")
		}
		return err
	}
	return ctx.Redirect(webpath.Matches)
}

func (s *Server) handleDeleteMatch(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	if err := s.svc.Matches.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.Redirect(webpath.Matches)
}

func (s *Server) handleMatchAttend(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	user := currentUser(ctx)
	event := domain.EventRef{Kind: domain.EventMatch, ID: id}
	if _, err := s.svc.Attendance.Toggle(ctx.Context(), user.ID, event); err != nil {
		return err
	}
	return ctx.Redirect(webpath.Matches)
}

func (s *Server) handleMatchAttendance(ctx *fiber.Ctx) error {
	match, ok, err := s.loadMatch(ctx)
	if err != nil || !ok {
		return err
	}
	attendees, err := s.svc.Attendance.Attendees(ctx.Context(), match.Ref())
	if err != nil {
		return err
	}
	return ctx.Render("attendance", newData("Dochádzka · zápas").
		WithUser(currentUser(ctx)).
		With("Match", match).
		With("Attendees", attendees), "layouts/main")
}

func (s *Server) handleMatchPresence(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	playerID, err := paramID(ctx, "playerID")
	if err != nil {
		return err
	}
	event := domain.EventRef{Kind: domain.EventMatch, ID: id}
	present := ctx.FormValue("present") == "true"
	if err := s.svc.Attendance.SetPresence(ctx.Context(), playerID, event, present); err != nil {
		return err
	}
	return ctx.Redirect(webpath.Matches + "/" + ctx.Params("id") + "/attendance")
}

func (s *Server) handleMatchEvaluations(ctx *fiber.Ctx) error {
	match, ok, err := s.loadMatch(ctx)
	if err != nil || !ok {
		return err
	}
	return s.renderEvaluations(ctx, match, nil)
}

func (s *Server) handleEvaluatePlayer(ctx *fiber.Ctx) error {
	match, ok, err := s.loadMatch(ctx)
	if err != nil || !ok {
		return err
	}
	playerID, err := paramID(ctx, "playerID")
	if err != nil {
		return err
	}
	form, err := parseEvaluationForm(ctx)
	if err == nil {
		coach := currentUser(ctx)
		err = s.svc.Evaluations.Save(ctx.Context(), match.ID, playerID, coach.ID, form.rating, form.comment)
	}
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) || errors.Is(err, errRatingNotNumber) {
			return s.renderEvaluations(ctx, match, err)
		}
		return err
	}
	return ctx.Redirect(webpath.Matches + "/" + ctx.Params("id") + "/evaluations")
}

func (s *Server) renderEvaluations(ctx *fiber.Ctx, match domain.Match, formErr error) error {
	attendees, err := s.svc.Attendance.Attendees(ctx.Context(), match.Ref())
	if err != nil {
		return err
	}
	evals, err := s.svc.Evaluations.ListByMatch(ctx.Context(), match.ID)
	if err != nil {
		return err
	}
	// Pointer values so templates can tell "no evaluation yet" from a
	// zero rating.
	byPlayer := make(map[int64]*domain.Evaluation, len(evals))
	for i := range evals {
		byPlayer[evals[i].PlayerID] = &evals[i]
	}
	d := newData("Hodnotenie · zápas").
		WithUser(currentUser(ctx)).
		With("Match", match).
		With("Attendees", attendees).
		With("Evaluations", byPlayer)
	if formErr != nil {
		return ctx.Status(fiber.StatusBadRequest).Render("evaluations", d.WithErrors(formErr), "layouts/main")
	}
	return ctx.Render("evaluations", d, "layouts/main")
}

// loadMatch resolves the :id param; a missing match redirects to the list
// instead of erroring.
func (s *Server) loadMatch(ctx *fiber.Ctx) (domain.Match, bool, error) {
	id, err := paramID(ctx, "id")
	if err != nil {
		return domain.Match{}, false, err
	}
	match, err := s.svc.Matches.Get(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Match{}, false, ctx.Redirect(webpath.Matches)
		}
		return domain.Match{}, false, err
	}
	return match, true, nil
}

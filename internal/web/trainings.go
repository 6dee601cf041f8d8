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

func (s *Server) handleTrainings(ctx *fiber.Ctx) error {
	user := currentUser(ctx)
	trainings, err := s.svc.Trainings.List(ctx.Context())
	if err != nil {
		return err
	}
	d := newData("Tréningy").WithUser(user).With("Trainings", trainings)
	if user.Role == users.RolePlayer {
		confirmed := make(map[int64]bool, len(trainings))
		for _, tr := range trainings {
			c, err := s.svc.Attendance.Confirmation(ctx.Context(), user.ID, tr.Ref())
			if err != nil {
				return err
			}
			confirmed[tr.ID] = c
		}
		d = d.With("Confirmed", confirmed)
	}
	return ctx.Render("trainings", d, "layouts/main")
}

func (s *Server) handleNewTrainingGet(ctx *fiber.Ctx) error {
	return ctx.Render("trainingForm", newData("Nový tréning").
		WithUser(currentUser(ctx)).
		With("Action", webpath.NewTraining), "layouts/main")
}

func (s *Server) handleNewTrainingPost(ctx *fiber.Ctx) error {
	form := parseEventForm(ctx)
	_, err := s.svc.Trainings.Create(ctx.Context(), form.date, form.location, form.description)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return ctx.Status(fiber.StatusBadRequest).Render("trainingForm", newData("Nový tréning").
				WithUser(currentUser(ctx)).
				WithErrors(err).
				With("Action", webpath.NewTraining), "layouts/main")
		}
		return err
	}
	return ctx.Redirect(webpath.Trainings)
}

func (s *Server) handleEditTrainingGet(ctx *fiber.Ctx) error {
	training, ok, err := s.loadTraining(ctx)
	if err != nil || !ok {
		return err
	}
	return ctx.Render("trainingForm", newData("Upraviť tréning").
		WithUser(currentUser(ctx)).
		With("Training", training), "layouts/main")
}

func (s *Server) handleEditTrainingPost(ctx *fiber.Ctx) error {
	training, ok, err := s.loadTraining(ctx)
	if err != nil || !ok {
		return err
	}
	form := parseEventForm(ctx)
	err = s.svc.Trainings.Update(ctx.Context(), training.ID, form.date, form.location, form.description)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return ctx.Status(fiber.StatusBadRequest).Render("trainingForm", newData("Upraviť tréning").
				WithUser(currentUser(ctx)).
				WithErrors(err).
				With("Training", training), "layouts/main")
		}
		return err
	}
	return ctx.Redirect(webpath.Trainings)
}

func (s *Server) handleDeleteTraining(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	if err := s.svc.Trainings.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.Redirect(webpath.Trainings)
}

func (s *Server) handleTrainingAttend(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	user := currentUser(ctx)
	event := domain.EventRef{Kind: domain.EventTraining, ID: id}
	if _, err := s.svc.Attendance.Toggle(ctx.Context(), user.ID, event); err != nil {
		return err
	}
	return ctx.Redirect(webpath.Trainings)
}

func (s *Server) handleTrainingAttendance(ctx *fiber.Ctx) error {
	training, ok, err := s.loadTraining(ctx)
	if err != nil || !ok {
		return err
	}
	attendees, err := s.svc.Attendance.Attendees(ctx.Context(), training.Ref())
	if err != nil {
		return err
	}
	return ctx.Render("attendance", newData("Dochádzka · tréning").
		WithUser(currentUser(ctx)).
		With("Training", training).
		With("Attendees", attendees), "layouts/main")
}

func (s *Server) handleTrainingPresence(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	playerID, err := paramID(ctx, "playerID")
	if err != nil {
		return err
	}
	event := domain.EventRef{Kind: domain.EventTraining, ID: id}
	present := ctx.FormValue("present") == "true"
	if err := s.svc.Attendance.SetPresence(ctx.Context(), playerID, event, present); err != nil {
		return err
	}
	return ctx.Redirect(webpath.Trainings + "/" + ctx.Params("id") + "/attendance")
}

func (s *Server) loadTraining(ctx *fiber.Ctx) (domain.Training, bool, error) {
	id, err := paramID(ctx, "id")
	if err != nil {
		return domain.Training{}, false, err
	}
	training, err := s.svc.Trainings.Get(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Training{}, false, ctx.Redirect(webpath.Trainings)
		}
		return domain.Training{}, false, err
	}
	return training, true, nil
}

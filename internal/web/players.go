package web

import (
	"database/sql"
	"errors"

	"clubmanager/auth/users"
	"clubmanager/internal/service"
	"clubmanager/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) handlePlayers(ctx *fiber.Ctx) error {
	players, err := s.svc.Players.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.Render("players", newData("Hráči").
		WithUser(currentUser(ctx)).
		With("Players", players), "layouts/main")
}

func (s *Server) handleNewPlayerGet(ctx *fiber.Ctx) error {
	return ctx.Render("playerForm", newData("Nový hráč").
		WithUser(currentUser(ctx)).
		With("Action", webpath.NewPlayer), "layouts/main")
}

func (s *Server) handleNewPlayerPost(ctx *fiber.Ctx) error {
	username := ctx.FormValue("username")
	profile := parseProfileForm(ctx)
	_, err := s.svc.Players.Create(ctx.Context(), username,
		profile.firstName, profile.lastName, profile.position, profile.birthDate)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return ctx.Status(fiber.StatusBadRequest).Render("playerForm", newData("Nový hráč").
				WithUser(currentUser(ctx)).
				WithErrors(err).
				With("Action", webpath.NewPlayer), "layouts/main")
		}
		return err
	}
	return ctx.Redirect(webpath.Players)
}

func (s *Server) handlePlayerCard(ctx *fiber.Ctx) error {
	player, ok, err := s.loadPlayer(ctx)
	if err != nil || !ok {
		return err
	}
	stats, err := s.svc.Stats.PlayerStats(ctx.Context(), player.ID)
	if err != nil {
		return err
	}
	return ctx.Render("playerCard", newData(player.FullName()).
		WithUser(currentUser(ctx)).
		With("Player", player).
		With("Stats", stats), "layouts/main")
}

func (s *Server) handleEditPlayerGet(ctx *fiber.Ctx) error {
	player, ok, err := s.loadPlayer(ctx)
	if err != nil || !ok {
		return err
	}
	return ctx.Render("playerForm", newData("Upraviť hráča").
		WithUser(currentUser(ctx)).
		With("Player", player), "layouts/main")
}

func (s *Server) handleEditPlayerPost(ctx *fiber.Ctx) error {
	player, ok, err := s.loadPlayer(ctx)
	if err != nil || !ok {
		return err
	}
	profile := parseProfileForm(ctx)
	err = s.svc.Players.UpdateProfile(ctx.Context(), player.ID,
		profile.firstName, profile.lastName, profile.position, profile.birthDate)
	if err != nil {
		return err
	}
	return ctx.Redirect(webpath.Players)
}

func (s *Server) handleDeletePlayer(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	if err := s.svc.Players.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.Redirect(webpath.Players)
}

func (s *Server) loadPlayer(ctx *fiber.Ctx) (users.User, bool, error) {
	id, err := paramID(ctx, "id")
	if err != nil {
		return users.User{}, false, err
	}
	player, err := s.svc.Players.Get(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, false, ctx.Redirect(webpath.Players)
		}
		return users.User{}, false, err
	}
	return player, true, nil
}

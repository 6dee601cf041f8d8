package web

import (
	"clubmanager/auth/users"
	"clubmanager/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleProfileGet(ctx *fiber.Ctx) error {
	user := currentUser(ctx)
	// The session holds a sign-in snapshot; read the current profile.
	fresh, err := s.svc.Users.Get(ctx.Context(), user.ID)
	if err != nil {
		return err
	}
	d := newData("Môj profil").WithUser(user).With("Profile", fresh)
	if user.Role == users.RolePlayer {
		stats, err := s.svc.Stats.PlayerStats(ctx.Context(), user.ID)
		if err != nil {
			return err
		}
		d = d.With("Stats", stats)
	}
	return ctx.Render("profile", d, "layouts/main")
}

func (s *Server) handleProfilePost(ctx *fiber.Ctx) error {
	user := currentUser(ctx)
	profile := parseProfileForm(ctx)
	err := s.svc.Players.UpdateProfile(ctx.Context(), user.ID,
		profile.firstName, profile.lastName, profile.position, profile.birthDate)
	if err != nil {
		return err
	}
	return ctx.Redirect(webpath.Profile)
}

package web

import (
	"database/sql"
	"errors"

	"clubmanager/auth/users"
	"clubmanager/internal/service"
	"clubmanager/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleUsers(ctx *fiber.Ctx) error {
	list, err := s.svc.Users.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.Render("users", newData("Používatelia").
		WithUser(currentUser(ctx)).
		With("Users", list), "layouts/main")
}

func (s *Server) handleNewUserGet(ctx *fiber.Ctx) error {
	return ctx.Render("userForm", newData("Nový používateľ").
		WithUser(currentUser(ctx)).
		With("Action", webpath.NewUser), "layouts/main")
}

func (s *Server) handleNewUserPost(ctx *fiber.Ctx) error {
	form, err := parseUserForm(ctx)
	if err == nil {
		_, err = s.svc.Users.Create(ctx.Context(), form.username, form.password, form.role,
			form.profile.firstName, form.profile.lastName, form.profile.position, form.profile.birthDate)
	}
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return ctx.Status(fiber.StatusBadRequest).Render("userForm", newData("Nový používateľ").
				WithUser(currentUser(ctx)).
				WithErrors(err).
				With("Action", webpath.NewUser), "layouts/main")
		}
		return err
	}
	return ctx.Redirect(webpath.Users)
}

func (s *Server) handleEditUserGet(ctx *fiber.Ctx) error {
	target, ok, err := s.loadUser(ctx)
	if err != nil || !ok {
		return err
	}
	return ctx.Render("userForm", newData("Upraviť používateľa").
		WithUser(currentUser(ctx)).
		With("Target", target), "layouts/main")
}

// handleEditUserPost is the only surface through which a role ever
// changes.
func (s *Server) handleEditUserPost(ctx *fiber.Ctx) error {
	target, ok, err := s.loadUser(ctx)
	if err != nil || !ok {
		return err
	}
	role, err := users.ParseRole(ctx.FormValue("role", string(target.Role)))
	if err != nil {
		return fiber.ErrBadRequest
	}
	profile := parseProfileForm(ctx)
	err = s.svc.Users.Update(ctx.Context(), target.ID, role,
		profile.firstName, profile.lastName, profile.position, profile.birthDate)
	if err != nil {
		return err
	}
	return ctx.Redirect(webpath.Users)
}

func (s *Server) handleDeleteUser(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return err
	}
	err = s.svc.Users.Delete(ctx.Context(), id, currentUser(ctx))
	if err != nil {
		if errors.Is(err, service.ErrSelfDelete) {
			list, listErr := s.svc.Users.List(ctx.Context())
			if listErr != nil {
				return listErr
			}
			return ctx.Status(fiber.StatusBadRequest).Render("users", newData("Používatelia").
				WithUser(currentUser(ctx)).
				WithErrors(err).
				With("Users", list), "layouts/main")
		}
		return err
	}
	return ctx.Redirect(webpath.Users)
}

func (s *Server) loadUser(ctx *fiber.Ctx) (users.User, bool, error) {
	id, err := paramID(ctx, "id")
	if err != nil {
		return users.User{}, false, err
	}
	target, err := s.svc.Users.Get(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, false, ctx.Redirect(webpath.Users)
		}
		return users.User{}, false, err
	}
	return target, true, nil
}

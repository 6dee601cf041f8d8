package web

import (
	"errors"

	"clubmanager/internal/service"
	"clubmanager/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
)

// handleItems is open to guests; the list doubles as a public price
// board for the club.
func (s *Server) handleItems(ctx *fiber.Ctx) error {
	items, err := s.svc.Items.List(ctx.Context())
	if err != nil {
		return err
	}
	total, err := s.svc.Items.Total(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.Render("items", newData("Položky").
		WithUser(currentUser(ctx)).
		With("Items", items).
		With("Total", total), "layouts/main")
}

func (s *Server) handleNewItemGet(ctx *fiber.Ctx) error {
	return ctx.Render("itemForm", newData("Nová položka").
		WithUser(currentUser(ctx)), "layouts/main")
}

func (s *Server) handleNewItemPost(ctx *fiber.Ctx) error {
	form, err := parseItemForm(ctx)
	if err == nil {
		_, err = s.svc.Items.Create(ctx.Context(), form.name, form.description, form.price)
	}
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) || errors.Is(err, errPriceNotNumber) {
			return ctx.Status(fiber.StatusBadRequest).Render("itemForm", newData("Nová položka").
				WithUser(currentUser(ctx)).
				WithErrors(err), "layouts/main")
		}
		return err
	}
	return ctx.Redirect(webpath.Items)
}

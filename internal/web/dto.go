package web

import (
	"errors"
	"strconv"
	"strings"

	"clubmanager/auth/users"

	"github.com/gofiber/fiber/v2"
)

var (
	errScoreNotNumber  = errors.New("score must be a whole number")
	errRatingNotNumber = errors.New("rating must be a number")
	errPriceNotNumber  = errors.New("price must be a number")
)

type eventForm struct {
	date        string
	opponent    string
	location    string
	description string
}

func parseEventForm(ctx *fiber.Ctx) eventForm {
	return eventForm{
		date:        strings.TrimSpace(ctx.FormValue("date")),
		opponent:    strings.TrimSpace(ctx.FormValue("opponent")),
		location:    strings.TrimSpace(ctx.FormValue("location")),
		description: strings.TrimSpace(ctx.FormValue("description")),
	}
}

type scoreForm struct {
	home *int32
	away *int32
}

func parseScoreForm(ctx *fiber.Ctx) (scoreForm, error) {
	home, homeErr := parseScore(ctx.FormValue("home-score"))
	away, awayErr := parseScore(ctx.FormValue("away-score"))
	if err := errors.Join(homeErr, awayErr); err != nil {
		return scoreForm{}, err
	}
	return scoreForm{home: home, away: away}, nil
}

// parseScore maps an empty field to nil, which downstream means "no
// result recorded".
func parseScore(raw string) (*int32, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil, errScoreNotNumber
	}
	score := int32(n)
	return &score, nil
}

type profileForm struct {
	firstName string
	lastName  string
	position  string
	birthDate string
}

func parseProfileForm(ctx *fiber.Ctx) profileForm {
	return profileForm{
		firstName: strings.TrimSpace(ctx.FormValue("first-name")),
		lastName:  strings.TrimSpace(ctx.FormValue("last-name")),
		position:  strings.TrimSpace(ctx.FormValue("position")),
		birthDate: strings.TrimSpace(ctx.FormValue("birth-date")),
	}
}

type userForm struct {
	username string
	password string
	role     users.Role
	profile  profileForm
}

func parseUserForm(ctx *fiber.Ctx) (userForm, error) {
	role, err := users.ParseRole(ctx.FormValue("role", string(users.RolePlayer)))
	if err != nil {
		return userForm{}, err
	}
	return userForm{
		username: ctx.FormValue("username"),
		password: ctx.FormValue("password"),
		role:     role,
		profile:  parseProfileForm(ctx),
	}, nil
}

type evaluationForm struct {
	rating  float64
	comment string
}

func parseEvaluationForm(ctx *fiber.Ctx) (evaluationForm, error) {
	rating, err := parseRating(ctx.FormValue("rating"))
	if err != nil {
		return evaluationForm{}, err
	}
	return evaluationForm{
		rating:  rating,
		comment: strings.TrimSpace(ctx.FormValue("comment")),
	}, nil
}

func parseRating(raw string) (float64, error) {
	rating, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errRatingNotNumber
	}
	return rating, nil
}

type itemForm struct {
	name        string
	description string
	price       float64
}

func parseItemForm(ctx *fiber.Ctx) (itemForm, error) {
	price, err := parsePrice(ctx.FormValue("price"))
	if err != nil {
		return itemForm{}, err
	}
	return itemForm{
		name:        strings.TrimSpace(ctx.FormValue("name")),
		description: strings.TrimSpace(ctx.FormValue("description")),
		price:       price,
	}, nil
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errPriceNotNumber
	}
	return price, nil
}

func paramID(ctx *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.ErrNotFound
	}
	return id, nil
}

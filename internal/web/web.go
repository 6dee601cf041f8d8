package web

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	embedded "clubmanager"
	"clubmanager/auth/policy"
	authservice "clubmanager/auth/service"
	"clubmanager/auth/users"
	"clubmanager/internal/config"
	"clubmanager/internal/domain"
	"clubmanager/internal/service"
	"clubmanager/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Services bundles everything the handlers reach for.
type Services struct {
	Auth        *authservice.Service
	Matches     *service.MatchService
	Trainings   *service.TrainingService
	Players     *service.PlayerService
	Users       *service.UserService
	Attendance  *service.AttendanceService
	Evaluations *service.EvaluationService
	Stats       *service.StatsService
	Items       *service.ItemService
}

type Server struct {
	svc Services
	app *fiber.App
	cfg config.Server
	log *logrus.Entry
}

func New(svc Services, cfg config.Server, l *logrus.Logger) (*Server, error) {
	server := Server{
		svc: svc,
		cfg: cfg,
		log: l.WithField("from", "web"),
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: server.handleError,
	})
	app.Use(server.withUser)

	app.Get(webpath.Signin, server.handleSignInGet)
	app.Post(webpath.Signin, server.handleSignInPost)
	app.Get(webpath.Signout, server.handleSignOut)

	app.Get(webpath.Home, server.handleDashboard)
	app.Get(webpath.Profile, server.gate(policy.AnyUser, server.handleProfileGet))
	app.Post(webpath.Profile, server.gate(policy.AnyUser, server.handleProfilePost))

	app.Get(webpath.Matches, server.gate(policy.AnyUser, server.handleMatches))
	app.Get(webpath.NewMatch, server.gate(policy.AdminOrCoach, server.handleNewMatchGet))
	app.Post(webpath.NewMatch, server.gate(policy.AdminOrCoach, server.handleNewMatchPost))
	app.Get(webpath.EditMatch, server.gate(policy.AdminOrCoach, server.handleEditMatchGet))
	app.Post(webpath.EditMatch, server.gate(policy.AdminOrCoach, server.handleEditMatchPost))
	app.Post(webpath.MatchScore, server.gate(policy.AdminOrCoach, server.handleMatchScore))
	app.Post(webpath.DeleteMatch, server.gate(policy.AdminOrCoach, server.handleDeleteMatch))
	app.Post(webpath.MatchAttend, server.gate(policy.Player, server.handleMatchAttend))
	app.Get(webpath.MatchAttendance, server.gate(policy.AdminOrCoach, server.handleMatchAttendance))
	app.Post(webpath.MatchPresence, server.gate(policy.AdminOrCoach, server.handleMatchPresence))
	app.Get(webpath.MatchEvaluations, server.gate(policy.Coach, server.handleMatchEvaluations))
	app.Post(webpath.EvaluatePlayer, server.gate(policy.Coach, server.handleEvaluatePlayer))

	app.Get(webpath.Trainings, server.gate(policy.AnyUser, server.handleTrainings))
	app.Get(webpath.NewTraining, server.gate(policy.AdminOrCoach, server.handleNewTrainingGet))
	app.Post(webpath.NewTraining, server.gate(policy.AdminOrCoach, server.handleNewTrainingPost))
	app.Get(webpath.EditTraining, server.gate(policy.AdminOrCoach, server.handleEditTrainingGet))
	app.Post(webpath.EditTraining, server.gate(policy.AdminOrCoach, server.handleEditTrainingPost))
	app.Post(webpath.DeleteTraining, server.gate(policy.AdminOrCoach, server.handleDeleteTraining))
	app.Post(webpath.TrainingAttend, server.gate(policy.Player, server.handleTrainingAttend))
	app.Get(webpath.TrainingAttendance, server.gate(policy.AdminOrCoach, server.handleTrainingAttendance))
	app.Post(webpath.TrainingPresence, server.gate(policy.AdminOrCoach, server.handleTrainingPresence))

	app.Get(webpath.Players, server.gate(policy.AdminOrCoach, server.handlePlayers))
	app.Get(webpath.NewPlayer, server.gate(policy.AdminOrCoach, server.handleNewPlayerGet))
	app.Post(webpath.NewPlayer, server.gate(policy.AdminOrCoach, server.handleNewPlayerPost))
	app.Get(webpath.PlayerCard, server.gate(policy.AdminOrCoach, server.handlePlayerCard))
	app.Get(webpath.EditPlayer, server.gate(policy.AdminOrCoach, server.handleEditPlayerGet))
	app.Post(webpath.EditPlayer, server.gate(policy.AdminOrCoach, server.handleEditPlayerPost))
	app.Post(webpath.DeletePlayer, server.gate(policy.AdminOrCoach, server.handleDeletePlayer))

	app.Get(webpath.Items, server.handleItems)
	app.Get(webpath.NewItem, server.gate(policy.Admin, server.handleNewItemGet))
	app.Post(webpath.NewItem, server.gate(policy.Admin, server.handleNewItemPost))

	app.Get(webpath.Users, server.gate(policy.Admin, server.handleUsers))
	app.Get(webpath.NewUser, server.gate(policy.Admin, server.handleNewUserGet))
	app.Post(webpath.NewUser, server.gate(policy.Admin, server.handleNewUserPost))
	app.Get(webpath.EditUser, server.gate(policy.Admin, server.handleEditUserGet))
	app.Post(webpath.EditUser, server.gate(policy.Admin, server.handleEditUserPost))
	app.Post(webpath.DeleteUser, server.gate(policy.Admin, server.handleDeleteUser))

	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

const userKey = "user"

// withUser tags the request and resolves the session cookie into a user
// value. Guests keep going with a zero user; the gates sort them out.
func (s *Server) withUser(ctx *fiber.Ctx) error {
	requestID := uuid.NewString()
	ctx.Set("X-Request-Id", requestID)
	user, ok := s.svc.Auth.Resolve(ctx.Cookies(s.svc.Auth.CookieName()))
	if ok {
		ctx.Context().SetUserValue(userKey, user)
	}
	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     ctx.Method(),
		"path":       ctx.Path(),
		"user":       user.Username,
	}).Debug("request")
	return ctx.Next()
}

func (s *Server) gate(req policy.Requirement, h fiber.Handler) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user := currentUser(ctx)
		if !policy.Allowed(user, req) {
			if user.IsZero() {
				return ctx.Redirect(webpath.Signin)
			}
			return fiber.ErrForbidden
		}
		return h(ctx)
	}
}

func currentUser(ctx *fiber.Ctx) users.User {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	return user
}

func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code >= fiber.StatusInternalServerError {
		s.log.WithError(err).WithField("path", ctx.Path()).Error("request failed")
	}
	return ctx.Status(code).Render("error", newData("Chyba").
		WithUser(currentUser(ctx)).
		With("Code", code), "layouts/main")
}

func (s *Server) handleSignInGet(ctx *fiber.Ctx) error {
	if !currentUser(ctx).IsZero() {
		return ctx.Redirect(webpath.Home)
	}
	return ctx.Render("signin", newData("Prihlásenie"), "layouts/main")
}

func (s *Server) handleSignInPost(ctx *fiber.Ctx) error {
	username := ctx.FormValue("username")
	password := ctx.FormValue("password")
	_, token, err := s.svc.Auth.SignIn(ctx.Context(), username, password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).
				Render("signin", newData("Prihlásenie").WithErrors(err), "layouts/main")
		}
		return err
	}
	ctx.Cookie(s.svc.Auth.SessionCookie(token))
	return ctx.Redirect(webpath.Home)
}

func (s *Server) handleSignOut(ctx *fiber.Ctx) error {
	s.svc.Auth.SignOut(ctx.Cookies(s.svc.Auth.CookieName()))
	ctx.ClearCookie(s.svc.Auth.CookieName())
	return ctx.Redirect(webpath.Signin)
}

func formatDate(date string) string {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02.01.2006 15:04")
}

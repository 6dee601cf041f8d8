package service

import (
	"context"
	"database/sql"
	"errors"

	"clubmanager/auth/session"
	"clubmanager/auth/storage"
	"clubmanager/auth/users"
	"clubmanager/internal/config"
	"clubmanager/internal/normalize"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type Service struct {
	storage  storage.AuthStorage
	sessions *session.Registry
	cfg      config.Auth
	log      *logrus.Entry
}

// New builds the auth service and seeds the admin account on first start.
func New(ctx context.Context, cfg config.Auth, st storage.AuthStorage, sessions *session.Registry, l *logrus.Logger) (*Service, error) {
	s := Service{
		storage:  st,
		sessions: sessions,
		cfg:      cfg,
		log:      l.WithField("from", "auth-service"),
	}
	_, _, err := st.GetCredentials(ctx, "admin")
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		hash, err := HashPassword(cfg.AdminPassword)
		if err != nil {
			return nil, err
		}
		_, err = st.CreateUser(ctx, users.User{
			Username: "admin",
			Role:     users.RoleAdmin,
		}, hash)
		if err != nil {
			return nil, err
		}
		s.log.Info("admin account seeded")
	}
	return &s, nil
}

// Authenticate verifies a username/password pair. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, username string, password string) (users.User, error) {
	user, hash, err := s.storage.GetCredentials(ctx, normalize.Username(username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, ErrInvalidCredentials
		}
		return users.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return users.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// SignIn authenticates and opens a session, returning the new token.
func (s *Service) SignIn(ctx context.Context, username string, password string) (users.User, string, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return users.User{}, "", err
	}
	token, err := s.sessions.Create(user)
	if err != nil {
		return users.User{}, "", err
	}
	s.log.WithField("username", user.Username).Info("signed in")
	return user, token, nil
}

func (s *Service) SignOut(token string) {
	s.sessions.Revoke(token)
}

// Resolve maps a session cookie value back to its user. Absent means the
// caller must treat the request as a guest.
func (s *Service) Resolve(token string) (users.User, bool) {
	return s.sessions.Resolve(token)
}

func (s *Service) CookieName() string {
	return s.cfg.SessionCookie
}

// SessionCookie wraps a token for transport. The token is the sole
// credential, so the cookie is http-only and bound to the browser session
// (the registry has no expiry either way).
func (s *Service) SessionCookie(token string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:        s.cfg.SessionCookie,
		Value:       token,
		Path:        "/",
		HTTPOnly:    true,
		SameSite:    "Lax",
		SessionOnly: true,
	}
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

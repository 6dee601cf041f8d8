package service

import (
	"context"

	authservice "clubmanager/auth/service"
	"clubmanager/auth/users"
	"clubmanager/internal/normalize"
	"clubmanager/internal/storage"

	"github.com/sirupsen/logrus"
)

type PlayerService struct {
	users           storage.UserStorage
	defaultPassword string
	log             *logrus.Entry
}

func NewPlayerService(us storage.UserStorage, defaultPassword string, l *logrus.Logger) *PlayerService {
	return &PlayerService{
		users:           us,
		defaultPassword: defaultPassword,
		log:             l.WithField("from", "player-service"),
	}
}

func (s *PlayerService) List(ctx context.Context) ([]users.User, error) {
	return s.users.ListPlayers(ctx)
}

func (s *PlayerService) Get(ctx context.Context, id int64) (users.User, error) {
	return s.users.GetPlayer(ctx, id)
}

// Create registers a player account with the club's default password; the
// player changes it after first login.
func (s *PlayerService) Create(ctx context.Context, username, firstName, lastName, position, birthDate string) (users.User, error) {
	username = normalize.Username(username)
	if err := invalid(requireUsername(username)); err != nil {
		return users.User{}, err
	}
	hash, err := authservice.HashPassword(s.defaultPassword)
	if err != nil {
		return users.User{}, err
	}
	return s.users.CreateUser(ctx, users.User{
		Username:  username,
		Role:      users.RolePlayer,
		FirstName: firstName,
		LastName:  lastName,
		Position:  position,
		BirthDate: birthDate,
		TeamID:    defaultTeamID,
	}, hash)
}

func (s *PlayerService) UpdateProfile(ctx context.Context, id int64, firstName, lastName, position, birthDate string) error {
	return s.users.UpdateProfile(ctx, users.User{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Position:  position,
		BirthDate: birthDate,
	})
}

func (s *PlayerService) Delete(ctx context.Context, id int64) error {
	return s.users.DeleteUser(ctx, id)
}

func requireUsername(username string) error {
	if username == "" {
		return errUsernameRequired
	}
	return nil
}

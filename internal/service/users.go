package service

import (
	"context"
	"errors"

	authservice "clubmanager/auth/service"
	"clubmanager/auth/users"
	"clubmanager/internal/normalize"
	"clubmanager/internal/storage"

	"github.com/sirupsen/logrus"
)

// ErrSelfDelete guards admins against deleting the account they are
// signed in with.
var ErrSelfDelete = errors.New("cannot delete your own account")

type UserService struct {
	users storage.UserStorage
	log   *logrus.Entry
}

func NewUserService(us storage.UserStorage, l *logrus.Logger) *UserService {
	return &UserService{
		users: us,
		log:   l.WithField("from", "user-service"),
	}
}

func (s *UserService) List(ctx context.Context) ([]users.User, error) {
	return s.users.ListUsers(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (users.User, error) {
	return s.users.GetUser(ctx, id)
}

func (s *UserService) Create(ctx context.Context, username, password string, role users.Role, firstName, lastName, position, birthDate string) (users.User, error) {
	username = normalize.Username(username)
	var passwordErr error
	if password == "" {
		passwordErr = errPasswordRequired
	}
	if err := invalid(requireUsername(username), passwordErr); err != nil {
		return users.User{}, err
	}
	hash, err := authservice.HashPassword(password)
	if err != nil {
		return users.User{}, err
	}
	return s.users.CreateUser(ctx, users.User{
		Username:  username,
		Role:      role,
		FirstName: firstName,
		LastName:  lastName,
		Position:  position,
		BirthDate: birthDate,
		TeamID:    defaultTeamID,
	}, hash)
}

// Update rewrites role and profile; this is the only surface through
// which a role ever changes.
func (s *UserService) Update(ctx context.Context, id int64, role users.Role, firstName, lastName, position, birthDate string) error {
	return s.users.UpdateUser(ctx, users.User{
		ID:        id,
		Role:      role,
		FirstName: firstName,
		LastName:  lastName,
		Position:  position,
		BirthDate: birthDate,
	})
}

func (s *UserService) Delete(ctx context.Context, id int64, actor users.User) error {
	if id == actor.ID {
		return ErrSelfDelete
	}
	if err := s.users.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"user_id": id, "by": actor.Username}).Info("user deleted")
	return nil
}

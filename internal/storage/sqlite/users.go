package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"clubmanager/auth/users"
	"clubmanager/gen/model"
	"clubmanager/gen/table"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
)

// userColumns is every users column except the password hash, which only
// GetCredentials may read.
var userColumns = sqlite.ColumnList{
	table.Users.ID,
	table.Users.Username,
	table.Users.Role,
	table.Users.FirstName,
	table.Users.LastName,
	table.Users.Position,
	table.Users.BirthDate,
	table.Users.TeamID,
}

func (s *Storage) ListUsers(ctx context.Context) ([]users.User, error) {
	var dbUsers []model.Users
	err := table.Users.
		SELECT(userColumns).
		FROM(table.Users).
		ORDER_BY(table.Users.Role.ASC(), table.Users.LastName.ASC(), table.Users.FirstName.ASC()).
		QueryContext(ctx, s.db, &dbUsers)
	if err != nil {
		return nil, err
	}
	return convertUsersToDomain(dbUsers)
}

func (s *Storage) ListPlayers(ctx context.Context) ([]users.User, error) {
	var dbUsers []model.Users
	err := table.Users.
		SELECT(userColumns).
		FROM(table.Users).
		WHERE(table.Users.Role.EQ(sqlite.String(users.RolePlayer.String()))).
		ORDER_BY(table.Users.LastName.ASC(), table.Users.FirstName.ASC()).
		QueryContext(ctx, s.db, &dbUsers)
	if err != nil {
		return nil, err
	}
	return convertUsersToDomain(dbUsers)
}

func (s *Storage) GetUser(ctx context.Context, id int64) (users.User, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(userColumns).
		FROM(table.Users).
		WHERE(table.Users.ID.EQ(sqlite.Int(id))).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, sql.ErrNoRows
		}
		return users.User{}, err
	}
	return convertUserToDomain(dbUser)
}

func (s *Storage) GetPlayer(ctx context.Context, id int64) (users.User, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(userColumns).
		FROM(table.Users).
		WHERE(table.Users.ID.EQ(sqlite.Int(id)).
			AND(table.Users.Role.EQ(sqlite.String(users.RolePlayer.String())))).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, sql.ErrNoRows
		}
		return users.User{}, err
	}
	return convertUserToDomain(dbUser)
}

func (s *Storage) CreateUser(ctx context.Context, user users.User, passwordHash string) (users.User, error) {
	dbUser := convertUserFromDomain(user)
	dbUser.PasswordHash = passwordHash

	var inserted model.Users
	err := table.Users.
		INSERT(table.Users.MutableColumns).
		MODEL(dbUser).
		RETURNING(table.Users.AllColumns).
		QueryContext(ctx, s.db, &inserted)
	if err != nil {
		return users.User{}, err
	}
	s.log.WithField("username", user.Username).Info("user created")
	return convertUserToDomain(inserted)
}

// UpdateUser rewrites role and profile fields. Username and password are
// untouched, those change through dedicated flows only.
func (s *Storage) UpdateUser(ctx context.Context, user users.User) error {
	dbUser := convertUserFromDomain(user)
	_, err := table.Users.
		UPDATE(
			table.Users.Role,
			table.Users.FirstName,
			table.Users.LastName,
			table.Users.Position,
			table.Users.BirthDate,
		).
		MODEL(dbUser).
		WHERE(table.Users.ID.EQ(sqlite.Int(user.ID))).
		ExecContext(ctx, s.db)
	return err
}

// UpdateProfile rewrites profile fields only, leaving the role alone.
func (s *Storage) UpdateProfile(ctx context.Context, user users.User) error {
	dbUser := convertUserFromDomain(user)
	_, err := table.Users.
		UPDATE(
			table.Users.FirstName,
			table.Users.LastName,
			table.Users.Position,
			table.Users.BirthDate,
		).
		MODEL(dbUser).
		WHERE(table.Users.ID.EQ(sqlite.Int(user.ID))).
		ExecContext(ctx, s.db)
	return err
}

// DeleteUser removes the user and every ledger row referencing them, in
// one transaction so a failure leaves no orphans.
func (s *Storage) DeleteUser(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer rollback(tx, s.log)

	_, err = table.Attendance.
		DELETE().
		WHERE(table.Attendance.UserID.EQ(sqlite.Int(id))).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	_, err = table.Evaluations.
		DELETE().
		WHERE(table.Evaluations.PlayerID.EQ(sqlite.Int(id))).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	_, err = table.Users.
		DELETE().
		WHERE(table.Users.ID.EQ(sqlite.Int(id))).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Storage) GetCredentials(ctx context.Context, username string) (users.User, string, error) {
	var dbUser model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		FROM(table.Users).
		WHERE(table.Users.Username.EQ(sqlite.String(username))).
		QueryContext(ctx, s.db, &dbUser)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return users.User{}, "", sql.ErrNoRows
		}
		return users.User{}, "", err
	}
	user, err := convertUserToDomain(dbUser)
	if err != nil {
		return users.User{}, "", err
	}
	return user, dbUser.PasswordHash, nil
}

package users

import (
	"fmt"
	"strings"
)

// Role is the closed set of account roles. Anything else coming from a
// form or the database is rejected at parse time.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleCoach  Role = "coach"
	RolePlayer Role = "player"
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleCoach:
		return RoleCoach, nil
	case RolePlayer:
		return RolePlayer, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	ID       int64
	Username string
	Role     Role

	// Profile fields, empty when not filled in.
	FirstName string
	LastName  string
	Position  string
	BirthDate string
	TeamID    int64
}

func (u User) IsZero() bool {
	return u.ID == 0
}

func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// Role helpers for templates, which cannot compare typed strings.

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

func (u User) IsCoach() bool { return u.Role == RoleCoach }

func (u User) IsPlayer() bool { return u.Role == RolePlayer }

func (u User) CanManage() bool { return u.Role == RoleAdmin || u.Role == RoleCoach }

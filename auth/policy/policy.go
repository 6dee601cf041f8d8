package policy

import (
	"clubmanager/auth/users"

	mapset "github.com/deckarep/golang-set/v2"
)

// Requirement is the set of roles an operation is open to.
type Requirement struct {
	name   string
	public bool
	roles  mapset.Set[users.Role]
}

var (
	Public = Requirement{
		name:   "public",
		public: true,
		roles:  mapset.NewSet[users.Role](),
	}
	AnyUser = Requirement{
		name:  "any-authenticated",
		roles: mapset.NewSet[users.Role](users.RoleAdmin, users.RoleCoach, users.RolePlayer),
	}
	Admin = Requirement{
		name:  "admin",
		roles: mapset.NewSet[users.Role](users.RoleAdmin),
	}
	Coach = Requirement{
		name:  "coach",
		roles: mapset.NewSet[users.Role](users.RoleCoach),
	}
	Player = Requirement{
		name:  "player",
		roles: mapset.NewSet[users.Role](users.RolePlayer),
	}
	AdminOrCoach = Requirement{
		name:  "admin-or-coach",
		roles: mapset.NewSet[users.Role](users.RoleAdmin, users.RoleCoach),
	}
)

func (r Requirement) String() string {
	return r.name
}

// Allowed reports whether the user (zero value means guest) may perform an
// operation gated by req. Pure predicate: callers decide how a false result
// maps onto 401 versus 403.
func Allowed(user users.User, req Requirement) bool {
	if req.public {
		return true
	}
	if user.IsZero() {
		return false
	}
	return req.roles.Contains(user.Role)
}

package policy

import (
	"testing"

	"clubmanager/auth/users"
)

func TestAllowed(t *testing.T) {
	guest := users.User{}
	admin := users.User{ID: 1, Role: users.RoleAdmin}
	coach := users.User{ID: 2, Role: users.RoleCoach}
	player := users.User{ID: 3, Role: users.RolePlayer}

	tests := []struct {
		name string
		user users.User
		req  Requirement
		want bool
	}{
		{name: "guest public", user: guest, req: Public, want: true},
		{name: "guest any", user: guest, req: AnyUser, want: false},
		{name: "guest admin", user: guest, req: Admin, want: false},
		{name: "guest admin-or-coach", user: guest, req: AdminOrCoach, want: false},
		{name: "player public", user: player, req: Public, want: true},
		{name: "player any", user: player, req: AnyUser, want: true},
		{name: "player admin", user: player, req: Admin, want: false},
		{name: "player coach", user: player, req: Coach, want: false},
		{name: "player admin-or-coach", user: player, req: AdminOrCoach, want: false},
		{name: "player player", user: player, req: Player, want: true},
		{name: "coach player", user: coach, req: Player, want: false},
		{name: "coach any", user: coach, req: AnyUser, want: true},
		{name: "coach coach", user: coach, req: Coach, want: true},
		{name: "coach admin", user: coach, req: Admin, want: false},
		{name: "coach admin-or-coach", user: coach, req: AdminOrCoach, want: true},
		{name: "admin admin", user: admin, req: Admin, want: true},
		{name: "admin coach", user: admin, req: Coach, want: false},
		{name: "admin admin-or-coach", user: admin, req: AdminOrCoach, want: true},
		{name: "admin any", user: admin, req: AnyUser, want: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Allowed(tt.user, tt.req); got != tt.want {
				t.Errorf("Allowed(%v, %s) = %v, want %v", tt.user.Role, tt.req, got, tt.want)
			}
		})
	}
}

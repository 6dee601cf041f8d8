package normalize

import "testing"

func TestUsername(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Novak", want: "novak"},
		{in: "  kovac07  ", want: "kovac07"},
		{in: "ADMIN", want: "admin"},
		{in: "Ďurica", want: "ďurica"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		if got := Username(tt.in); got != tt.want {
			t.Errorf("Username(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package service

import "testing"

func Test_percentage(t *testing.T) {
	tests := []struct {
		name  string
		part  int64
		total int64
		want  int
	}{
		{name: "zero total", part: 0, total: 0, want: 0},
		{name: "zero total with part", part: 5, total: 0, want: 0},
		{name: "none attended", part: 0, total: 10, want: 0},
		{name: "all attended", part: 10, total: 10, want: 100},
		{name: "half", part: 1, total: 2, want: 50},
		{name: "third rounds down", part: 1, total: 3, want: 33},
		{name: "two thirds rounds up", part: 2, total: 3, want: 67},
		{name: "rounds half up", part: 1, total: 8, want: 13},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := percentage(tt.part, tt.total); got != tt.want {
				t.Errorf("percentage(%d, %d) = %d, want %d", tt.part, tt.total, got, tt.want)
			}
		})
	}
}

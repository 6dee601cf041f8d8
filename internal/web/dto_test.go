package web

import "testing"

func Test_parseScore(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *int32
		wantErr bool
	}{
		{name: "empty means unset", raw: "", want: nil},
		{name: "blank means unset", raw: "   ", want: nil},
		{name: "zero", raw: "0", want: ptr(int32(0))},
		{name: "plain", raw: "3", want: ptr(int32(3))},
		{name: "padded", raw: " 12 ", want: ptr(int32(12))},
		{name: "negative parses", raw: "-1", want: ptr(int32(-1))},
		{name: "not a number", raw: "abc", wantErr: true},
		{name: "fractional", raw: "1.5", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseScore(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseScore(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("parseScore(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Errorf("parseScore(%q) = %d, want %d", tt.raw, *got, *tt.want)
			}
		})
	}
}

func Test_parseRating(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "int", raw: "7", want: 7},
		{name: "fractional", raw: "7.5", want: 7.5},
		{name: "padded", raw: " 10 ", want: 10},
		{name: "empty", raw: "", wantErr: true},
		{name: "text", raw: "great", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseRating(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseRating(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseRating(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}

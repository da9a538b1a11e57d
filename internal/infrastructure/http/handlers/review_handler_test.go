package handlers

import (
	"testing"
	"time"
)

func TestFormatReviewDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2022, time.January, 2, 10, 0, 0, 0, time.UTC), "02 de ene. 2022"},
		{time.Date(2022, time.September, 15, 0, 0, 0, 0, time.UTC), "15 de sep. 2022"},
		{time.Date(2021, time.December, 31, 23, 59, 0, 0, time.UTC), "31 de dic. 2021"},
	}
	for _, tt := range tests {
		if got := formatReviewDate(tt.in); got != tt.want {
			t.Fatalf("formatReviewDate(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

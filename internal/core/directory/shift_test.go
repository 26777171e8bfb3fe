package directory

import (
	"errors"
	"testing"
)

func TestComputeFixedHours(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from, to string
		want     Hours
	}{
		{"09:00", "18:00", Hours{Work: 8, Break: 1, Total: 9}},
		{"22:00", "06:00", Hours{Work: 7, Break: 1, Total: 8}},
		{"08:10", "17:00", Hours{Work: 7.83, Break: 1, Total: 8.83}},
	}

	for _, tc := range cases {
		got, err := ComputeFixedHours(tc.from, tc.to)
		if err != nil {
			t.Fatalf("%s-%s: unexpected error: %v", tc.from, tc.to, err)
		}
		if got != tc.want {
			t.Errorf("%s-%s: expected %+v, got %+v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestComputeFixedHours_InvalidClock(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "24:00", "12:60", "1:00", "ab:cd", "12:00:00"} {
		if _, err := ComputeFixedHours(raw, "10:00"); !errors.Is(err, ErrInvalidClock) {
			t.Errorf("%q: expected ErrInvalidClock, got %v", raw, err)
		}
	}
}

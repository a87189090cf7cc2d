package scan

import "testing"

func TestSeedRange_LenAndEmpty(t *testing.T) {
	cases := []struct {
		name      string
		r         SeedRange
		wantLen   int64
		wantEmpty bool
	}{
		{"normal", SeedRange{Start: 0, End: 10}, 10, false},
		{"empty exact", SeedRange{Start: 5, End: 5}, 0, true},
		{"inverted", SeedRange{Start: 5, End: 2}, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.r.Len(); got != c.wantLen {
				t.Errorf("Len() = %d, want %d", got, c.wantLen)
			}
			if got := c.r.Empty(); got != c.wantEmpty {
				t.Errorf("Empty() = %v, want %v", got, c.wantEmpty)
			}
		})
	}
}

func TestSeedRange_EffectiveConcurrency(t *testing.T) {
	cases := []struct {
		name           string
		r              SeedRange
		requested      int
		maxConcurrency int
		want           int
	}{
		{"empty range yields zero workers", SeedRange{Start: 5, End: 5}, 8, 0, 0},
		{"requested below range length", SeedRange{Start: 0, End: 100}, 4, 0, 4},
		{"requested above range length clamps to length", SeedRange{Start: 0, End: 3}, 16, 0, 3},
		{"zero or negative requested floors to 1", SeedRange{Start: 0, End: 100}, 0, 0, 1},
		{"process ceiling caps an otherwise-valid request", SeedRange{Start: 0, End: 1000}, 64, 8, 8},
		{"ceiling below 1 is ignored", SeedRange{Start: 0, End: 1000}, 64, 0, 64},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.r.EffectiveConcurrency(c.requested, c.maxConcurrency); got != c.want {
				t.Errorf("EffectiveConcurrency(%d, %d) = %d, want %d", c.requested, c.maxConcurrency, got, c.want)
			}
		})
	}
}

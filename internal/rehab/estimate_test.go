package rehab

import "testing"

func TestEstimate(t *testing.T) {
	t.Run("medium_duplex", func(t *testing.T) {
		// 1680 sqft x $35 x 1.00 x 1.05 = 61,740, rounded to $61,500.
		if got := Estimate(1680, 2, TierMedium); got != 61500 {
			t.Errorf("expected 61500, got %.2f", got)
		}
	})

	t.Run("tiers_are_ordered", func(t *testing.T) {
		prev := 0.0
		for _, tier := range Tiers {
			cost := Estimate(1680, 2, tier)
			if cost <= prev {
				t.Fatalf("tier %s cost %.2f not above previous %.2f", tier, cost, prev)
			}
			prev = cost
		}
	})

	t.Run("unit_buckets_scale_cost", func(t *testing.T) {
		single := Estimate(2000, 1, TierMedium)
		duplex := Estimate(2000, 2, TierMedium)
		triplex := Estimate(2000, 3, TierMedium)
		quad := Estimate(2000, 4, TierMedium)
		six := Estimate(2000, 6, TierMedium)

		if !(single < duplex && duplex < triplex && triplex < quad) {
			t.Errorf("expected rising cost per bucket: %v %v %v %v", single, duplex, triplex, quad)
		}
		if six != quad {
			t.Errorf("expected 4+ units to share the quad multiplier: %v vs %v", six, quad)
		}
	})

	t.Run("rounds_to_nearest_500", func(t *testing.T) {
		for _, sqft := range []int{777, 1000, 1234, 2001} {
			for _, tier := range Tiers {
				cost := Estimate(sqft, 1, tier)
				if remainder := int(cost) % 500; remainder != 0 {
					t.Errorf("sqft=%d tier=%s: %.2f not a $500 multiple", sqft, tier, cost)
				}
			}
		}
	})

	t.Run("invalid_inputs_estimate_zero", func(t *testing.T) {
		if got := Estimate(0, 2, TierMedium); got != 0 {
			t.Errorf("expected 0 for zero sqft, got %.2f", got)
		}
		if got := Estimate(-100, 2, TierMedium); got != 0 {
			t.Errorf("expected 0 for negative sqft, got %.2f", got)
		}
		if got := Estimate(1000, 2, Tier("granite")); got != 0 {
			t.Errorf("expected 0 for unknown tier, got %.2f", got)
		}
	})
}

func TestTierForScore(t *testing.T) {
	cases := []struct {
		score int
		want  Tier
	}{
		{0, TierLight},
		{15, TierLight},
		{16, TierLitePlus},
		{30, TierLitePlus},
		{31, TierMedium},
		{50, TierMedium},
		{51, TierHeavy},
		{70, TierHeavy},
		{71, TierFullGut},
		{100, TierFullGut},
	}
	for _, tc := range cases {
		if got := TierForScore(tc.score); got != tc.want {
			t.Errorf("score %d: expected %s, got %s", tc.score, tc.want, got)
		}
	}
}

func TestUnitBucket(t *testing.T) {
	cases := []struct {
		units int
		want  string
	}{
		{1, "single"},
		{2, "duplex"},
		{3, "triplex"},
		{4, "quad"},
		{8, "quad"},
		{0, "single"},
	}
	for _, tc := range cases {
		if got := UnitBucket(tc.units); got != tc.want {
			t.Errorf("units %d: expected %s, got %s", tc.units, tc.want, got)
		}
	}
}

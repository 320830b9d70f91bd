package rng

import "testing"

func TestSameSeedSameStream(t *testing.T) {
	draws := map[string]func(*RNG) int{
		"float":    func(r *RNG) int { return int(r.Float64() * 1e6) },
		"intn":     func(r *RNG) int { return r.Intn(1000) },
		"range":    func(r *RNG) int { return r.Range(10, 12) },
		"weighted": func(r *RNG) int { return r.WeightedSelect([]int{70, 20, 10}) },
	}
	for name, draw := range draws {
		t.Run(name, func(t *testing.T) {
			a, b := New(42), New(42)
			for i := 0; i < 50; i++ {
				if x, y := draw(a), draw(b); x != y {
					t.Fatalf("draw %d: %d != %d", i, x, y)
				}
			}
		})
	}
}

func TestDifferentSeeds_Diverge(t *testing.T) {
	a, b := New(1), New(2)
	for i := 0; i < 20; i++ {
		if a.Range(1, 100) != b.Range(1, 100) {
			return
		}
	}
	t.Error("seeds 1 and 2 produced the same 20 rolls")
}

func TestIntn_Bounds(t *testing.T) {
	tests := []struct {
		n    int
		seed int64
	}{
		{1, 1},
		{6, 99},
		{20, 5},
	}
	for _, tt := range tests {
		r := New(tt.seed)
		for i := 0; i < 1000; i++ {
			if v := r.Intn(tt.n); v < 0 || v >= tt.n {
				t.Fatalf("Intn(%d) = %d", tt.n, v)
			}
		}
	}
}

func TestWeightedSelect_Distribution(t *testing.T) {
	r := New(12345)
	weights := []int{70, 20, 10}
	var counts [3]int

	const trials = 10000
	for i := 0; i < trials; i++ {
		counts[r.WeightedSelect(weights)]++
	}

	bounds := [3][2]int{{6500, 7500}, {1600, 2400}, {700, 1300}}
	for i, b := range bounds {
		if counts[i] < b[0] || counts[i] > b[1] {
			t.Errorf("weight %d picked %d times, want %d..%d", weights[i], counts[i], b[0], b[1])
		}
	}
}

func TestWeightedSelect_SingleOption(t *testing.T) {
	r := New(1)
	for i := 0; i < 10; i++ {
		if idx := r.WeightedSelect([]int{100}); idx != 0 {
			t.Fatalf("single option picked %d", idx)
		}
	}
}

func TestPosition_CountsDraws(t *testing.T) {
	r := New(42)
	if r.Position() != 0 {
		t.Fatalf("fresh position = %d", r.Position())
	}
	r.Intn(4)
	r.Float64()
	r.WeightedSelect([]int{50, 50})
	r.Chance(0.5)
	// Power-of-two bounds never redraw.
	r.Intn(8)
	if r.Position() != 5 {
		t.Errorf("position = %d, want 5", r.Position())
	}
}

func TestRestore_ContinuesStream(t *testing.T) {
	r := New(42)
	for i := 0; i < 10; i++ {
		r.Range(1, 1000)
	}
	pos := r.Position()

	var want [5]int
	for i := range want {
		want[i] = r.Intn(1 << 20)
	}

	restored := Restore(42, pos)
	if restored.Position() != pos || restored.Seed() != 42 {
		t.Fatalf("restored at seed=%d pos=%d, want 42/%d", restored.Seed(), restored.Position(), pos)
	}
	for i, w := range want {
		if got := restored.Intn(1 << 20); got != w {
			t.Fatalf("draw %d: got %d, want %d", i, got, w)
		}
	}
}

func TestRange_Inclusive(t *testing.T) {
	r := New(7)
	seenLo, seenHi := false, false
	for i := 0; i < 2000; i++ {
		v := r.Range(5, 15)
		if v < 5 || v > 15 {
			t.Fatalf("Range(5, 15) out of bounds: %d", v)
		}
		if v == 5 {
			seenLo = true
		}
		if v == 15 {
			seenHi = true
		}
	}
	if !seenLo || !seenHi {
		t.Errorf("expected both endpoints to appear, lo=%v hi=%v", seenLo, seenHi)
	}
}

func TestRange_Degenerate(t *testing.T) {
	r := New(1)
	if v := r.Range(9, 9); v != 9 {
		t.Errorf("Range(9, 9) = %d, want 9", v)
	}
	if v := r.Range(9, 3); v != 9 {
		t.Errorf("Range(9, 3) = %d, want 9", v)
	}
	if r.Position() != 0 {
		t.Errorf("degenerate ranges should not draw, position=%d", r.Position())
	}
}

func TestChance_Converges(t *testing.T) {
	r := New(2024)
	hits := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		if r.Chance(0.3) {
			hits++
		}
	}
	if hits < 2700 || hits > 3300 {
		t.Errorf("expected ~3000 hits for p=0.3, got %d", hits)
	}
}

func TestChance_Extremes(t *testing.T) {
	r := New(3)
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}

func TestSeed_Reported(t *testing.T) {
	if got := New(77).Seed(); got != 77 {
		t.Errorf("Seed() = %d, want 77", got)
	}
}

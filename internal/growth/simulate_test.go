package growth

import (
	"errors"
	"testing"
)

func TestSimulateSequence(t *testing.T) {
	s, err := Simulate(Params{Start: 3, K: 3, Generations: 2})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	want := []int64{3, 9, 27}
	if len(s.Counts) != len(want) {
		t.Fatalf("expected %d counts, got %d", len(want), len(s.Counts))
	}
	for i, w := range want {
		if s.Counts[i] != w {
			t.Errorf("generation %d: expected %d, got %d", i, w, s.Counts[i])
		}
	}
}

func TestSimulateMultiplicativeInvariant(t *testing.T) {
	s, err := Simulate(Params{Start: 7, K: 4, Generations: 10})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	factor := int64(s.Params.Factor())
	for i := 1; i < len(s.Counts); i++ {
		if s.Counts[i] != s.Counts[i-1]*factor {
			t.Errorf("generation %d: %d != %d * %d", i, s.Counts[i], s.Counts[i-1], factor)
		}
	}
}

func TestFactorIncludesParents(t *testing.T) {
	p := Params{Start: 2, K: 2, Generations: 3, IncludeParents: true}
	if p.Factor() != 3 {
		t.Errorf("expected factor 3 with parents included, got %d", p.Factor())
	}

	s, err := Simulate(p)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	if s.Last() != 2*3*3*3 {
		t.Errorf("expected final count 54, got %d", s.Last())
	}
}

func TestSimulateOverflow(t *testing.T) {
	// 10^19 does not fit in an int64.
	_, err := Simulate(Params{Start: 1, K: 10, Generations: 19})
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected overflow error, got %v", err)
	}

	var simErr *SimError
	if !errors.As(err, &simErr) {
		t.Fatal("expected *SimError wrapper")
	}
	if simErr.Generation != 19 {
		t.Errorf("expected overflow at generation 19, got %d", simErr.Generation)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		want error
	}{
		{"zero start", Params{Start: 0, K: 3, Generations: 5}, ErrStartRange},
		{"zero k", Params{Start: 3, K: 0, Generations: 5}, ErrKRange},
		{"zero generations", Params{Start: 3, K: 3, Generations: 0}, ErrGenerationsRange},
		{"too many generations", Params{Start: 3, K: 3, Generations: MaxGenerations + 1}, ErrGenerationsRange},
		{"valid", Params{Start: 1, K: 1, Generations: MaxGenerations}, nil},
	}

	for _, tt := range tests {
		if err := tt.p.Validate(); !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestPow(t *testing.T) {
	v, err := Pow(3, 3)
	if err != nil {
		t.Fatalf("pow failed: %v", err)
	}
	if v != 27 {
		t.Errorf("expected 27, got %d", v)
	}

	v, err = Pow(5, 0)
	if err != nil || v != 1 {
		t.Errorf("expected 5^0 = 1, got %d (%v)", v, err)
	}

	if _, err := Pow(10, 19); !errors.Is(err, ErrOverflow) {
		t.Errorf("expected overflow for 10^19, got %v", err)
	}
}

func TestSeriesCountClamps(t *testing.T) {
	s, err := Simulate(Params{Start: 3, K: 2, Generations: 4})
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	if s.Count(-1) != 3 {
		t.Errorf("expected clamp to generation 0, got %d", s.Count(-1))
	}
	if s.Count(99) != s.Last() {
		t.Errorf("expected clamp to last generation, got %d", s.Count(99))
	}
	if s.Generations() != 4 {
		t.Errorf("expected 4 generations, got %d", s.Generations())
	}
}

package growth

// MaxGenerations bounds the simulated horizon. The UI sliders never offer
// more, so anything past this is a programming error upstream.
const MaxGenerations = 120

// Params describes one classroom scenario: a starting population, k children
// per individual per generation, and how many generations to run.
type Params struct {
	Start          int
	K              int
	Generations    int
	IncludeParents bool
}

// Factor is the per-generation multiplier: k when only the children are
// counted, k+1 when the parents stay in the population.
func (p Params) Factor() int {
	if p.IncludeParents {
		return p.K + 1
	}
	return p.K
}

func (p Params) Validate() error {
	if p.Start < 1 {
		return ErrStartRange
	}
	if p.K < 1 {
		return ErrKRange
	}
	if p.Generations < 1 || p.Generations > MaxGenerations {
		return ErrGenerationsRange
	}
	return nil
}

// Series is one simulated run. Counts[0] is the starting population and
// Counts[g] the population after g generations.
type Series struct {
	Params Params
	Counts []int64
}

// Count returns the population at generation g, clamped to the series bounds.
func (s *Series) Count(g int) int64 {
	if g < 0 {
		g = 0
	}
	if g >= len(s.Counts) {
		g = len(s.Counts) - 1
	}
	return s.Counts[g]
}

func (s *Series) Last() int64 {
	return s.Counts[len(s.Counts)-1]
}

// Generations is the number of growth steps, excluding generation 0.
func (s *Series) Generations() int {
	return len(s.Counts) - 1
}

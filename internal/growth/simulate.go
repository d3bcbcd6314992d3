package growth

import "math"

// Simulate computes the population per generation, including generation 0.
// Every multiplication is overflow-checked; the slider ranges allow
// combinations that blow well past 64 bits.
func Simulate(p Params) (*Series, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	factor := int64(p.Factor())
	counts := make([]int64, 0, p.Generations+1)
	counts = append(counts, int64(p.Start))

	for g := 1; g <= p.Generations; g++ {
		prev := counts[len(counts)-1]
		if prev > math.MaxInt64/factor {
			return nil, &SimError{Generation: g, Count: prev, Wrapped: ErrOverflow}
		}
		counts = append(counts, prev*factor)
	}

	return &Series{Params: p, Counts: counts}, nil
}

// Pow computes base^exp with the same overflow checking, for the
// exponentiation demos.
func Pow(base, exp int) (int64, error) {
	if base < 1 || exp < 0 {
		return 0, ErrKRange
	}
	b := int64(base)
	result := int64(1)
	for i := 0; i < exp; i++ {
		if result > math.MaxInt64/b {
			return 0, ErrOverflow
		}
		result *= b
	}
	return result, nil
}

package sketch

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

// NumberScale maps values linearly from a domain onto a pixel range. Reversed
// ranges are fine, which is how values get flipped onto the y axis.
type NumberScale struct {
	domain Range
	scale  Range
}

func NumberScaler(domain, scale Range) NumberScale {
	return NumberScale{
		domain: domain,
		scale:  scale,
	}
}

func (s NumberScale) Scale(v float64) float64 {
	if s.domain.Len() == 0 {
		return s.scale.F
	}
	return s.scale.F + (v-s.domain.F)*s.scale.Len()/s.domain.Len()
}

// Ticks returns n values walking the domain from its top value down to its
// bottom value in even steps.
func (s NumberScale) Ticks(n int) []float64 {
	if n < 2 {
		return []float64{s.domain.T}
	}
	var (
		all  = make([]float64, n)
		step = s.domain.Len() / float64(n-1)
	)
	for i := 0; i < n; i++ {
		all[i] = s.domain.T - float64(i)*step
	}
	return all
}

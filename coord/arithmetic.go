package coord

// Add returns the componentwise sum of c and other.
func (c Coord) Add(other Coord) (Coord, error) {
	if err := checkDims(c, other); err != nil {
		return Coord{}, err
	}
	out := make([]int64, c.Dim())
	for i := range out {
		out[i] = c.vals[i] + other.vals[i]
	}
	return Coord{vals: out}, nil
}

// Sub returns the componentwise difference c - other.
func (c Coord) Sub(other Coord) (Coord, error) {
	if err := checkDims(c, other); err != nil {
		return Coord{}, err
	}
	out := make([]int64, c.Dim())
	for i := range out {
		out[i] = c.vals[i] - other.vals[i]
	}
	return Coord{vals: out}, nil
}

// Neg returns the componentwise negation of c.
func (c Coord) Neg() Coord {
	out := make([]int64, c.Dim())
	for i, v := range c.vals {
		out[i] = -v
	}
	return Coord{vals: out}
}

// Mul returns the componentwise (Hadamard) product of c and other.
func (c Coord) Mul(other Coord) (Coord, error) {
	if err := checkDims(c, other); err != nil {
		return Coord{}, err
	}
	out := make([]int64, c.Dim())
	for i := range out {
		out[i] = c.vals[i] * other.vals[i]
	}
	return Coord{vals: out}, nil
}

// MulScalar returns c scaled componentwise by k.
func (c Coord) MulScalar(k int64) Coord {
	out := make([]int64, c.Dim())
	for i, v := range c.vals {
		out[i] = v * k
	}
	return Coord{vals: out}
}

// FloorDiv returns the componentwise floor integer division of c by
// other: each quotient is rounded toward negative infinity. A divisor
// component of zero panics, matching the standard library's own
// division-by-zero behavior.
func (c Coord) FloorDiv(other Coord) (Coord, error) {
	if err := checkDims(c, other); err != nil {
		return Coord{}, err
	}
	out := make([]int64, c.Dim())
	for i := range out {
		a, b := c.vals[i], other.vals[i]
		q := a / b
		if a%b != 0 && (a < 0) != (b < 0) {
			q--
		}
		out[i] = q
	}
	return Coord{vals: out}, nil
}

// DivScalar returns c with every component divided by k.
func (c Coord) DivScalar(k int64) Coord {
	out := make([]int64, c.Dim())
	for i, v := range c.vals {
		out[i] = v / k
	}
	return Coord{vals: out}
}

// Min returns the componentwise minimum of c and other.
func (c Coord) Min(other Coord) (Coord, error) {
	if err := checkDims(c, other); err != nil {
		return Coord{}, err
	}
	out := make([]int64, c.Dim())
	for i := range out {
		if c.vals[i] < other.vals[i] {
			out[i] = c.vals[i]
		} else {
			out[i] = other.vals[i]
		}
	}
	return Coord{vals: out}, nil
}

// Max returns the componentwise maximum of c and other.
func (c Coord) Max(other Coord) (Coord, error) {
	if err := checkDims(c, other); err != nil {
		return Coord{}, err
	}
	out := make([]int64, c.Dim())
	for i := range out {
		if c.vals[i] > other.vals[i] {
			out[i] = c.vals[i]
		} else {
			out[i] = other.vals[i]
		}
	}
	return Coord{vals: out}, nil
}

// LessEq reports whether c <= other componentwise.
func (c Coord) LessEq(other Coord) (bool, error) {
	if err := checkDims(c, other); err != nil {
		return false, err
	}
	for i, v := range c.vals {
		if v > other.vals[i] {
			return false, nil
		}
	}
	return true, nil
}

// Less reports whether c < other componentwise (strict on every axis).
func (c Coord) Less(other Coord) (bool, error) {
	if err := checkDims(c, other); err != nil {
		return false, err
	}
	for i, v := range c.vals {
		if v >= other.vals[i] {
			return false, nil
		}
	}
	return true, nil
}

// IsMultipleOf reports whether every component of c is evenly divisible
// by the corresponding component of other.
func (c Coord) IsMultipleOf(other Coord) (bool, error) {
	if err := checkDims(c, other); err != nil {
		return false, err
	}
	for i, v := range c.vals {
		d := other.vals[i]
		if d == 0 || v%d != 0 {
			return false, nil
		}
	}
	return true, nil
}

// CeilDivMultiple returns, for each axis i with c[i] > 0 and
// step[i] > 0, the smallest multiple of step[i] that is >= c[i]; for
// c[i] <= 0 the formula below yields step[i]. It implements the
// "round up to a multiple of the write shape" rule from the level
// stride computation: ((l-1)/w + 1) * w for l, w > 0.
func (c Coord) CeilDivMultiple(step Coord) (Coord, error) {
	if err := checkDims(c, step); err != nil {
		return Coord{}, err
	}
	out := make([]int64, c.Dim())
	for i, l := range c.vals {
		w := step.vals[i]
		out[i] = ((l-1)/w + 1) * w
	}
	return Coord{vals: out}, nil
}

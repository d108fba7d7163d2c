package roi

import "github.com/blockwise/scheduler/coord"

// ContainsPoint reports whether p lies within r under half-open
// semantics: begin <= p < end.
func (r Roi) ContainsPoint(p coord.Coord) (bool, error) {
	ge, err := r.Begin().LessEq(p)
	if err != nil {
		return false, err
	}
	if !ge {
		return false, nil
	}
	lt, err := p.Less(r.End())
	if err != nil {
		return false, err
	}
	return lt, nil
}

// Contains reports whether other lies entirely within r:
// r.begin <= other.begin && other.end <= r.end. An empty other is
// contained whenever its origin lies within r's bounds.
func (r Roi) Contains(other Roi) (bool, error) {
	beginOK, err := r.Begin().LessEq(other.Begin())
	if err != nil {
		return false, err
	}
	if !beginOK {
		return false, nil
	}
	endOK, err := other.End().LessEq(r.End())
	if err != nil {
		return false, err
	}
	return endOK, nil
}

// Intersect returns the intersection of r and other: the componentwise
// max of their begins and min of their ends, with shape clamped at
// zero on any axis where the regions do not overlap.
func (r Roi) Intersect(other Roi) (Roi, error) {
	begin, err := r.Begin().Max(other.Begin())
	if err != nil {
		return Roi{}, err
	}
	end, err := r.End().Min(other.End())
	if err != nil {
		return Roi{}, err
	}
	shape, err := end.Sub(begin)
	if err != nil {
		return Roi{}, err
	}
	zero := coord.Repeat(shape.Dim(), 0)
	shape, err = shape.Max(zero)
	if err != nil {
		return Roi{}, err
	}
	return Roi{offset: begin, shape: shape}, nil
}

// Translate returns r shifted by delta.
func (r Roi) Translate(delta coord.Coord) (Roi, error) {
	offset, err := r.offset.Add(delta)
	if err != nil {
		return Roi{}, err
	}
	return Roi{offset: offset, shape: r.shape}, nil
}

// Grow returns a new Roi with offset -= amountNeg and shape +=
// amountNeg + amountPos. Components of amountNeg/amountPos may be
// negative, which shrinks the Roi on that side. The resulting shape is
// not validated and may have negative components.
func (r Roi) Grow(amountNeg, amountPos coord.Coord) (Roi, error) {
	offset, err := r.offset.Sub(amountNeg)
	if err != nil {
		return Roi{}, err
	}
	context, err := amountNeg.Add(amountPos)
	if err != nil {
		return Roi{}, err
	}
	shape, err := r.shape.Add(context)
	if err != nil {
		return Roi{}, err
	}
	return Roi{offset: offset, shape: shape}, nil
}

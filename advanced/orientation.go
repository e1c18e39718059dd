package advanced

// Side is the coarse orientation of a point against a directed segment.
type Side int

const (
	OnSegment Side = iota
	LeftOf
	RightOf
)

func (s Side) String() string {
	switch s {
	case OnSegment:
		return "OnSegment"
	case LeftOf:
		return "Left"
	case RightOf:
		return "Right"
	}
	return "Side(?)"
}

// Location refines Side for collinear points.
type Location int

const (
	Left Location = iota
	Right
	Behind  // collinear, before Start
	Beyond  // collinear, past End
	Between // collinear, strictly between the endpoints
	Start
	End
)

func (l Location) String() string {
	switch l {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Behind:
		return "Behind"
	case Beyond:
		return "Beyond"
	case Between:
		return "Between"
	case Start:
		return "Start"
	case End:
		return "End"
	}
	return "Location(?)"
}

// SideOf is the fundamental orientation predicate every containment test
// reduces to: the sign of (end-start) x (p-start). Note that "OnSegment" means
// on the infinite line through the segment; LocationOf tells the cases apart.
func (tol Tolerance) SideOf(p, start, end Point) Side {
	cross := end.Sub(start).Cross(p.Sub(start))
	switch {
	case tol.Zero(cross):
		return OnSegment
	case cross > 0:
		return LeftOf
	}
	return RightOf
}

// LocationOf classifies p against the directed segment. Collinear points are
// split into five cases by comparing their projection against the segment:
// the endpoints first (within tolerance), then the direction test for Behind,
// then the length test for Beyond.
func (tol Tolerance) LocationOf(p, start, end Point) Location {
	switch tol.SideOf(p, start, end) {
	case LeftOf:
		return Left
	case RightOf:
		return Right
	}

	if tol.PointsEqual(p, start) {
		return Start
	}
	if tol.PointsEqual(p, end) {
		return End
	}

	a := end.Sub(start)
	b := p.Sub(start)
	if a.X*b.X < 0 || a.Y*b.Y < 0 {
		return Behind
	}
	if a.LengthSquared() < b.LengthSquared() {
		return Beyond
	}
	return Between
}

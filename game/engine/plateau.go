package engine

// PlateauOption configures optional plateau behaviour
type PlateauOption func(*Plateau)

// WithCollisionDetection makes the plateau track which rover rests on which
// cell and reject moves or landings onto an occupied cell.
func WithCollisionDetection() PlateauOption {
	return func(p *Plateau) {
		p.occupied = make(map[Position]*Rover)
	}
}

// Plateau is the bounded grid rovers move on, from (0,0) to (MaxX, MaxY)
type Plateau struct {
	name     string
	maxX     int
	maxY     int
	occupied map[Position]*Rover // nil unless collision detection is enabled
}

// NewPlateau creates a plateau with the given upper-right corner
func NewPlateau(name string, maxX, maxY int, opts ...PlateauOption) (*Plateau, error) {
	if maxX < 0 || maxY < 0 {
		return nil, NewParseError("coordinates must be non-negative")
	}

	p := &Plateau{
		name: name,
		maxX: maxX,
		maxY: maxY,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Name returns the plateau name
func (p *Plateau) Name() string {
	return p.name
}

// MaxX returns the largest valid x coordinate
func (p *Plateau) MaxX() int {
	return p.maxX
}

// MaxY returns the largest valid y coordinate
func (p *Plateau) MaxY() int {
	return p.maxY
}

// CollisionDetection reports whether the plateau tracks occupancy
func (p *Plateau) CollisionDetection() bool {
	return p.occupied != nil
}

// VerifyTarget checks that (x, y) is inside the plateau and, with collision
// detection, not held by a rover other than mover. mover may be nil for a
// landing. Returned errors are not annotated with a rover name.
func (p *Plateau) VerifyTarget(x, y int, mover *Rover) error {
	target := Position{X: x, Y: y}

	switch {
	case x < 0:
		return &BoundaryError{Edge: LeftEdge, Target: target}
	case x > p.maxX:
		return &BoundaryError{Edge: RightEdge, Target: target}
	case y < 0:
		return &BoundaryError{Edge: LowerEdge, Target: target}
	case y > p.maxY:
		return &BoundaryError{Edge: UpperEdge, Target: target}
	}

	if occupant, ok := p.occupied[target]; ok && occupant != mover {
		return &CollisionError{Occupant: occupant.Name(), Target: target}
	}

	return nil
}

// Step returns the cell one move from `from` in direction o. A move that
// would leave the plateau fails with the edge it crosses, checked before
// the coordinates are added.
func (p *Plateau) Step(from Position, o Orientation) (Position, error) {
	d := o.Delta()

	var edge Edge
	switch {
	case d.X < 0 && from.X <= 0:
		edge = LeftEdge
	case d.X > 0 && from.X >= p.maxX:
		edge = RightEdge
	case d.Y < 0 && from.Y <= 0:
		edge = LowerEdge
	case d.Y > 0 && from.Y >= p.maxY:
		edge = UpperEdge
	default:
		return from.Add(d), nil
	}

	return from, &BoundaryError{Edge: edge, Target: from.Add(d)}
}

// UpdateOccupancy moves the rover's occupancy entry from previous (if any) to
// its current position. It is a no-op without collision detection.
func (p *Plateau) UpdateOccupancy(r *Rover, previous *Position) {
	if p.occupied == nil {
		return
	}

	if previous != nil && p.occupied[*previous] == r {
		delete(p.occupied, *previous)
	}
	p.occupied[r.Position()] = r
}

// OccupantAt returns the rover resting at pos, if any
func (p *Plateau) OccupantAt(pos Position) (*Rover, bool) {
	r, ok := p.occupied[pos]
	return r, ok
}

// OccupiedCount returns the number of occupied cells
func (p *Plateau) OccupiedCount() int {
	return len(p.occupied)
}

package gamemath

// Body is a moving rectangle with a velocity in pixels per fixed step.
type Body struct {
	Rect
	VX, VY   float64
	OnGround bool
}

// Controls are the held movement inputs for one tick.
type Controls struct {
	Left, Right, Jump bool
}

// Tuning holds the movement constants. Speeds and gravity are per FixedStep
// seconds of simulation.
type Tuning struct {
	MoveSpeed float64
	JumpPower float64
	Gravity   float64
	FixedStep float64
}

// World supplies the static rectangles a body can collide with.
type World interface {
	// Solids returns, in level order, every solid that may overlap area. It
	// may return extra rectangles but must not miss an overlapping one.
	Solids(area Rect) []Rect
}

// StaticWorld checks every rectangle on every call.
type StaticWorld []Rect

func (w StaticWorld) Solids(Rect) []Rect { return w }

// Step advances b by dt seconds of input-driven movement against w.
//
// Horizontal speed is set straight from input, gravity only pulls while
// airborne, and the two axes are moved and resolved separately, vertical
// first. Holding jump re-applies the impulse on every grounded tick.
func Step(b *Body, in Controls, t Tuning, dt float64, w World) {
	k := 1.0
	if dt > 0 && t.FixedStep > 0 {
		k = dt / t.FixedStep
	}

	if in.Jump && b.OnGround {
		b.VY = -t.JumpPower
	}

	switch {
	case in.Right:
		b.VX = t.MoveSpeed
	case in.Left:
		b.VX = -t.MoveSpeed
	default:
		b.VX = 0
	}

	if !b.OnGround {
		b.VY += t.Gravity * k
	}

	b.OnGround = false

	b.Y += b.VY * k
	b.Resolve(0, b.VY, w.Solids(b.Rect))

	b.X += b.VX * k
	b.Resolve(b.VX, 0, w.Solids(b.Rect))
}

// Resolve pushes b out of every solid it overlaps, along the axis of the
// motion (dx, dy) that caused the overlap. Solids are handled in order and
// each sees the position left by the previous one.
func (b *Body) Resolve(dx, dy float64, solids []Rect) {
	for _, s := range solids {
		if !b.Overlaps(s) {
			continue
		}
		if dx > 0 {
			b.X = s.Left() - b.W
		}
		if dx < 0 {
			b.X = s.Right()
		}
		if dy > 0 {
			b.Y = s.Top() - b.H
			b.OnGround = true
			b.VY = 0
		}
		if dy < 0 {
			b.Y = s.Bottom()
			b.VY = 0
		}
	}
}

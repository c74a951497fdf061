package simple

// Absolute canvas coordinate.  Comparable, so it keys maps directly.
type Position struct {
    X int
    Y int
}

// Integer 2-vector relative to a disk center.  Same shape as Position but
// kept as its own type so normalized and absolute coordinates don't mix.
type Offset struct {
    X int
    Y int
}

func (p Position) Add(o Offset) Position {
    return Position{p.X + o.X, p.Y + o.Y}
}

// The offset of p relative to center.
func (p Position) Sub(center Position) Offset {
    return Offset{p.X - center.X, p.Y - center.Y}
}

func (o Offset) Add(o2 Offset) Offset {
    return Offset{o.X + o2.X, o.Y + o2.Y}
}

func Manhattan(a Position, b Position) int {
    r := 0
    if a.X > b.X {
        r += a.X - b.X
    } else {
        r += b.X - a.X
    }
    if a.Y > b.Y {
        r += a.Y - b.Y
    } else {
        r += b.Y - a.Y
    }
    return r
}

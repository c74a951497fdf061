package simple

type Move int
const (
    Stay Move = iota
    Up
    Down
    Left
    Right
)
var MoveNames = map[Move]string {
    Stay: "Stay",
    Up: "Up",
    Down: "Down",
    Left: "Left",
    Right: "Right",
}

// Up is +y.  Stay is deliberately absent: it is the default when no
// direction applies, never something we iterate over.
var MoveVectors = map[Move]Offset {
    Up: Offset{0, 1},
    Right: Offset{1, 0},
    Left: Offset{-1, 0},
    Down: Offset{0, -1},
}

// Iteration order when trying directions.  Shuffle a copy, don't range the
// map, so callers control their own randomness.
var Directions = []Move{Up, Right, Left, Down}

func (m Move) String() string {
    return MoveNames[m]
}

func (m Move) Vector() Offset {
    if m == Stay {
        return Offset{0, 0}
    }
    return MoveVectors[m]
}

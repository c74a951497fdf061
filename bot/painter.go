package bot

import (
    "fmt"
    "math/rand"
    "local/fresco/log"
    "local/fresco/message"
    "local/fresco/simple"
)

type AgentState int
const (
    Searching AgentState = iota
    Travelling
    Creating
    Admiring
)
var stateNames = map[AgentState]string {
    Searching: "Searching",
    Travelling: "Travelling",
    Creating: "Creating",
    Admiring: "Admiring",
}

// The disk currently being drawn.  At most one is active.
type Circle struct {
    Center simple.Position
    Radius int
}

// PainterBrain paints filled disks.  It searches the canvas for room, walks
// to the chosen center, fills the disk tile by tile without ever stepping
// outside it, then walks back to the center to admire the work before
// searching again.
type PainterBrain struct {
    identity simple.Identity
    gameId int
    settings Settings
    rng *rand.Rand
    disks simple.DiskCache

    seat int
    id int // grid ownership value, seat+1
    size int
    round int
    position simple.Position

    state AgentState
    target simple.Position
    hasTarget bool
    circle *Circle

    // Classification passes spent by the latest findSpace call.
    scans int

    // Offsets of the active circle not yet stepped on.  Always a subset of
    // the circle's disk; empty exactly when the disk is fully painted.
    remaining map[simple.Offset]bool
}

func NewPainterBrain(i simple.Identity, gameId int, s Settings, seed int64) *PainterBrain {
    if s == (Settings{}) {
        s = defaultSettings
    }
    return &PainterBrain{
        identity: i,
        gameId: gameId,
        settings: s,
        rng: rand.New(rand.NewSource(seed)),
        disks: simple.NewDiskCache(),
        state: Searching,
    }
}

func (b *PainterBrain) handleStartGame(d message.NotifyStartGameData) {
    for i, s := range d.Seats {
        if s == b.identity {
            b.seat = i
            break
        }
    }
    b.id = b.seat + 1
    b.size = d.GridSize
    b.position = d.Positions[b.seat]
    b.reset()
}

func (b *PainterBrain) handleRound(d message.NotifyRoundData) []message.Client {
    if d.Round == 1 {
        b.size = d.Grid.Size()
        b.reset()
    }
    b.round = d.Round
    b.position = d.Positions[b.seat]

    move := b.decide(d.Grid)
    return []message.Client{message.NewDoMove(d.Round, move)}
}

func (b *PainterBrain) reset() {
    b.setState(Searching)
    b.circle = nil
    b.remaining = nil
    b.hasTarget = false
}

// One decision per round.  Each phase may complete without consuming the
// move, in which case the next phase's check runs in the same round: a
// successful search flows straight into Travelling's arrival check, a
// finished fill straight into Admiring's.
func (b *PainterBrain) decide(grid simple.Grid) simple.Move {
    move := simple.Stay
    chosen := false

    if b.state == Searching {
        radius := b.settings.MinRadius +
            b.rng.Intn(b.settings.MaxRadius-b.settings.MinRadius+1)
        if center, ok := b.findSpace(b.position, grid, radius); ok {
            b.target = center
            b.hasTarget = true
            b.circle = &Circle{Center: center, Radius: radius}
            b.remaining = make(map[simple.Offset]bool)
            for o := range b.disks.Disk(radius).Offsets {
                b.remaining[o] = true
            }
            b.setState(Travelling)
        }
        // On failure stay Searching; next round draws a fresh radius.
    }

    if b.state == Travelling {
        if b.position == b.target {
            b.setState(Creating)
        } else {
            move = b.moveToTarget()
            chosen = true
        }
    }

    if b.state == Creating {
        if len(b.remaining) == 0 {
            b.target = b.circle.Center
            b.hasTarget = true
            b.setState(Admiring)
        } else {
            move = b.nextFillMove()
            chosen = true
        }
    }

    if b.state == Admiring {
        if b.position == b.target {
            b.circle = nil
            b.setState(Searching)
        } else {
            // Still inside the finished disk; don't smear a neighbor's
            // tiles on the way back to center.
            move = b.carefulMoveToTarget()
            chosen = true
        }
    }

    if chosen && b.circle != nil {
        // Whatever tile this move lands on no longer needs a visit.
        // Removing an absent offset is a no-op.
        landed := b.position.Add(move.Vector()).Sub(b.circle.Center)
        delete(b.remaining, landed)
    }
    if !chosen {
        move = simple.Stay
    }
    return move
}

// Direct walk, one axis at a time, priority right/left/up/down.  Only legal
// outside a circle or when leaving one is fine; inside an active fill use
// carefulMoveToTarget.
func (b *PainterBrain) moveToTarget() simple.Move {
    if b.target.X > b.position.X {
        return simple.Right
    } else if b.target.X < b.position.X {
        return simple.Left
    } else if b.target.Y > b.position.Y {
        return simple.Up
    }
    return simple.Down
}

func (b *PainterBrain) setState(s AgentState) {
    if b.state != s {
        b.debugf("State: %s", stateNames[s])
    }
    b.state = s
}

func (b *PainterBrain) debugf(msg string, fargs ...interface{}) {
    log.Debug(fmt.Sprintf("(G%d) (Bot%s) %s", b.gameId, b.identity, msg), fargs...)
}

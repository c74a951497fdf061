package bot

import (
    "testing"
    "local/fresco/message"
    "local/fresco/simple"
)

// A tiny stand-in for the game loop: one painter on an otherwise idle
// canvas.  Applies the brain's moves with the same clamp-then-claim rule
// the real game uses.
type soloGame struct {
    grid simple.Grid
    positions []simple.Position
    round int
}

func newSoloGame(size int, start simple.Position) *soloGame {
    g := &soloGame{
        grid: simple.NewGrid(size),
        positions: []simple.Position{start, {X: 0, Y: 0}, {X: size - 1, Y: size - 1}},
        round: 0,
    }
    for i, p := range g.positions {
        g.grid.Set(p, i+1)
    }
    return g
}

func (g *soloGame) step(b *PainterBrain) simple.Move {
    g.round++
    resp := b.handleRound(message.NotifyRoundData{
        Round: g.round,
        Grid: g.grid.Copy(),
        Positions: append([]simple.Position{}, g.positions...),
    })
    if len(resp) != 1 {
        panic("brain answered with more than one message")
    }
    d := resp[0].Data.(message.DoMoveData)
    if d.Round != g.round {
        panic("brain answered the wrong round")
    }

    size := g.grid.Size()
    p := g.positions[0].Add(d.Move.Vector())
    if p.X < 0 {
        p.X = 0
    }
    if p.X > size-1 {
        p.X = size - 1
    }
    if p.Y < 0 {
        p.Y = 0
    }
    if p.Y > size-1 {
        p.Y = size - 1
    }
    g.positions[0] = p
    if simple.Claimable(1, g.grid.At(p)) {
        g.grid.Set(p, 1)
    }
    return d.Move
}

func startBrain(b *PainterBrain, g *soloGame) {
    b.handleStartGame(message.NotifyStartGameData{
        GridSize: g.grid.Size(),
        Rounds: 300,
        Grid: g.grid.Copy(),
        Seats: []simple.Identity{
            b.identity,
            simple.NewBotIdentity("B2", "Michelangelo (Bot)"),
            simple.NewBotIdentity("B3", "Raphael (Bot)"),
        },
        Positions: append([]simple.Position{}, g.positions...),
    })
}

// Walks one brain through a full Searching -> Travelling -> Creating ->
// Admiring -> Searching lap and checks the circle it drew is completely
// painted.
func TestPainterPaintsAWholeCircle(t *testing.T) {
    radius := 2
    b := NewPainterBrain(simple.NewBotIdentity("B1", "LeaRoundo (Bot)"), 1,
        Settings{MinRadius: radius, MaxRadius: radius, SearchBudget: 1000}, 5)
    g := newSoloGame(20, simple.Position{X: 10, Y: 10})
    startBrain(b, g)

    seen := map[AgentState]bool{}
    var circle Circle
    captured := false
    prevDist := -1
    for round := 0; round < 500; round++ {
        wasTravelling := b.state == Travelling
        g.step(b)
        seen[b.state] = true

        // Travelling walks straight at the center: one tile closer per round.
        if wasTravelling && b.state == Travelling {
            d := simple.Manhattan(g.positions[0], b.target)
            if prevDist >= 0 && d != prevDist-1 {
                t.Fatalf("round %d: distance to target went %d -> %d", round, prevDist, d)
            }
            prevDist = d
        } else {
            prevDist = -1
        }

        if b.circle != nil && !captured {
            circle = *b.circle
            captured = true
        }
        if captured && b.state == Searching && b.circle == nil {
            break
        }
    }

    for _, s := range []AgentState{Searching, Travelling, Creating, Admiring} {
        if !seen[s] {
            t.Fatalf("never entered %s", stateNames[s])
        }
    }
    if !captured {
        t.Fatal("no circle was ever chosen")
    }
    if b.state != Searching || b.circle != nil {
        t.Fatal("lap never finished")
    }

    for o := range b.disks.Disk(circle.Radius).Offsets {
        p := circle.Center.Add(o)
        if g.grid.At(p) != 1 {
            t.Errorf("tile (%d,%d) of the circle at (%d,%d) r%d left unpainted",
                p.X, p.Y, circle.Center.X, circle.Center.Y, circle.Radius)
        }
    }

    // Admiring walks back to the center.
    if g.positions[0] != circle.Center {
        t.Errorf("finished at %v, want the center %v", g.positions[0], circle.Center)
    }
}

func TestPainterSameSeedSameMoves(t *testing.T) {
    run := func() []simple.Move {
        b := NewPainterBrain(simple.NewBotIdentity("B1", "LeaRoundo (Bot)"), 1,
            Settings{MinRadius: 1, MaxRadius: 3, SearchBudget: 100}, 1234)
        g := newSoloGame(20, simple.Position{X: 7, Y: 12})
        startBrain(b, g)

        moves := make([]simple.Move, 0, 200)
        for round := 0; round < 200; round++ {
            moves = append(moves, g.step(b))
        }
        return moves
    }

    a := run()
    b := run()
    for i := range a {
        if a[i] != b[i] {
            t.Fatalf("same seed diverged at round %d: %s vs %s", i, a[i], b[i])
        }
    }
}

func TestPainterDefaultsEmptySettings(t *testing.T) {
    b := NewPainterBrain(simple.NewBotIdentity("B1", "LeaRoundo (Bot)"), 1, Settings{}, 1)
    if b.settings != defaultSettings {
        t.Errorf("empty settings not defaulted: %+v", b.settings)
    }
}

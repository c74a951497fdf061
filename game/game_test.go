package game

import (
    "testing"
    "local/fresco/client"
    "local/fresco/message"
    "local/fresco/simple"
)

func testConfig(size int, rounds int) simple.Config {
    return simple.Config{
        Name: "beta",
        GridSize: size,
        GameRounds: rounds,
        RoundMillis: 60000,
    }
}

func newRunningGame(t *testing.T, size int, rounds int) *Game {
    t.Helper()
    g := New(1, simple.NewGuestIdentity("G1"), testConfig(size, rounds), nil, nil)

    g.players = make([]*Player, Seats)
    for i := 0; i < Seats; i++ {
        g.seats[i] = simple.NewGuestIdentity("G1")
        g.players[i] = &Player{Client: client.EmptyClient{}, Seat: i, Bot: false}
    }
    g.status = Running
    g.newStatus = Running

    g.grid = simple.NewGrid(size)
    g.positions = make([]simple.Position, Seats)
    g.round = 1
    g.moves = make([]simple.Move, Seats)
    g.answered = make([]bool, Seats)
    g.applied = make([]simple.Move, Seats)
    return g
}

func TestApplyRoundMovesAndClaims(t *testing.T) {
    g := newRunningGame(t, 8, 10)
    g.positions[0] = simple.Position{X: 3, Y: 3}
    g.positions[1] = simple.Position{X: 5, Y: 5}
    g.positions[2] = simple.Position{X: 1, Y: 1}

    g.moves[0] = simple.Right
    g.answered[0] = true
    g.moves[1] = simple.Up
    g.answered[1] = true
    // Seat 2 never answered; that counts as Stay.

    g.applyRound()

    if g.positions[0] != (simple.Position{X: 4, Y: 3}) {
        t.Errorf("seat 0 at %v, want (4,3)", g.positions[0])
    }
    if g.positions[1] != (simple.Position{X: 5, Y: 6}) {
        t.Errorf("seat 1 at %v, want (5,6)", g.positions[1])
    }
    if g.positions[2] != (simple.Position{X: 1, Y: 1}) {
        t.Errorf("seat 2 at %v, want (1,1)", g.positions[2])
    }

    if g.grid.At(simple.Position{X: 4, Y: 3}) != 1 {
        t.Errorf("seat 0 did not claim its tile")
    }
    if g.grid.At(simple.Position{X: 5, Y: 6}) != 2 {
        t.Errorf("seat 1 did not claim its tile")
    }
    if g.grid.At(simple.Position{X: 1, Y: 1}) != 3 {
        t.Errorf("seat 2 did not claim its tile in place")
    }

    if g.applied[0] != simple.Right || g.applied[1] != simple.Up || g.applied[2] != simple.Stay {
        t.Errorf("applied moves %v, want [Right Up Stay]", g.applied)
    }
    if g.round != 2 {
        t.Errorf("round %d after apply, want 2", g.round)
    }
    for i, a := range g.answered {
        if a {
            t.Errorf("seat %d still marked answered", i)
        }
    }
}

func TestApplyRoundClampsAtEdges(t *testing.T) {
    g := newRunningGame(t, 8, 10)
    g.positions[0] = simple.Position{X: 0, Y: 0}
    g.positions[1] = simple.Position{X: 7, Y: 7}
    g.positions[2] = simple.Position{X: 4, Y: 4}

    g.moves[0] = simple.Left
    g.answered[0] = true
    g.moves[1] = simple.Up
    g.answered[1] = true
    g.moves[2] = simple.Stay
    g.answered[2] = true

    g.applyRound()

    if g.positions[0] != (simple.Position{X: 0, Y: 0}) {
        t.Errorf("seat 0 walked off the left edge: %v", g.positions[0])
    }
    if g.positions[1] != (simple.Position{X: 7, Y: 7}) {
        t.Errorf("seat 1 walked off the top edge: %v", g.positions[1])
    }
}

// Moving onto another painter's tile only claims it when the cycle allows:
// 1 over 2, 2 over 3, 3 over 1.
func TestApplyRoundRespectsCycle(t *testing.T) {
    g := newRunningGame(t, 8, 10)
    g.positions[0] = simple.Position{X: 2, Y: 2}
    g.positions[1] = simple.Position{X: 5, Y: 2}
    g.positions[2] = simple.Position{X: 2, Y: 5}

    // Seat 0 (id 1) steps onto a tile of id 3 and must not take it.
    g.grid.Set(simple.Position{X: 3, Y: 2}, 3)
    g.moves[0] = simple.Right
    g.answered[0] = true

    // Seat 1 (id 2) steps onto a tile of id 3 and takes it.
    g.grid.Set(simple.Position{X: 6, Y: 2}, 3)
    g.moves[1] = simple.Right
    g.answered[1] = true

    g.moves[2] = simple.Stay
    g.answered[2] = true

    g.applyRound()

    if g.grid.At(simple.Position{X: 3, Y: 2}) != 3 {
        t.Errorf("id 1 overwrote id 3")
    }
    if g.grid.At(simple.Position{X: 6, Y: 2}) != 2 {
        t.Errorf("id 2 failed to overwrite id 3")
    }
}

func TestApplyRoundScoresAndCompletion(t *testing.T) {
    g := newRunningGame(t, 8, 1)
    g.positions[0] = simple.Position{X: 2, Y: 2}
    g.positions[1] = simple.Position{X: 5, Y: 5}
    g.positions[2] = simple.Position{X: 6, Y: 6}
    g.grid.Set(simple.Position{X: 2, Y: 2}, 1)
    g.grid.Set(simple.Position{X: 5, Y: 5}, 2)
    g.grid.Set(simple.Position{X: 6, Y: 6}, 3)

    g.moves[0] = simple.Right
    g.answered[0] = true
    g.moves[1] = simple.Stay
    g.answered[1] = true
    g.moves[2] = simple.Stay
    g.answered[2] = true

    g.applyRound()

    if g.scores[0] != 2 || g.scores[1] != 1 || g.scores[2] != 1 {
        t.Errorf("scores %v, want [2 1 1]", g.scores)
    }
    if g.newStatus != Complete {
        t.Errorf("game not complete after its final round")
    }
}

// A joiner's snapshot must not share backing arrays with the live game;
// clients marshal it on their own goroutines while rounds keep applying.
func TestFullGameSnapshotIsDetached(t *testing.T) {
    g := newRunningGame(t, 8, 10)
    g.grid.Set(simple.Position{X: 2, Y: 2}, 1)
    g.positions[0] = simple.Position{X: 2, Y: 2}

    m := g.fullGame()
    d := m.Data.(message.NotifyFullGameData)

    g.grid.Set(simple.Position{X: 2, Y: 2}, 3)
    g.positions[0] = simple.Position{X: 7, Y: 7}
    g.scores[0] = 99

    if d.Grid.At(simple.Position{X: 2, Y: 2}) != 1 {
        t.Errorf("snapshot grid aliases the live grid")
    }
    if d.Positions[0] != (simple.Position{X: 2, Y: 2}) {
        t.Errorf("snapshot positions alias the live positions")
    }
    if d.Scores[0] != 0 {
        t.Errorf("snapshot scores alias the live scores")
    }
}

func TestWinner(t *testing.T) {
    g := newRunningGame(t, 8, 1)

    g.scores = []int{4, 4, 2}
    if w := g.winner(); w != -1 {
        t.Errorf("winner %d on a tied game, want -1", w)
    }

    g.scores = []int{4, 9, 2}
    if w := g.winner(); w != 1 {
        t.Errorf("winner %d, want 1", w)
    }

    g.scores = []int{2, 2, 7}
    if w := g.winner(); w != 2 {
        t.Errorf("winner %d, want 2", w)
    }
}

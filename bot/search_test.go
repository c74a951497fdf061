package bot

import (
    "testing"
    "local/fresco/simple"
)

func newTestBrain(s Settings, seed int64) *PainterBrain {
    b := NewPainterBrain(simple.NewBotIdentity("B1", "LeaRoundo (Bot)"), 1, s, seed)
    b.seat = 0
    b.id = 1
    return b
}

func TestFindSpaceEmptyGrid(t *testing.T) {
    size := 20
    radius := 2
    b := newTestBrain(Settings{MinRadius: radius, MaxRadius: radius, SearchBudget: 1000}, 7)
    b.size = size
    grid := simple.NewGrid(size)

    center, ok := b.findSpace(simple.Position{X: 10, Y: 10}, grid, radius)
    if !ok {
        t.Fatalf("no space found on an empty %dx%d grid", size, size)
    }
    if center.X-radius < 1 || center.X+radius > size-2 ||
            center.Y-radius < 1 || center.Y+radius > size-2 {
        t.Errorf("center (%d,%d) lets radius %d touch the boundary", center.X, center.Y, radius)
    }
}

// A grid too small to hold the bounding box away from the edges never fits,
// no matter the budget.
func TestFindSpaceGridTooSmall(t *testing.T) {
    size := 5
    radius := 2
    b := newTestBrain(Settings{MinRadius: radius, MaxRadius: radius, SearchBudget: 100000}, 3)
    b.size = size
    grid := simple.NewGrid(size)

    if _, ok := b.findSpace(simple.Position{X: 2, Y: 2}, grid, radius); ok {
        t.Errorf("found space on a %dx%d grid for radius %d", size, size, radius)
    }
}

// Painter 1 cannot claim tiles owned by 3, so a canvas of 3s has no room.
// Tried with a budget smaller than the interior and one big enough to scan
// everything; both must come up empty.
func TestFindSpaceBlockedGrid(t *testing.T) {
    size := 20
    radius := 2
    grid := simple.NewGrid(size)
    for y := 0; y < size; y++ {
        for x := 0; x < size; x++ {
            grid.Set(simple.Position{X: x, Y: y}, 3)
        }
    }

    for _, budget := range []int{10, 1000000} {
        b := newTestBrain(Settings{MinRadius: radius, MaxRadius: radius, SearchBudget: budget}, 11)
        b.size = size
        if _, ok := b.findSpace(simple.Position{X: 10, Y: 10}, grid, radius); ok {
            t.Errorf("budget %d: found space on a fully blocked grid", budget)
        }
    }
}

// The budget bounds work, not just the answer.  On a blocked grid a small
// budget stops after exactly that many classification passes; an unbounded
// search classifies every interior cell once.  Radius 2 on a 20x20 canvas
// leaves a 14x14 interior.
func TestFindSpaceScanCounts(t *testing.T) {
    size := 20
    radius := 2
    interior := size - 2*radius - 2
    grid := simple.NewGrid(size)
    for y := 0; y < size; y++ {
        for x := 0; x < size; x++ {
            grid.Set(simple.Position{X: x, Y: y}, 3)
        }
    }

    b := newTestBrain(Settings{MinRadius: radius, MaxRadius: radius, SearchBudget: 10}, 11)
    b.size = size
    if _, ok := b.findSpace(simple.Position{X: 10, Y: 10}, grid, radius); ok {
        t.Fatalf("found space on a fully blocked grid")
    }
    if b.scans != 10 {
        t.Errorf("%d classification passes under a budget of 10", b.scans)
    }

    b = newTestBrain(Settings{MinRadius: radius, MaxRadius: radius, SearchBudget: 1000000}, 11)
    b.size = size
    if _, ok := b.findSpace(simple.Position{X: 10, Y: 10}, grid, radius); ok {
        t.Fatalf("found space on a fully blocked grid")
    }
    if b.scans != interior*interior {
        t.Errorf("%d classification passes on a full sweep, want %d", b.scans, interior*interior)
    }
}

// One free 5x5 patch on an otherwise hostile canvas.  Radius 2 needs the
// full cross of the patch, so its center is the only valid probe.
func TestFindSpaceFindsLonePatch(t *testing.T) {
    size := 20
    radius := 2
    want := simple.Position{X: 10, Y: 10}

    grid := simple.NewGrid(size)
    for y := 0; y < size; y++ {
        for x := 0; x < size; x++ {
            if x >= want.X-radius && x <= want.X+radius &&
                    y >= want.Y-radius && y <= want.Y+radius {
                continue
            }
            grid.Set(simple.Position{X: x, Y: y}, 3)
        }
    }

    for seed := int64(0); seed < 5; seed++ {
        b := newTestBrain(Settings{MinRadius: radius, MaxRadius: radius, SearchBudget: 100000}, seed)
        b.size = size
        center, ok := b.findSpace(simple.Position{X: 3, Y: 3}, grid, radius)
        if !ok {
            t.Fatalf("seed %d: patch not found", seed)
        }
        if center != want {
            t.Errorf("seed %d: center (%d,%d), want (%d,%d)",
                seed, center.X, center.Y, want.X, want.Y)
        }
    }
}

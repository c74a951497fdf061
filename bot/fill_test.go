package bot

import (
    "testing"
    "local/fresco/simple"
)

// The careful walk may never step outside the active disk, whatever the
// start and target.
func TestCarefulMoveStaysInDisk(t *testing.T) {
    radius := 2
    center := simple.Position{X: 10, Y: 10}
    b := newTestBrain(Settings{MinRadius: radius, MaxRadius: radius, SearchBudget: 50}, 1)
    b.size = 20
    b.circle = &Circle{Center: center, Radius: radius}
    offsets := b.disks.Disk(radius).Offsets

    starts := []simple.Offset{{X: 2, Y: 0}, {X: -1, Y: -2}, {X: 1, Y: 1}}
    targets := []simple.Offset{{X: 0, Y: 0}, {X: -2, Y: 0}, {X: 0, Y: 2}}

    for _, so := range starts {
        for _, to := range targets {
            b.position = center.Add(so)
            b.target = center.Add(to)

            for step := 0; step < 50; step++ {
                if b.position == b.target {
                    break
                }
                m := b.carefulMoveToTarget()
                b.position = b.position.Add(m.Vector())
                if !offsets[b.position.Sub(center)] {
                    t.Fatalf("start %v target %v: stepped outside the disk at %v",
                        so, to, b.position)
                }
            }
            if b.position != b.target {
                t.Errorf("start %v target %v: never arrived", so, to)
            }
        }
    }
}

// Drive decide() through a whole Creating phase and check the walker visits
// (and so would paint) every tile of the disk without leaving it.
func TestFillCoversDisk(t *testing.T) {
    radius := 2
    center := simple.Position{X: 10, Y: 10}
    b := newTestBrain(Settings{MinRadius: radius, MaxRadius: radius, SearchBudget: 50}, 42)
    b.size = 20

    disk := b.disks.Disk(radius)
    b.state = Creating
    b.circle = &Circle{Center: center, Radius: radius}
    b.position = center
    b.hasTarget = false
    b.remaining = make(map[simple.Offset]bool)
    for o := range disk.Offsets {
        b.remaining[o] = true
    }
    delete(b.remaining, simple.Offset{X: 0, Y: 0})

    grid := simple.NewGrid(b.size)
    prev := len(b.remaining)
    for step := 0; step < 300 && b.state == Creating; step++ {
        m := b.decide(grid)
        b.position = b.position.Add(m.Vector())
        if !disk.Offsets[b.position.Sub(center)] {
            t.Fatalf("walker left the disk at %v on step %d", b.position, step)
        }
        if len(b.remaining) > prev {
            t.Fatalf("remaining grew on step %d", step)
        }
        prev = len(b.remaining)
    }

    if b.state == Creating {
        t.Fatalf("fill never finished, %d tiles remaining", len(b.remaining))
    }
    if len(b.remaining) != 0 {
        t.Errorf("left Creating with %d tiles remaining", len(b.remaining))
    }
    if b.state != Admiring {
        t.Errorf("expected Admiring after the fill, got %s", stateNames[b.state])
    }
}

func TestRandomRemainingIsSeedStable(t *testing.T) {
    mk := func(seed int64) *PainterBrain {
        b := newTestBrain(Settings{MinRadius: 2, MaxRadius: 2, SearchBudget: 50}, seed)
        b.circle = &Circle{Center: simple.Position{X: 5, Y: 5}, Radius: 2}
        b.remaining = map[simple.Offset]bool{}
        for o := range b.disks.Disk(2).Offsets {
            b.remaining[o] = true
        }
        return b
    }

    a := mk(99)
    b := mk(99)
    for i := 0; i < 10; i++ {
        if a.randomRemaining() != b.randomRemaining() {
            t.Fatalf("same seed diverged on draw %d", i)
        }
    }
}

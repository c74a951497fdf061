package bot

import (
    "sort"
    "local/fresco/simple"
)

// nextFillMove continues filling the active circle.  Callers guarantee
// remaining is non-empty and a circle is set.
func (b *PainterBrain) nextFillMove() simple.Move {
    normalized := b.position.Sub(b.circle.Center)

    // First choice: an adjacent tile we still need, tried in random order so
    // the fill pattern doesn't streak.
    dirs := make([]simple.Move, len(simple.Directions))
    copy(dirs, simple.Directions)
    b.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
    for _, m := range dirs {
        if b.remaining[normalized.Add(m.Vector())] {
            return m
        }
    }

    // Nothing adjacent.  A target we are already standing on is stale and
    // must be replaced.  Unclear when this happens in practice; kept as a
    // harmless safeguard.
    if b.hasTarget && b.position == b.target {
        b.hasTarget = false
    }
    if !b.hasTarget {
        b.target = b.circle.Center.Add(b.randomRemaining())
        b.hasTarget = true
    }

    // Walk to the target without leaving the disk.  A disk under the padded
    // membership test is path-connected by cardinal steps, so some legal
    // direction always exists short of the target.
    return b.carefulMoveToTarget()
}

// Like moveToTarget, but a direction is only taken when the tile it lands
// on is still inside the active circle's disk.  Falls back to Down, the
// same tie-break as the direct walk.
func (b *PainterBrain) carefulMoveToTarget() simple.Move {
    offsets := b.disks.Disk(b.circle.Radius).Offsets
    normalized := b.position.Sub(b.circle.Center)

    if b.target.X > b.position.X && offsets[normalized.Add(simple.Offset{X: 1, Y: 0})] {
        return simple.Right
    } else if b.target.X < b.position.X && offsets[normalized.Add(simple.Offset{X: -1, Y: 0})] {
        return simple.Left
    } else if b.target.Y > b.position.Y && offsets[normalized.Add(simple.Offset{X: 0, Y: 1})] {
        return simple.Up
    }
    return simple.Down
}

// A uniformly random offset from remaining.  Map iteration order is not
// seeded, so sort the keys first and draw through the brain's own rng.
func (b *PainterBrain) randomRemaining() simple.Offset {
    keys := make([]simple.Offset, 0, len(b.remaining))
    for o := range b.remaining {
        keys = append(keys, o)
    }
    sort.Slice(keys, func(i, j int) bool {
        if keys[i].Y != keys[j].Y {
            return keys[i].Y < keys[j].Y
        }
        return keys[i].X < keys[j].X
    })
    return keys[b.rng.Intn(len(keys))]
}

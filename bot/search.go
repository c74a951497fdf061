package bot

import (
    "local/fresco/simple"
)

// findSpace looks for a center where a disk of the given radius fits
// entirely on tiles this painter may claim.  The scan starts at a random
// cell and wraps toroidally, so repeated calls probe different regions
// first while still covering the whole canvas deterministically after the
// start is drawn.  First fit wins.  Every classified probe costs one unit
// of the budget; when the budget runs out before a fit is found the search
// reports false and the caller tries again next round.
func (b *PainterBrain) findSpace(from simple.Position, grid simple.Grid, radius int) (simple.Position, bool) {
    size := grid.Size()
    mask := b.disks.Disk(radius).Mask

    ox := b.rng.Intn(size)
    oy := b.rng.Intn(size)

    b.scans = 0
    for i := 0; i < size; i++ {
        for j := 0; j < size; j++ {
            x := (i + ox) % size
            y := (j + oy) % size

            left := x - radius
            right := x + radius
            bottom := y - radius
            top := y + radius

            // The bounding box may not touch the canvas edge.
            if left <= 0 || right >= size-1 || bottom <= 0 || top >= size-1 {
                continue
            }

            b.scans++
            if b.fits(grid, mask, left, bottom) {
                return simple.Position{X: x, Y: y}, true
            }
            if b.scans >= b.settings.SearchBudget {
                return simple.Position{}, false
            }
        }
    }
    return simple.Position{}, false
}

// One overwrite-classification pass: every masked tile of the box anchored
// at (left, bottom) must be claimable by this painter.
func (b *PainterBrain) fits(grid simple.Grid, mask [][]bool, left int, bottom int) bool {
    for my, row := range mask {
        for mx, set := range row {
            if !set {
                continue
            }
            if !simple.Claimable(b.id, grid.At(simple.Position{X: left + mx, Y: bottom + my})) {
                return false
            }
        }
    }
    return true
}

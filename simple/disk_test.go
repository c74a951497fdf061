package simple

import (
    "testing"
)

func TestDiskOffsetsMatchMembership(t *testing.T) {
    c := NewDiskCache()
    for r := MinRadius; r <= MaxRadius; r++ {
        d := c.Disk(r)
        if d.Radius != r {
            t.Fatalf("radius %d: got Radius %d", r, d.Radius)
        }

        want := 0
        for x := -r; x <= r; x++ {
            for y := -r; y <= r; y++ {
                in := x*x+y*y <= r*(r+1)
                if in {
                    want++
                }
                if d.Offsets[Offset{x, y}] != in {
                    t.Errorf("radius %d: offset (%d,%d) membership %v, want %v",
                        r, x, y, d.Offsets[Offset{x, y}], in)
                }
            }
        }
        if len(d.Offsets) != want {
            t.Errorf("radius %d: %d offsets, want %d", r, len(d.Offsets), want)
        }
    }
}

func TestDiskMaskAgreesWithOffsets(t *testing.T) {
    c := NewDiskCache()
    for r := MinRadius; r <= MaxRadius; r++ {
        d := c.Disk(r)
        side := 2*r + 1
        if len(d.Mask) != side {
            t.Fatalf("radius %d: mask has %d rows, want %d", r, len(d.Mask), side)
        }
        for y := 0; y < side; y++ {
            if len(d.Mask[y]) != side {
                t.Fatalf("radius %d: mask row %d has %d cols, want %d",
                    r, y, len(d.Mask[y]), side)
            }
            for x := 0; x < side; x++ {
                if d.Mask[y][x] != d.Offsets[Offset{x - r, y - r}] {
                    t.Errorf("radius %d: mask (%d,%d) disagrees with offsets", r, x, y)
                }
            }
        }
    }
}

// The fill walker assumes every disk tile is reachable from the center by
// cardinal steps that stay inside the disk.
func TestDiskCardinallyConnected(t *testing.T) {
    c := NewDiskCache()
    steps := []Offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
    for r := MinRadius; r <= MaxRadius; r++ {
        d := c.Disk(r)

        seen := map[Offset]bool{{0, 0}: true}
        frontier := []Offset{{0, 0}}
        for len(frontier) > 0 {
            o := frontier[0]
            frontier = frontier[1:]
            for _, s := range steps {
                n := o.Add(s)
                if d.Offsets[n] && !seen[n] {
                    seen[n] = true
                    frontier = append(frontier, n)
                }
            }
        }

        if len(seen) != len(d.Offsets) {
            t.Errorf("radius %d: only %d of %d offsets reachable from center",
                r, len(seen), len(d.Offsets))
        }
    }
}

package simple

// Painters draw filled disks.  The geometry for every supported radius is
// computed once at startup and shared read-only from then on; nothing here
// is ever mutated after New.
const (
    MinRadius = 1
    MaxRadius = 4
)

type Disk struct {
    Radius int

    // Offsets within radius+0.5 of the center.  The half-tile padding keeps
    // the integer-lattice boundary close to a true circle.
    Offsets map[Offset]bool

    // Square mask of side 2*radius+1.  Mask[y][x] is true iff the offset
    // (x-radius, y-radius) is in Offsets.
    Mask [][]bool
}

// Index with Disk(radius), radius in [MinRadius, MaxRadius].
type DiskCache []Disk

func NewDiskCache() DiskCache {
    c := make(DiskCache, MaxRadius+1)
    for r := MinRadius; r <= MaxRadius; r++ {
        c[r] = newDisk(r)
    }
    return c
}

func (c DiskCache) Disk(radius int) Disk {
    return c[radius]
}

func newDisk(radius int) Disk {
    d := Disk{
        Radius: radius,
        Offsets: map[Offset]bool{},
    }
    for x := -radius; x <= radius; x++ {
        for y := -radius; y <= radius; y++ {
            if InDisk(Offset{x, y}, radius) {
                d.Offsets[Offset{x, y}] = true
            }
        }
    }

    size := 2*radius + 1
    d.Mask = make([][]bool, size)
    for y := 0; y < size; y++ {
        d.Mask[y] = make([]bool, size)
        for x := 0; x < size; x++ {
            d.Mask[y][x] = d.Offsets[Offset{x - radius, y - radius}]
        }
    }
    return d
}

// x*x+y*y <= (radius+0.5)^2, kept in integers: both sides are quarter-integer
// apart at most, so comparing against radius*(radius+1) is exact.
func InDisk(o Offset, radius int) bool {
    return o.X*o.X+o.Y*o.Y <= radius*(radius+1)
}

package simple

// The shared canvas.  0 is unclaimed, 1..3 is the painter id of the owner.
// Indexed [y][x].
type Grid [][]int

func NewGrid(size int) Grid {
    g := make(Grid, size)
    for y := range g {
        g[y] = make([]int, size)
    }
    return g
}

func (g Grid) Size() int {
    return len(g)
}

func (g Grid) At(p Position) int {
    return g[p.Y][p.X]
}

func (g Grid) Set(p Position, id int) {
    g[p.Y][p.X] = id
}

func (g Grid) Copy() Grid {
    c := make(Grid, len(g))
    for y, row := range g {
        c[y] = make([]int, len(row))
        copy(c[y], row)
    }
    return c
}

// Whether painter 'id' may claim a tile currently holding 'v'.  Unclaimed
// tiles are always open; otherwise ownership is a three-way cycle so that
// 1 paints over 2, 2 over 3, and 3 over 1.
func Claimable(id int, v int) bool {
    if v == 0 {
        return true
    }
    return ((id-v)%3+3)%3 == 2
}

// Count of tiles owned by 'id'.
func (g Grid) Owned(id int) int {
    r := 0
    for _, row := range g {
        for _, v := range row {
            if v == id {
                r++
            }
        }
    }
    return r
}

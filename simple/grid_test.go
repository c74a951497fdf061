package simple

import (
    "testing"
)

func TestClaimable(t *testing.T) {
    cases := []struct {
        id int
        v int
        want bool
    }{
        {1, 0, true},
        {2, 0, true},
        {3, 0, true},

        // Nobody repaints their own tiles.
        {1, 1, false},
        {2, 2, false},
        {3, 3, false},

        // The cycle: 1 over 2, 2 over 3, 3 over 1.
        {1, 2, true},
        {2, 3, true},
        {3, 1, true},

        // And never the other way around.
        {1, 3, false},
        {2, 1, false},
        {3, 2, false},
    }
    for _, c := range cases {
        if got := Claimable(c.id, c.v); got != c.want {
            t.Errorf("Claimable(%d, %d) = %v, want %v", c.id, c.v, got, c.want)
        }
    }
}

func TestGridOwned(t *testing.T) {
    g := NewGrid(5)
    g.Set(Position{0, 0}, 1)
    g.Set(Position{4, 4}, 1)
    g.Set(Position{2, 2}, 2)

    if got := g.Owned(1); got != 2 {
        t.Errorf("Owned(1) = %d, want 2", got)
    }
    if got := g.Owned(2); got != 1 {
        t.Errorf("Owned(2) = %d, want 1", got)
    }
    if got := g.Owned(3); got != 0 {
        t.Errorf("Owned(3) = %d, want 0", got)
    }
}

func TestGridCopyIsIndependent(t *testing.T) {
    g := NewGrid(3)
    g.Set(Position{1, 1}, 2)
    c := g.Copy()
    c.Set(Position{1, 1}, 3)
    if g.At(Position{1, 1}) != 2 {
        t.Errorf("Copy aliases the original")
    }
}

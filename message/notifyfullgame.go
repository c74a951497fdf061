package message

import (
    "local/fresco/simple"
)

// Everything a client needs to render a game it just joined.
type NotifyFullGameData struct {
    Status int
    Creator simple.Identity
    Grid simple.Grid
    Seats []simple.Identity
    Positions []simple.Position
    Round int
    Rounds int
    Scores []int
}

package message

import (
    "local/fresco/simple"
)

// Sent once when the game leaves Creating.  GridSize and Rounds are fixed
// from here on; Seats[i] paints with id i+1.
type NotifyStartGameData struct {
    GridSize int
    Rounds int
    Grid simple.Grid
    Seats []simple.Identity
    Positions []simple.Position
}

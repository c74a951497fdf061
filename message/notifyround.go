package message

import (
    "local/fresco/simple"
)

// Sent at the start of every round.  Every seated player answers with a
// DoMove for this Round; anything else (or nothing before the round timer)
// counts as Stay.
type NotifyRoundData struct {
    Round int
    Grid simple.Grid
    Positions []simple.Position
    Scores []int

    // The moves that were applied last round, in seat order.
    Applied []simple.Move
}

package game

import (
    "local/fresco/client"
)

// One seat at the canvas.  Seat i paints with grid value i+1.
type Player struct {
    Client client.Client
    Seat int
    Bot bool
}

// Number of seats at every canvas.  The claim rule is a three-way cycle, so
// this is fixed.
const Seats = 3

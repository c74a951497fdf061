package message

import (
    "local/fresco/simple"
)

type DoMoveData struct {
    Round int
    Move simple.Move
}

func NewDoMove(round int, m simple.Move) Client {
    return Client{
        CType: DoMove,
        Data: DoMoveData{
            Round: round,
            Move: m,
        },
    }
}

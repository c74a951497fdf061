package message

import (
    "time"
    "local/fresco/simple"
)

type NotifyCreateGameData struct {
    Id int
    Creator simple.Identity
}

func NewNotifyCreateGame(id int, creator simple.Identity) Server {
    return Server {
        SType: NotifyCreateGame,
        Time: time.Now(),
        Data: NotifyCreateGameData{
            Id: id,
            Creator: creator,
        },
    }
}

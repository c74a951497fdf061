package bot

import (
    "local/fresco/message"
)

type Brain interface {
    handleStartGame(d message.NotifyStartGameData)
    handleRound(d message.NotifyRoundData) []message.Client
}

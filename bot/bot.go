package bot

import (
    "encoding/json"
    "fmt"
    "local/fresco/log"
    "local/fresco/message"
    "local/fresco/simple"
)

type Bot struct {
    identity simple.Identity
    brain Brain
    inMsg chan message.Server
    outMsg chan message.Client
}

func (b *Bot) Run() {
    defer b.panicking()
    for msg := range b.inMsg {
        b.dispatch(msg)
    }
}

func (b *Bot) Send(msg message.Server) {
    // deepcopy
    bytes, err := json.Marshal(msg)
    if err != nil {
        panic(fmt.Sprintf("Bot: Error marshalling, giving up: '%s' message.Server: %v", err, msg))
    }
    msg, err = message.UnmarshalServer(bytes)
    if err != nil {
        panic(fmt.Sprintf("Bot: Error unmarshalling, giving up: '%s' message.Server: %v", err, msg))
    }
    b.inMsg <- msg
}

func (b *Bot) Read() chan message.Client {
    return b.outMsg
}

func (b *Bot) Identity() simple.Identity {
    return b.identity
}

func (b *Bot) Done() {
    close(b.inMsg)
}

func (b *Bot) dispatch(m message.Server) {
    var responses []message.Client
    switch t := m.SType; t {
        case message.NotifyStartGame:
            b.brain.handleStartGame(m.Data.(message.NotifyStartGameData))
        case message.NotifyRound:
            responses = b.brain.handleRound(m.Data.(message.NotifyRoundData))
        default:
            b.log(fmt.Sprintf("Ignoring SType message.%s", t))
    }
    for _, r := range responses {
        b.outMsg <- r
    }
}

func (b *Bot) panicking() {
    if r := recover(); r != nil {
        s := fmt.Sprintf("bot panic (%v)", b)
        log.Stop(s, r)
        panic(r)
    }
}

func (b *Bot) log(msg string) {
    log.Debug("bot %s", msg)
}

package bot

import (
    "time"
    "local/fresco/message"
    "local/fresco/simple"
)

type Manager struct {}

func NewManager() *Manager {
    return &Manager{}
}

func (m *Manager) NewBot(i simple.Identity, gameId int) *Bot {
    brain := NewPainterBrain(i, gameId, botSettings[i.Id], time.Now().UnixNano())

    b := &Bot{
        i,
        brain,
        make(chan message.Server, 10),
        make(chan message.Client, 10),
    }
    go b.Run()
    return b
}

var botIdentities = map[string]simple.Identity{
    "B1": simple.NewBotIdentity("B1", "LeaRoundo (Bot)"),
    "B2": simple.NewBotIdentity("B2", "Michelangelo (Bot)"),
    "B3": simple.NewBotIdentity("B3", "Raphael (Bot)"),
    "B4": simple.NewBotIdentity("B4", "Donatello (Bot)"),
    "B5": simple.NewBotIdentity("B5", "Frida (Bot)"),
}

func (m *Manager) GetIdentity(id string) simple.Identity {
    if b, ok := botIdentities[id]; ok {
        return b
    }
    return simple.EmptyIdentity
}

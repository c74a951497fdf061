package message

// A Server message for every websocket belonging to identity Id, or for
// everyone when Id is "".
type Broadcast struct {
    Id string
    M Server
}

// Implemented in the server package; lets components push notifications
// without knowing where clients are registered.
type Broadcaster interface {
    Broadcast(Broadcast)
}

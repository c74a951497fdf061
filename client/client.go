package client

import (
    "local/fresco/message"
    "local/fresco/simple"
)

type Client interface {
    Identity() simple.Identity
    Run()
    Send(message.Server)
    Read() chan message.Client
    Done() // Return immediately
}

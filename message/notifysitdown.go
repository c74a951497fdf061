package message

import (
    "local/fresco/simple"
)

type NotifySitdownData struct {
    Identity simple.Identity
    Index int
    Sitdown bool
}

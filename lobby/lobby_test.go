package lobby

import (
    "testing"
    "local/fresco/client"
    "local/fresco/message"
    "local/fresco/simple"
)

func newTestLobby() *Lobby {
    l := New(simple.Config{Name: "beta"}, nil, nil, nil, nil, nil)
    for _, id := range []string{"G1", "G2", "G3"} {
        i := simple.NewGuestIdentity(id)
        l.clients[i] = client.NewDisconnectedMultiWebClient(i)
    }
    return l
}

func TestBroadcastTargetsEveryoneOnEmptyId(t *testing.T) {
    l := newTestLobby()
    got := l.targets(message.Broadcast{Id: ""})
    if len(got) != 3 {
        t.Errorf("%d targets for an unaddressed broadcast, want 3", len(got))
    }
}

func TestBroadcastTargetsOnlyTheAddressedClient(t *testing.T) {
    l := newTestLobby()
    for _, id := range []string{"G1", "G2", "G3"} {
        got := l.targets(message.Broadcast{Id: id})
        if len(got) != 1 {
            t.Fatalf("%d targets for id %s, want 1", len(got), id)
        }
        if got[0].Identity().Id != id {
            t.Errorf("broadcast to %s reached %s", id, got[0].Identity().Id)
        }
    }
}

func TestBroadcastTargetsNobodyUnknown(t *testing.T) {
    l := newTestLobby()
    if got := l.targets(message.Broadcast{Id: "G9"}); len(got) != 0 {
        t.Errorf("%d targets for an unknown id, want 0", len(got))
    }
}

package user

import (
    "testing"
    "local/fresco/client"
    "local/fresco/message"
    "local/fresco/simple"
)

func newTestHandler() *Handler {
    h := NewHandler(nil, nil, simple.Config{Name: "beta"})
    for _, id := range []string{"G1", "G2"} {
        i := simple.NewGuestIdentity(id)
        h.clients[i] = client.NewDisconnectedMultiWebClient(i)
    }
    return h
}

func TestBroadcastTargetsEveryoneOnEmptyId(t *testing.T) {
    h := newTestHandler()
    if got := h.targets(message.Broadcast{Id: ""}); len(got) != 2 {
        t.Errorf("%d targets for an unaddressed broadcast, want 2", len(got))
    }
}

func TestBroadcastTargetsOnlyTheAddressedClient(t *testing.T) {
    h := newTestHandler()
    got := h.targets(message.Broadcast{Id: "G2"})
    if len(got) != 1 {
        t.Fatalf("%d targets for id G2, want 1", len(got))
    }
    if got[0].Identity().Id != "G2" {
        t.Errorf("broadcast to G2 reached %s", got[0].Identity().Id)
    }
}

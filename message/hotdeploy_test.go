package message

import (
    "encoding/json"
    "testing"
)

// The update notice crosses the wire to every connected client; the reader
// side must land on the typed data, not a raw map.
func TestHotDeployRoundTrip(t *testing.T) {
    m := NewHotDeploy("Fresco Update", "Back in 15 seconds.")
    if m.SType != HotDeploy {
        t.Fatalf("SType %s, want HotDeploy", m.SType)
    }

    bytes, err := json.Marshal(m)
    if err != nil {
        t.Fatalf("marshal: %s", err)
    }
    got, err := UnmarshalServer(bytes)
    if err != nil {
        t.Fatalf("unmarshal: %s", err)
    }

    d, ok := got.Data.(HotDeployData)
    if !ok {
        t.Fatalf("data decoded as %T", got.Data)
    }
    if d.Title != "Fresco Update" || d.Content != "Back in 15 seconds." {
        t.Errorf("round trip mangled the notice: %+v", d)
    }
}

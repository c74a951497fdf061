package bot

import (
    "os"
    "testing"
    "local/fresco/log"
)

func TestMain(m *testing.M) {
    log.Init("/tmp", log.ErrorLevel)
    os.Exit(m.Run())
}

package server

import (
    "context"
    "fmt"
    "net/http"
    "local/fresco/crypto"
    "local/fresco/log"
    "local/fresco/database"
    "local/fresco/simple"
)

func authNClosure(db *database.DB, config simple.Config) func(http.Handler) http.Handler  {
    playerCookieName := "FrescoAuthN"
    guestCookieName := "FrescoAuthNGuest"
    return func(next http.Handler) http.Handler {
        return http.HandlerFunc(func (w http.ResponseWriter, r *http.Request) {
            ip := getIP(r)
            path := r.URL.Path

            // Path /a is blocked at the nginx level from calls off this box.
            // This is a crontab calling in to perform some timed maintanence.
            if path[0:2] == "/a" {
                next.ServeHTTP(w, r)
                return
            }

            // Ensure cookie exists, and use playerCookie over guestCookie.
            playerCookie :=  ""
            guestCookie := ""
            for _, c := range r.Cookies() {
                if c.Name == guestCookieName {
                    guestCookie = c.Value
                } else if c.Name == playerCookieName {
                    playerCookie = c.Value
                }
            }
            cookie := playerCookie
            if cookie == "" {
                cookie = guestCookie
            }

            // First visit: mint a guest identity so anyone can watch or paint
            // without signing up.
            if cookie == "" {
                gid, err := db.GetNewGuestId()
                if err != nil {
                    log.Error("Unable to mint guest id: %s", err)
                    w.WriteHeader(http.StatusInternalServerError)
                    w.Write([]byte("InternalError minting guest id"))
                    return
                }
                id := fmt.Sprintf("G%d", gid)
                log.Debug("Access: NewGuest %s %s (%s)", id, ip, path)
                http.SetCookie(w, crypto.NewGuestCookie(id, config))
                next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(),
                    "Identity", simple.NewGuestIdentity(id),
                )))
                return
            }

            // Check cookie validity
            id, ok := crypto.ReadCookie(cookie, ip, path, config)
            if !ok {
                w.WriteHeader(http.StatusForbidden)
                w.Write([]byte("Bad cookie"))
                return
            }

            // Set Identity in Context
            identity, ok := db.GetIdentity(id)
            if !ok {
                w.WriteHeader(http.StatusForbidden)
                w.Write([]byte(fmt.Sprintf("InternalError Get Identity '%s'", id)))
                return
            }
            next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(),
                "Identity", identity,
            )))
        })
    }
}

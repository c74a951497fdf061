package user

import (
    "fmt"
    "reflect"
    "encoding/base64"
    "golang.org/x/crypto/bcrypt"
    "local/fresco/client"
    "local/fresco/crypto"
    "local/fresco/database"
    "local/fresco/email"
    "local/fresco/log"
    "local/fresco/message"
    "local/fresco/simple"
)

type Handler struct {
    config simple.Config
    db *database.DB
    emailer *email.Emailer
    clients map[simple.Identity]*client.MultiWebClient
    join chan *client.WebClient
    broadcast chan message.Broadcast
}

func NewHandler(db *database.DB, em *email.Emailer, config simple.Config) *Handler {
    return &Handler{
        db: db,
        emailer: em,
        config: config,
        clients: make(map[simple.Identity]*client.MultiWebClient),
        join: make(chan *client.WebClient, 10),
        broadcast: make(chan message.Broadcast, 10),
    }
}

func (h *Handler) Run(initDone chan struct{}) {
    defer h.panicking()
    rcase := func(c reflect.Value) reflect.SelectCase {
        return reflect.SelectCase{
            Dir: reflect.SelectRecv,
            Chan: c,
        }
    }

    initDone <- struct{}{}

    for {
        cases := []reflect.SelectCase{
            rcase(reflect.ValueOf(h.join)),
            rcase(reflect.ValueOf(h.broadcast)),
        }
        order := []simple.Identity{}
        for i, c := range h.clients {
            order = append(order, i)
            cases = append(cases, rcase(reflect.ValueOf(c.Read())))
        }

        chosen, value, ok := reflect.Select(cases)

        switch chosen {
        case 0:
            h.handleJoin(value.Interface().(*client.WebClient))
        case 1:
            h.handleBroadcast(value.Interface().(message.Broadcast))
        default:
            i := order[chosen-2]
            if !ok {
                h.handleLeave(i)
            } else {
                h.Handle(h.clients[i], value.Interface().(message.Client))
            }
        }
    }
}

func (h *Handler) Join(c *client.WebClient) {
    h.join <-c
}

func (h *Handler) Handle(c client.Client, m message.Client) {
    switch m.CType {
    case message.RequestSignup:
        h.handleRequestSignup(c, m.Data.(message.RequestSignupData))
    case message.RequestSignin:
        h.handleRequestSignin(c, m.Data.(message.RequestSigninData))
    }
}

func (h *Handler) Broadcast(b message.Broadcast) {
    h.broadcast <-b
}

func (h *Handler) handleJoin(c *client.WebClient) {
    if mc, ok := h.clients[c.Identity()]; ok {
        mc.Consume(c)
    } else {
        h.clients[c.Identity()] = client.NewMultiWebClient(c)
        go h.clients[c.Identity()].Run()
    }
}

func (h *Handler) handleBroadcast(b message.Broadcast) {
    for _, c := range h.targets(b) {
        c.Send(b.M)
    }
}

// An empty broadcast id addresses everyone.
func (h *Handler) targets(b message.Broadcast) []*client.MultiWebClient {
    r := []*client.MultiWebClient{}
    for i, c := range h.clients {
        if b.Id == "" || b.Id == i.Id {
            r = append(r, c)
        }
    }
    return r
}

func (h *Handler) handleLeave(i simple.Identity) {
    delete(h.clients, i)
}

func (h *Handler) handleRequestSignup(c client.Client, d message.RequestSignupData) {

    if ok, msg := h.validatePassword(d.Password); !ok {
        c.Send(message.NewNotifySignup(false, msg))
    }
    storablePassword, err := h.hashpw(c, d.Password)
    if err != nil {
        c.Send(message.NewNotifySignup(false, "Internal Error validating password"))
    }

    // TODO more validation lol?

    err, dberr := h.db.Signup(d.Email, d.Username, storablePassword)
    if dberr != nil {
        c.Send(message.NewInternalError("Database Issue, goodbye"))
    } else if err != nil {
        if err.Error() == "email" {
            c.Send(message.NewNotifySignup(false,
                "Known email address: sign in instead"))
        } else if err.Error() == "username" {
            c.Send(message.NewNotifySignup(false,
                "Username taken, choose another"))
        } else {
            c.Send(message.NewInternalError("Database Issue, goodbye"))
        }
    } else {
        h.sendConfirmEmail(d.Email)
        c.Send(message.NewNotifySignup(true, "Check your email to complete signup"))
    }
}

func (h *Handler) handleRequestSignin(c client.Client, d message.RequestSigninData) {
    id, err, dberr := h.db.Signin(d.Email, []byte(d.Password))
    if dberr != nil {
        c.Send(message.NewInternalError("Database Issue, goodbye"))
    } else if err != nil {
        if err.Error() == "email" {
            c.Send(message.NewNotifySignin(false, "Unknown email"))
        } else if err.Error() == "verified" {
            h.sendConfirmEmail(d.Email)
            c.Send(message.NewNotifySignin(false, "Check your email to complete signup"))
        } else if err.Error() == "password" {
            c.Send(message.NewNotifySignin(false, "Wrong password"))
        } else {
            c.Send(message.NewInternalError("Database Issue, goodbye"))
        }
    } else {
        c.Send(message.NewNotifySignin(true, crypto.NewCookieValue(id, h.config)))
    }
}

func (h *Handler) validatePassword(pw string) (bool, string) {
    if len(pw) < 4 {
        return false, "Password too short"
    } else if len(pw) > 32 {
        return false, "Password too long"
    }
    return true, ""
}

func (h *Handler) hashpw(c client.Client, pw string) ([]byte, error) {
    hash, err := bcrypt.GenerateFromPassword([]byte(pw), 10)
    if err != nil {
        h.errorf(c, "bcrypt error hashing password: %s", err)
        return []byte{}, err
    }
    return hash, nil
}

func (h *Handler) sendConfirmEmail(email string) {
    key := h.config.ConfigKeys["email"]
    encryptedEmail := crypto.Encrypt(email, key)
    encodedEmail := base64.URLEncoding.EncodeToString(encryptedEmail)
    link := fmt.Sprintf("https://%s/c/%s", h.config.ServerDNS, encodedEmail)

    h.emailer.Send(email, "Fresco: Confirm Email Address",
        fmt.Sprintf("Navigate to this website to confirm your email address: %s", link),
        fmt.Sprintf("Click <a href=\"%s\">here</a> to confirm your email address.", link))
}

func (h *Handler) panicking() {
    if r := recover(); r != nil {
        log.Stop("UserHandler panic", r)
    }
}

func (h *Handler) debugf(c client.Client, msg string, fargs ...interface{}) {
    log.Debug(fmt.Sprintf("(%s) %s", c.Identity().Id, msg), fargs...)
}

func (h *Handler) errorf(c client.Client, msg string, fargs ...interface{}) {
    log.Error(fmt.Sprintf("(%s) %s", c.Identity().Id, msg), fargs...)
}

func (h *Handler) fatalf(msg string, fargs ...interface{}) {
    log.Fatal(msg, fargs...)
}

package game

import (
    "fmt"
    "math/rand"
    "reflect"
    "sync"
    "time"
    "local/fresco/bot"
    "local/fresco/client"
    "local/fresco/database"
    "local/fresco/log"
    "local/fresco/message"
    "local/fresco/simple"
)

type Game struct {

    // Immutable fields
    Id int
    Creator simple.Identity

    // Other heavy components we interface with
    config simple.Config
    db *database.DB
    bm *bot.Manager

    // The way that other components talk to us
    joins chan client.Client
    broadcast chan message.Broadcast
    timeouts chan int // round number whose timer fired

    // During Creating, players is uninitialized and all communication is
    // through observers.  Once we transition, players is initialized to the
    // seated painters (humans and bots).
    observers map[simple.Identity]*client.MultiWebClient
    players []*Player
    disconnects map[int]bool

    // Lifecycle
    status Status
    newStatus Status
    times GameTimes
    summaryMux sync.Mutex
    summary message.GameSummary

    // Match state
    rng *rand.Rand
    seats []simple.Identity
    grid simple.Grid
    positions []simple.Position
    scores []int
    round int
    rounds int
    moves []simple.Move
    answered []bool
    applied []simple.Move
}

type GameTimes struct {
    create time.Time
    running time.Time
    complete time.Time
}

func New(id int, creator simple.Identity, config simple.Config, db *database.DB, bm *bot.Manager) *Game {
    g := &Game{
        Id: id,
        Creator: creator,
        config: config,
        db: db,
        bm: bm,
        joins: make(chan client.Client, 2),
        broadcast: make(chan message.Broadcast, 10),
        timeouts: make(chan int, 2),
        observers: map[simple.Identity]*client.MultiWebClient{},
        disconnects: map[int]bool{},
        status: Creating,
        newStatus: Creating,
        times: GameTimes{create: time.Now()},
        summaryMux: sync.Mutex{},
        rng: rand.New(rand.NewSource(time.Now().UnixNano())),
        seats: make([]simple.Identity, Seats),
        scores: make([]int, Seats),
        rounds: config.GameRounds,
    }
    g.updateSummary()
    return g
}

// Call with its own goroutine to start.
func (g *Game) Run(initDone chan struct{}) {
    defer g.panicking()
    initDone <- struct{}{}

    for ;g.handleMsg(); {
        g.checkStatus()
        g.updateSummary()
    }
    g.checkStatus()
    g.updateSummary()
}

func (g *Game) Register(c client.Client) {
    g.joins <-c
}

func (g *Game) GetSummary() message.GameSummary {
    g.summaryMux.Lock()
    defer func() { g.summaryMux.Unlock() }()
    return g.summary
}

func (g *Game) updateSummary() {
    g.summaryMux.Lock()
    defer func() { g.summaryMux.Unlock() }()

    is := make([]simple.Identity, Seats)
    copy(is, g.seats)

    g.summary = message.GameSummary{
        Id: g.Id,
        RunningTime: g.times.running,
        CompleteTime: g.times.complete,
        Status: int(g.status),
        Creator: g.Creator,
        Players: is,
        Round: g.round,
        Rounds: g.rounds,
        Scores: append([]int{}, g.scores...),
        Observers: len(g.observers),
    }
}

// Returns false if this game is over (Abandoned, Complete) and there is
// nobody left to talk to.
func (g *Game) handleMsg() bool {
    rcase := func(c reflect.Value) reflect.SelectCase {
        return reflect.SelectCase{
            Dir: reflect.SelectRecv,
            Chan: c,
        }
    }

    obOrder := []simple.Identity{}
    cases := []reflect.SelectCase{
        rcase(reflect.ValueOf(g.joins)),
        rcase(reflect.ValueOf(g.timeouts)),
        rcase(reflect.ValueOf(g.broadcast)),
    }
    for i, p := range g.players {
        c := p.Client
        if v, ok := g.disconnects[i]; ok && v {
            c = client.EmptyClient{}
        }
        cases = append(cases, rcase(reflect.ValueOf(c.Read())))
    }
    for i, o := range g.observers {
        obOrder = append(obOrder, i)
        cases = append(cases, rcase(reflect.ValueOf(o.Read())))
    }

    // A closed channel here means that the player/observer has 0 open
    // connections to the game.
    chosen, value, ok := reflect.Select(cases)
    if chosen == 0 {
        if !ok {
            panic("g.joins should never be closed!")
        }
        g.handleJoin(value.Interface().(*client.WebClient))
    } else if chosen == 1 {
        if !ok {
            panic("g.timeouts should never be closed!")
        }
        g.handleTimeout(value.Interface().(int))
    } else if chosen == 2 {
        if !ok {
            panic("g.broadcast should never be closed!")
        }
        g.handleBroadcast(value.Interface().(message.Broadcast))
    } else if len(g.players) > chosen-3 {
        if !ok {
            p := g.players[chosen-3]
            g.debugf("Player %s disconnected", p.Client.Identity())
            g.disconnects[chosen-3] = true
        } else {
            g.handlePlayerMsg(chosen-3, g.players[chosen-3], value.Interface().(message.Client))
        }
    } else {
        if !ok {
            delete(g.observers, obOrder[(chosen-3)-len(g.players)])
        } else {
            g.handleObserverMsg(g.observers[obOrder[(chosen-3)-len(g.players)]],
                value.Interface().(message.Client))
        }
    }

    if g.status != Abandoned && g.status != Complete || len(g.observers) > 0 {
        return true
    }
    for i, p := range g.players {
        if p.Bot {
            continue
        }
        if v, ok := g.disconnects[i]; !ok || !v {
            return true
        }
    }
    return false
}

func (g *Game) checkStatus() {
    if g.newStatus == g.status {
        return
    }
    g.debugf("Status %s -> %s", StatusNames[g.status], StatusNames[g.newStatus])
    g.status = g.newStatus
    if g.status == Running {
        g.startRunning()
    }
    if g.status == Complete {
        g.times.complete = time.Now()
        g.store()
    }
}

// Everything sent out of the actor is a snapshot; the live grid and slices
// keep mutating on this goroutine while clients marshal on theirs.
func (g *Game) fullGame() message.Server {
    return message.Server{
        SType: message.NotifyFullGame,
        Time: time.Now(),
        Data: message.NotifyFullGameData{
            Status: int(g.status),
            Creator: g.Creator,
            Grid: g.grid.Copy(),
            Seats: append([]simple.Identity{}, g.seats...),
            Positions: append([]simple.Position{}, g.positions...),
            Round: g.round,
            Rounds: g.rounds,
            Scores: append([]int{}, g.scores...),
        },
    }
}

func (g *Game) handleJoin(c *client.WebClient) {
    g.debugf("HandleJoin %s", c.Identity())

    c.Send(g.fullGame())

    // Look for this identity as a player or an observer.
    if mc, ok := g.observers[c.Identity()]; ok {
        g.debugf("Already an observer, consuming new ws: %s", c.Identity().Id)
        mc.Consume(c)
        return
    }
    for i, p := range g.players {
        if p.Client.Identity() == c.Identity() {
            g.debugf("Already a player, consuming new ws: %s", c.Identity().Id)
            p.Client.(*client.MultiWebClient).Consume(c)
            delete(g.disconnects, i)
            return
        }
    }

    // If not found, a new Observer.
    g.debugf("New Observer: %s", c.Identity().Id)
    mc := client.NewMultiWebClient(c)
    go mc.Run()
    g.observers[c.Identity()] = mc
}

func (g *Game) handleTimeout(round int) {
    // Stale timers fire after a round already applied; ignore them.
    if g.status != Running || round != g.round {
        return
    }
    g.debugf("Round %d timer fired with %v answered", round, g.answered)
    g.applyRound()
}

func (g *Game) handleBroadcast(b message.Broadcast) {
    for _, o := range g.observers {
        if b.Id == "" || o.Identity().Id == b.Id {
            o.Send(b.M)
        }
    }
    for i, p := range g.players {
        if p.Bot {
            continue
        }
        if v, ok := g.disconnects[i]; ok && v {
            continue
        }
        if b.Id == "" || p.Client.Identity().Id == b.Id {
            p.Client.Send(b.M)
        }
    }
}

func (g *Game) handlePlayerMsg(i int, p *Player, m message.Client) {
    switch ty := m.CType; ty {
        case message.DoMove:
            g.handleDoMove(i, m.Data.(message.DoMoveData))
        default:
            g.clientError(p.Client, "Client Error", "CType '%s' unhandled by Game (player)",
                message.CTypeNames[m.CType])
    }
}

func (g *Game) handleObserverMsg(o *client.MultiWebClient, m message.Client) {
    switch ty := m.CType; ty {
        case message.RequestSitdown:
            g.handleRequestSitdown(o, m.Data.(message.RequestSitdownData))
        case message.RequestSitdownBot:
            g.handleRequestSitdownBot(o, m.Data.(message.RequestSitdownBotData))
        case message.StartGame:
            g.handleStartGame(o, m.Data.(message.StartGameData))
        default:
            g.clientError(o, "Client Error", "CType '%s' unhandled by Game (observer)",
                message.CTypeNames[m.CType])
    }
}

func (g *Game) handleRequestSitdown(c client.Client, d message.RequestSitdownData) {
    if g.status != Creating {
        g.clientError(c, "Sitdown Error", "You can only sit down while a game is 'Creating'")
        return
    }
    if d.Index < 0 || d.Index >= Seats {
        g.clientError(c, "Sitdown Error", "Not a valid seat (expecting [0-%d])", Seats-1)
        return
    }

    isSitting := false
    for _, s := range g.seats {
        if s == c.Identity() {
            isSitting = true
            break
        }
    }
    if isSitting && d.Sitdown {
        g.clientError(c, "Sitdown Error", "You are already sitting at this game")
        return
    }
    if !isSitting && !d.Sitdown {
        g.clientError(c, "Sitdown Error", "You can not stand up: you are not sitting at this game")
        return
    }

    i := g.seats[d.Index]
    if d.Sitdown {
        if i != simple.EmptyIdentity {
            g.clientError(c, "Sitdown Error", "%s is already there", i.Name)
            return
        }
        g.debugf("(%s) Sat down", c.Identity())
        g.seats[d.Index] = c.Identity()
        g.notifySitdown(c.Identity(), d.Index, true)
        return
    }

    if i != c.Identity() {
        g.clientError(c, "Sitdown Error", "You are not sitting there")
        return
    }
    g.debugf("(%s) Stood up", c.Identity())
    g.seats[d.Index] = simple.EmptyIdentity
    g.notifySitdown(c.Identity(), d.Index, false)
}

func (g *Game) handleRequestSitdownBot(c client.Client, d message.RequestSitdownBotData) {
    identity := g.bm.GetIdentity(d.Id)
    if identity == simple.EmptyIdentity {
        g.clientError(c, "Sitdown Error", "Not a valid Bot ID: '%s'", d.Id)
        return
    }
    if g.status != Creating {
        g.clientError(c, "Sitdown Error", "A Bot can only sit down while a game is 'Creating'")
        return
    }
    if c.Identity() != g.Creator {
        g.clientError(c, "Sitdown Error", "Only the game creator (%s) may add/remove bots", g.Creator.Name)
        return
    }
    if d.Index < 0 || d.Index >= Seats {
        g.clientError(c, "Sitdown Error", "Seat does not exist: %d", d.Index)
        return
    }

    isSitting := false
    for _, s := range g.seats {
        if s == identity {
            isSitting = true
            break
        }
    }
    if isSitting && d.Sitdown {
        g.clientError(c, "Sitdown Error", "%s is already sitting at this game", identity)
        return
    }
    if !isSitting && !d.Sitdown {
        g.clientError(c, "Sitdown Error", "%s can not stand up: not sitting at this game", identity)
        return
    }

    i := g.seats[d.Index]
    if d.Sitdown {
        if i != simple.EmptyIdentity {
            g.clientError(c, "Sitdown Error", "%s is already there", i.Name)
            return
        }
        g.debugf("(%s) Sat down", identity)
        g.seats[d.Index] = identity
        g.notifySitdown(identity, d.Index, true)
        return
    }

    if i != identity {
        g.clientError(c, "Sitdown Error", "Bot is not sitting there")
        return
    }
    g.debugf("(%s) Stood up", identity)
    g.seats[d.Index] = simple.EmptyIdentity
    g.notifySitdown(identity, d.Index, false)
}

func (g *Game) notifySitdown(i simple.Identity, index int, sitdown bool) {
    g.notify(message.Server{
        SType: message.NotifySitdown,
        Time: time.Now(),
        Data: message.NotifySitdownData{
            Identity: i,
            Index: index,
            Sitdown: sitdown,
        },
    })
}

func (g *Game) handleStartGame(c client.Client, d message.StartGameData) {
    if g.status != Creating {
        g.clientError(c, "StartGame Error", "Can only start when game is 'Creating'")
        return
    }
    if c.Identity() != g.Creator {
        g.clientError(c, "StartGame Error", "Only the Creator (%s) can start the game", g.Creator.Name)
        return
    }

    g.debugf("Starting Game")
    g.newStatus = Running
}

// The transition into Running.  Empty seats are filled with bots, every
// seat becomes a Player, the canvas is laid out, and round 1 goes out.
func (g *Game) startRunning() {
    g.times.running = time.Now()

    nextBot := 1
    for i, s := range g.seats {
        if s != simple.EmptyIdentity {
            continue
        }
        for {
            identity := g.bm.GetIdentity(fmt.Sprintf("B%d", nextBot))
            nextBot++
            if identity == simple.EmptyIdentity {
                panic("ran out of bot identities filling seats")
            }
            taken := false
            for _, s2 := range g.seats {
                if s2 == identity {
                    taken = true
                    break
                }
            }
            if !taken {
                g.seats[i] = identity
                break
            }
        }
    }

    g.players = make([]*Player, Seats)
    for i, s := range g.seats {
        if s.Type == simple.IdentityTypeBot {
            b := g.bm.NewBot(s, g.Id)
            g.players[i] = &Player{Client: b, Seat: i, Bot: true}
            continue
        }
        mc, ok := g.observers[s]
        if !ok {
            // Seated but gone; hold the seat, mark it disconnected.
            mc = client.NewDisconnectedMultiWebClient(s)
            go mc.Run()
            g.disconnects[i] = true
        } else {
            delete(g.observers, s)
        }
        g.players[i] = &Player{Client: mc, Seat: i, Bot: false}
    }

    g.grid = simple.NewGrid(g.config.GridSize)
    g.positions = make([]simple.Position, Seats)
    for i := range g.positions {
        g.positions[i] = g.randomFreePosition()
        g.grid.Set(g.positions[i], i+1)
        g.scores[i] = 1
    }

    g.round = 1
    g.moves = make([]simple.Move, Seats)
    g.answered = make([]bool, Seats)
    g.applied = make([]simple.Move, Seats)

    g.notify(message.Server{
        SType: message.NotifyStartGame,
        Time: time.Now(),
        Data: message.NotifyStartGameData{
            GridSize: g.grid.Size(),
            Rounds: g.rounds,
            Grid: g.grid.Copy(),
            Seats: append([]simple.Identity{}, g.seats...),
            Positions: append([]simple.Position{}, g.positions...),
        },
    })
    g.notifyRound()
}

func (g *Game) randomFreePosition() simple.Position {
    for {
        p := simple.Position{
            X: g.rng.Intn(g.grid.Size()),
            Y: g.rng.Intn(g.grid.Size()),
        }
        if g.grid.At(p) == 0 {
            return p
        }
    }
}

func (g *Game) notifyRound() {
    g.notify(message.Server{
        SType: message.NotifyRound,
        Time: time.Now(),
        Data: message.NotifyRoundData{
            Round: g.round,
            Grid: g.grid.Copy(),
            Positions: append([]simple.Position{}, g.positions...),
            Scores: append([]int{}, g.scores...),
            Applied: append([]simple.Move{}, g.applied...),
        },
    })

    round := g.round
    millis := g.config.RoundMillis
    time.AfterFunc(time.Duration(millis)*time.Millisecond, func() {
        g.timeouts <- round
    })
}

func (g *Game) handleDoMove(i int, d message.DoMoveData) {
    if g.status != Running {
        return
    }
    if d.Round != g.round {
        g.debugf("Seat %d answered round %d during round %d, ignoring", i, d.Round, g.round)
        return
    }
    if g.answered[i] {
        return
    }
    g.moves[i] = d.Move
    g.answered[i] = true

    for _, a := range g.answered {
        if !a {
            return
        }
    }
    g.applyRound()
}

// Applies the collected moves in seat order: move (clamped at the canvas
// edge), then claim the landed tile when the cycle rule allows.
func (g *Game) applyRound() {
    size := g.grid.Size()
    for i := range g.players {
        move := simple.Stay
        if g.answered[i] {
            move = g.moves[i]
        }
        g.applied[i] = move

        p := g.positions[i].Add(move.Vector())
        if p.X < 0 {
            p.X = 0
        }
        if p.X > size-1 {
            p.X = size - 1
        }
        if p.Y < 0 {
            p.Y = 0
        }
        if p.Y > size-1 {
            p.Y = size - 1
        }
        g.positions[i] = p

        id := i + 1
        if simple.Claimable(id, g.grid.At(p)) {
            g.grid.Set(p, id)
        }
    }
    for i := range g.scores {
        g.scores[i] = g.grid.Owned(i + 1)
    }

    if g.round >= g.rounds {
        g.complete()
        return
    }

    g.round++
    for i := range g.answered {
        g.answered[i] = false
        g.moves[i] = simple.Stay
    }
    g.notifyRound()
}

// Seat index of the highest score, -1 when the top score is shared.
func (g *Game) winner() int {
    winner := 0
    tie := false
    for i := 1; i < len(g.scores); i++ {
        if g.scores[i] > g.scores[winner] {
            winner = i
            tie = false
        } else if g.scores[i] == g.scores[winner] {
            tie = true
        }
    }
    if tie {
        return -1
    }
    return winner
}

func (g *Game) complete() {
    winner := g.winner()
    g.debugf("Complete after %d rounds, scores %v, winner %d", g.round, g.scores, winner)
    g.notify(message.Server{
        SType: message.NotifyComplete,
        Time: time.Now(),
        Data: message.NotifyCompleteData{
            Scores: append([]int{}, g.scores...),
            Winner: winner,
        },
    })
    g.newStatus = Complete

    for _, p := range g.players {
        if p.Bot {
            p.Client.Done()
        }
    }
}

func (g *Game) store() {
    if g.db == nil {
        return
    }
    err := g.db.StoreGame(g.Id, g.Creator, g.seats, g.scores, g.times.running, g.times.complete)
    if err != nil {
        g.errorf("Unable to store game %d: %s", g.Id, err)
    }
}

func (g *Game) notify(m message.Server) {
    for i, p := range g.players {
        if v, ok := g.disconnects[i]; ok && v {
            continue
        }
        p.Client.Send(m)
    }
    for _, o := range g.observers {
        o.Send(m)
    }
}

func (g *Game) clientError(c client.Client, header string, msg string, fargs ...interface{}) {
    m := fmt.Sprintf(msg, fargs...)
    g.debugf("(ClientError) %s", m)
    c.Send(message.NewNotifyNotification(message.NotificationError, header, m))
}

func (g *Game) panicking() {
    if r := recover(); r != nil {
        s := fmt.Sprintf("game panic (G%d)", g.Id)
        log.Stop(s, r)
        panic(r)
    }
}

func (g *Game) debugf(msg string, fargs ...interface{}) {
    log.Debug(fmt.Sprintf("(G%d) %s", g.Id, msg), fargs...)
}

func (g *Game) errorf(msg string, fargs ...interface{}) {
    log.Error(fmt.Sprintf("(G%d) %s", g.Id, msg), fargs...)
}

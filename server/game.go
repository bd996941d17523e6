package main

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"

	"void-runner/sim"
)

const (
	TickRate       = 60 // simulation ticks per second
	BroadcastRate  = 30 // snapshots per second
	TickDuration   = time.Second / TickRate
	BroadcastEvery = TickRate / BroadcastRate
)

// Broadcaster is a connection a session streams to
type Broadcaster interface {
	SendJSON(msg interface{})
	SendBinary(data []byte)
}

// Game runs one simulation on its own ticker and fans its output out to the
// attached renderers. Input arrives from the pilot connection through queue.
type Game struct {
	mu       sync.RWMutex
	sid      string
	sim      *sim.Game
	queue    sim.InputQueue
	viewers  map[Broadcaster]bool
	pilot    Broadcaster
	tick     uint64
	stop     chan struct{}
	stopOnce sync.Once
	start    time.Time
	clock    func() float64 // seconds, fed to sim.Game.Update
	log      *logrus.Entry
}

// NewGame creates a Game for session sid
func NewGame(sid string, g *sim.Game, log *logrus.Entry) *Game {
	game := &Game{
		sid:     sid,
		sim:     g,
		viewers: make(map[Broadcaster]bool),
		stop:    make(chan struct{}),
		start:   time.Now(),
		log:     log,
	}
	game.clock = func() float64 { return time.Since(game.start).Seconds() }
	return game
}

// Run starts the game loop. It returns at once if Stop was already called.
func (g *Game) Run() {
	select {
	case <-g.stop:
		return
	default:
	}

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.update()
		case <-g.stop:
			return
		}
	}
}

// Stop terminates the game loop, whether or not Run has started. Safe to
// call more than once.
func (g *Game) Stop() {
	g.stopOnce.Do(func() { close(g.stop) })
}

// Attach adds a viewer; with pilot set it also becomes the session's pilot.
// Returns false if a different pilot is already attached.
func (g *Game) Attach(b Broadcaster, pilot bool) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if pilot {
		if g.pilot != nil && g.pilot != b {
			return false
		}
		g.pilot = b
	}
	g.viewers[b] = true
	return true
}

// Detach removes a viewer and returns how many remain. A departing pilot
// releases every held control.
func (g *Game) Detach(b Broadcaster) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.viewers, b)
	if g.pilot == b {
		g.pilot = nil
		g.queue.SetHeld(0)
	}
	return len(g.viewers)
}

// IsPilot reports whether b flies this session
func (g *Game) IsPilot(b Broadcaster) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return b != nil && g.pilot == b
}

// HandleInput merges pilot input into the queue drained by the next tick
func (g *Game) HandleInput(b Broadcaster, held sim.Control, pressed sim.Action) {
	if !g.IsPilot(b) {
		return
	}
	g.queue.SetHeld(held)
	if pressed != 0 {
		g.queue.Press(pressed)
	}
}

// ViewerCount returns the number of attached connections
func (g *Game) ViewerCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.viewers)
}

// Info summarises the session for listings
func (g *Game) Info() SessionInfo {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return SessionInfo{
		ID:      g.sid,
		State:   g.sim.State().String(),
		Score:   g.sim.Score(),
		Viewers: len(g.viewers),
		Pilot:   g.pilot != nil,
	}
}

// update runs one tick
func (g *Game) update() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.tick++
	events := g.sim.Update(g.clock(), &g.queue)
	if len(events) > 0 {
		g.broadcastJSON(Envelope{T: MsgEvent, Data: EventsMsg{Tick: g.tick, Events: events}})
	}

	if g.tick%BroadcastEvery == 0 {
		g.broadcastState()
	}
}

// broadcastState sends the msgpack snapshot to all viewers
func (g *Game) broadcastState() {
	frame := StateFrame{Tick: g.tick, SID: g.sid, Snapshot: g.sim.Snapshot()}
	data, err := msgpack.Marshal(&frame)
	if err != nil {
		g.log.WithError(err).Error("marshal snapshot")
		return
	}
	for v := range g.viewers {
		v.SendBinary(data)
	}
}

// broadcastJSON sends a message to all viewers
func (g *Game) broadcastJSON(msg Envelope) {
	for v := range g.viewers {
		v.SendJSON(msg)
	}
}

package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"void-runner/logger"
	"void-runner/sim"
)

const frameRate = 60

func main() {
	seed := flag.Int64("seed", 0, "Random seed (0 = random)")
	logPath := flag.String("log", "", "Write logs to this file")
	flag.Parse()

	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger.Configure(out, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()

	log := logger.Component("tui").WithField("seed", *seed)
	app := newApp(screen, rand.New(rand.NewSource(*seed)), log)
	app.run()
}

// app drives one local simulation from terminal input
type app struct {
	screen      tcell.Screen
	game        *sim.Game
	queue       sim.InputQueue
	keys        *heldKeys
	start       time.Time
	deathScreen bool
}

func newApp(screen tcell.Screen, rng sim.Rand, log *logrus.Entry) *app {
	return &app{
		screen: screen,
		game:   sim.New(sim.DefaultConfig(), rng, sim.WithLogger(log)),
		keys:   newHeldKeys(),
		start:  time.Now(),
	}
}

func (a *app) run() {
	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
			case *tcell.EventKey:
				if a.handleKey(ev, time.Now()) {
					return
				}
			}
		case now := <-ticker.C:
			a.frame(now)
		}
	}
}

// handleKey applies one key event and reports whether to quit
func (a *app) handleKey(ev *tcell.EventKey, now time.Time) bool {
	in := mapKey(ev)
	if in.quit {
		return true
	}
	if in.boost {
		a.keys.boost = !a.keys.boost
	}
	a.keys.touch(in.hold, now)
	if in.press != 0 {
		a.queue.Press(in.press)
	}
	return false
}

// frame advances the simulation to now and redraws
func (a *app) frame(now time.Time) {
	a.queue.SetHeld(a.keys.held(now))
	for _, e := range a.game.Update(now.Sub(a.start).Seconds(), &a.queue) {
		switch e.Kind {
		case sim.EventDeathScreen:
			a.deathScreen = true
		case sim.EventStateChanged:
			a.deathScreen = false
		}
	}
	draw(a.screen, a.game.Snapshot(), a.game.Config(), a.deathScreen)
}

package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"void-runner/sim"
)

const (
	viewDepth  = 200.0 // forward units shown above the ship
	viewSpread = 1.25  // lateral view, as a multiple of the ship bound
)

var (
	styleShip     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleShipHit  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBolt     = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleRed      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePurple   = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true)
	styleAsteroid = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleRing     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleRingDim  = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	stylePickup   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleWarn     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 100, 255)).Bold(true)
)

var enemyGlyph = [...]rune{sim.Drone: 'v', sim.Fighter: 'W', sim.Cruiser: 'M'}

// project maps a world position to a cell in a w x h playfield whose bottom
// row holds the ship. Forward (-Z) runs up the screen.
func project(w, h int, ship sim.ShipState, x, z, boundX float64) (col, row int, ok bool) {
	ahead := ship.Z - z
	if ahead < -viewDepth*0.1 || ahead > viewDepth || h < 2 || w < 2 {
		return 0, 0, false
	}
	span := boundX * viewSpread
	col = int((x + span) / (2 * span) * float64(w-1))
	row = (h - 1) - int(ahead/viewDepth*float64(h-1))
	if col < 0 || col >= w || row < 0 || row >= h {
		return 0, 0, false
	}
	return col, row, true
}

// draw renders the snapshot: playfield on top, HUD on the last line
func draw(s tcell.Screen, snap sim.Snapshot, cfg sim.Config, deathScreen bool) {
	s.Clear()
	w, h := s.Size()
	fieldH := h - 1

	put := func(x, z float64, r rune, st tcell.Style) {
		if c, row, ok := project(w, fieldH, snap.Ship, x, z, cfg.BoundX); ok {
			s.SetContent(c, row, r, nil, st)
		}
	}

	// corridor walls
	for _, x := range []float64{-cfg.BoundX, cfg.BoundX} {
		for row := 0; row < fieldH; row++ {
			if c, _, ok := project(w, fieldH, snap.Ship, x, snap.Ship.Z, cfg.BoundX); ok {
				s.SetContent(c, row, '.', nil, styleAsteroid)
			}
		}
	}

	for _, r := range snap.Rings {
		st := styleRing
		if r.Collected {
			st = styleRingDim
		}
		put(r.X-1, r.Z, '(', st)
		put(r.X+1, r.Z, ')', st)
	}
	for _, p := range snap.Pickups {
		put(p.X, p.Z, '+', stylePickup)
	}
	for _, a := range snap.Asteroids {
		g := 'o'
		if a.R > 2.5 {
			g = 'O'
		}
		put(a.X, a.Z, g, styleAsteroid)
	}
	for _, e := range snap.Enemies {
		put(e.X, e.Z, enemyGlyph[e.Kind], styleEnemy)
	}
	for _, b := range snap.Bolts {
		switch {
		case !b.Hostile:
			put(b.X, b.Z, '|', styleBolt)
		case sim.Color(b.Color) == sim.ColorPurple:
			put(b.X, b.Z, '*', stylePurple)
		default:
			put(b.X, b.Z, '*', styleRed)
		}
	}

	if sim.State(snap.State) != sim.StateMenu {
		st := styleShip
		if snap.Ship.Invincible {
			st = styleShipHit
		}
		put(snap.Ship.X, snap.Ship.Z, 'A', st)
	}

	drawHUD(s, snap, w, h-1)

	switch sim.State(snap.State) {
	case sim.StateMenu:
		centerText(s, w, fieldH/2-1, "V O I D   R U N N E R", styleTitle)
		centerText(s, w, fieldH/2+1, "SPACE to launch   arrows/WASD steer   b boost   q quit", styleHUD)
	case sim.StateDestroyed:
		if deathScreen {
			centerText(s, w, fieldH/2-1, "SHIP DESTROYED", styleWarn)
			centerText(s, w, fieldH/2+1, fmt.Sprintf("score %d   SPACE to continue", snap.Score), styleHUD)
		}
	}
	s.Show()
}

func drawHUD(s tcell.Screen, snap sim.Snapshot, w, y int) {
	hull := strings.Repeat("#", snap.Health) + strings.Repeat("-", snap.MaxHealth-snap.Health)
	line := fmt.Sprintf(" SCORE %-7d HULL [%s] DIST %-6.0f x%.2f", snap.Score, hull, snap.Distance, snap.Difficulty)
	if snap.Ship.Boost {
		line += "  BOOST"
	}
	st := styleHUD
	if snap.LowHealth {
		st = styleWarn
	}
	drawText(s, 0, y, line, st)

	// radar blips on the right end of the HUD line
	enemies := 0
	for _, b := range snap.Radar {
		if b.Type == sim.EntityEnemy {
			enemies++
		}
	}
	radar := fmt.Sprintf("RADAR %d ", enemies)
	if x := w - len(radar); x > len(line) {
		drawText(s, x, y, radar, styleEnemy)
	}
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, st)
	}
}

func centerText(s tcell.Screen, w, y int, text string, st tcell.Style) {
	x := (w - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	drawText(s, x, y, text, st)
}

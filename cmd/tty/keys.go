package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/breakout/ecs/component"
)

// holdKeys turns terminal key presses into held keys. Terminals send
// repeats but never releases, so a key counts as held until holdFor has
// passed since its last press.
type holdKeys struct {
	holdFor time.Duration
	last    map[component.Key]time.Time
}

func newHoldKeys(holdFor time.Duration) *holdKeys {
	return &holdKeys{holdFor: holdFor, last: make(map[component.Key]time.Time)}
}

func (h *holdKeys) press(k component.Key, now time.Time) {
	h.last[k] = now
}

func (h *holdKeys) snapshot(now time.Time) component.Input {
	var in component.Input
	for k, at := range h.last {
		if now.Sub(at) <= h.holdFor {
			in.Set(k, true)
			continue
		}
		delete(h.last, k)
	}
	return in
}

// keyFor maps a terminal key event to a game control.
func keyFor(ev *tcell.EventKey) (component.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return component.KeyLeft, true
	case tcell.KeyRight:
		return component.KeyRight, true
	case tcell.KeyUp:
		return component.KeyMenuUp, true
	case tcell.KeyDown:
		return component.KeyMenuDown, true
	case tcell.KeyEnter:
		return component.KeyConfirm, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return component.KeyLeft, true
		case 'd', 'D':
			return component.KeyRight, true
		case 'w', 'W':
			return component.KeyMenuUp, true
		case 's', 'S':
			return component.KeyMenuDown, true
		case ' ':
			return component.KeyLaunch, true
		}
	}
	return 0, false
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'))
}

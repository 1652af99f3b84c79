// Package drag coordinates moving tokens between bubble sets with the
// pointer. One Coordinator owns the single in-flight drag gesture of a
// screen; every set that takes part shares it.
package drag

import (
	"log/slog"

	"github.com/iw2rmb/chipset/bubble"
	"github.com/iw2rmb/chipset/sequence"
)

type EventKind uint8

const (
	DragStart EventKind = iota
	DragEnter
	DragLeave
	Drop
	DragEnd
)

func (k EventKind) String() string {
	switch k {
	case DragStart:
		return "dragstart"
	case DragEnter:
		return "dragenter"
	case DragLeave:
		return "dragleave"
	case Drop:
		return "drop"
	case DragEnd:
		return "dragend"
	default:
		return "unknown"
	}
}

// Event describes one step of a gesture. Set is the drop zone for
// DragEnter/DragLeave/Drop and the source otherwise. Keys lists the moved
// tokens on Drop.
type Event struct {
	Kind   EventKind
	Source *bubble.Set
	Set    *bubble.Set
	Keys   []string
}

type Config struct {
	Observer func(Event)
	Logger   *slog.Logger
}

type Coordinator struct {
	observer func(Event)
	log      *slog.Logger

	pressSet *bubble.Set
	pressID  sequence.ID

	source *bubble.Set
	over   *bubble.Set
	active bool
	busy   bool
}

func New(cfg Config) *Coordinator {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Coordinator{observer: cfg.Observer, log: log}
}

func (c *Coordinator) emit(ev Event) {
	if c.observer != nil {
		c.observer(ev)
	}
}

// Press arms a gesture on a draggable token of src. Nothing is dragged
// until the first Move.
func (c *Coordinator) Press(src *bubble.Set, id sequence.ID) bool {
	if c.busy || c.active || src == nil {
		return false
	}
	tok, ok := src.Container().Token(id)
	if !ok || !tok.Draggable {
		return false
	}
	c.pressSet, c.pressID = src, id
	return true
}

// Move reports pointer motion over zone (nil when outside every set). The
// first motion after Press starts the drag and adds the pressed token to
// the source selection.
func (c *Coordinator) Move(zone *bubble.Set) bool {
	if c.busy || c.pressSet == nil {
		return false
	}
	c.busy = true
	defer func() { c.busy = false }()

	if !c.active {
		if !c.pressSet.AddToggle(c.pressID) {
			c.reset()
			return false
		}
		c.source = c.pressSet
		c.active = true
		c.log.Debug("drag: start", slog.Int("tokens", len(c.source.Selected())))
		c.emit(Event{Kind: DragStart, Source: c.source, Set: c.source})
	}
	if zone != c.over {
		if c.over != nil {
			c.emit(Event{Kind: DragLeave, Source: c.source, Set: c.over})
		}
		c.over = zone
		if zone != nil {
			c.emit(Event{Kind: DragEnter, Source: c.source, Set: zone})
		}
	}
	return true
}

// Release ends the gesture over zone. When zone is a set other than the
// source, the selected tokens of the source move to its end and both sets
// report a change. It reports whether tokens were moved.
func (c *Coordinator) Release(zone *bubble.Set) bool {
	if c.busy {
		return false
	}
	if !c.active {
		c.reset()
		return false
	}
	c.busy = true
	defer func() { c.busy = false }()

	src := c.source
	moved := false
	if zone != nil && zone != src {
		keys := transfer(src, zone)
		if len(keys) > 0 {
			moved = true
			src.NotifyChange()
			zone.Focus()
			zone.NotifyChange()
			c.log.Debug("drag: drop", slog.Int("tokens", len(keys)))
			c.emit(Event{Kind: Drop, Source: src, Set: zone, Keys: keys})
		}
	}
	c.emit(Event{Kind: DragEnd, Source: src, Set: src})
	c.reset()
	return moved
}

// Cancel aborts the gesture without moving anything.
func (c *Coordinator) Cancel() {
	if c.busy {
		return
	}
	if c.active {
		c.emit(Event{Kind: DragEnd, Source: c.source, Set: c.source})
	}
	c.reset()
}

func (c *Coordinator) Active() bool        { return c.active }
func (c *Coordinator) Source() *bubble.Set { return c.source }
func (c *Coordinator) Over() *bubble.Set   { return c.over }

// Pressed returns the set holding an armed or active gesture.
func (c *Coordinator) Pressed() *bubble.Set { return c.pressSet }

func (c *Coordinator) reset() {
	c.pressSet, c.pressID = nil, 0
	c.source, c.over = nil, nil
	c.active = false
}

func transfer(from, to *bubble.Set) []string {
	src, dst := from.Container(), to.Container()
	var keys []string
	for _, id := range from.Selected() {
		tok, ok := src.Detach(id)
		if !ok {
			continue
		}
		tok.Selected = false
		dst.Append(sequence.TokenPiece(tok))
		keys = append(keys, tok.Key)
	}
	return keys
}

package bubble

import (
	"log/slog"
	"time"

	"github.com/iw2rmb/chipset/internal/coalesce"
	"github.com/iw2rmb/chipset/sequence"
)

// Notifier receives the outward notifications of a Set.
type Notifier struct {
	// OnInput receives the current input value when it differs from the
	// last delivered one.
	OnInput func(value string)
	// OnChange fires when tokens were added, removed or moved.
	OnChange func()
	// OnEdit fires when a token is about to be turned back into text.
	OnEdit func(tok sequence.Token)
}

type Config struct {
	// Options is the typed base configuration. nil means DefaultOptions.
	Options *Options
	// Raw is resolved on top of Options on first use.
	Raw   RawOptions
	Hooks HookLookup

	Notifier Notifier
	// Request is called whenever a notification becomes pending; the host
	// must then call Flush, typically on its next frame. With a nil
	// Request notifications are delivered synchronously.
	Request func()

	// DragSupported marks tokens draggable when Options.Draggable is set.
	DragSupported bool

	Logger *slog.Logger
}

// Set is the model of one bubble input.
type Set struct {
	c *sequence.Container

	base  Options
	raw   RawOptions
	hooks HookLookup
	opts  *Options

	anchor sequence.ID

	notify    Notifier
	input     *coalesce.Emitter[struct{}]
	change    *coalesce.Emitter[struct{}]
	edit      *coalesce.Emitter[sequence.Token]
	lastInput string

	lastClick time.Time
	drag      bool
	log       *slog.Logger
}

func New(cfg Config) *Set {
	base := DefaultOptions()
	if cfg.Options != nil {
		base = *cfg.Options
	}
	raw := RawOptions{}
	for k, v := range cfg.Raw {
		raw[k] = v
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	s := &Set{
		c:      sequence.New(),
		base:   base,
		raw:    raw,
		hooks:  cfg.Hooks,
		notify: cfg.Notifier,
		drag:   cfg.DragSupported,
		log:    log,
	}
	s.input = coalesce.New(func(struct{}) { s.deliverInput() }, cfg.Request)
	s.change = coalesce.New(func(struct{}) {
		if s.notify.OnChange != nil {
			s.notify.OnChange()
		}
	}, cfg.Request)
	s.edit = coalesce.New(func(tok sequence.Token) {
		if s.notify.OnEdit != nil {
			s.notify.OnEdit(tok)
		}
	}, cfg.Request)
	return s
}

// Container exposes the underlying sequence.
func (s *Set) Container() *sequence.Container { return s.c }

// Options returns the resolved options, resolving them on first use.
func (s *Set) Options() Options {
	if s.opts == nil {
		o, err := Prepare(s.base, s.raw, s.hooks)
		if err != nil {
			s.log.Warn("bubble: resolve options", slog.Any("err", err))
		}
		s.opts = &o
	}
	return *s.opts
}

// SetOption stores a raw option value and re-resolves the options.
func (s *Set) SetOption(name string, value any) error {
	s.raw[name] = value
	o, err := Prepare(s.base, s.raw, s.hooks)
	s.opts = &o
	return err
}

// SetHooks replaces the hook lookup and re-resolves the options.
func (s *Set) SetHooks(h HookLookup) error {
	s.hooks = h
	o, err := Prepare(s.base, s.raw, s.hooks)
	s.opts = &o
	return err
}

// Reconfigure replaces the typed base options and raw values.
func (s *Set) Reconfigure(base Options, raw RawOptions) error {
	s.base = base
	s.raw = RawOptions{}
	for k, v := range raw {
		s.raw[k] = v
	}
	o, err := Prepare(s.base, s.raw, s.hooks)
	s.opts = &o
	return err
}

// Flush delivers every pending notification.
func (s *Set) Flush() {
	s.edit.Flush()
	s.input.Flush()
	s.change.Flush()
}

// Pending reports whether any notification awaits Flush.
func (s *Set) Pending() bool {
	return s.edit.Pending() || s.input.Pending() || s.change.Pending()
}

// Close drops pending notifications.
func (s *Set) Close() {
	s.edit.Cancel()
	s.input.Cancel()
	s.change.Cancel()
}

func (s *Set) fireInput()                { s.input.Schedule(struct{}{}) }
func (s *Set) fireChange()               { s.change.Schedule(struct{}{}) }
func (s *Set) fireEdit(t sequence.Token) { s.edit.Schedule(t) }

// NotifyChange reports an external change of the token set, such as a
// completed drop.
func (s *Set) NotifyChange() { s.fireChange() }

func (s *Set) deliverInput() {
	v := s.InputValue()
	if v == s.lastInput {
		return
	}
	s.lastInput = v
	if s.notify.OnInput != nil {
		s.notify.OnInput(v)
	}
}

package bubble

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"github.com/iw2rmb/chipset/sequence"
)

type (
	// FormationFunc decorates a freshly created token.
	FormationFunc func(tok *sequence.Token)
	// DeformationFunc supplies the text and initial selection used when a
	// token is turned back into text. ok=false falls back to the token text.
	DeformationFunc func(tok sequence.Token) (d Deformation, ok bool)
	// CopyFunc renders selected tokens for the clipboard.
	CopyFunc func(toks []sequence.Token) string
	// CheckPasteFunc reports whether pasted text should be segmented right
	// away.
	CheckPasteFunc func(text string) bool
)

// Deformation is the editable text seeded in place of a token together
// with the rune range to select in it.
type Deformation struct {
	Text  string
	Start int
	End   int
}

// Options configure one Set.
type Options struct {
	Separator Matcher
	// Ending wins over Beginning when both are set.
	Ending    Matcher
	Beginning Matcher

	// ClassBubble is a whitespace separated class list applied to tokens.
	ClassBubble     string
	Draggable       bool
	DisableControls bool

	Formation   FormationFunc
	Deformation DeformationFunc
	Copy        CopyFunc
	CheckPaste  CheckPasteFunc
}

var defaultSeparator = regexp.MustCompile(`[,;]`)

func DefaultOptions() Options {
	return Options{
		Separator:   Regexp{Re: defaultSeparator},
		ClassBubble: "bubble",
		Draggable:   true,
	}
}

// Option names understood by RawOptions.
const (
	OptSeparator       = "separator"
	OptEnding          = "ending"
	OptBeginning       = "beginning"
	OptClassBubble     = "classBubble"
	OptDraggable       = "draggable"
	OptDisableControls = "disableControls"
	OptFormation       = "bubbleFormation"
	OptDeformation     = "bubbleDeformation"
	OptCopy            = "bubbleCopy"
	OptCheckPaste      = "checkBubblePaste"

	// optBeginningAlt is the historical attribute spelling.
	optBeginningAlt = "begining"
)

var optionNames = []string{
	OptSeparator, OptEnding, OptBeginning, optBeginningAlt,
	OptClassBubble, OptDraggable, OptDisableControls,
	OptFormation, OptDeformation, OptCopy, OptCheckPaste,
}

// RawOptions holds unresolved option values keyed by option name, the way
// they arrive from element attributes or a config file: strings, bools,
// Matchers, *regexp.Regexp or hook funcs. A nil pattern value disables the
// pattern.
type RawOptions map[string]any

// HookLookup resolves hook names to Go callbacks.
type HookLookup interface {
	LookupFormation(name string) (FormationFunc, error)
	LookupDeformation(name string) (DeformationFunc, error)
	LookupCopy(name string) (CopyFunc, error)
	LookupCheckPaste(name string) (CheckPasteFunc, error)
}

var (
	ErrUnknownOption = errors.New("unknown option")
	ErrOptionType    = errors.New("unsupported option value")
	ErrNoHookLookup  = errors.New("no hook lookup configured")
)

// Prepare resolves raw on top of base. Values that fail to resolve leave
// the base value in place; all failures are reported joined.
func Prepare(base Options, raw RawOptions, hooks HookLookup) (Options, error) {
	out := base
	var errs []error
	known := make(map[string]bool, len(optionNames))
	for _, name := range optionNames {
		known[name] = true
		v, ok := raw[name]
		if !ok {
			continue
		}
		if err := out.set(name, v, hooks); err != nil {
			errs = append(errs, fmt.Errorf("option %s: %w", name, err))
		}
	}
	for name := range raw {
		if !known[name] {
			errs = append(errs, fmt.Errorf("option %s: %w", name, ErrUnknownOption))
		}
	}
	return out, errors.Join(errs...)
}

func (o *Options) set(name string, v any, hooks HookLookup) error {
	switch name {
	case OptSeparator:
		return setPattern(&o.Separator, v)
	case OptEnding:
		return setPattern(&o.Ending, v)
	case OptBeginning, optBeginningAlt:
		return setPattern(&o.Beginning, v)
	case OptClassBubble:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: %T", ErrOptionType, v)
		}
		o.ClassBubble = s
	case OptDraggable:
		return setBool(&o.Draggable, v)
	case OptDisableControls:
		return setBool(&o.DisableControls, v)
	case OptFormation:
		return setHook(&o.Formation, v, hooks, HookLookup.LookupFormation)
	case OptDeformation:
		return setHook(&o.Deformation, v, hooks, HookLookup.LookupDeformation)
	case OptCopy:
		return setHook(&o.Copy, v, hooks, HookLookup.LookupCopy)
	case OptCheckPaste:
		return setHook(&o.CheckPaste, v, hooks, HookLookup.LookupCheckPaste)
	default:
		return ErrUnknownOption
	}
	return nil
}

func setPattern(dst *Matcher, v any) error {
	switch x := v.(type) {
	case nil:
		*dst = nil
	case Matcher:
		*dst = x
	case *regexp.Regexp:
		*dst = Regexp{Re: x}
	case string:
		m, err := ParsePattern(x)
		if err != nil {
			return err
		}
		*dst = m
	default:
		return fmt.Errorf("%w: %T", ErrOptionType, v)
	}
	return nil
}

func setBool(dst *bool, v any) error {
	switch x := v.(type) {
	case bool:
		*dst = x
	case string:
		*dst = x == "true" || x == "on"
	default:
		return fmt.Errorf("%w: %T", ErrOptionType, v)
	}
	return nil
}

func setHook[F any](dst *F, v any, hooks HookLookup, lookup func(HookLookup, string) (F, error)) error {
	switch x := v.(type) {
	case nil:
		var zero F
		*dst = zero
		return nil
	case string:
		if hooks == nil {
			return fmt.Errorf("hook %q: %w", x, ErrNoHookLookup)
		}
		fn, err := lookup(hooks, x)
		if err != nil {
			return err
		}
		*dst = fn
		return nil
	}
	// Accept plain func literals of the matching signature.
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Func {
		ft := reflect.TypeOf((*F)(nil)).Elem()
		if rv.Type().ConvertibleTo(ft) {
			*dst = rv.Convert(ft).Interface().(F)
			return nil
		}
	}
	return fmt.Errorf("%w: %T", ErrOptionType, v)
}

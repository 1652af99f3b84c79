// Package config loads bubble options from TOML or YAML files and watches
// them for changes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/chipset/bubble"
	"github.com/iw2rmb/chipset/luahook"
)

// ErrUnsupportedFormat is returned for files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// File is the on-disk options document. Pointer fields distinguish an
// absent key (keep the default) from an explicit value. An empty pattern
// string disables the pattern.
type File struct {
	Separator       *string `toml:"separator" yaml:"separator"`
	Ending          *string `toml:"ending" yaml:"ending"`
	Beginning       *string `toml:"beginning" yaml:"beginning"`
	ClassBubble     *string `toml:"class_bubble" yaml:"class_bubble"`
	Draggable       *bool   `toml:"draggable" yaml:"draggable"`
	DisableControls *bool   `toml:"disable_controls" yaml:"disable_controls"`

	Hooks  Hooks                 `toml:"hooks" yaml:"hooks"`
	Styles map[string]ClassStyle `toml:"styles" yaml:"styles"`

	// dir is the directory the file was loaded from.
	dir string
}

// Hooks names Lua functions defined in Script.
type Hooks struct {
	// Script is resolved relative to the config file.
	Script      string `toml:"script" yaml:"script"`
	Formation   string `toml:"formation" yaml:"formation"`
	Deformation string `toml:"deformation" yaml:"deformation"`
	Copy        string `toml:"copy" yaml:"copy"`
	CheckPaste  string `toml:"check_paste" yaml:"check_paste"`
}

// ClassStyle colours tokens carrying a class. The keys "bubble" and
// "selected" style every token and selected tokens.
type ClassStyle struct {
	Foreground string `toml:"foreground" yaml:"foreground"`
	Background string `toml:"background" yaml:"background"`
	Bold       bool   `toml:"bold" yaml:"bold"`
	Underline  bool   `toml:"underline" yaml:"underline"`
}

// Load reads path, choosing the decoder by extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	f, err := Parse(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// Parse decodes data in the format named by ext (".toml", ".yaml" or
// ".yml"). Unknown keys are rejected.
func Parse(ext string, data []byte) (*File, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parsing toml: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return &f, nil
}

// Raw converts the document into raw bubble options. Hook names are kept
// as strings for resolution through a HookLookup.
func (f *File) Raw() bubble.RawOptions {
	raw := bubble.RawOptions{}
	pattern := func(name string, v *string) {
		if v == nil {
			return
		}
		if *v == "" {
			raw[name] = nil
			return
		}
		raw[name] = *v
	}
	pattern(bubble.OptSeparator, f.Separator)
	pattern(bubble.OptEnding, f.Ending)
	pattern(bubble.OptBeginning, f.Beginning)
	if f.ClassBubble != nil {
		raw[bubble.OptClassBubble] = *f.ClassBubble
	}
	if f.Draggable != nil {
		raw[bubble.OptDraggable] = *f.Draggable
	}
	if f.DisableControls != nil {
		raw[bubble.OptDisableControls] = *f.DisableControls
	}
	hook := func(name, v string) {
		if v != "" {
			raw[name] = v
		}
	}
	hook(bubble.OptFormation, f.Hooks.Formation)
	hook(bubble.OptDeformation, f.Hooks.Deformation)
	hook(bubble.OptCopy, f.Hooks.Copy)
	hook(bubble.OptCheckPaste, f.Hooks.CheckPaste)
	return raw
}

// ScriptPath returns the hook script path relative to the config file's
// directory, or "" when none is configured.
func (f *File) ScriptPath() string {
	if f.Hooks.Script == "" {
		return ""
	}
	if filepath.IsAbs(f.Hooks.Script) || f.dir == "" {
		return f.Hooks.Script
	}
	return filepath.Join(f.dir, f.Hooks.Script)
}

// Resolved is a fully prepared configuration. Runtime is nil when no hook
// script is configured; the caller owns it and must Close it.
type Resolved struct {
	Options bubble.Options
	Raw     bubble.RawOptions
	Runtime *luahook.Runtime
	Styles  map[string]ClassStyle
}

func (r *Resolved) Close() error {
	if r == nil || r.Runtime == nil {
		return nil
	}
	return r.Runtime.Close()
}

// Resolve loads the hook script, if any, and prepares options on top of
// bubble.DefaultOptions. Option errors are returned alongside a usable
// result; a script that fails to load is fatal.
func (f *File) Resolve(log *slog.Logger) (*Resolved, error) {
	if log == nil {
		log = slog.Default()
	}
	res := &Resolved{Raw: f.Raw(), Styles: f.Styles}
	var hooks bubble.HookLookup
	if p := f.ScriptPath(); p != "" {
		rt := luahook.New(luahook.WithLogger(log))
		if err := rt.LoadFile(p); err != nil {
			_ = rt.Close()
			return nil, fmt.Errorf("hooks script: %w", err)
		}
		res.Runtime = rt
		hooks = rt
	}
	o, err := bubble.Prepare(bubble.DefaultOptions(), res.Raw, hooks)
	res.Options = o
	if err != nil {
		log.Warn("config: resolve options", slog.Any("err", err))
	}
	return res, err
}

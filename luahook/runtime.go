// Package luahook runs user hook scripts for bubble sets in a sandboxed
// Lua runtime and exposes their functions as bubble hooks.
//
// A hook script defines global functions, for example:
//
//	function formation(tok)
//	  if tok.text:find("@") then table.insert(tok.classes, "mail") end
//	  return tok
//	end
//
//	function copy(toks)
//	  local out = {}
//	  for _, t in ipairs(toks) do out[#out + 1] = t.text end
//	  return table.concat(out, ", ")
//	end
//
// Tokens are passed as tables with the fields key, text, attrs, classes,
// readonly, draggable and selected.
package luahook

import (
	"fmt"
	"log/slog"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// Runtime wraps a gopher-lua state. gopher-lua states are not goroutine
// safe; the mutex serialises every call made through the Runtime.
type Runtime struct {
	L *lua.LState

	mu     sync.Mutex
	closed bool
	log    *slog.Logger
}

// Option configures a Runtime.
type Option func(*Runtime)

func WithLogger(l *slog.Logger) Option {
	return func(r *Runtime) { r.log = l }
}

// New creates a runtime with only the base, table, string and math
// libraries opened and the file loaders removed.
func New(opts ...Option) *Runtime {
	r := &Runtime{log: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
	r.L = L
	return r
}

// LoadFile executes a hook script from disk.
func (r *Runtime) LoadFile(path string) error {
	return r.do(func() error { return r.L.DoFile(path) }, path)
}

// LoadString executes hook source code.
func (r *Runtime) LoadString(code string) error {
	return r.do(func() error { return r.L.DoString(code) }, "<string>")
}

func (r *Runtime) do(fn func() error, name string) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRuntimeClosed
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("luahook: load %s: panic: %v", name, p)
		}
	}()
	if err := fn(); err != nil {
		return fmt.Errorf("luahook: load %s: %w", name, err)
	}
	return nil
}

// Has reports whether name is a global Lua function.
func (r *Runtime) Has(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return false
	}
	return r.L.GetGlobal(name).Type() == lua.LTFunction
}

func (r *Runtime) function(name string) (*lua.LFunction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrRuntimeClosed
	}
	fn, ok := r.L.GetGlobal(name).(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("luahook: %q: %w", name, ErrHookNotFound)
	}
	return fn, nil
}

// call invokes fn with args built by mkArgs and returns one result.
// Errors are logged and reported as ok=false.
func (r *Runtime) call(name string, fn *lua.LFunction, mkArgs func(L *lua.LState) []lua.LValue, use func(L *lua.LState, ret lua.LValue)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return false
	}
	ok := true
	func() {
		defer func() {
			if p := recover(); p != nil {
				r.log.Warn("luahook: hook panicked", slog.String("hook", name), slog.Any("panic", p))
				ok = false
			}
		}()
		if err := r.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, mkArgs(r.L)...); err != nil {
			r.log.Warn("luahook: hook failed", slog.String("hook", name), slog.Any("err", err))
			ok = false
			return
		}
		ret := r.L.Get(-1)
		r.L.Pop(1)
		use(r.L, ret)
	}()
	return ok
}

// Close releases the Lua state. Hooks obtained earlier become no-ops.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.L.Close()
	r.closed = true
	return nil
}

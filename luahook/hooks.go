package luahook

import (
	"sort"

	lua "github.com/yuin/gopher-lua"

	"github.com/iw2rmb/chipset/bubble"
	"github.com/iw2rmb/chipset/sequence"
)

var _ bubble.HookLookup = (*Runtime)(nil)

// LookupFormation returns a formation hook backed by the Lua function name.
// The function receives a token table and may either mutate it in place or
// return a replacement table.
func (r *Runtime) LookupFormation(name string) (bubble.FormationFunc, error) {
	fn, err := r.function(name)
	if err != nil {
		return nil, err
	}
	return func(tok *sequence.Token) {
		var tbl *lua.LTable
		r.call(name, fn, func(L *lua.LState) []lua.LValue {
			tbl = tokenTable(L, *tok)
			return []lua.LValue{tbl}
		}, func(_ *lua.LState, ret lua.LValue) {
			if t, ok := ret.(*lua.LTable); ok {
				tbl = t
			}
			applyTable(tbl, tok)
		})
	}, nil
}

// LookupDeformation returns a deformation hook. The Lua function receives a
// token table and returns a table {text = ..., start = n, ["end"] = m} with
// 0-based rune offsets, or nil to keep the default behaviour.
func (r *Runtime) LookupDeformation(name string) (bubble.DeformationFunc, error) {
	fn, err := r.function(name)
	if err != nil {
		return nil, err
	}
	return func(tok sequence.Token) (bubble.Deformation, bool) {
		var (
			d   bubble.Deformation
			got bool
		)
		r.call(name, fn, func(L *lua.LState) []lua.LValue {
			return []lua.LValue{tokenTable(L, tok)}
		}, func(_ *lua.LState, ret lua.LValue) {
			switch v := ret.(type) {
			case lua.LString:
				d = bubble.Deformation{Text: string(v), Start: 0, End: len([]rune(string(v)))}
				got = true
			case *lua.LTable:
				s, ok := v.RawGetString("text").(lua.LString)
				if !ok {
					return
				}
				d.Text = string(s)
				d.End = len([]rune(d.Text))
				if n, ok := v.RawGetString("start").(lua.LNumber); ok {
					d.Start = int(n)
				}
				if n, ok := v.RawGetString("end").(lua.LNumber); ok {
					d.End = int(n)
				}
				got = true
			}
		})
		return d, got
	}, nil
}

// LookupCopy returns a copy hook. The Lua function receives an array of
// token tables and returns the clipboard string.
func (r *Runtime) LookupCopy(name string) (bubble.CopyFunc, error) {
	fn, err := r.function(name)
	if err != nil {
		return nil, err
	}
	return func(toks []sequence.Token) string {
		var out string
		r.call(name, fn, func(L *lua.LState) []lua.LValue {
			arr := L.NewTable()
			for _, t := range toks {
				arr.Append(tokenTable(L, t))
			}
			return []lua.LValue{arr}
		}, func(_ *lua.LState, ret lua.LValue) {
			if s, ok := ret.(lua.LString); ok {
				out = string(s)
			}
		})
		return out
	}, nil
}

// LookupCheckPaste returns a paste predicate. Lua truthiness applies.
func (r *Runtime) LookupCheckPaste(name string) (bubble.CheckPasteFunc, error) {
	fn, err := r.function(name)
	if err != nil {
		return nil, err
	}
	return func(text string) bool {
		var out bool
		r.call(name, fn, func(*lua.LState) []lua.LValue {
			return []lua.LValue{lua.LString(text)}
		}, func(_ *lua.LState, ret lua.LValue) {
			out = lua.LVAsBool(ret)
		})
		return out
	}, nil
}

func tokenTable(L *lua.LState, tok sequence.Token) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("key", lua.LString(tok.Key))
	t.RawSetString("text", lua.LString(tok.Text))
	attrs := L.NewTable()
	keys := make([]string, 0, len(tok.Attrs))
	for k := range tok.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs.RawSetString(k, lua.LString(sequence.UnescapeAttr(tok.Attrs[k])))
	}
	t.RawSetString("attrs", attrs)
	classes := L.NewTable()
	for _, c := range tok.Classes {
		classes.Append(lua.LString(c))
	}
	t.RawSetString("classes", classes)
	t.RawSetString("readonly", lua.LBool(tok.Readonly))
	t.RawSetString("draggable", lua.LBool(tok.Draggable))
	t.RawSetString("selected", lua.LBool(tok.Selected))
	return t
}

// applyTable copies the writable token fields back from t. The key and
// selection state stay under Go control. Scripts see attribute values
// unescaped; they are escaped again on the way back.
func applyTable(t *lua.LTable, tok *sequence.Token) {
	if t == nil {
		return
	}
	if s, ok := t.RawGetString("text").(lua.LString); ok {
		tok.Text = string(s)
	}
	if attrs, ok := t.RawGetString("attrs").(*lua.LTable); ok {
		m := make(map[string]string)
		attrs.ForEach(func(k, v lua.LValue) {
			ks, kok := k.(lua.LString)
			if !kok || v == lua.LNil {
				return
			}
			m[string(ks)] = sequence.EscapeAttr(v.String())
		})
		if len(m) == 0 {
			m = nil
		}
		tok.Attrs = m
	}
	if classes, ok := t.RawGetString("classes").(*lua.LTable); ok {
		var cs []string
		seen := map[string]bool{}
		n := classes.Len()
		for i := 1; i <= n; i++ {
			s, ok := classes.RawGetInt(i).(lua.LString)
			if !ok || s == "" || seen[string(s)] {
				continue
			}
			seen[string(s)] = true
			cs = append(cs, string(s))
		}
		tok.Classes = cs
	}
	if b, ok := t.RawGetString("readonly").(lua.LBool); ok {
		tok.Readonly = bool(b)
	}
	if b, ok := t.RawGetString("draggable").(lua.LBool); ok {
		tok.Draggable = bool(b)
	}
}

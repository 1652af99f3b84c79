package luahook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/chipset/bubble"
	"github.com/iw2rmb/chipset/sequence"
)

const hooksSrc = `
function formation(tok)
  if string.find(tok.text, "@", 1, true) then
    table.insert(tok.classes, "mail")
    tok.attrs.kind = "email"
  end
  if tok.text == "root" then tok.readonly = true end
end

function upper(tok)
  return { text = string.upper(tok.text), classes = tok.classes }
end

function deform(tok)
  local at = string.find(tok.text, "@", 1, true)
  if not at then return nil end
  return { text = tok.text, start = 0, ["end"] = at - 1 }
end

function copy(toks)
  local out = {}
  for _, t in ipairs(toks) do out[#out + 1] = t.text end
  return table.concat(out, "; ")
end

function check(text)
  return string.find(text, ",", 1, true) ~= nil
end

function broken(tok)
  error("boom")
end

not_a_function = 42
`

func newRuntime(t *testing.T) *Runtime {
	t.Helper()
	r := New()
	t.Cleanup(func() { _ = r.Close() })
	require.NoError(t, r.LoadString(hooksSrc))
	return r
}

func TestSandboxRemovesLoaders(t *testing.T) {
	r := New()
	defer r.Close()

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		assert.False(t, r.Has(name), name)
	}
	err := r.LoadString(`os.exit(1)`)
	assert.Error(t, err)
	err = r.LoadString(`io.write("x")`)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hooks.lua")
	require.NoError(t, os.WriteFile(path, []byte(hooksSrc), 0o644))

	r := New()
	defer r.Close()
	require.NoError(t, r.LoadFile(path))
	assert.True(t, r.Has("formation"))
	assert.False(t, r.Has("not_a_function"))

	assert.Error(t, r.LoadFile(filepath.Join(t.TempDir(), "missing.lua")))
}

func TestLoadStringSyntaxError(t *testing.T) {
	r := New()
	defer r.Close()
	assert.Error(t, r.LoadString(`function (`))
}

func TestLookupNotFound(t *testing.T) {
	r := newRuntime(t)

	_, err := r.LookupFormation("missing")
	assert.ErrorIs(t, err, ErrHookNotFound)
	_, err = r.LookupCopy("not_a_function")
	assert.ErrorIs(t, err, ErrHookNotFound)
}

func TestFormationSeesRawAttrs(t *testing.T) {
	r := New()
	defer r.Close()
	require.NoError(t, r.LoadString(`
function label(tok)
  tok.attrs.seen = tok.attrs.email
  tok.attrs.title = "<" .. tok.text .. ">"
end
`))
	f, err := r.LookupFormation("label")
	require.NoError(t, err)

	tok := sequence.Token{Text: "bob", Attrs: map[string]string{"email": sequence.EscapeAttr(`"b" <b@x>`)}}
	f(&tok)
	assert.Equal(t, map[string]string{
		"email": "&quot;b&quot; &lt;b@x&gt;",
		"seen":  "&quot;b&quot; &lt;b@x&gt;",
		"title": "&lt;bob&gt;",
	}, tok.Attrs)
	assert.Equal(t, `"b" <b@x>`, sequence.UnescapeAttr(tok.Attrs["seen"]))
}

func TestFormationMutatesToken(t *testing.T) {
	r := newRuntime(t)
	f, err := r.LookupFormation("formation")
	require.NoError(t, err)

	tok := sequence.Token{Key: "k1", Text: "bob@x.com", Classes: []string{"bubble"}, Draggable: true}
	f(&tok)
	assert.Equal(t, []string{"bubble", "mail"}, tok.Classes)
	assert.Equal(t, map[string]string{"kind": "email"}, tok.Attrs)
	assert.Equal(t, "k1", tok.Key)
	assert.True(t, tok.Draggable)

	root := sequence.Token{Text: "root"}
	f(&root)
	assert.True(t, root.Readonly)
}

func TestFormationReturnedTable(t *testing.T) {
	r := newRuntime(t)
	f, err := r.LookupFormation("upper")
	require.NoError(t, err)

	tok := sequence.Token{Text: "abc", Classes: []string{"bubble"}}
	f(&tok)
	assert.Equal(t, "ABC", tok.Text)
	assert.Equal(t, []string{"bubble"}, tok.Classes)
}

func TestFormationErrorIsNoop(t *testing.T) {
	r := newRuntime(t)
	f, err := r.LookupFormation("broken")
	require.NoError(t, err)

	tok := sequence.Token{Text: "abc", Classes: []string{"bubble"}}
	f(&tok)
	assert.Equal(t, sequence.Token{Text: "abc", Classes: []string{"bubble"}}, tok)

	// The state stays usable after a failed call.
	c, err := r.LookupCopy("copy")
	require.NoError(t, err)
	assert.Equal(t, "abc", c([]sequence.Token{tok}))
}

func TestDeformation(t *testing.T) {
	r := newRuntime(t)
	d, err := r.LookupDeformation("deform")
	require.NoError(t, err)

	got, ok := d(sequence.Token{Text: "bob@x.com"})
	require.True(t, ok)
	assert.Equal(t, bubble.Deformation{Text: "bob@x.com", Start: 0, End: 3}, got)

	_, ok = d(sequence.Token{Text: "plain"})
	assert.False(t, ok)
}

func TestCopyAndCheckPaste(t *testing.T) {
	r := newRuntime(t)
	c, err := r.LookupCopy("copy")
	require.NoError(t, err)
	assert.Equal(t, "a; b", c([]sequence.Token{{Text: "a"}, {Text: "b"}}))
	assert.Equal(t, "", c(nil))

	p, err := r.LookupCheckPaste("check")
	require.NoError(t, err)
	assert.True(t, p("a, b"))
	assert.False(t, p("ab"))
}

func TestClosedRuntime(t *testing.T) {
	r := New()
	require.NoError(t, r.LoadString(hooksSrc))
	c, err := r.LookupCopy("copy")
	require.NoError(t, err)

	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	assert.ErrorIs(t, r.LoadString(`x = 1`), ErrRuntimeClosed)
	_, err = r.LookupCopy("copy")
	assert.ErrorIs(t, err, ErrRuntimeClosed)
	assert.Equal(t, "", c([]sequence.Token{{Text: "a"}}))
}

func TestPrepareWithRuntime(t *testing.T) {
	r := newRuntime(t)
	o, err := bubble.Prepare(bubble.DefaultOptions(), bubble.RawOptions{
		bubble.OptFormation: "formation",
		bubble.OptCopy:      "copy",
	}, r)
	require.NoError(t, err)
	require.NotNil(t, o.Formation)
	require.NotNil(t, o.Copy)

	_, err = bubble.Prepare(bubble.DefaultOptions(), bubble.RawOptions{
		bubble.OptCheckPaste: "missing",
	}, r)
	assert.ErrorIs(t, err, ErrHookNotFound)
}

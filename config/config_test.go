package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/chipset/bubble"
	"github.com/iw2rmb/chipset/sequence"
)

const tomlDoc = `
separator = "/[,;]/"
ending = "/\\.(com|org)/i"
class_bubble = "bubble addr"
draggable = false

[hooks]
script = "hooks.lua"
formation = "formation"
copy = "copy"

[styles.mail]
foreground = "#ffffff"
background = "#005f87"
bold = true
`

const yamlDoc = `
separator: "|"
beginning: ""
disable_controls: true
styles:
  selected:
    background: "212"
`

const hooksLua = `
function formation(tok) table.insert(tok.classes, "mail") end
function copy(toks)
  local out = {}
  for _, t in ipairs(toks) do out[#out + 1] = t.text end
  return table.concat(out, " | ")
end
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "chips.toml", tomlDoc)

	f, err := Load(p)
	require.NoError(t, err)
	require.NotNil(t, f.Separator)
	assert.Equal(t, "/[,;]/", *f.Separator)
	assert.Nil(t, f.Beginning)
	assert.Equal(t, "hooks.lua", f.Hooks.Script)
	assert.Equal(t, filepath.Join(dir, "hooks.lua"), f.ScriptPath())
	assert.Equal(t, ClassStyle{Foreground: "#ffffff", Background: "#005f87", Bold: true}, f.Styles["mail"])

	raw := f.Raw()
	assert.Equal(t, "bubble addr", raw[bubble.OptClassBubble])
	assert.Equal(t, false, raw[bubble.OptDraggable])
	assert.Equal(t, "formation", raw[bubble.OptFormation])
	_, ok := raw[bubble.OptDeformation]
	assert.False(t, ok)
}

func TestLoadYAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "chips.yml", yamlDoc)

	f, err := Load(p)
	require.NoError(t, err)
	raw := f.Raw()
	assert.Equal(t, "|", raw[bubble.OptSeparator])
	v, ok := raw[bubble.OptBeginning]
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, true, raw[bubble.OptDisableControls])
	assert.Equal(t, "212", f.Styles["selected"].Background)
	assert.Equal(t, "", f.ScriptPath())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(writeFile(t, dir, "chips.json", `{}`))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(writeFile(t, dir, "bad.toml", `unknown_key = 1`))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "bad.yaml", "separator: [1, 2\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveWithHooks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hooks.lua", hooksLua)
	f, err := Load(writeFile(t, dir, "chips.toml", tomlDoc))
	require.NoError(t, err)

	res, err := f.Resolve(nil)
	require.NoError(t, err)
	defer res.Close()
	require.NotNil(t, res.Runtime)

	o := res.Options
	assert.Equal(t, "bubble addr", o.ClassBubble)
	assert.False(t, o.Draggable)
	require.NotNil(t, o.Ending)
	require.NotNil(t, o.Formation)
	require.NotNil(t, o.Copy)

	s := bubble.New(bubble.Config{Options: &o})
	s.SetContent("a@b.COM c")
	toks := s.Tokens()
	require.Len(t, toks, 2)
	assert.Equal(t, "a@b.COM", toks[0].Text)
	assert.True(t, toks[0].HasClass("mail"))
	assert.True(t, toks[0].HasClass("addr"))
	assert.Equal(t, "c", toks[1].Text)

	assert.Equal(t, "x | y", o.Copy([]sequence.Token{{Text: "x"}, {Text: "y"}}))
}

func TestResolveMissingScript(t *testing.T) {
	f, err := Load(writeFile(t, t.TempDir(), "chips.toml", tomlDoc))
	require.NoError(t, err)

	_, err = f.Resolve(nil)
	assert.Error(t, err)
}

func TestResolveHookWithoutScript(t *testing.T) {
	f, err := Parse(".toml", []byte("[hooks]\ncopy = \"copy\"\n"))
	require.NoError(t, err)

	res, err := f.Resolve(nil)
	assert.ErrorIs(t, err, bubble.ErrNoHookLookup)
	require.NotNil(t, res)
	assert.Nil(t, res.Options.Copy)
	assert.NoError(t, res.Close())
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "chips.yaml", "class_bubble: one\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan string, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, p, 20*time.Millisecond, nil, func(f *File, err error) {
			if err != nil || f.ClassBubble == nil {
				return
			}
			select {
			case got <- *f.ClassBubble:
			default:
			}
		})
	}()

	// Give the watcher time to register before writing.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(p, []byte("class_bubble: two\n"), 0o644)
		select {
		case v := <-got:
			return v == "two"
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}

// lockedBuffer is written by the watcher goroutine and read by the test.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchLogsReloadErrors(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "chips.toml", "class_bubble = \"one\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out lockedBuffer
	log := slog.New(slog.NewTextHandler(&out, nil))
	errs := make(chan error, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, p, 20*time.Millisecond, log, func(_ *File, err error) {
			if err == nil {
				return
			}
			select {
			case errs <- err:
			default:
			}
		})
	}()

	require.Eventually(t, func() bool {
		_ = os.WriteFile(p, []byte("class_bubble = [\n"), 0o644)
		select {
		case <-errs:
			return true
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	assert.Contains(t, out.String(), "config: reload")
	assert.Contains(t, out.String(), "chips.toml")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}

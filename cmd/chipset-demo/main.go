package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/chipset"
	"github.com/iw2rmb/chipset/bubble"
	"github.com/iw2rmb/chipset/config"
	"github.com/iw2rmb/chipset/drag"
	"github.com/iw2rmb/chipset/editor"
	"github.com/iw2rmb/chipset/luahook"
)

const fieldHeight = 2

type reloadMsg struct {
	file *config.File
	err  error
}

type dragMsg drag.Event

type field struct {
	label string
	ed    editor.Model
	top   int
}

type model struct {
	fields []field
	focus  int
	drag   *drag.Coordinator
	help   help.Model
	keys   editor.KeyMap

	resolved *config.Resolved
	hooks    *luahook.Runtime
	status   string
	width    int
}

type options struct {
	configPath string
	hooksPath  string
	logPath    string
	content    string
}

func newModel(opts options, d *drag.Coordinator, log *slog.Logger) (model, error) {
	base := bubble.DefaultOptions()
	base.Copy = bubble.JoinCopy(", ")
	st := editor.DefaultStyle()

	m := model{drag: d, help: help.New(), keys: editor.DefaultKeyMap()}
	var hooks bubble.HookLookup
	if opts.configPath != "" {
		f, err := config.Load(opts.configPath)
		if err != nil {
			return model{}, err
		}
		res, err := f.Resolve(log)
		if err != nil && res == nil {
			return model{}, err
		}
		m.resolved = res
		if err != nil {
			m.status = "config: " + err.Error()
		}
		base = res.Options
		if base.Copy == nil {
			base.Copy = bubble.JoinCopy(", ")
		}
		st = styleFromConfig(st, res.Styles)
	}
	if opts.hooksPath != "" {
		rt := luahook.New(luahook.WithLogger(log))
		if err := rt.LoadFile(opts.hooksPath); err != nil {
			_ = rt.Close()
			return model{}, err
		}
		m.hooks = rt
		hooks = rt
	}

	var cb editor.Clipboard
	if editor.SystemClipboardAvailable() {
		cb = editor.SystemClipboard{}
	}
	for i, label := range []string{"To", "Cc"} {
		content := ""
		if i == 0 {
			content = opts.content
		}
		o := base
		ed := editor.New(editor.Config{
			Content:     content,
			Prompt:      fmt.Sprintf("%-4s", label+":"),
			Placeholder: "type addresses, separate with , or ;",
			Options:     &o,
			Raw:         hookRaw(hooks),
			Hooks:       hooks,
			Style:       st,
			Clipboard:   cb,
			Drag:        d,
			Logger:      log.With(slog.String("field", label)),
		})
		if i != m.focus {
			ed, _ = ed.Blur()
		}
		m.fields = append(m.fields, field{label: label, ed: ed, top: i * (fieldHeight + 1)})
	}
	return m, nil
}

// hookRaw wires the conventional hook names of a standalone script.
func hookRaw(h bubble.HookLookup) bubble.RawOptions {
	rt, ok := h.(*luahook.Runtime)
	if !ok {
		return nil
	}
	raw := bubble.RawOptions{}
	for name, opt := range map[string]string{
		"formation":   bubble.OptFormation,
		"deformation": bubble.OptDeformation,
		"copy":        bubble.OptCopy,
		"check_paste": bubble.OptCheckPaste,
	} {
		if rt.Has(name) {
			raw[opt] = name
		}
	}
	return raw
}

func styleFromConfig(st editor.Style, classes map[string]config.ClassStyle) editor.Style {
	st.Classes = map[string]lipgloss.Style{}
	for name, cs := range classes {
		s := lipgloss.NewStyle().Bold(cs.Bold).Underline(cs.Underline)
		if cs.Foreground != "" {
			s = s.Foreground(lipgloss.Color(cs.Foreground))
		}
		if cs.Background != "" {
			s = s.Background(lipgloss.Color(cs.Background))
		}
		switch name {
		case "bubble":
			st.Bubble = s
		case "selected":
			st.Selected = s
		default:
			st.Classes[name] = s
		}
	}
	return st
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		for i := range m.fields {
			m.fields[i].ed = m.fields[i].ed.SetSize(msg.Width, fieldHeight)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "tab", "shift+tab":
			cmd := m.cycleFocus(msg.String() == "tab")
			return m, cmd
		}
		var cmd tea.Cmd
		f := &m.fields[m.focus]
		f.ed, cmd = f.ed.Update(msg)
		return m, cmd
	case tea.MouseMsg:
		cmd := m.routeMouse(msg)
		return m, cmd
	case reloadMsg:
		cmd := m.reload(msg)
		return m, cmd
	case dragMsg:
		m.status = fmt.Sprintf("drag: %s", msg.Kind)
		return m, nil
	case editor.ChangeMsg:
		m.status = fmt.Sprintf("%s: %d bubbles", m.labelOf(msg.ID), len(msg.Tokens))
	case editor.EditMsg:
		m.status = fmt.Sprintf("%s: editing %q", m.labelOf(msg.ID), msg.Token.Text)
	}
	for i := range m.fields {
		var cmd tea.Cmd
		m.fields[i].ed, cmd = m.fields[i].ed.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *model) cycleFocus(forward bool) tea.Cmd {
	next := m.focus + 1
	if !forward {
		next = m.focus - 1 + len(m.fields)
	}
	return m.focusField(next % len(m.fields))
}

func (m *model) focusField(i int) tea.Cmd {
	if i == m.focus {
		return nil
	}
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.fields[m.focus].ed, cmd = m.fields[m.focus].ed.Blur()
	cmds = append(cmds, cmd)
	m.focus = i
	m.fields[i].ed, cmd = m.fields[i].ed.Focus()
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// routeMouse hands the event to every field in field-local coordinates. A
// press focuses the field under the pointer first. After a release the
// shared drag gesture is closed so drops outside every field end it.
func (m *model) routeMouse(msg tea.MouseMsg) tea.Cmd {
	var cmds []tea.Cmd
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		for i, f := range m.fields {
			if msg.Y >= f.top && msg.Y < f.top+fieldHeight {
				cmds = append(cmds, m.focusField(i))
			}
		}
	}
	for i := range m.fields {
		local := msg
		local.Y -= m.fields[i].top
		var cmd tea.Cmd
		m.fields[i].ed, cmd = m.fields[i].ed.Update(local)
		cmds = append(cmds, cmd)
	}
	if msg.Action == tea.MouseActionRelease {
		m.drag.Cancel()
	}
	return tea.Batch(cmds...)
}

func (m *model) reload(msg reloadMsg) tea.Cmd {
	if msg.err != nil {
		m.status = "config: " + msg.err.Error()
		return nil
	}
	res, err := msg.file.Resolve(slog.Default())
	if res == nil {
		m.status = "config: " + err.Error()
		return nil
	}
	o := res.Options
	if o.Copy == nil {
		o.Copy = bubble.JoinCopy(", ")
	}
	for i := range m.fields {
		f := &m.fields[i]
		f.ed, _ = f.ed.Reconfigure(o)
		f.ed = f.ed.SetStyle(styleFromConfig(editor.DefaultStyle(), res.Styles))
	}
	_ = m.resolved.Close()
	m.resolved = res
	m.status = "config reloaded"
	if err != nil {
		m.status = "config reloaded with errors: " + err.Error()
	}
	return nil
}

func (m model) labelOf(id int) string {
	for _, f := range m.fields {
		if f.ed.ID() == id {
			return f.label
		}
	}
	return "?"
}

func (m model) View() string {
	var sb strings.Builder
	for i, f := range m.fields {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(f.ed.View())
	}
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.status))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m model) close() {
	_ = m.resolved.Close()
	if m.hooks != nil {
		_ = m.hooks.Close()
	}
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	l := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return l, func() { _ = f.Close() }, nil
}

func main() {
	var opts options
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.StringVar(&opts.configPath, "config", "", "options file (.toml, .yaml, .yml)")
	flag.StringVar(&opts.hooksPath, "hooks", "", "Lua hook script")
	flag.StringVar(&opts.logPath, "log", "", "debug log file")
	flag.StringVar(&opts.content, "content", "", "initial content of the To field")
	flag.Parse()

	if *showVersion {
		fmt.Println("chipset-demo", chipset.VersionTag())
		return
	}

	log, closeLog, err := newLogger(opts.logPath)
	if err != nil {
		fail(err)
	}
	defer closeLog()
	slog.SetDefault(log)

	var p *tea.Program
	d := drag.New(drag.Config{
		Logger: log,
		Observer: func(ev drag.Event) {
			if p != nil {
				go p.Send(dragMsg(ev))
			}
		},
	})
	m, err := newModel(opts, d, log)
	if err != nil {
		fail(err)
	}
	defer m.close()

	p = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if opts.configPath != "" {
		go func() {
			err := config.Watch(ctx, opts.configPath, config.DefaultDebounce, log, func(f *config.File, err error) {
				p.Send(reloadMsg{file: f, err: err})
			})
			if err != nil {
				log.Warn("config watch stopped", slog.Any("err", err))
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	_, _ = os.Stderr.WriteString(err.Error() + "\n")
	os.Exit(1)
}

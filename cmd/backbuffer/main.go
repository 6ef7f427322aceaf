// Package main is an interactive demo host for the backbuffer mode.
//
// It embeds the reference editor, opens the files given on the command
// line (or a set of scratch buffers), and binds the toggle to Ctrl+B:
//
//	Tab     cycle to the next buffer in the focused window
//	Ctrl+B  toggle to the previous buffer
//	Ctrl+N  open a new window
//	Ctrl+W  close the focused window
//	Ctrl+O  focus the next window
//	Arrows  move the cursor
//	PgUp/Dn scroll
//	q       quit
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/zflat/go-back-buffer/internal/backbuffer"
	"github.com/zflat/go-back-buffer/internal/command"
	"github.com/zflat/go-back-buffer/internal/editor"
	"github.com/zflat/go-back-buffer/internal/log"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
)

func main() {
	os.Exit(run())
}

type options struct {
	logPath  string
	logLevel string
	debug    bool
}

func run() int {
	opts, files := parseFlags()

	logger := log.Nop()
	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			return 1
		}
		defer f.Close()

		level := log.ParseLevel(opts.logLevel)
		if opts.debug {
			level = log.LevelDebug
		}
		logger = log.New(log.Config{Level: level, Output: f, Prefix: "backbuffer"})
	}

	ed := editor.New()
	if err := openBuffers(ed, files); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	mode := backbuffer.New(ed, backbuffer.WithLogger(logger))
	mode.Enable()

	commands := command.NewRegistry()
	commands.Register(backbuffer.NewHandler(mode))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()

	ui := &demoUI{
		screen:   screen,
		editor:   ed,
		mode:     mode,
		commands: commands,
	}
	ui.loop()
	return 0
}

func parseFlags() (options, []string) {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.logPath, "log", "", "Path to a debug log file")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&opts.debug, "d", false, "Enable debug logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.Parse()

	if showVersion {
		fmt.Printf("backbuffer %s\n", version)
		os.Exit(0)
	}
	return opts, flag.Args()
}

// openBuffers loads the given files, or a set of scratch buffers when
// none are given, and creates the initial window on the first one.
func openBuffers(ed *editor.Editor, files []string) error {
	if len(files) == 0 {
		for i := 3; i >= 1; i-- {
			name := fmt.Sprintf("scratch-%d", i)
			content := fmt.Sprintf("This is %s.\n\nSwitch buffers with Tab,\ntoggle back with Ctrl+B.", name)
			ed.Buffers().Open(name, "", content)
		}
	} else {
		for i := len(files) - 1; i >= 0; i-- {
			path := files[i]
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			ed.Buffers().Open(filepath.Base(path), path, string(data))
		}
	}

	first := ed.Buffers().All()[0]
	_, err := ed.NewWindow(first)
	return err
}

// demoUI renders the editor state and translates key events.
type demoUI struct {
	screen   tcell.Screen
	editor   *editor.Editor
	mode     *backbuffer.Mode
	commands *command.Registry
	message  string
}

func (ui *demoUI) loop() {
	for {
		ui.draw()
		switch ev := ui.screen.PollEvent().(type) {
		case *tcell.EventResize:
			ui.screen.Sync()
		case *tcell.EventKey:
			if !ui.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey returns false when the demo should exit.
func (ui *demoUI) handleKey(ev *tcell.EventKey) bool {
	win := ui.editor.Focused()

	switch {
	case ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
		return false

	case ev.Key() == tcell.KeyCtrlB:
		res := ui.commands.Execute(command.Action{Name: backbuffer.ActionTogglePrevious})
		ui.message = res.Message
		if res.IsError() {
			ui.message = res.Error.Error()
		}

	case ev.Key() == tcell.KeyTab:
		ui.cycleBuffer(win)

	case ev.Key() == tcell.KeyCtrlN:
		if bufs := ui.editor.Buffers().All(); len(bufs) > 0 {
			if _, err := ui.editor.NewWindow(bufs[0]); err != nil {
				ui.message = err.Error()
			}
		}

	case ev.Key() == tcell.KeyCtrlW:
		if win != nil {
			if err := ui.editor.CloseWindow(win); err != nil {
				ui.message = err.Error()
			}
		}
		if ui.editor.Focused() == nil {
			return false
		}

	case ev.Key() == tcell.KeyCtrlO:
		ui.focusNext(win)

	case ev.Key() == tcell.KeyUp:
		ui.moveCursor(win, -1, 0)
	case ev.Key() == tcell.KeyDown:
		ui.moveCursor(win, 1, 0)
	case ev.Key() == tcell.KeyLeft:
		ui.moveCursor(win, 0, -1)
	case ev.Key() == tcell.KeyRight:
		ui.moveCursor(win, 0, 1)

	case ev.Key() == tcell.KeyPgUp:
		if win != nil {
			win.SetScroll(win.Scroll() - 5)
		}
	case ev.Key() == tcell.KeyPgDn:
		if win != nil {
			win.SetScroll(win.Scroll() + 5)
		}
	}
	return true
}

// cycleBuffer shows the least recently used buffer in the window,
// walking the whole ring over repeated presses.
func (ui *demoUI) cycleBuffer(win *editor.Window) {
	if win == nil {
		return
	}
	bufs := ui.editor.Buffers().All()
	if len(bufs) < 2 {
		return
	}
	next := bufs[len(bufs)-1]
	if err := ui.editor.ShowBuffer(win, next.ID()); err != nil {
		ui.message = err.Error()
		return
	}
	ui.message = "showing " + next.Name()
}

func (ui *demoUI) focusNext(win *editor.Window) {
	windows := ui.editor.Windows()
	if win == nil || len(windows) < 2 {
		return
	}
	for i, w := range windows {
		if w == win {
			_ = ui.editor.Focus(windows[(i+1)%len(windows)])
			return
		}
	}
}

func (ui *demoUI) moveCursor(win *editor.Window, dLine, dCol int) {
	if win == nil {
		return
	}
	buf, ok := ui.editor.Buffers().Get(win.Buffer())
	if !ok {
		return
	}
	cur := win.Cursor()
	line := int(cur.Line) + dLine
	col := int(cur.Column) + dCol
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	win.SetCursor(buf.ClampPoint(editor.Point{Line: uint32(line), Column: uint32(col)}))
}

func (ui *demoUI) draw() {
	s := ui.screen
	s.Clear()
	width, height := s.Size()

	windows := ui.editor.Windows()
	if len(windows) == 0 {
		ui.drawText(0, 0, width, tcell.StyleDefault, "no windows")
		s.Show()
		return
	}

	colWidth := width / len(windows)
	for i, win := range windows {
		ui.drawWindow(win, i*colWidth, 0, colWidth, height-1)
	}

	ui.drawText(0, height-1, width, tcell.StyleDefault.Reverse(true),
		fmt.Sprintf(" %s | Tab:cycle Ctrl+B:toggle Ctrl+N:new Ctrl+W:close q:quit", ui.message))
	s.Show()
}

func (ui *demoUI) drawWindow(win *editor.Window, x, y, width, height int) {
	focused := ui.editor.Focused() == win

	title := "?"
	if buf, ok := ui.editor.Buffers().Get(win.Buffer()); ok {
		title = buf.Name()
	}
	prev := "-"
	if _, ent := ui.mode.Store().GetOrCreate(win); ui.editor.Buffers().IsLive(ent.Buffer) && ent.Buffer != win.Buffer() {
		if buf, ok := ui.editor.Buffers().Get(ent.Buffer); ok {
			prev = buf.Name()
		}
	}

	titleStyle := tcell.StyleDefault.Reverse(true)
	if focused {
		titleStyle = titleStyle.Bold(true)
	}
	ui.drawText(x, y, width, titleStyle, fmt.Sprintf(" %s (prev: %s)", title, prev))

	buf, ok := ui.editor.Buffers().Get(win.Buffer())
	if !ok {
		return
	}
	cursor := win.Cursor()
	for row := 1; row < height; row++ {
		lineNo := win.Scroll() + row - 1
		if lineNo >= buf.LineCount() {
			break
		}
		ui.drawText(x, y+row, width, tcell.StyleDefault, buf.Line(lineNo))
		if focused && lineNo == int(cursor.Line) {
			col := int(cursor.Column)
			if col >= width-1 {
				col = width - 2
			}
			r := ' '
			if line := buf.Line(lineNo); col < len(line) {
				r = rune(line[col])
			}
			ui.screen.SetContent(x+col, y+row, r, nil, tcell.StyleDefault.Reverse(true))
		}
	}
}

func (ui *demoUI) drawText(x, y, width int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		if col >= x+width {
			break
		}
		ui.screen.SetContent(col, y, r, nil, style)
		col++
	}
}

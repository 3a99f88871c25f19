package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abiram/tonedrill/internal/router"
	"github.com/abiram/tonedrill/internal/screen"
	"github.com/abiram/tonedrill/internal/screens/home"
	"github.com/abiram/tonedrill/internal/screens/welcome"
	"github.com/abiram/tonedrill/internal/store"
	"github.com/abiram/tonedrill/internal/ui/layout"
)

// Options holds the dependencies injected into the TUI.
type Options struct {
	// Store persists learner history. May be nil; the app then runs
	// without persistence.
	Store *store.Store

	// UnlockAll bypasses level gating. Debug aid.
	UnlockAll bool
}

// keyLabeler is implemented by screens that want the active session key
// shown in the header.
type keyLabeler interface {
	KeyLabel() string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the welcome splash.
func newAppModel(opts Options) AppModel {
	splash := welcome.New(func() screen.Screen {
		return home.New(opts.Store, opts.UnlockAll)
	})
	return AppModel{
		router: router.New(splash),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens deeper in the stack own Esc themselves.
			if m.router.Depth() > 1 {
				cmd := m.router.Update(msg)
				return m, cmd
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	keyLabel := ""
	if active != nil {
		title = active.Title()
		if kl, ok := active.(keyLabeler); ok {
			keyLabel = kl.KeyLabel()
		}
	}

	// The welcome splash renders full-bleed, no chrome.
	if title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(title, keyLabel, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if len(footerHints) == 0 {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

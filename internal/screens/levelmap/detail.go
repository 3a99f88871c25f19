package levelmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abiram/tonedrill/internal/curriculum"
	"github.com/abiram/tonedrill/internal/router"
	"github.com/abiram/tonedrill/internal/screen"
	sessionscreen "github.com/abiram/tonedrill/internal/screens/session"
	"github.com/abiram/tonedrill/internal/store"
	"github.com/abiram/tonedrill/internal/theory"
	"github.com/abiram/tonedrill/internal/ui/components"
	"github.com/abiram/tonedrill/internal/ui/layout"
	"github.com/abiram/tonedrill/internal/ui/theme"
)

// LevelDetailScreen shows details for a single level and starts sessions.
type LevelDetailScreen struct {
	st    *store.Store
	level curriculum.Level
	state levelState

	// keyOverride pins the starting session key. Nil means random.
	keyOverride *theory.PitchClass
	keyInput    components.TextInput
	editingKey  bool
	keyErr      string
}

var _ screen.Screen = (*LevelDetailScreen)(nil)
var _ screen.KeyHintProvider = (*LevelDetailScreen)(nil)

func newLevelDetail(st *store.Store, level curriculum.Level, state levelState) *LevelDetailScreen {
	return &LevelDetailScreen{
		st:       st,
		level:    level,
		state:    state,
		keyInput: components.NewTextInput("C, C#, D...", 3),
	}
}

func (d *LevelDetailScreen) Init() tea.Cmd { return nil }
func (d *LevelDetailScreen) Title() string { return d.level.Name }

func (d *LevelDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if d.editingKey {
			var cmd tea.Cmd
			d.keyInput, cmd = d.keyInput.Update(msg)
			return d, cmd
		}
		return d, nil
	}

	if d.editingKey {
		switch kmsg.String() {
		case "enter":
			return d.confirmKey()
		case "esc":
			d.editingKey = false
			d.keyErr = ""
			return d, nil
		}
		var cmd tea.Cmd
		d.keyInput, cmd = d.keyInput.Update(msg)
		return d, cmd
	}

	switch kmsg.String() {
	case "c":
		d.editingKey = true
		d.keyErr = ""
		d.keyInput = components.NewTextInput("C, C#, D...", 3)
		return d, d.keyInput.Init()
	case "r":
		d.keyOverride = nil
		return d, nil
	case "enter":
		return d, d.startSession()
	case "esc", "q":
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return d, nil
}

// confirmKey parses the typed key name. Sharp names only, matching the
// pitch spelling used everywhere else.
func (d *LevelDetailScreen) confirmKey() (screen.Screen, tea.Cmd) {
	raw := strings.TrimSpace(d.keyInput.Value())
	pc, ok := theory.ParsePitch(raw)
	if !ok {
		d.keyInput.Reject()
		d.keyErr = fmt.Sprintf("unknown key %q, use sharp names like C, C#, D", raw)
		return d, nil
	}
	d.keyOverride = &pc
	d.editingKey = false
	d.keyErr = ""
	return d, nil
}

func (d *LevelDetailScreen) startSession() tea.Cmd {
	st := d.st
	level := d.level
	override := d.keyOverride
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: sessionscreen.New(st, level, override),
		}
	}
}

func (d *LevelDetailScreen) KeyHints() []layout.KeyHint {
	if d.editingKey {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Set key"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Practice"},
		{Key: "C", Description: "Choose key"},
		{Key: "R", Description: "Random key"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *LevelDetailScreen) View(width, height int) string {
	lv := d.level
	cw := width - 8
	if cw > 70 {
		cw = 70
	}

	var b strings.Builder

	// Level name + state.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  %s  %s", d.state.icon(), lv.Name)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %s", d.state.label())))
	b.WriteString("\n\n")

	// Description.
	if lv.Description != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(cw).
			Foreground(theme.Text).
			Padding(0, 0, 0, 2).
			Render(lv.Description))
		b.WriteString("\n\n")
	}

	// Item set.
	names := make([]string, len(lv.Items))
	for i, q := range lv.Items {
		names[i] = curriculum.DisplayName(q)
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Drills"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.Text).
		Padding(0, 0, 0, 2).
		Render(strings.Join(names, ", ")))
	b.WriteString("\n\n")

	// Pass requirement.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Pass at %.0f%% accuracy", lv.UnlockThreshold)))
	b.WriteString("\n")

	// Degree restriction, if any.
	if len(lv.ScaleDegrees) > 0 {
		degs := make([]string, len(lv.ScaleDegrees))
		for i, deg := range lv.ScaleDegrees {
			degs[i] = theory.RomanNumeral(deg)
		}
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  Degrees: %s", strings.Join(degs, ", "))))
		b.WriteString("\n")
	}

	// Practice key.
	b.WriteString("\n")
	if d.editingKey {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Render("  Practice key: " + d.keyInput.View()))
	} else {
		keyStr := "random"
		if d.keyOverride != nil {
			keyStr = d.keyOverride.String()
		}
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Render(fmt.Sprintf("  Practice key: %s", lipgloss.NewStyle().
				Foreground(theme.Accent).Bold(true).Render(keyStr))))
	}
	b.WriteString("\n")
	if d.keyErr != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("  " + d.keyErr))
		b.WriteString("\n")
	}

	// Start button. Locked levels still show it, dimmed.
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		components.PanelButton("START PRACTICE", d.state != stateLocked, 24)))

	return b.String()
}

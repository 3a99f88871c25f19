package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abiram/tonedrill/internal/curriculum"
	"github.com/abiram/tonedrill/internal/router"
	"github.com/abiram/tonedrill/internal/screen"
	"github.com/abiram/tonedrill/internal/screens/history"
	"github.com/abiram/tonedrill/internal/screens/levelmap"
	"github.com/abiram/tonedrill/internal/screens/placeholder"
	sessionscreen "github.com/abiram/tonedrill/internal/screens/session"
	"github.com/abiram/tonedrill/internal/store"
	"github.com/abiram/tonedrill/internal/ui/components"
	"github.com/abiram/tonedrill/internal/ui/layout"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	st             *store.Store
	unlockAll      bool
	menu           components.Menu
	menuLabels     []string
	completedCount int
	totalLevels    int
	nextLevel      curriculum.Level
	clefVariant    ClefVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. st may be nil, in which case persistence-
// backed actions fall back to placeholders.
func New(st *store.Store, unlockAll bool) *HomeScreen {
	completed := make(map[string]bool)
	if st != nil {
		if c, err := st.CompletedLevels(context.Background()); err == nil {
			completed = c
		}
	}

	total := len(curriculum.AllLevels())
	next := curriculum.CurrentLevel(completed)

	clefVariant := ClefIdle
	if len(completed) >= total {
		clefVariant = ClefCelebrating
	}

	menuLabels := []string{"START PRACTICE", "LEVEL MAP", "HISTORY", "QUIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: sessionscreen.New(st, next, nil),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: levelmap.New(st, unlockAll)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			if st == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("History")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(st)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		st:             st,
		unlockAll:      unlockAll,
		menu:           components.NewMenu(items),
		menuLabels:     menuLabels,
		completedCount: len(completed),
		totalLevels:    total,
		nextLevel:      next,
		clefVariant:    clefVariant,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	// 1. Title
	sections = append(sections, renderTitle(cw, compact))

	// 2. Clef card (full mode only)
	if !compact {
		sections = append(sections, renderClefBox(h.clefVariant, cw))
	}

	// 3. Stats bar (double-bordered, same width)
	sections = append(sections, renderStatsBar(
		h.completedCount, h.totalLevels, h.nextLevel.Name, cw, compact))

	// 4. Menu (same width box)
	sections = append(sections, renderMenu(
		h.menuLabels, h.menu.Selected, cw))

	content := strings.Join(sections, "\n\n")

	// Wrap in the stage frame, centered in the full area
	return renderStageFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

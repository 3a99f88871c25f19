package levelmap

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abiram/tonedrill/internal/curriculum"
	"github.com/abiram/tonedrill/internal/router"
	"github.com/abiram/tonedrill/internal/screen"
	"github.com/abiram/tonedrill/internal/store"
	"github.com/abiram/tonedrill/internal/ui/layout"
	"github.com/abiram/tonedrill/internal/ui/theme"
)

type rowKind int

const (
	rowSegmentHeader rowKind = iota
	rowLevel
)

type row struct {
	kind    rowKind
	segment curriculum.Segment
	level   *curriculum.Level
}

// levelState is the display state of one level row.
type levelState int

const (
	stateLocked levelState = iota
	stateAvailable
	stateCompleted
)

func (s levelState) icon() string {
	switch s {
	case stateCompleted:
		return "●"
	case stateAvailable:
		return "◐"
	default:
		return "○"
	}
}

func (s levelState) label() string {
	switch s {
	case stateCompleted:
		return "Done"
	case stateAvailable:
		return "Ready"
	default:
		return "Locked"
	}
}

// LevelMapScreen displays the level catalog organized by segment.
type LevelMapScreen struct {
	st           *store.Store
	unlockAll    bool
	rows         []row
	cursor       int
	scrollOffset int
	completed    map[string]bool
}

var _ screen.Screen = (*LevelMapScreen)(nil)
var _ screen.KeyHintProvider = (*LevelMapScreen)(nil)

// New creates a new LevelMapScreen. st may be nil (no completion data).
func New(st *store.Store, unlockAll bool) *LevelMapScreen {
	completed := make(map[string]bool)
	if st != nil {
		if c, err := st.CompletedLevels(context.Background()); err == nil {
			completed = c
		}
	}

	var rows []row
	for _, seg := range curriculum.Segments() {
		rows = append(rows, row{kind: rowSegmentHeader, segment: seg})
		levels := seg.Levels
		for i := range levels {
			rows = append(rows, row{kind: rowLevel, segment: seg, level: &levels[i]})
		}
	}

	s := &LevelMapScreen{
		st:        st,
		unlockAll: unlockAll,
		rows:      rows,
		completed: completed,
	}

	// Set cursor to first level row
	for i, r := range s.rows {
		if r.kind == rowLevel {
			s.cursor = i
			break
		}
	}

	return s
}

func (s *LevelMapScreen) Init() tea.Cmd {
	return nil
}

func (s *LevelMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextSegment()
		case "shift+tab":
			s.prevSegment()
		case "enter":
			return s, s.selectLevel()
		case "q", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *LevelMapScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	// Ensure cursor is visible within the scroll window
	s.adjustScroll(height)

	// Render all visible rows
	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}

		switch r.kind {
		case rowSegmentHeader:
			lines = append(lines, s.renderSegmentHeader(r.segment, width))
		case rowLevel:
			lines = append(lines, s.renderLevelRow(r, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *LevelMapScreen) Title() string {
	return "Level Map"
}

// KeyHints returns the key binding hints for the footer.
func (s *LevelMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Segment"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

// moveCursor moves the cursor by delta, skipping segment headers.
func (s *LevelMapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowLevel {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextSegment jumps the cursor to the first level in the next segment.
func (s *LevelMapScreen) nextSegment() {
	currentSeg := s.rows[s.cursor].segment.ID
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowLevel && s.rows[i].segment.ID != currentSeg {
			s.cursor = i
			return
		}
	}
}

// prevSegment jumps the cursor to the first level of the previous segment.
func (s *LevelMapScreen) prevSegment() {
	currentSeg := s.rows[s.cursor].segment.ID

	// Find the start of the previous segment
	prevStart := -1
	var prevSeg string
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowLevel && s.rows[i].segment.ID != currentSeg {
			prevSeg = s.rows[i].segment.ID
			prevStart = i
			break
		}
	}
	if prevStart < 0 {
		return
	}

	// Go to the first level of that segment
	for i := prevStart; i >= 0; i-- {
		if s.rows[i].kind != rowLevel || s.rows[i].segment.ID != prevSeg {
			s.cursor = i + 1
			return
		}
	}
	s.cursor = 0
	if s.rows[0].kind != rowLevel {
		s.moveCursor(1)
	}
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *LevelMapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	// Also show the segment header above the cursor if possible
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowSegmentHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// selectLevel handles enter on the current level.
func (s *LevelMapScreen) selectLevel() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowLevel || r.level == nil {
		return nil
	}

	state := s.levelState(r.level.ID)
	if state == stateLocked {
		return nil
	}
	detail := newLevelDetail(s.st, *r.level, state)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

// levelState computes the display state for a level.
func (s *LevelMapScreen) levelState(id string) levelState {
	if s.completed[id] {
		return stateCompleted
	}
	if curriculum.IsUnlocked(id, s.completed, s.unlockAll) {
		return stateAvailable
	}
	return stateLocked
}

// renderSegmentHeader renders a segment section header.
func (s *LevelMapScreen) renderSegmentHeader(seg curriculum.Segment, width int) string {
	name := strings.ToUpper(seg.Name)
	styled := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(name)
	return styled
}

// renderLevelRow renders a single level row.
func (s *LevelMapScreen) renderLevelRow(r row, selected bool, width int) string {
	if r.level == nil {
		return ""
	}

	state := s.levelState(r.level.ID)
	icon := state.icon()
	label := state.label()
	items := fmt.Sprintf("%d items", len(r.level.Items))

	// Calculate column widths
	padding := 4 // left indent
	iconWidth := 3
	itemsWidth := 9
	labelWidth := 10
	spacing := 4
	nameWidth := width - padding - iconWidth - itemsWidth - labelWidth - spacing
	if nameWidth < 10 {
		nameWidth = 10
	}

	// Truncate name if needed
	name := r.level.Name
	if len(name) > nameWidth {
		name = name[:nameWidth-1] + "…"
	}

	// Build the row
	var nameStyle, itemsStyle, labelStyle lipgloss.Style
	if selected {
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		itemsStyle = lipgloss.NewStyle().Foreground(theme.Primary)
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	} else {
		switch state {
		case stateCompleted:
			nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
			itemsStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.Success)
		case stateAvailable:
			nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
			itemsStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
		default:
			nameStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			itemsStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
			labelStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
	}

	// Cursor indicator
	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	// Format with padding
	namePadded := fmt.Sprintf("%-*s", nameWidth, name)
	line := fmt.Sprintf("  %s%s %s  %s  %s",
		cursor,
		icon,
		nameStyle.Render(namePadded),
		itemsStyle.Render(items),
		labelStyle.Render(fmt.Sprintf("%9s", label)),
	)

	return line
}

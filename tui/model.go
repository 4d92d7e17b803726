// Package tui renders a registry of carousels in the terminal and
// routes key, mouse, and timer events into them.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/carousel"
)

// slideBodyHeight is the inner height of each slide box. Blocks are
// fixed-height so pointer hit zones can be derived without measuring
// rendered output.
const slideBodyHeight = 5

// blockHeight is one carousel block: title, bordered slide box,
// controls row, trailing gap.
const blockHeight = 1 + (slideBodyHeight + 2) + 1 + 1

// Control-row column layout, shared by rendering and hit testing:
// two spaces, prev arrow, two spaces, one dot-plus-space pair per
// indicator, one space, next arrow.
const (
	prevCol      = 2
	firstDotCol  = 5
	dotColStride = 2
)

func nextCol(dots int) int { return firstDotCol + dotColStride*dots + 1 }

// changeMsg reports a transition performed outside the update loop,
// typically an auto-advance tick.
type changeMsg struct{ index int }

// zone is the row/column geometry of one rendered carousel block.
type zone struct {
	id          string
	top, bottom int
	controlsRow int
	dots        int
}

// Model is the bubbletea model hosting every registered carousel.
type Model struct {
	reg     *carousel.Registry
	width   int
	height  int
	hovered string
	pressX  int
	pressID string
	changes chan int
	zones   []zone
}

// New builds a model over reg. Wire carousels constructed afterwards
// with ChangeOption so auto-advance ticks repaint the screen.
func New(reg *carousel.Registry) Model {
	return Model{reg: reg, changes: make(chan int, 8)}
}

// ChangeOption returns the carousel option that forwards transition
// notifications into this model's repaint channel.
func (m Model) ChangeOption() carousel.Option {
	ch := m.changes
	return carousel.WithOnChange(func(index int) {
		select {
		case ch <- index:
		default:
		}
	})
}

func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	ch := m.changes
	return func() tea.Msg {
		return changeMsg{index: <-ch}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.zones = m.layout()
		return m, nil

	case changeMsg:
		return m, m.waitForChange()

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		m.reg.Destroy()
		return m, tea.Quit
	case "left", "right":
		// Document-level semantics: every keyboard-enabled carousel
		// reacts, not just the hovered one.
		m.reg.HandleKey(key)
		return m, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		id := m.hovered
		if id == "" {
			id = carousel.DefaultID
		}
		m.reg.CurrentSlide(int(key[0]-'0'), id)
		return m, nil
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		return m.updateHover(msg.Y), nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		z := m.zoneAt(msg.Y)
		if z == nil {
			m.pressID = ""
			return m, nil
		}
		m.pressX = msg.X
		m.pressID = z.id
		if c, ok := m.reg.Lookup(z.id); ok {
			c.TouchStart(msg.X)
		}
		return m, nil

	case tea.MouseActionRelease:
		if msg.Button != tea.MouseButtonLeft || m.pressID == "" {
			return m, nil
		}
		z := m.zoneAt(msg.Y)
		pressID := m.pressID
		m.pressID = ""
		if z == nil || z.id != pressID {
			return m, nil
		}
		c, ok := m.reg.Lookup(z.id)
		if !ok {
			return m, nil
		}
		if msg.Y == z.controlsRow && m.clickControls(c, z, msg.X) {
			return m, nil
		}
		c.TouchEnd(msg.X)
		return m, nil
	}
	return m, nil
}

// updateHover pauses the carousel under the pointer and resumes the
// one it left.
func (m Model) updateHover(y int) Model {
	id := ""
	if z := m.zoneAt(y); z != nil {
		id = z.id
	}
	if id == m.hovered {
		return m
	}
	if m.hovered != "" {
		if c, ok := m.reg.Lookup(m.hovered); ok {
			c.Resume()
		}
	}
	if id != "" {
		if c, ok := m.reg.Lookup(id); ok {
			c.Pause()
		}
	}
	m.hovered = id
	return m
}

// clickControls maps a click on the controls row to prev/next/dot
// navigation. Returns whether a control was hit.
func (m Model) clickControls(c *carousel.Carousel, z *zone, x int) bool {
	switch {
	case x == prevCol:
		c.Prev()
		return true
	case x == nextCol(z.dots):
		c.Next()
		return true
	}
	for i := 0; i < z.dots; i++ {
		if x == firstDotCol+dotColStride*i {
			c.GoTo(i)
			return true
		}
	}
	return false
}

func (m Model) zoneAt(y int) *zone {
	for i := range m.zones {
		if y >= m.zones[i].top && y <= m.zones[i].bottom {
			return &m.zones[i]
		}
	}
	return nil
}

func (m Model) layout() []zone {
	ids := m.reg.IDs()
	zones := make([]zone, 0, len(ids))
	top := 0
	for _, id := range ids {
		c, ok := m.reg.Lookup(id)
		if !ok || !c.Ready() {
			continue
		}
		zones = append(zones, zone{
			id:          id,
			top:         top,
			bottom:      top + blockHeight - 2,
			controlsRow: top + 1 + slideBodyHeight + 2,
			dots:        len(c.Indicators()),
		})
		top += blockHeight
	}
	return zones
}

func (m Model) boxWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	if w > 72 {
		w = 72
	}
	return w
}

func (m Model) View() string {
	var b strings.Builder
	for _, id := range m.reg.IDs() {
		c, ok := m.reg.Lookup(id)
		if !ok || !c.Ready() {
			continue
		}
		b.WriteString(m.renderCarousel(id, c))
	}
	b.WriteString(helpStyle.Render("←/→ navigate · 1-9 jump · drag to swipe · q quit"))
	return b.String()
}

func (m Model) renderCarousel(id string, c *carousel.Carousel) string {
	cur := c.Current()
	title := titleStyle.Render(fmt.Sprintf("%s  %d/%d", id, cur+1, c.Total()))

	body := ""
	if slides := c.Slides(); cur >= 0 && cur < len(slides) {
		body = carousel.Text(slides[cur])
	}
	box := slideStyle
	if id == m.hovered {
		box = slideHoverStyle
	}
	slide := box.Width(m.boxWidth()).Height(slideBodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		slide,
		m.renderControls(c),
		"",
	) + "\n"
}

func (m Model) renderControls(c *carousel.Carousel) string {
	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(controlStyle.Render("‹"))
	b.WriteString("  ")
	cur := c.Current()
	for i := range c.Indicators() {
		if i == cur {
			b.WriteString(dotActiveStyle.Render("●"))
		} else {
			b.WriteString(dotStyle.Render("○"))
		}
		b.WriteString(" ")
	}
	b.WriteString(" ")
	b.WriteString(controlStyle.Render("›"))
	return b.String()
}

// Package bubbletea implements the interactive command browser on top of
// github.com/charmbracelet/bubbletea.
package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/cmdref"
)

// state is the lifecycle stage of the browser.
type state int

const (
	stateLoading state = iota
	stateReady
	stateFailed
)

// headerHeight is the number of lines above the viewport: title and
// filter line.
const headerHeight = 2

// catalogLoadedMsg carries the normalized catalog after a successful load.
type catalogLoadedMsg struct {
	categories []*cmdref.Category
	digest     string
}

// catalogFailedMsg carries the error of a failed load.
type catalogFailedMsg struct {
	err error
}

// Model is the bubbletea model of the command browser.
type Model struct {
	ctx    context.Context
	loader cmdref.Loader

	state      state
	err        error
	categories []*cmdref.Category
	visible    []*cmdref.Category
	disclosure cmdref.Disclosure
	cursor     int
	digest     string

	keys      keyMap
	help      help.Model
	spinner   spinner.Model
	filter    textinput.Model
	filtering bool
	viewport  viewport.Model

	// headerLines maps each visible category to its first content line.
	headerLines []int

	width  int
	height int
}

// New returns a browser that loads the catalog from loader when started.
func New(ctx context.Context, loader cmdref.Loader) Model {
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter commands"

	return Model{
		ctx:      ctx,
		loader:   loader,
		state:    stateLoading,
		keys:     defaultKeyMap(),
		help:     help.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		filter:   filter,
		viewport: viewport.New(0, 0),
	}
}

// Disclosure returns the current set of expanded categories.
func (m Model) Disclosure() cmdref.Disclosure {
	return m.disclosure
}

// Init starts the first load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

// load performs one Load followed by Normalize.
func (m Model) load() tea.Cmd {
	ctx, loader := m.ctx, m.loader
	return func() tea.Msg {
		doc, err := loader.Load(ctx)
		if err != nil {
			return catalogFailedMsg{err: err}
		}
		categories, err := cmdref.Normalize(doc)
		if err != nil {
			return catalogFailedMsg{err: err}
		}
		return catalogLoadedMsg{categories: categories, digest: doc.Digest}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		m.state = stateReady
		m.err = nil
		m.categories = msg.categories
		m.digest = msg.digest
		m.disclosure = cmdref.Disclosure{}
		m.cursor = 0
		m.applyFilter()
		return m, nil

	case catalogFailedMsg:
		m.state = stateFailed
		m.err = msg.err
		m.categories = nil
		m.visible = nil
		m.syncViewport()
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.filter.Width = max(msg.Width-len(m.filter.Prompt)-1, 0)
		m.viewport.Width = msg.Width
		m.resizeViewport()
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

// updateFilter handles keys while the filter input has focus.
func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

// updateKeys handles keys while browsing.
func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeViewport()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if m.state == stateLoading {
			return m, nil
		}
		m.state = stateLoading
		m.err = nil
		m.disclosure = cmdref.Disclosure{}
		m.cursor = 0
		return m, tea.Batch(m.spinner.Tick, m.load())
	}

	if m.state != stateReady {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.syncViewport()

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		m.syncViewport()

	case key.Matches(msg, m.keys.Toggle):
		if c := m.selected(); c != nil {
			m.disclosure = m.disclosure.Toggle(c.ID)
			m.syncViewport()
		}

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()

	case key.Matches(msg, m.keys.Clear):
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.applyFilter()
		}
	}

	return m, nil
}

// selected returns the category under the cursor, or nil.
func (m Model) selected() *cmdref.Category {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return m.visible[m.cursor]
}

// applyFilter recomputes the visible categories and keeps the cursor on
// the same category when it is still visible.
func (m *Model) applyFilter() {
	var current string
	if c := m.selected(); c != nil {
		current = c.ID
	}

	m.visible = cmdref.Filter(m.categories, m.filter.Value())

	m.cursor = 0
	for i, c := range m.visible {
		if c.ID == current {
			m.cursor = i
			break
		}
	}
	m.syncViewport()
}

// resizeViewport fits the viewport between the header and the help
// footer, whose height depends on whether full help is shown.
func (m *Model) resizeViewport() {
	if m.height > 0 {
		footer := lipgloss.Height(m.help.View(m.keys))
		m.viewport.Height = max(m.height-headerHeight-footer, 1)
	}
	m.syncViewport()
}

// syncViewport re-renders the content and scrolls so the cursor is visible.
func (m *Model) syncViewport() {
	content, headerLines := m.renderCategories()
	m.headerLines = headerLines
	m.viewport.SetContent(content)

	if m.viewport.Height <= 0 || m.cursor >= len(m.headerLines) {
		return
	}
	line := m.headerLines[m.cursor]
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// renderCategories renders the visible categories and returns the line
// on which each category header starts.
func (m Model) renderCategories() (string, []int) {
	if len(m.visible) == 0 {
		if m.state == stateReady && m.filter.Value() != "" {
			return dimStyle.Render(fmt.Sprintf("No commands match %q.", m.filter.Value())), nil
		}
		return "", nil
	}

	var lines []string
	headerLines := make([]int, 0, len(m.visible))
	for i, c := range m.visible {
		if i > 0 {
			lines = append(lines, "")
		}
		headerLines = append(headerLines, len(lines))

		expanded := m.disclosure.IsExpanded(c.ID)
		marker := cmdref.MarkerCollapsed
		if expanded {
			marker = cmdref.MarkerExpanded
		}

		pointer, title := "  ", titleStyle.Render(c.Title)
		if i == m.cursor {
			pointer, title = selectedStyle.Render("> "), selectedStyle.Render(c.Title)
		}
		count := dimStyle.Render(" - " + cmdref.FormatCommandCount(len(c.Commands)))
		lines = append(lines, pointer+marker+" "+c.Icon.Glyph()+" "+title+count)

		if c.Description != "" {
			lines = append(lines, "    "+descriptionStyle.Render(c.Description))
		}

		if !expanded {
			continue
		}
		for _, cmd := range c.Commands {
			lines = append(lines, "")
			details := strings.TrimSuffix(cmdref.FormatCommand(cmd, "    "), "\n")
			lines = append(lines, strings.Split(details, "\n")...)
		}
	}

	return strings.Join(lines, "\n"), headerLines
}

// View renders the model.
func (m Model) View() string {
	switch m.state {
	case stateLoading:
		return m.spinner.View() + " Loading commands..."
	case stateFailed:
		return m.viewFailed()
	}

	var sb strings.Builder

	header := headerStyle.Render("Bot commands")
	header += dimStyle.Render(fmt.Sprintf(" · %d categories", len(m.categories)))
	if m.digest != "" {
		header += dimStyle.Render(" · " + m.digest)
	}
	sb.WriteString(header + "\n")

	if m.filtering || m.filter.Value() != "" {
		sb.WriteString(m.filter.View())
	}
	sb.WriteString("\n")

	// Without a window size there is nothing to scroll within.
	if m.width == 0 {
		content, _ := m.renderCategories()
		sb.WriteString(content)
	} else {
		sb.WriteString(m.viewport.View())
	}
	sb.WriteString("\n")

	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) viewFailed() string {
	body := errorTitleStyle.Render("Catalog unavailable") + "\n\n" +
		cmdref.ErrorMessage(m.err) + "\n\n" +
		dimStyle.Render("Press r to retry or q to quit.")
	return errorBoxStyle.Render(body)
}

// Run starts an interactive browser for the catalog served by loader and
// blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, loader cmdref.Loader, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}, opts...)
	_, err := tea.NewProgram(New(ctx, loader), opts...).Run()
	return err
}

package user

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/rotisserie/eris"
	"pkg.world.dev/usermgr/internal/app/usermgr/manager"
	"pkg.world.dev/usermgr/internal/app/usermgr/models"
	"pkg.world.dev/usermgr/internal/pkg/tea/component/program"
	"pkg.world.dev/usermgr/internal/pkg/tea/style"
)

func (h *Handler) UI(ctx context.Context) error {
	_, err := h.runProgram(NewModel(ctx, h.manager))
	return err
}

func runTeaProgram(model Model) (Model, error) {
	p := program.NewTeaProgram(model)
	final, err := p.Run()
	if err != nil {
		return model, eris.Wrap(err, "failed to run user manager")
	}
	m, ok := final.(Model)
	if !ok {
		return model, eris.New("unexpected model type returned by user manager")
	}
	return m, nil
}

/////////////////////////
// Bubble Tea Commands //
/////////////////////////

type refreshedMsg struct {
	err error
}

type submittedMsg struct {
	err error
}

type removedMsg struct {
	err error
}

func refreshCmd(ctx context.Context, mgr *manager.Manager) tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{err: mgr.Refresh(ctx)}
	}
}

func submitCmd(ctx context.Context, mgr *manager.Manager) tea.Cmd {
	return func() tea.Msg {
		return submittedMsg{err: mgr.Submit(ctx)}
	}
}

func removeCmd(ctx context.Context, mgr *manager.Manager, u models.User) tea.Cmd {
	return func() tea.Msg {
		_, err := mgr.Remove(ctx, u, manager.Confirmed)
		return removedMsg{err: err}
	}
}

//////////////////////
// Bubble Tea Model //
//////////////////////

type focusArea int

const (
	focusName focusArea = iota
	focusEmail
	focusTable
	focusAreaCount
)

const (
	inputWidth  = 40
	tableHeight = 10
)

// Model is the interactive user manager: a form above a table of users.
// Errors are never shown; they end up in the diagnostic log.
type Model struct {
	ctx     context.Context //nolint:containedctx // bubbletea models carry the program context
	manager *manager.Manager

	nameInput  textinput.Model
	emailInput textinput.Model
	table      table.Model
	spinner    spinner.Model

	rows       []manager.Row
	focus      focusArea
	confirming *models.User
	pending    int
	width      int
}

func NewModel(ctx context.Context, mgr *manager.Manager) Model {
	nameInput := textinput.New()
	nameInput.Prompt = style.ChevronIcon.Render()
	nameInput.Placeholder = "Name"
	nameInput.Width = inputWidth
	nameInput.Focus()

	emailInput := textinput.New()
	emailInput.Prompt = style.ChevronIcon.Render()
	emailInput.Placeholder = "Email"
	emailInput.Width = inputWidth

	//nolint:mnd // column widths
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Name", Width: 24},
			{Title: "Email", Width: 32},
			{Title: "Actions", Width: 18},
		}),
		table.WithHeight(tableHeight),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	m := Model{
		ctx:        ctx,
		manager:    mgr,
		nameInput:  nameInput,
		emailInput: emailInput,
		table:      t,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		pending:    1, // initial refresh
	}
	m.loadDraft()
	m.syncRows()
	return m
}

//////////////////////////
// Bubble Tea Lifecycle //
//////////////////////////

// Init returns an initial command for the application to run.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, refreshCmd(m.ctx, m.manager))
}

// Update handles incoming events and updates the model accordingly.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.confirming != nil {
			return m.updateConfirm(msg)
		}
		switch msg.String() {
		case "tab":
			return m, m.setFocus((m.focus + 1) % focusAreaCount)
		case "shift+tab":
			return m, m.setFocus((m.focus + focusAreaCount - 1) % focusAreaCount)
		}
		if m.focus == focusTable {
			return m.updateTable(msg)
		}
		return m.updateForm(msg)

	case refreshedMsg:
		m.pending--
		m.syncRows()
		return m, nil

	case submittedMsg:
		m.pending--
		if msg.err == nil {
			m.loadDraft()
		}
		m.syncRows()
		return m, nil

	case removedMsg:
		m.pending--
		m.syncRows()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, m.updateInputs(msg)
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive // other keys go to the inputs
	case tea.KeyEnter:
		m.saveDraft()
		m.pending++
		return m, submitCmd(m.ctx, m.manager)
	case tea.KeyEsc:
		m.cancelEdit()
		return m, nil
	}

	cmd := m.updateInputs(msg)
	m.saveDraft()
	return m, cmd
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row, ok := m.selectedRow()

	switch msg.String() {
	case "e":
		if ok && row.Has(manager.ActionEdit) {
			m.manager.StartEdit(row.User)
			m.loadDraft()
			return m, m.setFocus(focusName)
		}
		return m, nil
	case "d":
		if ok && row.Has(manager.ActionDelete) {
			u := row.User
			m.confirming = &u
		}
		return m, nil
	case "r":
		m.pending++
		return m, refreshCmd(m.ctx, m.manager)
	case "esc":
		m.cancelEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		u := *m.confirming
		m.confirming = nil
		m.pending++
		return m, removeCmd(m.ctx, m.manager, u)
	case "n", "esc":
		m.confirming = nil
	}
	return m, nil
}

// View renders the model to the screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(style.CLIHeader("User Management", ""))
	b.WriteString("\n\n")

	b.WriteString(label("Name", m.focus == focusName) + m.nameInput.View() + "\n")
	b.WriteString(label("Email", m.focus == focusEmail) + m.emailInput.View() + "\n\n")

	if _, editing := models.EditTarget(m.manager.Mode()); editing {
		b.WriteString(style.PrimaryButton.Render("Update User") + " " + style.SecondaryButton.Render("Cancel (esc)"))
	} else {
		b.WriteString(style.PrimaryButton.Render("Add User"))
	}
	if m.pending > 0 {
		b.WriteString("  " + m.spinner.View())
	}
	b.WriteString("\n\n")

	b.WriteString(style.Container.Render(m.table.View()))
	b.WriteString("\n")

	if m.confirming != nil {
		b.WriteString(style.Prompt.Render(
			m.fit(deletePrompt+" "+m.confirming.Name+" <"+m.confirming.Email+"> (y/n)")) + "\n")
	} else {
		b.WriteString(style.Help.Render(
			m.fit("tab: switch focus • enter: submit • esc: cancel • e: edit • d: delete • r: refresh • ctrl+c: quit")) + "\n")
	}

	return b.String()
}

///////////////
// Internals //
///////////////

func label(text string, focused bool) string {
	l := lipgloss.NewStyle().Width(7).Render(text) //nolint:mnd // aligns the two inputs
	if focused {
		return style.ForegroundPrint(l, "205")
	}
	return l
}

// fit wraps text to the terminal width once it is known.
func (m Model) fit(text string) string {
	if m.width <= 0 {
		return text
	}
	return wordwrap.String(text, m.width)
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.nameInput.Blur()
	m.emailInput.Blur()
	m.table.Blur()

	switch f {
	case focusName:
		return m.nameInput.Focus()
	case focusEmail:
		return m.emailInput.Focus()
	case focusTable, focusAreaCount:
		m.table.Focus()
	}
	return nil
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var nameCmd, emailCmd tea.Cmd
	m.nameInput, nameCmd = m.nameInput.Update(msg)
	m.emailInput, emailCmd = m.emailInput.Update(msg)
	return tea.Batch(nameCmd, emailCmd)
}

// cancelEdit leaves edit mode, or clears a half-typed new user.
func (m *Model) cancelEdit() {
	_, editing := models.EditTarget(m.manager.Mode())
	if !editing && m.manager.Draft().IsEmpty() {
		return
	}
	m.manager.Cancel()
	m.loadDraft()
}

// saveDraft copies the inputs into the manager's draft.
func (m *Model) saveDraft() {
	m.manager.SetDraft(models.Draft{Name: m.nameInput.Value(), Email: m.emailInput.Value()})
}

// loadDraft copies the manager's draft into the inputs.
func (m *Model) loadDraft() {
	draft := m.manager.Draft()
	m.nameInput.SetValue(draft.Name)
	m.emailInput.SetValue(draft.Email)
}

func (m *Model) syncRows() {
	m.rows = m.manager.Rows()

	tableRows := make([]table.Row, 0, len(m.rows))
	for _, row := range m.rows {
		if row.Placeholder {
			tableRows = append(tableRows, table.Row{"", manager.PlaceholderText, "", ""})
			continue
		}
		tableRows = append(tableRows, table.Row{
			strconv.Itoa(row.Ordinal),
			row.User.Name,
			row.User.Email,
			actionsText(row.Actions),
		})
	}
	m.table.SetRows(tableRows)
	m.table.SetCursor(m.table.Cursor())
}

func (m Model) selectedRow() (manager.Row, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return manager.Row{}, false
	}
	return m.rows[i], true
}

func actionsText(actions []manager.Action) string {
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		name := a.String()
		parts = append(parts, "["+strings.ToLower(name[:1])+"]"+name[1:])
	}
	return strings.Join(parts, " ")
}

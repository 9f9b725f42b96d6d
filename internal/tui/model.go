package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"procdash/internal/app"
	"procdash/internal/dashboard"
	"procdash/internal/process"
)

const emptyMessage = "No processes found. Create processes in UiPath Orchestrator to see them here."

// Controller defines the subset of app.App behaviour the TUI needs.
type Controller interface {
	Status() (app.DaemonStatus, error)
	StartDaemon() (*app.DaemonHandle, error)
}

// Options wires the dashboard behind the TUI.
type Options struct {
	Provider dashboard.Provider
	Folders  []dashboard.Folder
	Timeout  time.Duration
}

// Model represents the Bubble Tea state.
type Model struct {
	controller Controller
	store      *dashboard.Store
	events     *eventQueue
	folders    []dashboard.Folder

	table     table.Model
	search    textinput.Model
	searching bool

	// view is the last snapshot the table was built from.
	view dashboard.View

	daemonStatus app.DaemonStatus
	statusMsg    string
	err          error

	width  int
	height int
}

// New constructs a TUI model with default styles.
func New(ctrl Controller, opts Options) *Model {
	events := newEventQueue()
	store := dashboard.New(opts.Provider, dashboard.Options{
		Timeout: opts.Timeout,
		Notify:  events.push,
	})

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(15),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.Placeholder = "Search processes by name, key, or description"
	ti.Prompt = "/ "
	ti.CharLimit = 128

	folders := opts.Folders
	if len(folders) == 0 {
		folders = dashboard.DefaultFolders()
	}

	m := &Model{
		controller: ctrl,
		store:      store,
		events:     events,
		folders:    folders,
		table:      t,
		search:     ti,
		statusMsg:  "Checking daemon status…",
	}
	m.syncTable()
	return m
}

// Run spins up the Bubble Tea program with sensible defaults.
func Run(ctrl Controller, opts Options) error {
	m := New(ctrl, opts)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.store.Refresh(context.Background())
	m.syncTable()
	return tea.Batch(checkDaemonStatusCmd(m.controller), waitForEvents(m.events))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(msg.Width)
		if msg.Height > 10 {
			m.table.SetHeight(msg.Height - 10)
		}
		m.syncTable()
		return m, nil

	case daemonStatusMsg:
		m.daemonStatus = msg.status
		if msg.status.Running {
			if msg.status.PID > 0 {
				m.statusMsg = fmt.Sprintf("Daemon running (pid %d).", msg.status.PID)
			} else {
				m.statusMsg = "Daemon running."
			}
		} else {
			m.statusMsg = "Daemon is not running. Press d to start it."
		}
		return m, nil

	case daemonStartedMsg:
		m.statusMsg = "Daemon started."
		m.err = nil
		m.store.Refresh(context.Background())
		m.syncTable()
		return m, checkDaemonStatusCmd(m.controller)

	case storeEventMsg:
		m.syncTable()
		for _, ev := range msg.events {
			if ev.Kind == dashboard.EventStarted && ev.Err == nil {
				m.statusMsg = fmt.Sprintf("Started %s.", ev.Request.Key)
			}
		}
		return m, waitForEvents(m.events)

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.view.Confirmation.Open {
			return m.updateConfirm(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "y", "Y":
		if req, ok := m.store.Confirm(context.Background()); ok {
			m.statusMsg = fmt.Sprintf("Starting %s…", req.Key)
		}
	case "n", "N", "esc", "q":
		m.store.Cancel()
	}
	m.syncTable()
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		m.table.Focus()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.store.SetSearch(m.search.Value())
	m.syncTable()
	return m, cmd
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "/":
		m.searching = true
		m.table.Blur()
		return m, m.search.Focus()
	case "c":
		m.search.SetValue("")
		m.store.SetSearch("")
	case "f":
		next := dashboard.NextFolder(m.folders, m.view.Criteria.Folder)
		m.store.SetFolder(context.Background(), next)
	case "1":
		m.store.ToggleSort(process.SortByName)
	case "2":
		m.store.ToggleSort(process.SortByKey)
	case "3":
		m.store.ToggleSort(process.SortByDescription)
	case "r":
		m.err = nil
		m.store.Refresh(context.Background())
		return m, checkDaemonStatusCmd(m.controller)
	case "d":
		if !m.daemonStatus.Running {
			m.statusMsg = "Starting daemon…"
			return m, startDaemonCmd(m.controller)
		}
	case "s", "enter":
		if m.store.Starting() {
			m.statusMsg = "A start is already in progress."
			break
		}
		if p, ok := m.currentProcess(); ok {
			m.store.RequestStart(p)
		}
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	m.syncTable()
	return m, nil
}

// syncTable takes a fresh snapshot from the store and rebuilds the table.
func (m *Model) syncTable() {
	m.view = m.store.View()
	m.table.SetColumns(m.columns())

	rows := make([]table.Row, 0, len(m.view.Processes))
	for _, p := range m.view.Processes {
		rows = append(rows, table.Row{
			p.Name,
			versionLabel(p.Version),
			p.Key,
			descriptionOrDefault(p.Description),
			dashboard.FolderLabel(m.folders, process.FolderFilter(p.Folder())),
			p.Status().String(),
		})
	}
	m.table.SetRows(rows)
	if cursor := m.table.Cursor(); cursor >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m *Model) columns() []table.Column {
	width := m.width
	if width <= 0 {
		width = 120
	}
	descWidth := width - 25 - 8 - 22 - 16 - 10 - 12
	if descWidth < 20 {
		descWidth = 20
	}
	return []table.Column{
		{Title: m.sortTitle("Name", process.SortByName), Width: 25},
		{Title: "Version", Width: 8},
		{Title: m.sortTitle("Key", process.SortByKey), Width: 22},
		{Title: m.sortTitle("Description", process.SortByDescription), Width: descWidth},
		{Title: "Folder", Width: 16},
		{Title: "Status", Width: 10},
	}
}

func (m *Model) sortTitle(title string, field process.SortField) string {
	if m.view.Sort.Field != field {
		return title
	}
	if m.view.Sort.Direction == process.Descending {
		return title + " ↓"
	}
	return title + " ↑"
}

func (m *Model) currentProcess() (process.Process, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.view.Processes) {
		return process.Process{}, false
	}
	return m.view.Processes[idx], true
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	v := m.view

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	b.WriteString(titleStyle.Render("UiPath Processes"))
	b.WriteByte('\n')

	statusStyle := lipgloss.NewStyle().Bold(true)
	if !m.daemonStatus.Running {
		statusStyle = statusStyle.Foreground(lipgloss.Color("203"))
	} else {
		statusStyle = statusStyle.Foreground(lipgloss.Color("42"))
	}
	b.WriteString(statusStyle.Render(m.statusMsg))
	b.WriteByte('\n')

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("Folder: %s • %s", dashboard.FolderLabel(m.folders, v.Criteria.Folder), v.Summary())))
	b.WriteByte('\n')

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteByte('\n')
	}

	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	switch {
	case v.Loading && v.Total == 0:
		b.WriteString("Loading processes…\n")
	case v.FetchErr != nil:
		b.WriteString(errStyle.Render(fmt.Sprintf("Failed to load processes: %v", v.FetchErr)))
		b.WriteByte('\n')
	case len(v.Processes) == 0:
		b.WriteString(emptyMessage)
		b.WriteByte('\n')
	default:
		b.WriteString(m.table.View())
		b.WriteByte('\n')
	}

	if m.err != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteByte('\n')
	}
	if v.Starting {
		b.WriteString("Starting process…\n")
	} else if v.StartErr != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("Failed to start process: %v", v.StartErr)))
		b.WriteByte('\n')
	}

	if v.Confirmation.Open {
		confirmStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("160")).
			Padding(0, 1)
		b.WriteString(confirmStyle.Render("Start Process: " + v.Confirmation.Prompt() + " (y/n)"))
		b.WriteByte('\n')
	}

	help := "q quit • / search • c clear • f folder • 1/2/3 sort name/key/description • s start • r refresh"
	if !m.daemonStatus.Running {
		help += " • d start daemon"
	}
	if !v.UpdatedAt.IsZero() {
		help += fmt.Sprintf(" • last update %s", v.UpdatedAt.Format(time.Kitchen))
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func versionLabel(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return "v" + v
}

func descriptionOrDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return "No description available"
	}
	return s
}

type daemonStatusMsg struct {
	status app.DaemonStatus
}

type daemonStartedMsg struct{}

type storeEventMsg struct {
	events []dashboard.Event
}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func checkDaemonStatusCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		status, err := ctrl.Status()
		if err != nil {
			return errMsg{err}
		}
		return daemonStatusMsg{status: status}
	}
}

func startDaemonCmd(ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		if _, err := ctrl.StartDaemon(); err != nil {
			return errMsg{err}
		}
		// Give the daemon a moment to bind the socket.
		time.Sleep(300 * time.Millisecond)
		return daemonStartedMsg{}
	}
}

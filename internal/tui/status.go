package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tanzeel8246/madrasa/internal/i18n"
	"github.com/Tanzeel8246/madrasa/models"
)

type statusModel struct {
	spinner spinner.Model
	status  models.SyncStatus
	updates <-chan models.SyncStatus
	lang    string
	closed  bool
}

func newStatusModel(initial models.SyncStatus, updates <-chan models.SyncStatus, lang string) statusModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return statusModel{
		spinner: s,
		status:  initial,
		updates: updates,
		lang:    lang,
	}
}

func (m statusModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForStatus(m.updates))
}

func waitForStatus(updates <-chan models.SyncStatus) tea.Cmd {
	return func() tea.Msg {
		status, ok := <-updates
		if !ok {
			return statusClosedMsg{}
		}
		return statusMsg(status)
	}
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case statusMsg:
		m.status = models.SyncStatus(msg)
		return m, waitForStatus(m.updates)

	case statusClosedMsg:
		m.closed = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m statusModel) View() string {
	title := titleStyle.Render(i18n.T(m.lang, i18n.KeyAppTitle) + " " + i18n.T(m.lang, i18n.KeyAppSubtitle))

	var conn string
	if m.status.Online {
		conn = onlineStyle.Render("● " + i18n.T(m.lang, i18n.KeyStatusOnline))
	} else {
		conn = offlineStyle.Render("● " + i18n.T(m.lang, i18n.KeyStatusOffline))
	}

	line := conn
	if m.status.Syncing {
		line += "  " + m.spinner.View() + " " + i18n.T(m.lang, i18n.KeyWentOnline)
	}
	if m.status.Pending > 0 {
		line += "  " + pendingStyle.Render(
			fmt.Sprintf("%d %s", m.status.Pending, i18n.T(m.lang, i18n.KeyPendingCount)))
	}

	help := helpStyle.Render("q: quit")

	return appStyle.Render(title + "\n\n" + line + "\n\n" + help)
}

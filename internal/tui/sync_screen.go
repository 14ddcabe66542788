package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-photo-catalog/internal/adapter"
	"github.com/MKhiriev/go-photo-catalog/internal/app"
	"github.com/MKhiriev/go-photo-catalog/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenPeerForm screen = iota
	screenSync
)

const statusClearDelay = 2 * time.Second

var writeClipboard = clipboard.WriteAll

var phaseTitles = map[models.SyncPhase]string{
	models.SyncPhaseGatheringData:   "Сбор данных",
	models.SyncPhaseSentToForeign:   "Изменения отправлены пиру",
	models.SyncPhaseStartingToApply: "Подготовка к применению изменений",
	models.SyncPhaseAddingToDB:      "Запись изменений в базу",
	models.SyncPhaseRemovingFile:    "Удаление файлов",
	models.SyncPhaseAddingSyncpoint: "Сохранение точки синхронизации",
	models.SyncPhaseDone:            "Синхронизация завершена",
	models.SyncPhaseError:           "Ошибка синхронизации",
}

type syncFlowModel struct {
	ctx          context.Context
	catalog      adapter.CatalogAdapter
	pollInterval time.Duration
	buildInfo    models.AppBuildInfo

	currentScreen screen
	peerInput     textinput.Model
	formErr       string
	spinner       spinner.Model

	foreignURL string
	jobID      string
	status     models.SyncStatus
	hasStatus  bool

	done          bool
	err           error
	statusLine    string
	showBuildInfo bool
	quitByUser    bool
}

func newSyncFlowModel(ctx context.Context, catalog adapter.CatalogAdapter, foreignURL string, pollInterval time.Duration, buildInfo models.AppBuildInfo) syncFlowModel {
	input := textinput.New()
	input.Placeholder = "http://host:8080"
	input.CharLimit = 512
	input.Width = 48
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := syncFlowModel{
		ctx:           ctx,
		catalog:       catalog,
		pollInterval:  pollInterval,
		buildInfo:     buildInfo,
		currentScreen: screenPeerForm,
		peerInput:     input,
		spinner:       s,
	}

	if url := strings.TrimSpace(foreignURL); url != "" {
		m.currentScreen = screenSync
		m.foreignURL = url
	}
	return m
}

func (m syncFlowModel) Init() tea.Cmd {
	if m.currentScreen == screenSync {
		return tea.Batch(m.spinner.Tick, m.cmdTriggerSync())
	}
	return textinput.Blink
}

func (m syncFlowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			m.quitByUser = !m.done
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.currentScreen == screenPeerForm {
			return m.updatePeerForm(msg)
		}
		return m.updateSyncKeys(msg)
	case syncStartedMsg:
		if msg.err != nil {
			m.fail(msg.err)
			return m, nil
		}
		m.jobID = msg.jobID
		return m, m.cmdFetchProgress()
	case pollMsg:
		if m.done {
			return m, nil
		}
		return m, m.cmdFetchProgress()
	case progressMsg:
		return m.updateProgress(msg)
	case copiedMsg:
		m.statusLine = app.MsgCopied
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.statusLine = msg.err.Error()
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.statusLine = ""
		return m, nil
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.currentScreen == screenPeerForm {
		var cmd tea.Cmd
		m.peerInput, cmd = m.peerInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m syncFlowModel) updatePeerForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.enter):
		url := strings.TrimSpace(m.peerInput.Value())
		if url == "" {
			m.formErr = app.MsgEmptyPeerURL
			return m, nil
		}
		m.formErr = ""
		m.foreignURL = url
		m.currentScreen = screenSync
		m.peerInput.Blur()
		return m, tea.Batch(m.spinner.Tick, m.cmdTriggerSync())
	}

	var cmd tea.Cmd
	m.peerInput, cmd = m.peerInput.Update(msg)
	return m, cmd
}

func (m syncFlowModel) updateSyncKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = !m.done
		return m, tea.Quit
	case key.Matches(msg, keys.enter):
		if m.done {
			return m, tea.Quit
		}
	case key.Matches(msg, keys.copy):
		if m.jobID != "" {
			return m, cmdCopyToClipboard(m.jobID)
		}
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}
	return m, nil
}

func (m syncFlowModel) updateProgress(msg progressMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// the job may not be registered yet right after the trigger
		if errors.Is(msg.err, adapter.ErrNotFound) && !m.hasStatus {
			return m, m.cmdPoll()
		}
		m.fail(msg.err)
		return m, nil
	}

	m.status = msg.status
	m.hasStatus = true
	if msg.status.LastUpdate.IsTerminal() {
		m.done = true
		return m, nil
	}
	return m, m.cmdPoll()
}

func (m *syncFlowModel) fail(err error) {
	m.err = err
	m.done = true
}

// result returns the final status of the flow.
func (m syncFlowModel) result() (models.SyncStatus, error) {
	switch {
	case m.quitByUser:
		return m.status, ErrUserQuit
	case m.err != nil:
		return m.status, m.err
	case m.status.LastUpdate.Phase == models.SyncPhaseError:
		return m.status, fmt.Errorf("%w: %s", ErrSyncFailed, m.status.LastUpdate.Message)
	case !m.done:
		return m.status, ErrUserQuit
	}
	return m.status, nil
}

func (m syncFlowModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}
	if m.currentScreen == screenPeerForm {
		return m.viewPeerForm()
	}
	return m.viewSync()
}

func (m syncFlowModel) viewPeerForm() string {
	var b strings.Builder
	b.WriteString("Адрес пира:\n")
	b.WriteString(m.peerInput.View())
	if m.formErr != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.formErr))
	}
	return renderPage("СИНХРОНИЗАЦИЯ", b.String(), "enter: начать  esc: выход")
}

func (m syncFlowModel) viewSync() string {
	var b strings.Builder

	b.WriteString(renderRows(
		row{label: "Пир", value: fitText(m.foreignURL, 60)},
		row{label: "Задача", value: m.jobID},
		row{label: "Задача на пире", value: m.status.ForeignJobID},
	))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(humanizeError(m.err)))
	case !m.hasStatus:
		b.WriteString(m.spinner.View())
		b.WriteString(" Запуск синхронизации...")
	default:
		b.WriteString(m.viewPhase())
	}

	if m.statusLine != "" {
		b.WriteString("\n\n")
		b.WriteString(m.statusLine)
	}

	hotKeys := "q: выход  c: копировать id  v: о программе"
	if m.done {
		hotKeys = "enter: выход  c: копировать id  v: о программе"
	}
	return renderPage(viewTitle(m.status.LastUpdate.Phase), b.String(), hotKeys)
}

func (m syncFlowModel) viewPhase() string {
	update := m.status.LastUpdate
	title := phaseTitles[update.Phase]
	if title == "" {
		title = string(update.Phase)
	}

	var b strings.Builder
	switch update.Phase {
	case models.SyncPhaseDone:
		b.WriteString(doneStyle.Render(title))
	case models.SyncPhaseError:
		b.WriteString(errorStyle.Render(title))
	default:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(title)
	}

	switch update.Phase {
	case models.SyncPhaseStartingToApply, models.SyncPhaseAddingToDB, models.SyncPhaseRemovingFile:
		fmt.Fprintf(&b, "\nОсталось: %d", update.Remaining)
	case models.SyncPhaseError:
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(humanizeJobError(update.Message)))
	}

	if !m.status.UpdatedAt.IsZero() {
		b.WriteString("\nОбновлено: ")
		b.WriteString(m.status.UpdatedAt.Local().Format(time.DateTime))
	}
	return b.String()
}

func viewTitle(phase models.SyncPhase) string {
	switch phase {
	case models.SyncPhaseDone:
		return "СИНХРОНИЗАЦИЯ ЗАВЕРШЕНА"
	case models.SyncPhaseError:
		return "СИНХРОНИЗАЦИЯ НЕ УДАЛАСЬ"
	}
	return "СИНХРОНИЗАЦИЯ"
}

func (m syncFlowModel) cmdTriggerSync() tea.Cmd {
	ctx, catalog, foreignURL := m.ctx, m.catalog, m.foreignURL
	return func() tea.Msg {
		jobID, err := catalog.TriggerSync(ctx, foreignURL)
		return syncStartedMsg{jobID: jobID, err: err}
	}
}

func (m syncFlowModel) cmdFetchProgress() tea.Cmd {
	ctx, catalog, jobID := m.ctx, m.catalog, m.jobID
	return func() tea.Msg {
		status, err := catalog.SyncProgress(ctx, jobID)
		return progressMsg{status: status, err: err}
	}
}

func (m syncFlowModel) cmdPoll() tea.Cmd {
	return tea.Tick(m.pollInterval, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusClearDelay, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/bancada/internal/domain"
	"github.com/renato0307/bancada/internal/logging"
	"github.com/renato0307/bancada/internal/ports"
	"github.com/renato0307/bancada/internal/services"
	"github.com/renato0307/bancada/internal/theme"
)

type uiState int

const (
	stateMain uiState = iota
	stateCommitting
	stateHelp
	stateOpeningFolder
)

type panelID int

const (
	panelFiles panelID = iota
	panelGit
	panelRecent
	panelCount
)

// Options configures the TUI model
type Options struct {
	Editor          ports.EditorLauncher // optional; disables the edit key when nil
	ErrorClearDelay time.Duration
	InitialFolder   string
	Mirror          *services.MenuMirror // optional; shown in the status line
	Workspace       *services.Workspace
}

// Model is the bubbletea model of the workbench: files, preview, git and
// recent panels over one services.Workspace
type Model struct {
	dialog       *Dialog
	editor       ports.EditorLauncher
	errorManager *ErrorManager
	files        filesPanel
	focus        panelID
	git          gitPanel
	help         help.Model
	height       int
	initial      string
	keys         KeyMap
	mirror       *services.MenuMirror
	preview      viewport.Model
	previewPath  string
	recent       recentPanel
	state        uiState
	width        int
	ws           *services.Workspace
}

// NewModel creates the TUI model
func NewModel(opts Options) *Model {
	m := &Model{
		editor:       opts.Editor,
		errorManager: NewErrorManager(opts.ErrorClearDelay),
		help:         help.New(),
		initial:      opts.InitialFolder,
		keys:         NewKeyMap(),
		mirror:       opts.Mirror,
		preview:      viewport.New(0, 0),
		state:        stateMain,
		ws:           opts.Workspace,
	}
	m.recent.setItems(m.ws.Recent().Items())
	m.git.setStatus(domain.RepoStateNoRoot, nil)
	return m
}

func (m *Model) Init() tea.Cmd {
	if m.initial != "" {
		return openFolderCmd(m.ws, m.initial)
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizePreview()
		if m.dialog != nil {
			_, cmd := m.dialog.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Application.ForceQuit) {
			return m, tea.Quit
		}
	case clearErrorMsg:
		m.errorManager.ClearError()
		return m, nil
	case editorClosedMsg:
		return m, m.afterEdit(msg)
	case folderOpenedMsg, treeLoadedMsg, statusLoadedMsg, fileOpenedMsg, recentChangedMsg:
		return m, m.handleResult(msg)
	}

	switch m.state {
	case stateCommitting, stateHelp, stateOpeningFolder:
		return m.updateDialog(msg)
	default:
		return m.updateMain(msg)
	}
}

func (m *Model) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Application.Help):
		return m, m.openDialog(stateHelp, "Help", NewHelpScreen(&m.keys))
	case key.Matches(keyMsg, m.keys.Application.OpenFolder):
		return m, m.openDialog(stateOpeningFolder, "Open Folder", NewOpenFolderForm(m.ws.Root()))
	case key.Matches(keyMsg, m.keys.Application.Edit):
		return m, m.editSelected()
	case key.Matches(keyMsg, m.keys.Navigation.NextPanel):
		m.focus = (m.focus + 1) % panelCount
	case key.Matches(keyMsg, m.keys.Navigation.PrevPanel):
		m.focus = (m.focus + panelCount - 1) % panelCount
	case key.Matches(keyMsg, m.keys.Navigation.Up):
		m.moveCursor(-1)
	case key.Matches(keyMsg, m.keys.Navigation.Down):
		m.moveCursor(1)
	case key.Matches(keyMsg, m.keys.Navigation.Select):
		return m, m.selectRow()
	case key.Matches(keyMsg, m.keys.Git.Refresh):
		return m, m.refresh()
	case key.Matches(keyMsg, m.keys.Git.Stage):
		return m, m.stageSelected(true)
	case key.Matches(keyMsg, m.keys.Git.Unstage):
		return m, m.stageSelected(false)
	case key.Matches(keyMsg, m.keys.Git.Commit):
		return m, m.startCommit()
	case key.Matches(keyMsg, m.keys.Recent.Remove):
		if m.focus == panelRecent {
			if row, ok := m.recent.selected(); ok {
				return m, removeRecentCmd(m.ws, row.kind, row.entry.Path)
			}
		}
	default:
		if m.focus == panelFiles && m.previewPath != "" {
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) openDialog(state uiState, title string, content tea.Model) tea.Cmd {
	m.dialog = NewDialog(title, content)
	m.state = state
	initCmd := m.dialog.Init()
	_, sizeCmd := m.dialog.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return tea.Batch(initCmd, sizeCmd)
}

func (m *Model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.dialog.Update(msg)
	if !m.dialog.Done() {
		return m, cmd
	}

	content := m.dialog.Content()
	m.dialog = nil
	m.state = stateMain

	switch c := content.(type) {
	case *CommitForm:
		message, cancelled := c.Result()
		if cancelled {
			return m, nil
		}
		logging.Logger.Info("Committing from TUI", "root", m.ws.Root())
		return m, commitCmd(m.ws, message)
	case *OpenFolderForm:
		if c.Cancelled() {
			return m, nil
		}
		return m, openFolderCmd(m.ws, c.Path())
	}
	return m, nil
}

// handleResult applies the outcome of a workspace command
func (m *Model) handleResult(msg tea.Msg) tea.Cmd {
	var err error

	switch msg := msg.(type) {
	case folderOpenedMsg:
		err = msg.Err
		if err == nil {
			m.files.cursor = cursor{}
			m.files.setTree(msg.Tree)
			m.previewPath = ""
			m.preview.SetContent("")
			m.syncGit()
		}
		m.recent.setItems(m.ws.Recent().Items())
	case treeLoadedMsg:
		err = msg.Err
		if err == nil {
			m.files.setTree(msg.Tree)
		}
	case statusLoadedMsg:
		err = msg.Err
		m.syncGit()
	case fileOpenedMsg:
		err = msg.Err
		if err == nil {
			m.showFile(msg.File)
			if tree := m.ws.Tree().Current(); tree != nil && tree.Root != m.files.root {
				m.files.cursor = cursor{}
				m.files.setTree(tree)
				m.syncGit()
			}
		}
		m.recent.setItems(m.ws.Recent().Items())
	case recentChangedMsg:
		err = msg.Err
		m.recent.setItems(m.ws.Recent().Items())
	}

	if err == nil || isQuietError(err) {
		return nil
	}
	logging.Logger.Warn("Workspace action failed", "error", err)
	return m.errorManager.SetError(err)
}

// isQuietError reports errors that are states rather than failures
func isQuietError(err error) bool {
	return errors.Is(err, domain.ErrStaleRender) ||
		errors.Is(err, domain.ErrNotARepository) ||
		errors.Is(err, domain.ErrNoRoot)
}

func (m *Model) syncGit() {
	state, _ := m.ws.Git().State()
	m.git.setStatus(state, m.ws.Git().Snapshot())
}

func (m *Model) showFile(file *services.OpenedFile) {
	m.previewPath = file.Path
	m.preview.SetContent(string(file.Content))
	m.preview.GotoTop()
}

func (m *Model) moveCursor(delta int) {
	switch m.focus {
	case panelFiles:
		m.files.cursor.move(delta, len(m.files.rows))
	case panelGit:
		m.git.cursor.move(delta, len(m.git.entries))
	case panelRecent:
		m.recent.cursor.move(delta, len(m.recent.rows))
	}
}

func (m *Model) selectRow() tea.Cmd {
	switch m.focus {
	case panelFiles:
		row, ok := m.files.selected()
		if !ok {
			return nil
		}
		if row.Entry.IsDir() {
			return toggleCmd(m.ws, row.Entry.Path)
		}
		return openFileCmd(m.ws, row.Entry.Path, m.files.root)
	case panelGit:
		entry, ok := m.git.selected()
		if !ok || entry.file.Kind == domain.StatusDeleted {
			return nil
		}
		return openFileCmd(m.ws, filepath.Join(m.ws.Root(), entry.file.Path), m.ws.Root())
	case panelRecent:
		row, ok := m.recent.selected()
		if !ok {
			return nil
		}
		if row.kind == domain.RecentFolders {
			return openFolderCmd(m.ws, row.entry.Path)
		}
		return openFileCmd(m.ws, row.entry.Path, row.entry.FolderPath)
	}
	return nil
}

// editPath returns the path under the cursor of the focused panel, falling
// back to the previewed file
func (m *Model) editPath() string {
	switch m.focus {
	case panelFiles:
		if row, ok := m.files.selected(); ok {
			return row.Entry.Path
		}
	case panelGit:
		if entry, ok := m.git.selected(); ok && entry.file.Kind != domain.StatusDeleted {
			return filepath.Join(m.ws.Root(), entry.file.Path)
		}
	case panelRecent:
		if row, ok := m.recent.selected(); ok {
			return row.entry.Path
		}
	}
	return m.previewPath
}

func (m *Model) editSelected() tea.Cmd {
	if m.editor == nil {
		return nil
	}
	path := m.editPath()
	if path == "" {
		return nil
	}
	return editCmd(m.editor, path)
}

// afterEdit reloads what the editor may have changed: the tree, the git
// status and the previewed file
func (m *Model) afterEdit(msg editorClosedMsg) tea.Cmd {
	var cmds []tea.Cmd
	if msg.Err != nil {
		logging.Logger.Warn("Editor failed", "path", msg.Path, "error", msg.Err)
		cmds = append(cmds, m.errorManager.SetError(msg.Err))
	}
	cmds = append(cmds, m.refresh())
	if m.previewPath != "" && m.previewPath == msg.Path {
		cmds = append(cmds, openFileCmd(m.ws, m.previewPath, m.ws.Root()))
	}
	return tea.Batch(cmds...)
}

func (m *Model) refresh() tea.Cmd {
	if m.ws.Root() == "" {
		return nil
	}
	return tea.Batch(refreshTreeCmd(m.ws), refreshStatusCmd(m.ws))
}

// stageSelected stages or unstages the selected git row, or the selected
// file of the tree
func (m *Model) stageSelected(stage bool) tea.Cmd {
	var path string
	switch m.focus {
	case panelGit:
		entry, ok := m.git.selected()
		if !ok {
			return nil
		}
		path = entry.file.Path
	case panelFiles:
		row, ok := m.files.selected()
		if !ok || row.Entry.IsDir() {
			return nil
		}
		path = row.Entry.Path
	default:
		return nil
	}

	if stage {
		return stageCmd(m.ws, path)
	}
	return unstageCmd(m.ws, path)
}

func (m *Model) startCommit() tea.Cmd {
	if m.git.state != domain.RepoStateRepo {
		return nil
	}
	if !m.git.snapshot.HasStaged() {
		return m.errorManager.SetError(errors.New("nothing staged to commit"))
	}
	return m.openDialog(stateCommitting, "Commit", NewCommitForm(len(m.git.snapshot.Staged)))
}

// layout returns the outer widths of the three columns and the body height
func (m *Model) layout() (filesW, previewW, sideW, bodyH int) {
	bodyH = max(m.height-3, 6)
	filesW = max(m.width*3/10, 20)
	sideW = max(m.width*3/10, 24)
	previewW = max(m.width-filesW-sideW, 10)
	return filesW, previewW, sideW, bodyH
}

func (m *Model) resizePreview() {
	_, previewW, _, bodyH := m.layout()
	m.preview.Width = max(previewW-4, 1)
	m.preview.Height = max(bodyH-3, 1)
}

func (m *Model) View() string {
	if m.dialog != nil {
		return m.dialog.View()
	}
	if m.width == 0 {
		return "Loading..."
	}

	filesW, previewW, sideW, bodyH := m.layout()
	gitH := bodyH / 2
	recentH := bodyH - gitH

	filesTitle := "Files"
	if m.files.root != "" {
		filesTitle = "Files · " + filepath.Base(m.files.root)
	}
	files := renderPanel(filesTitle, m.files.render(bodyH-3, m.focus == panelFiles), filesW, bodyH, m.focus == panelFiles)

	previewTitle := "Preview"
	previewLines := []string{theme.MutedStyle.Render("Select a file to preview")}
	if m.previewPath != "" {
		previewTitle = "Preview · " + filepath.Base(m.previewPath)
		previewLines = strings.Split(m.preview.View(), "\n")
	}
	preview := renderPanel(previewTitle, previewLines, previewW, bodyH, false)

	git := renderPanel("Git", m.git.render(gitH-3, m.focus == panelGit), sideW, gitH, m.focus == panelGit)
	recent := renderPanel("Recent", m.recent.render(recentH-3, m.focus == panelRecent), sideW, recentH, m.focus == panelRecent)

	body := lipgloss.JoinHorizontal(lipgloss.Top, files, preview, lipgloss.JoinVertical(lipgloss.Left, git, recent))
	return body + "\n" + m.statusLine()
}

func (m *Model) statusLine() string {
	if err := m.errorManager.GetError(); err != nil {
		return theme.ErrorStyle.Render(formatErrorForDisplay(err, m.width))
	}

	line := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.mirror != nil {
		line += "  " + theme.StatusBarStyle.Render(mirrorSummary(m.mirror.Items()))
	}
	return line
}

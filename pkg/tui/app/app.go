// Package teaui hosts the Bubble Tea program for the kondate week planner.
package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"go.uber.org/zap"

	"tableflip.dev/kondate/pkg/debounce"
	"tableflip.dev/kondate/pkg/dispatch"
	"tableflip.dev/kondate/pkg/meal"
	"tableflip.dev/kondate/pkg/planner"
	"tableflip.dev/kondate/pkg/store"
	"tableflip.dev/kondate/pkg/tui/components/help"
	"tableflip.dev/kondate/pkg/tui/theme"
	"tableflip.dev/kondate/pkg/viewmodel"
)

// DefaultSuggestDelay is used when Options.SuggestDelay is zero.
const DefaultSuggestDelay = 300 * time.Millisecond

type mode int

const (
	modeNormal mode = iota
	modeEdit
	modeMove
	modeConfirm
	modeHelp
)

// Options configures the model.
type Options struct {
	Store        *store.Store
	Logger       *zap.Logger
	SuggestDelay time.Duration
}

// Model contains UI state.
type Model struct {
	table *dispatch.Table
	p     *planner.Planner
	store *store.Store
	log   *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mode   mode
	cursor int
	moving meal.SlotKey

	input       textinput.Model
	suggest     *debounce.Debouncer[string]
	suggestCh   chan string
	suggestions []string
	suggestIdx  int

	confirmCmd  string
	confirmArgs dispatch.Args
	question    string

	status     string
	statusWarn bool

	width  int
	height int
	theme  theme.Theme
	help   *help.Model

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

type suggestMsg struct {
	query string
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

// New creates a model driving the planner behind t.
func New(t *dispatch.Table, opts Options) *Model {
	delay := opts.SuggestDelay
	if delay <= 0 {
		delay = DefaultSuggestDelay
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "料理名"
	ti.CharLimit = 64
	ti.Prompt = ""
	ti.VirtualCursor = true
	ti.Styles.Cursor.Color = lipgloss.Color("212")
	ti.Styles.Cursor.Shape = tea.CursorBlock
	ti.Styles.Cursor.Blink = true

	ctx, cancel := context.WithCancel(context.Background())
	p := t.Planner()
	m := &Model{
		table:     t,
		p:         p,
		store:     opts.Store,
		log:       log,
		ctx:       ctx,
		cancel:    cancel,
		input:     ti,
		suggestCh: make(chan string, 1),
		theme:     theme.New(p.DarkMode()),
	}
	m.suggest = debounce.New(delay, m.queueSuggest)
	m.cursor = m.todayIndex()
	return m
}

// queueSuggest runs on the debounce timer goroutine; only the latest query
// matters, so a stale pending one is replaced.
func (m *Model) queueSuggest(q string) {
	for {
		select {
		case m.suggestCh <- q:
			return
		default:
		}
		select {
		case <-m.suggestCh:
		default:
		}
	}
}

// Init starts the store watch and the suggestion listener.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.startWatch(), m.waitForSuggest())
}

func (m *Model) waitForSuggest() tea.Cmd {
	ch := m.suggestCh
	ctx := m.ctx
	return func() tea.Msg {
		select {
		case q := <-ch:
			return suggestMsg{query: q}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m *Model) startWatch() tea.Cmd {
	if m.store == nil {
		return nil
	}
	parent := m.ctx
	s := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := s.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stop() {
	m.suggest.Stop()
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
	m.cancel()
}

// Update handles Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.help != nil {
			m.help.SetSize(m.overlaySize())
		}
	case watchStartedMsg:
		if msg.err != nil {
			m.log.Debug("store watch unavailable", zap.Error(msg.err))
			break
		}
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())
	case watchEventMsg:
		m.p.Reload()
		m.applyTheme()
		cmds = append(cmds, m.waitForWatch())
	case watchStoppedMsg:
		m.watchCh = nil
	case suggestMsg:
		if m.mode == modeEdit && msg.query == m.input.Value() {
			m.setSuggestions(msg.query)
		}
		cmds = append(cmds, m.waitForSuggest())
	case tea.KeyPressMsg:
		if cmd := m.handleKeyPress(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	default:
		if m.mode == modeHelp && m.help != nil {
			_, cmd := m.help.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.stop()
		return tea.Quit
	}
	switch m.mode {
	case modeEdit:
		return m.handleEditKey(msg)
	case modeMove:
		return m.handleMoveKey(msg)
	case modeConfirm:
		return m.handleConfirmKey(msg)
	case modeHelp:
		return m.handleHelpKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		m.stop()
		return tea.Quit
	case "up", "k", "left", "h":
		m.moveCursor(-1)
	case "down", "j", "right", "l":
		m.moveCursor(1)
	case "enter":
		return m.beginEdit()
	case "m":
		m.beginMove()
	case "d", "delete", "backspace":
		m.run(dispatch.CmdSet, dispatch.Args{"day": string(m.currentSlot())})
	case "c":
		m.run(dispatch.CmdClear, nil)
	case "[":
		m.run(dispatch.CmdWeekPrev, nil)
	case "]":
		m.run(dispatch.CmdWeekNext, nil)
	case "t":
		m.run(dispatch.CmdWeekToday, nil)
		m.cursor = m.todayIndex()
	case "s":
		m.run(dispatch.CmdSave, nil)
	case "g":
		m.run(dispatch.CmdShopDerive, nil)
	case "f":
		if dish := m.currentDish(); dish != "" {
			m.run(dispatch.CmdFavorite, dispatch.Args{"name": dish})
		} else {
			m.setStatus(true, "料理が選択されていません")
		}
	case "D":
		m.run(dispatch.CmdDarkMode, nil)
		m.applyTheme()
	case "?":
		m.help = help.New(0, 0, m.theme.Dark)
		m.help.SetSize(m.overlaySize())
		m.mode = modeHelp
	}
	return nil
}

func (m *Model) handleEditKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.endEdit()
		m.setStatus(false, "")
		return nil
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		if m.suggestIdx >= 0 && m.suggestIdx < len(m.suggestions) {
			name = m.suggestions[m.suggestIdx]
		}
		slot := m.currentSlot()
		m.endEdit()
		m.run(dispatch.CmdSet, dispatch.Args{"day": string(slot), "dish": name})
		return nil
	case "tab", "down":
		if n := len(m.suggestions); n > 0 {
			m.suggestIdx = (m.suggestIdx + 1) % n
		}
		return nil
	case "shift+tab", "up":
		if n := len(m.suggestions); n > 0 {
			m.suggestIdx = (m.suggestIdx - 1 + n) % n
		}
		return nil
	}
	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.suggestIdx = -1
		m.suggest.Trigger(v)
	}
	return cmd
}

func (m *Model) handleMoveKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "m":
		m.moving = ""
		m.mode = modeNormal
		m.setStatus(false, "移動を取り消しました")
	case "up", "k", "left", "h":
		m.moveCursor(-1)
	case "down", "j", "right", "l":
		m.moveCursor(1)
	case "enter":
		src := m.moving
		m.moving = ""
		m.mode = modeNormal
		m.run(dispatch.CmdMove, dispatch.Args{"from": string(src), "to": string(m.currentSlot())})
	}
	return nil
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y", "enter":
		args := dispatch.Args{"confirm": "true"}
		for k, v := range m.confirmArgs {
			args[k] = v
		}
		name := m.confirmCmd
		m.clearConfirm()
		m.run(name, args)
	case "n", "N", "esc", "q":
		m.clearConfirm()
		m.setStatus(false, "キャンセルしました")
	}
	return nil
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc", "?":
		m.help = nil
		m.mode = modeNormal
		return nil
	}
	if m.help != nil {
		_, cmd := m.help.Update(msg)
		return cmd
	}
	return nil
}

// run dispatches a command and reflects the result in the status line. A
// result that needs confirmation switches to the confirm prompt.
func (m *Model) run(name string, args dispatch.Args) {
	res, err := m.table.Dispatch(name, args)
	if err != nil {
		m.setStatus(true, err.Error())
		return
	}
	if res.NeedsConfirm {
		m.mode = modeConfirm
		m.confirmCmd = name
		m.confirmArgs = args
		m.question = res.Message
		return
	}
	m.setStatus(res.Level == dispatch.Warn, res.Message)
}

func (m *Model) clearConfirm() {
	m.mode = modeNormal
	m.confirmCmd = ""
	m.confirmArgs = nil
	m.question = ""
}

func (m *Model) beginEdit() tea.Cmd {
	m.mode = modeEdit
	m.input.SetValue(m.currentDish())
	m.input.CursorEnd()
	m.suggestions = nil
	m.suggestIdx = -1
	var cmds []tea.Cmd
	if cmd := m.input.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, textinput.Blink)
	return tea.Batch(cmds...)
}

func (m *Model) endEdit() {
	m.suggest.Stop()
	m.input.Blur()
	m.input.SetValue("")
	m.suggestions = nil
	m.suggestIdx = -1
	m.mode = modeNormal
}

func (m *Model) beginMove() {
	if m.currentDish() == "" {
		m.setStatus(true, "移動する献立がありません")
		return
	}
	m.moving = m.currentSlot()
	m.mode = modeMove
	m.setStatus(false, fmt.Sprintf("「%s」を移動中: 移動先を選んで enter", m.currentDish()))
}

func (m *Model) setSuggestions(query string) {
	if strings.TrimSpace(query) == "" {
		m.suggestions = nil
	} else {
		m.suggestions = meal.Suggest(query, meal.DefaultSuggestLimit, m.p.Favorites()...)
	}
	m.suggestIdx = -1
}

func (m *Model) setStatus(warn bool, msg string) {
	m.status = msg
	m.statusWarn = warn
}

func (m *Model) applyTheme() {
	if dark := m.p.DarkMode(); dark != m.theme.Dark {
		m.theme = theme.New(dark)
		if m.help != nil {
			m.help.SetDark(dark)
		}
	}
}

func (m *Model) moveCursor(delta int) {
	n := len(meal.Days)
	m.cursor = ((m.cursor+delta)%n + n) % n
}

func (m *Model) currentSlot() meal.SlotKey {
	return meal.Key(meal.Days[m.cursor], meal.Dinner)
}

func (m *Model) currentDish() string {
	name, _ := m.p.Slot(meal.Days[m.cursor], meal.Dinner)
	return name
}

func (m *Model) todayIndex() int {
	wd := int(m.p.Now().Weekday())
	return (wd + 6) % 7
}

func (m *Model) overlaySize() (int, int) {
	return max(m.width-4, 32), max(m.height-4, 8)
}

// View renders the week, the input or confirm line and the status line.
func (m *Model) View() string {
	if m.mode == modeHelp && m.help != nil {
		view, _ := m.help.View()
		return view
	}

	th := m.theme
	v := viewmodel.Week(m.p, m.p.Now())

	var b strings.Builder
	header := th.Header.Title.Render("献立") + "  " + th.Header.Range.Render(v.Range)
	if m.p.Dirty() {
		header += "  " + th.Header.Dirty.Render("● 保存失敗")
	}
	b.WriteString(header + "\n\n")

	for i, d := range v.Days {
		b.WriteString(m.renderDay(i, d) + "\n")
	}
	b.WriteString("\n")

	switch m.mode {
	case modeEdit:
		b.WriteString(th.Footer.Prompt.Render(v.Days[m.cursor].Long+" > ") + m.input.View() + "\n")
		b.WriteString(m.renderSuggestions() + "\n")
	case modeConfirm:
		b.WriteString(th.Modal.Frame.Render(th.Modal.Title.Render(m.question)+"\n"+th.Modal.Body.Render("y: はい  n: いいえ")) + "\n")
	}

	status := th.Footer.Status
	if m.statusWarn {
		status = th.Footer.Warn
	}
	b.WriteString(status.Render(m.status) + "\n")
	b.WriteString(th.Footer.Help.Render("enter 編集  m 移動  d 削除  [ ] 週  s 保存  g 買い物  f お気に入り  ? ヘルプ  q 終了"))
	return b.String()
}

func (m *Model) renderDay(i int, d viewmodel.DayView) string {
	th := m.theme.Week
	day := th.Day
	if d.Today {
		day = th.Today
	}
	row := day.Render(d.Short) + th.Date.Render(d.DateLabel)
	if d.Empty() {
		row += th.Empty.Render("未定")
	} else {
		row += th.Dish.Render(d.Dish) + " " + m.theme.Category(d.Category).Render(string(d.Category))
		if d.Favorite {
			row += th.Favorite.Render(" ★")
		}
	}

	switch {
	case m.mode == modeMove && d.Slot == m.moving:
		return th.Moving.Render("◆ " + row)
	case i == m.cursor:
		return th.Cursor.Render("▸ " + row)
	default:
		return "  " + row
	}
}

func (m *Model) renderSuggestions() string {
	if len(m.suggestions) == 0 {
		return ""
	}
	parts := make([]string, len(m.suggestions))
	for i, s := range m.suggestions {
		if i == m.suggestIdx {
			parts[i] = m.theme.Footer.Selected.Render(s)
		} else {
			parts[i] = m.theme.Footer.Suggestion.Render(s)
		}
	}
	return strings.Join(parts, "  ")
}

// Run starts the program and blocks until it exits.
func Run(t *dispatch.Table, opts Options) error {
	m := New(t, opts)
	defer m.stop()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

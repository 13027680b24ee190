package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/quizboard/internal/board"
)

// Backend is what the App needs from the quiz API.
type Backend interface {
	board.Lister
	board.Creator
}

// Options tunes an App. Zero values pick the defaults.
type Options struct {
	Actions       board.Actions
	RedirectDelay time.Duration
}

// App is the quiz board's terminal front end. All state changes happen in
// Update; network calls run as commands and report back as messages.
type App struct {
	ctx     context.Context
	backend Backend
	apiURL  string
	actions board.Actions
	keys    keyMap

	nav    board.Nav
	list   board.ListState
	listGn board.Generation
	cursor int

	title       textinput.Model
	description textinput.Model
	field       int
	submission  board.Submission
	redirect    board.Generation
	delay       time.Duration

	status string
	width  int
}

const (
	fieldTitle = iota
	fieldDescription
	fieldCount
)

func New(ctx context.Context, backend Backend, apiURL string, opts Options) *App {
	if opts.Actions == nil {
		opts.Actions = board.ComingSoon{}
	}
	if opts.RedirectDelay <= 0 {
		opts.RedirectDelay = board.RedirectDelay
	}

	title := textinput.New()
	title.Placeholder = "Quiz title"
	title.Prompt = ""
	title.CharLimit = 0

	desc := textinput.New()
	desc.Placeholder = "What is this quiz about?"
	desc.Prompt = ""
	desc.CharLimit = 0

	return &App{
		ctx:         ctx,
		backend:     backend,
		apiURL:      apiURL,
		actions:     opts.Actions,
		keys:        defaultKeys(),
		list:        board.Loading(),
		title:       title,
		description: desc,
		delay:       opts.RedirectDelay,
	}
}

// Init shows the list panel, which loads the quizzes.
func (a *App) Init() tea.Cmd {
	return a.activate(board.ViewList)
}

// activate shows v and marks its tab. Showing the list always refetches.
func (a *App) activate(v board.View) tea.Cmd {
	refresh := a.nav.Activate(v)
	if v == board.ViewCreate {
		a.focusField(a.field)
	} else {
		a.title.Blur()
		a.description.Blur()
	}
	if refresh {
		return a.refresh()
	}
	return nil
}

// refresh puts the list back into its loading state and starts a fetch. Only
// the newest fetch's result is applied.
func (a *App) refresh() tea.Cmd {
	a.list = board.Loading()
	token := a.listGn.Next()
	ctx, backend, apiURL := a.ctx, a.backend, a.apiURL
	return func() tea.Msg {
		return quizzesMsg{token: token, state: board.Load(ctx, backend, apiURL)}
	}
}

func (a *App) submit() tea.Cmd {
	if !a.submission.Begin() {
		return nil
	}
	a.redirect.Cancel()
	ctx, backend := a.ctx, a.backend
	title, desc := a.title.Value(), a.description.Value()
	return func() tea.Msg {
		return submittedMsg{result: board.Submit(ctx, backend, title, desc)}
	}
}

func (a *App) scheduleRedirect() tea.Cmd {
	token := a.redirect.Next()
	return tea.Tick(a.delay, func(time.Time) tea.Msg {
		return redirectMsg{token: token}
	})
}

func (a *App) quit() tea.Cmd {
	a.redirect.Cancel()
	return tea.Quit
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.title.Width = max(20, m.Width-20)
		a.description.Width = max(20, m.Width-20)
	case tea.KeyMsg:
		if key.Matches(m, a.keys.ForceQuit) {
			return a, a.quit()
		}
		if a.nav.IsActive(board.ViewCreate) {
			return a.handleCreateKey(m)
		}
		return a.handleListKey(m)
	case quizzesMsg:
		if !a.listGn.Current(m.token) {
			return a, nil
		}
		a.list = m.state
		if a.cursor >= len(a.list.Cards) {
			a.cursor = 0
		}
	case submittedMsg:
		a.submission = m.result
		if a.submission.Phase == board.SubmitSucceeded {
			a.title.Reset()
			a.description.Reset()
			a.focusField(fieldTitle)
			return a, a.scheduleRedirect()
		}
	case redirectMsg:
		if !a.redirect.Current(m.token) {
			return a, nil
		}
		a.redirect.Cancel()
		return a, a.activate(board.ViewList)
	}
	return a, nil
}

func (a *App) handleListKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, a.quit()
	case key.Matches(m, a.keys.ShowList), key.Matches(m, a.keys.Refresh):
		a.status = ""
		return a, a.activate(board.ViewList)
	case key.Matches(m, a.keys.ShowCreate), key.Matches(m, a.keys.NextView):
		a.status = ""
		return a, a.activate(board.ViewCreate)
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < len(a.list.Cards)-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Details):
		if card, ok := a.selected(); ok {
			a.status = a.actions.ViewQuiz(card.ID)
		}
	case key.Matches(m, a.keys.Start):
		if card, ok := a.selected(); ok {
			a.status = a.actions.StartQuiz(card.ID)
		}
	}
	return a, nil
}

func (a *App) handleCreateKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Back):
		return a, a.activate(board.ViewList)
	case key.Matches(m, a.keys.NextView):
		return a, a.activate(a.nav.Next())
	case key.Matches(m, a.keys.Submit):
		return a, a.submit()
	case key.Matches(m, a.keys.NextField):
		a.focusField((a.field + 1) % fieldCount)
		return a, nil
	case key.Matches(m, a.keys.PrevField):
		a.focusField((a.field + fieldCount - 1) % fieldCount)
		return a, nil
	}

	var cmd tea.Cmd
	if a.field == fieldTitle {
		a.title, cmd = a.title.Update(m)
	} else {
		a.description, cmd = a.description.Update(m)
	}
	return a, cmd
}

func (a *App) focusField(f int) {
	a.field = f
	if f == fieldTitle {
		a.description.Blur()
		a.title.Focus()
		return
	}
	a.title.Blur()
	a.description.Focus()
}

func (a *App) selected() (board.Card, bool) {
	if a.list.Phase != board.ListLoaded || a.cursor >= len(a.list.Cards) {
		return board.Card{}, false
	}
	return a.list.Cards[a.cursor], true
}

// messages
type quizzesMsg struct {
	token string
	state board.ListState
}

type submittedMsg struct {
	result board.Submission
}

type redirectMsg struct {
	token string
}

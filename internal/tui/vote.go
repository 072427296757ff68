// Package tui is the terminal voting client.
package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/erazemk/izbor/internal/model"
	"github.com/erazemk/izbor/internal/voteflow"
)

// Voter is the part of the API client the vote UI needs.
type Voter interface {
	ListItems(ctx context.Context, category string) ([]model.Item, error)
	Vote(ctx context.Context, id int64, action model.Action) error
}

// VoteMode is the screen the vote UI is showing.
type VoteMode int

const (
	ModeLoading VoteMode = iota
	ModeVoting
	ModeRanking
	ModeError
)

const requestTimeout = 10 * time.Second

type itemsLoadedMsg struct {
	items []model.Item
}

type loadFailedMsg struct {
	err error
}

type voteResultMsg struct {
	action model.Action
	err    error
}

// VoteModel is the bubbletea model of a voting session.
type VoteModel struct {
	api      Voter
	category string
	flow     *voteflow.Flow
	mode     VoteMode
	err      error

	spinner spinner.Model
	help    help.Model
	width   int
}

// NewVoteModel returns a model that loads every item from api and starts
// voting in category.
func NewVoteModel(api Voter, category string) VoteModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = infoStyle

	return VoteModel{
		api:      api,
		category: category,
		mode:     ModeLoading,
		spinner:  s,
		help:     help.New(),
	}
}

// Mode returns the current screen.
func (m VoteModel) Mode() VoteMode {
	return m.mode
}

// Flow returns the vote flow, nil until items are loaded.
func (m VoteModel) Flow() *voteflow.Flow {
	return m.flow
}

func (m VoteModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadItemsCmd(m.api))
}

func loadItemsCmd(api Voter) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		// The flow filters locally, so fetch every category once.
		items, err := api.ListItems(ctx, "")
		if err != nil {
			return loadFailedMsg{err: fmt.Errorf("loading items: %w", err)}
		}
		return itemsLoadedMsg{items: items}
	}
}

func voteCmd(api Voter, id int64, action model.Action) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return voteResultMsg{action: action, err: api.Vote(ctx, id, action)}
	}
}

func (m VoteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case itemsLoadedMsg:
		m.flow = voteflow.New(msg.items, m.category)
		m.mode = ModeVoting
		return m, nil

	case loadFailedMsg:
		m.err = msg.err
		m.mode = ModeError
		return m, nil

	case voteResultMsg:
		if m.flow == nil {
			return m, nil
		}
		if msg.err != nil {
			m.flow.Fail(msg.err)
		} else {
			m.flow.Succeed(msg.action)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m VoteModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		return m, tea.Quit
	}
	if m.flow == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Ranking):
		if m.mode == ModeRanking {
			m.mode = ModeVoting
		} else {
			m.mode = ModeRanking
		}
		return m, nil

	case key.Matches(msg, keys.Category):
		m.flow.SetCategory(nextCategory(m.flow.Categories(), m.flow.Category()))
		return m, nil

	case m.mode != ModeVoting:
		return m, nil

	case key.Matches(msg, keys.Select):
		return m.vote(model.ActionSelect)

	case key.Matches(msg, keys.Pass):
		return m.vote(model.ActionPass)
	}
	return m, nil
}

func (m VoteModel) vote(action model.Action) (tea.Model, tea.Cmd) {
	item, err := m.flow.Begin()
	if err != nil {
		// Busy or done: the key press is ignored.
		return m, nil
	}
	return m, voteCmd(m.api, item.ID, action)
}

func nextCategory(categories []string, current string) string {
	i := slices.Index(categories, current)
	return categories[(i+1)%len(categories)]
}

func (m VoteModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("izbor"))
	b.WriteString("\n")

	switch m.mode {
	case ModeLoading:
		b.WriteString(m.spinner.View() + " Loading items...")
		return b.String()

	case ModeError:
		b.WriteString(dangerStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("q quit"))
		return b.String()
	}

	b.WriteString(renderTabs(m.flow.Categories(), m.flow.Category()))
	b.WriteString("\n\n")

	if m.mode == ModeRanking {
		b.WriteString(RenderRanking(m.flow.Ranking()))
	} else {
		b.WriteString(m.votingView())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m VoteModel) votingView() string {
	var b strings.Builder

	idx, total := m.flow.Position()
	if m.flow.Done() {
		if total == 0 {
			b.WriteString(mutedStyle.Render("No items in this category."))
		} else {
			b.WriteString(successStyle.Render("You have voted on every item in this category."))
			b.WriteString("\n")
			b.WriteString(mutedStyle.Render("Press r to see the ranking or tab to switch category."))
		}
		return b.String()
	}

	item, _ := m.flow.Current()
	b.WriteString(progressBar(idx, total, 30))
	b.WriteString("\n")
	b.WriteString(renderCard(item))

	switch {
	case m.flow.Pending():
		b.WriteString("\n" + m.spinner.View() + " Sending vote...")
	case m.flow.Err() != nil:
		b.WriteString("\n" + noticeStyle.Render("Vote failed: "+m.flow.Err().Error()))
	}
	return b.String()
}

// RunVoteUI starts the interactive vote UI.
func RunVoteUI(api Voter, category string) error {
	p := tea.NewProgram(NewVoteModel(api, category), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

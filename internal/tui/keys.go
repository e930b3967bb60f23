package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/lox/twentyone/internal/game"
)

type keyMap struct {
	Start      key.Binding
	Hit        key.Binding
	Stand      key.Binding
	Chart      key.Binding
	Trials     key.Binding
	NextRound  key.Binding
	NewSession key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Hit: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hit"),
		),
		Stand: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stand"),
		),
		Chart: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "toggle chart"),
		),
		Trials: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "cycle n"),
		),
		NextRound: key.NewBinding(
			key.WithKeys("r", " "),
			key.WithHelp("r", "next round"),
		),
		NewSession: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "new session"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// sync enables exactly the bindings the session accepts in state.
func (k *keyMap) sync(state game.State) {
	k.Start.SetEnabled(state == game.AwaitingName)
	k.Hit.SetEnabled(state == game.Playing)
	k.Stand.SetEnabled(state == game.Playing)
	k.NextRound.SetEnabled(state == game.RoundEnd)
	k.NewSession.SetEnabled(state == game.SessionEnd)
	k.Chart.SetEnabled(state != game.AwaitingName)
	k.Trials.SetEnabled(state != game.AwaitingName)
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Hit, k.Stand, k.NextRound, k.NewSession, k.Chart, k.Trials, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Hit, k.Stand, k.NextRound, k.NewSession},
		{k.Chart, k.Trials, k.Quit},
	}
}

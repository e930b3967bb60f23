package game

// State is the phase of a session.
type State int

const (
	AwaitingName State = iota
	Playing
	RoundEnd
	SessionEnd
)

func (s State) String() string {
	switch s {
	case AwaitingName:
		return "awaiting_name"
	case Playing:
		return "playing"
	case RoundEnd:
		return "round_end"
	case SessionEnd:
		return "session_end"
	default:
		return "unknown"
	}
}

// Action is an operator input other than name entry.
type Action int

const (
	Start Action = iota
	Hit
	Stand
	ToggleChart
	CycleTrials
	NextRound
	NewSession
)

func (a Action) String() string {
	switch a {
	case Start:
		return "start"
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	case ToggleChart:
		return "toggle_chart"
	case CycleTrials:
		return "cycle_trials"
	case NextRound:
		return "next_round"
	case NewSession:
		return "new_session"
	default:
		return "unknown"
	}
}

// ChartMode selects which probability view accompanies the table.
type ChartMode int

const (
	// ChartRisk shows the odds of the next card.
	ChartRisk ChartMode = iota
	// ChartPMF shows the distribution of ten-valued cards over n draws.
	ChartPMF
)

func (m ChartMode) String() string {
	if m == ChartPMF {
		return "pmf"
	}
	return "risk"
}

// ParseChartMode maps "risk" and "pmf" to a mode.
func ParseChartMode(s string) (ChartMode, bool) {
	switch s {
	case "risk", "":
		return ChartRisk, true
	case "pmf":
		return ChartPMF, true
	}
	return ChartRisk, false
}

// Seat identifies a participant.
type Seat int

const (
	PlayerSeat Seat = iota
	DealerSeat
)

func (s Seat) String() string {
	if s == DealerSeat {
		return "dealer"
	}
	return "player"
}

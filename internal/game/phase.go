package game

// Phase represents the current phase of the session state machine.
type Phase int

const (
	PhaseWaiting    Phase = iota // first seat filled, waiting for the second player
	PhaseSwapping                // turn underway, swaps accepted
	PhaseReshuffled              // turn ended, waiting for the new owner's deal request
	PhaseEnded                   // terminal
)

var phaseNames = map[Phase]string{
	PhaseWaiting:    "Waiting",
	PhaseSwapping:   "Swapping",
	PhaseReshuffled: "Reshuffled",
	PhaseEnded:      "Ended",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}

// Outcome is how an ended session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
	OutcomeAborted       // a client disconnected mid-session
	OutcomeInternalError // card partition invariant broke; state unusable
)

var outcomeNames = map[Outcome]string{
	OutcomeNone:          "None",
	OutcomeWon:           "Won",
	OutcomeLost:          "Lost",
	OutcomeAborted:       "Aborted",
	OutcomeInternalError: "InternalError",
}

func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}
	return "Unknown"
}

// Role identifies one of the two player seats.
type Role int

const (
	RolePlayerOne Role = iota
	RolePlayerTwo
)

// Other returns the opposing role.
func (r Role) Other() Role {
	return 1 - r
}

func (r Role) String() string {
	if r == RolePlayerOne {
		return "player1"
	}
	return "player2"
}

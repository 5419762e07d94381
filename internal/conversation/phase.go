package conversation

// Phase selects how the next user message is handled.
type Phase string

const (
	PhaseIntro      Phase = "intro"
	PhaseCollecting Phase = "collecting"
	PhaseQuestions  Phase = "questions"
	PhaseEnded      Phase = "ended"
)

func (p Phase) String() string {
	return string(p)
}

// Terminal reports whether no further input is processed in this phase.
func (p Phase) Terminal() bool {
	return p == PhaseEnded
}

package domain

// Phase is the engine-level state of a hangout derived from its poll.
// planning -> voting -> confirmed -> rsvp; a hangout with a single option
// skips voting entirely.
type Phase string

const (
	PhasePlanning  Phase = "planning"
	PhaseVoting    Phase = "voting"
	PhaseConfirmed Phase = "confirmed"
	PhaseRSVP      Phase = "rsvp"
)

// PhaseOf derives the current phase from the hangout's poll. A nil poll
// means no voting has been set up yet.
func PhaseOf(poll *Poll) Phase {
	if poll == nil {
		return PhasePlanning
	}
	switch poll.Status {
	case PollStatusActive:
		return PhaseVoting
	case PollStatusConsensusReached:
		return PhaseRSVP
	default:
		return PhasePlanning
	}
}

package consensus

import (
	"github.com/google/uuid"

	"hangout-api/internal/domain"
)

// Summary is the read-only aggregation of a poll's vote ledger consumed by
// consensus display surfaces.
type Summary struct {
	// VotesByOption maps each option to the users currently backing it.
	VotesByOption map[uuid.UUID][]uuid.UUID
	// VotesByUser maps each user to every option they voted for.
	VotesByUser map[uuid.UUID][]uuid.UUID
	// PreferredByUser maps each user to their single preferred option, if any.
	PreferredByUser map[uuid.UUID]uuid.UUID
}

// Summarize groups the vote snapshot by option and by user. Like Evaluate it
// is pure: the ledger rows are the only input.
func Summarize(votes []domain.Vote) Summary {
	s := Summary{
		VotesByOption:   make(map[uuid.UUID][]uuid.UUID),
		VotesByUser:     make(map[uuid.UUID][]uuid.UUID),
		PreferredByUser: make(map[uuid.UUID]uuid.UUID),
	}

	for _, v := range votes {
		s.VotesByOption[v.OptionID] = append(s.VotesByOption[v.OptionID], v.UserID)
		s.VotesByUser[v.UserID] = append(s.VotesByUser[v.UserID], v.OptionID)
		if v.Preferred {
			s.PreferredByUser[v.UserID] = v.OptionID
		}
	}

	return s
}

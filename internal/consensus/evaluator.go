// Package consensus implements the pure vote-aggregation logic that decides
// when a poll should finalize and which option wins. It performs no I/O:
// callers pass a fresh snapshot of the vote ledger on every evaluation, and
// the same snapshot always yields the same decision.
package consensus

import (
	"github.com/google/uuid"

	"hangout-api/internal/domain"
)

// Settings holds the poll configuration relevant to consensus.
type Settings struct {
	// Threshold is the percentage of active participants that must back a
	// single option before the poll finalizes.
	Threshold int
	// MinParticipants is the minimum active participant count before any
	// option can reach consensus.
	MinParticipants int
}

// Decision is the outcome of one evaluation pass.
type Decision struct {
	Ready  bool
	Winner *domain.PollOption
}

// Evaluate decides whether the poll should finalize given the current vote
// snapshot and active participant count.
//
// Each user counts once regardless of how many options they voted for: their
// preferred vote wins if set, otherwise their first recorded vote. The winner
// is the qualifying option with the highest projected voter count; equal
// counts are broken by option order, so the first option in the poll's stored
// list wins ties.
func Evaluate(options []domain.PollOption, votes []domain.Vote, activeParticipants int, settings Settings) Decision {
	if activeParticipants <= 0 || activeParticipants < settings.MinParticipants {
		return Decision{}
	}
	if len(options) == 0 {
		return Decision{}
	}

	counts := projectedCounts(votes)

	bestIdx := -1
	bestCount := 0
	for i, opt := range options {
		count := counts[opt.ID]
		percentage := float64(count) / float64(activeParticipants) * 100
		if percentage < float64(settings.Threshold) {
			continue
		}
		if count > bestCount {
			bestIdx = i
			bestCount = count
		}
	}

	if bestIdx < 0 {
		return Decision{}
	}

	winner := options[bestIdx]
	return Decision{Ready: true, Winner: &winner}
}

// projectedCounts collapses the multi-select ledger to one vote per user:
// the user's preferred vote if set, else their first recorded vote. Votes
// are assumed to be in recording order.
func projectedCounts(votes []domain.Vote) map[uuid.UUID]int {
	chosen := make(map[uuid.UUID]uuid.UUID)

	for _, v := range votes {
		if v.Preferred {
			chosen[v.UserID] = v.OptionID
			continue
		}
		if _, ok := chosen[v.UserID]; !ok {
			chosen[v.UserID] = v.OptionID
		}
	}

	counts := make(map[uuid.UUID]int, len(chosen))
	for _, optionID := range chosen {
		counts[optionID]++
	}
	return counts
}

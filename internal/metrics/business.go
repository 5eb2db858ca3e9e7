package metrics

// IncrementHangoutCreated increments hangout creation counter
func (m *Metrics) IncrementHangoutCreated() {
	m.safeExecute("IncrementHangoutCreated", func() {
		m.HangoutCreatedTotal.Inc()
	})
}

// IncrementVotesCast increments the vote operation counter
func (m *Metrics) IncrementVotesCast() {
	m.safeExecute("IncrementVotesCast", func() {
		m.VotesCastTotal.Inc()
	})
}

// IncrementConsensusReached increments the finalized-poll counter
func (m *Metrics) IncrementConsensusReached() {
	m.safeExecute("IncrementConsensusReached", func() {
		m.ConsensusReachedTotal.Inc()
	})
}

// IncrementRSVPResponse increments the RSVP response counter for a status
func (m *Metrics) IncrementRSVPResponse(status string) {
	m.safeExecute("IncrementRSVPResponse", func() {
		m.RSVPResponsesTotal.WithLabelValues(status).Inc()
	})
}

// SetHangoutsTotal sets the live hangouts gauge
func (m *Metrics) SetHangoutsTotal(count int64) {
	m.safeExecute("SetHangoutsTotal", func() {
		m.HangoutsTotal.Set(float64(count))
	})
}

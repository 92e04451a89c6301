package metrics

// IncrementCommentCreated increments the comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// IncrementVoteCast increments the successful vote counter
func (m *Metrics) IncrementVoteCast() {
	m.safeExecute("IncrementVoteCast", func() {
		m.VoteCastTotal.Inc()
	})
}

// IncrementVoteConflict increments the rejected duplicate vote counter
func (m *Metrics) IncrementVoteConflict() {
	m.safeExecute("IncrementVoteConflict", func() {
		m.VoteConflictTotal.Inc()
	})
}

// IncrementSentimentAnalyzed counts a persisted sentiment label
func (m *Metrics) IncrementSentimentAnalyzed(label string) {
	m.safeExecute("IncrementSentimentAnalyzed", func() {
		m.SentimentAnalyzedTotal.WithLabelValues(label).Inc()
	})
}

// IncrementSentimentFailure counts a failed classification attempt
func (m *Metrics) IncrementSentimentFailure() {
	m.safeExecute("IncrementSentimentFailure", func() {
		m.SentimentFailuresTotal.Inc()
	})
}

// IncrementSentimentDropped counts a task dropped due to a full queue
func (m *Metrics) IncrementSentimentDropped() {
	m.safeExecute("IncrementSentimentDropped", func() {
		m.SentimentDroppedTotal.Inc()
	})
}

// SetSentimentQueueDepth sets the current classification queue depth
func (m *Metrics) SetSentimentQueueDepth(depth int) {
	m.safeExecute("SetSentimentQueueDepth", func() {
		m.SentimentQueueDepth.Set(float64(depth))
	})
}

// SetCommentsTotal sets the total comments gauge
func (m *Metrics) SetCommentsTotal(count int64) {
	m.safeExecute("SetCommentsTotal", func() {
		m.CommentsTotal.Set(float64(count))
	})
}

// SetVotesTotal sets the total votes gauge
func (m *Metrics) SetVotesTotal(count int64) {
	m.safeExecute("SetVotesTotal", func() {
		m.VotesTotal.Set(float64(count))
	})
}

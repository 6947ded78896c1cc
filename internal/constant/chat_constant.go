package constant

const (
	// Sessions opened by the daily proactive check-in carry this title so the
	// dedupe query can find them.
	CheckinSessionTitle        = "A friendly check-in from Luma"
	CheckinSessionTitleUpdated = "A friendly check-in from Luma (Updated)"

	// Titles for user-opened sessions are the first message truncated to this.
	SessionTitleMaxLen = 40

	// Retrieval fan-out for the chat pipeline.
	RetrievalTopK = 5
)

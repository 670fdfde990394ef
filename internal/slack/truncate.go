package slack

const (
	// DefaultBlockCharLimit is the largest raw-data text Slack accepts
	// inside a single section block before rejecting the message.
	DefaultBlockCharLimit = 2900

	// truncationTail is how many characters are cut back from the limit
	// before the marker is appended.
	truncationTail = 20

	// TruncationMarker is the literal suffix appended to truncated
	// raw-data text.
	TruncationMarker = "\n... (truncated)"
)

// Fence wraps raw in a mrkdwn code fence. Text longer than limit is cut
// to limit-20 characters and the truncation marker is appended, so the
// fenced text never exceeds the limit plus the marker overhead. The
// second return reports whether truncation happened.
func Fence(raw string, limit int) (string, bool) {
	if limit <= 0 {
		limit = DefaultBlockCharLimit
	}
	truncated := false
	if len(raw) > limit {
		cut := limit - truncationTail
		if cut < 0 {
			cut = 0
		}
		raw = raw[:cut] + TruncationMarker
		truncated = true
	}
	return "```" + raw + "```", truncated
}

package common

import (
	"time"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "p"
	SentimentNegative Sentiment = "n"
	SentimentUnknown  Sentiment = "u"
)

// JobPayload is what a dispatcher job carries: just enough to find the
// schedule entry again when the job fires. Immutable once submitted.
type JobPayload struct {
	OwnerID uint64 `json:"owner_id"`
	EntryID uint64 `json:"entry_id"`
}

// RemotePost is one item of an owner's remote timeline as returned by the
// platform client.
type RemotePost struct {
	RemoteID  string
	Text      string
	CreatedAt time.Time
}

package models

// ArticleEvent is published to Kafka whenever an article changes.
type ArticleEvent struct {
	EventID   string `json:"event_id"`   // Unique event id, used as message key
	ArticleID string `json:"article_id"` // Affected article
	Action    string `json:"action"`     // "created", "updated" or "deleted"
	Timestamp int64  `json:"timestamp"`  // Unix timestamp of the change
}

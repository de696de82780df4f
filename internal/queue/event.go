// Package queue defines message payloads exchanged over the message broker.
package queue

// MovieChangedQueue is the durable queue carrying catalog change notifications.
const MovieChangedQueue = "movie.changed"

// Actions carried by MovieChangedEvent.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// MovieChangedEvent is published after a movie is created, updated or deleted.
// It carries enough of the record for consumers to log or notify without
// querying the catalog.
type MovieChangedEvent struct {
	Action     string  `json:"action"`
	ID         string  `json:"id"`
	MovieID    int     `json:"movie_id"`
	Title      string  `json:"title"`
	Released   string  `json:"released,omitempty"`
	Genre      string  `json:"genre,omitempty"`
	Rating     float64 `json:"rating"`
	OccurredAt string  `json:"occurred_at"`
}

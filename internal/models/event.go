package models

// Event types published after a successful mutation.
const (
	EventUserSignedUp       = "user.signed_up"
	EventUserPasswordChange = "user.password_changed"
	EventMovieCreated       = "movie.created"
	EventMovieUpdated       = "movie.updated"
	EventMovieDeleted       = "movie.deleted"
	EventReviewCreated      = "review.created"
	EventReviewUpdated      = "review.updated"
	EventReviewDeleted      = "review.deleted"
)

// Event describes a committed change to a user, movie or review.
type Event struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Type      string `json:"type"`      // Type is one of the Event* constants.
	EntityID  int64  `json:"entity_id"` // EntityID is the identifier of the changed row.
	UserID    int64  `json:"user_id"`   // UserID is the identifier of the user who made the change.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) of the change.
}

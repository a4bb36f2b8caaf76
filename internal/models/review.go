package models

// ReviewDB represents a review row in the database
type ReviewDB struct {
	ID      int64  `json:"id" db:"id"`            // Primary key
	MovieID int64  `json:"movieId" db:"movie_id"` // Reviewed movie
	UserID  int64  `json:"userId" db:"user_id"`   // Identifier of the user who wrote the review
	Rating  int    `json:"rating" db:"rating"`    // Numeric rating
	Comment string `json:"comment" db:"comment"`  // Review text
}

// ReviewInput holds the client supplied review fields for create and update.
type ReviewInput struct {
	Rating  int
	Comment string
}

// Complete reports whether every mandatory review field is set.
func (in ReviewInput) Complete() bool {
	return in.Rating > 0 && in.Comment != ""
}

package models

// MovieDB represents a movie row in the database
type MovieDB struct {
	ID           int64  `json:"id" db:"id"`                      // Primary key
	MovieName    string `json:"movieName" db:"movie_name"`       // Title
	Description  string `json:"description" db:"description"`    // Free text description
	DirectorName string `json:"directorName" db:"director_name"` // Director
	ReleaseDate  string `json:"releaseDate" db:"release_date"`   // Release date, format is not validated
	OwnerID      int64  `json:"ownerId" db:"user_id"`            // Identifier of the user who created the movie
}

// MovieInput holds the client supplied movie fields for create and update.
type MovieInput struct {
	MovieName    string
	Description  string
	DirectorName string
	ReleaseDate  string
}

// Complete reports whether every mandatory movie field is set.
func (in MovieInput) Complete() bool {
	return in.MovieName != "" && in.Description != "" && in.DirectorName != "" && in.ReleaseDate != ""
}

// SortDirection is the ordering direction of a movie listing.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// MovieListParams describes a filtered, sorted and paginated movie listing.
type MovieListParams struct {
	Filter    string        // case-insensitive substring of movie_name or director_name, empty means no filter
	SortField string        // column name, empty means storage default ordering
	SortDir   SortDirection // used only with SortField
	Limit     int
	Offset    int
}

package entity

const (
	BookStatusPending = "Pending"
	BookStatusRead    = "Read"
)

// Book is a tracked book as it exists in the database.
type Book struct {
	ID              int64   `json:"id"`
	ISBN            *string `json:"isbn"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	PublicationYear *int    `json:"publication_year"`
	Status          string  `json:"status"`
}

// SearchResult is one normalized external catalog hit. It is never persisted;
// the client picks a result and saves it through the regular create path.
type SearchResult struct {
	ISBN            string `json:"isbn"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear *int   `json:"publication_year"`
}

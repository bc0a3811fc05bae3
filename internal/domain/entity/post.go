package entity

// Post is a piece of content written by an Author.
type Post struct {
	ID    int64
	Title string
	// AuthorID references an Author. The reference is not enforced, so it may
	// point at an author that no longer exists.
	AuthorID int64
}

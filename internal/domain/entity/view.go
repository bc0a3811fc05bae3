package entity

// AuthorView is the public projection of an Author. It never carries the
// password or the admin flag.
type AuthorView struct {
	AuthorID int64  `json:"author_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// PostView is the public projection of a Post.
type PostView struct {
	PostID   int64  `json:"post_id"`
	Title    string `json:"title"`
	AuthorID int64  `json:"author_id"`
}

// View returns the public fields of the author.
func (a *Author) View() AuthorView {
	return AuthorView{
		AuthorID: a.ID,
		Name:     a.Name,
		Email:    a.Email,
	}
}

// View returns the public fields of the post.
func (p *Post) View() PostView {
	return PostView{
		PostID:   p.ID,
		Title:    p.Title,
		AuthorID: p.AuthorID,
	}
}

// AuthorViews projects a list of authors.
func AuthorViews(authors []*Author) []AuthorView {
	views := make([]AuthorView, 0, len(authors))
	for _, a := range authors {
		views = append(views, a.View())
	}

	return views
}

// PostViews projects a list of posts.
func PostViews(posts []*Post) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, p.View())
	}

	return views
}

package model

// PostModel is the GORM-specific struct for the 'posts' table.
// AuthorID carries no foreign key constraint.
type PostModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Title    string `gorm:"type:varchar(255);not null"`
	AuthorID int64  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

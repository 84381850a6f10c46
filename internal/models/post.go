package models

// Post represents a blog post written by an author
type Post struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"size:200;not null"`
	Content  string `gorm:"type:text;not null"`
	AuthorID uint   `gorm:"not null;index"`
	Author   *Author
}

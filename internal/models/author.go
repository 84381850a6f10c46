package models

// Author represents a blog author
type Author struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:100;not null"`
	Email string `gorm:"size:100;not null;uniqueIndex"`
	Posts []Post `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

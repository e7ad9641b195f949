package model

// CommentDateLayout is the human readable format used for the date column.
const CommentDateLayout = "January 02, 2006"

type Comment struct {
	CommentID int    `gorm:"column:id_comment;primaryKey;autoIncrement" json:"comment_id"`
	AuthorID  int    `gorm:"column:id_author;type:integer;not null;uniqueIndex:idx_comment_author_cafe" json:"author_id"`
	CafeID    int    `gorm:"column:id_cafe;type:integer;not null;uniqueIndex:idx_comment_author_cafe" json:"cafe_id"`
	Score     int    `gorm:"column:score;type:integer;not null" json:"score"`
	Body      string `gorm:"column:body;type:text" json:"body"`
	Date      string `gorm:"column:date;type:text;not null" json:"date"`

	// author display name, injected when reading, not present in db
	AuthorName string `gorm:"-" json:"author_name"`
}

func (Comment) TableName() string {
	return "comment"
}

package model

import "time"

type Session struct {
	Token     string    `gorm:"column:token;primaryKey" json:"-"`
	UserID    int       `gorm:"column:id_user;type:integer;not null" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Session) TableName() string {
	return "sessions"
}

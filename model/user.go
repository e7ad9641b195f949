package model

type User struct {
	UserID       int    `gorm:"column:id_user;primaryKey;autoIncrement" json:"user_id"`
	Name         string `gorm:"column:name;type:text;not null" json:"name"`
	Email        string `gorm:"column:email;type:text;not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:password_hash;type:text;not null" json:"-"`
	IsAdmin      bool   `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
}

// "users" because "user" is a reserved word in PostgreSQL
func (User) TableName() string {
	return "users"
}

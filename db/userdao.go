package db

import (
	"errors"

	"coffee-wifi-server/model"
	"gorm.io/gorm"
)

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

func (userDAO *UserDAO) GetUserById(id int) (model.User, error) {
	var user model.User
	result := userDAO.db.First(&user, id)
	return user, result.Error
}

// GetUserByEmail matches the email exactly, lookups are case-sensitive.
func (userDAO *UserDAO) GetUserByEmail(email string) (model.User, error) {
	var user model.User
	result := userDAO.db.Where("email = ?", email).First(&user)
	return user, result.Error
}

// CreateUser takes a pointer, in order to update the param struct.
// The raw password never reaches this layer, only its hash.
func (userDAO *UserDAO) CreateUser(user *model.User) error {
	// check the email is not registered yet
	var existing model.User
	result := userDAO.db.Where("email = ?", user.Email).First(&existing)
	if result.Error == nil {
		return ErrDuplicateEmail
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	result = userDAO.db.Create(user)
	return result.Error
}

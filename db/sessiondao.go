package db

import (
	"coffee-wifi-server/model"
	"gorm.io/gorm"
)

type SessionDAO struct {
	db *gorm.DB
}

func NewSessionDAO(db *gorm.DB) *SessionDAO {
	return &SessionDAO{db: db}
}

func (sessionDAO *SessionDAO) CreateSession(session *model.Session) error {
	result := sessionDAO.db.Create(session)
	return result.Error
}

func (sessionDAO *SessionDAO) GetSession(token string) (model.Session, error) {
	var session model.Session
	result := sessionDAO.db.Where("token = ?", token).First(&session)
	return session, result.Error
}

func (sessionDAO *SessionDAO) DeleteSession(token string) error {
	result := sessionDAO.db.Where("token = ?", token).Delete(&model.Session{})
	return result.Error
}

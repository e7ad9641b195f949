package db

import (
	"errors"

	"coffee-wifi-server/internals"
	"coffee-wifi-server/model"
	"gorm.io/gorm"
)

type CommentDAO struct {
	db *gorm.DB
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{db: db}
}

func (commentDAO *CommentDAO) GetCommentsByCafe(cafeID int) ([]model.Comment, error) {
	var comments []model.Comment

	result := commentDAO.db.Where("id_cafe = ?", cafeID).Order("id_comment").Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}

	// inject data
	for i := range comments {
		err := commentDAO.injectCommentData(&comments[i])
		if err != nil {
			return nil, err
		}
	}

	return comments, nil
}

func (commentDAO *CommentDAO) injectCommentData(comment *model.Comment) error {
	if comment == nil {
		return errors.New("comment is nil")
	}

	// get author
	userDAO := NewUserDAO(commentDAO.db)
	user, err := userDAO.GetUserById(comment.AuthorID)
	if err != nil {
		return err
	}

	// inject data
	comment.AuthorName = user.Name

	return nil
}

// CreateComment saves a comment and overwrites the aggregate values of its
// cafe in a single transaction: a comment without the matching aggregate
// update (or the other way around) must never be observable.
func (commentDAO *CommentDAO) CreateComment(comment *model.Comment) error {
	// takes a pointer, in order to update the param struct

	// create transaction
	transaction := commentDAO.db.Begin()
	if transaction.Error != nil {
		return transaction.Error
	}
	// rollback handled manually because I don't always want to rollback

	// get the cafe
	var cafe model.Cafe
	result := transaction.First(&cafe, comment.CafeID)
	if result.Error != nil {
		transaction.Rollback()
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrCafeNotFound
		}
		return result.Error
	}

	// get the existing comments of the cafe
	var existing []model.Comment
	result = transaction.Where("id_cafe = ?", comment.CafeID).Find(&existing)
	if result.Error != nil {
		transaction.Rollback()
		return result.Error
	}

	// one comment per user and cafe, the unique index on
	// (id_author, id_cafe) backs this check against races
	if !internals.CanComment(comment.AuthorID, existing) {
		transaction.Rollback()
		return ErrAlreadyCommented
	}

	// save comment
	result = transaction.Create(comment)
	if result.Error != nil {
		transaction.Rollback()
		return result.Error
	}

	// recompute the aggregate values of the cafe
	qualification, totalOpinions, stars := internals.RecomputeRating(existing, comment.Score)
	result = transaction.Model(&model.Cafe{}).Where("id_cafe = ?", comment.CafeID).Updates(map[string]interface{}{
		"qualification": qualification,
		"t_opinions":    totalOpinions,
		"stars":         stars,
	})
	if result.Error != nil {
		transaction.Rollback()
		return result.Error
	}

	// commit
	result = transaction.Commit()
	if result.Error != nil {
		return result.Error
	}

	return nil
}

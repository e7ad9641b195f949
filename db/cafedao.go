package db

import (
	"errors"

	"coffee-wifi-server/internals"
	"coffee-wifi-server/model"
	"gorm.io/gorm"
)

type CafeDAO struct {
	db *gorm.DB
}

func NewCafeDAO(db *gorm.DB) *CafeDAO {
	return &CafeDAO{db: db}
}

func (cafeDAO *CafeDAO) GetCafes() ([]model.Cafe, error) {
	var cafes []model.Cafe
	result := cafeDAO.db.Order("id_cafe").Find(&cafes)
	return cafes, result.Error
}

func (cafeDAO *CafeDAO) GetCafeById(cafeID int) (model.Cafe, error) {
	var cafe model.Cafe
	result := cafeDAO.db.First(&cafe, cafeID)
	return cafe, result.Error
}

// CreateCafe takes a pointer, in order to update the param struct.
// A new cafe always starts without opinions.
func (cafeDAO *CafeDAO) CreateCafe(cafe *model.Cafe) error {
	// check the name is not registered yet
	var existing model.Cafe
	result := cafeDAO.db.Where("name = ?", cafe.Name).First(&existing)
	if result.Error == nil {
		return ErrDuplicateCafeName
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	cafe.Qualification = 0.0
	cafe.TotalOpinions = 0
	cafe.Stars = internals.RenderStars(0)

	result = cafeDAO.db.Create(cafe)
	return result.Error
}

// UpdateCafeById updates the static attributes of a cafe. The caller builds
// the field map, the aggregate columns are never part of it.
func (cafeDAO *CafeDAO) UpdateCafeById(cafeID int, fields map[string]interface{}) (model.Cafe, error) {
	result := cafeDAO.db.Model(&model.Cafe{}).Where("id_cafe = ?", cafeID).Updates(fields)

	if result.Error != nil {
		return model.Cafe{}, result.Error
	}
	if result.RowsAffected == 0 {
		return model.Cafe{}, ErrCafeNotFound
	}

	var cafe model.Cafe
	err := cafeDAO.db.First(&cafe, cafeID).Error
	if err != nil {
		return model.Cafe{}, err
	}

	return cafe, nil
}

// DeleteCafe removes a cafe and all the comments referencing it, in a single
// transaction: the storage layer has no cascade, so the comments go first.
func (cafeDAO *CafeDAO) DeleteCafe(cafeID int) error {
	// create transaction
	transaction := cafeDAO.db.Begin()
	if transaction.Error != nil {
		return transaction.Error
	}
	// rollback handled manually because I don't always want to rollback

	// delete the comments of the cafe
	result := transaction.Where("id_cafe = ?", cafeID).Delete(&model.Comment{})
	if result.Error != nil {
		transaction.Rollback()
		return result.Error
	}

	// delete the cafe
	result = transaction.Delete(&model.Cafe{}, cafeID)
	if result.Error != nil {
		transaction.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		transaction.Rollback()
		return ErrCafeNotFound
	}

	// commit
	result = transaction.Commit()
	if result.Error != nil {
		return result.Error
	}

	return nil
}

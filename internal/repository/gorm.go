package repository

import (
	"errors"

	"commentboard/internal/models"

	"gorm.io/gorm"
)

type GormRepo struct {
	db *gorm.DB
}

func NewGormRepo(db *gorm.DB) CommentRepository {
	return &GormRepo{db: db}
}

func (r *GormRepo) Create(c *models.Comment) error {
	return r.db.Create(c).Error
}

func (r *GormRepo) Get(id uint) (*models.Comment, error) {
	var c models.Comment
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *GormRepo) List(limit, offset int) ([]models.Comment, int64, error) {
	var total int64
	if err := r.db.Model(&models.Comment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	comments := make([]models.Comment, 0, limit)
	err := r.db.Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *GormRepo) Replies(parentID uint) ([]models.Comment, error) {
	comments := make([]models.Comment, 0)
	err := r.db.Where("parent_id = ?", parentID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *GormRepo) Update(id uint, fields map[string]interface{}) (*models.Comment, error) {
	res := r.db.Model(&models.Comment{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrCommentNotFound
	}
	return r.Get(id)
}

func (r *GormRepo) SetColumn(id uint, column string, value interface{}) (*models.Comment, error) {
	res := r.db.Model(&models.Comment{}).Where("id = ?", id).UpdateColumn(column, value)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrCommentNotFound
	}
	return r.Get(id)
}

func (r *GormRepo) Delete(id uint) error {
	res := r.db.Delete(&models.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (r *GormRepo) Reseed(comments []models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("TRUNCATE TABLE comments RESTART IDENTITY").Error; err != nil {
			return err
		}
		for i := range comments {
			if err := tx.Create(&comments[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

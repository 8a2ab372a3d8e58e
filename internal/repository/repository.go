// Package repository provides store access for comments.
package repository

import (
	"errors"

	"commentboard/internal/models"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentRepository interface {
	Create(c *models.Comment) error
	Get(id uint) (*models.Comment, error)
	List(limit, offset int) ([]models.Comment, int64, error)
	Replies(parentID uint) ([]models.Comment, error)
	// Update applies the given fields and refreshes updated_at.
	Update(id uint, fields map[string]interface{}) (*models.Comment, error)
	// SetColumn writes a single column without touching updated_at.
	SetColumn(id uint, column string, value interface{}) (*models.Comment, error)
	Delete(id uint) error
	// Reseed truncates the table, resets the id sequence and inserts the
	// given comments in one all-or-nothing transaction.
	Reseed(comments []models.Comment) error
}

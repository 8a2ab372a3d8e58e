// Package services holds the board's business logic between handlers and the
// repository.
package services

import (
	"errors"
	"math"
	"strings"

	"commentboard/internal/models"
	"commentboard/internal/repository"

	"github.com/lib/pq"
)

const (
	DefaultAuthor = "Admin"
	DefaultLimit  = 10
	MaxLimit      = 50
)

var ErrNotFound = errors.New("comment not found")

// ValidationError carries the reason a mutating request was rejected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

type CommentService interface {
	List(page, limit int) (*models.CommentPage, error)
	Replies(parentID uint) ([]models.Comment, error)
	Create(req models.CreateCommentRequest) (*models.Comment, error)
	ToggleLike(id uint) (*models.Comment, error)
	Edit(id uint, text string) (*models.Comment, error)
	Delete(id uint) (*models.Comment, error)
	TogglePin(id uint) (*models.Comment, error)
	UpdateStatus(id uint, status string) (*models.Comment, error)
}

type CService struct {
	repo repository.CommentRepository
}

func NewCommentService(repo repository.CommentRepository) CommentService {
	return &CService{repo: repo}
}

func (s *CService) List(page, limit int) (*models.CommentPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	comments, total, err := s.repo.List(limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	if totalPages == 0 {
		totalPages = 1
	}

	return &models.CommentPage{
		Data: comments,
		Pagination: models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *CService) Replies(parentID uint) ([]models.Comment, error) {
	return s.repo.Replies(parentID)
}

func (s *CService) Create(req models.CreateCommentRequest) (*models.Comment, error) {
	if err := validateCreate(req.Text, req.Images); err != nil {
		return nil, err
	}

	author := strings.TrimSpace(req.Author)
	if author == "" {
		author = DefaultAuthor
	}
	likes := req.Likes
	if likes < 0 {
		likes = 0
	}
	images := req.Images
	if images == nil {
		images = []string{}
	}

	comment := models.Comment{
		Text:     req.Text,
		Author:   author,
		Likes:    likes,
		Images:   pq.StringArray(images),
		ParentID: req.ParentID.Uint(),
	}
	if err := s.repo.Create(&comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// ToggleLike flips likes between 0 and 1. Anything above zero counts as liked,
// so repeated toggles alternate strictly and never accumulate.
func (s *CService) ToggleLike(id uint) (*models.Comment, error) {
	comment, err := s.repo.Get(id)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	newLikes := 0
	if comment.Likes == 0 {
		newLikes = 1
	}

	updated, err := s.repo.Update(id, map[string]interface{}{"likes": newLikes})
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return updated, nil
}

func (s *CService) Edit(id uint, text string) (*models.Comment, error) {
	if err := validateEdit(text); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(id, map[string]interface{}{"text": text})
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return updated, nil
}

// Delete removes the row permanently and returns its final snapshot. Replies
// of a deleted parent are kept with their original parent_id.
func (s *CService) Delete(id uint) (*models.Comment, error) {
	comment, err := s.repo.Get(id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if err := s.repo.Delete(id); err != nil {
		return nil, mapRepoErr(err)
	}
	return comment, nil
}

func (s *CService) TogglePin(id uint) (*models.Comment, error) {
	comment, err := s.repo.Get(id)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	// Pinning is independent of content mutations and leaves updated_at alone.
	updated, err := s.repo.SetColumn(id, "pinned", !comment.Pinned)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return updated, nil
}

func (s *CService) UpdateStatus(id uint, status string) (*models.Comment, error) {
	if _, err := s.repo.Get(id); err != nil {
		return nil, mapRepoErr(err)
	}

	updated, err := s.repo.SetColumn(id, "status", status)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return updated, nil
}

func mapRepoErr(err error) error {
	if errors.Is(err, repository.ErrCommentNotFound) {
		return ErrNotFound
	}
	return err
}

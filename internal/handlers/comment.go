package handlers

import (
	"net/http"

	"commentboard/internal/models"
	"commentboard/internal/services"
	"commentboard/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc services.CommentService
}

func NewCommentHandler(svc services.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// List serves GET /comments. With ?parent_id it returns the direct replies of
// that comment as a plain array; otherwise a paginated page of all comments,
// newest first.
func (h *CommentHandler) List(c *gin.Context) {
	if pid := c.Query("parent_id"); pid != "" {
		replies, err := h.svc.Replies(utils.StringToUint(pid))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, replies)
		return
	}

	page := utils.StringToInt(c.Query("page"))
	limit := utils.StringToInt(c.Query("limit"))
	result, err := h.svc.List(page, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CommentHandler) Create(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.svc.Create(req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Added new comment", "data": comment})
}

func (h *CommentHandler) ToggleLike(c *gin.Context) {
	comment, err := h.svc.ToggleLike(utils.StringToUint(c.Param("id")))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) Edit(c *gin.Context) {
	var req models.EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.svc.Edit(utils.StringToUint(c.Param("id")), req.Text)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Updated", "data": comment})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	comment, err := h.svc.Delete(utils.StringToUint(c.Param("id")))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted", "data": comment})
}

func (h *CommentHandler) TogglePin(c *gin.Context) {
	comment, err := h.svc.TogglePin(utils.StringToUint(c.Param("id")))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) UpdateStatus(c *gin.Context) {
	var req models.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.svc.UpdateStatus(utils.StringToUint(c.Param("id")), req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

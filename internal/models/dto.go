package models

// CreateCommentRequest is the POST /comments body. All fields are optional on
// the wire; defaults are applied by the service.
type CreateCommentRequest struct {
	Text     string   `json:"text"`
	Author   string   `json:"author"`
	Images   []string `json:"images"`
	Likes    int      `json:"likes"`
	ParentID *FlexID  `json:"parent_id"`
}

// EditCommentRequest is the PUT /comments/:id body.
type EditCommentRequest struct {
	Text string `json:"text"`
}

// StatusRequest is the PATCH /comments/:id/status body.
type StatusRequest struct {
	Status string `json:"status"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// CommentPage is the paginated listing envelope.
type CommentPage struct {
	Data       []Comment  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

package client

import (
	"time"

	"commentboard/internal/models"
)

// Comment mirrors the server's comment shape. IDs use FlexID so listings that
// come back with stringified ids still compare correctly against numeric ones.
type Comment struct {
	ID        models.FlexID  `json:"id"`
	ParentID  *models.FlexID `json:"parent_id"`
	Text      string         `json:"text"`
	Author    string         `json:"author"`
	Images    []string       `json:"images"`
	Likes     int            `json:"likes"`
	Pinned    bool           `json:"pinned"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Thread is a top-level comment with its direct replies attached.
type Thread struct {
	Comment
	Replies []Comment `json:"replies"`
}

// BuildThreads derives the two-level tree from a flat listing. Input order is
// preserved for both top-level comments and replies. Replies whose parent is
// absent from the slice are dropped; they belong to a deleted or unpaged
// parent.
func BuildThreads(flat []Comment) []Thread {
	threads := make([]Thread, 0, len(flat))
	index := make(map[models.FlexID]int, len(flat))

	for _, c := range flat {
		if c.ParentID == nil {
			index[c.ID] = len(threads)
			threads = append(threads, Thread{Comment: c})
		}
	}
	for _, c := range flat {
		if c.ParentID == nil {
			continue
		}
		if i, ok := index[*c.ParentID]; ok {
			threads[i].Replies = append(threads[i].Replies, c)
		}
	}
	return threads
}

// PatchLikes returns a copy of threads with one comment's likes count
// replaced, whether it sits at the top level or inside a parent's replies.
// Siblings and unrelated threads keep their values; an unknown id returns the
// tree unchanged. The input is never mutated.
func PatchLikes(threads []Thread, id models.FlexID, likes int) []Thread {
	out := make([]Thread, len(threads))
	copy(out, threads)

	for i := range out {
		if out[i].ID == id {
			out[i].Likes = likes
			return out
		}
		for j := range out[i].Replies {
			if out[i].Replies[j].ID != id {
				continue
			}
			replies := make([]Comment, len(out[i].Replies))
			copy(replies, out[i].Replies)
			replies[j].Likes = likes
			out[i].Replies = replies
			return out
		}
	}
	return out
}

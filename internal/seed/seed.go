// Package seed loads a comments.json document and normalizes its entries for
// a one-shot reseed of the store.
package seed

import (
	"encoding/json"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"commentboard/internal/models"

	"github.com/lib/pq"
)

// Entry is one raw item of the external document. Field types are loose on
// purpose; normalization happens in MapEntries.
type Entry struct {
	Text   string      `json:"text"`
	Author string      `json:"author"`
	Likes  interface{} `json:"likes"`
	Image  string      `json:"image"`
	Date   string      `json:"date"`
}

type Document struct {
	Comments []Entry `json:"comments"`
}

// Load reads and normalizes the document at path.
func Load(path string, now time.Time) ([]models.Comment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return MapEntries(doc.Comments, now), nil
}

// MapEntries applies the import rules: trim text and author, skip entries with
// no text, coerce likes to a finite non-negative int, derive created_at from
// the optional date field and wrap a single image string into a one-element
// array.
func MapEntries(entries []Entry, now time.Time) []models.Comment {
	comments := make([]models.Comment, 0, len(entries))
	for _, e := range entries {
		text := strings.TrimSpace(e.Text)
		if text == "" {
			continue
		}

		author := strings.TrimSpace(e.Author)
		if author == "" {
			author = "Admin"
		}

		images := pq.StringArray{}
		if img := strings.TrimSpace(e.Image); img != "" {
			images = pq.StringArray{img}
		}

		comments = append(comments, models.Comment{
			Text:      text,
			Author:    author,
			Likes:     coerceLikes(e.Likes),
			Images:    images,
			CreatedAt: parseDate(e.Date, now),
		})
	}
	return comments
}

func coerceLikes(v interface{}) int {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return int(f)
}

func parseDate(s string, now time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return now
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return now
}

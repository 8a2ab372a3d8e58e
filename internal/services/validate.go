package services

import "strings"

// validateCreate rejects comments that carry neither text nor an image. The
// text check trims whitespace, but the stored text stays as submitted.
func validateCreate(text string, images []string) error {
	if strings.TrimSpace(text) == "" && len(images) == 0 {
		return &ValidationError{Reason: "Text or image is required"}
	}
	return nil
}

func validateEdit(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Reason: "Please provide text"}
	}
	return nil
}

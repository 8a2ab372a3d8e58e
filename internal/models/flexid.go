package models

import (
	"fmt"
	"strconv"
	"strings"
)

// FlexID is a comment identifier that tolerates both numeric and string JSON
// encodings. Clients of the board API sometimes round-trip ids through form
// fields or URL params and send them back stringified.
type FlexID uint

func (f FlexID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(f), 10)), nil
}

func (f *FlexID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid comment id %q", s)
	}
	*f = FlexID(v)
	return nil
}

// Uint unwraps an optional FlexID into the pointer form the store uses.
func (f *FlexID) Uint() *uint {
	if f == nil {
		return nil
	}
	v := uint(*f)
	return &v
}

package models

import "strconv"

// ID is a numeric path identifier together with the text the client sent,
// so messages can echo "007" rather than "7"
type ID struct {
	Value int64
	Raw   string
}

// NewID builds an ID from a number
func NewID(n int64) ID {
	return ID{Value: n, Raw: strconv.FormatInt(n, 10)}
}

// String returns the identifier as the client wrote it
func (id ID) String() string {
	if id.Raw != "" {
		return id.Raw
	}
	return strconv.FormatInt(id.Value, 10)
}

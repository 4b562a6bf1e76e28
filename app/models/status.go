package models

import "fmt"

// Status is the availability flag shared by every catalog and storage record.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusUnavailable Status = "Unavailable"
)

func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusUnavailable
}

func (s Status) IsActive() bool {
	return s == StatusAvailable
}

// ParseStatus accepts an empty string as Available so forms can omit the field.
func ParseStatus(v string) (Status, error) {
	if v == "" {
		return StatusAvailable, nil
	}
	s := Status(v)
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q", v)
	}
	return s, nil
}

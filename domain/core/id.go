package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	EnsembleID  ID
	SampleSetID ID
)

func (id EnsembleID) String() string  { return ID(id).String() }
func (id SampleSetID) String() string { return ID(id).String() }

// ParseEnsembleID parses a string into EnsembleID
func ParseEnsembleID(s string) (EnsembleID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("ensemble ID cannot be empty")
	}
	return EnsembleID(s), nil
}

// ParseSampleSetID parses a string into SampleSetID
func ParseSampleSetID(s string) (SampleSetID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("sample set ID cannot be empty")
	}
	return SampleSetID(s), nil
}

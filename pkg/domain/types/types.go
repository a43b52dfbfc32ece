package types

import "github.com/google/uuid"

// RunID identifies a single provisioning run across log sinks
type RunID string

// NewRunID creates a new RunID
func NewRunID() RunID {
	return RunID(uuid.New().String())
}

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

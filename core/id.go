package core

import "github.com/google/uuid"

// NewID generates a unique identifier for model runs.
func NewID() string { return uuid.NewString() }

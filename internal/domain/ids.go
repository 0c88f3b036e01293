package domain

// TripID identifies a saved trip. The store treats it as opaque.
type TripID string

// GenerationID identifies a generated (not yet saved) trip held for the session.
type GenerationID string

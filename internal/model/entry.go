// Package model defines the core journal data types.
package model

import "time"

// ReflectionRequest carries the four morning inputs. All fields are free
// text and may be empty.
type ReflectionRequest struct {
	Journal    string `json:"journal"`
	Intention  string `json:"intention"`
	Dream      string `json:"dream"`
	Priorities string `json:"priorities"`
}

// Reflection is the normalized model output. All four fields are always
// present on a successful generation; individual fields fall back to "" when
// the model omitted or mistyped them.
type Reflection struct {
	Reflection   string `json:"reflection"`
	DreamSummary string `json:"dream_summary"`
	Mindset      string `json:"mindset"`
	Strategy     string `json:"strategy"`
}

// Entry is one persisted journal record: the user's inputs plus the
// generated reflection for a given date. Entries are append-only; a date may
// have any number of entries.
type Entry struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"` // ISO-8601 (2006-01-02), not unique
	Journal      string    `json:"journal"`
	Intention    string    `json:"intention"`
	Dream        string    `json:"dream"`
	Priorities   string    `json:"priorities"`
	Reflection   string    `json:"reflection"`
	Strategy     string    `json:"strategy"`
	DreamSummary string    `json:"dream_summary"`
	Mindset      string    `json:"mindset"`
	CreatedAt    time.Time `json:"created_at"`
}

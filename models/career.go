// File: models/career.go
package models

// Role is one job opening on the careers page.
type Role struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Department   string   `json:"department"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	PostedAt     string   `json:"postedAt,omitempty"`
	Description  string   `json:"description,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
}

// RoleFilter narrows the openings list; empty fields match everything.
type RoleFilter struct {
	Location   string
	Department string
	Type       string
	Query      string
}

// RoleFilterOptions are the distinct values available for each filter.
type RoleFilterOptions struct {
	Locations   []string `json:"locations"`
	Departments []string `json:"departments"`
	Types       []string `json:"types"`
}

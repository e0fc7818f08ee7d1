package repository

import "time"

// Content represents a post or page row.
type Content struct {
	ID        int64
	GUID      string
	Title     string
	Type      string // post | page
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Template represents a template or template part row. ID follows the
// theme//slug convention used by block themes.
type Template struct {
	ID        string
	GUID      string
	Slug      string
	Title     string
	Type      string // wp_template | wp_template_part
	Theme     string
	UpdatedAt time.Time
}

// Theme represents an installed theme row.
type Theme struct {
	Slug         string
	Name         string
	IsBlockBased bool
	Active       bool
}

// Capability represents one action/resource grant for the acting user.
type Capability struct {
	Action   string
	Resource string
	Allowed  bool
}

package models

import "time"

// Document is a collaborative document living in a space (folder).
type Document struct {
	ID       string    `json:"id"`
	OrgID    string    `json:"orgId,omitempty"`
	FolderID string    `json:"folderId"`
	UserID   string    `json:"userId,omitempty"`
	Title    string    `json:"name"`
	Excerpt  string    `json:"excerpt"`
	Slug     string    `json:"slug,omitempty"`
	Tags     string    `json:"tags,omitempty"`
	Template bool      `json:"template,omitempty"`
	Created  time.Time `json:"created"`
	Revised  time.Time `json:"revised"`
}

func (d *Document) EntityID() string { return d.ID }

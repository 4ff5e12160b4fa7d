package models

import "time"

// Attachment is a file attached to a document, listed without its content.
type Attachment struct {
	ID         string    `json:"id"`
	OrgID      string    `json:"orgId,omitempty"`
	DocumentID string    `json:"documentId"`
	Job        string    `json:"job,omitempty"`
	FileID     string    `json:"fileId,omitempty"`
	Filename   string    `json:"filename"`
	Extension  string    `json:"extension,omitempty"`
	Created    time.Time `json:"created"`
}

func (a *Attachment) EntityID() string { return a.ID }

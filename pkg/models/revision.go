package models

import "time"

// PageRevision is a historical version of a page. Revisions are listed on
// demand and never cached.
type PageRevision struct {
	ID         string    `json:"id"`
	OrgID      string    `json:"orgId,omitempty"`
	DocumentID string    `json:"documentId"`
	PageID     string    `json:"pageId"`
	UserID     string    `json:"userId,omitempty"`
	Email      string    `json:"email,omitempty"`
	Firstname  string    `json:"firstname,omitempty"`
	Lastname   string    `json:"lastname,omitempty"`
	Title      string    `json:"title,omitempty"`
	Revisions  int       `json:"revisions,omitempty"`
	Deleted    bool      `json:"deleted,omitempty"`
	Created    time.Time `json:"created"`
}

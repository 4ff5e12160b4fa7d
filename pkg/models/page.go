package models

import "time"

// Page is a section of a document. Table-of-contents responses omit Body.
type Page struct {
	ID             string      `json:"id"`
	OrgID          string      `json:"orgId,omitempty"`
	DocumentID     string      `json:"documentId"`
	UserID         string      `json:"userId"`
	ContentType    string      `json:"contentType,omitempty"`
	PageType       string      `json:"pageType,omitempty"`
	Title          string      `json:"title"`
	Body           string      `json:"body,omitempty"`
	Sequence       float64     `json:"sequence"`
	Level          int         `json:"level"`
	Revisions      int         `json:"revisions,omitempty"`
	Status         ChangeState `json:"status"`
	RelationshipID string      `json:"relativeId,omitempty"`
	Created        time.Time   `json:"created"`
	Revised        time.Time   `json:"revised"`
}

func (p *Page) EntityID() string { return p.ID }

// IsNewPageUserPending reports whether the page is a new page proposed by
// userID that has not been approved yet.
func (p *Page) IsNewPageUserPending(userID string) bool {
	return p.Status == ChangeStatePendingNew && p.UserID != "" && p.UserID == userID
}

// PageMeta carries auxiliary page data. Its identity is the page id.
type PageMeta struct {
	ID             string    `json:"id"`
	PageID         string    `json:"pageId"`
	DocumentID     string    `json:"documentId"`
	UserID         string    `json:"userId,omitempty"`
	RawBody        string    `json:"rawBody,omitempty"`
	Config         string    `json:"config,omitempty"`
	ExternalSource bool      `json:"externalSource"`
	Created        time.Time `json:"created"`
	Revised        time.Time `json:"revised"`
}

func (m *PageMeta) EntityID() string { return m.ID }

// PagePending is one proposed but unapproved change to a page.
type PagePending struct {
	ID    string    `json:"id"`
	Page  *Page     `json:"page"`
	Meta  *PageMeta `json:"meta"`
	Owner string    `json:"owner"`
	ReviewFlags
}

func (p *PagePending) EntityID() string { return p.ID }

// PageContainer groups a page with its metadata, its pending changes in
// server order and the page-level review flags.
type PageContainer struct {
	ID      string         `json:"id"`
	Page    *Page          `json:"page"`
	Meta    *PageMeta      `json:"meta"`
	Pending []*PagePending `json:"pending"`
	ReviewFlags
	UserHasNewPagePending bool `json:"userHasNewPagePending"`
}

func (c *PageContainer) EntityID() string { return c.ID }

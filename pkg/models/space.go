package models

// Folder is a space holding documents.
type Folder struct {
	ID         string         `json:"id"`
	OrgID      string         `json:"orgId,omitempty"`
	Name       string         `json:"name"`
	UserID     string         `json:"userId,omitempty"`
	Type       int            `json:"folderType,omitempty"`
	Attributes map[string]any `json:"attributes,remain"`
}

func (f *Folder) EntityID() string { return f.ID }

// SpacePermission is the current user's permission set on a space. Fields
// other than the identity are passed through untouched.
type SpacePermission struct {
	ID         string         `json:"id"`
	Attributes map[string]any `json:"attributes,remain"`
}

func (p *SpacePermission) EntityID() string { return p.ID }

// DocumentPermission is the current user's role set on a document.
type DocumentPermission struct {
	ID         string         `json:"id"`
	Attributes map[string]any `json:"attributes,remain"`
}

func (p *DocumentPermission) EntityID() string { return p.ID }

// Link is a cross reference from a document to another document, page or
// attachment.
type Link struct {
	ID               string `json:"id"`
	FolderID         string `json:"folderId,omitempty"`
	DocumentID       string `json:"documentId,omitempty"`
	TargetDocumentID string `json:"targetDocumentId,omitempty"`
	TargetID         string `json:"targetId,omitempty"`
	LinkType         string `json:"linkType,omitempty"`
	Title            string `json:"title,omitempty"`
	Orphan           bool   `json:"orphan,omitempty"`
}

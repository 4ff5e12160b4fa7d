package store

import "github.com/hashicorp-forge/docview/pkg/models"

// Type names an entity kind.
type Type string

const (
	TypeDocument           Type = "document"
	TypePage               Type = "page"
	TypePageMeta           Type = "page-meta"
	TypePagePending        Type = "page-pending"
	TypePageContainer      Type = "page-container"
	TypeAttachment         Type = "attachment"
	TypeFolder             Type = "folder"
	TypeSpacePermission    Type = "space-permission"
	TypeDocumentPermission Type = "document-permission"
)

// Kind describes how records of one type are identified and instantiated.
type Kind struct {
	// IdentityFields are tried in order; the first non-empty one is the id.
	// Defaults to "id".
	IdentityFields []string

	// New returns an empty instance to decode a record into. Derived types
	// that are only ever upserted leave it nil.
	New func() Entity
}

func (k Kind) identityFields() []string {
	if len(k.IdentityFields) == 0 {
		return []string{"id"}
	}
	return k.IdentityFields
}

var defaultKinds = map[Type]Kind{
	TypeDocument: {
		New: func() Entity { return &models.Document{} },
	},
	TypePage: {
		New: func() Entity { return &models.Page{} },
	},
	TypePageMeta: {
		IdentityFields: []string{"pageId", "id"},
		New:            func() Entity { return &models.PageMeta{} },
	},
	TypeAttachment: {
		New: func() Entity { return &models.Attachment{} },
	},
	TypeFolder: {
		New: func() Entity { return &models.Folder{} },
	},
	TypeSpacePermission: {
		IdentityFields: []string{"id", "spaceId"},
		New:            func() Entity { return &models.SpacePermission{} },
	},
	TypeDocumentPermission: {
		IdentityFields: []string{"id", "documentId"},
		New:            func() Entity { return &models.DocumentPermission{} },
	},
	TypePagePending:   {},
	TypePageContainer: {},
}

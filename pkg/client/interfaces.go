package client

import (
	"context"

	"github.com/hashicorp-forge/docview/pkg/models"
)

// DocumentClient reads and writes documents.
type DocumentClient interface {
	GetDocument(ctx context.Context, documentID string) (*models.Document, error)
	GetAllBySpace(ctx context.Context, spaceID string) ([]*models.Document, error)
	SaveDocument(ctx context.Context, doc *models.Document) (*Response, error)
	DeleteDocument(ctx context.Context, documentID string) (*Response, error)
}

// PageClient reads, writes, reorders and relocates pages.
type PageClient interface {
	AddPage(ctx context.Context, documentID string, payload *PagePayload) (*Response, error)
	UpdatePage(ctx context.Context, documentID, pageID string, payload *PagePayload, skipRevision bool) (*models.Page, error)
	GetPages(ctx context.Context, documentID string) ([]*models.Page, error)
	GetPage(ctx context.Context, documentID, pageID string) (*models.Page, error)
	GetPageMeta(ctx context.Context, documentID, pageID string) *models.PageMeta
	GetTableOfContents(ctx context.Context, documentID string) ([]*models.Page, error)
	DeletePages(ctx context.Context, documentID string, pageIDs []string) (*Response, error)
	DeletePage(ctx context.Context, documentID, pageID string) (*Response, error)
	ChangePageSequence(ctx context.Context, documentID string, changes []PageSequence) (*Response, error)
	ChangePageLevel(ctx context.Context, documentID string, changes []PageLevel) (*Response, error)
	GetPageMoveCopyTargets(ctx context.Context) ([]*models.Document, error)
	CopyPage(ctx context.Context, documentID, pageID, targetDocumentID string) (*models.Page, error)
	MovePage(ctx context.Context, documentID, pageID, targetDocumentID string) (*models.Page, error)
}

// RevisionClient lists, diffs and rolls back revisions.
type RevisionClient interface {
	GetDocumentRevisions(ctx context.Context, documentID string) ([]models.PageRevision, error)
	GetPageRevisions(ctx context.Context, documentID, pageID string) ([]models.PageRevision, error)
	GetPageRevisionDiff(ctx context.Context, documentID, pageID, revisionID string) string
	RollbackPage(ctx context.Context, documentID, pageID, revisionID string) (*Response, error)
}

// AttachmentClient lists and deletes document attachments.
type AttachmentClient interface {
	GetAttachments(ctx context.Context, documentID string) ([]*models.Attachment, error)
	DeleteAttachment(ctx context.Context, documentID, attachmentID string) (*Response, error)
}

// Compile-time checks
var (
	_ DocumentClient   = (*Client)(nil)
	_ PageClient       = (*Client)(nil)
	_ RevisionClient   = (*Client)(nil)
	_ AttachmentClient = (*Client)(nil)
)

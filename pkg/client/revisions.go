package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hashicorp-forge/docview/pkg/models"
)

func revisionPath(documentID, pageID, revisionID string) string {
	return pagePath(documentID, pageID) + "/revisions/" + url.PathEscape(revisionID)
}

// GetDocumentRevisions lists page revisions across a document.
func (c *Client) GetDocumentRevisions(ctx context.Context, documentID string) ([]models.PageRevision, error) {
	if err := requireID("document id", documentID); err != nil {
		return nil, err
	}

	var revisions []models.PageRevision
	if err := c.Get(ctx, "documents/"+url.PathEscape(documentID)+"/revisions", &revisions); err != nil {
		return nil, fmt.Errorf("failed to get document revisions: %w", err)
	}
	return revisions, nil
}

// GetPageRevisions lists revisions of a single page.
func (c *Client) GetPageRevisions(ctx context.Context, documentID, pageID string) ([]models.PageRevision, error) {
	if err := requireID("document id", documentID); err != nil {
		return nil, err
	}
	if err := requireID("page id", pageID); err != nil {
		return nil, err
	}

	var revisions []models.PageRevision
	if err := c.Get(ctx, pagePath(documentID, pageID)+"/revisions", &revisions); err != nil {
		return nil, fmt.Errorf("failed to get page revisions: %w", err)
	}
	return revisions, nil
}

// GetPageRevisionDiff returns the diff between a revision and the current
// page. An unavailable diff is returned as "".
func (c *Client) GetPageRevisionDiff(ctx context.Context, documentID, pageID, revisionID string) string {
	if documentID == "" || pageID == "" || revisionID == "" {
		c.logger.Debug("revision diff skipped, missing id",
			"document_id", documentID,
			"page_id", pageID,
			"revision_id", revisionID,
		)
		return ""
	}

	body, _, err := c.do(ctx, http.MethodGet, revisionPath(documentID, pageID, revisionID), nil, nil, nil)
	if err != nil {
		c.logger.Debug("revision diff unavailable",
			"document_id", documentID,
			"page_id", pageID,
			"revision_id", revisionID,
			"error", err,
		)
		return ""
	}
	return string(body)
}

// RollbackPage reverts a page to a prior revision.
func (c *Client) RollbackPage(ctx context.Context, documentID, pageID, revisionID string) (*Response, error) {
	if err := requireID("document id", documentID); err != nil {
		return nil, err
	}
	if err := requireID("page id", pageID); err != nil {
		return nil, err
	}
	if err := requireID("revision id", revisionID); err != nil {
		return nil, err
	}

	return c.raw(ctx, http.MethodPost, revisionPath(documentID, pageID, revisionID), nil, nil)
}

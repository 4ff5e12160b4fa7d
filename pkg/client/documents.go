package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hashicorp-forge/docview/pkg/models"
	"github.com/hashicorp-forge/docview/pkg/store"
)

// GetDocument fetches a document and returns its canonical instance. On any
// failure a not-found navigation intent is emitted and the error is also
// returned.
func (c *Client) GetDocument(ctx context.Context, documentID string) (*models.Document, error) {
	doc, err := c.getDocument(ctx, documentID)
	if err != nil {
		c.logger.Warn("document unavailable, redirecting",
			"document_id", documentID,
			"error", err,
		)
		c.navigator.Navigate(ctx, Intent{
			Route:      RouteNotFound,
			DocumentID: documentID,
			Err:        err,
		})
		return nil, err
	}
	return doc, nil
}

func (c *Client) getDocument(ctx context.Context, documentID string) (*models.Document, error) {
	if err := requireID("document id", documentID); err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := c.Get(ctx, "documents/"+url.PathEscape(documentID), &raw); err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	doc, err := store.PushAs[*models.Document](c.store, store.TypeDocument, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize document: %w", err)
	}
	return doc, nil
}

// GetAllBySpace fetches every document in a space.
func (c *Client) GetAllBySpace(ctx context.Context, spaceID string) ([]*models.Document, error) {
	if err := requireID("space id", spaceID); err != nil {
		return nil, err
	}

	var raws []map[string]any
	query := url.Values{"space": []string{spaceID}}
	if _, _, err := c.do(ctx, http.MethodGet, "documents", query, nil, &raws); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	docs, err := pushEach[*models.Document](c.store, store.TypeDocument, raws)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize documents: %w", err)
	}
	return docs, nil
}

// SaveDocument replaces a document. The response is returned as is; callers
// that want the store refreshed must push it themselves.
func (c *Client) SaveDocument(ctx context.Context, doc *models.Document) (*Response, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: document is required", ErrValidation)
	}
	if err := requireID("document id", doc.ID); err != nil {
		return nil, err
	}

	return c.raw(ctx, http.MethodPut, "documents/"+url.PathEscape(doc.ID), nil, doc)
}

// DeleteDocument deletes a document.
func (c *Client) DeleteDocument(ctx context.Context, documentID string) (*Response, error) {
	if err := requireID("document id", documentID); err != nil {
		return nil, err
	}

	return c.raw(ctx, http.MethodDelete, "documents/"+url.PathEscape(documentID), nil, nil)
}

func requireID(name, id string) error {
	if err := validation.Validate(id, validation.Required); err != nil {
		return fmt.Errorf("%w: %s %v", ErrValidation, name, err)
	}
	return nil
}

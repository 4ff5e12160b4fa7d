package client

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hashicorp-forge/docview/pkg/models"
	"github.com/hashicorp-forge/docview/pkg/store"
)

// PagePayload is the body of page create and update requests. Both halves
// are loosely typed because they come straight from the editor.
type PagePayload struct {
	Page map[string]any `json:"page"`
	Meta map[string]any `json:"meta"`
}

// PageRef identifies a page in bulk delete requests.
type PageRef struct {
	PageID string `json:"pageId"`
}

// PageSequence moves a page to a new position in the document.
type PageSequence struct {
	PageID   string  `json:"pageId"`
	Sequence float64 `json:"sequence"`
}

// PageLevel changes the nesting depth of a page.
type PageLevel struct {
	PageID string `json:"pageId"`
	Level  int    `json:"level"`
}

func pagesPath(documentID string) string {
	return "documents/" + url.PathEscape(documentID) + "/pages"
}

func pagePath(documentID, pageID string) string {
	return pagesPath(documentID) + "/" + url.PathEscape(pageID)
}

// AddPage inserts a new page into a document and returns the raw response.
func (c *Client) AddPage(ctx context.Context, documentID string, payload *PagePayload) (*Response, error) {
	if err := requireID("document id", documentID); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: page payload is required", ErrValidation)
	}

	return c.raw(ctx, http.MethodPost, pagesPath(documentID), nil, payload)
}

// UpdatePage saves a page. skipRevision asks the server to overwrite the
// current revision instead of recording a new one. The meta id is sent as an
// integer whatever type the caller used. The payload is not modified.
func (c *Client) UpdatePage(ctx context.Context, documentID, pageID string, payload *PagePayload, skipRevision bool) (*models.Page, error) {
	if err := requireID("document id", documentID); err != nil {
		return nil, err
	}
	if err := requireID("page id", pageID); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: page payload is required", ErrValidation)
	}

	out, err := coerceMetaID(payload)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	query := url.Values{"r": []string{strconv.FormatBool(skipRevision)}}
	if _, _, err := c.do(ctx, http.MethodPut, pagePath(documentID, pageID), query, out, &raw); err != nil {
		return nil, fmt.Errorf("failed to update page: %w", err)
	}

	page, err := store.PushAs[*models.Page](c.store, store.TypePage, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize page: %w", err)
	}
	return page, nil
}

// coerceMetaID returns a shallow copy of payload whose meta id is an int64.
func coerceMetaID(payload *PagePayload) (*PagePayload, error) {
	out := &PagePayload{Page: payload.Page}
	if payload.Meta == nil {
		return out, nil
	}

	out.Meta = make(map[string]any, len(payload.Meta))
	for k, v := range payload.Meta {
		out.Meta[k] = v
	}

	v, ok := out.Meta["id"]
	if !ok || v == nil {
		return out, nil
	}
	id, err := toInt64(v)
	if err != nil {
		return nil, fmt.Errorf("%w: meta id: %v", ErrValidation, err)
	}
	out.Meta["id"] = id

	return out, nil
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int64(n), nil
	case json.Number:
		return n.Int64()
	case string:
		return strconv.ParseInt(strings.TrimSpace(n), 10, 64)
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

// GetPages fetches every page of a document including content.
func (c *Client) GetPages(ctx context.Context, documentID string) ([]*models.Page, error) {
	return c.listPages(ctx, documentID, nil)
}

// GetTableOfContents fetches every page of a document without content.
// Cached pages keep any body fetched earlier.
func (c *Client) GetTableOfContents(ctx context.Context, documentID string) ([]*models.Page, error) {
	return c.listPages(ctx, documentID, url.Values{"content": []string{"0"}})
}

func (c *Client) listPages(ctx context.Context, documentID string, query url.Values) ([]*models.Page, error) {
	if err := requireID("document id", documentID); err != nil {
		return nil, err
	}

	var raws []map[string]any
	if _, _, err := c.do(ctx, http.MethodGet, pagesPath(documentID), query, nil, &raws); err != nil {
		return nil, fmt.Errorf("failed to get pages: %w", err)
	}

	pages, err := pushEach[*models.Page](c.store, store.TypePage, raws)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize pages: %w", err)
	}
	return pages, nil
}

// GetPage fetches a single page including content.
func (c *Client) GetPage(ctx context.Context, documentID, pageID string) (*models.Page, error) {
	if err := requireID("document id", documentID); err != nil {
		return nil, err
	}
	if err := requireID("page id", pageID); err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := c.Get(ctx, pagePath(documentID, pageID), &raw); err != nil {
		return nil, fmt.Errorf("failed to get page: %w", err)
	}

	page, err := store.PushAs[*models.Page](c.store, store.TypePage, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize page: %w", err)
	}
	return page, nil
}

// GetPageMeta fetches page metadata. Metadata is cosmetic, so any failure
// yields nil rather than an error.
func (c *Client) GetPageMeta(ctx context.Context, documentID, pageID string) *models.PageMeta {
	var raw map[string]any
	if err := c.Get(ctx, pagePath(documentID, pageID)+"/meta", &raw); err != nil {
		c.logger.Debug("page meta unavailable",
			"document_id", documentID,
			"page_id", pageID,
			"error", err,
		)
		return nil
	}

	meta, err := store.PushAs[*models.PageMeta](c.store, store.TypePageMeta, raw)
	if err != nil {
		c.logger.Debug("page meta malformed",
			"document_id", documentID,
			"page_id", pageID,
			"error", err,
		)
		return nil
	}
	return meta
}

// DeletePages deletes several pages of a document in one request.
func (c *Client) DeletePages(ctx context.Context, documentID string, pageIDs []string) (*Response, error) {
	if err := requireID("document id", documentID); err != nil {
		return nil, err
	}
	if len(pageIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one page id is required", ErrValidation)
	}

	refs := make([]PageRef, 0, len(pageIDs))
	for _, id := range pageIDs {
		refs = append(refs, PageRef{PageID: id})
	}

	return c.raw(ctx, http.MethodDelete, pagesPath(documentID), nil, refs)
}

// DeletePage deletes a single page.
func (c *Client) DeletePage(ctx context.Context, documentID, pageID string) (*Response, error) {
	if err := requireID("document id", documentID); err != nil {
		return nil, err
	}
	if err := requireID("page id", pageID); err != nil {
		return nil, err
	}

	return c.raw(ctx, http.MethodDelete, pagePath(documentID, pageID), nil, nil)
}

// ChangePageSequence forwards reordering instructions. Ordering is computed
// by the server.
func (c *Client) ChangePageSequence(ctx context.Context, documentID string, changes []PageSequence) (*Response, error) {
	if err := requireID("document id", documentID); err != nil {
		return nil, err
	}

	return c.raw(ctx, http.MethodPost, pagesPath(documentID)+"/sequence", nil, changes)
}

// ChangePageLevel forwards re-nesting instructions.
func (c *Client) ChangePageLevel(ctx context.Context, documentID string, changes []PageLevel) (*Response, error) {
	if err := requireID("document id", documentID); err != nil {
		return nil, err
	}

	return c.raw(ctx, http.MethodPost, pagesPath(documentID)+"/level", nil, changes)
}

// GetPageMoveCopyTargets lists documents that can receive a copied or moved
// page.
func (c *Client) GetPageMoveCopyTargets(ctx context.Context) ([]*models.Document, error) {
	var raws []map[string]any
	if err := c.Get(ctx, "sections/targets", &raws); err != nil {
		return nil, fmt.Errorf("failed to get page targets: %w", err)
	}

	docs, err := pushEach[*models.Document](c.store, store.TypeDocument, raws)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize page targets: %w", err)
	}
	return docs, nil
}

// CopyPage duplicates a page into the target document, which may be the
// same document.
func (c *Client) CopyPage(ctx context.Context, documentID, pageID, targetDocumentID string) (*models.Page, error) {
	return c.relocatePage(ctx, "copy", documentID, pageID, targetDocumentID)
}

// MovePage moves a page into another document.
func (c *Client) MovePage(ctx context.Context, documentID, pageID, targetDocumentID string) (*models.Page, error) {
	return c.relocatePage(ctx, "move", documentID, pageID, targetDocumentID)
}

func (c *Client) relocatePage(ctx context.Context, action, documentID, pageID, targetDocumentID string) (*models.Page, error) {
	if err := requireID("document id", documentID); err != nil {
		return nil, err
	}
	if err := requireID("page id", pageID); err != nil {
		return nil, err
	}
	if err := requireID("target document id", targetDocumentID); err != nil {
		return nil, err
	}

	var raw map[string]any
	path := pagePath(documentID, pageID) + "/" + action + "/" + url.PathEscape(targetDocumentID)
	if _, _, err := c.do(ctx, http.MethodPost, path, nil, nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to %s page: %w", action, err)
	}

	page, err := store.PushAs[*models.Page](c.store, store.TypePage, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize page: %w", err)
	}
	return page, nil
}

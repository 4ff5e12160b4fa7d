package bulk

import (
	"context"
	"fmt"

	"github.com/hashicorp-forge/docview/pkg/models"
	"github.com/hashicorp-forge/docview/pkg/store"
)

type pageEntry struct {
	Page    map[string]any `json:"page"`
	Meta    map[string]any `json:"meta"`
	Pending []pendingEntry `json:"pending"`
}

type pendingEntry struct {
	Page  map[string]any `json:"page"`
	Meta  map[string]any `json:"meta"`
	Owner string         `json:"owner"`
}

// FetchPages loads every page of a document with its metadata and pending
// changes, and derives review flags relative to userID. Containers are
// returned in server order.
func (a *Aggregator) FetchPages(ctx context.Context, documentID, userID string) ([]*models.PageContainer, error) {
	if err := requireDocumentID(documentID); err != nil {
		return nil, err
	}

	var entries []pageEntry
	if err := a.transport.Get(ctx, fetchPath("page", documentID), &entries); err != nil {
		return nil, fmt.Errorf("failed to fetch pages: %w", err)
	}

	containers := make([]*models.PageContainer, 0, len(entries))
	for i, entry := range entries {
		c, err := a.buildContainer(entry, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to build page %d: %w", i, err)
		}
		containers = append(containers, c)
	}

	a.logger.Debug("fetched pages",
		"document_id", documentID,
		"pages", len(containers),
	)

	return containers, nil
}

func (a *Aggregator) buildContainer(entry pageEntry, userID string) (*models.PageContainer, error) {
	page, meta, err := a.pushPage(entry.Page, entry.Meta)
	if err != nil {
		return nil, err
	}

	pending := make([]*models.PagePending, 0, len(entry.Pending))
	for j, pe := range entry.Pending {
		p, err := a.buildPending(pe, userID)
		if err != nil {
			return nil, fmt.Errorf("pending change %d: %w", j, err)
		}
		pending = append(pending, p)
	}

	container := &models.PageContainer{
		ID:                    page.ID,
		Page:                  page,
		Meta:                  meta,
		Pending:               pending,
		ReviewFlags:           models.FoldReviewFlags(pending),
		UserHasNewPagePending: page.IsNewPageUserPending(userID),
	}

	return store.Upsert(a.store, store.TypePageContainer, container)
}

func (a *Aggregator) buildPending(pe pendingEntry, userID string) (*models.PagePending, error) {
	page, meta, err := a.pushPage(pe.Page, pe.Meta)
	if err != nil {
		return nil, err
	}

	belongsToMe := page.UserID != "" && page.UserID == userID
	p := &models.PagePending{
		ID:          page.ID,
		Page:        page,
		Meta:        meta,
		Owner:       pe.Owner,
		ReviewFlags: models.DeriveReviewFlags(page.Status, belongsToMe),
	}

	return store.Upsert(a.store, store.TypePagePending, p)
}

// pushPage pushes a page and its optional metadata.
func (a *Aggregator) pushPage(rawPage, rawMeta map[string]any) (*models.Page, *models.PageMeta, error) {
	if rawPage == nil {
		return nil, nil, fmt.Errorf("entry has no page")
	}

	page, err := store.PushAs[*models.Page](a.store, store.TypePage, rawPage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to normalize page: %w", err)
	}

	if rawMeta == nil {
		return page, nil, nil
	}
	meta, err := store.PushAs[*models.PageMeta](a.store, store.TypePageMeta, rawMeta)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to normalize page meta: %w", err)
	}
	return page, meta, nil
}

// Package bulk builds consolidated, UI-ready views from the bulk fetch
// endpoints. Each view costs one round trip; the join of pages, metadata and
// pending changes and the per-page reduction of review flags happen here.
package bulk

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/sync/errgroup"

	"github.com/hashicorp-forge/docview/pkg/models"
	"github.com/hashicorp-forge/docview/pkg/store"
)

// Transport performs a GET against the API and decodes the JSON response
// into out. *client.Client satisfies it.
type Transport interface {
	Get(ctx context.Context, path string, out any) error
}

// PermissionSink receives the current user's space permissions whenever a
// document bundle is loaded.
type PermissionSink interface {
	SetSpacePermissions(p *models.SpacePermission)
}

// Aggregator fetches and assembles bulk views.
type Aggregator struct {
	transport   Transport
	store       *store.Store
	permissions PermissionSink
	logger      hclog.Logger
}

// Option is a functional option for creating an Aggregator.
type Option func(*Aggregator)

// WithLogger sets the logger.
func WithLogger(logger hclog.Logger) Option {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

// WithPermissionSink sets where space permissions are published.
func WithPermissionSink(sink PermissionSink) Option {
	return func(a *Aggregator) {
		a.permissions = sink
	}
}

// New creates an aggregator that fetches through transport and pushes into s.
func New(transport Transport, s *store.Store, opts ...Option) (*Aggregator, error) {
	a := &Aggregator{
		transport: transport,
		store:     s,
		logger:    hclog.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.transport == nil {
		return nil, errors.New("transport is required")
	}
	if a.store == nil {
		return nil, errors.New("store is required")
	}
	a.logger = a.logger.Named("bulk")

	return a, nil
}

// View is everything needed to render a document.
type View struct {
	Document *DocumentBundle
	Pages    []*models.PageContainer
}

// LoadView fetches the document bundle and the page bundle concurrently.
// Either failure fails the view.
func (a *Aggregator) LoadView(ctx context.Context, documentID, userID string) (*View, error) {
	var view View

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bundle, err := a.FetchDocumentData(ctx, documentID)
		if err != nil {
			return err
		}
		view.Document = bundle
		return nil
	})
	g.Go(func() error {
		pages, err := a.FetchPages(ctx, documentID, userID)
		if err != nil {
			return err
		}
		view.Pages = pages
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &view, nil
}

func fetchPath(kind, documentID string) string {
	return "fetch/" + kind + "/" + url.PathEscape(documentID)
}

func requireDocumentID(documentID string) error {
	if documentID == "" {
		return fmt.Errorf("document id is required")
	}
	return nil
}

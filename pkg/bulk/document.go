package bulk

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"

	"github.com/hashicorp-forge/docview/pkg/models"
	"github.com/hashicorp-forge/docview/pkg/store"
)

// DocumentBundle is the bootstrap data for a document view.
type DocumentBundle struct {
	Document    *models.Document
	Permissions *models.SpacePermission
	Roles       *models.DocumentPermission
	Folders     []*models.Folder
	Links       []models.Link

	// Folder is the space containing Document, or nil when none of Folders
	// matches.
	Folder *models.Folder
}

type documentResponse struct {
	Document    map[string]any   `json:"document"`
	Permissions map[string]any   `json:"permissions"`
	Roles       map[string]any   `json:"roles"`
	Folders     []map[string]any `json:"folders"`
	Links       []map[string]any `json:"links"`
}

// FetchDocumentData loads a document together with its permissions, roles,
// related spaces and links in a single request.
func (a *Aggregator) FetchDocumentData(ctx context.Context, documentID string) (*DocumentBundle, error) {
	if err := requireDocumentID(documentID); err != nil {
		return nil, err
	}

	var resp documentResponse
	if err := a.transport.Get(ctx, fetchPath("document", documentID), &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch document data: %w", err)
	}
	if resp.Document == nil {
		return nil, fmt.Errorf("failed to fetch document data: response has no document")
	}

	bundle := &DocumentBundle{}

	doc, err := store.PushAs[*models.Document](a.store, store.TypeDocument, resp.Document)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize document: %w", err)
	}
	bundle.Document = doc

	if resp.Permissions != nil {
		perms, err := store.PushAs[*models.SpacePermission](a.store, store.TypeSpacePermission, resp.Permissions)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize space permissions: %w", err)
		}
		bundle.Permissions = perms
		if a.permissions != nil {
			a.permissions.SetSpacePermissions(perms)
		}
	}

	if resp.Roles != nil {
		roles, err := store.PushAs[*models.DocumentPermission](a.store, store.TypeDocumentPermission, resp.Roles)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize document roles: %w", err)
		}
		bundle.Roles = roles
	}

	var result *multierror.Error
	bundle.Folders = make([]*models.Folder, 0, len(resp.Folders))
	for i, raw := range resp.Folders {
		folder, err := store.PushAs[*models.Folder](a.store, store.TypeFolder, raw)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("folder %d: %w", i, err))
			continue
		}
		bundle.Folders = append(bundle.Folders, folder)
	}

	bundle.Links = make([]models.Link, 0, len(resp.Links))
	for i, raw := range resp.Links {
		var link models.Link
		if err := decodeLink(raw, &link); err != nil {
			result = multierror.Append(result, fmt.Errorf("link %d: %w", i, err))
			continue
		}
		bundle.Links = append(bundle.Links, link)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("failed to normalize document data: %w", err)
	}

	bundle.Folder = findFolder(bundle.Folders, doc.FolderID)
	if bundle.Folder == nil {
		a.logger.Debug("document space not in bundle",
			"document_id", doc.ID,
			"folder_id", doc.FolderID,
		)
	}

	a.logger.Debug("fetched document data",
		"document_id", doc.ID,
		"folders", len(bundle.Folders),
		"links", len(bundle.Links),
	)

	return bundle, nil
}

func findFolder(folders []*models.Folder, id string) *models.Folder {
	if id == "" {
		return nil
	}
	for _, f := range folders {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// Links are not cached, so they are decoded directly.
func decodeLink(raw map[string]any, link *models.Link) error {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "json",
		Result:           link,
	})
	if err != nil {
		return err
	}
	return d.Decode(raw)
}

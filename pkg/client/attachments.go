package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hashicorp-forge/docview/pkg/models"
	"github.com/hashicorp-forge/docview/pkg/store"
)

// GetAttachments lists a document's attachments without their content. The
// API answers with an empty object when there are none.
func (c *Client) GetAttachments(ctx context.Context, documentID string) ([]*models.Attachment, error) {
	if err := requireID("document id", documentID); err != nil {
		return nil, err
	}

	body, _, err := c.do(ctx, http.MethodGet, "documents/"+url.PathEscape(documentID)+"/attachments", nil, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get attachments: %w", err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '[' {
		return []*models.Attachment{}, nil
	}

	var raws []map[string]any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raws); err != nil {
		return nil, fmt.Errorf("failed to decode attachments: %w", err)
	}

	attachments, err := pushEach[*models.Attachment](c.store, store.TypeAttachment, raws)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize attachments: %w", err)
	}
	return attachments, nil
}

// DeleteAttachment deletes an attachment.
func (c *Client) DeleteAttachment(ctx context.Context, documentID, attachmentID string) (*Response, error) {
	if err := requireID("document id", documentID); err != nil {
		return nil, err
	}
	if err := requireID("attachment id", attachmentID); err != nil {
		return nil, err
	}

	path := "documents/" + url.PathEscape(documentID) + "/attachments/" + url.PathEscape(attachmentID)
	return c.raw(ctx, http.MethodDelete, path, nil, nil)
}

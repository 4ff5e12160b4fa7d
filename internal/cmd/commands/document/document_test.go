package document

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/docview/internal/cmd/base"
)

func setup(t *testing.T, webURL string) (*base.Command, *[]string) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/documents/d1":
			w.Write([]byte(`{"id": "d1", "name": "Runbook", "slug": "runbook", "folderId": "7"}`))
		case "/api/fetch/document/d1":
			w.Write([]byte(`{
				"document": {"id": "d1", "name": "Runbook", "folderId": "7"},
				"permissions": {"spaceId": "7", "spaceView": true},
				"folders": [{"id": "7", "name": "Operations"}],
				"links": [{"id": "l1", "linkType": "document", "targetDocumentId": "d2", "orphan": true}]
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/docview.hcl", []byte(fmt.Sprintf(`
web_url = %q

server {
  base_url = "%s/api"
}
`, webURL, server.URL)), 0o644))

	prevFs, prevOpen := base.Fs, openURL
	t.Cleanup(func() { base.Fs, openURL = prevFs, prevOpen })
	base.Fs = fs

	var opened []string
	openURL = func(u string) error {
		opened = append(opened, u)
		return nil
	}

	return base.NewCommand(hclog.NewNullLogger(), cli.NewMockUi()), &opened
}

func TestDocumentCommand(t *testing.T) {
	t.Run("text output", func(t *testing.T) {
		b, _ := setup(t, "")
		ui := b.UI.(*cli.MockUi)

		code := (&Command{Command: b}).Run([]string{"-config=/docview.hcl", "d1"})
		require.Equal(t, 0, code, ui.ErrorWriter.String())

		out := ui.OutputWriter.String()
		assert.Contains(t, out, "Document: Runbook (d1)")
		assert.Contains(t, out, "Space:    Operations (7)")
		assert.Contains(t, out, "  spaceView = true")
		assert.Contains(t, out, "  document -> d2 (orphaned)")
	})

	t.Run("json output", func(t *testing.T) {
		b, _ := setup(t, "")
		ui := b.UI.(*cli.MockUi)

		code := (&Command{Command: b}).Run([]string{"-config=/docview.hcl", "-format=json", "d1"})
		require.Equal(t, 0, code, ui.ErrorWriter.String())

		var got struct {
			Document struct {
				Title string `json:"name"`
			}
			Folder struct {
				Name string `json:"name"`
			}
		}
		require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &got))
		assert.Equal(t, "Runbook", got.Document.Title)
		assert.Equal(t, "Operations", got.Folder.Name)
	})
}

func TestOpenCommand(t *testing.T) {
	t.Run("opens the document", func(t *testing.T) {
		b, opened := setup(t, "https://docs.example.com/")
		ui := b.UI.(*cli.MockUi)

		code := (&OpenCommand{Command: b}).Run([]string{"-config=/docview.hcl", "d1"})
		require.Equal(t, 0, code, ui.ErrorWriter.String())
		assert.Equal(t, []string{"https://docs.example.com/d/d1/runbook"}, *opened)
	})

	t.Run("missing document opens not-found page and fails", func(t *testing.T) {
		b, opened := setup(t, "https://docs.example.com")
		ui := b.UI.(*cli.MockUi)

		code := (&OpenCommand{Command: b}).Run([]string{"-config=/docview.hcl", "gone"})
		assert.Equal(t, 1, code)
		assert.Equal(t, []string{"https://docs.example.com/not-found"}, *opened)
		assert.Contains(t, ui.ErrorWriter.String(), "error loading document")
	})

	t.Run("requires web url", func(t *testing.T) {
		b, opened := setup(t, "")
		ui := b.UI.(*cli.MockUi)

		code := (&OpenCommand{Command: b}).Run([]string{"-config=/docview.hcl", "d1"})
		assert.Equal(t, 1, code)
		assert.Empty(t, *opened)
		assert.Contains(t, ui.ErrorWriter.String(), "web_url")
	})
}

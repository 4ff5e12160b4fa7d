package attachments

import (
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

func setup(t *testing.T, handler http.Handler) *base.Command {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/docview.hcl", []byte(fmt.Sprintf(`
server {
  base_url = "%s/api"
}
`, server.URL)), 0o644))

	prev := base.Fs
	base.Fs = fs
	t.Cleanup(func() { base.Fs = prev })

	return base.NewCommand(hclog.NewNullLogger(), cli.NewMockUi())
}

func TestCommand(t *testing.T) {
	t.Run("text output", func(t *testing.T) {
		b := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/documents/d1/attachments", r.URL.Path)
			w.Write([]byte(`[{"id": "a1", "filename": "diagram.png"}, {"id": "a2", "filename": "notes.pdf"}]`))
		}))
		ui := b.UI.(*cli.MockUi)

		code := (&Command{Command: b}).Run([]string{"-config=/docview.hcl", "d1"})
		require.Equal(t, 0, code, ui.ErrorWriter.String())
		assert.Equal(t, "a1\tdiagram.png\na2\tnotes.pdf\n", ui.OutputWriter.String())
	})

	t.Run("object response lists nothing", func(t *testing.T) {
		b := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		ui := b.UI.(*cli.MockUi)

		code := (&Command{Command: b}).Run([]string{"-config=/docview.hcl", "d1"})
		require.Equal(t, 0, code, ui.ErrorWriter.String())
		assert.Equal(t, "No attachments\n", ui.OutputWriter.String())
	})
}

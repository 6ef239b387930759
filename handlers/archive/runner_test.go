package archive

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadAttachments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			w.Write([]byte("png-bytes"))
		case "/gone.png":
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	attachments := []*discordgo.MessageAttachment{
		{Filename: "ok.png", URL: srv.URL + "/ok.png", Size: 9},
		{Filename: "gone.png", URL: srv.URL + "/gone.png", Size: 9},
		{Filename: "huge.bin", URL: srv.URL + "/huge.bin", Size: maxAttachmentSize + 1},
	}

	files, notes := downloadAttachments(srv.Client(), attachments)

	require.Len(t, files, 1)
	assert.Equal(t, "ok.png", files[0].Name)
	body, err := io.ReadAll(files[0].Reader)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))
	files[0].Reader.(io.Closer).Close()

	// Non-200 and oversized attachments fall back to a link note.
	assert.Contains(t, notes, "gone.png (unavailable)")
	assert.Contains(t, notes, "huge.bin (too large)")
	assert.NotContains(t, notes, "ok.png")
}

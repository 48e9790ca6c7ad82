package telegram

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name kept", "photo.jpg", "photo.jpg"},
		{"spaces replaced", "my photo.png", "my_photo.png"},
		{"unicode replaced", "фото.jpg", "____.jpg"},
		{"path characters replaced", "a/b\\c.png", "a_b_c.png"},
		{"missing extension gets jpg", "upload", "upload.jpg"},
		{"empty name gets jpg", "", ".jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, safeFilename(tt.in))
		})
	}
}

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"<b>bold</b>", "&lt;b&gt;bold&lt;/b&gt;"},
		{`say "hi" & 'bye'`, "say &quot;hi&quot; &amp; &#039;bye&#039;"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeHTML(tt.in))
	}
}

func TestSendMessageReportsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
	}))
	defer server.Close()

	client := NewClient("token")
	client.BaseURL = server.URL

	err := client.SendMessage("-1", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestSendMediaGroupBuildsAlbum(t *testing.T) {
	var gotPath string
	var mediaField string
	var fileNames []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))
		mediaField = r.FormValue("media")
		for field := range r.MultipartForm.File {
			fileNames = append(fileNames, field)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient("token")
	client.BaseURL = server.URL

	photos := []Photo{
		{Filename: "first.jpg", Data: []byte("one")},
		{Filename: "second.png", Data: []byte("two")},
	}
	require.NoError(t, client.SendMediaGroup("-1", photos, "album text"))

	assert.Equal(t, "/bottoken/sendMediaGroup", gotPath)
	assert.ElementsMatch(t, []string{"photo_0", "photo_1"}, fileNames)

	// The caption rides on the first album entry only.
	assert.Contains(t, mediaField, "attach://photo_0")
	assert.Contains(t, mediaField, "attach://photo_1")
	assert.Equal(t, 1, strings.Count(mediaField, `"caption"`))
}

func TestSendPhotoUploadsMultipart(t *testing.T) {
	var caption string
	var filename string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		caption = r.FormValue("caption")

		file, header, err := r.FormFile("photo")
		require.NoError(t, err)
		defer file.Close()
		filename = header.Filename

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("jpeg-bytes"), data)

		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient("token")
	client.BaseURL = server.URL

	err := client.SendPhoto("-1", Photo{Filename: "my photo", Data: []byte("jpeg-bytes")}, "yum")
	require.NoError(t, err)

	assert.Equal(t, "yum", caption)
	assert.Equal(t, "my_photo.jpg", filename)
}

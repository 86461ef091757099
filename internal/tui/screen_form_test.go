package tui

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarev/lockbox/models"
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestFormModel_Password_Built(t *testing.T) {
	m := newFormModel(models.CategoryPasswords)
	m.inputs[0].SetValue("Mail")
	m.inputs[1].SetValue("https://mail.example.com")
	m.inputs[2].SetValue("alice")
	m.inputs[3].SetValue("s3cret")

	apply, err := m.item()
	require.NoError(t, err)

	data := models.NewVaultData()
	apply(&data)
	require.Len(t, data.Passwords, 1)
	it := data.Passwords[0]
	assert.NotEmpty(t, it.ID)
	assert.NotEmpty(t, it.CreatedAt)
	assert.Equal(t, "Mail", it.Title)
	assert.Equal(t, "alice", it.Username)
	assert.Equal(t, "s3cret", it.Password)
}

func TestFormModel_TitleRequired(t *testing.T) {
	for _, c := range models.Categories {
		m := newFormModel(c)
		_, err := m.item()
		assert.Errorf(t, err, "category %q must reject an empty title", c)
	}
}

func TestFormModel_Password_MissingFields(t *testing.T) {
	m := newFormModel(models.CategoryPasswords)
	m.inputs[0].SetValue("Mail")

	_, err := m.item()
	assert.Error(t, err)
}

func TestFormModel_Link_Built(t *testing.T) {
	m := newFormModel(models.CategoryLinks)
	m.inputs[0].SetValue("Docs")
	m.inputs[1].SetValue("https://example.com/docs")

	apply, err := m.item()
	require.NoError(t, err)

	data := models.NewVaultData()
	apply(&data)
	require.Len(t, data.Links, 1)
	assert.Equal(t, "https://example.com/docs", data.Links[0].URL)
}

func TestFormModel_Media_ImageFiles(t *testing.T) {
	p1 := writeTempFile(t, "a.png", []byte("png-bytes"))
	p2 := writeTempFile(t, "b.jpg", []byte("jpg-bytes"))

	m := newFormModel(models.CategoryMedia)
	m.inputs[0].SetValue("Holiday")
	m.inputs[1].SetValue(p1 + ", " + p2)

	apply, err := m.item()
	require.NoError(t, err)

	data := models.NewVaultData()
	apply(&data)
	require.Len(t, data.Media, 1)
	it := data.Media[0]
	assert.Equal(t, models.MediaImage, it.Type)
	require.Len(t, it.Images, 2)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("png-bytes")), it.Images[0].Data)
	assert.Empty(t, it.Data)
}

func TestFormModel_Media_VideoFile(t *testing.T) {
	p := writeTempFile(t, "clip.mp4", []byte("video-bytes"))

	m := newFormModel(models.CategoryMedia)
	m.inputs[0].SetValue("Clip")
	m.inputs[1].SetValue(p)

	apply, err := m.item()
	require.NoError(t, err)

	data := models.NewVaultData()
	apply(&data)
	it := data.Media[0]
	assert.Equal(t, models.MediaVideo, it.Type)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("video-bytes")), it.Data)
	assert.Empty(t, it.Images)
}

func TestFormModel_Media_MissingFile(t *testing.T) {
	m := newFormModel(models.CategoryMedia)
	m.inputs[0].SetValue("Holiday")
	m.inputs[1].SetValue("/no/such/file.png")

	_, err := m.item()
	assert.Error(t, err)
}

func TestFormModel_Identity_Built(t *testing.T) {
	p := writeTempFile(t, "passport.jpg", []byte("scan-bytes"))

	m := newFormModel(models.CategoryIdentities)
	m.inputs[0].SetValue("My passport")
	m.inputs[1].SetValue(p)
	m.docType = 0

	apply, err := m.item()
	require.NoError(t, err)

	data := models.NewVaultData()
	apply(&data)
	require.Len(t, data.Identities, 1)
	it := data.Identities[0]
	assert.Equal(t, models.DocumentTypes[0], it.DocumentType)
	require.Len(t, it.Images, 1)
	assert.Equal(t, it.Images[0].Data, it.Images[0].Thumbnail)
	assert.Empty(t, it.Data)
}

func TestSplitPaths(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitPaths(" a , b "))
	assert.Equal(t, []string{"one"}, splitPaths("one"))
	assert.Nil(t, splitPaths(" , ,"))
}

func TestIsVideoFile(t *testing.T) {
	assert.True(t, isVideoFile("clip.mp4"))
	assert.True(t, isVideoFile("CLIP.MOV"))
	assert.True(t, isVideoFile("x.webm"))
	assert.False(t, isVideoFile("photo.png"))
	assert.False(t, isVideoFile("noext"))
}

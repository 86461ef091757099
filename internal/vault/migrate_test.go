package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarev/lockbox/models"
)

func TestNormalize_LegacyIdentity_MovedIntoImages(t *testing.T) {
	data := models.NewVaultData()
	data.Identities = append(data.Identities, models.IdentityItem{
		BaseItem:     models.BaseItem{ID: "i1", Title: "Passport"},
		DocumentType: "Passport",
		Data:         "full-image",
		Thumbnail:    "small-image",
	})

	got := Normalize(data)

	require.Len(t, got.Identities, 1)
	item := got.Identities[0]
	require.Len(t, item.Images, 1)
	assert.Equal(t, "full-image", item.Images[0].Data)
	assert.Equal(t, "small-image", item.Images[0].Thumbnail)
	assert.Empty(t, item.Data)
	assert.Empty(t, item.Thumbnail)
}

func TestNormalize_LegacyImageMedia_MovedIntoImages(t *testing.T) {
	data := models.NewVaultData()
	data.Media = append(data.Media, models.MediaItem{
		BaseItem:  models.BaseItem{ID: "m1"},
		Type:      models.MediaImage,
		Data:      "full-image",
		Thumbnail: "small-image",
	})

	got := Normalize(data)

	item := got.Media[0]
	require.Len(t, item.Images, 1)
	assert.Equal(t, "full-image", item.Images[0].Data)
	assert.Equal(t, "small-image", item.Images[0].Thumbnail)
	assert.Empty(t, item.Data)
	assert.Empty(t, item.Thumbnail)
}

func TestNormalize_VideoMedia_LeftAlone(t *testing.T) {
	data := models.NewVaultData()
	data.Media = append(data.Media, models.MediaItem{
		BaseItem:  models.BaseItem{ID: "m1"},
		Type:      models.MediaVideo,
		Data:      "video-bytes",
		Thumbnail: "poster",
	})

	got := Normalize(data)

	item := got.Media[0]
	assert.Empty(t, item.Images)
	assert.Equal(t, "video-bytes", item.Data)
	assert.Equal(t, "poster", item.Thumbnail)
}

func TestNormalize_PartialLegacyFields_NotMigrated(t *testing.T) {
	// only one of data/thumbnail set: not the legacy layout, leave as is
	data := models.NewVaultData()
	data.Identities = append(data.Identities, models.IdentityItem{
		BaseItem: models.BaseItem{ID: "i1"},
		Data:     "full-image",
	})

	got := Normalize(data)

	item := got.Identities[0]
	assert.Empty(t, item.Images)
	assert.Equal(t, "full-image", item.Data)
}

func TestNormalize_CurrentShape_Untouched(t *testing.T) {
	data := models.NewVaultData()
	data.Identities = append(data.Identities, models.IdentityItem{
		BaseItem: models.BaseItem{ID: "i1"},
		Images:   []models.DocumentImage{{Data: "a", Thumbnail: "b"}},
	})

	got := Normalize(data)

	require.Len(t, got.Identities[0].Images, 1)
	assert.Equal(t, data.Identities[0], got.Identities[0])
}

func TestNormalize_Idempotent(t *testing.T) {
	data := models.VaultData{
		Identities: []models.IdentityItem{{
			BaseItem:  models.BaseItem{ID: "i1"},
			Data:      "full-image",
			Thumbnail: "small-image",
		}},
	}

	once := Normalize(data)
	twice := Normalize(once.Clone())

	assert.Equal(t, once, twice)
}

func TestNormalize_NilCategories_DefaultToEmpty(t *testing.T) {
	got := Normalize(models.VaultData{})

	require.NotNil(t, got.Passwords)
	require.NotNil(t, got.Cards)
	require.NotNil(t, got.Links)
	require.NotNil(t, got.Notes)
	require.NotNil(t, got.Media)
	require.NotNil(t, got.Identities)
	assert.Zero(t, got.Total())
}

package vault

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarev/lockbox/models"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	data := models.NewVaultData()
	data.Passwords = append(data.Passwords, models.PasswordItem{
		BaseItem: models.BaseItem{ID: "p1", Title: "Example", CreatedAt: "2026-08-31T10:00:00Z"},
		Website:  "https://example.com",
		Username: "alice",
		Password: "s3cret",
	})
	data.Cards = append(data.Cards, models.CardItem{
		BaseItem:   models.BaseItem{ID: "c1", Title: "Main card"},
		CardHolder: "ALICE EXAMPLE",
		CardNumber: "4111111111111111",
		ExpiryDate: "12/28",
		CVV:        "123",
	})
	data.Media = append(data.Media, models.MediaItem{
		BaseItem: models.BaseItem{ID: "m1", Title: "Clip"},
		Type:     models.MediaVideo,
		Data:     "dmlkZW8=",
	})

	raw, err := Encode(data)
	require.NoError(t, err)

	// already valid standard base64
	_, err = base64.StdEncoding.DecodeString(raw)
	require.NoError(t, err)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestDecode_BadBase64_ReturnsErrParse(t *testing.T) {
	_, err := Decode("%%% not base64 %%%")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestDecode_BadJSON_ReturnsErrParse(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString([]byte("{not json"))

	_, err := Decode(raw)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestDecode_MissingCategories_DefaultToEmpty(t *testing.T) {
	// a document written before some categories existed
	raw := base64.StdEncoding.EncodeToString([]byte(`{"passwords":[{"id":"p1","title":"old"}]}`))

	got, err := Decode(raw)
	require.NoError(t, err)

	assert.Len(t, got.Passwords, 1)
	require.NotNil(t, got.Cards)
	require.NotNil(t, got.Links)
	require.NotNil(t, got.Notes)
	require.NotNil(t, got.Media)
	require.NotNil(t, got.Identities)
	assert.Empty(t, got.Cards)
}

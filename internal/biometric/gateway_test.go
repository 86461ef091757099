package biometric_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkarev/lockbox/internal/biometric"
	"github.com/mkarev/lockbox/internal/logger"
	"github.com/mkarev/lockbox/internal/mock"
	"github.com/mkarev/lockbox/internal/store"
)

func newTestGateway(t *testing.T, ctrl *gomock.Controller) (*biometric.Gateway, *mock.MockAuthenticator, *store.VaultStore) {
	t.Helper()
	auth := mock.NewMockAuthenticator(ctrl)
	vs := store.NewVaultStore(store.NewMemStore(), logger.Nop())
	return biometric.NewGateway(auth, vs, logger.Nop()), auth, vs
}

func TestGateway_Supported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw, auth, _ := newTestGateway(t, ctrl)
	auth.EXPECT().Available().Return(true)
	assert.True(t, gw.Supported())

	auth.EXPECT().Available().Return(false)
	assert.False(t, gw.Supported())

	vs := store.NewVaultStore(store.NewMemStore(), logger.Nop())
	assert.False(t, biometric.NewGateway(nil, vs, logger.Nop()).Supported())
}

func TestGateway_Register_StoresMapping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw, auth, vs := newTestGateway(t, ctrl)
	credID := []byte("credential-id-32-bytes-padding!!")

	auth.EXPECT().Available().Return(true)
	auth.EXPECT().
		CreateCredential(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts biometric.CreateOptions) ([]byte, error) {
			assert.Len(t, opts.Challenge, 32)
			assert.Len(t, opts.UserHandle, 32)
			assert.Equal(t, biometric.RelyingPartyName, opts.RelyingParty)
			assert.Equal(t, "user-vault-1", opts.UserName)
			return credID, nil
		})

	require.True(t, gw.Register(context.Background(), "vault-1"))

	creds := vs.CredentialMap()
	require.Len(t, creds, 1)
	assert.Equal(t, "vault-1", creds[base64.StdEncoding.EncodeToString(credID)])
	assert.True(t, gw.Enabled("vault-1"))
	assert.False(t, gw.Enabled("vault-2"))
}

func TestGateway_Register_EmptyVaultID_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw, _, _ := newTestGateway(t, ctrl)
	assert.False(t, gw.Register(context.Background(), ""))
}

func TestGateway_Register_PromptCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw, auth, vs := newTestGateway(t, ctrl)
	auth.EXPECT().Available().Return(true)
	auth.EXPECT().CreateCredential(gomock.Any(), gomock.Any()).Return(nil, biometric.ErrCancelled)

	assert.False(t, gw.Register(context.Background(), "vault-1"))
	assert.Empty(t, vs.CredentialMap())
}

func TestGateway_Authenticate_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw, auth, vs := newTestGateway(t, ctrl)
	credID := []byte("credential-id-32-bytes-padding!!")
	vs.SaveCredentialMap(map[string]string{
		base64.StdEncoding.EncodeToString(credID): "vault-1",
	})

	auth.EXPECT().Available().Return(true)
	auth.EXPECT().
		GetAssertion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts biometric.RequestOptions) ([]byte, error) {
			assert.Len(t, opts.Challenge, 32)
			require.Len(t, opts.AllowCredentialIDs, 1)
			assert.Equal(t, credID, opts.AllowCredentialIDs[0])
			return credID, nil
		})

	vaultID, ok := gw.Authenticate(context.Background())
	require.True(t, ok)
	assert.Equal(t, "vault-1", vaultID)
}

func TestGateway_Authenticate_NoCredentials_NoPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw, auth, _ := newTestGateway(t, ctrl)
	auth.EXPECT().Available().Return(true)
	// no GetAssertion expectation: an empty map must not prompt

	_, ok := gw.Authenticate(context.Background())
	assert.False(t, ok)
}

func TestGateway_Authenticate_UnknownCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw, auth, vs := newTestGateway(t, ctrl)
	vs.SaveCredentialMap(map[string]string{
		base64.StdEncoding.EncodeToString([]byte("enrolled")): "vault-1",
	})

	auth.EXPECT().Available().Return(true)
	auth.EXPECT().GetAssertion(gomock.Any(), gomock.Any()).Return([]byte("someone-else"), nil)

	_, ok := gw.Authenticate(context.Background())
	assert.False(t, ok)
}

func TestGateway_Authenticate_AssertionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gw, auth, vs := newTestGateway(t, ctrl)
	vs.SaveCredentialMap(map[string]string{
		base64.StdEncoding.EncodeToString([]byte("enrolled")): "vault-1",
	})

	auth.EXPECT().Available().Return(true)
	auth.EXPECT().GetAssertion(gomock.Any(), gomock.Any()).Return(nil, errors.New("verification failed"))

	_, ok := gw.Authenticate(context.Background())
	assert.False(t, ok)
}

package biometric

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarev/lockbox/internal/crypto"
	"github.com/mkarev/lockbox/internal/logger"
	"github.com/mkarev/lockbox/internal/store"
)

func staticPin(pin string) PinPrompt {
	return func(context.Context, string) (string, error) { return pin, nil }
}

func TestLocalAuthenticator_Available(t *testing.T) {
	kc := crypto.NewKeyChain()

	a := NewLocalAuthenticator(t.TempDir(), kc, staticPin("1234"), logger.Nop())
	assert.True(t, a.Available())

	assert.False(t, NewLocalAuthenticator("", kc, staticPin("1234"), logger.Nop()).Available())
	assert.False(t, NewLocalAuthenticator(t.TempDir(), kc, nil, logger.Nop()).Available())
}

func TestLocalAuthenticator_CreateAndAssert(t *testing.T) {
	dir := t.TempDir()
	kc := crypto.NewKeyChain()
	a := NewLocalAuthenticator(dir, kc, staticPin("1234"), logger.Nop())

	credID, err := a.CreateCredential(context.Background(), CreateOptions{
		RelyingParty: RelyingPartyName,
		UserName:     "user-vault-1",
	})
	require.NoError(t, err)
	assert.Len(t, credID, 32)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got, err := a.GetAssertion(context.Background(), RequestOptions{
		AllowCredentialIDs: [][]byte{credID},
	})
	require.NoError(t, err)
	assert.Equal(t, credID, got)
}

func TestLocalAuthenticator_WrongPin_Fails(t *testing.T) {
	dir := t.TempDir()
	kc := crypto.NewKeyChain()

	enroll := NewLocalAuthenticator(dir, kc, staticPin("1234"), logger.Nop())
	credID, err := enroll.CreateCredential(context.Background(), CreateOptions{})
	require.NoError(t, err)

	verify := NewLocalAuthenticator(dir, kc, staticPin("9999"), logger.Nop())
	_, err = verify.GetAssertion(context.Background(), RequestOptions{
		AllowCredentialIDs: [][]byte{credID},
	})
	assert.Error(t, err)
}

func TestLocalAuthenticator_NotInAllowList_Fails(t *testing.T) {
	dir := t.TempDir()
	kc := crypto.NewKeyChain()
	a := NewLocalAuthenticator(dir, kc, staticPin("1234"), logger.Nop())

	_, err := a.CreateCredential(context.Background(), CreateOptions{})
	require.NoError(t, err)

	_, err = a.GetAssertion(context.Background(), RequestOptions{
		AllowCredentialIDs: [][]byte{[]byte("a-different-credential")},
	})
	assert.Error(t, err)
}

func TestLocalAuthenticator_PromptCancelled(t *testing.T) {
	dir := t.TempDir()
	kc := crypto.NewKeyChain()
	cancelled := func(context.Context, string) (string, error) { return "", ErrCancelled }
	a := NewLocalAuthenticator(dir, kc, cancelled, logger.Nop())

	_, err := a.CreateCredential(context.Background(), CreateOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestLocalAuthenticator_MultipleCredentials(t *testing.T) {
	dir := t.TempDir()
	kc := crypto.NewKeyChain()
	a := NewLocalAuthenticator(dir, kc, staticPin("1234"), logger.Nop())

	first, err := a.CreateCredential(context.Background(), CreateOptions{})
	require.NoError(t, err)
	second, err := a.CreateCredential(context.Background(), CreateOptions{})
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	got, err := a.GetAssertion(context.Background(), RequestOptions{
		AllowCredentialIDs: [][]byte{second},
	})
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

// TestGateway_WithLocalAuthenticator_FreshSession enrolls a credential
// through one gateway, then resolves it through a second gateway built over
// the same storage and credential directory, the way a process restart
// would.
func TestGateway_WithLocalAuthenticator_FreshSession(t *testing.T) {
	dir := t.TempDir()
	kc := crypto.NewKeyChain()
	kv := store.NewMemStore()

	vs := store.NewVaultStore(kv, logger.Nop())
	auth := NewLocalAuthenticator(dir, kc, staticPin("1234"), logger.Nop())
	gw := NewGateway(auth, vs, logger.Nop())
	require.True(t, gw.Register(context.Background(), "vault-1"))

	freshVS := store.NewVaultStore(kv, logger.Nop())
	freshAuth := NewLocalAuthenticator(dir, kc, staticPin("1234"), logger.Nop())
	fresh := NewGateway(freshAuth, freshVS, logger.Nop())

	vaultID, ok := fresh.Authenticate(context.Background())
	require.True(t, ok)
	assert.Equal(t, "vault-1", vaultID)
}

func TestLocalAuthenticator_GetAssertion_CancelBeforeReading(t *testing.T) {
	dir := t.TempDir()
	kc := crypto.NewKeyChain()

	enroll := NewLocalAuthenticator(dir, kc, staticPin("1234"), logger.Nop())
	credID, err := enroll.CreateCredential(context.Background(), CreateOptions{})
	require.NoError(t, err)

	cancelled := func(context.Context, string) (string, error) { return "", ErrCancelled }
	verify := NewLocalAuthenticator(dir, kc, cancelled, logger.Nop())
	_, err = verify.GetAssertion(context.Background(), RequestOptions{
		AllowCredentialIDs: [][]byte{credID},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCancelled))
}

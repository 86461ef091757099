package biometric

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/authenticator_mock.go -package=mock

// CreateOptions are the parameters for enrolling a new platform credential.
// Challenge and UserHandle are freshly random per call; reusing either
// would allow replay.
type CreateOptions struct {
	// Challenge is a fresh 32-byte random value for this registration.
	Challenge []byte

	// RelyingParty is the human-readable application name presented by the
	// platform prompt.
	RelyingParty string

	// UserHandle is a fresh 32-byte random identifier for the enrolled
	// user entry.
	UserHandle []byte

	// UserName is the display account name, derived from the vault
	// identifier.
	UserName string
}

// RequestOptions are the parameters for requesting an assertion from an
// already-enrolled credential.
type RequestOptions struct {
	// Challenge is a fresh 32-byte random value for this assertion.
	Challenge []byte

	// AllowCredentialIDs restrains the prompt to the listed credential
	// IDs. It is never empty; the gateway short-circuits before prompting
	// when no credentials are known.
	AllowCredentialIDs [][]byte
}

// Authenticator is the platform credential contract the gateway builds on:
// the subset of a WebAuthn-style API the vault logic needs. Implementations
// wrap an actual platform capability (or a local stand-in) and surface user
// cancellation as a plain error.
type Authenticator interface {
	// Available reports whether the platform credential capability is
	// present.
	Available() bool

	// CreateCredential enrolls a new credential and returns its opaque
	// credential ID. Blocks on the platform prompt; an error covers
	// platform failure and user cancellation alike.
	CreateCredential(ctx context.Context, opts CreateOptions) ([]byte, error)

	// GetAssertion asks the platform to prove presence of one of the
	// allowed credentials and returns the asserted credential ID.
	GetAssertion(ctx context.Context, opts RequestOptions) ([]byte, error)
}

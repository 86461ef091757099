package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain provides the key derivation and sealing primitives used to
// protect the local authenticator's credential files. It knows nothing
// about vaults or storage.
//
// Scheme:
//
//	salt = GenerateSalt()
//	key  = DeriveKey(pin, salt)
//	blob = Seal(secret, key)        // stored on disk next to salt
//	secret = Open(blob, key)        // fails on wrong pin
type KeyChain interface {
	// GenerateSalt returns a fresh random 16-byte salt. The salt is not a
	// secret and is stored in the clear beside the sealed blob.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 256-bit key from pin and salt via Argon2id.
	DeriveKey(pin string, salt []byte) []byte

	// Seal encrypts plaintext with key using AES-256-GCM. The returned
	// blob is nonce ‖ ciphertext.
	Seal(plaintext, key []byte) ([]byte, error)

	// Open decrypts a blob produced by Seal. It fails when the key is
	// wrong or the blob is corrupted (authentication-tag mismatch).
	Open(blob, key []byte) ([]byte, error)
}

package vault

import "errors"

var (
	// ErrParse marks a stored record or backup document that could not be
	// decoded. It is distinct from a plain "not found" / "key absent"
	// result, which is reported through boolean returns.
	ErrParse = errors.New("vault data parse failure")

	// ErrNotUnlocked is returned by operations that require an unlocked
	// vault.
	ErrNotUnlocked = errors.New("no vault is unlocked")
)

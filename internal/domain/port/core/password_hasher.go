package core

// PasswordHasher hashes and verifies user passwords
type PasswordHasher interface {
	// Hash returns a salted one-way hash of the plain password
	Hash(plain string) (string, error)
	// Compare reports whether plain matches the stored hash
	Compare(hash, plain string) bool
}

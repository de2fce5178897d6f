package service

// PasswordHasher abstracts the hashing algorithm behind the operator
// login gate so the domain stays free of crypto details.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool
}

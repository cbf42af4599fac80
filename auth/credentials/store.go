package credentials

// Store holds the static username/password table. It is read-only
// after construction and safe for concurrent use.
type Store struct {
	users map[string]string
}

// Defaults returns the built-in credential table.
func Defaults() map[string]string {
	return map[string]string{
		"admin": "admin123",
		"user":  "user123",
		"test":  "test123",
	}
}

// NewStore creates a store from the given table. The map is copied so
// the store stays immutable even if the caller mutates its argument.
func NewStore(users map[string]string) *Store {
	copied := make(map[string]string, len(users))
	for username, password := range users {
		copied[username] = password
	}
	return &Store{users: copied}
}

// Authenticate reports whether the pair matches a known credential.
// Comparison is exact and case-sensitive on both fields.
func (s *Store) Authenticate(username, password string) bool {
	stored, ok := s.users[username]
	return ok && stored == password
}

package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_Authenticate_KnownPairs(t *testing.T) {
	store := NewStore(Defaults())

	for username, password := range Defaults() {
		assert.True(t, store.Authenticate(username, password), "pair %s should authenticate", username)
	}
}

func TestStore_Authenticate_RejectsUnknownPairs(t *testing.T) {
	store := NewStore(Defaults())

	assert.False(t, store.Authenticate("admin", "wrong"))
	assert.False(t, store.Authenticate("nobody", "admin123"))
	assert.False(t, store.Authenticate("", ""))
	// case-sensitive on both fields
	assert.False(t, store.Authenticate("Admin", "admin123"))
	assert.False(t, store.Authenticate("admin", "Admin123"))
}

func TestStore_ImmutableAfterConstruction(t *testing.T) {
	table := map[string]string{"alice": "secret"}
	store := NewStore(table)

	table["alice"] = "changed"
	table["mallory"] = "sneaky"

	assert.True(t, store.Authenticate("alice", "secret"))
	assert.False(t, store.Authenticate("alice", "changed"))
	assert.False(t, store.Authenticate("mallory", "sneaky"))
}

package redis

import (
	"fmt"

	"github.com/MrSnakeDoc/alumnet/internal/store"
)

// KeyPrefixCollection is the prefix for collection keys
const KeyPrefixCollection = "alumnet:collection:"

// CollectionKey returns the Redis key holding a collection's JSON array
func CollectionKey(c store.Collection) string {
	return KeyPrefixCollection + string(c)
}

// ExtractCollection extracts the collection name from a Redis key
func ExtractCollection(key string) (store.Collection, error) {
	if len(key) <= len(KeyPrefixCollection) || key[:len(KeyPrefixCollection)] != KeyPrefixCollection {
		return "", fmt.Errorf("invalid collection key: %s", key)
	}
	return store.Collection(key[len(KeyPrefixCollection):]), nil
}

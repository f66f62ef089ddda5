package cache

import "fmt"

func errInvalidCacheSize(size int) error {
	return fmt.Errorf("cache size must be positive, got %d", size)
}

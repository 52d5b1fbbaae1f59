package graph

import (
	"fmt"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash returns a 64-bit keyed content hash of data
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// Fingerprint returns the content hash as a fixed-width hex string,
// suitable for embedding in reports and file snapshots
func Fingerprint(data []byte) string {
	sum, err := Hash(data)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%016x", sum)
}

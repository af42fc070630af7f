package project

import (
	"strings"

	"github.com/minio/highwayhash"
)

// fingerprintKey seeds the index fingerprint; changing it invalidates
// every previously written index cache.
var fingerprintKey = []byte("importlint.index.fingerprint.v01")

// fingerprintOf hashes a sorted module list into a single value. The
// index cache records it and rejects entries that no longer match
// their module list.
func fingerprintOf(modules []string) uint64 {
	return highwayhash.Sum64([]byte(strings.Join(modules, "\n")), fingerprintKey)
}

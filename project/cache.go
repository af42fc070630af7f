package project

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/afs"
)

const cacheHeader = "importlint-index/1"

// SaveIndex writes the module index to a cache file: a header line,
// the fingerprint, then one dotted module path per line.
func SaveIndex(index *Index, URL string) error {
	var buffer bytes.Buffer
	fmt.Fprintf(&buffer, "%s\n%016x\n", cacheHeader, index.Fingerprint())
	for _, module := range index.Modules() {
		buffer.WriteString(module)
		buffer.WriteByte('\n')
	}
	fs := afs.New()
	return fs.Upload(context.Background(), URL, 0o644, &buffer)
}

// LoadIndex reads a previously saved module index. A cache whose
// recorded fingerprint does not match its module list is rejected; the
// caller falls back to a fresh tree walk.
func LoadIndex(URL string) (*Index, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(context.Background(), URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read index cache %s: %w", URL, err)
	}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	if !scanner.Scan() || scanner.Text() != cacheHeader {
		return nil, fmt.Errorf("unrecognized index cache format in %s", URL)
	}
	if !scanner.Scan() {
		return nil, fmt.Errorf("index cache %s misses a fingerprint", URL)
	}
	recorded, err := strconv.ParseUint(scanner.Text(), 16, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed fingerprint in index cache %s: %w", URL, err)
	}
	result := &Index{modules: map[string]struct{}{}}
	for scanner.Scan() {
		if module := strings.TrimSpace(scanner.Text()); module != "" {
			result.modules[module] = struct{}{}
		}
	}
	result.refreshFingerprint()
	if result.fingerprint != recorded {
		return nil, fmt.Errorf("index cache %s is stale or corrupted", URL)
	}
	return result, nil
}

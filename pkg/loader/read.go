package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"golang.org/x/exp/mmap"
)

// SnappyExt marks snappy-compressed input files.
const SnappyExt = ".sz"

// ReadFile reads a data file through a memory mapping, decompressing it
// when the name ends in ".sz".
func ReadFile(path string) ([]byte, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer reader.Close()

	data := make([]byte, reader.Len())
	if len(data) > 0 {
		if _, err := reader.ReadAt(data, 0); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	if !strings.EqualFold(filepath.Ext(path), SnappyExt) {
		return data, nil
	}
	decoded, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	return decoded, nil
}

// format returns the data format of path, ignoring a compression suffix.
func format(path string) string {
	name := strings.ToLower(path)
	name = strings.TrimSuffix(name, SnappyExt)
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		return "text"
	}
}

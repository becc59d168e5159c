package reel

import (
	"crypto/md5"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Dedup removes PNGs in fs whose bytes hash identically to an earlier
// file. Names are visited in sorted order so the survivor is stable
// across runs. Returns the removed names.
func Dedup(fs afero.Fs, logger *zap.Logger) ([]string, error) {
	infos, err := afero.ReadDir(fs, ".")
	if err != nil {
		return nil, fmt.Errorf("read dir failed: %w", err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(info.Name()), ".png") {
			continue
		}
		names = append(names, info.Name())
	}
	sort.Strings(names)

	seen := make(map[[md5.Size]byte]string, len(names))
	var removed []string

	for _, name := range names {
		bs, err := afero.ReadFile(fs, name)
		if err != nil {
			return removed, fmt.Errorf("read %s failed: %w", name, err)
		}

		sum := md5.Sum(bs)
		if first, ok := seen[sum]; ok {
			if err := fs.Remove(name); err != nil {
				return removed, fmt.Errorf("remove %s failed: %w", name, err)
			}
			logger.With(zap.String("file", name), zap.String("kept", first)).Info("removed duplicate")
			removed = append(removed, name)
			continue
		}
		seen[sum] = name
	}

	return removed, nil
}

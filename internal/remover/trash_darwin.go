//go:build darwin

package remover

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// trash moves path into ~/.Trash, deduplicating names the way Finder does.
func trash(path string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("locate home directory: %w", err)
	}
	trashDir := filepath.Join(home, ".Trash")

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	target := filepath.Join(trashDir, base)
	for i := 2; ; i++ {
		if _, err := os.Lstat(target); os.IsNotExist(err) {
			break
		}
		target = filepath.Join(trashDir, fmt.Sprintf("%s %d%s", stem, i, ext))
	}

	return os.Rename(path, target)
}

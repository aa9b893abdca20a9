//go:build linux

package remover

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// trash moves path into the freedesktop.org trash
// ($XDG_DATA_HOME/Trash, default ~/.local/share/Trash), writing the
// .trashinfo record before moving the file.
func trash(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return fmt.Errorf("locate home directory: %w", herr)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	filesDir := filepath.Join(dataHome, "Trash", "files")
	infoDir := filepath.Join(dataHome, "Trash", "info")
	for _, dir := range []string{filesDir, infoDir} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("create trash directory: %w", err)
		}
	}

	base := filepath.Base(abs)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	name := base
	target := filepath.Join(filesDir, name)
	for i := 2; ; i++ {
		if _, err := os.Lstat(target); os.IsNotExist(err) {
			break
		}
		name = fmt.Sprintf("%s.%d%s", stem, i, ext)
		target = filepath.Join(filesDir, name)
	}

	info := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		abs, time.Now().Format("2006-01-02T15:04:05"))
	infoPath := filepath.Join(infoDir, name+".trashinfo")
	if err := os.WriteFile(infoPath, []byte(info), 0600); err != nil {
		return fmt.Errorf("write trash info: %w", err)
	}

	if err := os.Rename(abs, target); err != nil {
		os.Remove(infoPath)
		return err
	}
	return nil
}

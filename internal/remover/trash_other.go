//go:build !darwin && !linux

package remover

import "os"

// No user trash convention on this platform; removal is permanent.
func trash(path string) error {
	return os.Remove(path)
}

//go:build unix

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/projecteur/projecteur/util/log"
)

// instanceLock is an exclusive flock on a file in the temp directory.
type instanceLock struct {
	file *os.File
}

// acquireLock tries to take the single-instance lock for name. acquired is
// false when another process holds it.
func acquireLock(name string) (lock *instanceLock, acquired bool, err error) {
	path := filepath.Join(os.TempDir(), strings.ToLower(name)+".lock")
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		file.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to acquire lock: %w", err)
	}

	return &instanceLock{file: file}, true, nil
}

// release drops the lock. Safe on a nil lock.
func (l *instanceLock) release() {
	if l == nil || l.file == nil {
		return
	}
	if err := unix.Flock(int(l.file.Fd()), unix.LOCK_UN); err != nil {
		log.Printf("Failed to unlock %s: %v", l.file.Name(), err)
	}
	l.file.Close()
	l.file = nil
}

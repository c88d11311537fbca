//go:build windows

package main

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/projecteur/projecteur/util/log"
)

// instanceLock is a named mutex.
type instanceLock struct {
	handle windows.Handle
}

// acquireLock tries to take the single-instance lock for name. acquired is
// false when another process holds it.
func acquireLock(name string) (lock *instanceLock, acquired bool, err error) {
	namePtr, err := windows.UTF16PtrFromString(name + "_SingleInstanceMutex")
	if err != nil {
		return nil, false, err
	}

	handle, err := windows.CreateMutex(nil, false, namePtr)
	if err != nil {
		if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
			windows.CloseHandle(handle)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to create mutex: %w", err)
	}

	return &instanceLock{handle: handle}, true, nil
}

// release drops the lock. Safe on a nil lock.
func (l *instanceLock) release() {
	if l == nil || l.handle == 0 {
		return
	}
	if err := windows.CloseHandle(l.handle); err != nil {
		log.Printf("Failed to close mutex handle: %v", err)
	}
	l.handle = 0
}

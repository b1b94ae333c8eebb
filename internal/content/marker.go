// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// SessionMarker persists the authenticated flag between sessions.
type SessionMarker interface {
	Present() (bool, error)
	Set() error
	Clear() error
}

// MemoryMarker keeps the flag in memory only.
type MemoryMarker struct {
	mu  sync.Mutex
	set bool
}

func (m *MemoryMarker) Present() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.set, nil
}

func (m *MemoryMarker) Set() error {
	m.mu.Lock()
	m.set = true
	m.mu.Unlock()
	return nil
}

func (m *MemoryMarker) Clear() error {
	m.mu.Lock()
	m.set = false
	m.mu.Unlock()
	return nil
}

// FileMarker stores the flag as the existence of a file.
type FileMarker struct {
	Path string
}

func (f FileMarker) Present() (bool, error) {
	_, err := os.Stat(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat session marker: %w", err)
	}
	return true, nil
}

func (f FileMarker) Set() error {
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session marker dir: %w", err)
		}
	}
	if err := os.WriteFile(f.Path, []byte("admin\n"), 0o600); err != nil {
		return fmt.Errorf("write session marker: %w", err)
	}
	return nil
}

func (f FileMarker) Clear() error {
	err := os.Remove(f.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session marker: %w", err)
	}
	return nil
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"hamour/internal/gateway"
)

// Disk stores images under a local directory that the HTTP server exposes
// at urlPrefix.
type Disk struct {
	dir       string
	urlPrefix string
}

var _ gateway.ImageStore = (*Disk)(nil)

// NewDisk creates dir if needed and returns a Disk store.
func NewDisk(dir, urlPrefix string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("disk storage mkdir %s: %w", dir, err)
	}
	return &Disk{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

// Dir returns the directory files are written to.
func (d *Disk) Dir() string { return d.dir }

// Put writes data to dir/key and returns urlPrefix/key.
func (d *Disk) Put(_ context.Context, key, _ string, data []byte) (string, error) {
	clean := path.Clean("/" + key)[1:]
	if clean == "" || clean != key {
		return "", fmt.Errorf("disk storage: invalid key %q", key)
	}

	target := filepath.Join(d.dir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("disk storage mkdir: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("disk storage write %s: %w", clean, err)
	}
	return d.urlPrefix + "/" + clean, nil
}

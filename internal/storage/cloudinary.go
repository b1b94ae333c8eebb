// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"

	"hamour/internal/gateway"
)

// Cloudinary stores images in a Cloudinary account. The directory part of
// the key becomes the Cloudinary folder, the base name without extension
// the public id.
type Cloudinary struct {
	uploader *uploader.API
}

var _ gateway.ImageStore = (*Cloudinary)(nil)

// NewCloudinary builds a store from the cloud name, API key and secret.
func NewCloudinary(cloudName, apiKey, apiSecret string) (*Cloudinary, error) {
	cfg, err := config.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config: %w", err)
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, fmt.Errorf("cloudinary uploader: %w", err)
	}
	return &Cloudinary{uploader: up}, nil
}

// Put uploads data and returns the secure delivery URL.
func (c *Cloudinary) Put(ctx context.Context, key, _ string, data []byte) (string, error) {
	folder, publicID := splitKey(key)
	result, err := c.uploader.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:   folder,
		PublicID: publicID,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload %s: %w", key, err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload %s: %s", key, result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload %s: empty url in response", key)
	}
	return result.SecureURL, nil
}

// splitKey turns "showcase/abc.png" into ("showcase", "abc").
func splitKey(key string) (folder, publicID string) {
	folder, file := path.Split(key)
	return strings.TrimSuffix(folder, "/"), strings.TrimSuffix(file, path.Ext(file))
}

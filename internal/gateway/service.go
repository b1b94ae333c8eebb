// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"hamour/internal/models"
	"hamour/internal/slug"
)

// DefaultFolder is used when an upload has no usable folder hint.
const DefaultFolder = "general"

// allowedImageTypes are the content types UploadImage accepts.
var allowedImageTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// Service implements Gateway on top of one Records adapter and one
// ImageStore. images may be nil, in which case every upload fails with
// ErrUpload.
type Service struct {
	records Records
	images  ImageStore
	newName func() string
}

// New creates a Service.
func New(records Records, images ImageStore) *Service {
	return &Service{
		records: records,
		images:  images,
		newName: uuid.NewString,
	}
}

var _ Gateway = (*Service)(nil)

// GetSettings returns the stored settings document.
func (s *Service) GetSettings(ctx context.Context) (models.SiteSettings, error) {
	settings, err := s.records.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.SiteSettings{}, &Error{Kind: ErrNotFound, Op: "get settings"}
		}
		return models.SiteSettings{}, s.fail(ErrRead, "get settings", err)
	}
	return settings, nil
}

// UpdateSettings shallow-merges patch into the stored settings and returns
// the merged document.
func (s *Service) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.SiteSettings, error) {
	settings, err := s.records.UpdateSettings(ctx, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.SiteSettings{}, &Error{Kind: ErrNotFound, Op: "update settings"}
		}
		return models.SiteSettings{}, s.fail(ErrWrite, "update settings", err)
	}
	return settings, nil
}

// ListNews returns every news item, newest first.
func (s *Service) ListNews(ctx context.Context) ([]models.NewsItem, error) {
	items, err := s.records.ListNews(ctx)
	if err != nil {
		return nil, s.fail(ErrRead, "list news", err)
	}
	return items, nil
}

// AddNews validates and stores a news draft. A draft without a thumbnail
// never reaches the backend.
func (s *Service) AddNews(ctx context.Context, draft models.NewsDraft) (models.NewsItem, error) {
	if err := draft.Validate(); err != nil {
		return models.NewsItem{}, &Error{Kind: ErrValidation, Op: "add news", Err: err}
	}
	item, err := s.records.AddNews(ctx, draft)
	if err != nil {
		return models.NewsItem{}, s.fail(ErrWrite, "add news", err)
	}
	return item, nil
}

// DeleteNews removes a news item. Unknown ids are not an error.
func (s *Service) DeleteNews(ctx context.Context, id string) error {
	if err := s.records.DeleteNews(ctx, id); err != nil {
		return s.fail(ErrWrite, "delete news", err)
	}
	return nil
}

// ListTickets returns every support ticket, newest first.
func (s *Service) ListTickets(ctx context.Context) ([]models.SupportTicket, error) {
	tickets, err := s.records.ListTickets(ctx)
	if err != nil {
		return nil, s.fail(ErrRead, "list tickets", err)
	}
	return tickets, nil
}

// SubmitTicket stores a support ticket.
func (s *Service) SubmitTicket(ctx context.Context, draft models.TicketDraft) (models.SupportTicket, error) {
	ticket, err := s.records.SubmitTicket(ctx, draft)
	if err != nil {
		return models.SupportTicket{}, s.fail(ErrWrite, "submit ticket", err)
	}
	return ticket, nil
}

// DeleteTicket removes a ticket. Unknown ids are not an error.
func (s *Service) DeleteTicket(ctx context.Context, id int64) error {
	if err := s.records.DeleteTicket(ctx, id); err != nil {
		return s.fail(ErrWrite, "delete ticket", err)
	}
	return nil
}

// UploadImage sniffs the content type of data, stores it under
// "<folder>/<uuid><ext>", and returns the public URL.
func (s *Service) UploadImage(ctx context.Context, data []byte, filename, folder string) (string, error) {
	if len(data) == 0 {
		return "", &Error{Kind: ErrValidation, Op: "upload image", Err: errors.New("empty file")}
	}

	contentType := DetectImageType(data, filename)
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", &Error{Kind: ErrValidation, Op: "upload image", Err: fmt.Errorf("file type %q is not allowed", contentType)}
	}

	if s.images == nil {
		return "", s.fail(ErrUpload, "upload image", errors.New("image storage is not configured"))
	}

	key := s.ObjectKey(folder, filename, ext)
	url, err := s.images.Put(ctx, key, contentType, data)
	if err != nil {
		return "", s.fail(ErrUpload, "upload image", err)
	}

	slog.Info("image uploaded", "key", key, "size", len(data), "content_type", contentType)
	return url, nil
}

// ObjectKey builds the storage key for an upload. The original file
// extension is kept when it has one; fallbackExt is used otherwise.
func (s *Service) ObjectKey(folder, filename, fallbackExt string) string {
	dir := slug.Folder(folder)
	if dir == "" {
		dir = DefaultFolder
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" || len(ext) > 6 {
		ext = fallbackExt
	}
	return dir + "/" + s.newName() + ext
}

// DetectImageType sniffs the content type of an upload. SVG files sniff
// as XML or plain text, so the file name decides for those.
func DetectImageType(data []byte, filename string) string {
	contentType := http.DetectContentType(data)
	if strings.HasSuffix(strings.ToLower(filename), ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		return "image/svg+xml"
	}
	return contentType
}

func (s *Service) fail(kind error, op string, err error) error {
	gerr := Fail(kind, op, err)
	slog.Error("gateway operation failed", "op", op, "error", err)
	return gerr
}

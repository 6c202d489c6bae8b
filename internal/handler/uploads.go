package handler

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	apperrors "eduportal/internal/errors"
	"eduportal/internal/metrics"
	"eduportal/internal/upload"
)

// uploadBatch holds the files saved for one request, keyed by form field.
type uploadBatch struct {
	store  *upload.Store
	logger *logrus.Logger
	paths  map[string]string
}

// receiveUploads accepts every file of a multipart request against the
// allowed fields, then saves them. Nothing is written unless every file is
// accepted. Non-multipart requests yield an empty batch.
func receiveUploads(c echo.Context, store *upload.Store, logger *logrus.Logger, allowed ...string) (*uploadBatch, error) {
	batch := &uploadBatch{store: store, logger: logger, paths: map[string]string{}}
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return batch, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	accepted := map[string]*multipart.FileHeader{}
	for field, files := range form.File {
		if len(files) == 0 {
			continue
		}
		if !contains(allowed, field) {
			metrics.RecordUpload(field, "rejected")
			return nil, &apperrors.UploadRejectedError{Field: field, Message: fmt.Sprintf("Unexpected file field %q", field)}
		}
		if len(files) > 1 {
			metrics.RecordUpload(field, "rejected")
			return nil, &apperrors.UploadRejectedError{Field: field, Message: fmt.Sprintf("Only one file allowed for %q", field)}
		}
		if err := store.Accept(field, files[0]); err != nil {
			metrics.RecordUpload(field, "rejected")
			return nil, err
		}
		accepted[field] = files[0]
	}

	for field, fh := range accepted {
		webPath, err := store.Save(field, fh)
		if err != nil {
			metrics.RecordUpload(field, "failed")
			batch.discard()
			return nil, err
		}
		metrics.RecordUpload(field, "saved")
		batch.paths[field] = webPath
	}
	return batch, nil
}

// path returns the stored web path for field, if a file was uploaded.
func (b *uploadBatch) path(field string) (string, bool) {
	p, found := b.paths[field]
	return p, found
}

// discard removes every file saved for the request.
func (b *uploadBatch) discard() {
	for field, p := range b.paths {
		if err := b.store.Remove(p); err != nil {
			b.logger.WithError(err).WithField("path", p).Warn("failed to remove orphaned upload")
			continue
		}
		metrics.RecordUpload(field, "removed")
	}
	b.paths = map[string]string{}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "eduportal/internal/errors"
)

// Field names accepted by the admin content forms.
const (
	FieldImage     = "image"
	FieldThumbnail = "thumbnail"
	FieldVideo     = "video"
)

// Rule maps an upload field to its destination directory and accepted MIME prefix.
type Rule struct {
	Dir        string // subdirectory of the uploads root
	MIMEPrefix string
	Rejection  string
}

// DefaultRules routes images and thumbnails to images/ and videos to videos/.
var DefaultRules = map[string]Rule{
	FieldImage:     {Dir: "images", MIMEPrefix: "image/", Rejection: "Only image files are allowed"},
	FieldThumbnail: {Dir: "images", MIMEPrefix: "image/", Rejection: "Only image files are allowed"},
	FieldVideo:     {Dir: "videos", MIMEPrefix: "video/", Rejection: "Only video files are allowed"},
}

// Store writes accepted uploads below root and hands back web-relative paths
// under urlPrefix.
type Store struct {
	root      string
	urlPrefix string
	maxSize   int64
	rules     map[string]Rule
	now       func() time.Time
}

// NewStore creates the per-rule directories below root.
func NewStore(root, urlPrefix string, maxSize int64, rules map[string]Rule) (*Store, error) {
	for _, rule := range rules {
		if err := os.MkdirAll(filepath.Join(root, rule.Dir), 0o755); err != nil {
			return nil, fmt.Errorf("create upload directory: %w", err)
		}
	}
	return &Store{
		root:      root,
		urlPrefix: urlPrefix,
		maxSize:   maxSize,
		rules:     rules,
		now:       time.Now,
	}, nil
}

// Root returns the filesystem root served at the URL prefix.
func (s *Store) Root() string {
	return s.root
}

// Accept checks a file against its field rule without writing anything.
func (s *Store) Accept(field string, fh *multipart.FileHeader) error {
	rule, ok := s.rules[field]
	if !ok {
		return &apperrors.UploadRejectedError{Field: field, Message: fmt.Sprintf("Unexpected file field %q", field)}
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), rule.MIMEPrefix) {
		return &apperrors.UploadRejectedError{Field: field, Message: rule.Rejection}
	}
	if s.maxSize > 0 && fh.Size > s.maxSize {
		return &apperrors.UploadRejectedError{Field: field, Message: "File too large"}
	}
	return nil
}

// Save accepts and persists the file, returning its web-relative path.
func (s *Store) Save(field string, fh *multipart.FileHeader) (string, error) {
	if err := s.Accept(field, fh); err != nil {
		return "", err
	}
	rule := s.rules[field]
	name := s.fileName(field, fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, rule.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("copy file: %w", err)
	}
	return path.Join(s.urlPrefix, rule.Dir, name), nil
}

// Remove deletes a file previously returned by Save. Paths outside the
// store are ignored.
func (s *Store) Remove(webPath string) error {
	rel, ok := strings.CutPrefix(webPath, s.urlPrefix+"/")
	if !ok || strings.Contains(rel, "..") {
		return nil
	}
	if err := os.Remove(filepath.Join(s.root, filepath.FromSlash(rel))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// fileName builds <field>-<unix millis>-<random><ext>.
func (s *Store) fileName(field, original string) string {
	ext := filepath.Ext(original)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s-%d-%s%s", field, s.now().UnixMilli(), suffix, ext)
}

package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// MaxResumeSize is the upload ceiling for resume files
const MaxResumeSize = 10 * 1024 * 1024

// Rejections surfaced verbatim to the client
var (
	ErrResumeType     = errors.New("Invalid file type. Allowed: pdf, doc, docx, txt")
	ErrResumeTooLarge = errors.New("Resume file exceeds 10MB limit")
)

var allowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
}

var (
	baseNamePattern = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)
	edgeDashes      = regexp.MustCompile(`^-+|-+$`)
)

// StoredFile describes one resume written to the upload directory
type StoredFile struct {
	// Name is the filename on disk
	Name string
	// PublicPath is the relative URL the file is served under
	PublicPath string
	Size       int64
}

// UploadService writes resume uploads to a durable directory and hands the
// public path to the validation pipeline.
type UploadService struct {
	dir string
}

// NewUploadService creates the upload directory when missing
func NewUploadService(dir string) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &UploadService{dir: dir}, nil
}

// Dir returns the directory uploads are written to
func (u *UploadService) Dir() string {
	return u.dir
}

// SaveResume validates the attachment and writes it to disk under a unique
// name. Type and size violations reject the whole submission before any row
// is written.
func (u *UploadService) SaveResume(fileHeader *multipart.FileHeader) (*StoredFile, error) {
	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedResumeTypes[contentType] {
		return nil, ErrResumeType
	}
	if fileHeader.Size > MaxResumeSize {
		return nil, ErrResumeTooLarge
	}

	name := storedFileName(fileHeader.Filename)

	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	return &StoredFile{
		Name:       name,
		PublicPath: "/uploads/" + name,
		Size:       fileHeader.Size,
	}, nil
}

// storedFileName builds "<unix-millis>-<sanitized-base><ext>". The timestamp
// keeps names unique, the sanitized base keeps them readable.
func storedFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), sanitizeBaseName(original), ext)
}

func sanitizeBaseName(original string) string {
	base := filepath.Base(original)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = baseNamePattern.ReplaceAllString(base, "-")
	base = edgeDashes.ReplaceAllString(base, "")
	if base == "" {
		base = "file"
	}
	return base
}

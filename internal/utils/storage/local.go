package storage

import (
	"Burger-App-Backend/domain"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type localStorage struct {
	dir     string // directory served statically at /uploads
	baseURL string // public URL prefix, e.g. http://localhost:5000
}

func NewLocalStorage(dir, baseURL string) Storage {
	if dir == "" {
		dir = "uploads"
	}
	return &localStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *localStorage) UploadFile(file *multipart.FileHeader, allowedExt ...string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !extAllowed(ext, allowedExt) {
		return "", domain.ErrInvalidImageFormat
	}

	if err := os.MkdirAll(s.dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("storage: mkdir %s: %w", s.dir, err)
	}

	name := uuid.New().String() + ext

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("storage: open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("storage: create %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("storage: write %s: %w", name, err)
	}

	return name, nil
}

func (s *localStorage) DeleteFile(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: delete %s: %w", name, err)
	}
	return nil
}

func (s *localStorage) PublicURL(name string) string {
	return s.baseURL + "/uploads/" + name
}

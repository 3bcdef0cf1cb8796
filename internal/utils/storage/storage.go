package storage

import (
	"mime/multipart"
)

var AllowImage = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

// Storage persists uploaded files under collision-resistant names and
// resolves stored names to fully-qualified public URLs.
type Storage interface {
	UploadFile(file *multipart.FileHeader, allowedExt ...string) (string, error)
	DeleteFile(name string) error
	PublicURL(name string) string
}

func extAllowed(ext string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

// Package admin holds the back-office product and review editors: form
// validation, image selection, and the modal state machine around submit.
package admin

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"storefront/internal/shopapi"
)

const (
	MaxImages     = 5
	MaxImageBytes = 10 << 20
)

// Upload is one file the admin selected.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}

// FileError rejects a single selected file. Other files in the same
// selection are unaffected.
type FileError struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

func (e FileError) Error() string { return e.Name + " " + e.Reason }

// ImageSet is the product gallery being edited: images already stored by
// the shop plus newly selected files, capped at MaxImages together.
type ImageSet struct {
	existing []string
	added    []Upload
}

func NewImageSet(existing []string) *ImageSet {
	s := &ImageSet{}
	for _, u := range existing {
		if strings.TrimSpace(u) != "" && len(s.existing) < MaxImages {
			s.existing = append(s.existing, u)
		}
	}
	return s
}

func (s *ImageSet) Len() int { return len(s.existing) + len(s.added) }

func (s *ImageSet) Existing() []string {
	out := make([]string, len(s.existing))
	copy(out, s.existing)
	return out
}

func (s *ImageSet) Added() []Upload {
	out := make([]Upload, len(s.added))
	copy(out, s.added)
	return out
}

// Add validates each file in selection order. Accepted files are kept
// until the combined cap is reached. The returned errors name the files
// that were skipped.
func (s *ImageSet) Add(files ...Upload) []FileError {
	var errs []FileError
	for _, f := range files {
		if s.Len() >= MaxImages {
			errs = append(errs, FileError{Name: f.Name, Reason: fmt.Sprintf("was skipped. Maximum %d images allowed per product", MaxImages)})
			continue
		}
		if len(f.Data) > MaxImageBytes {
			errs = append(errs, FileError{Name: f.Name, Reason: "is too large. Maximum size is 10MB"})
			continue
		}
		ct, ok := detectImage(f.Data)
		if !ok {
			errs = append(errs, FileError{Name: f.Name, Reason: "is not a valid image file"})
			continue
		}
		f.ContentType = ct
		s.added = append(s.added, f)
	}
	return errs
}

// RemoveExisting drops a stored image URL from the gallery.
func (s *ImageSet) RemoveExisting(url string) bool {
	for i, u := range s.existing {
		if u == url {
			s.existing = append(s.existing[:i], s.existing[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAdded drops the i-th newly selected file.
func (s *ImageSet) RemoveAdded(i int) bool {
	if i < 0 || i >= len(s.added) {
		return false
	}
	s.added = append(s.added[:i], s.added[i+1:]...)
	return true
}

// Files converts the new uploads into multipart file parts.
func (s *ImageSet) Files(field string) []shopapi.File {
	out := make([]shopapi.File, 0, len(s.added))
	for _, u := range s.added {
		out = append(out, shopapi.File{Field: field, Name: u.Name, ContentType: u.ContentType, Data: u.Data})
	}
	return out
}

func detectImage(data []byte) (string, bool) {
	if len(data) == 0 {
		return "", false
	}
	m := mimetype.Detect(data)
	if !strings.HasPrefix(m.String(), "image/") {
		return "", false
	}
	return m.String(), true
}

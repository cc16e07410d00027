package main

import (
	"fmt"
	"io"
	"net/http"

	"storefront/internal/admin"
)

// maxUploadBody leaves room for a few oversized files so they are rejected
// one by one instead of failing the whole form.
const maxUploadBody = 100 << 20

func parseMultipart(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return fmt.Errorf("failed to parse form: %w", err)
	}
	return nil
}

// readUploads loads the files of field in selection order. Each file is
// read up to one byte past the size limit, enough for the size check.
func readUploads(r *http.Request, field string) ([]admin.Upload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	headers := r.MultipartForm.File[field]
	uploads := make([]admin.Upload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", fh.Filename, err)
		}
		data, err := io.ReadAll(io.LimitReader(f, admin.MaxImageBytes+1))
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
		}
		uploads = append(uploads, admin.Upload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return uploads, nil
}

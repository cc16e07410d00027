package shopapi

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// File is one file part of a multipart form.
type File struct {
	Field       string
	Name        string
	ContentType string
	Data        []byte
}

// Form collects the fields and files of a multipart request in insertion
// order.
type Form struct {
	fields [][2]string
	files  []File
}

func (f *Form) Set(name, value string) {
	f.fields = append(f.fields, [2]string{name, value})
}

// SetIf adds the field only when value is not blank.
func (f *Form) SetIf(name, value string) {
	if strings.TrimSpace(value) != "" {
		f.Set(name, value)
	}
}

func (f *Form) AddFile(file File) {
	f.files = append(f.files, file)
}

// Value returns the first value recorded for name.
func (f *Form) Value(name string) (string, bool) {
	for _, kv := range f.fields {
		if kv[0] == name {
			return kv[1], true
		}
	}
	return "", false
}

func (f *Form) Files() []File {
	out := make([]File, len(f.files))
	copy(out, f.files)
	return out
}

// Encode renders the form as a multipart/form-data payload.
func (f *Form) Encode() (*Payload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, kv := range f.fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, fmt.Errorf("write field %s: %w", kv[0], err)
		}
	}
	for _, file := range f.files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.Name))
		ct := file.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, fmt.Errorf("create part %s: %w", file.Name, err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, fmt.Errorf("write part %s: %w", file.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return &Payload{ContentType: w.FormDataContentType(), Body: buf.Bytes()}, nil
}

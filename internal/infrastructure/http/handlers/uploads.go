package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
)

// maxUploadMemory bounds the in-memory portion of multipart parsing;
// bigger files spill to temp files.
const maxUploadMemory = 32 << 20

func readUpload(fh *multipart.FileHeader) (ports.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return ports.Upload{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return ports.Upload{}, err
	}
	// only the basename matters; clients may send full paths
	return ports.Upload{Filename: filepath.Base(fh.Filename), Data: data}, nil
}

// formUploads returns every file submitted under field, in form order.
func formUploads(r *http.Request, field string) ([]ports.Upload, error) {
	if r.MultipartForm == nil {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			return nil, err
		}
	}
	headers := r.MultipartForm.File[field]
	uploads := make([]ports.Upload, 0, len(headers))
	for _, fh := range headers {
		u, err := readUpload(fh)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, u)
	}
	return uploads, nil
}

// formUpload returns the single file submitted under field, or ok=false
// when the field is absent.
func formUpload(r *http.Request, field string) (ports.Upload, bool, error) {
	uploads, err := formUploads(r, field)
	if err != nil {
		return ports.Upload{}, false, err
	}
	if len(uploads) == 0 {
		return ports.Upload{}, false, nil
	}
	return uploads[0], true, nil
}

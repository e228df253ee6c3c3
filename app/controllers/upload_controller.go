package controllers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/shashiranjanraj/tradeport/pkg/response"
	"github.com/shashiranjanraj/tradeport/pkg/storage"
)

// UploadController accepts KYC document uploads and returns the stored URL,
// which the client then saves via the documents step.
type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

const maxUploadBytes = 10 << 20 // 10 MB

var allowedUploadExts = map[string]bool{
	".pdf": true, ".png": true, ".jpg": true, ".jpeg": true, ".webp": true,
}

// Document receives a multipart file under the "file" field, stores it under
// documents/<sellerID>/, and returns its public URL.
func (c *UploadController) Document(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "file too large or malformed upload")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedUploadExts[ext] {
		response.Error(w, http.StatusUnprocessableEntity, "unsupported file type")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "read failed")
		return
	}

	path := fmt.Sprintf("documents/%s/%d%s", sellerID(r), time.Now().UnixNano(), ext)
	if err := storage.Put(path, content); err != nil {
		response.Error(w, http.StatusInternalServerError, "store failed")
		return
	}

	response.Created(w, map[string]string{
		"path": path,
		"url":  storage.URL(path),
	})
}

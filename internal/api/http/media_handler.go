package http

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"secondserve-backend/internal/domain"
	"secondserve-backend/internal/logger"
	"secondserve-backend/internal/service"
	"secondserve-backend/internal/storage"
)

// maxUploadBytes caps organization image uploads at 5 MiB.
const maxUploadBytes = 5 << 20

type MediaHandler struct {
	store storage.Storage
	orgs  service.OrganizationService
}

func NewMediaHandler(store storage.Storage, orgs service.OrganizationService) *MediaHandler {
	return &MediaHandler{store: store, orgs: orgs}
}

// UploadOrganizationImage accepts a multipart image, stores it under a
// fresh key and points the organization profile at it.
func (h *MediaHandler) UploadOrganizationImage(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		FlashError(w, "Image is too large (max 5 MB)")
		http.Redirect(w, r, "/organization/profile", http.StatusSeeOther)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		FlashError(w, "Please choose an image to upload")
		http.Redirect(w, r, "/organization/profile", http.StatusSeeOther)
		return
	}
	defer file.Close()

	if !validImageName(header.Filename) {
		FlashError(w, "Only png, jpg and jpeg images are allowed")
		http.Redirect(w, r, "/organization/profile", http.StatusSeeOther)
		return
	}

	key := storage.NewKey(header.Filename)
	if err := h.store.Save(key, file); err != nil {
		logger.Error("Failed to store uploaded image", "organization_id", p.PrincipalID(), "error", err)
		FlashError(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/organization/profile", http.StatusSeeOther)
		return
	}

	imageURL := "/media/" + key
	patch := domain.OrganizationPatch{Image: &imageURL}
	if err := h.orgs.UpdateProfile(r.Context(), p.PrincipalID(), patch); err != nil {
		logger.Error("Failed to update organization image", "organization_id", p.PrincipalID(), "error", err)
		FlashError(w, "Something went wrong. Please try again.")
		http.Redirect(w, r, "/organization/profile", http.StatusSeeOther)
		return
	}

	FlashSuccess(w, "Image uploaded!")
	http.Redirect(w, r, "/organization/profile", http.StatusSeeOther)
}

// Serve streams a stored file back to the browser.
func (h *MediaHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	f, err := h.store.Open(key)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", contentTypeForKey(key))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := io.Copy(w, f); err != nil {
		logger.Warn("Failed to stream media file", "key", key, "error", err)
	}
}

func validImageName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	default:
		return false
	}
}

func contentTypeForKey(key string) string {
	switch strings.ToLower(filepath.Ext(key)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}

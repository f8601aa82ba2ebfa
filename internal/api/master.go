package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/cardledger/internal/masterdata"
)

// MasterHandler serves the master data document.
type MasterHandler struct {
	File *masterdata.File
}

// Get handles GET /api/master.
func (h *MasterHandler) Get(w http.ResponseWriter, r *http.Request) {
	doc := h.File.Get()
	etag := strconv.Quote(doc.Version())

	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	jsonResponse(w, http.StatusOK, doc)
}

// Put handles PUT /api/master. An If-Match header, when present, must carry
// the current version.
func (h *MasterHandler) Put(w http.ResponseWriter, r *http.Request) {
	if match := r.Header.Get("If-Match"); match != "" && match != strconv.Quote(h.File.Get().Version()) {
		jsonError(w, http.StatusPreconditionFailed, "master data changed")
		return
	}

	var doc masterdata.Document
	if err := decodeJSON(r, &doc); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.File.Set(doc)
	if err != nil {
		slog.Error("failed to save master data", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}

	slog.Info("master data updated", "version", saved.Version())
	w.Header().Set("ETag", strconv.Quote(saved.Version()))
	jsonResponse(w, http.StatusOK, saved)
}

package server

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"cardpress/internal/bundle"
	"cardpress/internal/render"
	"cardpress/internal/roster"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type indexPage struct {
	Error string
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	s.renderIndex(w, http.StatusOK, "")
}

func (s *Server) renderIndex(w http.ResponseWriter, status int, errMsg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := indexTemplate.Execute(w, indexPage{Error: errMsg}); err != nil {
		s.logger.Error("index render failed", "error", err)
	}
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		s.renderIndex(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		s.renderIndex(w, http.StatusBadRequest, "Unsupported file type. Please upload an XLSX file.")
		return
	}

	uploadPath := filepath.Join(s.cfg.Paths.UploadDir, render.SanitizeFilename(filepath.Base(header.Filename), 100))
	if err := saveUpload(uploadPath, file); err != nil {
		s.logger.Error("upload save failed", "error", err)
		s.renderIndex(w, http.StatusInternalServerError, "Could not store the uploaded workbook")
		return
	}

	rows, err := roster.ReadWorkbook(uploadPath)
	if err != nil {
		if errors.Is(err, roster.ErrTooFewColumns) {
			s.renderIndex(w, http.StatusBadRequest, "File must have at least 3 columns")
			return
		}
		s.logger.Error("workbook parse failed", "path", uploadPath, "error", err)
		s.renderIndex(w, http.StatusBadRequest, "Could not read the uploaded workbook")
		return
	}

	batchDir, err := os.MkdirTemp(s.cfg.Paths.OutputDir, "batch-")
	if err != nil {
		s.logger.Error("batch directory failed", "error", err)
		s.renderIndex(w, http.StatusInternalServerError, "Could not prepare the output directory")
		return
	}

	summary, err := s.runner.Run(r.Context(), rows, batchDir)
	if err != nil {
		s.logger.Error("batch failed", "error", err)
		s.renderIndex(w, http.StatusInternalServerError, fmt.Sprintf("Processing error: %v", err))
		return
	}
	s.logger.Info("upload batch complete",
		"batch", summary.BatchID,
		"rendered", summary.Rendered,
		"failed", summary.Failed)

	zipFile, err := os.CreateTemp("", "cards-*.zip")
	if err != nil {
		s.logger.Error("zip staging failed", "error", err)
		s.renderIndex(w, http.StatusInternalServerError, "Could not stage the card bundle")
		return
	}
	zipPath := zipFile.Name()
	zipFile.Close()
	defer os.Remove(zipPath)

	if err := bundle.Pack(batchDir, zipPath); err != nil {
		s.logger.Error("bundle failed", "batch", summary.BatchID, "error", err)
		s.renderIndex(w, http.StatusInternalServerError, "Could not bundle the rendered cards")
		return
	}

	s.sendFile(w, r, zipPath, "cards.zip", "application/zip")
}

func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	samplePath := filepath.Join(s.cfg.Paths.UploadDir, "sample_cards.xlsx")
	if err := roster.CreateSample(samplePath); err != nil {
		s.logger.Error("sample workbook failed", "error", err)
		http.Error(w, "could not build sample workbook", http.StatusInternalServerError)
		return
	}
	s.sendFile(w, r, samplePath, "sample_cards.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

type createCardRequest struct {
	Name *string `json:"name"`
	Card *string `json:"card"`
	Date *string `json:"date"`
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "no JSON payload provided")
		return
	}
	if req.Name == nil || req.Card == nil || req.Date == nil {
		writeJSONError(w, http.StatusBadRequest, "missing fields: name, card, date")
		return
	}

	destDir, err := os.MkdirTemp("", "card-")
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "could not stage the card")
		return
	}
	defer os.RemoveAll(destDir)

	rec := roster.Record{Name: *req.Name, CardID: *req.Card, Date: *req.Date}.Resolved()
	artifact, err := s.renderer.Render(rec, destDir)
	if err != nil {
		s.logger.Error("single card render failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "card image not generated")
		return
	}

	s.sendFile(w, r, artifact, "card.png", "image/png")
}

func (s *Server) handleRedemption(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(s.cfg.Paths.AssetsDir, "Redemption.jpg")
	if _, err := os.Stat(path); err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/jpeg")
	http.ServeFile(w, r, path)
}

func (s *Server) sendFile(w http.ResponseWriter, r *http.Request, path, downloadName, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	http.ServeFile(w, r, path)
}

func saveUpload(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	return dst.Close()
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

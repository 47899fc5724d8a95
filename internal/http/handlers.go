package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	applog "evocoffee/internal/log"
	"evocoffee/internal/render"
	"evocoffee/internal/store"
)

// maxBodyBytes caps state uploads at 1 MB.
const maxBodyBytes = 1 << 20

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if s.templates == nil {
		s.logger.ErrorContext(r.Context(), "Templates not loaded")
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := struct {
		Dashboard render.Dashboard
		Today     string
	}{
		Dashboard: s.orchestrator.Dashboard(),
		Today:     time.Now().UTC().Format("2006-01-02"),
	}
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Dashboard template execution failed", applog.FieldError, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleState serves the GET/PUT whole-document contract.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := json.NewEncoder(w).Encode(s.orchestrator.Serialize()); err != nil {
			s.logger.ErrorContext(r.Context(), "State encode failed", applog.FieldError, err)
		}

	case http.MethodPut, http.MethodPost:
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
		if err != nil || len(body) > maxBodyBytes {
			http.Error(w, "Payload too large", http.StatusBadRequest)
			return
		}
		var doc store.Document
		if err := json.Unmarshal(body, &doc); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if err := s.orchestrator.ReplaceDocument(r.Context(), doc); err != nil {
			http.Error(w, "Failed to persist state", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.Header().Set("Allow", "GET, PUT, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleRestock(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	lor := toNumber(r.PostFormValue("caps_lor"))
	illy := toNumber(r.PostFormValue("caps_illy"))
	other := toNumber(r.PostFormValue("caps_other"))
	milk := toNumber(r.PostFormValue("milk"))

	if err := s.orchestrator.Restock(r.Context(), lor, illy, other, milk); err != nil {
		http.Error(w, "Failed to persist state", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	// A rejected purchase is not an error: the dashboard simply comes
	// back without a new row.
	_, err := s.orchestrator.Purchase(r.Context(),
		r.PostFormValue("date"),
		r.PostFormValue("buyer"),
		toNumber(r.PostFormValue("amount")),
		r.PostFormValue("notes"))
	if err != nil {
		http.Error(w, "Failed to persist state", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if err := s.orchestrator.SeedDemo(r.Context()); err != nil {
		http.Error(w, "Failed to persist state", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if err := s.orchestrator.Clear(r.Context()); err != nil {
		http.Error(w, "Failed to persist state", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	raw, err := s.orchestrator.Export()
	if err != nil {
		http.Error(w, "Failed to export state", http.StatusInternalServerError)
		return
	}
	filename := fmt.Sprintf("evocoffee-%s.json", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(raw)
}

// handleImport accepts an uploaded document. Malformed JSON is swallowed
// and the current state stays untouched.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxBodyBytes))
	if err == nil {
		s.orchestrator.Import(r.Context(), raw)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// toNumber coerces a raw form value to a number: empty or non-numeric
// input becomes 0, negatives pass through as-is.
func toNumber(value string) float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}

package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"clipmark/archive"
	"clipmark/convert"
	"clipmark/snapshot"
)

const historyExcerptLen = 200

// Handlers wires the converter, snapshot sources, and archive into the
// HTTP surface. The archive may be nil, in which case conversions are
// not recorded and history returns an empty list.
type Handlers struct {
	converter *convert.Converter
	sources   map[string]snapshot.Source
	store     *archive.Store
	logger    *zap.Logger
}

func NewHandlers(converter *convert.Converter, sources []snapshot.Source, store *archive.Store, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	byName := make(map[string]snapshot.Source, len(sources))
	for _, src := range sources {
		byName[src.Name()] = src
	}
	return &Handlers{
		converter: converter,
		sources:   byName,
		store:     store,
		logger:    logger,
	}
}

type ConvertRequest struct {
	URL    string `json:"url"`
	Source string `json:"source,omitempty"`
}

type ConvertResponse struct {
	ID        string `json:"id,omitempty"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Markdown  string `json:"markdown"`
	Document  string `json:"document"`
	Fragments int    `json:"fragments"`
	Skipped   int    `json:"skipped"`
}

// Convert captures the requested page, converts it, and returns both
// the body markdown and the assembled clipboard document.
func (h *Handlers) Convert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		errorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.URL == "" {
		errorJSON(w, http.StatusBadRequest, "url is required")
		return
	}

	sourceName := req.Source
	if sourceName == "" {
		sourceName = "fetch"
	}
	source, ok := h.sources[sourceName]
	if !ok {
		errorJSON(w, http.StatusBadRequest, "unknown source: "+sourceName)
		return
	}

	page, err := source.Capture(r.Context(), req.URL)
	if err != nil {
		h.logger.Error("capture failed", zap.String("url", req.URL), zap.Error(err))
		errorJSON(w, http.StatusBadGateway, err.Error())
		return
	}

	result, err := h.converter.Convert(page)
	if err != nil {
		errorJSON(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp := ConvertResponse{
		URL:       page.URL,
		Title:     page.Title,
		Markdown:  result.Markdown,
		Document:  convert.AssembleDocument(page.Title, page.URL, result.Markdown),
		Fragments: result.Fragments,
		Skipped:   result.Skipped,
	}
	if h.store != nil {
		rec, err := h.store.Put(archive.Record{
			URL:       page.URL,
			Title:     page.Title,
			Markdown:  result.Markdown,
			Fragments: result.Fragments,
			Skipped:   result.Skipped,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			h.logger.Error("failed to archive conversion", zap.Error(err))
		} else {
			resp.ID = rec.ID
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

type HistoryEntry struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Fragments int       `json:"fragments"`
	Skipped   int       `json:"skipped"`
	CreatedAt time.Time `json:"created_at"`
}

// History lists recent conversions, newest first, with markdown elided
// to a short excerpt.
func (h *Handlers) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		errorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errorJSON(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries := []HistoryEntry{}
	if h.store != nil {
		records, err := h.store.Recent(limit)
		if err != nil {
			h.logger.Error("failed to read history", zap.Error(err))
			errorJSON(w, http.StatusInternalServerError, "failed to read history")
			return
		}
		for _, rec := range records {
			entries = append(entries, HistoryEntry{
				ID:        rec.ID,
				URL:       rec.URL,
				Title:     rec.Title,
				Excerpt:   excerpt(rec.Markdown),
				Fragments: rec.Fragments,
				Skipped:   rec.Skipped,
				CreatedAt: rec.CreatedAt,
			})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

func excerpt(markdown string) string {
	runes := []rune(markdown)
	if len(runes) <= historyExcerptLen {
		return markdown
	}
	return string(runes[:historyExcerptLen]) + "..."
}

func errorJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

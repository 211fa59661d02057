package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ericcurtin/GreengoLingo/internal/api/shared"
	"github.com/ericcurtin/GreengoLingo/internal/platform/logger"
	"github.com/ericcurtin/GreengoLingo/internal/service/vocab"
)

// VocabularyHandler handles vocabulary-related HTTP requests
type VocabularyHandler struct {
	vocabService *vocab.Service
	clock        Clock
	logger       *slog.Logger
}

// NewVocabularyHandler creates a new VocabularyHandler. A nil clock uses the
// system time.
func NewVocabularyHandler(vocabService *vocab.Service, clock Clock, logger *slog.Logger) *VocabularyHandler {
	if vocabService == nil {
		panic("vocabService cannot be nil for VocabularyHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &VocabularyHandler{
		vocabService: vocabService,
		clock:        clock,
		logger:       logger.With(slog.String("component", "vocabulary_handler")),
	}
}

// CreateItem handles POST /vocabulary requests.
// An existing item with the same ID is replaced.
func (h *VocabularyHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req CreateVocabularyRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	item := req.toItem(h.clock.today())
	if err := h.vocabService.AddItem(r.Context(), item); err != nil {
		HandleAPIError(w, r, err, "Failed to save vocabulary item")
		return
	}

	stored, err := h.vocabService.GetItem(item.ID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to save vocabulary item")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, stored)
}

// ListItems handles GET /vocabulary requests, filtered by the optional
// level, lesson, pair, category and not_in_srs query parameters.
func (h *VocabularyHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	notInSRS, err := queryBool(r, "not_in_srs")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	q := r.URL.Query()
	items := h.vocabService.Lookup(vocab.Filter{
		Level:        q.Get("level"),
		LessonID:     q.Get("lesson"),
		LanguagePair: q.Get("pair"),
		Category:     q.Get("category"),
		NotInSRS:     notInSRS,
	})

	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(items))
}

// SearchItems handles GET /vocabulary/search?q=&limit= requests.
func (h *VocabularyHandler) SearchItems(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		HandleAPIError(w, r, fmt.Errorf("%w: q is required", ErrBadRequest), "")
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(h.vocabService.Search(query, limit)))
}

// Stats handles GET /vocabulary/stats requests.
func (h *VocabularyHandler) Stats(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.vocabService.Stats())
}

// GetItem handles GET /vocabulary/{id} requests.
func (h *VocabularyHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := getPathParam(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	item, err := h.vocabService.GetItem(id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get vocabulary item")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// DeleteItem handles DELETE /vocabulary/{id} requests.
func (h *VocabularyHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := getPathParam(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.vocabService.RemoveItem(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete vocabulary item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PromoteItem handles POST /vocabulary/{id}/promote requests. The optional
// body names the first review date; it defaults to today.
func (h *VocabularyHandler) PromoteItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathParam(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req PromoteRequest
	if err := shared.DecodeOptionalJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}
	date, err := dateOrToday(req.Date, h.clock)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	card, err := h.vocabService.Promote(r.Context(), id, date)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to promote vocabulary item")
		return
	}

	log.Debug("vocabulary item promoted", slog.String("item_id", id))
	shared.RespondWithJSON(w, r, http.StatusCreated, cardToResponse(card))
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/ericcurtin/GreengoLingo/internal/api/shared"
	"github.com/ericcurtin/GreengoLingo/internal/platform/logger"
	"github.com/ericcurtin/GreengoLingo/internal/service/review"
)

// DefaultDueLimit caps GET /cards/due when no limit is given.
const DefaultDueLimit = 20

// CardHandler handles card-related HTTP requests
type CardHandler struct {
	reviewService review.Service
	clock         Clock
	logger        *slog.Logger
}

// NewCardHandler creates a new CardHandler. A nil clock uses the system time.
func NewCardHandler(reviewService review.Service, clock Clock, logger *slog.Logger) *CardHandler {
	if reviewService == nil {
		panic("reviewService cannot be nil for CardHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CardHandler{
		reviewService: reviewService,
		clock:         clock,
		logger:        logger.With(slog.String("component", "card_handler")),
	}
}

// DueCards handles GET /cards/due?date=&limit= requests.
// A limit of 0 returns every due card.
func (h *CardHandler) DueCards(w http.ResponseWriter, r *http.Request) {
	date, err := dateOrToday(r.URL.Query().Get("date"), h.clock)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	limit, err := queryInt(r, "limit", DefaultDueLimit)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	cards, err := h.reviewService.DueCards(r.Context(), date, limit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get due cards")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(cardsToResponse(cards)))
}

// WeakCards handles GET /cards/weak requests.
func (h *CardHandler) WeakCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.reviewService.WeakCards(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get weak cards")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(cardsToResponse(cards)))
}

// Stats handles GET /cards/stats?date= requests.
func (h *CardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	date, err := dateOrToday(r.URL.Query().Get("date"), h.clock)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	stats, err := h.reviewService.Stats(r.Context(), date)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute statistics")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}

// GetCard handles GET /cards/{id} requests.
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	wordID, err := getPathParam(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	card, err := h.reviewService.GetCard(r.Context(), wordID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get card")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// PreviewReview handles POST /cards/{id}/preview requests.
// Nothing is stored.
func (h *CardHandler) PreviewReview(w http.ResponseWriter, r *http.Request) {
	wordID, req, date, ok := h.decodeReview(w, r)
	if !ok {
		return
	}

	update, err := h.reviewService.PreviewReview(r.Context(), wordID, *req.Quality, date)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to preview review")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, update)
}

// SubmitReview handles POST /cards/{id}/review requests.
func (h *CardHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	wordID, req, date, ok := h.decodeReview(w, r)
	if !ok {
		return
	}

	result, err := h.reviewService.SubmitReview(r.Context(), wordID, *req.Quality, date)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to submit review")
		return
	}

	log.Debug("review submitted",
		slog.String("word_id", wordID),
		slog.String("next_review_date", result.Card.NextReviewDate))

	shared.RespondWithJSON(w, r, http.StatusOK, ReviewResponse{
		Card:   cardToResponse(result.Card),
		Update: result.Update,
	})
}

// decodeReview reads the word ID, body and effective date of a review
// request, writing the error response itself when any of them is invalid.
func (h *CardHandler) decodeReview(
	w http.ResponseWriter,
	r *http.Request,
) (string, *ReviewRequest, string, bool) {
	wordID, err := getPathParam(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return "", nil, "", false
	}

	var req ReviewRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return "", nil, "", false
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return "", nil, "", false
	}

	date, err := dateOrToday(req.Date, h.clock)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return "", nil, "", false
	}

	return wordID, &req, date, true
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	authsvc "github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/services/auth"
	matchessvc "github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/services/matches"
	"github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/transport/http/dto"
	httperrors "github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/transport/http/errors"
)

type MatchesHandler struct {
	service *matchessvc.Service
}

func NewMatchesHandler(service *matchessvc.Service) *MatchesHandler {
	return &MatchesHandler{service: service}
}

func (h *MatchesHandler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "MATCH_SERVICE_UNAVAILABLE", "match service is unavailable")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			writeBadRequest(w, "VALIDATION_ERROR", "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	items, err := h.service.List(r.Context(), identity.ActorID, limit)
	if err != nil {
		if errors.Is(err, matchessvc.ErrValidation) {
			writeBadRequest(w, "VALIDATION_ERROR", "invalid matches request")
			return
		}
		writeInternal(w, "INTERNAL_ERROR", "failed to list matches")
		return
	}

	payload := dto.MatchesResponse{Items: make([]dto.MatchItem, 0, len(items))}
	for _, item := range items {
		payload.Items = append(payload.Items, dto.MatchItem{
			ID:           item.ID,
			OtherActorID: item.OtherActorID,
			PetID:        item.PetID,
			MatchType:    item.MatchType,
			CreatedAt:    item.CreatedAt,
		})
	}

	httperrors.Write(w, http.StatusOK, payload)
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/domain/enums"
	authsvc "github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/services/auth"
	swipesvc "github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/services/swipes"
	"github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/transport/http/dto"
	httperrors "github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/transport/http/errors"
)

type SwipeHandler struct {
	service *swipesvc.Service
}

func NewSwipeHandler(service *swipesvc.Service) *SwipeHandler {
	return &SwipeHandler{service: service}
}

func (h *SwipeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		return
	}
	if h.service == nil {
		writeInternal(w, "SWIPE_SERVICE_UNAVAILABLE", "swipe service is unavailable")
		return
	}

	var req dto.SwipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if strings.TrimSpace(req.TargetID) == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "target_id is required")
		return
	}

	targetType, ok := enums.ParseTargetType(req.TargetType)
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "target_type must be pet or user")
		return
	}
	direction, ok := enums.ParseDirection(req.Direction)
	if !ok {
		writeBadRequest(w, "VALIDATION_ERROR", "unsupported direction")
		return
	}

	result, err := h.service.Swipe(r.Context(), identity.ActorID, req.TargetID, targetType, direction)
	if err != nil {
		switch {
		case errors.Is(err, swipesvc.ErrUnauthenticated):
			writeUnauthorized(w, "UNAUTHORIZED", "authentication required")
		case errors.Is(err, swipesvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid swipe request")
		case errors.Is(err, swipesvc.ErrPetNotFound):
			writeNotFound(w, "PET_NOT_FOUND", "pet listing not found")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to process swipe")
		}
		return
	}

	httperrors.Write(w, http.StatusOK, dto.SwipeResponse{
		OK:             true,
		SwipeID:        result.SwipeID,
		Matched:        result.Matched,
		AlreadyMatched: result.AlreadyMatched,
		Reason:         result.Reason,
	})
}

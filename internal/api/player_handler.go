package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/socceronline/soccer-api/internal/api/shared"
	"github.com/socceronline/soccer-api/internal/domain"
	"github.com/socceronline/soccer-api/internal/service"
	"github.com/socceronline/soccer-api/internal/service/transfer"
	"github.com/socceronline/soccer-api/internal/store"
)

// PlayerHandler handles player management and transfer market API requests.
type PlayerHandler struct {
	playerService   service.PlayerService
	transferService transfer.Service
	validator       *validator.Validate
	logger          *slog.Logger
}

// NewPlayerHandler creates a new PlayerHandler with the given dependencies.
func NewPlayerHandler(
	playerService service.PlayerService,
	transferService transfer.Service,
	logger *slog.Logger,
) *PlayerHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlayerHandler{
		playerService:   playerService,
		transferService: transferService,
		validator:       validator.New(),
		logger:          logger.With(slog.String("component", "player_handler")),
	}
}

// CreatePlayer handles POST /players. Administrators only.
func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActorFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreatePlayerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	player, err := h.playerService.CreatePlayer(
		r.Context(),
		actor,
		req.Name,
		req.LastName,
		req.Country,
		domain.Position(req.Position),
		req.Age,
		req.Value,
		req.TeamID,
	)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, player)
}

// GetPlayer handles GET /players/{id}.
func (h *PlayerHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	_, id, ok := requireActorAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	player, err := h.playerService.GetPlayer(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, player)
}

// ListPlayers handles GET /players.
func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	if _, ok := getActorFromContext(r); !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	players, err := h.playerService.ListPlayers(r.Context())
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, players)
}

// UpdatePlayer handles PATCH /players/{id}.
func (h *PlayerHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdatePlayerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	params := service.UpdatePlayerParams{
		Name:      req.Name,
		LastName:  req.LastName,
		Country:   req.Country,
		Age:       req.Age,
		Value:     req.Value,
		TeamID:    req.TeamID,
		ClearTeam: req.ClearTeam,
		Listed:    req.Listed,
		Price:     req.Price,
	}
	if req.Position != nil {
		position := domain.Position(*req.Position)
		params.Position = &position
	}

	player, err := h.playerService.UpdatePlayer(r.Context(), actor, id, params)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, player)
}

// DeletePlayer handles DELETE /players/{id}. Administrators only.
func (h *PlayerHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.playerService.DeletePlayer(r.Context(), actor, id); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// OfferPlayer handles POST /players/{id}/offer, listing the player on the
// transfer market at the requested asking price.
func (h *PlayerHandler) OfferPlayer(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req OfferRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.transferService.ListPlayer(r.Context(), actor, id, *req.Price); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CancelOffer handles POST /players/{id}/cancel-offer, withdrawing the player
// from the transfer market.
func (h *PlayerHandler) CancelOffer(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.transferService.DelistPlayer(r.Context(), actor, id); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BuyPlayer handles POST /players/{id}/buy, purchasing the listed player for
// the caller's team.
func (h *PlayerHandler) BuyPlayer(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.transferService.BuyPlayer(r.Context(), actor, id); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Market handles GET /market, returning the listed players matching the
// query-string filters.
func (h *PlayerHandler) Market(w http.ResponseWriter, r *http.Request) {
	if _, ok := getActorFromContext(r); !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	criteria, err := marketCriteriaFromQuery(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	players, err := h.transferService.Market(r.Context(), criteria)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	responses := make([]MarketPlayerResponse, 0, len(players))
	for _, player := range players {
		responses = append(responses, NewMarketPlayerResponse(player))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// marketCriteriaFromQuery parses the market filter query parameters. The
// price bounds are documented as minPrice/maxPrice; the snake_case spellings
// are accepted as aliases.
func marketCriteriaFromQuery(r *http.Request) (store.MarketCriteria, error) {
	query := r.URL.Query()
	criteria := store.MarketCriteria{
		TeamName: query.Get("team"),
		Country:  query.Get("country"),
		Name:     query.Get("name"),
	}

	priceParam := func(names ...string) (string, string) {
		for _, name := range names {
			if raw := query.Get(name); raw != "" {
				return name, raw
			}
		}
		return names[0], ""
	}

	if name, raw := priceParam("minPrice", "min_price"); raw != "" {
		minPrice, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return store.MarketCriteria{}, domain.NewValidationError(name, "must be an integer", domain.ErrValidation)
		}
		criteria.MinPrice = &minPrice
	}
	if name, raw := priceParam("maxPrice", "max_price"); raw != "" {
		maxPrice, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return store.MarketCriteria{}, domain.NewValidationError(name, "must be an integer", domain.ErrValidation)
		}
		criteria.MaxPrice = &maxPrice
	}

	return criteria, nil
}

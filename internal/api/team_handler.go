package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/socceronline/soccer-api/internal/api/shared"
	"github.com/socceronline/soccer-api/internal/service"
)

// TeamHandler handles team management API requests.
type TeamHandler struct {
	teamService service.TeamService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewTeamHandler creates a new TeamHandler with the given dependencies.
func NewTeamHandler(teamService service.TeamService, logger *slog.Logger) *TeamHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TeamHandler{
		teamService: teamService,
		validator:   validator.New(),
		logger:      logger.With(slog.String("component", "team_handler")),
	}
}

// CreateTeam handles POST /teams. Administrators only.
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	actor, ok := getActorFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateTeamRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), actor, req.Name, req.Country, req.Wallet, req.OwnerID)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, team)
}

// GetTeam handles GET /teams/{id}.
func (h *TeamHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	_, id, ok := requireActorAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	view, err := h.teamService.GetTeam(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewTeamResponse(view))
}

// ListTeams handles GET /teams.
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	if _, ok := getActorFromContext(r); !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	views, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	responses := make([]TeamResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, NewTeamResponse(view))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// UpdateTeam handles PATCH /teams/{id}.
func (h *TeamHandler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateTeamRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	team, err := h.teamService.UpdateTeam(r.Context(), actor, id, service.UpdateTeamParams{
		Name:    req.Name,
		Country: req.Country,
		Wallet:  req.Wallet,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/{id}. Administrators only.
func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	actor, id, ok := requireActorAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), actor, id); err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListTeamPlayers handles GET /teams/{id}/players.
func (h *TeamHandler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	_, id, ok := requireActorAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	players, err := h.teamService.ListTeamPlayers(r.Context(), id)
	if err != nil {
		respondWithMappedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, players)
}

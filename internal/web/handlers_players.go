package web

import (
	"net/http"
)

func (s *Server) handlePlayerList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeText(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	items := make([]playerResponse, 0, len(players))
	for _, p := range players {
		items = append(items, playerView(p))
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handlePlayerCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := s.decodePlayerRequest(r)
	if err != nil {
		s.logger.WarnContext(ctx, "invalid player body", "error", err)
		writeText(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	created, err := s.store.CreatePlayer(ctx, req.toModel(0))
	if err != nil {
		s.logger.ErrorContext(ctx, "create player failed", "error", err)
		writeText(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	s.logger.InfoContext(ctx, "player created", "player_id", created.ID)
	writeJSON(w, http.StatusCreated, playerCreatedResponse{PlayerID: created.ID})
}

func (s *Server) handlePlayerShow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := playerIDParam(r)
	if !ok {
		writeText(w, http.StatusNotFound, msgPlayerNotFound)
		return
	}

	player, found, err := s.store.GetPlayer(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "get player failed", "player_id", id, "error", err)
		writeText(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	if !found {
		writeText(w, http.StatusNotFound, msgPlayerNotFound)
		return
	}
	writeJSON(w, http.StatusOK, playerView(player))
}

// handlePlayerUpdate reports success whether or not a row matched the id.
func (s *Server) handlePlayerUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, err := s.decodePlayerRequest(r)
	if err != nil {
		s.logger.WarnContext(ctx, "invalid player body", "error", err)
		writeText(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	id, ok := playerIDParam(r)
	if !ok {
		writeText(w, http.StatusOK, msgPlayerUpdated)
		return
	}
	if err := s.store.UpdatePlayer(ctx, req.toModel(id)); err != nil {
		s.logger.ErrorContext(ctx, "update player failed", "player_id", id, "error", err)
		writeText(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	writeText(w, http.StatusOK, msgPlayerUpdated)
}

// handlePlayerDelete reports success whether or not a row matched the id.
func (s *Server) handlePlayerDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := playerIDParam(r)
	if !ok {
		writeText(w, http.StatusOK, msgPlayerRemoved)
		return
	}
	if err := s.store.DeletePlayer(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "delete player failed", "player_id", id, "error", err)
		writeText(w, http.StatusInternalServerError, msgInternalError)
		return
	}
	writeText(w, http.StatusOK, msgPlayerRemoved)
}

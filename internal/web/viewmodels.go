package web

import "cricket-app/internal/model"

type playerResponse struct {
	PlayerID     int64   `json:"playerId"`
	PlayerName   *string `json:"playerName"`
	JerseyNumber *int64  `json:"jerseyNumber"`
	Role         *string `json:"role"`
}

type playerCreatedResponse struct {
	PlayerID int64 `json:"playerId"`
}

// playerRequest is the body of create and update. Absent fields stay nil
// and are stored as NULL unless strict payloads are enabled.
type playerRequest struct {
	PlayerName   *string       `json:"playerName" validate:"required"`
	JerseyNumber *jerseyNumber `json:"jerseyNumber" validate:"required"`
	Role         *string       `json:"role" validate:"required"`
}

func (req playerRequest) toModel(id int64) model.Player {
	p := model.Player{ID: id, Name: req.PlayerName, Role: req.Role}
	if req.JerseyNumber != nil {
		p.JerseyNumber = model.Int64Ptr(int64(*req.JerseyNumber))
	}
	return p
}

func playerView(p model.Player) playerResponse {
	return playerResponse{
		PlayerID:     p.ID,
		PlayerName:   p.Name,
		JerseyNumber: p.JerseyNumber,
		Role:         p.Role,
	}
}

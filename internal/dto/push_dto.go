package dto

type RegisterPlayerRequest struct {
	PlayerId string `json:"player_id" validate:"required"`
}

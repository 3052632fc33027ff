package dto

import "time"

type MatchesResponse struct {
	Items []MatchItem `json:"items"`
}

type MatchItem struct {
	ID           string    `json:"id"`
	OtherActorID string    `json:"other_actor_id"`
	PetID        string    `json:"pet_id"`
	MatchType    string    `json:"match_type"`
	CreatedAt    time.Time `json:"created_at"`
}

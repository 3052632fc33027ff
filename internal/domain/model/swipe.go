package model

import (
	"time"

	"github.com/PawDNACo/paw-dna-breed-hub-sub000/internal/domain/enums"
)

type Swipe struct {
	ID         string           `json:"id"`
	ActorID    string           `json:"actor_id"`
	TargetID   string           `json:"target_id"`
	TargetType enums.TargetType `json:"target_type"`
	Direction  enums.Direction  `json:"direction"`
	CreatedAt  time.Time        `json:"created_at"`
}

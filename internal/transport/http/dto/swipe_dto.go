package dto

type SwipeRequest struct {
	TargetID   string `json:"target_id"`
	TargetType string `json:"target_type"`
	Direction  string `json:"direction"`
}

type SwipeResponse struct {
	OK             bool   `json:"ok"`
	SwipeID        string `json:"swipe_id"`
	Matched        bool   `json:"matched"`
	AlreadyMatched bool   `json:"already_matched,omitempty"`
	Reason         string `json:"reason,omitempty"`
}

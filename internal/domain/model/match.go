package model

import "time"

const MatchTypeMutual = "mutual"

// Match participants are stored in lexicographic order so the pair is
// unordered: (a, b) and (b, a) address the same row.
type Match struct {
	ID           string    `json:"id"`
	ParticipantA string    `json:"participant_a"`
	ParticipantB string    `json:"participant_b"`
	PetID        string    `json:"pet_id"`
	MatchType    string    `json:"match_type"`
	CreatedAt    time.Time `json:"created_at"`
}

func OrderParticipants(x, y string) (string, string) {
	if x > y {
		return y, x
	}
	return x, y
}

package enums

import "strings"

type Direction string

const (
	DirectionPass      Direction = "pass"
	DirectionLike      Direction = "like"
	DirectionSuperLike Direction = "superlike"
)

// ParseDirection accepts the stored values plus the wire aliases the
// mobile clients send: "right" maps to like, "super" to superlike.
func ParseDirection(input string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "pass":
		return DirectionPass, true
	case "like", "right":
		return DirectionLike, true
	case "superlike", "super":
		return DirectionSuperLike, true
	default:
		return "", false
	}
}

func (d Direction) IsPositive() bool {
	return d == DirectionLike || d == DirectionSuperLike
}

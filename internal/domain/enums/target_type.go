package enums

import "strings"

type TargetType string

const (
	TargetTypePet  TargetType = "pet"
	TargetTypeUser TargetType = "user"
)

func ParseTargetType(input string) (TargetType, bool) {
	switch TargetType(strings.ToLower(strings.TrimSpace(input))) {
	case TargetTypePet:
		return TargetTypePet, true
	case TargetTypeUser:
		return TargetTypeUser, true
	default:
		return "", false
	}
}

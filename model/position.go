package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_GKP     Position = "GKP"
	POS_DEF     Position = "DEF"
	POS_MID     Position = "MID"
	POS_FWD     Position = "FWD"
)

func ParsePosition(pos string) Position {
	pos = strings.ToLower(pos)
	switch pos {
	case "gkp", "gk":
		return POS_GKP
	case "def":
		return POS_DEF
	case "mid":
		return POS_MID
	case "fwd":
		return POS_FWD
	default:
		return POS_UNKNOWN
	}
}

// PositionForElementType maps the element_type codes used by the FPL API
// (1=GKP, 2=DEF, 3=MID, 4=FWD) to a Position.
func PositionForElementType(elementType int) Position {
	switch elementType {
	case 1:
		return POS_GKP
	case 2:
		return POS_DEF
	case 3:
		return POS_MID
	case 4:
		return POS_FWD
	default:
		return POS_UNKNOWN
	}
}

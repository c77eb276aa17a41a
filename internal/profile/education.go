package profile

import (
	"fmt"
	"strings"
)

// EducationLevel is one of the five recognized degree levels.
type EducationLevel string

const (
	EducationNone      EducationLevel = "none"
	EducationAssociate EducationLevel = "associate"
	EducationBachelor  EducationLevel = "bachelor"
	EducationMaster    EducationLevel = "master"
	EducationDoctorate EducationLevel = "doctorate"
)

var educationRanks = map[EducationLevel]int{
	EducationNone:      0,
	EducationAssociate: 1,
	EducationBachelor:  2,
	EducationMaster:    3,
	EducationDoctorate: 4,
}

// ParseEducationLevel normalizes and validates an education token. An empty
// token maps to EducationNone.
func ParseEducationLevel(raw string) (EducationLevel, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return EducationNone, nil
	}

	level := EducationLevel(token)
	if _, ok := educationRanks[level]; !ok {
		return "", fmt.Errorf("%w: unrecognized education level %q", ErrInvalidInput, raw)
	}
	return level, nil
}

// Rank returns the ordinal position of the level, none being lowest.
func (l EducationLevel) Rank() (int, error) {
	if l == "" {
		return educationRanks[EducationNone], nil
	}
	rank, ok := educationRanks[l]
	if !ok {
		return 0, fmt.Errorf("%w: unrecognized education level %q", ErrInvalidInput, string(l))
	}
	return rank, nil
}

func (l EducationLevel) Valid() bool {
	if l == "" {
		return true
	}
	_, ok := educationRanks[l]
	return ok
}

package model

import "strings"

// House is the affiliation a team competes under. Problem statements use the
// same set of values as their domain.
type House string

const (
	HouseGryffindor House = "Gryffindor"
	HouseSlytherin  House = "Slytherin"
	HouseRavenclaw  House = "Ravenclaw"
	HouseHufflepuff House = "Hufflepuff"
	// HouseMuggles is the general category open to everyone.
	HouseMuggles House = "Muggles"
)

// AllHouses lists the five fixed houses.
var AllHouses = []House{
	HouseGryffindor,
	HouseSlytherin,
	HouseRavenclaw,
	HouseHufflepuff,
	HouseMuggles,
}

// NormalizeHouse canonicalizes user input ("gryffindor", "GRYFFINDOR") to
// the capitalized form. Unknown values are returned capitalized as-is so the
// caller can decide whether to reject them.
func NormalizeHouse(s string) House {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)
	for _, h := range AllHouses {
		if strings.ToLower(string(h)) == lower {
			return h
		}
	}
	return House(strings.ToUpper(s[:1]) + lower[1:])
}

// IsValidHouse reports whether s names one of the five fixed houses.
func IsValidHouse(s string) bool {
	lower := strings.ToLower(strings.TrimSpace(s))
	for _, h := range AllHouses {
		if strings.ToLower(string(h)) == lower {
			return true
		}
	}
	return false
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCity is returned when a city key is outside the supported set.
var ErrUnknownCity = errors.New("unknown city")

// City identifies one trip-history dataset.
type City string

const (
	CityChicago     City = "chicago"
	CityNewYorkCity City = "new york city"
	CityWashington  City = "washington"
)

// Cities lists every supported city in menu order.
var Cities = []City{CityChicago, CityNewYorkCity, CityWashington}

// cityAbbreviations maps the short menu codes to cities.
var cityAbbreviations = map[string]City{
	"ch": CityChicago,
	"ny": CityNewYorkCity,
	"wa": CityWashington,
}

// String returns the string representation of City.
func (c City) String() string {
	return string(c)
}

// IsValid checks if the city is one of the supported values.
func (c City) IsValid() bool {
	return c == CityChicago || c == CityNewYorkCity || c == CityWashington
}

// Slug returns the file and table base name for the city ("new_york_city").
func (c City) Slug() string {
	return strings.ReplaceAll(string(c), " ", "_")
}

// Title returns the display name ("New York City").
func (c City) Title() string {
	words := strings.Fields(string(c))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Abbreviation returns the two-letter menu code.
func (c City) Abbreviation() string {
	for abbr, city := range cityAbbreviations {
		if city == c {
			return abbr
		}
	}
	return ""
}

// ParseCity resolves a full city key, slug or abbreviation (case-insensitive).
func ParseCity(s string) (City, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if city, ok := cityAbbreviations[key]; ok {
		return city, nil
	}
	key = strings.ReplaceAll(key, "_", " ")
	if c := City(key); c.IsValid() {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCity, s)
}

// Package location holds the fixed registry of supported cities.
package location

import (
	"sort"
	"time"

	"github.com/senthamizh/panchangam/internal/domain/astro"
)

// City is an immutable observation location.
type City struct {
	Name           string  `json:"name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	UTCOffsetHours float64 `json:"utcOffsetHours"`
}

// Zone returns the fixed-offset time zone for the city.
func (c City) Zone() *time.Location {
	return astro.FixedZone(c.Name, c.UTCOffsetHours)
}

// Observer converts the city to an ephemeris observation point.
func (c City) Observer() astro.Observer {
	return astro.Observer{Latitude: c.Latitude, Longitude: c.Longitude}
}

// DefaultCity is substituted for unknown or empty city names. The
// substitution is documented behavior, not an error.
const DefaultCity = "Chennai"

// Registry is the closed set of supported cities, built once at startup
// and never mutated.
type Registry struct {
	cities map[string]City
	names  []string
}

// NewRegistry builds the fixed city table.
func NewRegistry() *Registry {
	cities := map[string]City{
		"Chennai":   {Name: "Chennai", Latitude: 13.0827, Longitude: 80.2707, UTCOffsetHours: 5.5},
		"Delhi":     {Name: "Delhi", Latitude: 28.7041, Longitude: 77.1025, UTCOffsetHours: 5.5},
		"Mumbai":    {Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777, UTCOffsetHours: 5.5},
		"Bangalore": {Name: "Bangalore", Latitude: 12.9716, Longitude: 77.5946, UTCOffsetHours: 5.5},
		"Kolkata":   {Name: "Kolkata", Latitude: 22.5726, Longitude: 88.3639, UTCOffsetHours: 5.5},
		"Hyderabad": {Name: "Hyderabad", Latitude: 17.3850, Longitude: 78.4867, UTCOffsetHours: 5.5},
	}
	names := make([]string, 0, len(cities))
	for name := range cities {
		names = append(names, name)
	}
	sort.Strings(names)
	return &Registry{cities: cities, names: names}
}

// Resolve returns the named city, falling back to DefaultCity.
func (r *Registry) Resolve(name string) City {
	if city, ok := r.cities[name]; ok {
		return city
	}
	return r.cities[DefaultCity]
}

// All lists the registered cities sorted by name.
func (r *Registry) All() []City {
	out := make([]City, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.cities[name])
	}
	return out
}

// Names lists the registered city names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

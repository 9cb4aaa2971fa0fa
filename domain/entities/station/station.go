package station

// Station struct that contains the location of a docking station
type Station struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Catalog stations of a city indexed by name
type Catalog map[string]Station

// Add inserts or replaces a station in the catalog
func (c Catalog) Add(s Station) {
	c[s.Name] = s
}

// Lookup returns the station with the given name
func (c Catalog) Lookup(name string) (Station, bool) {
	s, ok := c[name]
	return s, ok
}

package trips

// Sources maps each known city to its dataset file. The zero value has no
// entries; build one with NewSources.
type Sources struct {
	paths map[City]string
}

// NewSources copies paths so later changes to the caller's map are not seen.
func NewSources(paths map[City]string) Sources {
	copied := make(map[City]string, len(paths))
	for city, path := range paths {
		copied[city] = path
	}
	return Sources{paths: copied}
}

// Path returns the dataset file for city.
func (s Sources) Path(city City) (string, bool) {
	p, ok := s.paths[city]
	return p, ok && p != ""
}

// Cities returns the configured cities in KnownCities order.
func (s Sources) Cities() []City {
	var out []City
	for _, c := range KnownCities {
		if _, ok := s.Path(c); ok {
			out = append(out, c)
		}
	}
	return out
}

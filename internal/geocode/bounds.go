package geocode

// boundsBox is an inclusive lat/lon rectangle approximating a US territory.
// Rectangles rather than polygons is an intentional approximation; the NWS
// itself rejects points it does not cover, so edge cases near a border fail
// downstream with a coverage-gap error instead.
type boundsBox struct {
	name   string
	latMin float64
	latMax float64
	lonMin float64
	lonMax float64
}

var usBounds = []boundsBox{
	{"continental US", 24.5, 49.5, -125.0, -66.5},
	{"Alaska", 51.0, 71.5, -180.0, -130.0},
	{"Hawaii", 18.0, 23.0, -161.0, -154.0},
	{"Puerto Rico", 17.5, 18.6, -67.3, -65.5},
	{"US Virgin Islands", 17.6, 18.5, -65.1, -64.5},
	{"Guam / Northern Mariana Islands", 13.2, 20.6, 144.5, 146.1},
	{"American Samoa", -14.6, -14.1, -171.2, -170.5},
}

// WithinUS reports whether the coordinates fall inside any US territory
// bounding box.
func WithinUS(lat, lon float64) bool {
	for _, b := range usBounds {
		if lat >= b.latMin && lat <= b.latMax && lon >= b.lonMin && lon <= b.lonMax {
			return true
		}
	}
	return false
}

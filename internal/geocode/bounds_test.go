package geocode

import "testing"

func TestWithinUS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lat  float64
		lon  float64
		want bool
	}{
		{"denver", 39.7392, -104.9903, true},
		{"miami", 25.7617, -80.1918, true},
		{"seattle", 47.6062, -122.3321, true},
		{"anchorage", 61.2181, -149.9003, true},
		{"honolulu", 21.3069, -157.8583, true},
		{"san juan pr", 18.4655, -66.1057, true},
		{"charlotte amalie vi", 18.3419, -64.9307, true},
		{"hagatna guam", 13.4757, 144.7489, true},
		{"pago pago", -14.2756, -170.7020, true},
		{"continental south edge", 24.5, -81.0, true},
		{"continental north edge", 49.5, -95.0, true},
		{"london", 51.5074, -0.1278, false},
		{"mexico city", 19.4326, -99.1332, false},
		{"mid atlantic", 35.0, -40.0, false},
		{"just south of florida keys", 23.9, -81.0, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := WithinUS(tt.lat, tt.lon); got != tt.want {
				t.Errorf("WithinUS(%v, %v) = %v, want %v", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}

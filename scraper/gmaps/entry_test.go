package gmaps

import "testing"

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		href    string
		wantLat float64
		wantLng float64
		wantOK  bool
	}{
		{"https://www.google.com/maps/place/X/data=!3d26.2183!4d78.1828!16s", 26.2183, 78.1828, true},
		{"https://maps.example/!3d-33.8688!4d151.2093", -33.8688, 151.2093, true},
		{"https://www.google.com/maps/place/NoCoords", 0, 0, false},
		{"https://maps.example/!3d26.2183", 0, 0, false},
		{"https://maps.example/!4d78.1828", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		lat, lng, ok := parseCoordinates(tt.href)
		if ok != tt.wantOK {
			t.Errorf("parseCoordinates(%q) ok = %v; want %v", tt.href, ok, tt.wantOK)
			continue
		}
		if lat != tt.wantLat || lng != tt.wantLng {
			t.Errorf("parseCoordinates(%q) = %v, %v; want %v, %v",
				tt.href, lat, lng, tt.wantLat, tt.wantLng)
		}
	}
}

func TestBuildSearchURL(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"restaurant near DD Nagar", "https://www.google.com/maps/search/restaurant+near+DD+Nagar"},
		{"  cafe  ", "https://www.google.com/maps/search/cafe"},
		{"gym", "https://www.google.com/maps/search/gym"},
	}

	for _, tt := range tests {
		if got := buildSearchURL(tt.query); got != tt.want {
			t.Errorf("buildSearchURL(%q) = %q; want %q", tt.query, got, tt.want)
		}
	}
}

func TestStripAddressPrefix(t *testing.T) {
	if got := stripAddressPrefix("Address: 12 Main Road"); got != "12 Main Road" {
		t.Errorf("stripAddressPrefix = %q; want %q", got, "12 Main Road")
	}
	if got := stripAddressPrefix("12 Main Road"); got != "12 Main Road" {
		t.Errorf("stripAddressPrefix without prefix = %q; want unchanged", got)
	}
}

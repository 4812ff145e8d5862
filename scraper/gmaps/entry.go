package gmaps

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// latRegexp and lngRegexp match the signed decimal coordinate markers
	// embedded in a place detail URL.
	latRegexp = regexp.MustCompile(`!3d(-?[0-9.]+)`)
	lngRegexp = regexp.MustCompile(`!4d(-?[0-9.]+)`)
)

// listingEntry is one result card snapshotted from the results feed.
// Both fields are required; the snapshot script drops cards missing either.
type listingEntry struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// parseCoordinates extracts the latitude/longitude pair from a detail URL.
// Both markers must be present and parseable; a listing without them is
// skipped, which is the single hard filter in the pipeline.
func parseCoordinates(href string) (lat, lng float64, ok bool) {
	latMatch := latRegexp.FindStringSubmatch(href)
	lngMatch := lngRegexp.FindStringSubmatch(href)
	if latMatch == nil || lngMatch == nil {
		return 0, 0, false
	}

	lat, latErr := strconv.ParseFloat(latMatch[1], 64)
	lng, lngErr := strconv.ParseFloat(lngMatch[1], 64)
	if latErr != nil || lngErr != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

// buildSearchURL turns a free-text query into a maps search results URL.
func buildSearchURL(query string) string {
	return searchBaseURL + strings.ReplaceAll(strings.TrimSpace(query), " ", "+")
}

// stripAddressPrefix removes the fixed label prefix the address button
// carries in its accessible name.
func stripAddressPrefix(raw string) string {
	return strings.TrimPrefix(raw, "Address: ")
}

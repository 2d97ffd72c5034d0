package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// SiteLocation is the composite "<site>-<location>" key the occurrence and
// weather forms submit when picking a site/location pair.
type SiteLocation struct {
	SiteID     int64
	LocationID int64
}

// Pair parses a "<siteID>-<locationID>" key.
func Pair(raw string) (SiteLocation, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), "-", 2)
	if len(parts) != 2 {
		return SiteLocation{}, fmt.Errorf("invalid site-location pair: %q", raw)
	}
	siteID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return SiteLocation{}, fmt.Errorf("invalid site id in pair %q", raw)
	}
	locationID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return SiteLocation{}, fmt.Errorf("invalid location id in pair %q", raw)
	}
	return SiteLocation{SiteID: siteID, LocationID: locationID}, nil
}

// PairKey formats the composite key for a site/location pair.
func PairKey(siteID, locationID int64) string {
	return fmt.Sprintf("%d-%d", siteID, locationID)
}

// Package timezone pins wall-clock times to the hotel's zone (APP_TIMEZONE, an IANA name).
// Dates such as check-in and reservation days are read and printed in that zone.
package timezone

import (
	"time"

	"github.com/rs/zerolog/log"
)

var hotel = time.UTC

// Set switches the hotel zone. It is called once at startup, before any request is
// served; an empty or unknown name keeps UTC.
func Set(name string) {
	hotel = load(name)
}

func load(name string) *time.Location {
	if name == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("unknown timezone, falling back to UTC")

		return time.UTC
	}

	return loc
}

func Location() *time.Location {
	return hotel
}

func Now() time.Time {
	return time.Now().In(hotel)
}

// Format prints t in the hotel zone.
func Format(t time.Time, layout string) string {
	return t.In(hotel).Format(layout)
}

// Parse reads values without an offset as hotel-local time.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, hotel) //nolint:wrapcheck
}

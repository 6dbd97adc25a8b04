package types

import "errors"

var (
	// ErrDataUnavailable means the itinerary file could not be read.
	ErrDataUnavailable = errors.New("itinerary data unavailable")
	// ErrDataMalformed means the itinerary file could not be parsed or a
	// required field is missing.
	ErrDataMalformed = errors.New("itinerary data malformed")
	// ErrConfigurationMissing means no text-generation credential is configured.
	ErrConfigurationMissing = errors.New("text generation credential not configured")
	// ErrGenerationFailed wraps network and API failures of a tip generation.
	ErrGenerationFailed = errors.New("tip generation failed")

	ErrLocationNotFound = errors.New("location not found")
	ErrDayNotFound      = errors.New("day not found")
	ErrTaskNotFound     = errors.New("tip task not found")
)

package service

import (
	"context"
	"fmt"

	"geotagger-be/internal/pkg/logger"

	"github.com/kelvins/geocoder"
)

type IGeocodingService interface {
	// NameFor returns a human readable place name for the coordinate. It
	// never fails: when no API key is configured or the lookup errors, the
	// "Location <lat>, <lon>" fallback is returned.
	NameFor(ctx context.Context, lat, lon float64) string
}

type geocodingService struct {
	apiKey string
	logger logger.ILogger
}

func NewGeocodingService(apiKey string, logger logger.ILogger) IGeocodingService {
	if apiKey != "" {
		geocoder.ApiKey = apiKey
	}
	return &geocodingService{
		apiKey: apiKey,
		logger: logger,
	}
}

func (s *geocodingService) NameFor(ctx context.Context, lat, lon float64) string {
	fallback := fmt.Sprintf("Location %.4f, %.4f", lat, lon)
	if s.apiKey == "" {
		return fallback
	}

	addresses, err := geocoder.GeocodingReverse(geocoder.Location{
		Latitude:  lat,
		Longitude: lon,
	})
	if err != nil || len(addresses) == 0 {
		s.logger.Warn("geocoding", "reverse geocode failed, using fallback name", map[string]interface{}{
			"latitude":  lat,
			"longitude": lon,
			"error":     fmt.Sprintf("%v", err),
		})
		return fallback
	}

	if formatted := addresses[0].FormattedAddress; formatted != "" {
		return formatted
	}
	return fallback
}

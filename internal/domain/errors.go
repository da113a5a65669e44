package domain

import "errors"

var (
	// ErrInvalidRequest is returned when the country or query is missing
	ErrInvalidRequest = errors.New("country and query are required")

	// ErrSearchInProgress is returned when the client already has a search in flight
	ErrSearchInProgress = errors.New("a search is already in progress")

	// ErrSearchFailed is returned when the search flow fails unexpectedly
	ErrSearchFailed = errors.New("search failed")

	// ErrCountryNotFound is returned for unsupported country codes
	ErrCountryNotFound = errors.New("country not supported")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrFXAPIFailure is returned when the exchange rate API request fails
	ErrFXAPIFailure = errors.New("exchange rate API request failed")

	// ErrRateNotFound is returned when no rate exists for a currency pair
	ErrRateNotFound = errors.New("exchange rate not found")
)

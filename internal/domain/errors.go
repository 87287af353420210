package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	// ErrMissingBaseURL indicates the required base URL option is absent
	ErrMissingBaseURL = errors.New("base URL is required")

	// ErrContainerNotFound indicates no element matched the container selector
	ErrContainerNotFound = errors.New("no container found")

	// ErrNoEntryPoint indicates the manifest contains no usable entry point
	ErrNoEntryPoint = errors.New("no entry point found in manifest")
)

// ConfigError represents an invalid or missing configuration option.
// The pipeline never starts when one is raised.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error for %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(field string, err error) *ConfigError {
	return &ConfigError{Field: field, Err: err}
}

// FetchError represents a failed manifest or asset retrieval
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch error for %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch error for %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError
func NewFetchError(url string, statusCode int, err error) *FetchError {
	return &FetchError{
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}

// ManifestParseError represents a structurally invalid manifest body
type ManifestParseError struct {
	URL string
	Err error
}

func (e *ManifestParseError) Error() string {
	return fmt.Sprintf("manifest parse error for %s: %v", e.URL, e.Err)
}

func (e *ManifestParseError) Unwrap() error {
	return e.Err
}

// EntryResolutionError indicates no entry point matched any resolution rule.
// Keys carries the available manifest keys for diagnosability.
type EntryResolutionError struct {
	Keys []string
}

func (e *EntryResolutionError) Error() string {
	return fmt.Sprintf("no entry point found in manifest (available keys: %s)",
		strings.Join(e.Keys, ", "))
}

func (e *EntryResolutionError) Unwrap() error {
	return ErrNoEntryPoint
}

// AssetLoadError indicates a stylesheet or script could not be loaded
type AssetLoadError struct {
	URL string
	Err error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("asset failed to load: %s: %v", e.URL, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

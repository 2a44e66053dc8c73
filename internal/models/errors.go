// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package models

import (
	"errors"
	"fmt"
)

// Error kinds returned by the planning core. Callers match them with errors.Is.
var (
	ErrNotFound       = errors.New("not found")
	ErrMalformedInput = errors.New("malformed input")

	// ErrBuildingsNotFound does not say which endpoint is missing.
	ErrBuildingsNotFound = fmt.Errorf("buildings %w", ErrNotFound)
	ErrCityNotFound      = fmt.Errorf("city %w", ErrNotFound)
)

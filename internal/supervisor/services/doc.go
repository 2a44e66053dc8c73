// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

// Package services adapts application components to suture.Service.
//
// HTTPServerService turns the blocking ListenAndServe of an *http.Server
// into a context-aware Serve: cancellation triggers Shutdown with a
// bounded drain timeout, and listener failures are returned so the
// supervisor restarts the server.
package services

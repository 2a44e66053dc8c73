// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

// Package logging provides the zerolog setup shared by the server.
//
// The global logger is configured once from the logging section of the
// configuration:
//
//	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Timestamp: true})
//	logging.Info().Str("addr", addr).Msg("server listening")
//
// Core components take a zerolog.Logger in their constructors and tag it
// with a component field. HTTP handlers log through Ctx, which adds the
// request_id and correlation_id placed in the context by the request
// middleware:
//
//	logging.Ctx(r.Context()).Error().Err(err).Msg("recommendation failed")
//
// Libraries that only speak log/slog, such as the supervisor event hook,
// receive a slog.Logger from NewSlogLogger.
//
// Always terminate event chains with Msg or Send; an unterminated chain
// writes nothing.
package logging

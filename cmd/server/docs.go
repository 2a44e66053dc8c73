// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

// @title Tripweaver API
// @version 1.0
// @description Trip planning between landmark buildings with mood-based recommendations at the destination.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address under /api/v1.
// @description Rejected requests receive 429 with error code `RATE_LIMITED`.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "CITY_NOT_FOUND",
// @description     "message": "City not found",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-01-01T12:00:00Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/tripweaver/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:5000
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health checks
//
// @tag.name Catalog
// @tag.description Cities and buildings usable as route endpoints
//
// @tag.name Trips
// @tag.description Route planning and place recommendations
//
// @tag.name Advisory
// @tag.description Synthetic weather, traffic and travel chat
package main

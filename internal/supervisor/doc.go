// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

/*
Package supervisor runs the long-lived services of the server under a
suture v4 supervision tree.

	tripweaver (root)
	└── api-layer
	    └── http-server (services.HTTPServerService)

A service that returns an error is restarted with exponential backoff.
Once FailureThreshold failures accumulate (decaying at FailureDecay per
second) the supervisor waits FailureBackoff before the next restart.
Canceling the context passed to Serve stops every service, each within
ShutdownTimeout; UnstoppedServiceReport lists the ones that did not.

Supervisor events go to a slog.Logger through sutureslog. The server
passes logging.NewSlogLogger so they land in the zerolog output:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    FailureThreshold: 5,
	    FailureBackoff:   15 * time.Second,
	    ShutdownTimeout:  10 * time.Second,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	errCh := tree.ServeBackground(ctx)
*/
package supervisor

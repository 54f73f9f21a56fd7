// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

# Helpers

  - WithLogging: structured request/completion logging via slog
  - JSONResponse: write a JSON body with status code
  - ErrorResponse: write the standard error envelope
  - ParseJSONBody: decode a request body with a 1 MiB cap; malformed or
    oversized bodies fail here so the domain layer only ever sees valid
    input
  - CORS: permissive cross-origin headers plus preflight handling

# Error Envelope

All error responses share one shape:

	{"error": "Conflict", "message": "already voted"}

where error is the HTTP status text and message is the domain detail.
*/
package middleware

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

Flags take precedence over the environment:

  - PORT (-p): server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): file path for sqlite (default: aorb.db) or a
    postgres connection string (required when -t postgres)

A .env file in the working directory is loaded by main before parsing.
*/
package cliparse

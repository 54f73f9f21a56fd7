// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation, and snapshot IO.

# Drivers

Two database/sql drivers are supported, selected by DATABASE_TYPE:

  - sqlite (modernc.org/sqlite): default; DATABASE_URL is a file path or
    ":memory:"
  - postgres (lib/pq): DATABASE_URL is a connection string

All queries use $N placeholders, which both drivers accept.

# Snapshot Layout

Durability is a whole-state snapshot, not incremental writes: a single row
in the snapshot table holds the entire {games: [...]} JSON document. Every
store mutation rewrites the row before the operation completes. LoadSnapshot
returns nil for a missing row so startup can fall back to an empty
collection; the store treats malformed payloads the same way.
*/
package db

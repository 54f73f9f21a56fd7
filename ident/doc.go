// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident generates opaque random identifiers.

Game and session ids are crypto/rand hex strings; 8 bytes (16 hex chars)
gives 64 bits of entropy, which makes collisions negligible for the
expected id space. Participant tokens are NOT generated here: they are
client-supplied idempotency keys, opaque to the server.
*/
package ident

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ws serves hub subscriptions over websockets.

Native and mobile clients that cannot hold an EventSource open use these
endpoints instead of the SSE ones; both transports deliver identical
events from the same hub scopes. Frames are JSON:

	{"event": "voteUpdated", "data": {"sessionId": "...", ...}}

Connections are receive-only. The server pushes a current-state snapshot
on connect and incremental events afterwards; anything the client writes
is discarded, and a failed read is treated as a disconnect.
*/
package ws

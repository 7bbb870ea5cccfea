// Package server provides HTTP routing, middleware, and the token relay handlers.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering. Method filtering
// happens inside the middleware stack so CORS preflight requests never see a 405.
//
// # Relay Handler
//
// [RelayHandler] serves three routes:
//
//	GET  /                → plain-text welcome message
//	POST /api/save-token  → stores {"accessToken": "..."} in the [TokenSlot]
//	GET  /api/user-songs  → relays the upstream saved tracks using the stored token
//
// The handler holds a single [TokenSlot]: one token per process, overwritten by every save. There is no
// per-user or per-session partitioning, so concurrent users of one process replace each other's token.
// The slot is guarded by a lock; ordering between a concurrent save and read is not defined.
//
// Failures are answered with an [ErrorResponse]:
//
//	400 {"error": "Access token is missing"}
//	401 {"error": "No access token available"}
//	500 {"error": "Failed to fetch songs from Spotify", "details": <upstream body>}
//	500 {"error": "An error occurred while fetching songs", "details": <message>}
//
// # Middleware
//
// [NewRelayRouter] installs request IDs, panic recovery, request logging and CORS (all origins by default).
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which lists routes, allowing handlers to register
// multiple routes to encapsulate route definitions within the implementation.
package server

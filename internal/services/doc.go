// Package services contains the clients for upstream music streaming APIs.
//
// # Spotify Client
//
// [SpotifyClient] relays reads to the Spotify Web API on behalf of a caller that already holds an access token.
// The client never acquires or refreshes tokens: each call is handed the bearer credential to present,
// which is attached by an [oauth2.Transport] backed by a static token source.
//
// Requests are issued with resty with retries disabled, so every call is exactly one upstream round trip.
// An optional [rate.Limiter] bounds outbound request rate when configured.
//
// # Error Handling
//
// Failures are reported with typed errors that match the sentinels in the shared package:
//   - [UpstreamError] : the upstream answered with a non-200 status, matches [shared.ErrUpstreamRejected]
//   - [TransportError] : the round trip did not complete, matches [shared.ErrAPIRequest]
//   - [shared.ErrNotAuthenticated] : no token was supplied
//
// Upstream bodies are kept as raw bytes ([RawResponse]) so they can be passed through unchanged.
package services

// Spotify Web API client used by the relay
//
// Endpoint reference: https://developer.spotify.com/documentation/web-api/reference/get-users-saved-tracks
package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/genie/internal/shared"
	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	spotifyBaseURL  = "https://api.spotify.com/v1"
	savedTracksPath = "/me/tracks"
)

// query parameters relayed from the caller to the saved tracks endpoint
var savedTracksParams = []string{"limit", "offset", "market"}

// SpotifyOpts configures a [SpotifyClient].
type SpotifyOpts struct {
	BaseURL   string
	Timeout   time.Duration // zero leaves the call unbounded
	RateLimit float64       // requests per second; zero disables limiting
	Transport http.RoundTripper
	Logger    *log.Logger
}

// SpotifyClient performs bearer-authenticated reads against the Spotify Web API.
//
// The client holds no credential; each call receives the token it should present.
type SpotifyClient struct {
	baseURL   string
	timeout   time.Duration
	limiter   *rate.Limiter
	transport http.RoundTripper
	logger    *log.Logger
}

// NewSpotifyClient creates a new [SpotifyClient] from opts.
func NewSpotifyClient(opts SpotifyOpts) *SpotifyClient {
	if opts.BaseURL == "" {
		opts.BaseURL = spotifyBaseURL
	}
	if opts.Transport == nil {
		opts.Transport = http.DefaultTransport
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	return &SpotifyClient{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		timeout:   opts.Timeout,
		limiter:   limiter,
		transport: opts.Transport,
		logger:    shared.WithLogger(opts.Logger, "service", "spotify"),
	}
}

// client builds a resty client whose transport presents token as a bearer credential.
func (s *SpotifyClient) client(token string) *resty.Client {
	transport := &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
		Base:   s.transport,
	}

	return resty.NewWithClient(&http.Client{Transport: transport, Timeout: s.timeout}).
		SetLogger(s.logger).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")
}

// SavedTracks fetches the saved tracks of the user owning token with exactly one upstream round trip.
//
// Only the limit, offset and market parameters of query are forwarded.
// A non-200 status yields an [UpstreamError]; a failed round trip yields a [TransportError].
func (s *SpotifyClient) SavedTracks(ctx context.Context, token string, query url.Values) (*RawResponse, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: no access token", shared.ErrNotAuthenticated)
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Err: err}
		}
	}

	req := s.client(token).R().SetContext(ctx)
	for _, key := range savedTracksParams {
		if v := query.Get(key); v != "" {
			req.SetQueryParam(key, v)
		}
	}

	start := time.Now()
	resp, err := req.Get(s.baseURL + savedTracksPath)
	if err != nil {
		s.logger.Warn("saved tracks request failed", "error", err)
		return nil, &TransportError{Err: err}
	}

	s.logger.Debug("saved tracks response", "status", resp.StatusCode(), "duration", time.Since(start))

	if resp.StatusCode() != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode(), Body: resp.Body()}
	}

	return &RawResponse{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

package igdb

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// EndpointClient is the generic query client bound to one resource path.
type EndpointClient[T Entity] interface {
	// Path returns the resource path segment the client is bound to.
	Path() string
	// Get sends the query and decodes every returned record.
	Get(ctx context.Context, query *Query) ([]T, error)
	// GetByID returns all fields of up to limit records with the given id.
	GetByID(ctx context.Context, id uint64, limit int) ([]T, error)
	// GetFirstByID returns the record with the given id or ErrNotFound.
	GetFirstByID(ctx context.Context, id uint64) (T, error)
	// GetByName returns records whose name contains the given substring.
	GetByName(ctx context.Context, name string, limit int) ([]T, error)
	// GetFirstByName returns the first record whose name contains the substring.
	GetFirstByName(ctx context.Context, name string) (T, error)
}

// GameEndpointClient is an EndpointClient for resources linked to a game.
type GameEndpointClient[T Entity] interface {
	EndpointClient[T]
	// GetByGameID returns records whose game field equals gameID.
	GetByGameID(ctx context.Context, gameID uint64, limit int) ([]T, error)
}

// ImageEndpointClient is an EndpointClient for image resources.
type ImageEndpointClient[T ImageEntity] interface {
	EndpointClient[T]
	// DownloadByID resolves the record, fetches its image in the given size
	// and writes it to destination. Nothing is left at destination on failure.
	DownloadByID(ctx context.Context, id uint64, destination string, size ImageSize) error
	// ImageURL resolves the record and returns the CDN URL of its image.
	ImageURL(ctx context.Context, id uint64, size ImageSize) (string, error)
}

// MediaEndpointClient is an image resource that is also linked to a game.
type MediaEndpointClient[T ImageEntity] interface {
	ImageEndpointClient[T]
	GetByGameID(ctx context.Context, gameID uint64, limit int) ([]T, error)
}

// Client is the root client. Resource clients are created once and share
// the underlying transport.
type Client interface {
	Games() EndpointClient[Game]
	Characters() EndpointClient[Character]
	Platforms() EndpointClient[Platform]
	Covers() MediaEndpointClient[Cover]
	Screenshots() MediaEndpointClient[Screenshot]
	GameEngines() EndpointClient[GameEngine]
	Franchises() EndpointClient[Franchise]
	ReleaseDates() GameEndpointClient[ReleaseDate]
	MultiplayerModes() GameEndpointClient[MultiplayerMode]
	Themes() EndpointClient[Theme]
	Websites() GameEndpointClient[Website]
	AgeRatings() EndpointClient[AgeRating]
	Companies() EndpointClient[Company]
	Artworks() MediaEndpointClient[Artwork]
	GameModes() EndpointClient[GameMode]
	PlayerPerspectives() EndpointClient[PlayerPerspective]
	CharacterMugShots() ImageEndpointClient[CharacterMugShot]
	PlatformLogos() ImageEndpointClient[PlatformLogo]
	GameVideos() GameEndpointClient[GameVideo]

	// CreateRequest returns a new, empty query.
	CreateRequest() *Query
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an igdb.Client.
//
// Exactly one of AccessToken and ClientSecret is normally set. When both are
// present the static token is used first and the client credentials are
// used to obtain a fresh token after a 401.
type Config struct {
	// ClientID: Twitch application client id, sent as the Client-ID header.
	ClientID string
	// AccessToken: app access token sent as a Bearer token.
	AccessToken string
	// ClientSecret: Twitch application secret for the client_credentials grant.
	ClientSecret string
	// TokenURL: OAuth2 token endpoint. Defaults to the Twitch endpoint.
	TokenURL string

	// BaseURL: API root. Defaults to https://api.igdb.com/v4.
	BaseURL string
	// ImageBaseURL: media CDN root used by downloads.
	ImageBaseURL string

	// HTTPTimeout: per-request timeout of the underlying http.Client.
	HTTPTimeout time.Duration
	// RetryMax: retries for connection errors and 5xx responses. Zero
	// disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration

	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// Interceptors: optional request/response hooks run around every call.
	Interceptors *InterceptorChain
	// HTTPClient: optional base client whose transport is reused. The client
	// is copied, so HTTPTimeout never changes the caller's value.
	HTTPClient *http.Client
	// TracerProvider: creates the span tracer. Defaults to the global
	// OpenTelemetry provider.
	TracerProvider trace.TracerProvider
}

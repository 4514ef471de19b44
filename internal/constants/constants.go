package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600

	// DownloadFilePerm is the permission for downloaded media files.
	DownloadFilePerm = 0644
)

// Service endpoints.
const (
	// DefaultBaseURL is the IGDB v4 API root.
	DefaultBaseURL = "https://api.igdb.com/v4"

	// DefaultImageBaseURL is the IGDB image CDN root.
	DefaultImageBaseURL = "https://images.igdb.com/igdb/image/upload"

	// TwitchTokenURL issues app access tokens for IGDB.
	TwitchTokenURL = "https://id.twitch.tv/oauth2/token"

	// DefaultUserAgent is sent when the caller does not override it.
	DefaultUserAgent = "igdb-go"
)

// Request headers.
const (
	// HeaderClientID carries the Twitch application client id.
	HeaderClientID = "Client-ID"

	// HeaderAuthorization carries the bearer token.
	HeaderAuthorization = "Authorization"

	// ContentTypeText is the content type of query bodies.
	ContentTypeText = "text/plain"

	// ContentTypeJSON is the content type of JSON bodies and responses.
	ContentTypeJSON = "application/json"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are disabled unless RetryMax is set.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// HTTP status codes commonly used.
const (
	// HTTPStatusBadRequest is the first client error status.
	HTTPStatusBadRequest = 400

	// HTTPStatusUnauthorized triggers a token refresh.
	HTTPStatusUnauthorized = 401
)

// Token handling.
const (
	// TokenExpirationBuffer is the buffer time before token expiration.
	TokenExpirationBuffer = 30 * time.Second
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit limits concurrent downloads in the CLI.
	DefaultConcurrencyLimit = 4
)

// Display limits.
const (
	// DefaultFindLimit is the page size used by name lookups in the CLI.
	DefaultFindLimit = 10

	// StringTruncationLimit truncates long table cells.
	StringTruncationLimit = 60
)

// Validation and limits.
const (
	// MinimumArgumentCount is the argument count of "config set KEY VALUE".
	MinimumArgumentCount = 2
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

package client

import (
	"strings"

	"github.com/fivetwenty-io/igdb/internal/auth"
	"github.com/fivetwenty-io/igdb/internal/constants"
	"github.com/fivetwenty-io/igdb/internal/http"
	"github.com/fivetwenty-io/igdb/pkg/igdb"
)

// Client implements the igdb.Client interface.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	imageBaseURL string

	// Resource clients
	games              *Endpoint[igdb.Game]
	characters         *Endpoint[igdb.Character]
	platforms          *Endpoint[igdb.Platform]
	covers             *MediaEndpoint[igdb.Cover]
	screenshots        *MediaEndpoint[igdb.Screenshot]
	gameEngines        *Endpoint[igdb.GameEngine]
	franchises         *Endpoint[igdb.Franchise]
	releaseDates       *GameEndpoint[igdb.ReleaseDate]
	multiplayerModes   *GameEndpoint[igdb.MultiplayerMode]
	themes             *Endpoint[igdb.Theme]
	websites           *GameEndpoint[igdb.Website]
	ageRatings         *Endpoint[igdb.AgeRating]
	companies          *Endpoint[igdb.Company]
	artworks           *MediaEndpoint[igdb.Artwork]
	gameModes          *Endpoint[igdb.GameMode]
	playerPerspectives *Endpoint[igdb.PlayerPerspective]
	characterMugShots  *ImageEndpoint[igdb.CharacterMugShot]
	platformLogos      *ImageEndpoint[igdb.PlatformLogo]
	gameVideos         *GameEndpoint[igdb.GameVideo]
}

var _ igdb.Client = (*Client)(nil)

// createTokenManager creates the token manager matching the credentials.
// A static token plus a client secret starts with the token and falls back
// to the client credentials grant once it is rejected.
func createTokenManager(config *igdb.Config) (auth.TokenManager, error) {
	switch {
	case config.ClientSecret != "":
		return auth.NewOAuth2TokenManager(&auth.OAuth2Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			TokenURL:     config.TokenURL,
			AccessToken:  config.AccessToken,
			HTTPClient:   config.HTTPClient,
		}), nil
	case config.AccessToken != "":
		return auth.NewStaticTokenManager(config.AccessToken), nil
	default:
		return nil, igdb.ErrCredentialsRequired
	}
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *igdb.Config) []http.Option {
	httpOpts := []http.Option{
		http.WithClientID(config.ClientID),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	switch {
	case config.HTTPTimeout > 0:
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	case config.HTTPClient == nil:
		httpOpts = append(httpOpts, http.WithTimeout(constants.DefaultHTTPTimeout))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.TracerProvider != nil {
		httpOpts = append(httpOpts, http.WithTracerProvider(config.TracerProvider))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return httpOpts
}

// New creates a new IGDB client. It performs no network I/O.
func New(config *igdb.Config) (*Client, error) {
	if config == nil {
		return nil, igdb.ErrConfigRequired
	}

	if strings.TrimSpace(config.ClientID) == "" {
		return nil, igdb.ErrClientIDRequired
	}

	tokenManager, err := createTokenManager(config)
	if err != nil {
		return nil, err
	}

	return NewWithTokenManager(config, tokenManager)
}

// NewWithTokenManager creates a new IGDB client with a custom token manager.
func NewWithTokenManager(config *igdb.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, igdb.ErrConfigRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	imageBaseURL := config.ImageBaseURL
	if imageBaseURL == "" {
		imageBaseURL = constants.DefaultImageBaseURL
	}

	httpClient := http.NewClient(baseURL, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		baseURL:      httpClient.BaseURL(),
		imageBaseURL: strings.TrimRight(imageBaseURL, "/"),
	}

	client.initializeResourceClients()

	return client, nil
}

// CreateRequest implements igdb.Client.CreateRequest.
func (c *Client) CreateRequest() *igdb.Query {
	return igdb.NewQuery()
}

// Games implements igdb.Client.Games.
func (c *Client) Games() igdb.EndpointClient[igdb.Game] {
	return c.games
}

// Characters implements igdb.Client.Characters.
func (c *Client) Characters() igdb.EndpointClient[igdb.Character] {
	return c.characters
}

// Platforms implements igdb.Client.Platforms.
func (c *Client) Platforms() igdb.EndpointClient[igdb.Platform] {
	return c.platforms
}

// Covers implements igdb.Client.Covers.
func (c *Client) Covers() igdb.MediaEndpointClient[igdb.Cover] {
	return c.covers
}

// Screenshots implements igdb.Client.Screenshots.
func (c *Client) Screenshots() igdb.MediaEndpointClient[igdb.Screenshot] {
	return c.screenshots
}

// GameEngines implements igdb.Client.GameEngines.
func (c *Client) GameEngines() igdb.EndpointClient[igdb.GameEngine] {
	return c.gameEngines
}

// Franchises implements igdb.Client.Franchises.
func (c *Client) Franchises() igdb.EndpointClient[igdb.Franchise] {
	return c.franchises
}

// ReleaseDates implements igdb.Client.ReleaseDates.
func (c *Client) ReleaseDates() igdb.GameEndpointClient[igdb.ReleaseDate] {
	return c.releaseDates
}

// MultiplayerModes implements igdb.Client.MultiplayerModes.
func (c *Client) MultiplayerModes() igdb.GameEndpointClient[igdb.MultiplayerMode] {
	return c.multiplayerModes
}

// Themes implements igdb.Client.Themes.
func (c *Client) Themes() igdb.EndpointClient[igdb.Theme] {
	return c.themes
}

// Websites implements igdb.Client.Websites.
func (c *Client) Websites() igdb.GameEndpointClient[igdb.Website] {
	return c.websites
}

// AgeRatings implements igdb.Client.AgeRatings.
func (c *Client) AgeRatings() igdb.EndpointClient[igdb.AgeRating] {
	return c.ageRatings
}

// Companies implements igdb.Client.Companies.
func (c *Client) Companies() igdb.EndpointClient[igdb.Company] {
	return c.companies
}

// Artworks implements igdb.Client.Artworks.
func (c *Client) Artworks() igdb.MediaEndpointClient[igdb.Artwork] {
	return c.artworks
}

// GameModes implements igdb.Client.GameModes.
func (c *Client) GameModes() igdb.EndpointClient[igdb.GameMode] {
	return c.gameModes
}

// PlayerPerspectives implements igdb.Client.PlayerPerspectives.
func (c *Client) PlayerPerspectives() igdb.EndpointClient[igdb.PlayerPerspective] {
	return c.playerPerspectives
}

// CharacterMugShots implements igdb.Client.CharacterMugShots.
func (c *Client) CharacterMugShots() igdb.ImageEndpointClient[igdb.CharacterMugShot] {
	return c.characterMugShots
}

// PlatformLogos implements igdb.Client.PlatformLogos.
func (c *Client) PlatformLogos() igdb.ImageEndpointClient[igdb.PlatformLogo] {
	return c.platformLogos
}

// GameVideos implements igdb.Client.GameVideos.
func (c *Client) GameVideos() igdb.GameEndpointClient[igdb.GameVideo] {
	return c.gameVideos
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.games = NewEndpoint[igdb.Game](c.httpClient, igdb.EndpointGames)
	c.characters = NewEndpoint[igdb.Character](c.httpClient, igdb.EndpointCharacters)
	c.platforms = NewEndpoint[igdb.Platform](c.httpClient, igdb.EndpointPlatforms)
	c.covers = NewMediaEndpoint[igdb.Cover](c.httpClient, igdb.EndpointCovers, c.imageBaseURL)
	c.screenshots = NewMediaEndpoint[igdb.Screenshot](c.httpClient, igdb.EndpointScreenshots, c.imageBaseURL)
	c.gameEngines = NewEndpoint[igdb.GameEngine](c.httpClient, igdb.EndpointGameEngines)
	c.franchises = NewEndpoint[igdb.Franchise](c.httpClient, igdb.EndpointFranchises)
	c.releaseDates = NewGameEndpoint[igdb.ReleaseDate](c.httpClient, igdb.EndpointReleaseDates)
	c.multiplayerModes = NewGameEndpoint[igdb.MultiplayerMode](c.httpClient, igdb.EndpointMultiplayerModes)
	c.themes = NewEndpoint[igdb.Theme](c.httpClient, igdb.EndpointThemes)
	c.websites = NewGameEndpoint[igdb.Website](c.httpClient, igdb.EndpointWebsites)
	c.ageRatings = NewEndpoint[igdb.AgeRating](c.httpClient, igdb.EndpointAgeRatings)
	c.companies = NewEndpoint[igdb.Company](c.httpClient, igdb.EndpointCompanies)
	c.artworks = NewMediaEndpoint[igdb.Artwork](c.httpClient, igdb.EndpointArtworks, c.imageBaseURL)
	c.gameModes = NewEndpoint[igdb.GameMode](c.httpClient, igdb.EndpointGameModes)
	c.playerPerspectives = NewEndpoint[igdb.PlayerPerspective](c.httpClient, igdb.EndpointPlayerPerspectives)
	c.characterMugShots = NewImageEndpoint[igdb.CharacterMugShot](c.httpClient, igdb.EndpointCharacterMugShots, c.imageBaseURL)
	c.platformLogos = NewImageEndpoint[igdb.PlatformLogo](c.httpClient, igdb.EndpointPlatformLogos, c.imageBaseURL)
	c.gameVideos = NewGameEndpoint[igdb.GameVideo](c.httpClient, igdb.EndpointGameVideos)
}

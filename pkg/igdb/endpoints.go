package igdb

// Resource paths under the API root.
const (
	EndpointGames              = "games"
	EndpointCharacters         = "characters"
	EndpointPlatforms          = "platforms"
	EndpointCovers             = "covers"
	EndpointScreenshots        = "screenshots"
	EndpointGameEngines        = "game_engines"
	EndpointFranchises         = "franchises"
	EndpointReleaseDates       = "release_dates"
	EndpointMultiplayerModes   = "multiplayer_modes"
	EndpointThemes             = "themes"
	EndpointWebsites           = "websites"
	EndpointAgeRatings         = "age_ratings"
	EndpointCompanies          = "companies"
	EndpointArtworks           = "artworks"
	EndpointGameModes          = "game_modes"
	EndpointPlayerPerspectives = "player_perspectives"
	EndpointCharacterMugShots  = "character_mug_shots"
	EndpointPlatformLogos      = "platform_logos"
	EndpointGameVideos         = "game_videos"
)

// Endpoints lists every resource path the root client exposes.
func Endpoints() []string {
	return []string{
		EndpointGames,
		EndpointCharacters,
		EndpointPlatforms,
		EndpointCovers,
		EndpointScreenshots,
		EndpointGameEngines,
		EndpointFranchises,
		EndpointReleaseDates,
		EndpointMultiplayerModes,
		EndpointThemes,
		EndpointWebsites,
		EndpointAgeRatings,
		EndpointCompanies,
		EndpointArtworks,
		EndpointGameModes,
		EndpointPlayerPerspectives,
		EndpointCharacterMugShots,
		EndpointPlatformLogos,
		EndpointGameVideos,
	}
}

package igdb

import "time"

// Entity is implemented by every resource record returned by the service.
type Entity interface {
	GetID() uint64
}

// ImageEntity is an entity that points at an image on the media CDN.
type ImageEntity interface {
	Entity
	GetImageID() string
}

// Named is implemented by entities that carry a name attribute.
type Named interface {
	GetName() string
}

// Timestamp is a unix timestamp in seconds as returned by the service.
type Timestamp int64

// Time converts the timestamp to a time.Time in UTC. Zero stays zero.
func (t Timestamp) Time() time.Time {
	if t == 0 {
		return time.Time{}
	}

	return time.Unix(int64(t), 0).UTC()
}

// Resource holds the attributes shared by most records.
type Resource struct {
	ID        uint64    `json:"id"                   yaml:"id"`
	Checksum  string    `json:"checksum,omitempty"   yaml:"checksum,omitempty"`
	CreatedAt Timestamp `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt Timestamp `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// GetID implements Entity.
func (r Resource) GetID() uint64 {
	return r.ID
}

// NamedResource is a Resource with the name/slug/url triple.
type NamedResource struct {
	Resource
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Slug string `json:"slug,omitempty" yaml:"slug,omitempty"`
	URL  string `json:"url,omitempty"  yaml:"url,omitempty"`
}

// GetName implements Named.
func (r NamedResource) GetName() string {
	return r.Name
}

// Image holds the attributes shared by every image record.
type Image struct {
	ID           uint64 `json:"id"                      yaml:"id"`
	AlphaChannel bool   `json:"alpha_channel,omitempty" yaml:"alpha_channel,omitempty"`
	Animated     bool   `json:"animated,omitempty"      yaml:"animated,omitempty"`
	Checksum     string `json:"checksum,omitempty"      yaml:"checksum,omitempty"`
	Height       int    `json:"height,omitempty"        yaml:"height,omitempty"`
	ImageID      string `json:"image_id,omitempty"      yaml:"image_id,omitempty"`
	URL          string `json:"url,omitempty"           yaml:"url,omitempty"`
	Width        int    `json:"width,omitempty"         yaml:"width,omitempty"`
}

// GetID implements Entity.
func (i Image) GetID() uint64 {
	return i.ID
}

// GetImageID implements ImageEntity.
func (i Image) GetImageID() string {
	return i.ImageID
}

// Game is a video game.
type Game struct {
	NamedResource
	AgeRatings            []uint64  `json:"age_ratings,omitempty"             yaml:"age_ratings,omitempty"`
	AggregatedRating      float64   `json:"aggregated_rating,omitempty"       yaml:"aggregated_rating,omitempty"`
	AggregatedRatingCount int       `json:"aggregated_rating_count,omitempty" yaml:"aggregated_rating_count,omitempty"`
	AlternativeNames      []uint64  `json:"alternative_names,omitempty"       yaml:"alternative_names,omitempty"`
	Artworks              []uint64  `json:"artworks,omitempty"                yaml:"artworks,omitempty"`
	Bundles               []uint64  `json:"bundles,omitempty"                 yaml:"bundles,omitempty"`
	Category              int       `json:"category,omitempty"                yaml:"category,omitempty"`
	Collection            uint64    `json:"collection,omitempty"              yaml:"collection,omitempty"`
	Cover                 uint64    `json:"cover,omitempty"                   yaml:"cover,omitempty"`
	DLCs                  []uint64  `json:"dlcs,omitempty"                    yaml:"dlcs,omitempty"`
	Expansions            []uint64  `json:"expansions,omitempty"              yaml:"expansions,omitempty"`
	ExternalGames         []uint64  `json:"external_games,omitempty"          yaml:"external_games,omitempty"`
	FirstReleaseDate      Timestamp `json:"first_release_date,omitempty"      yaml:"first_release_date,omitempty"`
	Follows               int       `json:"follows,omitempty"                 yaml:"follows,omitempty"`
	Franchise             uint64    `json:"franchise,omitempty"               yaml:"franchise,omitempty"`
	Franchises            []uint64  `json:"franchises,omitempty"              yaml:"franchises,omitempty"`
	GameEngines           []uint64  `json:"game_engines,omitempty"            yaml:"game_engines,omitempty"`
	GameModes             []uint64  `json:"game_modes,omitempty"              yaml:"game_modes,omitempty"`
	Genres                []uint64  `json:"genres,omitempty"                  yaml:"genres,omitempty"`
	Hypes                 int       `json:"hypes,omitempty"                   yaml:"hypes,omitempty"`
	InvolvedCompanies     []uint64  `json:"involved_companies,omitempty"      yaml:"involved_companies,omitempty"`
	Keywords              []uint64  `json:"keywords,omitempty"                yaml:"keywords,omitempty"`
	MultiplayerModes      []uint64  `json:"multiplayer_modes,omitempty"       yaml:"multiplayer_modes,omitempty"`
	ParentGame            uint64    `json:"parent_game,omitempty"             yaml:"parent_game,omitempty"`
	Platforms             []uint64  `json:"platforms,omitempty"               yaml:"platforms,omitempty"`
	PlayerPerspectives    []uint64  `json:"player_perspectives,omitempty"     yaml:"player_perspectives,omitempty"`
	Rating                float64   `json:"rating,omitempty"                  yaml:"rating,omitempty"`
	RatingCount           int       `json:"rating_count,omitempty"            yaml:"rating_count,omitempty"`
	ReleaseDates          []uint64  `json:"release_dates,omitempty"           yaml:"release_dates,omitempty"`
	Screenshots           []uint64  `json:"screenshots,omitempty"             yaml:"screenshots,omitempty"`
	SimilarGames          []uint64  `json:"similar_games,omitempty"           yaml:"similar_games,omitempty"`
	Status                int       `json:"status,omitempty"                  yaml:"status,omitempty"`
	Storyline             string    `json:"storyline,omitempty"               yaml:"storyline,omitempty"`
	Summary               string    `json:"summary,omitempty"                 yaml:"summary,omitempty"`
	Tags                  []uint64  `json:"tags,omitempty"                    yaml:"tags,omitempty"`
	Themes                []uint64  `json:"themes,omitempty"                  yaml:"themes,omitempty"`
	TotalRating           float64   `json:"total_rating,omitempty"            yaml:"total_rating,omitempty"`
	TotalRatingCount      int       `json:"total_rating_count,omitempty"      yaml:"total_rating_count,omitempty"`
	VersionParent         uint64    `json:"version_parent,omitempty"          yaml:"version_parent,omitempty"`
	VersionTitle          string    `json:"version_title,omitempty"           yaml:"version_title,omitempty"`
	Videos                []uint64  `json:"videos,omitempty"                  yaml:"videos,omitempty"`
	Websites              []uint64  `json:"websites,omitempty"                yaml:"websites,omitempty"`
}

// Character is a video game character.
type Character struct {
	NamedResource
	AKAs        []string `json:"akas,omitempty"         yaml:"akas,omitempty"`
	CountryName string   `json:"country_name,omitempty" yaml:"country_name,omitempty"`
	Description string   `json:"description,omitempty"  yaml:"description,omitempty"`
	Games       []uint64 `json:"games,omitempty"        yaml:"games,omitempty"`
	Gender      int      `json:"gender,omitempty"       yaml:"gender,omitempty"`
	MugShot     uint64   `json:"mug_shot,omitempty"     yaml:"mug_shot,omitempty"`
	Species     int      `json:"species,omitempty"      yaml:"species,omitempty"`
}

// Platform is a hardware or software platform games run on.
type Platform struct {
	NamedResource
	Abbreviation    string   `json:"abbreviation,omitempty"     yaml:"abbreviation,omitempty"`
	AlternativeName string   `json:"alternative_name,omitempty" yaml:"alternative_name,omitempty"`
	Category        int      `json:"category,omitempty"         yaml:"category,omitempty"`
	Generation      int      `json:"generation,omitempty"       yaml:"generation,omitempty"`
	PlatformFamily  uint64   `json:"platform_family,omitempty"  yaml:"platform_family,omitempty"`
	PlatformLogo    uint64   `json:"platform_logo,omitempty"    yaml:"platform_logo,omitempty"`
	Summary         string   `json:"summary,omitempty"          yaml:"summary,omitempty"`
	Versions        []uint64 `json:"versions,omitempty"         yaml:"versions,omitempty"`
	Websites        []uint64 `json:"websites,omitempty"         yaml:"websites,omitempty"`
}

// Cover is the cover art of a game.
type Cover struct {
	Image
	Game uint64 `json:"game,omitempty" yaml:"game,omitempty"`
}

// Screenshot is a screenshot of a game.
type Screenshot struct {
	Image
	Game uint64 `json:"game,omitempty" yaml:"game,omitempty"`
}

// Artwork is promotional artwork of a game.
type Artwork struct {
	Image
	Game uint64 `json:"game,omitempty" yaml:"game,omitempty"`
}

// CharacterMugShot is the portrait of a character.
type CharacterMugShot struct {
	Image
}

// PlatformLogo is the logo of a platform.
type PlatformLogo struct {
	Image
}

// GameEngine is a video game engine.
type GameEngine struct {
	NamedResource
	Companies   []uint64 `json:"companies,omitempty"   yaml:"companies,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Logo        uint64   `json:"logo,omitempty"        yaml:"logo,omitempty"`
	Platforms   []uint64 `json:"platforms,omitempty"   yaml:"platforms,omitempty"`
}

// Franchise is a list of games that make up a franchise.
type Franchise struct {
	NamedResource
	Games []uint64 `json:"games,omitempty" yaml:"games,omitempty"`
}

// ReleaseDate is the release of a game on one platform in one region.
type ReleaseDate struct {
	Resource
	Category int       `json:"category,omitempty" yaml:"category,omitempty"`
	Date     Timestamp `json:"date,omitempty"     yaml:"date,omitempty"`
	Game     uint64    `json:"game,omitempty"     yaml:"game,omitempty"`
	Human    string    `json:"human,omitempty"    yaml:"human,omitempty"`
	M        int       `json:"m,omitempty"        yaml:"m,omitempty"`
	Platform uint64    `json:"platform,omitempty" yaml:"platform,omitempty"`
	Region   int       `json:"region,omitempty"   yaml:"region,omitempty"`
	Status   uint64    `json:"status,omitempty"   yaml:"status,omitempty"`
	Y        int       `json:"y,omitempty"        yaml:"y,omitempty"`
}

// MultiplayerMode describes the multiplayer capabilities of a game on a platform.
type MultiplayerMode struct {
	ID                uint64 `json:"id"                          yaml:"id"`
	CampaignCoop      bool   `json:"campaigncoop,omitempty"      yaml:"campaigncoop,omitempty"`
	Checksum          string `json:"checksum,omitempty"          yaml:"checksum,omitempty"`
	DropIn            bool   `json:"dropin,omitempty"            yaml:"dropin,omitempty"`
	Game              uint64 `json:"game,omitempty"              yaml:"game,omitempty"`
	LANCoop           bool   `json:"lancoop,omitempty"           yaml:"lancoop,omitempty"`
	OfflineCoop       bool   `json:"offlinecoop,omitempty"       yaml:"offlinecoop,omitempty"`
	OfflineCoopMax    int    `json:"offlinecoopmax,omitempty"    yaml:"offlinecoopmax,omitempty"`
	OfflineMax        int    `json:"offlinemax,omitempty"        yaml:"offlinemax,omitempty"`
	OnlineCoop        bool   `json:"onlinecoop,omitempty"        yaml:"onlinecoop,omitempty"`
	OnlineCoopMax     int    `json:"onlinecoopmax,omitempty"     yaml:"onlinecoopmax,omitempty"`
	OnlineMax         int    `json:"onlinemax,omitempty"         yaml:"onlinemax,omitempty"`
	Platform          uint64 `json:"platform,omitempty"          yaml:"platform,omitempty"`
	SplitScreen       bool   `json:"splitscreen,omitempty"       yaml:"splitscreen,omitempty"`
	SplitScreenOnline bool   `json:"splitscreenonline,omitempty" yaml:"splitscreenonline,omitempty"`
}

// GetID implements Entity.
func (m MultiplayerMode) GetID() uint64 {
	return m.ID
}

// Theme is a video game theme.
type Theme struct {
	NamedResource
}

// GameMode is a video game mode such as single player.
type GameMode struct {
	NamedResource
}

// PlayerPerspective is the view or perspective of the player.
type PlayerPerspective struct {
	NamedResource
}

// Website is a website related to a game.
type Website struct {
	ID       uint64 `json:"id"                 yaml:"id"`
	Category int    `json:"category,omitempty" yaml:"category,omitempty"`
	Checksum string `json:"checksum,omitempty" yaml:"checksum,omitempty"`
	Game     uint64 `json:"game,omitempty"     yaml:"game,omitempty"`
	Trusted  bool   `json:"trusted,omitempty"  yaml:"trusted,omitempty"`
	URL      string `json:"url,omitempty"      yaml:"url,omitempty"`
}

// GetID implements Entity.
func (w Website) GetID() uint64 {
	return w.ID
}

// AgeRating is an age rating such as PEGI or ESRB.
type AgeRating struct {
	ID                  uint64   `json:"id"                             yaml:"id"`
	Category            int      `json:"category,omitempty"             yaml:"category,omitempty"`
	Checksum            string   `json:"checksum,omitempty"             yaml:"checksum,omitempty"`
	ContentDescriptions []uint64 `json:"content_descriptions,omitempty" yaml:"content_descriptions,omitempty"`
	Rating              int      `json:"rating,omitempty"               yaml:"rating,omitempty"`
	RatingCoverURL      string   `json:"rating_cover_url,omitempty"     yaml:"rating_cover_url,omitempty"`
	Synopsis            string   `json:"synopsis,omitempty"             yaml:"synopsis,omitempty"`
}

// GetID implements Entity.
func (a AgeRating) GetID() uint64 {
	return a.ID
}

// Company is a video game company.
type Company struct {
	NamedResource
	ChangeDate         Timestamp `json:"change_date,omitempty"          yaml:"change_date,omitempty"`
	ChangeDateCategory int       `json:"change_date_category,omitempty" yaml:"change_date_category,omitempty"`
	ChangedCompanyID   uint64    `json:"changed_company_id,omitempty"   yaml:"changed_company_id,omitempty"`
	Country            int       `json:"country,omitempty"              yaml:"country,omitempty"`
	Description        string    `json:"description,omitempty"          yaml:"description,omitempty"`
	Developed          []uint64  `json:"developed,omitempty"            yaml:"developed,omitempty"`
	Logo               uint64    `json:"logo,omitempty"                 yaml:"logo,omitempty"`
	Parent             uint64    `json:"parent,omitempty"               yaml:"parent,omitempty"`
	Published          []uint64  `json:"published,omitempty"            yaml:"published,omitempty"`
	StartDate          Timestamp `json:"start_date,omitempty"           yaml:"start_date,omitempty"`
	StartDateCategory  int       `json:"start_date_category,omitempty"  yaml:"start_date_category,omitempty"`
	Websites           []uint64  `json:"websites,omitempty"             yaml:"websites,omitempty"`
}

// GameVideo is a video associated with a game.
type GameVideo struct {
	ID       uint64 `json:"id"                 yaml:"id"`
	Checksum string `json:"checksum,omitempty" yaml:"checksum,omitempty"`
	Game     uint64 `json:"game,omitempty"     yaml:"game,omitempty"`
	Name     string `json:"name,omitempty"     yaml:"name,omitempty"`
	VideoID  string `json:"video_id,omitempty" yaml:"video_id,omitempty"`
}

// GetID implements Entity.
func (v GameVideo) GetID() uint64 {
	return v.ID
}

// GetName implements Named.
func (v GameVideo) GetName() string {
	return v.Name
}

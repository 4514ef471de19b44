package commands

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/igdb/internal/constants"
	"github.com/fivetwenty-io/igdb/pkg/igdb"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewResourceCommands creates one command group per IGDB resource.
func NewResourceCommands() []*cobra.Command {
	games := newResourceCommand("Games", igdb.EndpointGames, func(c igdb.Client) igdb.EndpointClient[igdb.Game] { return c.Games() })
	characters := newResourceCommand("Characters", igdb.EndpointCharacters, func(c igdb.Client) igdb.EndpointClient[igdb.Character] { return c.Characters() })
	platforms := newResourceCommand("Platforms", igdb.EndpointPlatforms, func(c igdb.Client) igdb.EndpointClient[igdb.Platform] { return c.Platforms() })
	gameEngines := newResourceCommand("Game engines", igdb.EndpointGameEngines, func(c igdb.Client) igdb.EndpointClient[igdb.GameEngine] { return c.GameEngines() })
	franchises := newResourceCommand("Franchises", igdb.EndpointFranchises, func(c igdb.Client) igdb.EndpointClient[igdb.Franchise] { return c.Franchises() })
	themes := newResourceCommand("Themes", igdb.EndpointThemes, func(c igdb.Client) igdb.EndpointClient[igdb.Theme] { return c.Themes() })
	ageRatings := newResourceCommand("Age ratings", igdb.EndpointAgeRatings, func(c igdb.Client) igdb.EndpointClient[igdb.AgeRating] { return c.AgeRatings() })
	companies := newResourceCommand("Companies", igdb.EndpointCompanies, func(c igdb.Client) igdb.EndpointClient[igdb.Company] { return c.Companies() })
	gameModes := newResourceCommand("Game modes", igdb.EndpointGameModes, func(c igdb.Client) igdb.EndpointClient[igdb.GameMode] { return c.GameModes() })
	perspectives := newResourceCommand("Player perspectives", igdb.EndpointPlayerPerspectives, func(c igdb.Client) igdb.EndpointClient[igdb.PlayerPerspective] { return c.PlayerPerspectives() })

	releaseDates := newGameResourceCommand("Release dates", igdb.EndpointReleaseDates, func(c igdb.Client) igdb.GameEndpointClient[igdb.ReleaseDate] { return c.ReleaseDates() })
	multiplayerModes := newGameResourceCommand("Multiplayer modes", igdb.EndpointMultiplayerModes, func(c igdb.Client) igdb.GameEndpointClient[igdb.MultiplayerMode] { return c.MultiplayerModes() })
	websites := newGameResourceCommand("Websites", igdb.EndpointWebsites, func(c igdb.Client) igdb.GameEndpointClient[igdb.Website] { return c.Websites() })
	gameVideos := newGameResourceCommand("Game videos", igdb.EndpointGameVideos, func(c igdb.Client) igdb.GameEndpointClient[igdb.GameVideo] { return c.GameVideos() })

	covers := newMediaResourceCommand("Covers", igdb.EndpointCovers, func(c igdb.Client) igdb.MediaEndpointClient[igdb.Cover] { return c.Covers() })
	screenshots := newMediaResourceCommand("Screenshots", igdb.EndpointScreenshots, func(c igdb.Client) igdb.MediaEndpointClient[igdb.Screenshot] { return c.Screenshots() })
	artworks := newMediaResourceCommand("Artworks", igdb.EndpointArtworks, func(c igdb.Client) igdb.MediaEndpointClient[igdb.Artwork] { return c.Artworks() })

	mugShots := newImageResourceCommand("Character mug shots", igdb.EndpointCharacterMugShots, func(c igdb.Client) igdb.ImageEndpointClient[igdb.CharacterMugShot] { return c.CharacterMugShots() })
	platformLogos := newImageResourceCommand("Platform logos", igdb.EndpointPlatformLogos, func(c igdb.Client) igdb.ImageEndpointClient[igdb.PlatformLogo] { return c.PlatformLogos() })

	return []*cobra.Command{
		games, characters, platforms, covers, screenshots, gameEngines, franchises,
		releaseDates, multiplayerModes, themes, websites, ageRatings, companies,
		artworks, gameModes, perspectives, mugShots, platformLogos, gameVideos,
	}
}

// newResourceCommand creates the command group with get, find and query.
func newResourceCommand[T igdb.Entity](title, path string, endpoint func(igdb.Client) igdb.EndpointClient[T]) *cobra.Command {
	use := strings.ReplaceAll(path, "_", "-")

	cmd := &cobra.Command{
		Use:   use,
		Short: "Query " + strings.ToLower(title),
		Long:  fmt.Sprintf("Look up %s records of the IGDB %q endpoint", strings.ToLower(title), path),
	}

	if use != path {
		cmd.Aliases = []string{path}
	}

	cmd.AddCommand(newGetCommand(endpoint))
	cmd.AddCommand(newFindCommand(endpoint))
	cmd.AddCommand(newQueryCommand(endpoint))

	return cmd
}

func newGameResourceCommand[T igdb.Entity](title, path string, endpoint func(igdb.Client) igdb.GameEndpointClient[T]) *cobra.Command {
	cmd := newResourceCommand(title, path, func(c igdb.Client) igdb.EndpointClient[T] { return endpoint(c) })
	cmd.AddCommand(newForGameCommand(func(c igdb.Client) gameLookup[T] { return endpoint(c) }))

	return cmd
}

func newImageResourceCommand[T igdb.ImageEntity](title, path string, endpoint func(igdb.Client) igdb.ImageEndpointClient[T]) *cobra.Command {
	cmd := newResourceCommand(title, path, func(c igdb.Client) igdb.EndpointClient[T] { return endpoint(c) })
	cmd.AddCommand(newDownloadCommand(path, endpoint))

	return cmd
}

func newMediaResourceCommand[T igdb.ImageEntity](title, path string, endpoint func(igdb.Client) igdb.MediaEndpointClient[T]) *cobra.Command {
	cmd := newImageResourceCommand(title, path, func(c igdb.Client) igdb.ImageEndpointClient[T] { return endpoint(c) })
	cmd.AddCommand(newForGameCommand(func(c igdb.Client) gameLookup[T] { return endpoint(c) }))

	return cmd
}

func newGetCommand[T igdb.Entity](endpoint func(igdb.Client) igdb.EndpointClient[T]) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a record by ID",
		Long:  "Display the record with the given ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			item, err := endpoint(client).GetFirstByID(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("failed to get %d: %w", id, err)
			}

			return renderEntities(cmd, []T{item})
		},
	}
}

func newFindCommand[T igdb.Entity](endpoint func(igdb.Client) igdb.EndpointClient[T]) *cobra.Command {
	var (
		limit int
		first bool
		rank  bool
	)

	cmd := &cobra.Command{
		Use:   "find NAME",
		Short: "Find records by name",
		Long:  "Find records whose name contains NAME (case sensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			name := args[0]

			if first {
				item, err := endpoint(client).GetFirstByName(cmd.Context(), name)
				if err != nil {
					return fmt.Errorf("failed to find %q: %w", name, err)
				}

				return renderEntities(cmd, []T{item})
			}

			items, err := endpoint(client).GetByName(cmd.Context(), name, limit)
			if err != nil {
				return fmt.Errorf("failed to find %q: %w", name, err)
			}

			if rank {
				rankByName(items, name)
			}

			return renderEntities(cmd, items)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", constants.DefaultFindLimit, "maximum number of results")
	cmd.Flags().BoolVar(&first, "first", false, "return only the first match")
	cmd.Flags().BoolVar(&rank, "rank", false, "order results by similarity to NAME")

	return cmd
}

func newQueryCommand[T igdb.Entity](endpoint func(igdb.Client) igdb.EndpointClient[T]) *cobra.Command {
	var (
		fields []string
		where  []string
		search string
		sortBy string
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a custom query",
		Long: `Build and run a query against the endpoint.

Where expressions take the form FIELD<op>VALUE with op one of = != > < >= <= ~,
for example rating>=80, name~Zelda or platforms=(48,6). Values are sent as is,
so string literals must be quoted: name="Halo".`,
		Example: `  igdb games query --fields name,rating --where "rating>=80" --sort rating:desc --limit 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			query := client.CreateRequest()

			if len(fields) == 0 {
				query.AllFields()
			} else {
				query.AddFields(fields...)
			}

			for _, expr := range where {
				err = applyWhere(query, expr)
				if err != nil {
					return err
				}
			}

			if cmd.Flags().Changed("search") {
				query.Search(search)
			}

			if sortBy != "" {
				err = applySort(query, sortBy)
				if err != nil {
					return err
				}
			}

			if cmd.Flags().Changed("limit") {
				query.Limit(limit)
			}

			if cmd.Flags().Changed("offset") {
				query.Offset(offset)
			}

			items, err := endpoint(client).Get(cmd.Context(), query)
			if err != nil {
				return fmt.Errorf("query failed: %w", err)
			}

			return renderEntities(cmd, items)
		},
	}

	cmd.Flags().StringSliceVarP(&fields, "fields", "f", nil, "fields to return (default all)")
	cmd.Flags().StringArrayVarP(&where, "where", "w", nil, "filter expression, repeatable")
	cmd.Flags().StringVarP(&search, "search", "s", "", "full-text search term")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort as FIELD[:asc|desc]")
	cmd.Flags().IntVarP(&limit, "limit", "l", constants.DefaultFindLimit, "maximum number of results (1-500)")
	cmd.Flags().IntVar(&offset, "offset", 0, "index of the first result")

	return cmd
}

// gameLookup is the part of the game-linked endpoints used by for-game.
type gameLookup[T igdb.Entity] interface {
	GetByGameID(ctx context.Context, gameID uint64, limit int) ([]T, error)
}

func newForGameCommand[T igdb.Entity](endpoint func(igdb.Client) gameLookup[T]) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "for-game GAME_ID",
		Short: "List records of a game",
		Long:  "List the records that belong to the game with the given ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gameID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			items, err := endpoint(client).GetByGameID(cmd.Context(), gameID, limit)
			if err != nil {
				return fmt.Errorf("failed to list records of game %d: %w", gameID, err)
			}

			return renderEntities(cmd, items)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", constants.DefaultFindLimit, "maximum number of results")

	return cmd
}

// rankByName orders items by fuzzy similarity of their names to term.
// Items that do not match keep their order after the matching ones.
func rankByName[T igdb.Entity](items []T, term string) {
	rank := func(item T) int {
		named, ok := any(item).(igdb.Named)
		if !ok {
			return -1
		}

		return fuzzy.RankMatchNormalizedFold(term, named.GetName())
	}

	slices.SortStableFunc(items, func(a, b T) int {
		ra, rb := rank(a), rank(b)

		switch {
		case ra == rb:
			return 0
		case ra < 0:
			return 1
		case rb < 0:
			return -1
		default:
			return ra - rb
		}
	})
}

// renderEntities prints items in the configured output format.
func renderEntities[T igdb.Entity](cmd *cobra.Command, items []T) error {
	return renderOutput(cmd.OutOrStdout(), items, func(table *tablewriter.Table) error {
		table.Header("ID", "Name", "Detail")

		for _, item := range items {
			_ = table.Append(entityRow(item))
		}

		return nil
	})
}

// entityRow summarizes an entity as a table row.
func entityRow(item igdb.Entity) []string {
	name := constants.NotAvailable
	if named, ok := item.(igdb.Named); ok && named.GetName() != "" {
		name = truncate(named.GetName())
	}

	return []string{strconv.FormatUint(item.GetID(), 10), name, orNotAvailable(truncate(entityDetail(item)))}
}

func entityDetail(item igdb.Entity) string {
	switch v := item.(type) {
	case igdb.Game:
		if released := v.FirstReleaseDate.Time(); !released.IsZero() {
			return "released " + released.Format("2006-01-02")
		}

		return v.Summary
	case igdb.Platform:
		return v.Abbreviation
	case igdb.ReleaseDate:
		return v.Human
	case igdb.Website:
		return v.URL
	case igdb.GameVideo:
		return v.VideoID
	case igdb.Company:
		return v.Description
	case igdb.AgeRating:
		return v.Synopsis
	case igdb.MultiplayerMode:
		return fmt.Sprintf("online max %d, offline max %d", v.OnlineMax, v.OfflineMax)
	case igdb.ImageEntity:
		return v.GetImageID()
	default:
		return ""
	}
}

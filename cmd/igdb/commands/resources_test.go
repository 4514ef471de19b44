package commands

import (
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/igdb/pkg/igdb"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResourceCommands(t *testing.T) {
	cmds := NewResourceCommands()
	require.Len(t, cmds, len(igdb.Endpoints()))

	gameLinked := map[string]bool{
		"covers": true, "screenshots": true, "artworks": true,
		"release-dates": true, "multiplayer-modes": true, "websites": true, "game-videos": true,
	}
	images := map[string]bool{
		"covers": true, "screenshots": true, "artworks": true,
		"character-mug-shots": true, "platform-logos": true,
	}

	for i, cmd := range cmds {
		path := igdb.Endpoints()[i]

		t.Run(path, func(t *testing.T) {
			if cmd.Name() != path {
				assert.Equal(t, []string{path}, cmd.Aliases)
			}

			assert.NotNil(t, findSubcommand(cmd, "get"))
			assert.NotNil(t, findSubcommand(cmd, "find"))
			assert.NotNil(t, findSubcommand(cmd, "query"))
			assert.Equal(t, gameLinked[cmd.Name()], findSubcommand(cmd, "for-game") != nil)
			assert.Equal(t, images[cmd.Name()], findSubcommand(cmd, "download") != nil)
		})
	}
}

func TestFindCommandFlags(t *testing.T) {
	cmd := findSubcommand(NewResourceCommands()[0], "find")
	require.NotNil(t, cmd)

	assert.Equal(t, "find NAME", cmd.Use)
	assert.Equal(t, "10", cmd.Flags().Lookup("limit").DefValue)
	assert.Equal(t, "l", cmd.Flags().Lookup("limit").Shorthand)
	assert.NotNil(t, cmd.Flags().Lookup("first"))
	assert.NotNil(t, cmd.Flags().Lookup("rank"))
}

func TestGetCommand(t *testing.T) {
	api := newFakeIGDB(map[string]string{
		"/games": `[{"id":1942,"name":"The Witcher 3: Wild Hunt","first_release_date":1431993600}]`,
	})
	useFakeIGDB(t, api)

	output, err := executeCommand(NewResourceCommands(), "games", "get", "1942")
	require.NoError(t, err)

	assert.Equal(t, []string{"fields *; where id = 1942; limit 1;"}, api.Bodies("/games"))
	assert.Contains(t, output, "1942")
	assert.Contains(t, output, "The Witcher 3: Wild Hunt")
	assert.Contains(t, output, "released 2015-05-19")
}

func TestGetCommand_NotFound(t *testing.T) {
	useFakeIGDB(t, newFakeIGDB(nil))

	_, err := executeCommand(NewResourceCommands(), "platforms", "get", "7")
	require.Error(t, err)
	assert.ErrorIs(t, err, igdb.ErrNotFound)
}

func TestGetCommand_InvalidID(t *testing.T) {
	api := newFakeIGDB(nil)
	useFakeIGDB(t, api)

	_, err := executeCommand(NewResourceCommands(), "games", "get", "zero")
	require.ErrorIs(t, err, ErrInvalidID)
	assert.Empty(t, api.Bodies("/games"))
}

func TestFindCommand_Rank(t *testing.T) {
	api := newFakeIGDB(map[string]string{
		"/games": `[
			{"id":1,"name":"Zelda II: The Adventure of Link"},
			{"id":2,"name":"Zelda"},
			{"id":3,"name":"Zelda's Adventure"}
		]`,
	})
	useFakeIGDB(t, api)
	viper.Set(KeyOutput, "json")

	output, err := executeCommand(NewResourceCommands(), "games", "find", "Zelda", "--rank", "--limit", "3")
	require.NoError(t, err)

	assert.Equal(t, []string{`fields *; where name ~ *"Zelda"*; limit 3;`}, api.Bodies("/games"))

	var games []igdb.Game
	require.NoError(t, json.Unmarshal([]byte(output), &games))
	require.Len(t, games, 3)
	assert.Equal(t, uint64(2), games[0].ID)
	assert.Equal(t, uint64(3), games[1].ID)
	assert.Equal(t, uint64(1), games[2].ID)
}

func TestFindCommand_First(t *testing.T) {
	api := newFakeIGDB(map[string]string{
		"/companies": `[{"id":70,"name":"Nintendo"}]`,
	})
	useFakeIGDB(t, api)
	viper.Set(KeyOutput, "yaml")

	output, err := executeCommand(NewResourceCommands(), "companies", "find", "Nintendo", "--first")
	require.NoError(t, err)

	assert.Equal(t, []string{`fields *; where name ~ *"Nintendo"*; limit 1;`}, api.Bodies("/companies"))
	assert.Contains(t, output, "name: Nintendo")
}

func TestQueryCommand(t *testing.T) {
	api := newFakeIGDB(map[string]string{
		"/games": `[{"id":1,"name":"Dark Souls","rating":91.2}]`,
	})
	useFakeIGDB(t, api)

	_, err := executeCommand(NewResourceCommands(),
		"games", "query",
		"--fields", "name,rating",
		"--where", "rating>=80",
		"--where", "category!=0",
		"--search", "souls",
		"--sort", "rating:desc",
		"--limit", "5",
		"--offset", "10",
	)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{`fields name,rating; where rating >= 80 & category != 0; search "souls"; sort rating desc; limit 5; offset 10;`},
		api.Bodies("/games"))
}

func TestQueryCommand_Defaults(t *testing.T) {
	api := newFakeIGDB(nil)
	useFakeIGDB(t, api)

	_, err := executeCommand(NewResourceCommands(), "game-modes", "query")
	require.NoError(t, err)

	assert.Equal(t, []string{"fields *;"}, api.Bodies("/game_modes"))
}

func TestQueryCommand_InvalidArguments(t *testing.T) {
	api := newFakeIGDB(nil)
	useFakeIGDB(t, api)

	_, err := executeCommand(NewResourceCommands(), "games", "query", "--limit", "501")
	require.ErrorIs(t, err, igdb.ErrInvalidArgument)

	_, err = executeCommand(NewResourceCommands(), "games", "query", "--where", "rating")
	require.ErrorIs(t, err, ErrInvalidWhere)

	assert.Empty(t, api.Bodies("/games"))
}

func TestForGameCommand(t *testing.T) {
	api := newFakeIGDB(map[string]string{
		"/websites": `[{"id":5,"game":1942,"url":"https://thewitcher.com"}]`,
	})
	useFakeIGDB(t, api)

	output, err := executeCommand(NewResourceCommands(), "websites", "for-game", "1942", "--limit", "2")
	require.NoError(t, err)

	assert.Equal(t, []string{"fields *; where game = 1942; limit 2;"}, api.Bodies("/websites"))
	assert.Contains(t, output, "https://thewitcher.com")
}

func TestResourceCommand_Alias(t *testing.T) {
	api := newFakeIGDB(nil)
	useFakeIGDB(t, api)

	_, err := executeCommand(NewResourceCommands(), "release_dates", "for-game", "1942")
	require.NoError(t, err)

	assert.Len(t, api.Bodies("/release_dates"), 1)
}

func TestResourceCommand_MissingClientID(t *testing.T) {
	useTestConfig(t, map[string]string{KeyToken: "test-token"})

	_, err := executeCommand(NewResourceCommands(), "games", "get", "1")
	require.ErrorIs(t, err, ErrClientIDNotConfigured)
}

func TestResourceCommand_MissingCredentials(t *testing.T) {
	useTestConfig(t, map[string]string{KeyClientID: "client-id"})

	_, err := executeCommand(NewResourceCommands(), "games", "get", "1")
	require.ErrorIs(t, err, ErrCredentialsNotConfigured)
}

func TestEntityRow(t *testing.T) {
	var cover igdb.Cover
	cover.ID = 9
	cover.ImageID = "co1wyy"

	assert.Equal(t, []string{"9", "N/A", "co1wyy"}, entityRow(cover))

	var theme igdb.Theme
	theme.ID = 1
	theme.Name = "Action"

	assert.Equal(t, []string{"1", "Action", "N/A"}, entityRow(theme))
}

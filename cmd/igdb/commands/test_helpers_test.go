package commands

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// fakeIGDB serves canned JSON per resource path and a fixed image under /t_*.
type fakeIGDB struct {
	mu        sync.Mutex
	bodies    map[string][]string
	responses map[string]string
}

func newFakeIGDB(responses map[string]string) *fakeIGDB {
	return &fakeIGDB{
		bodies:    make(map[string][]string),
		responses: responses,
	}
}

func (f *fakeIGDB) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/t_") {
		_, _ = w.Write([]byte("image-bytes"))

		return
	}

	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.bodies[r.URL.Path] = append(f.bodies[r.URL.Path], string(body))

	response, ok := f.responses[r.URL.Path]
	if !ok {
		response = "[]"
	}

	_, _ = w.Write([]byte(response))
}

func (f *fakeIGDB) Bodies(path string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.bodies[path]...)
}

// useTestConfig resets viper and points the config file at a temp dir.
func useTestConfig(t *testing.T, settings map[string]string) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "config.yml")
	viper.Set("config", configFile)

	for key, value := range settings {
		viper.Set(key, value)
	}

	return configFile
}

// useFakeIGDB starts api and configures the CLI to talk to it.
func useFakeIGDB(t *testing.T, api *fakeIGDB) {
	t.Helper()

	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	useTestConfig(t, map[string]string{
		KeyClientID:     "client-id",
		KeyToken:        "test-token",
		KeyBaseURL:      server.URL,
		KeyImageBaseURL: server.URL,
	})
}

// executeCommand runs args against a root command holding cmds.
func executeCommand(cmds []*cobra.Command, args ...string) (string, error) {
	root := &cobra.Command{Use: "igdb", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(cmds...)

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)

	err := root.Execute()

	return buf.String(), err
}

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

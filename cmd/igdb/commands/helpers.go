package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/igdb/internal/constants"
	"github.com/fivetwenty-io/igdb/pkg/igdb"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// JSON formatting.
const defaultJSONIndent = 2

// Common static errors used throughout the commands package.
var (
	ErrClientIDNotConfigured    = errors.New("client ID not configured, use 'igdb config set client_id VALUE' or IGDB_CLIENT_ID")
	ErrCredentialsNotConfigured = errors.New("no credentials configured, set client_secret or token")
	ErrInvalidID                = errors.New("invalid ID")
	ErrInvalidWhere             = errors.New("invalid where expression")
	ErrInvalidSort              = errors.New("invalid sort expression")
	ErrUnknownConfigKey         = errors.New("unknown configuration key")
	ErrEmptyToken               = errors.New("token must not be empty")
	ErrDownloadsFailed          = errors.New("one or more downloads failed")
)

// outputFormat returns the configured output format.
func outputFormat() string {
	output := viper.GetString("output")
	if output == "" {
		return constants.FormatTable
	}

	return output
}

// renderOutput writes data as JSON or YAML, or calls table for the table format.
func renderOutput(w io.Writer, data any, table func(*tablewriter.Table) error) error {
	switch outputFormat() {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

		return encoder.Encode(data)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer func() { _ = encoder.Close() }()

		return encoder.Encode(data)
	default:
		t := tablewriter.NewWriter(w)

		err := table(t)
		if err != nil {
			return err
		}

		err = t.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

// parseID parses a numeric resource ID argument.
func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, arg)
	}

	return id, nil
}

// parseIDs parses every argument as a resource ID.
func parseIDs(args []string) ([]uint64, error) {
	ids := make([]uint64, 0, len(args))

	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// whereOperators is ordered so two-character tokens match first.
var whereOperators = []struct {
	token string
	op    igdb.Operator
}{
	{">=", igdb.OpGreaterOrEqual},
	{"<=", igdb.OpLessOrEqual},
	{"!=", igdb.OpNotEqual},
	{"~", igdb.OpContains},
	{"=", igdb.OpEqual},
	{">", igdb.OpGreaterThan},
	{"<", igdb.OpLessThan},
}

// applyWhere adds a "field<op>value" expression such as rating>=80 to query.
// A value of the form (a,b) on "=" becomes a where-in predicate.
func applyWhere(query *igdb.Query, expr string) error {
	for _, candidate := range whereOperators {
		field, value, found := strings.Cut(expr, candidate.token)
		if !found {
			continue
		}

		field = strings.TrimSpace(field)
		value = strings.TrimSpace(value)

		if field == "" || value == "" {
			break
		}

		switch {
		case candidate.op == igdb.OpContains:
			query.Contains(field, strings.Trim(value, `"*`))
		case candidate.op == igdb.OpEqual && strings.HasPrefix(value, "(") && strings.HasSuffix(value, ")"):
			query.AddWhereIn(field, splitList(strings.Trim(value, "()"))...)
		default:
			query.AddWhere(field, candidate.op, value)
		}

		return nil
	}

	return fmt.Errorf("%w: %q", ErrInvalidWhere, expr)
}

// applySort adds a "field[:asc|desc]" expression to query.
func applySort(query *igdb.Query, expr string) error {
	field, direction, _ := strings.Cut(expr, ":")

	field = strings.TrimSpace(field)
	if field == "" {
		return fmt.Errorf("%w: %q", ErrInvalidSort, expr)
	}

	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "", "asc":
		query.SortBy(field, igdb.Ascending)
	case "desc":
		query.SortBy(field, igdb.Descending)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSort, expr)
	}

	return nil
}

// splitList splits a comma separated list and drops empty entries.
func splitList(raw string) []string {
	var values []string

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	return values
}

// truncate shortens s to the table cell limit.
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= constants.StringTruncationLimit {
		return s
	}

	return string(runes[:constants.StringTruncationLimit-3]) + "..."
}

// orNotAvailable returns s, or N/A when s is empty.
func orNotAvailable(s string) string {
	if s == "" {
		return constants.NotAvailable
	}

	return s
}

// maskSecret hides all but the last four characters of a secret.
func maskSecret(secret string) string {
	const visible = 4

	if secret == "" {
		return ""
	}

	if len(secret) <= visible {
		return constants.MaskedSecret
	}

	return constants.MaskedSecret + secret[len(secret)-visible:]
}

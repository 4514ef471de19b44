package commands

import (
	"testing"

	"github.com/fivetwenty-io/igdb/pkg/igdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyWhere(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr     string
		expected string
	}{
		{expr: "rating>=80", expected: "where rating >= 80;"},
		{expr: "rating <= 80", expected: "where rating <= 80;"},
		{expr: "category!=0", expected: "where category != 0;"},
		{expr: "name~Zelda", expected: `where name ~ *"Zelda"*;`},
		{expr: `name="Halo"`, expected: `where name = "Halo";`},
		{expr: "platforms=(48, 6)", expected: "where platforms = (48,6);"},
		{expr: "rating>70", expected: "where rating > 70;"},
		{expr: "rating<70", expected: "where rating < 70;"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.expr, func(t *testing.T) {
			t.Parallel()

			query := igdb.NewQuery()
			require.NoError(t, applyWhere(query, tt.expr))

			body, err := query.Render()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, body)
		})
	}
}

func TestApplyWhere_Invalid(t *testing.T) {
	t.Parallel()

	for _, expr := range []string{"rating", "=80", "rating>=", ""} {
		err := applyWhere(igdb.NewQuery(), expr)
		require.ErrorIs(t, err, ErrInvalidWhere, expr)
	}
}

func TestApplySort(t *testing.T) {
	t.Parallel()

	query := igdb.NewQuery()
	require.NoError(t, applySort(query, "rating:desc"))

	body, err := query.Render()
	require.NoError(t, err)
	assert.Equal(t, "sort rating desc;", body)

	query = igdb.NewQuery()
	require.NoError(t, applySort(query, "name"))

	body, err = query.Render()
	require.NoError(t, err)
	assert.Equal(t, "sort name asc;", body)

	require.ErrorIs(t, applySort(igdb.NewQuery(), ":desc"), ErrInvalidSort)
	require.ErrorIs(t, applySort(igdb.NewQuery(), "name:sideways"), ErrInvalidSort)
}

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := parseID(" 1942 ")
	require.NoError(t, err)
	assert.Equal(t, uint64(1942), id)

	for _, arg := range []string{"0", "-1", "abc", ""} {
		_, err := parseID(arg)
		require.ErrorIs(t, err, ErrInvalidID, arg)
	}

	ids, err := parseIDs([]string{"1", "2"})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, ids)
}

func TestTruncateAndMask(t *testing.T) {
	t.Parallel()

	long := "The Legend of Zelda: Breath of the Wild, Tears of the Kingdom and more"
	truncated := truncate(long)
	assert.Len(t, []rune(truncated), 60)
	assert.Equal(t, "...", truncated[len(truncated)-3:])
	assert.Equal(t, "short", truncate("short"))

	assert.Equal(t, "", maskSecret(""))
	assert.Equal(t, "***", maskSecret("abc"))
	assert.Equal(t, "***wxyz", maskSecret("abcdwxyz"))

	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b,"))
}

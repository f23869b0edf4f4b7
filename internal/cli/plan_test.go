package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pschiffmann/floorroute/floorgrid"
	"github.com/pschiffmann/floorroute/route"
)

func TestPackFloor(t *testing.T) {
	bitmap, rowBytes, err := packFloor([]string{
		".#......",
		"....#...",
	})
	require.NoError(t, err)
	require.Equal(t, 1, rowBytes)
	require.Equal(t, []byte{0x40, 0x08}, bitmap)
}

func TestPackFloor_PadsToByteBoundary(t *testing.T) {
	// 10 cells wide → 2 bytes per row; the 6 padding cells must be blocked.
	bitmap, rowBytes, err := packFloor([]string{"..........", ".........."})
	require.NoError(t, err)
	require.Equal(t, 2, rowBytes)

	g, err := floorgrid.New(bitmap, rowBytes,
		floorgrid.Cell{X: 0, Y: 0}, floorgrid.Cell{X: 9, Y: 1}, nil)
	require.NoError(t, err)
	require.False(t, g.IsBlocked(floorgrid.Cell{X: 9, Y: 0}))
	for x := 10; x < 16; x++ {
		require.True(t, g.IsBlocked(floorgrid.Cell{X: x, Y: 0}), "padding cell (%d,0) is walkable", x)
	}
}

func TestPackFloor_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
	}{
		{"NoRows", nil},
		{"EmptyRow", []string{""}},
		{"RaggedRows", []string{"....", "..."}},
		{"UnknownRune", []string{"..x."}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := packFloor(tc.rows)
			require.Error(t, err)
		})
	}
}

func TestLoadPlan_RoundTrip(t *testing.T) {
	plan := `
floor = [
    ".#......",
    ".#..#...",
    ".#..#...",
    "....#...",
]

[entrance]
x = 0
y = 0

[counter]
x = 7
y = 3

[[articles]]
x = 0
y = 2
label = "Cheese"

[[articles]]
x = 2
y = 3
label = "Butter"

[[articles]]
x = 5
y = 0
label = "Ponies"

[[articles]]
x = 6
y = 2
label = "Salad"
`
	path := filepath.Join(t.TempDir(), "store.toml")
	require.NoError(t, os.WriteFile(path, []byte(plan), 0o600))

	g, err := loadPlan(path)
	require.NoError(t, err)
	require.Equal(t, 8, g.Width())
	require.Equal(t, 4, g.Height())
	require.Len(t, g.Articles(), 4)

	res, err := route.OptimalRoute(g)
	require.NoError(t, err)
	require.Equal(t, 16, res.Distance)
}

func TestLoadPlan_Errors(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "plan.toml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		return path
	}

	t.Run("MissingFile", func(t *testing.T) {
		_, err := loadPlan(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})

	t.Run("UnlabeledArticle", func(t *testing.T) {
		_, err := loadPlan(write(t, `
floor = ["...."]
[counter]
x = 3
y = 0
[[articles]]
x = 1
y = 0
`))
		require.ErrorContains(t, err, "no label")
	})

	t.Run("DuplicateArticleCell", func(t *testing.T) {
		_, err := loadPlan(write(t, `
floor = ["...."]
[counter]
x = 3
y = 0
[[articles]]
x = 1
y = 0
label = "Jam"
[[articles]]
x = 1
y = 0
label = "Tea"
`))
		require.ErrorContains(t, err, "share cell")
	})

	t.Run("BlockedEntrance", func(t *testing.T) {
		_, err := loadPlan(write(t, `
floor = ["#..."]
[counter]
x = 3
y = 0
`))
		require.ErrorIs(t, err, floorgrid.ErrBlockedEntrance)
	})
}

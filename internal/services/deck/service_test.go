package deck_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	boterr "github.com/tavernbot/dicebot/internal/errors"
	"github.com/tavernbot/dicebot/internal/services/deck"
)

func writeDeck(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func newService(t *testing.T, files map[string]string) deck.Service {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		writeDeck(t, dir, name, content)
	}

	svc, err := deck.NewService(&deck.ServiceConfig{Dir: dir})
	require.NoError(t, err)
	return svc
}

func TestService_List(t *testing.T) {
	svc := newService(t, map[string]string{
		"omens.json":    `["a black cat", "a broken mirror", "a comet"]`,
		"treasure.json": `{"gold": "a pouch of coins", "gems": ["ruby", "opal"]}`,
	})

	infos := svc.List(context.Background())

	require.Len(t, infos, 2)
	assert.Equal(t, deck.Info{Name: "omens", Size: 3, File: "omens.json"}, infos[0])
	assert.Equal(t, deck.Info{Name: "treasure", Size: 3, File: "treasure.json"}, infos[1])
}

func TestService_Draw(t *testing.T) {
	svc := newService(t, map[string]string{
		"omens.json": `["a black cat", "a broken mirror", "a comet"]`,
	})
	ctx := context.Background()

	t.Run("draws distinct cards", func(t *testing.T) {
		cards, size, err := svc.Draw(ctx, "omens", 2)
		require.NoError(t, err)

		assert.Equal(t, 3, size)
		require.Len(t, cards, 2)
		assert.NotEqual(t, cards[0], cards[1])
	})

	t.Run("count clamps to deck size", func(t *testing.T) {
		cards, size, err := svc.Draw(ctx, "omens", 10)
		require.NoError(t, err)

		assert.Equal(t, 3, size)
		assert.Len(t, cards, 3)
	})

	t.Run("unknown deck", func(t *testing.T) {
		_, _, err := svc.Draw(ctx, "missing", 1)
		assert.True(t, boterr.IsNotFound(err))
	})

	t.Run("non-positive count", func(t *testing.T) {
		_, _, err := svc.Draw(ctx, "omens", 0)
		assert.True(t, boterr.IsInvalidArgument(err))
	})
}

func TestService_FlattensNestedDecks(t *testing.T) {
	svc := newService(t, map[string]string{
		"nested.json": `{
			"animals": {"cat": "a stray cat", "dog": "a loyal hound"},
			"events": ["an eclipse", {"storm": "a sudden squall"}],
			"motto": "fortune favors the bold"
		}`,
	})

	// Every entry must be reachable as a flat card.
	cards, size, err := svc.Draw(context.Background(), "nested", 10)
	require.NoError(t, err)
	assert.Equal(t, 5, size)

	joined := strings.Join(cards, "\n")
	assert.Contains(t, joined, "cat: a stray cat")
	assert.Contains(t, joined, "dog: a loyal hound")
	assert.Contains(t, joined, "an eclipse")
	assert.Contains(t, joined, "storm: a sudden squall")
	assert.Contains(t, joined, "motto: fortune favors the bold")
}

func TestNewService_RejectsDeepNesting(t *testing.T) {
	deep := strings.Repeat(`{"a":`, 10) + `"card"` + strings.Repeat(`}`, 10)

	dir := t.TempDir()
	writeDeck(t, dir, "deep.json", deep)

	_, err := deck.NewService(&deck.ServiceConfig{Dir: dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nesting")
}

func TestNewService_RejectsInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeDeck(t, dir, "bad.json", `{not json`)

	_, err := deck.NewService(&deck.ServiceConfig{Dir: dir})
	assert.Error(t, err)
}

func TestNewService_EmptyDir(t *testing.T) {
	svc, err := deck.NewService(&deck.ServiceConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, svc.List(context.Background()))
}

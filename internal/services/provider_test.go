package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tavernbot/dicebot/internal/services"
)

func TestNewProvider(t *testing.T) {
	dir := t.TempDir()
	decksDir := filepath.Join(dir, "decks")
	require.NoError(t, os.Mkdir(decksDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(decksDir, "omens.json"), []byte(`["a comet"]`), 0o644))

	rulesFile := filepath.Join(dir, "rules.json")
	require.NoError(t, os.WriteFile(rulesFile, []byte(`{"Grapple": "Contested check."}`), 0o644))

	provider, err := services.NewProvider(&services.ProviderConfig{
		DecksDir:  decksDir,
		RulesFile: rulesFile,
	})
	require.NoError(t, err)

	assert.NotNil(t, provider.RollService)
	assert.NotNil(t, provider.FortuneService)
	assert.NotNil(t, provider.DeckService)
	assert.NotNil(t, provider.LoreService)

	infos := provider.DeckService.List(context.Background())
	require.Len(t, infos, 1)
	assert.Equal(t, "omens", infos[0].Name)
}

func TestNewProvider_MissingRulesFile(t *testing.T) {
	dir := t.TempDir()

	_, err := services.NewProvider(&services.ProviderConfig{
		DecksDir:  dir,
		RulesFile: filepath.Join(dir, "missing.json"),
	})
	assert.Error(t, err)
}

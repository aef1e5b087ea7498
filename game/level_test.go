package game_test

import (
	"testing"

	"bfbb/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneIDRoundTrip(t *testing.T) {
	for l := 0; l < game.NumLevels; l++ {
		level := game.Level(l)
		got, err := game.LevelFromSceneID(level.SceneID())
		require.NoError(t, err, "level %s", level)
		assert.Equal(t, level, got)
	}
}

func TestLevelFromSceneID(t *testing.T) {
	level, err := game.LevelFromSceneID([4]byte{'H', 'B', '0', '1'})
	require.NoError(t, err)
	assert.Equal(t, game.BikiniBottom, level)

	level, err = game.LevelFromSceneID([4]byte{'B', '3', '0', '2'})
	require.NoError(t, err)
	assert.Equal(t, game.ChumBucketLab, level)
}

func TestLevelFromSceneIDUnknown(t *testing.T) {
	_, err := game.LevelFromSceneID([4]byte{'X', 'X', '9', '9'})
	require.ErrorIs(t, err, game.ErrUnknownSceneID)
}

func TestLevelNames(t *testing.T) {
	assert.Equal(t, "Spongebob's House", game.SpongebobHouse.String())
	assert.Equal(t, "Ski Lodge", game.SandMountainHub.String())
	assert.Equal(t, "Flying Dutchman Battle", game.GraveyardBoss.String())
}

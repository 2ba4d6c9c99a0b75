package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfour-labs/connect4-server/game/engine"
)

const (
	alice = engine.PlayerID("alice-id")
	bob   = engine.PlayerID("bob-id")
)

func TestCreateLinksBothPlayers(t *testing.T) {
	store := NewStore()

	game := store.Create(alice, bob)
	require.NotEmpty(t, game.ID)
	assert.Equal(t, alice, game.Player1)
	assert.Equal(t, bob, game.Player2)
	assert.Equal(t, alice, game.CurrentTurn, "first player moves first")
	assert.Equal(t, engine.StatusActive, game.Status)

	got, err := store.ByPlayer(alice)
	require.NoError(t, err)
	assert.Same(t, game, got)

	got, err = store.ByPlayer(bob)
	require.NoError(t, err)
	assert.Same(t, game, got)
}

func TestGetUnknownGame(t *testing.T) {
	store := NewStore()

	_, err := store.Get("nope")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestByPlayerUnknown(t *testing.T) {
	store := NewStore()

	_, err := store.ByPlayer("stranger")
	assert.ErrorIs(t, err, ErrPlayerNotInGame)
}

func TestForceForfeit(t *testing.T) {
	store := NewStore()
	game := store.Create(alice, bob)

	// Forfeit by the player whose turn it is NOT; the winner is still the
	// remaining player.
	got, err := store.ForceForfeit(game.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, engine.StatusFinished, got.Status)
	require.NotNil(t, got.Winner)
	assert.Equal(t, alice, *got.Winner)
}

func TestForceForfeitTerminalGame(t *testing.T) {
	store := NewStore()
	game := store.Create(alice, bob)

	_, err := store.ForceForfeit(game.ID, alice)
	require.NoError(t, err)

	_, err = store.ForceForfeit(game.ID, bob)
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestListAndCount(t *testing.T) {
	store := NewStore()
	assert.Zero(t, store.Count())
	assert.Empty(t, store.List())

	store.Create(alice, bob)
	store.Create("carol-id", "dave-id")

	assert.Equal(t, 2, store.Count())
	assert.Len(t, store.List(), 2)
}

func TestGameIDsAreUnique(t *testing.T) {
	store := NewStore()
	g1 := store.Create(alice, bob)
	g2 := store.Create("carol-id", "dave-id")

	assert.NotEqual(t, g1.ID, g2.ID)
}

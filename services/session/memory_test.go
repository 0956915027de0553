package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innkeeper/models"
)

const testPrompt = "You are a hotel booking assistant."

func TestMemoryStoreLazyInit(t *testing.T) {
	store := NewMemoryStore(testPrompt)
	ctx := context.Background()

	st, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, st.Transcript, 1)
	assert.Equal(t, models.RoleSystem, st.Transcript[0].Role)
	assert.Equal(t, testPrompt, st.Transcript[0].Content)
	assert.Equal(t, models.StepInitial, st.Step)
	assert.Empty(t, st.GuestNames)
}

func TestMemoryStoreAppendAndMutate(t *testing.T) {
	store := NewMemoryStore(testPrompt)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, "s1", models.RoleUser, "hello"))
	require.NoError(t, store.Append(ctx, "s1", models.RoleAssistant, "hi there"))
	require.NoError(t, store.Mutate(ctx, "s1", func(st *models.SessionState) {
		st.Step = models.StepShowingHotels
		st.UserLocation = "Ahmedabad"
	}))

	st, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, st.Transcript, 3)
	assert.Equal(t, "hi there", st.Transcript[2].Content)
	assert.Equal(t, models.StepShowingHotels, st.Step)
	assert.Equal(t, "Ahmedabad", st.UserLocation)
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	store := NewMemoryStore(testPrompt)
	ctx := context.Background()

	st, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	st.Transcript = append(st.Transcript, models.ChatMessage{Role: models.RoleUser, Content: "local only"})
	st.Step = models.StepPhone

	fresh, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, fresh.Transcript, 1)
	assert.Equal(t, models.StepInitial, fresh.Step)
}

func TestMemoryStoreResetLast(t *testing.T) {
	store := NewMemoryStore(testPrompt)
	ctx := context.Background()

	t.Run("UnknownSession", func(t *testing.T) {
		status, err := store.ResetLast(ctx, "nope")
		require.NoError(t, err)
		assert.Equal(t, ResetSessionNotFound, status)
	})

	t.Run("ClearedPair", func(t *testing.T) {
		require.NoError(t, store.Append(ctx, "s1", models.RoleUser, "hello"))
		require.NoError(t, store.Append(ctx, "s1", models.RoleAssistant, "hi"))

		status, err := store.ResetLast(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, ResetClearedPair, status)

		st, _ := store.Get(ctx, "s1")
		require.Len(t, st.Transcript, 1)
		assert.Equal(t, models.RoleSystem, st.Transcript[0].Role)
	})

	t.Run("ClearedAll", func(t *testing.T) {
		// Only the seeded system message remains, so there is no user and
		// assistant pair left to trim.
		status, err := store.ResetLast(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, ResetClearedAll, status)

		st, _ := store.Get(ctx, "s1")
		assert.Empty(t, st.Transcript)
	})
}

package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokerhall/holdem/pkg/poker"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "history", "hands.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleRecord(handNumber int) HandRecord {
	return HandRecord{
		HandNumber: handNumber,
		Actions: []poker.ActionEntry{
			{Kind: "post_blind", Seat: 1, Name: "alice", Amount: 10,
				Details: map[string]any{"type": "small_blind"}},
			{Kind: "post_blind", Seat: 2, Name: "bob", Amount: 20,
				Details: map[string]any{"type": "big_blind"}},
			{Kind: "fold", Seat: 1, Name: "alice", Details: map[string]any{}},
			{Kind: "win", Seat: 2, Name: "bob", Amount: 30,
				Details: map[string]any{"reason": "last_player"}},
		},
	}
}

func TestRecordAndLoadHands(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.RecordHand("table-1", sampleRecord(1)))
	require.NoError(t, db.RecordHand("table-1", sampleRecord(2)))
	require.NoError(t, db.RecordHand("table-2", sampleRecord(1)))

	hands, err := db.Hands("table-1")
	require.NoError(t, err)
	require.Len(t, hands, 2)

	assert.Equal(t, 1, hands[0].HandNumber)
	assert.Equal(t, 2, hands[1].HandNumber)

	require.Len(t, hands[0].Actions, 4)
	assert.Equal(t, "post_blind", hands[0].Actions[0].Kind)
	assert.Equal(t, "alice", hands[0].Actions[0].Name)
	assert.Equal(t, int64(10), hands[0].Actions[0].Amount)
	assert.Equal(t, "small_blind", hands[0].Actions[0].Details["type"])
	assert.Equal(t, "win", hands[0].Actions[3].Kind)
	assert.Equal(t, int64(30), hands[0].Actions[3].Amount)

	other, err := db.Hands("table-2")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestRecordHandReplacesSameHand(t *testing.T) {
	db := newTestDB(t)

	first := sampleRecord(1)
	require.NoError(t, db.RecordHand("table-1", first))

	// Recording hand 1 again replaces the earlier archive instead of
	// duplicating it.
	second := sampleRecord(1)
	second.Actions = append(second.Actions, poker.ActionEntry{
		Kind: "leave", Seat: 1, Name: "alice", Details: map[string]any{},
	})
	require.NoError(t, db.RecordHand("table-1", second))

	hands, err := db.Hands("table-1")
	require.NoError(t, err)
	require.Len(t, hands, 1)
	assert.Len(t, hands[0].Actions, 5)
}

func TestHandsEmptyTable(t *testing.T) {
	db := newTestDB(t)

	hands, err := db.Hands("missing")
	require.NoError(t, err)
	assert.Empty(t, hands)
}

package database

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogEventAndGetEventsSince(t *testing.T) {
	user := createTestUser(t, "event_user")

	err := testStore.LogEvent(context.Background(), user.ID, "content_generated", map[string]interface{}{
		"content_id": 1,
		"degraded":   false,
	})
	require.NoError(t, err)

	err = testStore.LogEvent(context.Background(), user.ID, "insight_created", map[string]interface{}{
		"insight_id": 2,
	})
	require.NoError(t, err)

	events, err := testStore.GetEventsSince(context.Background(), user.ID, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "content_generated", events[0].EventType)
	require.Equal(t, "insight_created", events[1].EventType)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(events[0].Payload, &payload))
	require.Equal(t, "content_generated", payload["event_type"])

	// incremental read picks up only the tail
	tail, err := testStore.GetEventsSince(context.Background(), user.ID, events[0].ID)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	require.Equal(t, "insight_created", tail[0].EventType)

	// other users see nothing
	other := createTestUser(t, "event_other_user")
	none, err := testStore.GetEventsSince(context.Background(), other.ID, 0)
	require.NoError(t, err)
	require.Empty(t, none)
}

package wizard

import (
	"testing"

	"villa/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alwaysProceed(string) bool { return true }
func neverProceed(string) bool  { return false }

func TestNavigatorStartsAtFirstTab(t *testing.T) {
	nav := NewNavigator(RatePlanTabs, alwaysProceed, nil)

	assert.Equal(t, "general", nav.ActiveTab())
	assert.True(t, nav.IsFirstTab())
	assert.False(t, nav.IsLastTab())
}

func TestNavigatorNextBlockedWhenTabInvalid(t *testing.T) {
	var warned string
	nav := NewNavigator(RatePlanTabs, neverProceed, func(message string) {
		warned = message
	})

	moved := nav.Next()

	assert.False(t, moved)
	assert.Equal(t, "general", nav.ActiveTab())
	assert.NotEmpty(t, warned)
}

func TestNavigatorNextStopsAtLastTab(t *testing.T) {
	nav := NewNavigator(RatePlanTabs, alwaysProceed, nil)

	for range RatePlanTabs {
		nav.Next()
	}

	assert.True(t, nav.IsLastTab())
	assert.Equal(t, "review", nav.ActiveTab())
	assert.False(t, nav.Next())
	assert.Equal(t, "review", nav.ActiveTab())
}

func TestNavigatorPrevUnconditional(t *testing.T) {
	nav := NewNavigator(RatePlanTabs, neverProceed, nil)
	require.NoError(t, nav.SetActiveTab("meals"))

	// Đi lùi không bị chặn dù tab không hợp lệ
	assert.True(t, nav.Prev())
	assert.Equal(t, "duration", nav.ActiveTab())

	assert.True(t, nav.Prev())
	assert.True(t, nav.IsFirstTab())

	// Đứng yên ở tab đầu
	assert.False(t, nav.Prev())
	assert.Equal(t, "general", nav.ActiveTab())
}

func TestNavigatorProgressNonDecreasingForward(t *testing.T) {
	nav := NewNavigator(RoomTabs, alwaysProceed, nil)

	prev := nav.Progress()
	for nav.Next() {
		current := nav.Progress()
		assert.Greater(t, current, prev)
		prev = current
	}
	assert.InDelta(t, 100.0, nav.Progress(), 0.001)
}

func TestNavigatorSetActiveTabUnknown(t *testing.T) {
	nav := NewNavigator(RatePlanTabs, alwaysProceed, nil)

	err := nav.SetActiveTab("pricing")
	assert.Equal(t, errors.ErrUnknownTab, err)
	assert.Equal(t, "general", nav.ActiveTab())
}

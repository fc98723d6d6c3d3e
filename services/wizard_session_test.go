package services

import (
	"context"
	"testing"

	"villa/errors"
	"villa/wizard"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, client
}

func TestStartRatePlanWizard(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	session, err := StartRatePlanWizard(ctx, client)
	require.NoError(t, err)

	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, "general", session.ActiveTab)
	assert.Equal(t, wizard.NewRatePlanDraft(), session.Draft)

	loaded, err := GetRatePlanWizard(ctx, client, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, session.Draft, loaded.Draft)
	assert.Equal(t, session.ActiveTab, loaded.ActiveTab)
}

func TestGetRatePlanWizardNotFound(t *testing.T) {
	_, client := setupTestRedis(t)

	_, err := GetRatePlanWizard(context.Background(), client, "khong-ton-tai")
	assert.Equal(t, errors.ErrSessionNotFound, err)
}

func TestSaveRatePlanWizardRoundTrip(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	session, err := StartRatePlanWizard(ctx, client)
	require.NoError(t, err)

	session.Draft.Name = "Gói cuối tuần"
	session.Draft.BasePrice = "1500000"
	session.ActiveTab = "duration"
	require.NoError(t, SaveRatePlanWizard(ctx, client, session))

	loaded, err := GetRatePlanWizard(ctx, client, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Gói cuối tuần", loaded.Draft.Name)
	assert.Equal(t, "duration", loaded.ActiveTab)
}

func TestRatePlanWizardSessionExpires(t *testing.T) {
	mr, client := setupTestRedis(t)
	ctx := context.Background()

	session, err := StartRatePlanWizard(ctx, client)
	require.NoError(t, err)

	mr.FastForward(WizardSessionTTL + 1)

	_, err = GetRatePlanWizard(ctx, client, session.SessionID)
	assert.Equal(t, errors.ErrSessionNotFound, err)
}

func TestDeleteRatePlanWizard(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	session, err := StartRatePlanWizard(ctx, client)
	require.NoError(t, err)

	require.NoError(t, DeleteRatePlanWizard(ctx, client, session.SessionID))

	_, err = GetRatePlanWizard(ctx, client, session.SessionID)
	assert.Equal(t, errors.ErrSessionNotFound, err)
}

func TestSessionNavigatorRebuild(t *testing.T) {
	_, client := setupTestRedis(t)
	ctx := context.Background()

	session, err := StartRatePlanWizard(ctx, client)
	require.NoError(t, err)

	// Tab general chưa đủ dữ liệu: Next đứng yên
	nav := session.Navigator()
	assert.False(t, nav.Next())
	assert.Equal(t, "general", nav.ActiveTab())

	session.Draft.Name = "Gói cuối tuần"
	session.Draft.BasePrice = "1500000"

	nav = session.Navigator()
	assert.True(t, nav.Next())
	assert.Equal(t, "duration", nav.ActiveTab())
}

package session

import (
	"context"
	"testing"

	"kycdesk/models"
	"kycdesk/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis points the session cache at an in-memory Redis.
func setupTestRedis(t *testing.T) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	utils.SessionCacheClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func readySession() models.KYCSession {
	return models.KYCSession{
		ClientID:    "c1",
		ClientName:  "Ada Example",
		ClientEmail: "ada@example.com",
		ClientType:  models.ClientTypeNatural,
		ClientPhone: "+41790000000",
		Services: []models.ServiceSelection{
			{Service: "corporate_accounting", Frequency: models.FrequencyOneTime},
		},
		AgencyID: "ag1",
	}
}

func TestStartAndGet(t *testing.T) {
	setupTestRedis(t)
	svc := &DefaultKYCSessionService{}

	require.NoError(t, svc.Start("device-1", readySession()))

	got, err := svc.Get("device-1")
	require.NoError(t, err)
	assert.Equal(t, "c1", got.ClientID)
	assert.Equal(t, []models.ServiceSelection{
		{Service: "corporate_accounting", Frequency: models.FrequencyOneTime},
	}, got.Services)
}

func TestStartRejectsNotReady(t *testing.T) {
	setupTestRedis(t)
	svc := &DefaultKYCSessionService{}

	sess := readySession()
	sess.Services[0].Frequency = ""
	assert.ErrorIs(t, svc.Start("device-1", sess), ErrSessionNotReady)

	// Nothing was written on failure.
	_, err := svc.Get("device-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStartOverwritesPriorSession(t *testing.T) {
	setupTestRedis(t)
	svc := &DefaultKYCSessionService{}

	first := readySession()
	require.NoError(t, svc.Start("device-1", first))

	second := readySession()
	second.ClientID = "c2"
	second.Services = []models.ServiceSelection{
		{Service: "payroll", Frequency: models.FrequencyRecurring},
	}
	require.NoError(t, svc.Start("device-1", second))

	got, err := svc.Get("device-1")
	require.NoError(t, err)
	assert.Equal(t, "c2", got.ClientID, "slot is single; last writer wins")
	assert.Equal(t, "payroll", got.Services[0].Service)
}

func TestSlotsAreDeviceScoped(t *testing.T) {
	setupTestRedis(t)
	svc := &DefaultKYCSessionService{}

	require.NoError(t, svc.Start("device-1", readySession()))

	_, err := svc.Get("device-2")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetMissingSlot(t *testing.T) {
	setupTestRedis(t)
	svc := &DefaultKYCSessionService{}

	_, err := svc.Get("device-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetMalformedSlot(t *testing.T) {
	setupTestRedis(t)
	svc := &DefaultKYCSessionService{}

	// Malformed content reads as not found; consumer restarts the flow.
	require.NoError(t, utils.SessionCacheClient.Set(context.Background(),
		utils.SessionKeyPrefix+"device-1", "{not json", 0).Err())

	_, err := svc.Get("device-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestClear(t *testing.T) {
	setupTestRedis(t)
	svc := &DefaultKYCSessionService{}

	require.NoError(t, svc.Start("device-1", readySession()))
	require.NoError(t, svc.Clear("device-1"))

	_, err := svc.Get("device-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

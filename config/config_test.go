package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SCHEDULING_CONFLICT_POLICY", "")
	t.Setenv("MEETING_LINK_POOL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.NotifyMaxAttempts)
	assert.Equal(t, 200*time.Millisecond, cfg.NotifyRetryBase)
	assert.Equal(t, 10*time.Second, cfg.LockTTL)
	assert.Equal(t, "allow", cfg.SchedulingConflictPolicy)
	assert.Nil(t, cfg.MeetingLinkPool)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SCHEDULING_CONFLICT_POLICY", "REJECT")
	t.Setenv("MEETING_LINK_POOL", "https://meet.example.com/a, ,https://meet.example.com/b")
	t.Setenv("NOTIFY_MAX_ATTEMPTS", "5")
	t.Setenv("LOCK_TTL_SECONDS", "not-a-number")
	t.Setenv("APP_BASE_URL", "https://api.example.com/")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "reject", cfg.SchedulingConflictPolicy)
	assert.Equal(t, []string{"https://meet.example.com/a", "https://meet.example.com/b"}, cfg.MeetingLinkPool)
	assert.Equal(t, 5, cfg.NotifyMaxAttempts)
	assert.Equal(t, 10*time.Second, cfg.LockTTL)
	assert.Equal(t, "https://api.example.com", cfg.AppBaseURL)
}

func TestLoadConfig_UnknownPolicyFallsBack(t *testing.T) {
	t.Setenv("SCHEDULING_CONFLICT_POLICY", "maybe")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "allow", cfg.SchedulingConflictPolicy)
}

func TestLocation(t *testing.T) {
	assert.Equal(t, time.UTC, (&Config{Timezone: "Not/AZone"}).Location())
	assert.Equal(t, "UTC", (&Config{Timezone: "UTC"}).Location().String())
}

func TestLoadConfig_ActionTokenSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("ACTION_TOKEN_SECRET", "")
	t.Setenv("ACTION_TOKEN_TTL_HOURS", "24")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "jwt-secret", cfg.ActionTokenSecret)
	assert.Equal(t, 24*time.Hour, cfg.ActionTokenTTL)

	t.Setenv("ACTION_TOKEN_SECRET", "link-secret")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "link-secret", cfg.ActionTokenSecret)
}

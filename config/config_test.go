package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvFallsBackToDefault(t *testing.T) {
	t.Setenv("LEARNHUB_TEST_VALUE", "")
	assert.Equal(t, "fallback", getEnv("LEARNHUB_TEST_VALUE", "fallback"))

	t.Setenv("LEARNHUB_TEST_VALUE", "set")
	assert.Equal(t, "set", getEnv("LEARNHUB_TEST_VALUE", "fallback"))
}

func TestGetEnvIntRejectsGarbage(t *testing.T) {
	t.Setenv("LEARNHUB_TEST_INT", "abc")
	assert.Equal(t, 7, getEnvInt("LEARNHUB_TEST_INT", 7))

	t.Setenv("LEARNHUB_TEST_INT", "42")
	assert.Equal(t, 42, getEnvInt("LEARNHUB_TEST_INT", 7))
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ORDER_COMPACT_CRON", "")
	t.Setenv("API_TIMEOUT_SECONDS", "")

	LoadConfig()

	assert.Equal(t, "3000", AppConfig.Port)
	assert.Equal(t, "0 3 * * *", AppConfig.OrderCompactCron)
	assert.Equal(t, 15, AppConfig.APITimeoutSeconds)
}

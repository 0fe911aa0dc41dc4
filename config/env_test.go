package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("APP_ENV", "")

	require.Equal(t, "5000", Port())
	require.Equal(t, "foodie", DatabaseName())
	require.Equal(t, "local", AppEnv())
}

func TestRequireNamesMissingKeys(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("ACCESS_TOKEN_SECRET", "")

	err := Require()
	require.Error(t, err)
	require.Contains(t, err.Error(), "MONGO_URI")
	require.Contains(t, err.Error(), "ACCESS_TOKEN_SECRET")
}

func TestRequirePassesWhenSet(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("ACCESS_TOKEN_SECRET", "s3cret")

	require.NoError(t, Require())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"AUTH_TOKEN_SIGN_KEY": "jwt_secret",
		"AUTH_TOKEN_ISSUER":   "test_issuer",
		"AUTH_TOKEN_DURATION": "168h",
		"AUTH_BCRYPT_COST":    "12",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + MONGO_
		"STORAGE_MONGO_URI":             "mongodb://localhost:27017",
		"STORAGE_MONGO_DATABASE":        "pet-adoption",
		"STORAGE_MONGO_CONNECT_TIMEOUT": "10s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 168*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.Mongo.URI)
	assert.Equal(t, "pet-adoption", cfg.Storage.Mongo.Database)
	assert.Equal(t, 10*time.Second, cfg.Storage.Mongo.ConnectTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"AUTH_TOKEN_SIGN_KEY": "only_key",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "only_key", cfg.Auth.TokenSignKey)
	assert.Empty(t, cfg.Auth.TokenIssuer)
	assert.Empty(t, cfg.Storage.Mongo.URI)
	assert.Zero(t, cfg.Auth.TokenDuration)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"AUTH_TOKEN_DURATION": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG",
		"AUTH_TOKEN_SIGN_KEY", "AUTH_TOKEN_ISSUER", "AUTH_TOKEN_DURATION", "AUTH_BCRYPT_COST",
		"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT",
		"STORAGE_MONGO_URI", "STORAGE_MONGO_DATABASE", "STORAGE_MONGO_CONNECT_TIMEOUT",
	} {
		require.NoError(t, os.Unsetenv(k))
	}
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs applies
// defaults and fails validation on the missing token signing key.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, earlier sources winning for set fields.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Auth: Auth{TokenSignKey: "first-key"}},
		&StructuredConfig{
			Auth:   Auth{TokenSignKey: "ignored-key", TokenIssuer: "issuer"},
			Server: Server{HTTPAddress: "localhost:9999"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "first-key", cfg.Auth.TokenSignKey, "mergo keeps the first non-zero value")
	assert.Equal(t, "issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
}

// TestBuild_AppliesDefaults verifies that unset fields receive their
// documented defaults after merging.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Auth: Auth{TokenSignKey: "key"}})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, DefaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, DefaultMongoURI, cfg.Storage.Mongo.URI)
	assert.Equal(t, DefaultMongoDatabase, cfg.Storage.Mongo.Database)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate_MissingSignKey(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)
}

func TestValidate_Valid(t *testing.T) {
	cfg := &StructuredConfig{Auth: Auth{TokenSignKey: "key"}}
	cfg.applyDefaults()

	assert.NoError(t, cfg.validate())
}

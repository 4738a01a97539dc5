// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied by [StructuredConfig.applyDefaults] when a value was not
// provided by any configuration source.
const (
	DefaultTokenIssuer         = "go-pet-adopt"
	DefaultTokenDuration       = 7 * 24 * time.Hour
	DefaultBcryptCost          = 10
	DefaultMongoURI            = "mongodb://localhost:27017"
	DefaultMongoDatabase       = "pet-adoption"
	DefaultMongoConnectTimeout = 10 * time.Second
	DefaultHTTPAddress         = ":8080"
	DefaultRequestTimeout      = 30 * time.Second
)

// applyDefaults fills in zero-value fields that have safe, documented
// defaults. The token signing key deliberately has no default: a process
// must never issue tokens signed with a well-known key.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = DefaultTokenDuration
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = DefaultBcryptCost
	}
	if cfg.Storage.Mongo.URI == "" {
		cfg.Storage.Mongo.URI = DefaultMongoURI
	}
	if cfg.Storage.Mongo.Database == "" {
		cfg.Storage.Mongo.Database = DefaultMongoDatabase
	}
	if cfg.Storage.Mongo.ConnectTimeout == 0 {
		cfg.Storage.Mongo.ConnectTimeout = DefaultMongoConnectTimeout
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.Mongo.URI == "" || cfg.Storage.Mongo.Database == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

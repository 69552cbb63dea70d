// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrey Voronin

package config

import "time"

const (
	defaultHTTPAddress    = ":8080"
	defaultTokenIssuer    = "item-vault"
	defaultTokenDuration  = time.Hour
	defaultRequestTimeout = 30 * time.Second
)

// applyDefaults fills in fallback values for optional settings that were not
// provided by any configuration source. Required settings (the token signing
// key and the database DSN) are left untouched so that validate can reject
// incomplete configurations.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}

	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
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

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

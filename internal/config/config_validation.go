// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// startup invariants. There is deliberately no fallback token sign key:
// running without an operator-provided secret must fail here, at startup,
// never at request time.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	if cfg.App.TokenDuration <= 0 {
		return ErrInvalidTokenDuration
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	return nil
}

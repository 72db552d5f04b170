// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment via caarlos0/env. Both
// [StructuredConfig] on the authority side and [ClientConfig] on the client
// side run through here; the mapping lives in the `env` and `envPrefix` tags
// on their nested sections.
//
// The returned error wraps env.Parse failures, e.g. a value that cannot be
// converted to the field's type.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

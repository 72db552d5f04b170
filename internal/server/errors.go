// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersEnabled is returned by [NewServer] when neither the HTTP nor
// the gRPC address is configured, leaving nothing to run.
var errNoServersEnabled = errors.New("no transport servers enabled")

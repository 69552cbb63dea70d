// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrey Voronin

package handler

import "errors"

// errNoHandlersAreCreated is returned by [NewHandlers] when the configuration
// enables no transport at all, leaving nothing to serve.
var errNoHandlersAreCreated = errors.New("no handlers are created")

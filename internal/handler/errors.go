// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration carries no HTTP address, leaving nothing to serve. It is a
// fatal misconfiguration and stops the server at startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")

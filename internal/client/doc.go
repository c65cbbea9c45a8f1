// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It runs the terminal UI inside a signal-aware context and turns a user
// quit into a clean exit.
package client

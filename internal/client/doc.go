// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the names client runtime.
//
// It builds the REST adapter and the names controller from the client config
// and exposes them to the two front ends: the interactive TUI and the
// one-shot CLI subcommands.
package client

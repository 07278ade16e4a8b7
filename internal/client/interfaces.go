// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is what cmd/client runs: parse os.Args, execute one command and
// return its error.
type Client interface {
	Run() error
}

var _ Client = (*App)(nil)

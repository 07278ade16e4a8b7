// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements notesctl, the command line client of the
// work-notes server.
//
// Commands talk to the server through [adapter.NotesAdapter]; the adapter is
// built on first use so that flag overrides of the server address, user and
// timeout are honoured.
package client

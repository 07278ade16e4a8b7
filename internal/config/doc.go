// Package config provides configuration loading, merging, and validation
// facilities for work-notes.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (server only)
//  4. JSON config file
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for notesctl.
package config

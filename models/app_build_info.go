// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo is the linker-injected build metadata of a binary. Empty
// values print as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo].
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return orNA(a.version) }
func (a AppBuildInfo) BuildDate() string    { return orNA(a.date) }
func (a AppBuildInfo) BuildCommit() string  { return orNA(a.commit) }

// String formats the build as "1.2.0 (built 2026-01-10, commit abc123)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (built %s, commit %s)", a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// Copyright (c) 2026 The Spanbalance Authors.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
)

var (
	// commitSHA is set during the build via ldflags.
	commitSHA string
	// latestVersion is set during the build via ldflags.
	latestVersion string
	// date is the build date, set during the build via ldflags.
	date string
)

// Info holds build information about the binary.
type Info struct {
	GitCommit  string `json:"gitCommit"`
	GitVersion string `json:"gitVersion"`
	BuildDate  string `json:"buildDate"`
}

// Get creates and initializes an Info object from build-time variables.
func Get() Info {
	return Info{
		GitCommit:  commitSHA,
		GitVersion: latestVersion,
		BuildDate:  date,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("git-commit=%s, git-version=%s, build-date=%s",
		i.GitCommit, i.GitVersion, i.BuildDate)
}

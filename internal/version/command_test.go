// Copyright (c) 2026 The Spanbalance Authors.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCommand(t *testing.T) {
	commitSHA = "foobar"
	latestVersion = "v1.2.3"
	date = "2026-01-04"
	cmd := Command()

	expectedUse := "version"
	assert.Equal(t, expectedUse, cmd.Use, "Command use should be '%s'", expectedUse)

	expectedShortDescription := "Print the version."
	assert.Equal(t, expectedShortDescription, cmd.Short, "Command short description should be '%s'", expectedShortDescription)

	expectedLongDescription := `Print the version and build information.`
	assert.Equal(t, expectedLongDescription, cmd.Long, "Command long description should be '%s'", expectedLongDescription)

	var b bytes.Buffer
	cmd.SetOut(&b)
	cmd.Execute()
	out, err := io.ReadAll(&b)
	if err != nil {
		t.Fatal(err)
	}
	expectedCommandOutput := `{"gitCommit":"foobar","gitVersion":"v1.2.3","buildDate":"2026-01-04"}`
	assert.Equal(t, expectedCommandOutput, string(out), "Command output should be '%s'", expectedCommandOutput)
}

// Copyright 2025 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package testutils holds shared helpers for tests in this repository.
package testutils

import (
	"path/filepath"
	"testing"
)

// TestDataPath returns a path to an asset in the testdata directory of the
// calling test's package, suitable for datadriven.Walk. The path is relative
// to the package directory, which is the working directory under "go test".
func TestDataPath(t testing.TB, relative ...string) string {
	return filepath.Join(append([]string{"testdata"}, relative...)...)
}

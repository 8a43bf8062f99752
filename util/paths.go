// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - resolve a configuration path against its data
// directory
//
// a relative path is joined onto the directory, an absolute path is
// kept; the result is cleaned either way
func EnsureAbsolute(directory string, filePath string) string {
	if filepath.IsAbs(filePath) {
		return filepath.Clean(filePath)
	}
	return filepath.Clean(filepath.Join(directory, filePath))
}

// EnsureFileExists - true if the name can be stat'd
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

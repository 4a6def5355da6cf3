// This file is part of Turing.
//
// Turing is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Turing is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Turing.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"
)

// the base path for all resources in the current directory.
const baseResourcePath = ".turing"

// the name of the directory in the user's config directory.
const configDir = "turing"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the resource directory. The sub-directory is created
// if it does not exist.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, file), nil
}

// getBasePath returns the resource directory with the sub-path appended. the
// directory is created if necessary.
func getBasePath(subPth string) (string, error) {
	var pth string

	if _, err := os.Stat(baseResourcePath); err == nil {
		pth = filepath.Join(baseResourcePath, subPth)
	} else {
		cnf, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		pth = filepath.Join(cnf, configDir, subPth)
	}

	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}

	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}

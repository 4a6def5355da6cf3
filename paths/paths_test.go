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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/turing/paths"
	"github.com/jetsetilly/turing/test"
)

// the working directory is changed to a temporary directory containing a
// .turing directory so that the user's config directory is not touched
func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	tmp := t.TempDir()
	test.DemandSuccess(t, os.Chdir(tmp))
	test.DemandSuccess(t, os.Mkdir(".turing", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".turing", "foo", "bar", "baz"))

	// the sub-directory has been created
	info, err := os.Stat(filepath.Join(".turing", "foo", "bar"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".turing", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".turing")
}

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

package machineloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/turing/curated"
	"github.com/jetsetilly/turing/hardware/machine"
)

// Loader is used to specify the machine description to load.
type Loader struct {
	// filename or URL of the description
	Filename string

	// expected hash of the description. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	n := path.Base(ld.Filename)
	return strings.TrimSuffix(n, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the description data. Filenames with a scheme of http or https are
// fetched over HTTP, all others are read from the local file system.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("machineloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("machineloader: %v", resp.Status)
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("machineloader: %v", err)
		}

	default:
		ld.Data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf("machineloader: %v", err)
		}
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf("machineloader: unexpected hash value")
	}
	ld.Hash = hash

	return nil
}

// Machine loads the description, if it has not already been loaded, and
// returns a new machine created from it.
func (ld *Loader) Machine() (*machine.Machine, error) {
	if err := ld.Load(); err != nil {
		return nil, err
	}

	m, err := Parse(bytes.NewReader(ld.Data))
	if err != nil {
		return nil, curated.Errorf("machineloader: %s: %v", ld.ShortName(), err)
	}

	return m, nil
}

// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinel error patterns.
const (
	LoadError         = "romloader: %v"
	UnsupportedScheme = "romloader: unsupported URL scheme (%s)"
	UnexpectedHash    = "romloader: unexpected hash value (%s)"
)

// FileExtensions is the list of file extensions commonly used for CHIP-8
// programs.
var FileExtensions = [...]string{".CH8", ".C8", ".CHIP8", ".ROM", ".BIN"}

// Loader is used to specify the program to load.
type Loader struct {
	// filename or URL of the program to load
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() do nothing
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns the filename without the path or extension.
func (ld Loader) ShortName() string {
	n := filepath.Base(ld.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// IsRecognisedExtension returns true if the filename has one of the
// extensions in the FileExtensions list.
func (ld Loader) IsRecognisedExtension() bool {
	ext := strings.ToUpper(filepath.Ext(ld.Filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load the data from the file or URL named in the Filename field.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	// a single letter scheme is a windows drive letter
	if len(scheme) == 1 {
		scheme = "file"
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, resp.Status)
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file", "":
		fn := ld.Filename
		if u != nil && u.Scheme == "file" {
			fn = u.Path
		}

		ld.Data, err = os.ReadFile(fn)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))

	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf(UnexpectedHash, hash)
	}

	ld.Hash = hash

	if !ld.IsRecognisedExtension() {
		logger.Logf(logger.Allow, "romloader", "unusual file extension for %s", ld.Filename)
	}

	return nil
}

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

package romloader_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

var program = []byte{0x00, 0xe0, 0x12, 0x00}

func writeProgram(t *testing.T, name string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, program, 0o644))
	return fn
}

func TestLoadFile(t *testing.T) {
	fn := writeProgram(t, "test.ch8")

	ld := romloader.NewLoader(fn)
	test.ExpectEquality(t, ld.HasLoaded(), false)
	test.ExpectEquality(t, ld.ShortName(), "test")
	test.ExpectEquality(t, ld.IsRecognisedExtension(), true)

	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectEquality(t, string(ld.Data), string(program))
	test.ExpectEquality(t, len(ld.Hash), 40)

	// loading again is a no-op
	hash := ld.Hash
	test.ExpectSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.Hash, hash)
}

func TestHash(t *testing.T) {
	fn := writeProgram(t, "test.ch8")

	ld := romloader.NewLoader(fn)
	test.DemandSuccess(t, ld.Load())

	// a loader with the correct hash loads
	ok := romloader.NewLoader(fn)
	ok.Hash = ld.Hash
	test.ExpectSuccess(t, ok.Load())

	// a loader with the wrong hash does not
	bad := romloader.NewLoader(fn)
	bad.Hash = strings.Repeat("0", 40)
	err := bad.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.UnexpectedHash))
	test.ExpectEquality(t, bad.HasLoaded(), false)
}

func TestMissingFile(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.LoadError))
}

func TestUnsupportedScheme(t *testing.T) {
	ld := romloader.NewLoader("ftp://example.com/test.ch8")
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.UnsupportedScheme))
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test.ch8" {
			http.NotFound(w, r)
			return
		}
		w.Write(program)
	}))
	defer srv.Close()

	ld := romloader.NewLoader(srv.URL + "/test.ch8")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, string(ld.Data), string(program))

	ld = romloader.NewLoader(srv.URL + "/missing.ch8")
	test.ExpectSuccess(t, curated.Is(ld.Load(), romloader.LoadError))
}

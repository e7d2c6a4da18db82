// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package binaryloader

import (
	"context"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/m65832dis/curated"
	"github.com/jetsetilly/m65832dis/logger"
)

// error patterns returned by Load().
const (
	LoadError         = "binaryloader: %v"
	UnsupportedScheme = "binaryloader: unsupported URL scheme (%s)"
	UnexpectedHash    = "binaryloader: unexpected hash value (%s)"
	OffsetBeyondEnd   = "binaryloader: start offset %d beyond file size %d"
	HTTPStatus        = "binaryloader: %s: %s"
)

// Loader is used to specify the binary image to disassemble and the window of
// that image that is of interest.
type Loader struct {
	// filename or URL of the image to load.
	Filename string

	// start offset into the file and the number of bytes to keep. a length of
	// zero indicates everything from the offset to the end of the file. a
	// length that runs beyond the end of the file is clipped
	Offset uint32
	Length uint32

	// expected hash of the loaded image. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the complete file, not only the selected window
	Hash string

	// size of the complete file after a load operation
	Size int

	// the selected window of the loaded file
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, offset uint32, length uint32) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
		Offset:   offset,
		Length:   length,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (bl Loader) ShortName() string {
	return path.Base(bl.Filename)
}

// HasLoaded returns true if Load() has been successfully called.
func (bl Loader) HasLoaded() bool {
	return bl.Data != nil
}

// Load the binary data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP(S) and local
// files.
//
// Calling Load() on a Loader that has already loaded is a no-op.
func (bl *Loader) Load(ctx context.Context) error {
	if bl.HasLoaded() {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(bl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		data, err = fetch(ctx, bl.Filename)
		if err != nil {
			return err
		}

	case "file", "":
		data, err = os.ReadFile(bl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		// a windows style path such as C:\file.bin parses as a URL with a
		// single letter scheme
		if len(scheme) == 1 {
			data, err = os.ReadFile(bl.Filename)
			if err != nil {
				return curated.Errorf(LoadError, err)
			}
		} else {
			return curated.Errorf(UnsupportedScheme, scheme)
		}
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(data))

	// check for hash consistency
	if bl.Hash != "" && bl.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}
	bl.Hash = hash
	bl.Size = len(data)

	if int64(bl.Offset) >= int64(len(data)) {
		return curated.Errorf(OffsetBeyondEnd, bl.Offset, len(data))
	}

	available := uint32(len(data)) - bl.Offset
	if bl.Length == 0 || bl.Length > available {
		bl.Length = available
	}

	bl.Data = data[bl.Offset : bl.Offset+bl.Length]

	logger.Logf(logger.Allow, "binaryloader", "%s: %d bytes (offset %d, sha1 %s)", bl.ShortName(), bl.Length, bl.Offset, bl.Hash)

	return nil
}

func fetch(ctx context.Context, filename string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, filename, nil)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, curated.Errorf(HTTPStatus, filename, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	return data, nil
}

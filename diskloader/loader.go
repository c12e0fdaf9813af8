// Package diskloader abstracts all the ways a disk image can be loaded
// into the emulation: from a path on disk, or from an embedded byte slice
// (go:embed'd boot disks bundled with the binary). It is adapted from the
// teacher's cartridgeloader package: the same problem (decide a data
// format, expose it as an io.ReadSeeker, let the consumer mount lazily)
// recurs here with disk images standing in for cartridge ROM images.
package diskloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/deadleaf/apple2core/logger"
	"github.com/deadleaf/apple2core/paths"
)

// Loader abstracts all the ways data can be loaded into a drive.
type Loader struct {
	// Name is a shortened, display-friendly form of Filename.
	Name string

	// Filename is the path to the image on disk, or the name given to
	// NewLoaderFromData for embedded images.
	Filename string

	// Format is either forced by the caller or decided by
	// FingerprintExtension/FingerprintMagic.
	Format Format

	// HashSHA1 is computed once the image has been opened.
	HashSHA1 string

	data     *bytes.Reader
	embedded bool
}

// NewLoaderFromFilename is the preferred method of initialisation when
// loading a disk image from a path.
func NewLoaderFromFilename(filename string, format Format) (Loader, error) {
	if strings.TrimSpace(filename) == "" {
		return Loader{}, fmt.Errorf("diskloader: empty filename")
	}

	abs, err := paths.Abs(filename)
	if err != nil {
		return Loader{}, fmt.Errorf("diskloader: %w", err)
	}

	ld := Loader{
		Filename: abs,
		Format:   format,
	}

	if ld.Format == FormatUnknown {
		ld.Format = FingerprintExtension(abs)
	}

	ld.Name = NameFromFilename(abs)
	return ld, nil
}

// NewLoaderFromData creates a Loader over an in-memory image, for embedded
// boot disks shipped with the binary via go:embed.
func NewLoaderFromData(name string, data []byte, format Format) (Loader, error) {
	if len(data) == 0 {
		return Loader{}, fmt.Errorf("diskloader: embedded image %q is empty", name)
	}
	if format == FormatUnknown {
		format = FingerprintMagic(data)
	}
	return Loader{
		Name:     name,
		Filename: name,
		Format:   format,
		data:     bytes.NewReader(data),
		embedded: true,
		HashSHA1: fmt.Sprintf("%x", sha1.Sum(data)),
	}, nil
}

// Open reads the entire image into memory and fingerprints it. Disk
// images are small enough (at most ~227.5KiB for a WOZ v2 image with
// generous metadata) that streaming isn't worthwhile; this differs from
// the teacher's cartridgeloader, which streams large sound-encoded
// cartridge images lazily.
func (ld *Loader) Open() error {
	if ld.embedded {
		return nil
	}

	raw, err := os.ReadFile(ld.Filename)
	if err != nil {
		return fmt.Errorf("diskloader: %w", err)
	}

	if ld.Format == FormatUnknown {
		ld.Format = FingerprintMagic(raw)
	}

	ld.data = bytes.NewReader(raw)
	ld.HashSHA1 = fmt.Sprintf("%x", sha1.Sum(raw))
	logger.Logf(logger.Allow, "diskloader", "opened %s as %s (%d bytes)", ld.Filename, ld.Format, len(raw))
	return nil
}

// Bytes returns the whole image. Open must have been called first.
func (ld *Loader) Bytes() []byte {
	if ld.data == nil {
		return nil
	}
	b := make([]byte, ld.data.Len())
	ld.data.ReadAt(b, 0)
	return b
}

// Read implements io.Reader.
func (ld *Loader) Read(p []byte) (int, error) {
	if ld.data == nil {
		return 0, fmt.Errorf("diskloader: image not open")
	}
	return ld.data.Read(p)
}

// Seek implements io.Seeker.
func (ld *Loader) Seek(offset int64, whence int) (int64, error) {
	if ld.data == nil {
		return 0, fmt.Errorf("diskloader: image not open")
	}
	return ld.data.Seek(offset, whence)
}

// NameFromFilename shortens a path to a name suitable for display,
// stripping a recognised disk-image extension.
func NameFromFilename(filename string) string {
	name := filepath.Base(filename)
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, e := range FileExtensions {
		if ext == e {
			return strings.TrimSuffix(name, filepath.Ext(filename))
		}
	}
	return name
}

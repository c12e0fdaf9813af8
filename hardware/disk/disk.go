// Package disk mounts 5.25" disk images onto an iwm.Controller's
// drives, identifying DOS-order, ProDOS-order, NIB, and WOZ images by
// extension and size, per spec.md §4.6 "Media". It is grounded on
// original_source/src/devices/diskii/Floppy525.cpp's mount/unmount/
// writeback trio, generalized from that file's single-drive, global
// media_descriptor shape into a per-drive Mount/Unmount/Writeback API
// a diskloader.Loader can call for either of a Controller's two
// drives.
package disk

import (
	"github.com/deadleaf/apple2core/curated"
	"github.com/deadleaf/apple2core/diskloader"
	"github.com/deadleaf/apple2core/hardware/disk/iwm"
	"github.com/deadleaf/apple2core/hardware/disk/nibble"
	"github.com/deadleaf/apple2core/hwerrors"
)

// Format identifies a disk image's sector/nibble layout.
type Format int

const (
	FormatDOSOrder Format = iota
	FormatProDOSOrder
	FormatNIB
	FormatWOZ
)

const sectorsPerTrack = 16
const tracksPerDisk = 35
const dosImageSize = tracksPerDisk * sectorsPerTrack * 256 // 140KiB

// FromLoaderFormat converts the format a diskloader.Loader fingerprinted
// into this package's Format, per spec.md §4.6 ("identify the image
// (DOS-order, ProDOS-order, WOZ, or pre-nibblized NIB)"). The two
// packages keep separate enums because diskloader's is a general
// loading concern (shared with embedded boot disks) while this one
// only needs to know how Mount should interpret the bytes.
func FromLoaderFormat(f diskloader.Format) (Format, error) {
	switch f {
	case diskloader.FormatDOSOrder:
		return FormatDOSOrder, nil
	case diskloader.FormatProDOSOrder:
		return FormatProDOSOrder, nil
	case diskloader.FormatNIB:
		return FormatNIB, nil
	case diskloader.FormatWOZ:
		return FormatWOZ, nil
	}
	return 0, curated.Errorf(hwerrors.DiskUnrecognised, f.String())
}

func skewFor(f Format) [16]int {
	if f == FormatProDOSOrder {
		return nibble.ProDOSSkew
	}
	return nibble.DOSSkew
}

// Mount loads image into drive as a nibblized track set, per spec.md
// §4.6: a DOS/ProDOS-order image is encoded to 6-and-2 GCR with the
// format's interleave table; a NIB image is copied through directly
// (it is already nibblized); a WOZ image is copied through the same
// way, byte for byte from the start of the file: its header and chunks
// are not parsed, so its TRKS track data is not located.
func Mount(drive *iwm.Drive, f Format, image []byte, writeProtected bool) error {
	switch f {
	case FormatDOSOrder, FormatProDOSOrder:
		if len(image) != dosImageSize {
			return curated.Errorf(hwerrors.DiskWrongSize, "image", len(image), extensionFor(f))
		}
		skew := skewFor(f)
		for track := 0; track < tracksPerDisk; track++ {
			var sectors [16][256]byte
			for s := 0; s < sectorsPerTrack; s++ {
				copy(sectors[s][:], image[(track*sectorsPerTrack+s)*256:])
			}
			t := nibble.EncodeTrack(sectors, skew, 0xFE, byte(track))
			drive.Track[track*2] = t
		}
	case FormatNIB, FormatWOZ:
		mountNibblePassthrough(drive, image)
	}

	drive.Present = true
	drive.WriteProtect = writeProtected
	drive.Modified = false
	drive.HalfTrack = 0
	return nil
}

func mountNibblePassthrough(drive *iwm.Drive, image []byte) {
	trackLen := nibble.MaxTrackNibbles
	if trackLen == 0 || len(image) == 0 {
		return
	}
	for track := 0; track*trackLen < len(image) && track < tracksPerDisk; track++ {
		t := nibble.NewTrack()
		n := copy(t.Data, image[track*trackLen:])
		t.Size = n
		drive.Track[track*2] = t
	}
}

func extensionFor(f Format) string {
	switch f {
	case FormatProDOSOrder:
		return ".po"
	case FormatNIB:
		return ".nib"
	case FormatWOZ:
		return ".woz"
	default:
		return ".do/.dsk"
	}
}

// Unmount clears a drive's media, per spec.md §4.6's implicit contract
// that a subsequent Mount always starts from a blank slate.
func Unmount(drive *iwm.Drive) {
	for i := range drive.Track {
		drive.Track[i] = nil
	}
	drive.Present = false
	drive.Modified = false
}

// Writeback re-derives a DOS/ProDOS-order or NIB image from drive's
// current nibblized tracks, per spec.md §4.6: "On unmount with
// modified=true, invert the nibblize to produce the original format
// for write-back."
func Writeback(drive *iwm.Drive, f Format) ([]byte, error) {
	switch f {
	case FormatNIB, FormatWOZ:
		out := make([]byte, 0, tracksPerDisk*nibble.MaxTrackNibbles)
		for track := 0; track < tracksPerDisk; track++ {
			t := drive.Track[track*2]
			if t == nil {
				out = append(out, make([]byte, nibble.MaxTrackNibbles)...)
				continue
			}
			padded := make([]byte, nibble.MaxTrackNibbles)
			copy(padded, t.Data[:t.Size])
			out = append(out, padded...)
		}
		return out, nil
	default:
		skew := skewFor(f)
		out := make([]byte, dosImageSize)
		for track := 0; track < tracksPerDisk; track++ {
			t := drive.Track[track*2]
			if t == nil {
				continue
			}
			sectors, ok := nibble.DecodeTrack(t, skew)
			if !ok {
				return nil, curated.Errorf(hwerrors.DiskUnrecognised, "writeback: could not decode track")
			}
			for s := 0; s < sectorsPerTrack; s++ {
				copy(out[(track*sectorsPerTrack+s)*256:], sectors[s][:])
			}
		}
		return out, nil
	}
}

package diskloader

import (
	"bytes"
	"path/filepath"
	"strings"
)

// FingerprintExtension decides a Format purely from a filename's
// extension, per spec.md §6.1.
func FingerprintExtension(filename string) Format {
	switch strings.ToUpper(filepath.Ext(filename)) {
	case ".DO", ".DSK":
		return FormatDOSOrder
	case ".PO":
		return FormatProDOSOrder
	case ".NIB":
		return FormatNIB
	case ".WOZ":
		return FormatWOZ
	default:
		return FormatUnknown
	}
}

// wozMagic is the 8-byte signature at the start of every WOZ v2 image:
// "WOZ2" followed by 0xFF and three newline-family bytes used to detect
// ASCII-mode file transfer corruption.
var wozMagic = []byte{'W', 'O', 'Z', '2', 0xFF, 0x0A, 0x0D, 0x0A}

// FingerprintMagic decides a Format from the image's content, used when
// the extension is missing or untrustworthy (for example, embedded
// images identified only by a short logical name). It mirrors the
// teacher's mini-fingerprint helpers: just enough inspection to route the
// data to the right decoder, with full structural validation left to the
// decoder itself.
func FingerprintMagic(data []byte) Format {
	if len(data) >= len(wozMagic) && bytes.Equal(data[:len(wozMagic)], wozMagic) {
		return FormatWOZ
	}
	switch len(data) {
	case SectorImageSize:
		// DOS-order and ProDOS-order images are indistinguishable by
		// size or magic; default to DOS-order and let the caller
		// override via extension or explicit Format when known.
		return FormatDOSOrder
	case NIBImageSize:
		return FormatNIB
	default:
		return FormatUnknown
	}
}

package diskloader_test

import (
	"testing"

	"github.com/deadleaf/apple2core/diskloader"
)

func TestFingerprintExtension(t *testing.T) {
	cases := map[string]diskloader.Format{
		"boot.DO":       diskloader.FormatDOSOrder,
		"boot.dsk":      diskloader.FormatDOSOrder,
		"boot.PO":       diskloader.FormatProDOSOrder,
		"boot.nib":      diskloader.FormatNIB,
		"boot.WOZ":      diskloader.FormatWOZ,
		"boot.unknown":  diskloader.FormatUnknown,
		"noextension":   diskloader.FormatUnknown,
	}
	for name, want := range cases {
		if got := diskloader.FingerprintExtension(name); got != want {
			t.Errorf("FingerprintExtension(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestFingerprintMagicWOZ(t *testing.T) {
	data := append([]byte{'W', 'O', 'Z', '2', 0xFF, 0x0A, 0x0D, 0x0A}, make([]byte, 100)...)
	if got := diskloader.FingerprintMagic(data); got != diskloader.FormatWOZ {
		t.Fatalf("FingerprintMagic(woz) = %v, want FormatWOZ", got)
	}
}

func TestFingerprintMagicBySize(t *testing.T) {
	sector := make([]byte, diskloader.SectorImageSize)
	if got := diskloader.FingerprintMagic(sector); got != diskloader.FormatDOSOrder {
		t.Fatalf("FingerprintMagic(140KiB) = %v, want FormatDOSOrder", got)
	}

	nib := make([]byte, diskloader.NIBImageSize)
	if got := diskloader.FingerprintMagic(nib); got != diskloader.FormatNIB {
		t.Fatalf("FingerprintMagic(227.5KiB) = %v, want FormatNIB", got)
	}

	if got := diskloader.FingerprintMagic([]byte{1, 2, 3}); got != diskloader.FormatUnknown {
		t.Fatalf("FingerprintMagic(garbage) = %v, want FormatUnknown", got)
	}
}

func TestNewLoaderFromData(t *testing.T) {
	sector := make([]byte, diskloader.SectorImageSize)
	ld, err := diskloader.NewLoaderFromData("boot", sector, diskloader.FormatUnknown)
	if err != nil {
		t.Fatalf("NewLoaderFromData: %v", err)
	}
	if ld.Format != diskloader.FormatDOSOrder {
		t.Fatalf("Format = %v, want FormatDOSOrder", ld.Format)
	}
	if ld.HashSHA1 == "" {
		t.Fatalf("HashSHA1 not populated for embedded image")
	}
	if len(ld.Bytes()) != diskloader.SectorImageSize {
		t.Fatalf("Bytes() length = %d, want %d", len(ld.Bytes()), diskloader.SectorImageSize)
	}
}

func TestNewLoaderFromDataEmptyRejected(t *testing.T) {
	if _, err := diskloader.NewLoaderFromData("empty", nil, diskloader.FormatUnknown); err == nil {
		t.Fatalf("NewLoaderFromData(empty) did not return an error")
	}
}

func TestNameFromFilename(t *testing.T) {
	cases := map[string]string{
		"/disks/DOS33.DSK": "DOS33",
		"/disks/prodos.po": "prodos",
		"/disks/notes.txt": "notes.txt",
	}
	for in, want := range cases {
		if got := diskloader.NameFromFilename(in); got != want {
			t.Errorf("NameFromFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

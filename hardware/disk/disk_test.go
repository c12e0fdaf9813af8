package disk_test

import (
	"testing"

	"github.com/deadleaf/apple2core/diskloader"
	"github.com/deadleaf/apple2core/hardware/disk"
	"github.com/deadleaf/apple2core/hardware/disk/iwm"
)

func TestFromLoaderFormat(t *testing.T) {
	cases := map[diskloader.Format]disk.Format{
		diskloader.FormatDOSOrder:    disk.FormatDOSOrder,
		diskloader.FormatProDOSOrder: disk.FormatProDOSOrder,
		diskloader.FormatNIB:         disk.FormatNIB,
		diskloader.FormatWOZ:         disk.FormatWOZ,
	}
	for in, want := range cases {
		got, err := disk.FromLoaderFormat(in)
		if err != nil {
			t.Fatalf("FromLoaderFormat(%v): %v", in, err)
		}
		if got != want {
			t.Fatalf("FromLoaderFormat(%v) = %v, want %v", in, got, want)
		}
	}
	if _, err := disk.FromLoaderFormat(diskloader.FormatUnknown); err == nil {
		t.Fatalf("FromLoaderFormat(FormatUnknown) did not return an error")
	}
}

const dosImageSize = 35 * 16 * 256

func TestMountRejectsWrongSize(t *testing.T) {
	drive := iwm.NewDrive()
	if err := disk.Mount(drive, disk.FormatDOSOrder, make([]byte, 100), false); err == nil {
		t.Fatalf("Mount accepted a wrong-size DOS-order image")
	}
}

func TestMountWritebackRoundTripDOSOrder(t *testing.T) {
	image := make([]byte, dosImageSize)
	for i := range image {
		image[i] = byte(i)
	}

	drive := iwm.NewDrive()
	if err := disk.Mount(drive, disk.FormatDOSOrder, image, false); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if !drive.Present {
		t.Fatalf("Present = false after Mount")
	}
	if drive.WriteProtect {
		t.Fatalf("WriteProtect = true, want false")
	}

	out, err := disk.Writeback(drive, disk.FormatDOSOrder)
	if err != nil {
		t.Fatalf("Writeback: %v", err)
	}
	if len(out) != len(image) {
		t.Fatalf("Writeback length = %d, want %d", len(out), len(image))
	}
	for i := range image {
		if out[i] != image[i] {
			t.Fatalf("Writeback byte %d = %#02x, want %#02x", i, out[i], image[i])
		}
	}
}

func TestMountWriteProtectedFlag(t *testing.T) {
	image := make([]byte, dosImageSize)
	drive := iwm.NewDrive()
	if err := disk.Mount(drive, disk.FormatDOSOrder, image, true); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if !drive.WriteProtect {
		t.Fatalf("WriteProtect = false, want true")
	}
}

func TestUnmountClearsDrive(t *testing.T) {
	image := make([]byte, dosImageSize)
	drive := iwm.NewDrive()
	disk.Mount(drive, disk.FormatDOSOrder, image, false)
	disk.Unmount(drive)
	if drive.Present {
		t.Fatalf("Present = true after Unmount")
	}
	for i, tr := range drive.Track {
		if tr != nil {
			t.Fatalf("Track[%d] not cleared after Unmount", i)
		}
	}
}

func TestMountNIBPassthrough(t *testing.T) {
	image := make([]byte, 6656*2) // two tracks worth
	for i := range image {
		image[i] = byte(i)
	}
	drive := iwm.NewDrive()
	if err := disk.Mount(drive, disk.FormatNIB, image, false); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if drive.Track[0] == nil || drive.Track[2] == nil {
		t.Fatalf("expected tracks at half-track 0 and 2 to be populated")
	}
}

package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func profileBytes(uuid string) []byte {
	doc := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>UUID</key>
	<string>%s</string>
	<key>Name</key>
	<string>Embedded</string>
	<key>ExpirationDate</key>
	<date>2026-12-07T07:46:52Z</date>
</dict>
</plist>`, uuid)
	// Wrap in fake CMS envelope bytes, like a real signed profile.
	out := append([]byte{0x30, 0x82, 0x05, 0x39}, doc...)
	return append(out, 0xde, 0xad, 0xbe, 0xef)
}

func writeArchive(t *testing.T, entries map[string][]byte) string {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, data := range entries {
		f, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "app.ipa")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProfilesMatchesOnlyProfileEntries(t *testing.T) {
	path := writeArchive(t, map[string][]byte{
		"Payload/App.app/embedded.mobileprovision": profileBytes("abc-123"),
		"Payload/App.app/ignored.txt":              []byte("nope"),
	})

	payloads, errs, err := Profiles(path)
	if err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("unexpected entry errors: %v", errs)
	}
	if len(payloads) != 1 {
		t.Fatalf("got %d payloads, want 1", len(payloads))
	}
	if payloads[0].Name != "Payload/App.app/embedded.mobileprovision" {
		t.Errorf("payload name = %q", payloads[0].Name)
	}
	if !bytes.Equal(payloads[0].Data, profileBytes("abc-123")) {
		t.Error("payload bytes do not match the archive entry")
	}
}

func TestProfilesNotAnArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(path, []byte("just text"), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Profiles(path)
	if !errors.Is(err, ErrNotAnArchive) {
		t.Errorf("got %v, want ErrNotAnArchive", err)
	}
}

func TestProfilesMissingFile(t *testing.T) {
	_, _, err := Profiles(filepath.Join(t.TempDir(), "nope.ipa"))
	if err == nil {
		t.Fatal("Profiles of a missing file should fail")
	}
	if errors.Is(err, ErrNotAnArchive) {
		t.Error("a missing file is not a format error")
	}
}

func TestExtract(t *testing.T) {
	path := writeArchive(t, map[string][]byte{
		"Payload/App.app/embedded.mobileprovision":    profileBytes("abc-123"),
		"Payload/App.app/Ext.appex/x.mobileprovision": profileBytes("def-456"),
		"Payload/App.app/broken.mobileprovision":      []byte("garbage, no plist"),
		"Payload/App.app/Info.plist":                  []byte("<plist/>"),
	})
	dest := filepath.Join(t.TempDir(), "out", "nested")

	written, errs, err := Extract(path, dest)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if len(written) != 2 {
		t.Fatalf("wrote %d files, want 2: %v", len(written), written)
	}
	for _, uuid := range []string{"abc-123", "def-456"} {
		out := filepath.Join(dest, uuid+".mobileprovision")
		data, rerr := os.ReadFile(out)
		if rerr != nil {
			t.Fatalf("expected %s: %v", out, rerr)
		}
		if !bytes.Equal(data, profileBytes(uuid)) {
			t.Errorf("%s: extracted bytes differ from archive entry", out)
		}
	}

	if len(errs) != 1 {
		t.Fatalf("got %d entry errors, want 1: %v", len(errs), errs)
	}
	if errs[0].Name != "Payload/App.app/broken.mobileprovision" {
		t.Errorf("entry error name = %q", errs[0].Name)
	}
}

func TestExtractDestinationIsAFile(t *testing.T) {
	path := writeArchive(t, map[string][]byte{
		"embedded.mobileprovision": profileBytes("abc-123"),
	})
	dest := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(dest, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := Extract(path, dest); err == nil {
		t.Fatal("Extract into a file path should fail")
	}
}

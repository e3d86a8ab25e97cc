// Package archive packages an input directory into an in-memory zip.
// Entries are the directory's top-level regular files, nothing else.
package archive

import (
	"archive/zip"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"rsmf-lab/domain/mimetypes"
	errs "rsmf-lab/errors"
)

// magicLen is how many leading bytes feed the content-type sniffer.
const magicLen = 64

// Entry records what was packaged for one file: enough for inspection,
// verification, and journaling without reopening the zip.
type Entry struct {
	Name     string
	Size     int64
	MimeType mimetypes.MIME
	Sha256   string
}

// Archive is the packaged result. Data holds the complete zip bytes;
// the struct is immutable once built.
type Archive struct {
	Data    []byte
	Entries []Entry
}

// Build packages every regular file directly inside inputDir, the manifest
// included. Subdirectories and symlinks are skipped; entry names are base
// names. Any unreadable directory or file aborts the build.
func Build(inputDir string) (*Archive, error) {
	dirEntries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrArchive, err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	var entries []Entry

	for _, de := range dirEntries {
		if !de.Type().IsRegular() {
			continue
		}
		path := filepath.Join(inputDir, de.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", errs.ErrArchive, de.Name(), err)
		}

		w, err := zw.Create(de.Name())
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", errs.ErrArchive, de.Name(), err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", errs.ErrArchive, de.Name(), err)
		}

		sum := sha256.Sum256(data)
		entries = append(entries, Entry{
			Name:     de.Name(),
			Size:     int64(len(data)),
			MimeType: mimetypes.Detect(magic(data)),
			Sha256:   hex.EncodeToString(sum[:]),
		})
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrArchive, err)
	}

	return &Archive{Data: buf.Bytes(), Entries: entries}, nil
}

// Open exposes the packaged bytes as a zip reader, for validation and
// verification paths.
func (a *Archive) Open() (*zip.Reader, error) {
	return zip.NewReader(bytes.NewReader(a.Data), int64(len(a.Data)))
}

// Entry looks an entry up by name.
func (a *Archive) Entry(name string) (Entry, bool) {
	for _, e := range a.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

func magic(data []byte) []byte {
	if len(data) > magicLen {
		return data[:magicLen]
	}
	return data
}

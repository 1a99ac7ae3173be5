// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package sfd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goki/bedstead/outline"
)

func square() []outline.Polygon {
	return []outline.Polygon{{
		Points: []outline.Point{{0, 4}, {20, 4}, {20, 40}, {0, 40}},
		Closed: true,
	}}
}

func TestWriterFraming(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.WriteHeader(DefaultHeader(), 2, 1); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	if err := w.WriteGlyph("space", 0x0020, 500, 0, nil); err != nil {
		t.Fatalf("WriteGlyph(space): %v", err)
	}
	if err := w.WriteGlyph("a.sc", -1, 500, 1, square()); err != nil {
		t.Fatalf("WriteGlyph(a.sc): %v", err)
	}
	if err := w.WriteFooter(); err != nil {
		t.Fatalf("WriteFooter: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "SplineFontDB: 3.0\n") {
		t.Errorf("output does not start with the SplineFontDB preamble line: %q", out[:40])
	}
	if !strings.HasSuffix(out, "EndSplineFont\n") {
		t.Errorf("output does not end with EndSplineFont")
	}
	if !strings.Contains(out, "BeginChars: 65537 2\n") {
		t.Errorf("BeginChars line missing or wrong: %q", out)
	}
	if !strings.Contains(out, "StartChar: space\n") {
		t.Errorf("missing StartChar: space")
	}
	if !strings.Contains(out, "Encoding: 65536 -1 1\n") {
		t.Errorf("extra glyph did not get a Private Use Area encoding: %q", out)
	}
	if !strings.Contains(out, "SplineSet\n") {
		t.Errorf("glyph with a non-empty outline has no SplineSet block")
	}
	if strings.Count(out, "StartChar:") != 2 {
		t.Errorf("expected exactly 2 StartChar blocks, got %d", strings.Count(out, "StartChar:"))
	}
}

func TestWriterPropagatesFirstError(t *testing.T) {
	w := NewWriter(failingWriter{})
	err := w.WriteHeader(DefaultHeader(), 1, 0)
	if err == nil {
		t.Fatal("expected an error from a writer that always fails")
	}
	// Once err is set, further calls must be no-ops that return the same error.
	if err2 := w.WriteGlyph("space", 0x0020, 500, 0, nil); err2 != err {
		t.Errorf("WriteGlyph after a write error returned %v, want the original %v", err2, err)
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

var errWrite = writeError("sfd: write failed")

type writeError string

func (e writeError) Error() string { return string(e) }

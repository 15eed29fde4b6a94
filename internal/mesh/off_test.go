// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/ISSKA/geocruncher/internal/geom"
)

// TestWriteOFFSingleTriangle covers spec.md scenario S3's literal output.
func TestWriteOFFSingleTriangle(t *testing.T) {
	m := Mesh{
		Vertices: []geom.Vec3{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
		Faces: [][3]int{{0, 1, 2}},
	}
	want := "OFF\n3 1 0\n0.0 0.0 0.0\n1.0 0.0 0.0\n0.0 1.0 0.0\n3 0 1 2\n"
	got := string(WriteOFF(m))
	if got != want {
		t.Fatalf("WriteOFF mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestOFFRoundTrip(t *testing.T) {
	m := Mesh{
		Vertices: []geom.Vec3{
			{X: 0, Y: 0, Z: 0},
			{X: 1.234, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
		Faces: [][3]int{{0, 1, 2}, {0, 2, 3}},
	}
	encoded := WriteOFF(m)
	decoded, err := ReadOFF(encoded)
	if err != nil {
		t.Fatalf("ReadOFF: %v", err)
	}
	if len(decoded.Vertices) != len(m.Vertices) || len(decoded.Faces) != len(m.Faces) {
		t.Fatalf("round-trip count mismatch: got %d verts/%d faces, want %d/%d",
			len(decoded.Vertices), len(decoded.Faces), len(m.Vertices), len(m.Faces))
	}
	if decoded.Vertices[1].X != 1.234 {
		t.Fatalf("round-trip lost precision: got %v, want 1.234", decoded.Vertices[1].X)
	}
	for i, f := range decoded.Faces {
		if f != m.Faces[i] {
			t.Fatalf("face %d mismatch: got %v, want %v", i, f, m.Faces[i])
		}
	}
}

func TestReadOFFRejectsNonTriangularFaces(t *testing.T) {
	data := []byte("OFF\n4 1 0\n0 0 0\n1 0 0\n1 1 0\n0 1 0\n4 0 1 2 3\n")
	if _, err := ReadOFF(data); err == nil {
		t.Fatal("expected error for quad face, got nil")
	}
}

func TestReadOFFToleratesBlankLines(t *testing.T) {
	data := []byte("OFF\n\n3 1 0\n\n0 0 0\n1 0 0\n0 1 0\n3 0 1 2\n")
	m, err := ReadOFF(data)
	if err != nil {
		t.Fatalf("ReadOFF with blank lines: %v", err)
	}
	if len(m.Vertices) != 3 || len(m.Faces) != 1 {
		t.Fatalf("got %d verts/%d faces, want 3/1", len(m.Vertices), len(m.Faces))
	}
}

func TestDetectFormat(t *testing.T) {
	if DetectFormat([]byte("OFF\n")) != FormatOFF {
		t.Fatal("expected FormatOFF")
	}
	if DetectFormat([]byte{0x44, 0x52, 0x41, 0x43}) != FormatDraco {
		t.Fatal("expected FormatDraco")
	}
}

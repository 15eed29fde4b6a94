// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/ISSKA/geocruncher/internal/geom"
)

// WriteOFF encodes a mesh in the literal ASCII OFF form spec.md §4.8/§8
// (scenario S3) requires: header "OFF\n", counts line "<NV> <NF> 0\n",
// one line per vertex with coordinates rounded to 3 decimals, one line per
// face prefixed by the vertex count (always 3, since only triangular
// faces are supported).
func WriteOFF(m Mesh) []byte {
	var buf bytes.Buffer
	buf.WriteString("OFF\n")
	fmt.Fprintf(&buf, "%d %d 0\n", len(m.Vertices), len(m.Faces))
	for _, v := range m.Vertices {
		fmt.Fprintf(&buf, "%s %s %s\n", formatCoord(v.X), formatCoord(v.Y), formatCoord(v.Z))
	}
	for _, f := range m.Faces {
		fmt.Fprintf(&buf, "3 %d %d %d\n", f[0], f[1], f[2])
	}
	return buf.Bytes()
}

// formatCoord rounds to 3 decimals and trims to the shortest representation
// that round-trips, e.g. "0.0" rather than "0.000", matching the literal
// S3 scenario output.
func formatCoord(v float64) string {
	rounded := math.Round(v*1000) / 1000
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ReadOFF parses an OFF mesh. Only triangular faces are supported; any
// other face arity is a fatal input-shape error (spec.md §7). Comment
// lines ("#...") are skipped. Per spec.md §9 Open Question (ii), both a
// strict and a permissive header/vertex-block layout are accepted: blank
// lines between the header and the vertex block are tolerated even though
// the writer never emits one.
func ReadOFF(data []byte) (Mesh, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	nextLine := func() (string, bool) {
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			return line, true
		}
		return "", false
	}

	header, ok := nextLine()
	if !ok || header != "OFF" {
		return Mesh{}, chk.Err("off: missing OFF header")
	}
	counts, ok := nextLine()
	if !ok {
		return Mesh{}, chk.Err("off: missing counts line")
	}
	fields := strings.Fields(counts)
	if len(fields) < 2 {
		return Mesh{}, chk.Err("off: malformed counts line %q", counts)
	}
	nv, err := strconv.Atoi(fields[0])
	if err != nil {
		return Mesh{}, chk.Err("off: bad vertex count %q", fields[0])
	}
	nf, err := strconv.Atoi(fields[1])
	if err != nil {
		return Mesh{}, chk.Err("off: bad face count %q", fields[1])
	}

	verts := make([]geom.Vec3, 0, nv)
	for i := 0; i < nv; i++ {
		line, ok := nextLine()
		if !ok {
			return Mesh{}, chk.Err("off: expected %d vertices, got %d", nv, i)
		}
		f := strings.Fields(line)
		if len(f) < 3 {
			return Mesh{}, chk.Err("off: malformed vertex line %q", line)
		}
		x, ex := strconv.ParseFloat(f[0], 64)
		y, ey := strconv.ParseFloat(f[1], 64)
		z, ez := strconv.ParseFloat(f[2], 64)
		if ex != nil || ey != nil || ez != nil {
			return Mesh{}, chk.Err("off: malformed vertex line %q", line)
		}
		verts = append(verts, geom.Vec3{X: x, Y: y, Z: z})
	}

	faces := make([][3]int, 0, nf)
	for i := 0; i < nf; i++ {
		line, ok := nextLine()
		if !ok {
			return Mesh{}, chk.Err("off: expected %d faces, got %d", nf, i)
		}
		f := strings.Fields(line)
		if len(f) < 1 {
			return Mesh{}, chk.Err("off: malformed face line %q", line)
		}
		arity, err := strconv.Atoi(f[0])
		if err != nil {
			return Mesh{}, chk.Err("off: malformed face arity %q", f[0])
		}
		if arity != 3 {
			return Mesh{}, chk.Err("off: only triangular faces are supported, got arity %d", arity)
		}
		if len(f) < 4 {
			return Mesh{}, chk.Err("off: malformed face line %q", line)
		}
		a, ea := strconv.Atoi(f[1])
		b, eb := strconv.Atoi(f[2])
		c, ec := strconv.Atoi(f[3])
		if ea != nil || eb != nil || ec != nil {
			return Mesh{}, chk.Err("off: malformed face indices %q", line)
		}
		faces = append(faces, [3]int{a, b, c})
	}
	return Mesh{Vertices: verts, Faces: faces}, nil
}

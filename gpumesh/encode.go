// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpumesh

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/soypat/glgl/math/ms2"

	"github.com/gogpu/shapes"
)

// EncodeVertices serializes vertices little-endian in the VertexLayout
// order.
func EncodeVertices(vertices []shapes.Vertex) []byte {
	return AppendVertices(make([]byte, 0, len(vertices)*VertexStride), vertices)
}

// AppendVertices is like EncodeVertices but appends to dst, so a staging
// buffer can be reused across frames.
func AppendVertices(dst []byte, vertices []shapes.Vertex) []byte {
	var buf [VertexStride]byte
	for _, v := range vertices {
		putFloats(buf[:],
			v.Position.X, v.Position.Y,
			v.TexCoord.X, v.TexCoord.Y,
			v.Color.R, v.Color.G, v.Color.B, v.Color.A,
		)
		dst = append(dst, buf[:]...)
	}
	return dst
}

func putFloats(buf []byte, fs ...float32) {
	for i, f := range fs {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
}

// EncodeIndices serializes indices in the given format. The result is
// padded with zeros to a multiple of 4 bytes, the alignment buffer writes
// require. Indices that do not fit a 16-bit format are truncated; use
// IndexFormat to pick a format that fits.
func EncodeIndices(indices []uint32, format gputypes.IndexFormat) []byte {
	if format == gputypes.IndexFormatUint16 {
		out := make([]byte, align4(len(indices)*2))
		for i, idx := range indices {
			binary.LittleEndian.PutUint16(out[i*2:], uint16(idx))
		}
		return out
	}
	out := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(out[i*4:], idx)
	}
	return out
}

func align4(n int) int {
	return (n + 3) &^ 3
}

// ViewUniformSize is the size in bytes of the shader's view uniform.
const ViewUniformSize = 16

// EncodeView serializes the view uniform: the world rectangle that fills
// the render target. view.Min lands on the bottom-left corner.
func EncodeView(view ms2.Box) []byte {
	out := make([]byte, ViewUniformSize)
	size := ms2.Sub(view.Max, view.Min)
	putFloats(out, view.Min.X, view.Min.Y, size.X, size.Y)
	return out
}

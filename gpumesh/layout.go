// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpumesh

import (
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/shapes"
)

// VertexStride is the byte stride per vertex. Layout per vertex:
//
//	position (vec2<f32>) = 8 bytes  (location 0)
//	texcoord (vec2<f32>) = 8 bytes  (location 1)
//	color    (vec4<f32>) = 16 bytes (location 2)
//
// Total = 32 bytes per vertex.
const VertexStride = 32

// Topology is the primitive topology of every encoded Poly.
const Topology = gputypes.PrimitiveTopologyTriangleList

// VertexLayout returns the vertex buffer layout matching EncodeVertices.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},  // texcoord
				{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2}, // color
			},
		},
	}
}

// IndexFormat returns the narrowest index format able to address every
// vertex of p: 16-bit indices when the Poly has at most 65535 vertices.
func IndexFormat(p shapes.Poly) gputypes.IndexFormat {
	if len(p.Vertices) <= math.MaxUint16 {
		return gputypes.IndexFormatUint16
	}
	return gputypes.IndexFormatUint32
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpumesh moves built polygons onto the GPU.
//
// A [shapes.Poly] is encoded as an interleaved vertex buffer (see
// [VertexLayout]) and an index buffer drawn as a triangle list. [Upload]
// creates both buffers on a WGPU HAL device; [UploadFromProvider] does the
// same for a device shared through gpucontext.
//
// The package also ships the WGSL shader the layout was written for:
// [ShaderSource] maps a world-space view rectangle (see [EncodeView]) onto
// the target with +Y up, the same orientation the preview package draws
// with, and multiplies the vertex color with a texture sampled at the
// vertex UV.
package gpumesh

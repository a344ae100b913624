// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpumesh

import (
	_ "embed"
	"encoding/binary"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// ShaderSource is the WGSL source of the Poly shader. Entry points are
// vs_main and fs_main; bind group 0 holds the view uniform (binding 0, see
// EncodeView), the texture (binding 1) and its sampler (binding 2).
// World +Y points up on the target.
//
//go:embed shaders/poly.wgsl
var ShaderSource string

// CompileShader compiles ShaderSource to SPIR-V words.
func CompileShader() ([]uint32, error) {
	spirv, err := naga.Compile(ShaderSource)
	if err != nil {
		return nil, fmt.Errorf("gpumesh: compile shader: %w", err)
	}
	if len(spirv)%4 != 0 {
		return nil, fmt.Errorf("gpumesh: compile shader: SPIR-V length %d is not a multiple of 4", len(spirv))
	}
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirv[i*4:])
	}
	return words, nil
}

// NewShaderModule compiles ShaderSource and creates a shader module on
// device. The caller owns the module.
func NewShaderModule(device hal.Device) (hal.ShaderModule, error) {
	words, err := CompileShader()
	if err != nil {
		return nil, err
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "shapes_poly",
		Source: hal.ShaderSource{SPIRV: words},
	})
	if err != nil {
		return nil, fmt.Errorf("gpumesh: create shader module: %w", err)
	}
	return module, nil
}

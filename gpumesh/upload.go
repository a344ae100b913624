// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpumesh

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/shapes"
)

var (
	// ErrEmptyPoly is returned when uploading a Poly without triangles.
	ErrEmptyPoly = errors.New("gpumesh: poly has no triangles")

	// ErrNoHAL is returned when a device provider does not expose its HAL
	// device and queue.
	ErrNoHAL = errors.New("gpumesh: provider does not expose HAL types")
)

// Mesh is a Poly resident in GPU buffers.
type Mesh struct {
	Vertices    hal.Buffer
	Indices     hal.Buffer
	VertexCount uint32
	IndexCount  uint32
	IndexFormat gputypes.IndexFormat

	device hal.Device
}

// Upload creates vertex and index buffers for p on device and fills them
// through queue. Release them with Mesh.Destroy.
func Upload(device hal.Device, queue hal.Queue, p shapes.Poly) (*Mesh, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("gpumesh: nil device or queue")
	}
	if p.IsEmpty() {
		return nil, ErrEmptyPoly
	}

	format := IndexFormat(p)
	vertexData := EncodeVertices(p.Vertices)
	indexData := EncodeIndices(p.Indices, format)

	vb, err := createBuffer(device, queue, "shapes_vertices", vertexData,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, err
	}
	ib, err := createBuffer(device, queue, "shapes_indices", indexData,
		gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
	if err != nil {
		device.DestroyBuffer(vb)
		return nil, err
	}

	shapes.Logger().Info("gpumesh: uploaded",
		"vertices", len(p.Vertices), "indices", len(p.Indices),
		"bytes", len(vertexData)+len(indexData))
	return &Mesh{
		Vertices:    vb,
		Indices:     ib,
		VertexCount: uint32(len(p.Vertices)),
		IndexCount:  uint32(len(p.Indices)),
		IndexFormat: format,
		device:      device,
	}, nil
}

// UploadFromProvider is like Upload for a device shared through gpucontext.
// The provider must implement HalDevice() any and HalQueue() any returning
// hal.Device and hal.Queue.
func UploadFromProvider(provider gpucontext.DeviceProvider, p shapes.Poly) (*Mesh, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHAL)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHAL)
	}
	return Upload(device, queue, p)
}

func createBuffer(device hal.Device, queue hal.Queue, label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("gpumesh: create %s: %w", label, err)
	}
	queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// Destroy releases the GPU buffers. It is safe to call more than once.
func (m *Mesh) Destroy() {
	if m == nil || m.device == nil {
		return
	}
	if m.Indices != nil {
		m.device.DestroyBuffer(m.Indices)
		m.Indices = nil
	}
	if m.Vertices != nil {
		m.device.DestroyBuffer(m.Vertices)
		m.Vertices = nil
	}
}

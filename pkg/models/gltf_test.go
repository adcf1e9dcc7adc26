package models

import (
	"encoding/binary"
	"math"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
)

// writeGLB saves a one-mesh GLB with the given float positions and uint16
// indices.
func writeGLB(t *testing.T, positions [][3]float32, indices []uint16, baseColor *[4]float64) string {
	t.Helper()

	var data []byte
	for _, p := range positions {
		for _, v := range p {
			data = binary.LittleEndian.AppendUint32(data, math.Float32bits(v))
		}
	}
	posLen := len(data)
	for _, i := range indices {
		data = binary.LittleEndian.AppendUint16(data, i)
	}

	prim := &gltf.Primitive{
		Mode:       gltf.PrimitiveTriangles,
		Attributes: gltf.PrimitiveAttributes{gltf.POSITION: 0},
		Indices:    gltf.Index(1),
	}
	doc := &gltf.Document{
		Asset:   gltf.Asset{Version: "2.0"},
		Buffers: []*gltf.Buffer{{ByteLength: len(data), Data: data}},
		BufferViews: []*gltf.BufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: posLen},
			{Buffer: 0, ByteOffset: posLen, ByteLength: len(data) - posLen},
		},
		Accessors: []*gltf.Accessor{
			{BufferView: gltf.Index(0), ComponentType: gltf.ComponentFloat, Count: len(positions), Type: gltf.AccessorVec3},
			{BufferView: gltf.Index(1), ComponentType: gltf.ComponentUshort, Count: len(indices), Type: gltf.AccessorScalar},
		},
		Meshes: []*gltf.Mesh{{Name: "fixture", Primitives: []*gltf.Primitive{prim}}},
	}
	if baseColor != nil {
		doc.Materials = []*gltf.Material{{
			Name:                 "paint",
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{BaseColorFactor: baseColor},
		}}
		prim.Material = gltf.Index(0)
	}

	path := filepath.Join(t.TempDir(), "fixture.glb")
	if err := gltf.SaveBinary(doc, path); err != nil {
		t.Fatalf("SaveBinary: %v", err)
	}
	return path
}

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadGLB(t *testing.T) {
	positions := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	indices := []uint16{0, 1, 2, 0, 3, 1}
	path := writeGLB(t, positions, indices, nil)

	mesh, err := LoadGLB(path)
	if err != nil {
		t.Fatalf("LoadGLB: %v", err)
	}
	if mesh.Name != "fixture.glb" {
		t.Errorf("Name = %q", mesh.Name)
	}
	if mesh.VertexCount() != 4 || mesh.TriangleCount() != 2 {
		t.Fatalf("got %d vertices, %d faces", mesh.VertexCount(), mesh.TriangleCount())
	}
	if got := mesh.Faces[1].V; got != [3]int{0, 3, 1} {
		t.Errorf("face 1 = %v, want [0 3 1]", got)
	}
	if n := mesh.Faces[0].Normal; math.Abs(n.Z-1) > 1e-9 {
		t.Errorf("face 0 normal = %v, want +Z", n)
	}
	if mesh.Faces[0].HasColor {
		t.Error("face without material has a color")
	}
	if mesh.BoundsMax.X != 1 || mesh.BoundsMax.Y != 1 || mesh.BoundsMax.Z != 1 {
		t.Errorf("BoundsMax = %v", mesh.BoundsMax)
	}
}

func TestLoadGLBMaterialColor(t *testing.T) {
	positions := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	path := writeGLB(t, positions, []uint16{0, 1, 2}, &[4]float64{1, 0.5, 0, 1})

	mesh, err := LoadGLB(path)
	if err != nil {
		t.Fatalf("LoadGLB: %v", err)
	}
	f := mesh.Faces[0]
	if !f.HasColor || f.Color != 0xFF8000 {
		t.Errorf("face color = %#06x (has %v), want 0xff8000", f.Color, f.HasColor)
	}
}

func TestLoadGLBBadIndex(t *testing.T) {
	positions := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	path := writeGLB(t, positions, []uint16{0, 1, 7}, nil)
	if _, err := LoadGLB(path); err == nil {
		t.Error("out-of-range index accepted")
	}
}

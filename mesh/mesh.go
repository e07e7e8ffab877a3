// Package mesh builds the small indexed meshes drawn by the tutorials.
package mesh

import (
	"unsafe"

	m "github.com/go-gl/mathgl/mgl32"
)

// Vertex is the interleaved vertex layout: position, texture coordinate, normal.
type Vertex struct {
	Position m.Vec3
	TexCoord m.Vec2
	Normal   m.Vec3
}

// VertexBytes is the stride of Vertex.
const VertexBytes = int32(unsafe.Sizeof(Vertex{}))

// Attribute byte offsets inside Vertex.
const (
	PositionOffset = int(unsafe.Offsetof(Vertex{}.Position))
	TexCoordOffset = int(unsafe.Offsetof(Vertex{}.TexCoord))
	NormalOffset   = int(unsafe.Offsetof(Vertex{}.Normal))
)

// Data is an indexed triangle mesh.
type Data struct {
	Vertices []Vertex
	Indices  []uint16
}

// Vertex appends a vertex and returns its index.
func (mesh *Data) Vertex(position m.Vec3, uv m.Vec2) uint16 {
	p := len(mesh.Vertices)
	mesh.Vertices = append(mesh.Vertices, Vertex{Position: position, TexCoord: uv})
	return uint16(p)
}

// Triangle appends a counter-clockwise triangle.
func (mesh *Data) Triangle(a, b, c uint16) {
	mesh.Indices = append(mesh.Indices, a, b, c)
}

// ComputeNormals sets each vertex normal to the normalized sum of the face
// normals of the triangles using it.
func (mesh *Data) ComputeNormals() {
	for i := range mesh.Vertices {
		mesh.Vertices[i].Normal = m.Vec3{}
	}

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
		p0 := mesh.Vertices[a].Position
		v1 := mesh.Vertices[b].Position.Sub(p0)
		v2 := mesh.Vertices[c].Position.Sub(p0)
		normal := v1.Cross(v2)
		if normal.Len() == 0 {
			continue
		}
		normal = normal.Normalize()

		mesh.Vertices[a].Normal = mesh.Vertices[a].Normal.Add(normal)
		mesh.Vertices[b].Normal = mesh.Vertices[b].Normal.Add(normal)
		mesh.Vertices[c].Normal = mesh.Vertices[c].Normal.Add(normal)
	}

	for i := range mesh.Vertices {
		n := mesh.Vertices[i].Normal
		if n.Len() > 0 {
			mesh.Vertices[i].Normal = n.Normalize()
		}
	}
}

// Positions returns only the vertex positions, for position-only layouts.
func (mesh *Data) Positions() []m.Vec3 {
	positions := make([]m.Vec3, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = v.Position
	}
	return positions
}

// Point is a single vertex in the middle of the screen.
func Point() Data {
	mesh := Data{}
	mesh.Vertex(m.Vec3{0, 0, 0}, m.Vec2{0.5, 0.5})
	return mesh
}

// Triangle covers the lower half and the top center of clip space.
func Triangle() Data {
	mesh := Data{}
	a := mesh.Vertex(m.Vec3{-1, -1, 0}, m.Vec2{0, 0})
	b := mesh.Vertex(m.Vec3{1, -1, 0}, m.Vec2{1, 0})
	c := mesh.Vertex(m.Vec3{0, 1, 0}, m.Vec2{0.5, 1})
	mesh.Triangle(a, b, c)
	return mesh
}

// Pyramid is a triangular pyramid with its base at y = -1 and apex at y = 1.
func Pyramid() Data {
	mesh := Data{}
	v0 := mesh.Vertex(m.Vec3{-1, -1, 0.5773}, m.Vec2{0, 0})
	v1 := mesh.Vertex(m.Vec3{0, -1, -1.15475}, m.Vec2{0.5, 0})
	v2 := mesh.Vertex(m.Vec3{1, -1, 0.5773}, m.Vec2{1, 0})
	apex := mesh.Vertex(m.Vec3{0, 1, 0}, m.Vec2{0.5, 1})

	mesh.Triangle(v0, apex, v1)
	mesh.Triangle(v1, apex, v2)
	mesh.Triangle(v2, apex, v0)
	mesh.Triangle(v0, v1, v2)

	mesh.ComputeNormals()
	return mesh
}

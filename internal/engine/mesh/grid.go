// Package mesh builds and uploads triangle meshes.
package mesh

// Vertex is one interleaved vertex: position then texture coordinate.
type Vertex struct {
	Position [3]float32
	UV       [2]float32
}

// vertexFloats is the number of float32s per Vertex.
const vertexFloats = 5

// Grid is an indexed triangle grid.
type Grid struct {
	Vertices []Vertex
	Indices  []uint32

	SegmentsX int
	SegmentsY int
}

// PlaneGrid builds a flat width x height grid in the XY plane, centered on
// the origin, with segX x segY cells of two triangles each.
//
// Vertices are emitted row by row starting at the top edge. UV (0, 0) is the
// bottom-left corner and (1, 1) the top-right.
func PlaneGrid(width, height float32, segX, segY int) Grid {
	if segX < 1 {
		segX = 1
	}
	if segY < 1 {
		segY = 1
	}

	cols := segX + 1
	rows := segY + 1
	segW := width / float32(segX)
	segH := height / float32(segY)

	g := Grid{
		Vertices:  make([]Vertex, 0, cols*rows),
		Indices:   make([]uint32, 0, segX*segY*6),
		SegmentsX: segX,
		SegmentsY: segY,
	}

	for iy := 0; iy < rows; iy++ {
		y := float32(iy)*segH - height/2
		for ix := 0; ix < cols; ix++ {
			x := float32(ix)*segW - width/2
			g.Vertices = append(g.Vertices, Vertex{
				Position: [3]float32{x, -y, 0},
				UV:       [2]float32{float32(ix) / float32(segX), 1 - float32(iy)/float32(segY)},
			})
		}
	}

	for iy := 0; iy < segY; iy++ {
		for ix := 0; ix < segX; ix++ {
			a := uint32(ix + cols*iy)
			b := uint32(ix + cols*(iy+1))
			c := uint32(ix + 1 + cols*(iy+1))
			d := uint32(ix + 1 + cols*iy)
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}

	return g
}

// Interleaved flattens the vertices for upload.
func (g Grid) Interleaved() []float32 {
	out := make([]float32, 0, len(g.Vertices)*vertexFloats)
	for _, v := range g.Vertices {
		out = append(out, v.Position[0], v.Position[1], v.Position[2], v.UV[0], v.UV[1])
	}
	return out
}

package meshing

import "fmt"

// Layout dos vértices nas tabelas literais: posição (3) + normal (3) + UV (2).
const (
	FloatsPerPosition = 3
	FloatsPerNormal   = 3
	FloatsPerUV       = 2
	FloatsPerVertex   = FloatsPerPosition + FloatsPerNormal + FloatsPerUV
)

// GeometryData contém os buffers de vértices para uma malha, já separados por atributo.
type GeometryData struct {
	Vertices []float32
	Normals  []float32
	UVs      []float32
	Indices  []uint16
}

// VertexCount retorna o número de vértices da malha.
func (g GeometryData) VertexCount() int {
	return len(g.Vertices) / FloatsPerPosition
}

// TriangleCount retorna o número de triângulos indexados.
func (g GeometryData) TriangleCount() int {
	return len(g.Indices) / 3
}

// Validate confere se os buffers são coerentes entre si e se nenhum índice
// aponta para fora do buffer de vértices.
func (g GeometryData) Validate() error {
	n := g.VertexCount()
	if n == 0 {
		return fmt.Errorf("malha sem vértices")
	}
	if len(g.Vertices)%FloatsPerPosition != 0 {
		return fmt.Errorf("buffer de posições com %d floats (não múltiplo de %d)", len(g.Vertices), FloatsPerPosition)
	}
	if len(g.Normals) != n*FloatsPerNormal {
		return fmt.Errorf("normais: %d floats, esperado %d", len(g.Normals), n*FloatsPerNormal)
	}
	if len(g.UVs) != n*FloatsPerUV {
		return fmt.Errorf("UVs: %d floats, esperado %d", len(g.UVs), n*FloatsPerUV)
	}
	if len(g.Indices) == 0 || len(g.Indices)%3 != 0 {
		return fmt.Errorf("%d índices não formam uma lista de triângulos", len(g.Indices))
	}
	for i, idx := range g.Indices {
		if int(idx) >= n {
			return fmt.Errorf("índice %d (posição %d) fora do intervalo de %d vértices", idx, i, n)
		}
	}
	return nil
}

// MeshBuffer acumula vértices e índices durante a montagem de uma malha.
type MeshBuffer struct {
	Geometry GeometryData
}

// AddInterleaved adiciona vértices no formato posição/normal/UV intercalado.
func (b *MeshBuffer) AddInterleaved(data []float32) error {
	if len(data)%FloatsPerVertex != 0 {
		return fmt.Errorf("tabela intercalada com %d floats (não múltiplo de %d)", len(data), FloatsPerVertex)
	}
	for i := 0; i < len(data); i += FloatsPerVertex {
		v := data[i : i+FloatsPerVertex]
		b.Geometry.Vertices = append(b.Geometry.Vertices, v[0], v[1], v[2])
		b.Geometry.Normals = append(b.Geometry.Normals, v[3], v[4], v[5])
		b.Geometry.UVs = append(b.Geometry.UVs, v[6], v[7])
	}
	return nil
}

// AddVertex adiciona um único vértice.
func (b *MeshBuffer) AddVertex(pos, normal [3]float32, uv [2]float32) {
	b.Geometry.Vertices = append(b.Geometry.Vertices, pos[0], pos[1], pos[2])
	b.Geometry.Normals = append(b.Geometry.Normals, normal[0], normal[1], normal[2])
	b.Geometry.UVs = append(b.Geometry.UVs, uv[0], uv[1])
}

// AddIndices adiciona índices deslocados por base.
func (b *MeshBuffer) AddIndices(base uint16, indices ...uint16) {
	for _, idx := range indices {
		b.Geometry.Indices = append(b.Geometry.Indices, base+idx)
	}
}

// Cube gera um cubo centrado na origem com aresta size, uma face por normal.
func Cube(size float32) GeometryData {
	h := size / 2
	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var b MeshBuffer
	for i, f := range faces {
		for j, c := range f.corners {
			b.AddVertex(c, f.normal, uvs[j])
		}
		b.AddIndices(uint16(i*4), 0, 1, 2, 0, 2, 3)
	}
	return b.Geometry
}

package meshing

import "fmt"

// MeshID identifica uma das cinco malhas fixas da cena.
type MeshID int

const (
	Monument MeshID = iota
	Plane
	Building
	Columns
	Pool

	// Lamp é o cubo que marca a posição das luzes; fica fora da DrawOrder.
	Lamp
)

func (id MeshID) String() string {
	switch id {
	case Monument:
		return "monument"
	case Plane:
		return "plane"
	case Building:
		return "building"
	case Columns:
		return "columns"
	case Pool:
		return "pool"
	case Lamp:
		return "lamp"
	}
	return fmt.Sprintf("MeshID(%d)", int(id))
}

// DrawOrder é a sequência fixa em que as malhas são desenhadas a cada frame.
var DrawOrder = [...]MeshID{Monument, Plane, Building, Columns, Pool}

// Posição, normal e UV intercalados (8 floats por vértice).
var monumentVerts = []float32{
	2.5, 7.5, 0.0, 0, 0, 1, 1, 1,
	-2.5, 7.5, 0.0, 0, 0, 1, 1, 0,
	2.5, 12.5, 0.0, 0, 0, 1, 0, 0,
	-2.5, 12.5, 0.0, 0, 0, 1, 0, 1,
	2.0, 9.0, 10.0, 0, 0, 1, 1, 1,
	-2.0, 9.0, 10.0, 0, 0, 1, 1, 0,
	2.0, 11.0, 10.0, 0, 0, 1, 0, 0,
	-2.0, 11.0, 10.0, 0, 0, 1, 0, 1,
	0.0, 10.0, 12.0, 0, 0, 1, 0, 0,
}

var monumentIndices = []uint16{
	0, 1, 3,
	0, 1, 2,
	0, 1, 5,
	0, 4, 5,
	0, 4, 6,
	0, 2, 6,
	1, 5, 7,
	1, 3, 7,
	2, 3, 7,
	2, 6, 7,
	4, 6, 5,
	5, 6, 7,
	4, 8, 6,
	4, 8, 5,
	5, 8, 7,
	7, 8, 6,
}

var planeVerts = []float32{
	-15.0, 15.0, 0.0, 0, 0, -1, 1, 1,
	-15.0, -15.0, 0.0, 0, 0, -1, 1, 0,
	15.0, 15.0, 0.0, 0, 0, -1, 0, 0,
	15.0, -15.0, 0.0, 0, 0, -1, 0, 1,
}

var planeIndices = []uint16{
	0, 1, 2,
	1, 2, 3,
}

var buildingVerts = []float32{
	// base
	1.5, -11.0, 0.0, 0, 0, 1, 1, 1,
	1.5, -10.0, 0.0, 0, 0, 1, 1, 0,
	-1.5, -10.0, 0.0, 0, 0, 1, 0, 0,
	-1.5, -11.0, 0.0, 0, 0, 1, 0, 1,
	1.5, -11.0, 0.2, 0, 0, 1, 1, 1,
	1.5, -10.0, 0.2, 0, 0, 1, 1, 0,
	-1.5, -10.0, 0.2, 0, 0, 1, 0, 0,
	-1.5, -11.0, 0.2, 0, 0, 1, 0, 1,

	// topo
	1.5, -11.0, 2.0, 0, 0, 1, 1, 1,
	1.5, -10.0, 2.0, 0, 0, 1, 1, 0,
	-1.5, -10.0, 2.0, 0, 0, 1, 0, 0,
	-1.5, -11.0, 2.0, 0, 0, 1, 0, 1,
	1.5, -11.0, 2.2, 0, 0, 1, 1, 1,
	1.5, -10.0, 2.2, 0, 0, 1, 1, 0,
	-1.5, -10.0, 2.2, 0, 0, 1, 0, 0,
	-1.5, -11.0, 2.2, 0, 0, 1, 0, 1,

	// miolo
	0.7, -10.25, 0.2, 0, 0, 1, 1, 1,
	0.7, -10.75, 0.2, 0, 0, 1, 1, 0,
	-0.7, -10.25, 0.2, 0, 0, 1, 0, 0,
	-0.7, -10.75, 0.2, 0, 0, 1, 0, 1,
	0.7, -10.25, 2.0, 0, 0, 1, 1, 1,
	0.7, -10.75, 2.0, 0, 0, 1, 1, 0,
	-0.7, -10.25, 2.0, 0, 0, 1, 0, 0,
	-0.7, -10.75, 2.0, 0, 0, 1, 0, 1,
}

var buildingIndices = []uint16{
	0, 1, 2,
	0, 2, 3,
	2, 3, 6,
	3, 6, 7,
	1, 2, 6,
	1, 5, 6,
	0, 1, 5,
	0, 1, 4,
	0, 3, 7,
	0, 4, 7,
	4, 5, 6,
	4, 6, 7,
	8, 9, 13,
	8, 12, 13,
	8, 11, 15,
	8, 12, 15,
	11, 10, 14,
	11, 14, 15,
	9, 10, 14,
	9, 13, 14,
	12, 14, 15,
	12, 13, 14,
	17, 18, 19,
	16, 18, 17,
	17, 19, 23,
	17, 21, 23,
	18, 22, 23,
	18, 19, 23,
	16, 18, 22,
	16, 20, 22,
	16, 17, 20,
	17, 20, 21,
}

var poolVerts = []float32{
	// espelho d'água
	2.25, 5.25, 0.0, 0, 0, -1, 1, 1,
	-2.25, 5.25, 0.0, 0, 0, -1, 1, 0,
	-2.25, -7.25, 0.0, 0, 0, -1, 0, 0,
	2.25, -7.25, 0.0, 0, 0, -1, 0, 1,
	2.25, 5.25, 0.25, 0, 0, -1, 1, 1,
	-2.25, 5.25, 0.25, 0, 0, -1, 1, 0,
	-2.25, -7.25, 0.25, 0, 0, -1, 0, 0,
	2.25, -7.25, 0.25, 0, 0, -1, 0, 1,

	// borda
	2.5, 5.5, 0.0, 0, 0, 1, 1, 1,
	-2.5, 5.5, 0.0, 0, 0, 1, 1, 0,
	-2.5, -8.0, 0.0, 0, 0, 1, 0, 0,
	2.5, -8.0, 0.0, 0, 0, 1, 0, 1,
	2.5, 5.5, 0.25, 0, 0, 1, 1, 1,
	-2.5, 5.5, 0.25, 0, 0, 1, 1, 0,
	-2.5, -8.0, 0.25, 0, 0, 1, 0, 0,
	2.5, -8.0, 0.25, 0, 0, 1, 0, 1,
}

var poolIndices = []uint16{
	1, 0, 3,
	1, 2, 3,
	1, 0, 4,
	1, 5, 4,
	1, 2, 6,
	1, 5, 6,
	2, 6, 7,
	2, 3, 7,
	0, 3, 7,
	0, 4, 7,
	5, 4, 6,
	4, 6, 7,
	5, 13, 12,
	5, 4, 12,
	4, 12, 15,
	7, 4, 15,
	6, 14, 15,
	6, 7, 15,
	14, 6, 13,
	13, 5, 6,
	9, 10, 14,
	9, 13, 14,
	10, 11, 14,
	11, 14, 15,
	8, 11, 15,
	8, 12, 15,
	8, 9, 13,
	8, 13, 12,
}

// Colunata: duas fileiras de oito colunas de 0.2 x 0.2, da base ao topo do prédio.
const (
	columnsPerRow = 8
	columnSpacing = 0.4
	columnWidth   = 0.2
	columnStartX  = -1.5
	columnBottom  = 0.2
	columnTop     = 2.0
)

var columnRows = [...]float32{-11.0, -10.2}

// Índices de uma coluna, relativos ao primeiro de seus 8 vértices.
var columnFace = []uint16{
	0, 1, 5,
	0, 4, 5,
	1, 3, 7,
	1, 5, 7,
	3, 2, 6,
	3, 6, 7,
	0, 4, 6,
	0, 2, 6,
}

var columnUVs = [...][2]float32{{1, 1}, {1, 0}, {0, 0}, {0, 1}}

func buildColumns() GeometryData {
	var b MeshBuffer
	up := [3]float32{0, 0, 1}
	var base uint16
	for _, y0 := range columnRows {
		y1 := y0 + columnWidth
		for i := 0; i < columnsPerRow; i++ {
			x0 := float32(columnStartX + columnSpacing*float64(i))
			x1 := x0 + columnWidth
			for _, z := range [...]float32{columnBottom, columnTop} {
				b.AddVertex([3]float32{x0, y0, z}, up, columnUVs[0])
				b.AddVertex([3]float32{x0, y1, z}, up, columnUVs[1])
				b.AddVertex([3]float32{x1, y0, z}, up, columnUVs[2])
				b.AddVertex([3]float32{x1, y1, z}, up, columnUVs[3])
			}
			b.AddIndices(base, columnFace...)
			base += 8
		}
	}
	return b.Geometry
}

func fromTables(verts []float32, indices []uint16) GeometryData {
	var b MeshBuffer
	if err := b.AddInterleaved(verts); err != nil {
		panic(err)
	}
	b.AddIndices(0, indices...)
	return b.Geometry
}

// Scene monta a geometria das cinco malhas. Cada chamada devolve cópias novas,
// então o chamador pode manter os buffers vivos enquanto estiverem na GPU.
func Scene() map[MeshID]GeometryData {
	return map[MeshID]GeometryData{
		Monument: fromTables(monumentVerts, monumentIndices),
		Plane:    fromTables(planeVerts, planeIndices),
		Building: fromTables(buildingVerts, buildingIndices),
		Columns:  buildColumns(),
		Pool:     fromTables(poolVerts, poolIndices),
	}
}

package render

import (
	"fmt"
	"log"
	"math"

	"MemorialVision/visualizador/internal/meshing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mesh é uma malha na GPU: um vertex array com buffers de posição, normal e UV
// e um buffer de índices de 16 bits.
type Mesh struct {
	ID         meshing.MeshID
	IndexCount int32
	RL         rl.Mesh

	// Os buffers em Go ficam vivos enquanto a malha existir: o raylib guarda os ponteiros.
	geometry meshing.GeometryData
}

// uploadGeometry valida a geometria e envia para a GPU.
func uploadGeometry(b Backend, id meshing.MeshID, g meshing.GeometryData) (*Mesh, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("malha %s: %w", id, err)
	}
	if g.VertexCount() > math.MaxUint16+1 {
		return nil, fmt.Errorf("malha %s: %d vértices não cabem em índices de 16 bits", id, g.VertexCount())
	}

	m := &Mesh{
		ID:         id,
		IndexCount: int32(len(g.Indices)),
		geometry:   g,
	}
	m.RL = rl.Mesh{
		VertexCount:   int32(g.VertexCount()),
		TriangleCount: int32(g.TriangleCount()),
		Vertices:      &m.geometry.Vertices[0],
		Normals:       &m.geometry.Normals[0],
		Texcoords:     &m.geometry.UVs[0],
		Indices:       &m.geometry.Indices[0],
	}
	b.UploadMesh(&m.RL)
	return m, nil
}

// CreateMeshes envia todas as malhas da cena num único lote. Se alguma falhar,
// as já enviadas são liberadas.
func CreateMeshes(b Backend, scene map[meshing.MeshID]meshing.GeometryData) (map[meshing.MeshID]*Mesh, error) {
	meshes := make(map[meshing.MeshID]*Mesh, len(scene))
	for _, id := range meshing.DrawOrder {
		g, ok := scene[id]
		if !ok {
			DestroyMeshes(b, meshes)
			return nil, fmt.Errorf("malha %s ausente da cena", id)
		}
		m, err := uploadGeometry(b, id, g)
		if err != nil {
			DestroyMeshes(b, meshes)
			return nil, err
		}
		meshes[id] = m
	}
	log.Printf("[Renderer] %d malhas enviadas à GPU", len(meshes))
	return meshes, nil
}

// DestroyMeshes libera todas as malhas de uma vez e esvazia o mapa.
func DestroyMeshes(b Backend, meshes map[meshing.MeshID]*Mesh) {
	for id, m := range meshes {
		destroyMesh(b, m)
		delete(meshes, id)
	}
}

func destroyMesh(b Backend, m *Mesh) {
	if m == nil {
		return
	}
	b.UnloadMesh(&m.RL)
	m.RL = rl.Mesh{}
	m.geometry = meshing.GeometryData{}
}

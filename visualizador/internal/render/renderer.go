package render

import (
	"fmt"
	"log"

	"MemorialVision/shared/config"
	"MemorialVision/visualizador/internal/lighting"
	"MemorialVision/visualizador/internal/meshing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Aresta do cubo desenhado em cada luz quando ShowLamps está ligado.
const lampSize = 0.5

// FrameState é tudo o que o renderizador precisa para desenhar um frame.
type FrameState struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4

	ViewPosition mgl32.Vec3
	Lights       lighting.Rig
	Material     lighting.Material

	ShowLamps bool
}

// Renderer é dono de todos os recursos de GPU da cena.
type Renderer struct {
	backend Backend

	Sun      *Program
	Lamp     *Program
	Textures *TextureSet
	Meshes   map[meshing.MeshID]*Mesh
	LampCube *Mesh
}

// NewRenderer cria malhas, programas e texturas, nessa ordem. A primeira falha
// libera o que já foi criado e é devolvida ao chamador.
func NewRenderer(b Backend, textures config.TexturePaths) (*Renderer, error) {
	r := &Renderer{backend: b}

	var err error
	if r.Meshes, err = CreateMeshes(b, meshing.Scene()); err != nil {
		return nil, err
	}
	if r.LampCube, err = uploadGeometry(b, meshing.Lamp, meshing.Cube(lampSize)); err != nil {
		r.Close()
		return nil, err
	}
	if r.Sun, err = CreateProgram(b, "sun", sunVertexShader, sunFragmentShader); err != nil {
		r.Close()
		return nil, err
	}
	if r.Lamp, err = CreateProgram(b, "lamp", lampVertexShader, lampFragmentShader); err != nil {
		r.Close()
		return nil, err
	}
	if r.Textures, err = LoadTextureSet(b, textures); err != nil {
		r.Close()
		return nil, err
	}

	// Liga o sampler ao slot difuso antes do primeiro draw.
	r.Sun.Loc(samplerUniform)

	log.Printf("[Renderer] Cena pronta: %d malhas, %d texturas", len(r.Meshes), len(r.Textures.All()))
	return r, nil
}

// TextureFor retorna a textura associada a cada malha da cena.
func (r *Renderer) TextureFor(id meshing.MeshID) (*Texture, error) {
	var t *Texture
	switch id {
	case meshing.Monument:
		t = r.Textures.Monument
	case meshing.Plane:
		t = r.Textures.Grass
	case meshing.Building, meshing.Columns:
		t = r.Textures.Marble
	case meshing.Pool:
		t = r.Textures.Water
	}
	if t == nil {
		return nil, fmt.Errorf("sem textura para a malha %s", id)
	}
	return t, nil
}

// DrawFrame envia os uniforms e desenha as malhas na ordem fixa.
// Deve ser chamado entre BeginDrawing e EndDrawing.
func (r *Renderer) DrawFrame(f FrameState) {
	r.backend.PrepareFrame()

	sun := r.Sun
	sun.SetMat4("model", f.Model)
	sun.SetMat4("view", f.View)
	sun.SetMat4("projection", f.Projection)
	sun.SetVec2("uvScale", f.Material.UVScale)

	sun.SetVec3("lightColor1", f.Lights.Key.Color)
	sun.SetVec3("lightColor2", f.Lights.Fill.Color)
	sun.SetVec3("lightPos1", f.Lights.Key.Position)
	sun.SetVec3("lightPos2", f.Lights.Fill.Position)
	sun.SetFloat("light_1_strength", f.Lights.Key.Strength)
	sun.SetFloat("light_2_strength", f.Lights.Fill.Strength)
	sun.SetVec3("ambientStrength", f.Material.AmbientStrength)
	sun.SetVec3("diffuseStrength", f.Material.DiffuseStrength)
	sun.SetFloat("specularIntensity", f.Material.SpecularIntensity)
	sun.SetVec3("viewPosition", f.ViewPosition)

	// Cada malha usa uma única textura.
	sun.SetBool("multipleTextures", false)

	for _, id := range meshing.DrawOrder {
		m, ok := r.Meshes[id]
		if !ok {
			continue
		}
		tex, err := r.TextureFor(id)
		if err != nil {
			continue
		}
		r.backend.DrawMesh(m.RL, sun.Shader, tex.Texture2D)
	}

	if f.ShowLamps {
		r.drawLamps(f)
	}
}

func (r *Renderer) drawLamps(f FrameState) {
	lamp := r.Lamp
	lamp.SetMat4("view", f.View)
	lamp.SetMat4("projection", f.Projection)
	for _, l := range []lighting.PointLight{f.Lights.Key, f.Lights.Fill} {
		lamp.SetMat4("model", mgl32.Translate3D(l.Position.X(), l.Position.Y(), l.Position.Z()))
		r.backend.DrawMesh(r.LampCube.RL, lamp.Shader, rl.Texture2D{})
	}
}

// Close libera todos os recursos. Pode ser chamado com o Renderer parcialmente criado.
func (r *Renderer) Close() {
	if r.Meshes != nil {
		DestroyMeshes(r.backend, r.Meshes)
		r.Meshes = nil
	}
	destroyMesh(r.backend, r.LampCube)
	r.LampCube = nil
	DestroyProgram(r.Sun)
	DestroyProgram(r.Lamp)
	r.Sun, r.Lamp = nil, nil
	r.Textures.Unload()
	r.Textures = nil
	r.backend.Close()
	log.Printf("[Renderer] Recursos de GPU liberados")
}

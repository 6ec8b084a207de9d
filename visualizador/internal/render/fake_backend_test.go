package render

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type drawCall struct {
	vao    uint32
	shader uint32
	tex    uint32

	culling bool
}

// fakeBackend registra as chamadas de GPU sem precisar de janela.
type fakeBackend struct {
	nextID uint32

	// loadShader substitui o comportamento padrão (sempre compila) quando definido.
	loadShader func(vs, fs string) (rl.Shader, []string)
	// images mapeia caminho -> formato; caminhos ausentes falham na decodificação.
	images map[string]rl.PixelFormat

	shaders  map[uint32]bool
	textures map[uint32]bool
	meshes   map[uint32]bool

	locNames map[int32]string
	uniforms map[string][]float32
	matrices map[string]rl.Matrix
	draws    []drawCall

	// Estado de rasterização como o raylib deixa após InitWindow.
	depthTest bool
	culling   bool
	prepared  int

	imagesLoaded   int
	imagesUnloaded int
	closed         bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		images:   make(map[string]rl.PixelFormat),
		shaders:  make(map[uint32]bool),
		textures: make(map[uint32]bool),
		meshes:   make(map[uint32]bool),
		locNames: make(map[int32]string),
		uniforms: make(map[string][]float32),
		matrices: make(map[string]rl.Matrix),
		culling:  true,
	}
}

func (f *fakeBackend) id() uint32 {
	f.nextID++
	return f.nextID
}

func (f *fakeBackend) LoadShader(vs, fs string) (rl.Shader, []string) {
	if f.loadShader != nil {
		s, msgs := f.loadShader(vs, fs)
		if s.ID != 0 {
			f.shaders[s.ID] = true
		}
		return s, msgs
	}
	s := rl.Shader{ID: f.id()}
	f.shaders[s.ID] = true
	return s, nil
}

func (f *fakeBackend) UnloadShader(shader rl.Shader) { delete(f.shaders, shader.ID) }

func (f *fakeBackend) ShaderLocation(shader rl.Shader, name string) int32 {
	loc := int32(len(f.locNames))
	f.locNames[loc] = name
	return loc
}

func (f *fakeBackend) SetUniform(shader rl.Shader, loc int32, value []float32, typ rl.ShaderUniformDataType) {
	f.uniforms[f.locNames[loc]] = append([]float32(nil), value...)
}

func (f *fakeBackend) SetUniformMatrix(shader rl.Shader, loc int32, m rl.Matrix) {
	f.matrices[f.locNames[loc]] = m
}

func (f *fakeBackend) LoadImage(path string) *rl.Image {
	format, ok := f.images[path]
	if !ok {
		return &rl.Image{}
	}
	f.imagesLoaded++
	return &rl.Image{Data: unsafe.Pointer(new(byte)), Width: 4, Height: 4, Mipmaps: 1, Format: format}
}

func (f *fakeBackend) UnloadImage(img *rl.Image) { f.imagesUnloaded++ }

func (f *fakeBackend) UploadTexture(img *rl.Image) rl.Texture2D {
	tex := rl.Texture2D{ID: f.id(), Width: img.Width, Height: img.Height, Mipmaps: 3, Format: img.Format}
	f.textures[tex.ID] = true
	return tex
}

func (f *fakeBackend) UnloadTexture(tex rl.Texture2D) { delete(f.textures, tex.ID) }

func (f *fakeBackend) PrepareFrame() {
	f.depthTest = true
	f.culling = false
	f.prepared++
}

func (f *fakeBackend) UploadMesh(mesh *rl.Mesh) {
	mesh.VaoID = f.id()
	f.meshes[mesh.VaoID] = true
}

func (f *fakeBackend) UnloadMesh(mesh *rl.Mesh) { delete(f.meshes, mesh.VaoID) }

func (f *fakeBackend) DrawMesh(mesh rl.Mesh, shader rl.Shader, tex rl.Texture2D) {
	f.draws = append(f.draws, drawCall{vao: mesh.VaoID, shader: shader.ID, tex: tex.ID, culling: f.culling})
}

func (f *fakeBackend) Close() { f.closed = true }

// live retorna quantos recursos ainda estão na "GPU".
func (f *fakeBackend) live() int {
	return len(f.shaders) + len(f.textures) + len(f.meshes)
}

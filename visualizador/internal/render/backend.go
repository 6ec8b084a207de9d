package render

import (
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Backend isola as chamadas de GPU usadas pelo renderizador.
// A implementação padrão usa o raylib; os testes usam uma versão falsa.
type Backend interface {
	// LoadShader compila e liga um programa. Em caso de falha retorna um Shader
	// com ID 0 e/ou mensagens de diagnóstico do driver.
	LoadShader(vs, fs string) (rl.Shader, []string)
	UnloadShader(shader rl.Shader)
	ShaderLocation(shader rl.Shader, name string) int32
	SetUniform(shader rl.Shader, loc int32, value []float32, typ rl.ShaderUniformDataType)
	SetUniformMatrix(shader rl.Shader, loc int32, m rl.Matrix)

	// LoadImage decodifica o arquivo já invertido verticalmente. Data == nil indica falha.
	LoadImage(path string) *rl.Image
	UnloadImage(img *rl.Image)
	UploadTexture(img *rl.Image) rl.Texture2D
	UnloadTexture(tex rl.Texture2D)

	// PrepareFrame liga o teste de profundidade e desliga o descarte de faces:
	// as tabelas da cena não têm winding consistente e o modelo é espelhado.
	PrepareFrame()

	UploadMesh(mesh *rl.Mesh)
	UnloadMesh(mesh *rl.Mesh)
	DrawMesh(mesh rl.Mesh, shader rl.Shader, tex rl.Texture2D)

	Close()
}

// RaylibBackend é o Backend real. Mantém um material por programa, usado só
// para passar shader e textura ao DrawMesh do raylib.
type RaylibBackend struct {
	materials map[uint32]rl.Material
}

// NewRaylibBackend exige uma janela já criada.
func NewRaylibBackend() *RaylibBackend {
	return &RaylibBackend{materials: make(map[uint32]rl.Material)}
}

func (b *RaylibBackend) LoadShader(vs, fs string) (rl.Shader, []string) {
	var shader rl.Shader
	msgs := trace.collect(func() {
		shader = rl.LoadShaderFromMemory(vs, fs)
	})
	// Em falha total o raylib devolve o shader padrão, que não é nosso para descarregar.
	if shader.ID == rl.GetShaderIdDefault() || !rl.IsShaderValid(shader) {
		return rl.Shader{}, msgs
	}
	return shader, msgs
}

func (b *RaylibBackend) UnloadShader(shader rl.Shader) {
	if m, ok := b.materials[shader.ID]; ok {
		releaseMaterial(m)
		delete(b.materials, shader.ID)
	}
	rl.UnloadShader(shader)
}

func (b *RaylibBackend) ShaderLocation(shader rl.Shader, name string) int32 {
	loc := rl.GetShaderLocation(shader, name)
	// O sampler principal precisa estar no slot de textura difusa para o DrawMesh ligá-lo.
	if name == samplerUniform && loc >= 0 {
		locs := unsafe.Slice(shader.Locs, 32)
		locs[rl.ShaderLocMapDiffuse] = loc
	}
	return loc
}

func (b *RaylibBackend) SetUniform(shader rl.Shader, loc int32, value []float32, typ rl.ShaderUniformDataType) {
	rl.SetShaderValue(shader, loc, value, typ)
}

func (b *RaylibBackend) SetUniformMatrix(shader rl.Shader, loc int32, m rl.Matrix) {
	rl.SetShaderValueMatrix(shader, loc, m)
}

func (b *RaylibBackend) LoadImage(path string) *rl.Image {
	img := rl.LoadImage(path)
	if img == nil || !rl.IsImageValid(img) {
		return &rl.Image{}
	}
	rl.ImageFlipVertical(img)
	return img
}

func (b *RaylibBackend) UnloadImage(img *rl.Image) {
	if img != nil && img.Data != nil {
		rl.UnloadImage(img)
	}
}

func (b *RaylibBackend) UploadTexture(img *rl.Image) rl.Texture2D {
	tex := rl.LoadTextureFromImage(img)
	if tex.ID == 0 {
		return tex
	}
	rl.GenTextureMipmaps(&tex)
	rl.SetTextureWrap(tex, rl.WrapMirrorRepeat)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	return tex
}

func (b *RaylibBackend) UnloadTexture(tex rl.Texture2D) {
	rl.UnloadTexture(tex)
}

func (b *RaylibBackend) PrepareFrame() {
	rl.EnableDepthTest()
	rl.DisableBackfaceCulling()
}

func (b *RaylibBackend) UploadMesh(mesh *rl.Mesh) {
	rl.UploadMesh(mesh, false)
}

func (b *RaylibBackend) UnloadMesh(mesh *rl.Mesh) {
	rl.UnloadMesh(mesh)
}

func (b *RaylibBackend) DrawMesh(mesh rl.Mesh, shader rl.Shader, tex rl.Texture2D) {
	mat, ok := b.materials[shader.ID]
	if !ok {
		mat = rl.LoadMaterialDefault()
		mat.Shader = shader
		b.materials[shader.ID] = mat
	}
	rl.SetMaterialTexture(&mat, rl.MapDiffuse, tex)
	// As matrizes vão pelos uniforms próprios (model/view/projection); a transformação aqui é neutra.
	rl.DrawMesh(mesh, mat, rl.MatrixIdentity())
}

// Close libera os materiais sem descarregar shaders e texturas, que têm dono próprio.
func (b *RaylibBackend) Close() {
	for id, m := range b.materials {
		releaseMaterial(m)
		delete(b.materials, id)
	}
}

// releaseMaterial troca shader e textura pelos padrões antes do UnloadMaterial,
// que do contrário descarregaria recursos que pertencem ao Renderer.
func releaseMaterial(m rl.Material) {
	m.Shader = rl.Shader{ID: rl.GetShaderIdDefault()}
	rl.SetMaterialTexture(&m, rl.MapDiffuse, rl.Texture2D{ID: rl.GetTextureIdDefault()})
	rl.UnloadMaterial(m)
}

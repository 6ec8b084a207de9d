package render

import (
	"log"
	"math"

	"MemorialVision/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Program é um programa de shader compilado com cache de localização de uniforms.
type Program struct {
	Name   string
	Shader rl.Shader

	backend Backend
	locs    map[string]int32
}

// CreateProgram compila e liga vs+fs. A primeira falha aborta e nenhum
// programa utilizável é devolvido.
func CreateProgram(b Backend, name, vs, fs string) (*Program, error) {
	shader, msgs := b.LoadShader(vs, fs)

	if stage, diag, failed := classify(msgs); failed {
		if shader.ID != 0 {
			b.UnloadShader(shader)
		}
		return nil, &ShaderError{Program: name, Stage: stage, Log: diag}
	}
	if shader.ID == 0 {
		diag := "programa inválido"
		if len(msgs) > 0 {
			diag = msgs[len(msgs)-1]
		}
		return nil, &ShaderError{Program: name, Stage: StageLink, Log: diag}
	}

	log.Printf("[Renderer] Programa %q criado (ID %d)", name, shader.ID)
	return &Program{
		Name:    name,
		Shader:  shader,
		backend: b,
		locs:    make(map[string]int32),
	}, nil
}

// DestroyProgram libera o programa. Chamadas repetidas são ignoradas.
func DestroyProgram(p *Program) {
	if p == nil || p.Shader.ID == 0 {
		return
	}
	p.backend.UnloadShader(p.Shader)
	p.Shader = rl.Shader{}
	p.locs = nil
}

// Loc retorna a localização do uniform, -1 se não existir no programa.
func (p *Program) Loc(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc := p.backend.ShaderLocation(p.Shader, name)
	p.locs[name] = loc
	return loc
}

// SetFloat e os demais setters aceitam loc -1 (uniform inexistente); o driver ignora o envio.
func (p *Program) SetFloat(name string, v float32) {
	p.backend.SetUniform(p.Shader, p.Loc(name), []float32{v}, rl.ShaderUniformFloat)
}

// SetBool envia um bool como int; SetShaderValue repassa os bits do float sem conversão.
func (p *Program) SetBool(name string, v bool) {
	var bits uint32
	if v {
		bits = 1
	}
	p.backend.SetUniform(p.Shader, p.Loc(name), []float32{math.Float32frombits(bits)}, rl.ShaderUniformInt)
}

func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	p.backend.SetUniform(p.Shader, p.Loc(name), []float32{v[0], v[1]}, rl.ShaderUniformVec2)
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	p.backend.SetUniform(p.Shader, p.Loc(name), []float32{v[0], v[1], v[2]}, rl.ShaderUniformVec3)
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	p.backend.SetUniformMatrix(p.Shader, p.Loc(name), util.MatToRL(m))
}

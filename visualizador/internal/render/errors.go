package render

import (
	"errors"
	"fmt"
)

// Erros de inicialização. Todos são fatais: o chamador aborta a execução.
var (
	ErrWindowInit          = errors.New("falha ao criar janela/contexto OpenGL")
	ErrShaderCompile       = errors.New("falha ao compilar shader")
	ErrShaderLink          = errors.New("falha ao ligar programa de shader")
	ErrTextureDecode       = errors.New("falha ao decodificar textura")
	ErrUnsupportedChannels = errors.New("número de canais da textura não suportado")
)

// Stage indica em que etapa a criação de um programa falhou.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
	StageLink
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageLink:
		return "link"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// ShaderError descreve a primeira falha ao criar um programa, com o diagnóstico do driver.
type ShaderError struct {
	Program string
	Stage   Stage
	Log     string
}

func (e *ShaderError) Error() string {
	if e.Stage == StageLink {
		return fmt.Sprintf("programa %q: falha ao ligar: %s", e.Program, e.Log)
	}
	return fmt.Sprintf("programa %q: falha ao compilar shader %s: %s", e.Program, e.Stage, e.Log)
}

// Unwrap permite errors.Is(err, ErrShaderCompile) / errors.Is(err, ErrShaderLink).
func (e *ShaderError) Unwrap() error {
	if e.Stage == StageLink {
		return ErrShaderLink
	}
	return ErrShaderCompile
}

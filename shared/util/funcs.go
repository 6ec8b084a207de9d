package util

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Clamp limita v ao intervalo [min, max].
func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// RadiusXZ retorna a distância de um ponto ao eixo Y (raio da órbita horizontal).
func RadiusXZ(v mgl32.Vec3) float32 {
	return math32.Hypot(v.X(), v.Z())
}

// MatToRL converte uma matriz mgl32 (column-major) para rl.Matrix.
// NewMatrix recebe os valores linha a linha, e m[col*4+lin] em mgl32 é o elemento
// (lin, col). O resultado guarda M0..M15 na mesma ordem column-major de m.
func MatToRL(m mgl32.Mat4) rl.Matrix {
	return rl.NewMatrix(
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	)
}

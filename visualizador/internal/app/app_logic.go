package app

import (
	"MemorialVision/visualizador/internal/render"

	"github.com/go-gl/mathgl/mgl32"
)

// modelMatrix orienta a cena estática: translação nula, 90° em X, 45° em Z
// e espelhamento nos três eixos.
var modelMatrix = mgl32.Translate3D(0, 0, 0).
	Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(90))).
	Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(45))).
	Mul4(mgl32.Scale3D(-1, -1, -1))

// updateLights avança a órbita da luz principal.
func (a *App) updateLights(dt float32) {
	a.Lights.Update(dt, a.Config.OrbitDegreesPerS)
}

// projectionSize é o tamanho usado no aspecto e na extensão ortográfica.
// Sem AspectFollowsWindow, o tamanho configurado vale mesmo após um resize.
func (a *App) projectionSize(screenW, screenH int) (float32, float32) {
	if a.Config.AspectFollowsWindow && screenW > 0 && screenH > 0 {
		return float32(screenW), float32(screenH)
	}
	return float32(a.Config.WindowWidth), float32(a.Config.WindowHeight)
}

// frameState monta as matrizes e os parâmetros de luz do frame atual.
func (a *App) frameState(screenW, screenH int) render.FrameState {
	w, h := a.projectionSize(screenW, screenH)
	return render.FrameState{
		Model:        modelMatrix,
		View:         a.Cam.ViewMatrix(),
		Projection:   a.Cam.Projection(w, h),
		ViewPosition: a.Cam.Position,
		Lights:       a.Lights,
		Material:     a.Material,
		ShowLamps:    a.Config.ShowLamps,
	}
}

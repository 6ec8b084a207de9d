package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza um frame. EndDrawing troca os buffers e coleta a entrada.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	a.renderer.DrawFrame(a.frameState(rl.GetScreenWidth(), rl.GetScreenHeight()))

	rl.EndDrawing()
}

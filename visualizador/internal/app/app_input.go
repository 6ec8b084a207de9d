package app

import (
	"log"

	"MemorialVision/visualizador/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input é a fatia da entrada do raylib que a aplicação consome.
type Input interface {
	KeyDown(key int32) bool
	KeyPressed(key int32) bool
	MouseDelta() rl.Vector2
	WheelMove() float32
	ButtonPressed(button rl.MouseButton) bool
	ButtonReleased(button rl.MouseButton) bool
}

type raylibInput struct{}

func (raylibInput) KeyDown(key int32) bool                    { return rl.IsKeyDown(key) }
func (raylibInput) KeyPressed(key int32) bool                 { return rl.IsKeyPressed(key) }
func (raylibInput) MouseDelta() rl.Vector2                    { return rl.GetMouseDelta() }
func (raylibInput) WheelMove() float32                        { return rl.GetMouseWheelMove() }
func (raylibInput) ButtonPressed(button rl.MouseButton) bool  { return rl.IsMouseButtonPressed(button) }
func (raylibInput) ButtonReleased(button rl.MouseButton) bool { return rl.IsMouseButtonReleased(button) }

// Teclas de movimento da câmera.
var moveKeys = []struct {
	key int32
	dir camera.Direction
}{
	{rl.KeyW, camera.Forward},
	{rl.KeyS, camera.Backward},
	{rl.KeyA, camera.Left},
	{rl.KeyD, camera.Right},
	{rl.KeyQ, camera.Down},
	{rl.KeyE, camera.Up},
}

// handleInput aplica teclado e mouse à câmera e às luzes. Escape é tratado
// pelo próprio raylib (tecla de saída).
func (a *App) handleInput(in Input, dt float32) {
	for _, mk := range moveKeys {
		if in.KeyDown(mk.key) {
			a.Cam.ProcessKeyboard(mk.dir, dt)
		}
	}

	// Alternar projeção com P
	if in.KeyPressed(rl.KeyP) {
		log.Printf("[Camera] Modo %s", a.Cam.Toggle())
	}

	// L liga, K desliga a órbita da luz principal
	if in.KeyDown(rl.KeyL) && !a.Lights.Orbiting {
		a.Lights.Orbiting = true
		log.Println("[App] Órbita da luz ligada")
	} else if in.KeyDown(rl.KeyK) && a.Lights.Orbiting {
		a.Lights.Orbiting = false
		log.Println("[App] Órbita da luz desligada")
	}

	// Y da tela cresce para baixo; o pitch cresce para cima.
	if d := in.MouseDelta(); a.firstMouse {
		a.firstMouse = false
	} else if d.X != 0 || d.Y != 0 {
		a.Cam.ProcessMouseMovement(d.X, -d.Y)
	}
	if wheel := in.WheelMove(); wheel != 0 {
		a.Cam.ProcessMouseScroll(wheel)
	}

	for _, b := range []rl.MouseButton{rl.MouseButtonLeft, rl.MouseButtonMiddle, rl.MouseButtonRight} {
		if in.ButtonPressed(b) {
			logMouseButton(b, "pressionado")
		}
		if in.ButtonReleased(b) {
			logMouseButton(b, "solto")
		}
	}
}

func logMouseButton(b rl.MouseButton, action string) {
	switch b {
	case rl.MouseButtonLeft:
		log.Printf("[App] Botão esquerdo %s", action)
	case rl.MouseButtonMiddle:
		log.Printf("[App] Botão do meio %s", action)
	case rl.MouseButtonRight:
		log.Printf("[App] Botão direito %s", action)
	}
}

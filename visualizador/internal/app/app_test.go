package app

import (
	"math"
	"testing"

	"MemorialVision/shared/config"
	"MemorialVision/shared/util"
	"MemorialVision/visualizador/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

// fakeInput simula um frame de entrada.
type fakeInput struct {
	down     map[int32]bool
	pressed  map[int32]bool
	delta    rl.Vector2
	wheel    float32
	buttons  map[rl.MouseButton]bool
	released map[rl.MouseButton]bool
}

func (f fakeInput) KeyDown(key int32) bool                    { return f.down[key] }
func (f fakeInput) KeyPressed(key int32) bool                 { return f.pressed[key] }
func (f fakeInput) MouseDelta() rl.Vector2                    { return f.delta }
func (f fakeInput) WheelMove() float32                        { return f.wheel }
func (f fakeInput) ButtonPressed(button rl.MouseButton) bool  { return f.buttons[button] }
func (f fakeInput) ButtonReleased(button rl.MouseButton) bool { return f.released[button] }

func TestNewUsesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CameraSpeed = 5
	cfg.StartOrthographic = true
	a := New(cfg)

	if !a.Cam.Position.ApproxEqualThreshold(mgl32.Vec3{0, 0, 3}, eps) {
		t.Errorf("câmera em %v", a.Cam.Position)
	}
	if a.Cam.MovementSpeed != 5 || a.Cam.Mode != camera.ModeOrthographic {
		t.Errorf("câmera speed=%v mode=%v", a.Cam.MovementSpeed, a.Cam.Mode)
	}
	if a.Lights.Key.Position != (mgl32.Vec3{10, 0, -20}) || a.Lights.Fill.Strength != 1 {
		t.Errorf("luzes = %+v", a.Lights)
	}
	if !a.Lights.Orbiting {
		t.Error("órbita deveria começar ligada")
	}
	if a.Material.UVScale != (mgl32.Vec2{2, 2}) || a.Material.SpecularIntensity != 0.8 {
		t.Errorf("material = %+v", a.Material)
	}
}

func TestNewClampsFOV(t *testing.T) {
	tests := []struct {
		fov  float32
		want float32
	}{
		{0, camera.MinZoom},
		{90, camera.MaxZoom},
		{30, 30},
	}
	for _, tt := range tests {
		cfg := config.DefaultConfig()
		cfg.FOV = tt.fov
		a := New(cfg)
		if a.Cam.Zoom != tt.want {
			t.Errorf("fov %v: Zoom = %v, want %v", tt.fov, a.Cam.Zoom, tt.want)
		}
		p := a.Cam.Projection(800, 600)
		for i, v := range p {
			if math.IsInf(float64(v), 0) || math.IsNaN(float64(v)) {
				t.Errorf("fov %v: projeção[%d] = %v", tt.fov, i, v)
			}
		}
	}
}

func TestHandleInputMovesCamera(t *testing.T) {
	a := New(config.DefaultConfig())
	a.handleInput(fakeInput{down: map[int32]bool{rl.KeyW: true}}, 1.0)
	if !a.Cam.Position.ApproxEqualThreshold(mgl32.Vec3{0, 0, 0.5}, eps) {
		t.Errorf("Position = %v, want (0, 0, 0.5)", a.Cam.Position)
	}

	// W e S juntos se anulam.
	a = New(config.DefaultConfig())
	a.handleInput(fakeInput{down: map[int32]bool{rl.KeyW: true, rl.KeyS: true}}, 0.5)
	if !a.Cam.Position.ApproxEqualThreshold(mgl32.Vec3{0, 0, 3}, eps) {
		t.Errorf("Position = %v, want (0, 0, 3)", a.Cam.Position)
	}

	a = New(config.DefaultConfig())
	a.handleInput(fakeInput{down: map[int32]bool{rl.KeyE: true}}, 1.0)
	if !a.Cam.Position.ApproxEqualThreshold(mgl32.Vec3{0, 2.5, 3}, eps) {
		t.Errorf("E: Position = %v", a.Cam.Position)
	}
}

func TestHandleInputToggles(t *testing.T) {
	tests := []struct {
		name      string
		orbiting  bool
		in        fakeInput
		mode      camera.Mode
		wantOrbit bool
	}{
		{
			name:      "P alterna para ortográfica",
			orbiting:  true,
			in:        fakeInput{pressed: map[int32]bool{rl.KeyP: true}},
			mode:      camera.ModeOrthographic,
			wantOrbit: true,
		},
		{
			name:      "P segurado não alterna de novo",
			orbiting:  true,
			in:        fakeInput{down: map[int32]bool{rl.KeyP: true}},
			mode:      camera.ModePerspective,
			wantOrbit: true,
		},
		{
			name:      "K desliga a órbita",
			orbiting:  true,
			in:        fakeInput{down: map[int32]bool{rl.KeyK: true}},
			mode:      camera.ModePerspective,
			wantOrbit: false,
		},
		{
			name:      "L liga a órbita",
			orbiting:  false,
			in:        fakeInput{down: map[int32]bool{rl.KeyL: true}},
			mode:      camera.ModePerspective,
			wantOrbit: true,
		},
		{
			name:      "L e K com órbita desligada liga",
			orbiting:  false,
			in:        fakeInput{down: map[int32]bool{rl.KeyL: true, rl.KeyK: true}},
			mode:      camera.ModePerspective,
			wantOrbit: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(config.DefaultConfig())
			a.Lights.Orbiting = tt.orbiting
			a.handleInput(tt.in, 0.016)
			if a.Cam.Mode != tt.mode {
				t.Errorf("Mode = %v, want %v", a.Cam.Mode, tt.mode)
			}
			if a.Lights.Orbiting != tt.wantOrbit {
				t.Errorf("Orbiting = %v, want %v", a.Lights.Orbiting, tt.wantOrbit)
			}
		})
	}
}

func TestHandleInputMouse(t *testing.T) {
	a := New(config.DefaultConfig())
	// O primeiro delta é o salto de capturar o cursor e não gira a câmera.
	a.handleInput(fakeInput{delta: rl.Vector2{X: 4000, Y: 3000}}, 0.016)
	if a.Cam.Yaw != camera.DefaultYaw || a.Cam.Pitch != 0 {
		t.Fatalf("primeiro delta aplicado: yaw=%v pitch=%v", a.Cam.Yaw, a.Cam.Pitch)
	}

	// Mouse para cima (Y negativo na tela) aumenta o pitch.
	a.handleInput(fakeInput{delta: rl.Vector2{X: 100, Y: -50}, wheel: 5}, 0.016)

	if !mgl32.FloatEqualThreshold(a.Cam.Yaw, -80, eps) {
		t.Errorf("Yaw = %v, want -80", a.Cam.Yaw)
	}
	if !mgl32.FloatEqualThreshold(a.Cam.Pitch, 5, eps) {
		t.Errorf("Pitch = %v, want 5", a.Cam.Pitch)
	}
	if a.Cam.Zoom != 40 {
		t.Errorf("Zoom = %v, want 40", a.Cam.Zoom)
	}

	// Botões só geram log.
	before := *a.Cam
	a.handleInput(fakeInput{
		buttons:  map[rl.MouseButton]bool{rl.MouseButtonLeft: true, rl.MouseButtonRight: true},
		released: map[rl.MouseButton]bool{rl.MouseButtonMiddle: true},
	}, 0.016)
	if *a.Cam != before {
		t.Error("botões do mouse alteraram a câmera")
	}
}

func TestOrbitUpdateKeepsRadius(t *testing.T) {
	a := New(config.DefaultConfig())
	r0 := util.RadiusXZ(a.Lights.Key.Position)
	for i := 0; i < 240; i++ {
		a.updateLights(1.0 / 60)
	}
	if r := util.RadiusXZ(a.Lights.Key.Position); !mgl32.FloatEqualThreshold(r, r0, eps*r0) {
		t.Errorf("raio = %v, want %v", r, r0)
	}
	// 4 s a 45°/s = 180°: (10, 0, -20) vai para (-10, 0, 20).
	if !a.Lights.Key.Position.ApproxEqualThreshold(mgl32.Vec3{-10, 0, 20}, 1e-2) {
		t.Errorf("posição após meia volta = %v", a.Lights.Key.Position)
	}

	a.Lights.Orbiting = false
	p := a.Lights.Key.Position
	a.updateLights(1)
	if a.Lights.Key.Position != p {
		t.Error("luz se moveu com órbita desligada")
	}
}

func TestModelMatrix(t *testing.T) {
	tests := []struct {
		in, want mgl32.Vec3
	}{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{-0.70710677, 0, -0.70710677}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 0}},
	}
	for _, tt := range tests {
		got := modelMatrix.Mul4x1(tt.in.Vec4(1)).Vec3()
		if !got.ApproxEqualThreshold(tt.want, eps) {
			t.Errorf("model * %v = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFrameStateProjectionSize(t *testing.T) {
	tests := []struct {
		name   string
		follow bool
		screen [2]int
		want   mgl32.Mat4
	}{
		{"tamanho lógico fixo após resize", false, [2]int{1600, 900}, mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100)},
		{"aspecto acompanha a janela", true, [2]int{1600, 900}, mgl32.Perspective(mgl32.DegToRad(45), 1600.0/900.0, 0.1, 100)},
		{"janela minimizada usa o lógico", true, [2]int{0, 0}, mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.AspectFollowsWindow = tt.follow
			a := New(cfg)
			fs := a.frameState(tt.screen[0], tt.screen[1])
			if !fs.Projection.ApproxEqualThreshold(tt.want, eps) {
				t.Errorf("Projection = %v, want %v", fs.Projection, tt.want)
			}
			if fs.Model != modelMatrix || fs.ViewPosition != a.Cam.Position {
				t.Error("model ou posição da câmera incorretos")
			}
		})
	}
}

func TestFrameClock(t *testing.T) {
	var c FrameClock
	c.Reset(10)
	tests := []struct {
		now  float64
		want float32
	}{
		{10.5, 0.5},
		{10.5, 0},
		{12, 1.5},
		{11, 0}, // relógio voltou
		{11.25, 0.25},
	}
	for _, tt := range tests {
		if got := c.Tick(tt.now); !mgl32.FloatEqualThreshold(got, tt.want, 1e-6) {
			t.Errorf("Tick(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
}

package camera

import (
	"MemorialVision/shared/util"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Mode define o tipo de projeção estritamente.
type Mode int

const (
	ModePerspective Mode = iota
	ModeOrthographic
)

func (m Mode) String() string {
	if m == ModeOrthographic {
		return "ortográfica"
	}
	return "perspectiva"
}

// Direction é um dos seis sentidos de movimento da câmera livre.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

// Valores padrão da câmera livre.
const (
	DefaultYaw         = -90.0
	DefaultPitch       = 0.0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	DefaultZoom        = 45.0

	MaxPitch = 89.0
	MinZoom  = 1.0
	MaxZoom  = 45.0

	perspectiveNear = 0.1
	perspectiveFar  = 100.0
	orthoNear       = -50.0
	orthoFar        = 50.0
	orthoScale      = 0.01 // 1% da janela para cada lado
)

// Camera é uma câmera em primeira pessoa controlada por yaw/pitch.
// Front, Right e Up são recalculados sempre que os ângulos mudam.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32 // graus
	Pitch float32 // graus

	MovementSpeed    float32
	MouseSensitivity float32
	Zoom             float32 // campo de visão vertical, graus

	Mode Mode
}

// New cria uma câmera na posição dada, olhando para -Z.
func New(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:         position,
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
		Mode:             ModePerspective,
	}
	c.updateVectors()
	return c
}

// ProcessKeyboard move a câmera ao longo da base atual. Não há limites no mundo.
func (c *Camera) ProcessKeyboard(dir Direction, dt float32) {
	velocity := c.MovementSpeed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case Up:
		c.Position = c.Position.Add(c.Up.Mul(velocity))
	case Down:
		c.Position = c.Position.Sub(c.Up.Mul(velocity))
	}
}

// ProcessMouseMovement acumula os deslocamentos do mouse em yaw/pitch.
// O pitch fica preso em [-89, 89] para a base não degenerar nos polos.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32) {
	c.Yaw += xOffset * c.MouseSensitivity
	c.Pitch += yOffset * c.MouseSensitivity
	c.Pitch = util.Clamp(c.Pitch, -MaxPitch, MaxPitch)
	c.updateVectors()
}

// ProcessMouseScroll ajusta o zoom (FOV) dentro de [1, 45] graus.
func (c *Camera) ProcessMouseScroll(yOffset float32) {
	c.Zoom = util.Clamp(c.Zoom-yOffset, MinZoom, MaxZoom)
}

// ViewMatrix retorna a matriz look-at da câmera.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// SetMode troca o modo de projeção.
func (c *Camera) SetMode(mode Mode) {
	c.Mode = mode
}

// Toggle alterna entre perspectiva e ortográfica e retorna o novo modo.
func (c *Camera) Toggle() Mode {
	if c.Mode == ModePerspective {
		c.SetMode(ModeOrthographic)
	} else {
		c.SetMode(ModePerspective)
	}
	return c.Mode
}

// Projection monta a matriz de projeção do modo atual para uma janela width x height.
func (c *Camera) Projection(width, height float32) mgl32.Mat4 {
	if c.Mode == ModeOrthographic {
		w := width * orthoScale
		h := height * orthoScale
		return mgl32.Ortho(-w, w, -h, h, orthoNear, orthoFar)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Zoom), width/height, perspectiveNear, perspectiveFar)
}

// updateVectors recalcula Front/Right/Up a partir de yaw e pitch (esférico -> cartesiano).
func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

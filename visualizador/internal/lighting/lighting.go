package lighting

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Shininess é o expoente especular usado pelo programa de fragmento.
const Shininess = 16.0

// PointLight é uma luz pontual com cor e intensidade.
type PointLight struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Strength float32
}

// Orbit gira a luz em torno do eixo Y por degPerSec * dt graus.
// A rotação é aplicada à posição homogênea, então o raio no plano XZ e a altura se mantêm.
func (l *PointLight) Orbit(dt, degPerSec float32) {
	angle := mgl32.DegToRad(degPerSec * dt)
	l.Position = mgl32.HomogRotate3DY(angle).Mul4x1(l.Position.Vec4(1)).Vec3()
}

// Material reúne os coeficientes de Phong enviados como uniforms.
type Material struct {
	AmbientStrength   mgl32.Vec3
	DiffuseStrength   mgl32.Vec3 // enviado ao shader, mas o programa atual não o lê
	SpecularIntensity float32
	UVScale           mgl32.Vec2
}

// Rig é o par de luzes da cena: Key orbita, Fill é fixa.
type Rig struct {
	Key      PointLight
	Fill     PointLight
	Orbiting bool
}

// Update avança a órbita da luz principal, se estiver ligada.
func (r *Rig) Update(dt, degPerSec float32) {
	if r.Orbiting {
		r.Key.Orbit(dt, degPerSec)
	}
}

// Shade é a versão em CPU do programa de fragmento "sun".
// Os termos da luz 1 não são multiplicados por Key.Strength; só os da luz 2 usam Fill.Strength.
func Shade(r Rig, m Material, fragPos, normal, viewPos, base mgl32.Vec3) mgl32.Vec3 {
	n := normal.Normalize()
	viewDir := viewPos.Sub(fragPos).Normalize()

	ambient := mulVec(m.AmbientStrength, r.Key.Color)
	diffuse, specular := phong(r.Key, m, fragPos, n, viewDir)

	s := r.Fill.Strength
	ambient = ambient.Add(mulVec(m.AmbientStrength, r.Fill.Color).Mul(s))
	d2, s2 := phong(r.Fill, m, fragPos, n, viewDir)
	diffuse = diffuse.Add(d2.Mul(s))
	specular = specular.Add(s2.Mul(s))

	return mulVec(ambient.Add(diffuse).Add(specular), base)
}

func phong(l PointLight, m Material, fragPos, n, viewDir mgl32.Vec3) (diffuse, specular mgl32.Vec3) {
	lightDir := l.Position.Sub(fragPos).Normalize()
	impact := math32.Max(n.Dot(lightDir), 0)
	diffuse = l.Color.Mul(impact)

	reflectDir := reflect(lightDir.Mul(-1), n)
	spec := math32.Pow(math32.Max(viewDir.Dot(reflectDir), 0), Shininess)
	specular = l.Color.Mul(m.SpecularIntensity * spec)
	return diffuse, specular
}

// reflect segue a definição do GLSL: i - 2 * dot(n, i) * n.
func reflect(i, n mgl32.Vec3) mgl32.Vec3 {
	return i.Sub(n.Mul(2 * n.Dot(i)))
}

func mulVec(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

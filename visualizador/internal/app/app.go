package app

import (
	"fmt"
	"log"

	"MemorialVision/shared/config"
	"MemorialVision/shared/util"
	"MemorialVision/visualizador/internal/camera"
	"MemorialVision/visualizador/internal/lighting"
	"MemorialVision/visualizador/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// App é a aplicação principal do MemorialVision. Todo o estado que o loop
// de render precisa vive aqui, tocado apenas pela thread principal.
type App struct {
	Config *config.Config

	Cam      *camera.Camera
	Lights   lighting.Rig
	Material lighting.Material
	Clock    FrameClock

	input    Input
	renderer *render.Renderer

	// O primeiro delta após DisableCursor inclui o salto de recentrar o cursor.
	firstMouse bool

	frameCount int
}

// New cria a aplicação a partir da configuração, sem abrir janela.
func New(cfg *config.Config) *App {
	cam := camera.New(vec3(cfg.CameraStart))
	cam.MovementSpeed = cfg.CameraSpeed
	cam.MouseSensitivity = cfg.CameraSensitivity
	// Config montado em código não passa por Validate.
	cam.Zoom = util.Clamp(cfg.FOV, camera.MinZoom, camera.MaxZoom)
	if cfg.StartOrthographic {
		cam.SetMode(camera.ModeOrthographic)
	}

	return &App{
		Config: cfg,
		Cam:    cam,
		Lights: lighting.Rig{
			Key: lighting.PointLight{
				Position: vec3(cfg.Light1Position),
				Color:    vec3(cfg.Light1Color),
				Strength: cfg.Light1Strength,
			},
			Fill: lighting.PointLight{
				Position: vec3(cfg.Light2Position),
				Color:    vec3(cfg.Light2Color),
				Strength: cfg.Light2Strength,
			},
			Orbiting: cfg.LampOrbiting,
		},
		Material: lighting.Material{
			AmbientStrength:   vec3(cfg.AmbientStrength),
			DiffuseStrength:   vec3(cfg.DiffuseStrength),
			SpecularIntensity: cfg.SpecularIntensity,
			UVScale:           mgl32.Vec2{cfg.UVScale[0], cfg.UVScale[1]},
		},
		input:      raylibInput{},
		firstMouse: true,
	}
}

// Run abre a janela, cria os recursos e executa o loop até o fechamento.
// Qualquer falha de inicialização é devolvida e nada fica alocado.
func (a *App) Run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	var flags uint32 = rl.FlagWindowResizable
	if a.Config.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	if !rl.IsWindowReady() {
		return fmt.Errorf("%w: %dx%d", render.ErrWindowInit, a.Config.WindowWidth, a.Config.WindowHeight)
	}
	defer rl.CloseWindow()

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}
	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(rl.KeyEscape)
	rl.DisableCursor()

	log.Println("[MemorialVision] Janela inicializada com sucesso")
	log.Printf("[MemorialVision] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	a.renderer, err = render.NewRenderer(render.NewRaylibBackend(), a.Config.Textures)
	if err != nil {
		return err
	}
	defer a.shutdown()

	a.Clock.Reset(rl.GetTime())
	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}
	return nil
}

// update avança o relógio, processa a entrada e a órbita da luz.
func (a *App) update() {
	a.frameCount++
	dt := a.Clock.Tick(rl.GetTime())

	if rl.IsWindowResized() {
		log.Printf("[App] Janela redimensionada para %dx%d", rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	a.handleInput(a.input, dt)
	a.updateLights(dt)
}

// shutdown libera os recursos de GPU antes de fechar a janela.
func (a *App) shutdown() {
	log.Printf("[App] Finalizando após %d frames...", a.frameCount)
	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
}

func vec3(v config.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}

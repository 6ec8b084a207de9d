package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Vec3 é um vetor serializável (x, y, z) usado para posições e cores.
type Vec3 [3]float32

// TexturePaths lista as quatro texturas fixas da cena.
type TexturePaths struct {
	Marble   string `json:"marble" yaml:"marble"`
	Grass    string `json:"grass" yaml:"grass"`
	Water    string `json:"water" yaml:"water"`
	Monument string `json:"monument" yaml:"monument"`
}

// Config armazena as configurações do MemorialVision.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width" yaml:"window_width"`
	WindowHeight int32  `json:"window_height" yaml:"window_height"`
	WindowTitle  string `json:"window_title" yaml:"window_title"`
	Fullscreen   bool   `json:"fullscreen" yaml:"fullscreen"`
	TargetFPS    int32  `json:"target_fps" yaml:"target_fps"`
	VSync        bool   `json:"vsync" yaml:"vsync"`

	// Se true, a projeção usa o tamanho real da janela após um resize.
	// Desligado, as matrizes usam sempre WindowWidth x WindowHeight.
	AspectFollowsWindow bool `json:"aspect_follows_window" yaml:"aspect_follows_window"`

	// Câmera
	CameraStart       Vec3    `json:"camera_start" yaml:"camera_start"`
	CameraSpeed       float32 `json:"camera_speed" yaml:"camera_speed"`
	CameraSensitivity float32 `json:"camera_sensitivity" yaml:"camera_sensitivity"`
	FOV               float32 `json:"fov" yaml:"fov"`
	StartOrthographic bool    `json:"start_orthographic" yaml:"start_orthographic"`

	// Iluminação
	Light1Position    Vec3       `json:"light1_position" yaml:"light1_position"`
	Light1Color       Vec3       `json:"light1_color" yaml:"light1_color"`
	Light1Strength    float32    `json:"light1_strength" yaml:"light1_strength"`
	Light2Position    Vec3       `json:"light2_position" yaml:"light2_position"`
	Light2Color       Vec3       `json:"light2_color" yaml:"light2_color"`
	Light2Strength    float32    `json:"light2_strength" yaml:"light2_strength"`
	OrbitDegreesPerS  float32    `json:"orbit_degrees_per_second" yaml:"orbit_degrees_per_second"`
	LampOrbiting      bool       `json:"lamp_orbiting" yaml:"lamp_orbiting"`
	AmbientStrength   Vec3       `json:"ambient_strength" yaml:"ambient_strength"`
	DiffuseStrength   Vec3       `json:"diffuse_strength" yaml:"diffuse_strength"`
	SpecularIntensity float32    `json:"specular_intensity" yaml:"specular_intensity"`
	UVScale           [2]float32 `json:"uv_scale" yaml:"uv_scale"`

	// Assets
	Textures TexturePaths `json:"textures" yaml:"textures"`

	// Debug
	ShowLamps bool   `json:"show_lamps" yaml:"show_lamps"`
	LogFile   string `json:"log_file" yaml:"log_file"`
}

// Limites do campo de visão, os mesmos do zoom da câmera.
const (
	MinFOV = 1.0
	MaxFOV = 45.0
)

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  800,
		WindowHeight: 600,
		WindowTitle:  "MemorialVision",
		Fullscreen:   false,
		TargetFPS:    60,
		VSync:        true,

		AspectFollowsWindow: false,

		CameraStart:       Vec3{0, 0, 3},
		CameraSpeed:       2.5,
		CameraSensitivity: 0.1,
		FOV:               45.0,
		StartOrthographic: false,

		Light1Position:    Vec3{10, 0, -20},
		Light1Color:       Vec3{1, 1, 1},
		Light1Strength:    2.0,
		Light2Position:    Vec3{0, 10, 20},
		Light2Color:       Vec3{0.992, 0.9843, 0.8275},
		Light2Strength:    1.0,
		OrbitDegreesPerS:  45.0,
		LampOrbiting:      true,
		AmbientStrength:   Vec3{0.15, 0.15, 0.15},
		DiffuseStrength:   Vec3{1, 1, 1},
		SpecularIntensity: 0.8,
		UVScale:           [2]float32{2, 2},

		Textures: TexturePaths{
			Marble:   "res/marble.png",
			Grass:    "res/grass.jpg",
			Water:    "res/water.png",
			Monument: "res/offwhite.jpg",
		},

		ShowLamps: false,
		LogFile:   "debug_mv.log",
	}
}

// DefaultPath retorna o caminho padrão do arquivo de configuração (ao lado do executável).
func DefaultPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yml" || ext == ".yaml"
}

// Load carrega as configurações de um arquivo JSON ou YAML.
// Se o arquivo não existir, retorna as configurações padrão.
// Um arquivo inválido também cai no padrão, com aviso no log.
func Load(path string) *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[Config] Não foi possível ler %s: %v", path, err)
		}
		return cfg
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		log.Printf("[Config] Arquivo %s inválido, usando padrão: %v", path, err)
		return DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		log.Printf("[Config] %v, usando padrão", err)
		return DefaultConfig()
	}

	return cfg
}

// Validate verifica os campos que tornariam as matrizes ou a carga de assets inválidas.
func (c *Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("tamanho de janela inválido: %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.TargetFPS <= 0 {
		return fmt.Errorf("target_fps inválido: %d", c.TargetFPS)
	}
	if c.FOV < MinFOV || c.FOV > MaxFOV {
		return fmt.Errorf("fov %.1f fora de [%.0f, %.0f]", c.FOV, MinFOV, MaxFOV)
	}
	if c.CameraSpeed <= 0 || c.CameraSensitivity <= 0 {
		return fmt.Errorf("câmera com velocidade %.2f e sensibilidade %.2f (precisam ser positivas)", c.CameraSpeed, c.CameraSensitivity)
	}
	for name, p := range map[string]string{
		"marble":   c.Textures.Marble,
		"grass":    c.Textures.Grass,
		"water":    c.Textures.Water,
		"monument": c.Textures.Monument,
	} {
		if p == "" {
			return fmt.Errorf("textura %q sem caminho", name)
		}
	}
	return nil
}

// Save salva as configurações no formato indicado pela extensão do arquivo.
func (c *Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

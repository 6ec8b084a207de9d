package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"MemorialVision/shared/config"
	"MemorialVision/visualizador/internal/app"
	"MemorialVision/visualizador/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	configPath := flag.String("config", config.DefaultPath(), "Arquivo de configuração (.json, .yml ou .yaml)")
	writeConfig := flag.Bool("write-config", false, "Grava a configuração efetiva no arquivo de -config e sai")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	lamps := flag.Bool("lamps", false, "Desenhar cubos nas posições das luzes")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	logFile := flag.String("log", "", "Arquivo de log (padrão: o do config; \"-\" para o terminal)")
	verbose := flag.Bool("verbose", false, "Repassar também as mensagens informativas do raylib")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)

	// Carregar configurações
	cfg := config.Load(*configPath)

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *lamps {
		cfg.ShowLamps = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	if *writeConfig {
		if err := cfg.Save(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Erro ao salvar configurações: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Configuração gravada em %s\n", *configPath)
		return
	}

	// Configurar Log em Arquivo
	if cfg.LogFile != "" && cfg.LogFile != "-" {
		f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		} else {
			log.Printf("[MemorialVision] Não foi possível abrir %s: %v", cfg.LogFile, err)
		}
	}
	log.Println("--- INICIANDO MEMORIAL VISION ---")

	level := rl.LogWarning
	if *verbose {
		level = rl.LogInfo
	}
	render.RouteTraceLog(level)

	// Criar e rodar a aplicação
	if err := app.New(cfg).Run(); err != nil {
		log.Printf("[MemorialVision] Erro fatal: %v", err)
		fmt.Fprintf(os.Stderr, "Erro fatal: %v\n", err)
		os.Exit(1)
	}
}

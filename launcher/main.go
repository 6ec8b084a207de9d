package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"MemorialVision/shared/config"
)

func main() {
	dir := flag.String("dir", ".", "Pasta de trabalho do visualizador (onde fica res/)")
	bin := flag.String("bin", "", "Executável do visualizador (padrão: ao lado do launcher)")
	flag.Parse()

	fmt.Println("╔══════════════════════════════════════╗")
	fmt.Println("║       MemorialVision Launcher        ║")
	fmt.Println("╚══════════════════════════════════════╝")

	workDir, err := filepath.Abs(*dir)
	if err != nil {
		log.Fatalf("Erro ao resolver pasta de trabalho: %v", err)
	}

	// 1. Conferir as texturas antes de abrir a janela
	fmt.Println("[1/2] Verificando texturas...")
	cfgPath := filepath.Join(workDir, "config.json")
	cfg := config.Load(cfgPath)
	missing := missingTextures(workDir, cfg.Textures)
	if len(missing) > 0 {
		for _, p := range missing {
			fmt.Printf("  - FALTANDO: %s\n", p)
		}
		log.Fatalf("%d textura(s) não encontrada(s) em %s", len(missing), workDir)
	}

	// 2. Abrir o visualizador com a pasta de trabalho certa
	fmt.Println("[2/2] Abrindo visualizador...")
	viewer := *bin
	if viewer == "" {
		viewer = defaultViewer()
	}
	absViewer, err := filepath.Abs(viewer)
	if err != nil {
		log.Fatalf("Erro ao resolver caminho do visualizador: %v", err)
	}

	cmd := exec.Command(absViewer, "-config", cfgPath)
	cmd.Dir = workDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Printf("ERRO: o visualizador terminou com falha (%s)\n", absViewer)
		fmt.Printf("Detalhes: %v\n", err)
		os.Exit(1)
	}
}

// missingTextures retorna os caminhos das texturas que não existem em dir.
func missingTextures(dir string, t config.TexturePaths) []string {
	var missing []string
	for _, p := range []string{t.Marble, t.Grass, t.Water, t.Monument} {
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		if _, err := os.Stat(p); err != nil {
			missing = append(missing, p)
		}
	}
	return missing
}

func defaultViewer() string {
	name := "MemorialVision"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exe), name)
}

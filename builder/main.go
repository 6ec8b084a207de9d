package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// Cores para o terminal (ANSI)
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

func main() {
	runTests := flag.Bool("test", true, "Rodar os testes antes de compilar")
	pause := flag.Bool("pause", runtime.GOOS == "windows", "Esperar Enter ao terminar")
	flag.Parse()

	fmt.Println(ColorCyan + "╔══════════════════════════════════════╗" + ColorReset)
	fmt.Println(ColorCyan + "║     MemorialVision Native Builder    ║" + ColorReset)
	fmt.Println(ColorCyan + "╚══════════════════════════════════════╝" + ColorReset)

	start := time.Now()

	// 1. Configurar Ambiente
	setupEnvironment()

	// 2. Testes
	if *runTests {
		if err := runGo("TESTES", true, "test", "./..."); err != nil {
			fatal(err, *pause)
		}
	}

	// 3. Compilar Visualizador (raylib precisa de CGO)
	if err := buildComponent("VISUALIZADOR (CGO)", "visualizador", outputName("MemorialVision"), true, ldflags()); err != nil {
		fatal(err, *pause)
	}

	// 4. Compilar Launcher (Go puro)
	if err := buildComponent("LAUNCHER", "launcher", outputName("MemorialLauncher"), false, "-s -w"); err != nil {
		fatal(err, *pause)
	}

	fmt.Printf("\n"+ColorCyan+"Build finalizada com sucesso em %v!"+ColorReset+"\n", time.Since(start).Round(time.Second))
	fmt.Println(ColorYellow + "Dica: execute a partir da pasta que contém res/ para as texturas serem encontradas." + ColorReset)

	if *pause {
		fmt.Println("\nPressione Enter para sair...")
		fmt.Scanln()
	}
}

func setupEnvironment() {
	fmt.Println(ColorYellow + "\n[0/3] Configurando ambiente de compilação..." + ColorReset)

	// Adicionar MSYS2 ao PATH se estiver no Windows
	if runtime.GOOS == "windows" {
		msysPath := `C:\msys64\mingw64\bin`
		currentPath := os.Getenv("PATH")
		if !strings.Contains(currentPath, msysPath) {
			os.Setenv("PATH", msysPath+";"+currentPath)
			fmt.Printf("  - PATH atualizado: %s adicionado.\n", msysPath)
		}
		os.Setenv("CC", "gcc")
		fmt.Println("  - Compilador C: gcc (MSYS2)")
	}
}

func outputName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}

func ldflags() string {
	if runtime.GOOS == "windows" {
		return "-extldflags=-static -s -w -H=windowsgui"
	}
	return "-s -w"
}

func buildComponent(name, dir, output string, useCgo bool, ldflags string) error {
	if err := runGo(name, useCgo, "build", "-ldflags", ldflags, "-o", output, "./"+dir); err != nil {
		return err
	}
	fmt.Printf(ColorGreen+"  - %s compilado com sucesso -> %s"+ColorReset+"\n", name, output)
	return nil
}

func runGo(name string, useCgo bool, args ...string) error {
	fmt.Printf(ColorYellow+"\n[+] %s: go %s"+ColorReset+"\n", name, strings.Join(args, " "))

	cgoValue := "0"
	if useCgo {
		cgoValue = "1"
	}
	os.Setenv("CGO_ENABLED", cgoValue)

	cmd := exec.Command("go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("falha em %s: %v", name, err)
	}
	return nil
}

func fatal(err error, pause bool) {
	fmt.Printf("\n"+ColorRed+"[ERRO FATAL] %v"+ColorReset+"\n", err)
	if pause {
		fmt.Println("Pressione Enter para sair...")
		fmt.Scanln()
	}
	os.Exit(1)
}

package render

import (
	"log"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// traceRouter encaminha o log interno do raylib para o log padrão.
// Enquanto capture != nil, as mensagens também são guardadas (diagnóstico de shaders).
type traceRouter struct {
	minLevel int
	capture  *[]string
}

var trace = &traceRouter{minLevel: int(rl.LogWarning)}

// RouteTraceLog instala o callback de log do raylib. Mensagens abaixo de minLevel
// não vão para o log, mas ainda são capturadas durante a carga de shaders.
func RouteTraceLog(minLevel rl.TraceLogLevel) {
	trace.minLevel = int(minLevel)
	rl.SetTraceLogLevel(rl.LogAll)
	rl.SetTraceLogCallback(trace.handle)
}

func (t *traceRouter) handle(level int, msg string) {
	if t.capture != nil && level >= int(rl.LogWarning) {
		*t.capture = append(*t.capture, msg)
	}
	if level >= t.minLevel {
		log.Printf("[raylib] %s", strings.TrimSpace(msg))
	}
}

// collect executa fn guardando as mensagens de aviso/erro emitidas durante a chamada.
func (t *traceRouter) collect(fn func()) []string {
	var msgs []string
	t.capture = &msgs
	defer func() { t.capture = nil }()
	fn()
	return msgs
}

// classify identifica a etapa que falhou a partir das mensagens do raylib.
// Retorna ok=false se nenhuma falha foi reportada.
func classify(msgs []string) (stage Stage, diag string, ok bool) {
	var details []string
	found := false
	for _, m := range msgs {
		lower := strings.ToLower(m)
		switch {
		case !found && strings.Contains(lower, "failed to compile vertex"):
			stage, found = StageVertex, true
		case !found && strings.Contains(lower, "failed to compile fragment"):
			stage, found = StageFragment, true
		case !found && strings.Contains(lower, "failed to link"):
			stage, found = StageLink, true
		}
		if strings.Contains(lower, "error") {
			details = append(details, strings.TrimSpace(m))
		}
	}
	if !found {
		return 0, "", false
	}
	if len(details) == 0 {
		details = msgs
	}
	return stage, strings.Join(details, "\n"), true
}

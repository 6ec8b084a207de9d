package app

// FrameClock mede o tempo entre frames a partir de um relógio monotônico em segundos.
type FrameClock struct {
	last  float64
	Delta float32
}

// Reset marca now como início, sem gerar delta.
func (c *FrameClock) Reset(now float64) {
	c.last = now
	c.Delta = 0
}

// Tick retorna o tempo desde a chamada anterior. Um relógio que volta atrás gera delta zero.
func (c *FrameClock) Tick(now float64) float32 {
	d := now - c.last
	if d < 0 {
		d = 0
	}
	c.last = now
	c.Delta = float32(d)
	return c.Delta
}

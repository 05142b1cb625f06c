// Package progress imprime líneas de avance con el tiempo transcurrido desde el inicio de la corrida.
package progress

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Clock escribe "[   12.3s]: mensaje" en su writer. El instante de inicio se fija en la primera llamada.
// Las escrituras se serializan para que las líneas nunca se mezclen.
type Clock struct {
	mu    sync.Mutex
	out   io.Writer
	now   func() time.Time
	start time.Time
}

// New construye el reloj sobre el writer indicado (normalmente os.Stdout).
func New(out io.Writer) *Clock {
	return &Clock{out: out, now: time.Now}
}

// WithNow reemplaza la fuente de tiempo (tests).
func (c *Clock) WithNow(now func() time.Time) *Clock {
	c.now = now
	return c
}

// Logf formatea el mensaje y lo escribe con el tiempo transcurrido. Los errores de escritura se ignoran.
func (c *Clock) Logf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.start.IsZero() {
		c.start = now
	}
	elapsed := now.Sub(c.start).Seconds()
	_, _ = fmt.Fprintf(c.out, "[%8.1fs]: %s\n", elapsed, fmt.Sprintf(format, args...))
}

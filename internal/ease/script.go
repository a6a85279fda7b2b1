package ease

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// scriptPrelude exposes the math module to curve expressions.
const scriptPrelude = `math := import("math")
`

// ScriptCurve evaluates a tengo expression of t as an easing curve, e.g.
// "t * t * (3 - 2 * t)" or "math.sin(t * math.pi / 2)".
type ScriptCurve struct {
	mu       sync.Mutex
	source   string
	compiled *tengo.Compiled
	logger   *log.Logger
	failed   bool
}

// NewScriptCurve compiles expr. The logger receives the first runtime error,
// after which the curve degrades to linear; it may be nil.
func NewScriptCurve(expr string, logger *log.Logger) (*ScriptCurve, error) {
	src := scriptPrelude + "out := float(" + expr + ")\n"
	script := tengo.NewScript([]byte(src))
	_ = script.Add("t", 0.0)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ease: compile curve %q: %w", expr, err)
	}

	return &ScriptCurve{
		source:   expr,
		compiled: compiled,
		logger:   logger,
	}, nil
}

// Source returns the expression the curve was compiled from.
func (c *ScriptCurve) Source() string {
	return c.source
}

// Evaluate runs the expression with t = p.
func (c *ScriptCurve) Evaluate(p float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failed {
		return p
	}

	if err := c.compiled.Set("t", p); err != nil {
		c.fail(err)
		return p
	}
	if err := c.compiled.Run(); err != nil {
		c.fail(err)
		return p
	}
	return c.compiled.Get("out").Float()
}

func (c *ScriptCurve) fail(err error) {
	c.failed = true
	if c.logger != nil {
		c.logger.Error("ease: script curve failed, using linear", "expr", c.source, "error", err)
	}
}

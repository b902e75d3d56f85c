//go:build arenadebug

package arena

import "fmt"

// generation backs the debug-only use-after-reset check recommended (but not
// required) by the design: every Reset/Dispose bumps a counter; every
// view/sequence access rechecks it against the value captured at
// construction. Build without the arenadebug tag to compile this out
// entirely — see generation_release.go.
type generation struct {
	gen uint64
}

func (g *generation) bump() { g.gen++ }

func (g *generation) snapshot() uint64 { return g.gen }

func (g *generation) check(captured uint64) error {
	if g.gen != captured {
		return fmt.Errorf("arena: use after reset (generation %d, view captured %d)", g.gen, captured)
	}
	return nil
}

//go:build !arenadebug

package arena

// generation is a zero-size no-op in release builds: Reset/Dispose still
// call bump, and views still capture and check a value, but both compile
// down to nothing since there is no field to touch.
type generation struct{}

func (g *generation) bump() {}

func (g *generation) snapshot() uint64 { return 0 }

func (g *generation) check(uint64) error { return nil }

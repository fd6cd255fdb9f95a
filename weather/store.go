// Package weather defines the external WeatherStore collaborator:
// the core only ever references a weather file by name and
// climate zone, never fetches or parses EPW data itself. Three
// concrete backends are provided so the interface has real bodies;
// exactly one is active per deployment, selected by config.
package weather

import "context"

// Store maps a weather filename to a local disk path the simulator
// runner can open. The emitter only ever writes the filename into the
// IDF text — Path is a convenience for callers staging files for a run.
type Store interface {
	Path(ctx context.Context, filename string) (string, error)
}

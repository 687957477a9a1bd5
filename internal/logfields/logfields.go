package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyVariant    = "variant"
	KeyProfile    = "profile"
	KeyStep       = "step"
	KeyBuildID    = "build_id"
	KeyParts      = "parts"
	KeyPages      = "pages"
	KeyScenario   = "scenario"
	KeyFormat     = "format"
	KeyPath       = "path"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Variant(name string) slog.Attr { return slog.String(KeyVariant, name) }
func Profile(name string) slog.Attr { return slog.String(KeyProfile, name) }
func Step(name string) slog.Attr { return slog.String(KeyStep, name) }
func BuildID(id string) slog.Attr { return slog.String(KeyBuildID, id) }
func Parts(n int) slog.Attr { return slog.Int(KeyParts, n) }
func Pages(n int) slog.Attr { return slog.Int(KeyPages, n) }
func Scenario(title string) slog.Attr { return slog.String(KeyScenario, title) }
func Format(f string) slog.Attr { return slog.String(KeyFormat, f) }
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

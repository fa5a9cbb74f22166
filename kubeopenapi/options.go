package kubeopenapi

import "fmt"

// Profile selects a compatibility profile.
type Profile string

const (
	ProfileStructuralV1 Profile = "structural-v1"
)

// Options controls import behavior for Kubernetes OpenAPI v3 schemas.
type Options struct {
	Profile Profile
}

// Diag carries non-fatal warnings produced during import.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *simpleDiag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }

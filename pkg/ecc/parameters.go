package ecc

import "fmt"

const (
	// MaxLoops bounds the naive point enumeration.
	MaxLoops = 10000

	DefaultCertainty = 20
	DefaultWidth     = 800
	DefaultHeight    = 800
)

// Parameters holds the configuration shared by the command line tool and the wasm bridge.
type Parameters struct {
	Curve     string `json:"curve"`     // Named curve, only "secp256k1" is built in
	Certainty int    `json:"certainty"` // Miller-Rabin rounds
	Loops     int    `json:"loops"`     // Number of points to enumerate
	Width     int    `json:"width"`     // Drawing surface width in pixels
	Height    int    `json:"height"`    // Drawing surface height in pixels
}

// DefaultParameters returns the parameters used when nothing is configured.
func DefaultParameters() *Parameters {
	return &Parameters{
		Curve:     "secp256k1",
		Certainty: DefaultCertainty,
		Loops:     100,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
	}
}

// Validate checks every field and reports the first problem found.
func (p *Parameters) Validate() error {
	if p.Curve != "secp256k1" {
		return fmt.Errorf("unsupported curve %q", p.Curve)
	}
	if p.Certainty < 1 {
		return fmt.Errorf("certainty must be positive, got %d", p.Certainty)
	}
	if p.Loops < 1 || p.Loops > MaxLoops {
		return NewError("parameters", InvalidLoopCount, "%d not in [1, %d]", p.Loops, MaxLoops)
	}
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("surface must be at least 1x1, got %dx%d", p.Width, p.Height)
	}
	return nil
}

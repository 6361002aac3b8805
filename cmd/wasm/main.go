//go:build js && wasm

package main

import (
	"crypto/rand"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-ecplot/internal/crypto/curves"
	"github.com/smallyu/go-ecplot/internal/crypto/keypair"
	"github.com/smallyu/go-ecplot/internal/plot"
	"github.com/smallyu/go-ecplot/internal/report"
	"github.com/smallyu/go-ecplot/pkg/ecc"
)

func main() {
	c := make(chan struct{})

	fmt.Println("Go ECPlot WASM Initialized")

	js.Global().Set("GoECPlot", map[string]interface{}{
		"KeyPair": js.FuncOf(KeyPair),
		"Points":  js.FuncOf(Points),
	})

	<-c
}

// decodeParameters overlays the JSON document in args[0], if any, on the defaults.
func decodeParameters(args []js.Value) (*ecc.Parameters, *curves.Curve, error) {
	params := ecc.DefaultParameters()
	if len(args) > 0 && args[0].Type() == js.TypeString && args[0].String() != "" {
		if err := report.UnmarshalJSON([]byte(args[0].String()), params); err != nil {
			return nil, nil, fmt.Errorf("invalid json: %w", err)
		}
	}
	c, err := curves.FromParameters(params)
	if err != nil {
		return nil, nil, err
	}
	return params, c, nil
}

func marshal(v any) interface{} {
	b, err := report.MarshalJSON(v)
	if err != nil {
		return fmt.Sprintf("error: marshal failed: %v", err)
	}
	return string(b)
}

// KeyPair derives a key pair.
// Arguments:
// 0: JSON string of parameters (optional)
// 1: secret key in hex (optional, random when absent)
// Returns:
// JSON key pair or an "error: ..." string
func KeyPair(this js.Value, args []js.Value) interface{} {
	_, c, err := decodeParameters(args)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	var kp *keypair.KeyPair
	if len(args) > 1 && args[1].Type() == js.TypeString && args[1].String() != "" {
		sk, err := report.ParseHex(args[1].String())
		if err != nil {
			return fmt.Sprintf("error: invalid secret key: %v", err)
		}
		kp, err = keypair.GenerateKeyPair(c, sk)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
	} else {
		kp, err = keypair.GenerateRandom(rand.Reader, c)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
	}

	return marshal(report.NewKeyPair(c, kp))
}

// Points enumerates G, 2G, ... and projects them onto the configured surface.
// Arguments:
// 0: JSON string of parameters (optional)
// Returns:
// JSON point list or an "error: ..." string
func Points(this js.Value, args []js.Value) interface{} {
	params, c, err := decodeParameters(args)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	points, err := plot.Enumerate(c, c.G, params.Loops)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	pixels := plot.Project(points, c.P, params.Width, params.Height)

	return marshal(report.NewPoints(c, points, pixels))
}

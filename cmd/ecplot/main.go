// Command ecplot generates elliptic curve key pairs, enumerates curve points
// for plotting and exposes the modular arithmetic helpers.
package main

import (
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"os/signal"
	"time"

	fasthex "github.com/tmthrgd/go-hex"

	"github.com/smallyu/go-ecplot/internal/crypto/curves"
	"github.com/smallyu/go-ecplot/internal/crypto/keypair"
	"github.com/smallyu/go-ecplot/internal/crypto/modmath"
	"github.com/smallyu/go-ecplot/internal/plot"
	"github.com/smallyu/go-ecplot/internal/pow"
	"github.com/smallyu/go-ecplot/internal/report"
	"github.com/smallyu/go-ecplot/pkg/ecc"
)

const usage = `usage: ecplot <command> [flags]

commands:
  keygen   derive a key pair from -sk, or a random one
  points   enumerate G, 2G, ... and project them onto a surface
  prime    Miller-Rabin test of -n
  sqrt     modular square root of -a mod -p
  inv      modular inverse of -a mod -p
  mine     double SHA-256 proof-of-work search
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("ecplot: ")

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "keygen":
		err = runKeyGen(args)
	case "points":
		err = runPoints(args)
	case "prime":
		err = runPrime(args)
	case "sqrt":
		err = runSqrt(args)
	case "inv":
		err = runInv(args)
	case "mine":
		err = runMine(args)
	case "help", "-h", "--help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", cmd, err)
	}
}

// parametersFlags registers the shared configuration on fs.
func parametersFlags(fs *flag.FlagSet) *ecc.Parameters {
	params := ecc.DefaultParameters()
	fs.StringVar(&params.Curve, "curve", params.Curve, "named curve")
	fs.IntVar(&params.Certainty, "certainty", params.Certainty, "Miller-Rabin rounds")
	fs.IntVar(&params.Loops, "loops", params.Loops, fmt.Sprintf("points to enumerate (max %d)", ecc.MaxLoops))
	fs.IntVar(&params.Width, "width", params.Width, "surface width in pixels")
	fs.IntVar(&params.Height, "height", params.Height, "surface height in pixels")
	return params
}

func writeJSON(v any) error {
	return report.NewJSONEncoder(os.Stdout, "  ").Encode(v)
}

func parseInt(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid -%s %q", name, s)
	}
	return v, nil
}

func runKeyGen(args []string) error {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	params := parametersFlags(fs)
	skHex := fs.String("sk", "", "secret key in hex, random when empty")
	_ = fs.Parse(args)

	c, err := curves.FromParameters(params)
	if err != nil {
		return err
	}

	var kp *keypair.KeyPair
	if *skHex == "" {
		kp, err = keypair.GenerateRandom(rand.Reader, c)
	} else {
		var sk *big.Int
		if sk, err = report.ParseHex(*skHex); err != nil {
			return fmt.Errorf("invalid -sk: %w", err)
		}
		kp, err = keypair.GenerateKeyPair(c, sk)
	}
	if err != nil {
		return err
	}
	return writeJSON(report.NewKeyPair(c, kp))
}

func runPoints(args []string) error {
	fs := flag.NewFlagSet("points", flag.ExitOnError)
	params := parametersFlags(fs)
	noPixels := fs.Bool("no-pixels", false, "omit projected pixel positions")
	_ = fs.Parse(args)

	c, err := curves.FromParameters(params)
	if err != nil {
		return err
	}

	points, err := plot.Enumerate(c, c.G, params.Loops)
	if err != nil {
		return err
	}

	var pixels []plot.Pixel
	if !*noPixels {
		pixels = plot.Project(points, c.P, params.Width, params.Height)
	}
	return writeJSON(report.NewPoints(c, points, pixels))
}

func runPrime(args []string) error {
	fs := flag.NewFlagSet("prime", flag.ExitOnError)
	params := parametersFlags(fs)
	n := fs.String("n", "", "candidate, decimal or 0x hex")
	_ = fs.Parse(args)

	if err := params.Validate(); err != nil {
		return err
	}

	v, err := parseInt("n", *n)
	if err != nil {
		return err
	}
	ok, err := modmath.ProbablyPrime(rand.Reader, v, params.Certainty)
	if err != nil {
		return err
	}
	return writeJSON(map[string]any{"n": v.String(), "probablyPrime": ok, "certainty": params.Certainty})
}

func modArgs(name string, args []string) (a, p *big.Int, err error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	as := fs.String("a", "", "operand, decimal or 0x hex")
	ps := fs.String("p", "", "prime modulus, decimal or 0x hex")
	_ = fs.Parse(args)

	if a, err = parseInt("a", *as); err != nil {
		return nil, nil, err
	}
	if p, err = parseInt("p", *ps); err != nil {
		return nil, nil, err
	}
	return a, p, nil
}

func runSqrt(args []string) error {
	a, p, err := modArgs("sqrt", args)
	if err != nil {
		return err
	}
	r, err := modmath.ModSqrt(a, p)
	if err != nil {
		return err
	}
	other := new(big.Int).Sub(p, r)
	return writeJSON(map[string]any{"roots": []string{r.String(), other.Mod(other, p).String()}})
}

func runInv(args []string) error {
	a, p, err := modArgs("inv", args)
	if err != nil {
		return err
	}
	inv, err := modmath.ModInv(a, p)
	if err != nil {
		return err
	}
	return writeJSON(map[string]any{"inverse": inv.String()})
}

func runMine(args []string) error {
	fs := flag.NewFlagSet("mine", flag.ExitOnError)
	difficulty := fs.Uint64("difficulty", 1, "difficulty, target is (65536 << 208) / difficulty")
	headerHex := fs.String("header", "", "block header in hex, random 150 bytes when empty")
	workers := fs.Int("workers", 0, "hashing goroutines, 0 for one per CPU")
	maxNonce := fs.Uint64("max-nonce", 0, "last nonce to try, 0 for 2^32-1")
	timeout := fs.Duration("timeout", 0, "give up after this long, 0 for no limit")
	_ = fs.Parse(args)

	var header []byte
	if *headerHex == "" {
		header = make([]byte, 150)
		if _, err := rand.Read(header); err != nil {
			return err
		}
	} else {
		var err error
		if header, err = fasthex.DecodeString(*headerHex); err != nil {
			return fmt.Errorf("invalid -header: %w", err)
		}
	}

	target, err := pow.Target(*difficulty)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := pow.SearchTarget(ctx, header, target, pow.Options{Workers: *workers, MaxNonce: *maxNonce})
	if err != nil {
		return err
	}
	log.Printf("found nonce %d in %s", res.Nonce, time.Since(start).Round(time.Millisecond))
	return writeJSON(report.NewMining(*difficulty, target, res))
}

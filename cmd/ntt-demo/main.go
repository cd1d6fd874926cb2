// Command ntt-demo builds an NTT engine for a user-supplied transform
// length and modulus floor, samples a random polynomial, runs a forward
// and inverse round trip, and optionally dumps the twiddle table in the
// hardware interop format. Grounded on the teacher's examples/*/main.go
// idiom: os.Args flag parsing, a log.New(os.Stderr, "", 0) logger, and a
// check(err) helper that panics on failure.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nttring/rnsntt/bigint"
	"github.com/nttring/rnsntt/hwdump"
	"github.com/nttring/rnsntt/ntt"
	"github.com/nttring/rnsntt/rns"
)

var logger = log.New(os.Stderr, "", 0)

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	n := flag.Int("n", 1024, "transform length, a power of two")
	mMin := flag.String("m-min", "12289", "modulus floor, decimal")
	primeHint := flag.Bool("prime-hint", false, "treat -m-min as an already-valid prime modulus")
	dumpPath := flag.String("dump-twiddle", "", "if set, write the twiddle table to this path")
	flag.Parse()

	e, err := ntt.New(*n, bigint.FromString(*mMin, 10), &rns.Direct{}, *primeHint)
	check(err)

	logger.Printf("n=%d q=%s omega=%s omega_inv=%s", e.N(), e.Modulus(), e.Omega(), e.OmegaInv())
	if phi, err := e.Phi(); err == nil {
		logger.Printf("phi=%s", phi)
	} else {
		logger.Printf("phi: unavailable (%v)", err)
	}

	a := make([]bigint.Int, e.N())
	for i := range a {
		a[i] = bigint.Random(e.Modulus())
	}

	freq, err := e.Forward(a)
	check(err)

	back, err := e.Inverse(freq)
	check(err)

	for i := range a {
		if !a[i].Equal(back[i]) {
			panic(fmt.Sprintf("round trip failed at index %d: %s != %s", i, a[i], back[i]))
		}
	}
	logger.Printf("round trip OK over %d coefficients", e.N())

	if *dumpPath != "" {
		check(hwdump.SaveTwiddleTable(*dumpPath, e.N(), e.Omega(), e.Modulus()))
		logger.Printf("twiddle table written to %s", *dumpPath)
	}
}

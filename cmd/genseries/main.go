// genseries writes random-walk price archives in the format the
// simulator loads, one zip per asset with the session shape of its kind:
// stocks trade 6.5 hours per day, crypto all day minus a 5-minute tail.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/zappabad/tapetrader/internal/series"
)

const (
	stockSamplesPerDay  = int(6.5 * 3600 / series.SampleInterval)
	cryptoSamplesPerDay = (series.DaySeconds - 5*60) / series.SampleInterval

	// Chance that a single 5-second slot saw no trade at all.
	gapChance = 0.002
)

func main() {
	out := flag.String("out", "assets", "output directory")
	days := flag.Int("days", 30, "number of simulated days per asset")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if err := os.MkdirAll(*out, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))

	type spec struct {
		file  string
		kind  series.Kind
		start float64
	}
	specs := []spec{
		{"A.zip", series.KindStock, 150},
		{"B.zip", series.KindStock, 120},
		{"C.zip", series.KindStock, 250},
		{"D.zip", series.KindStock, 700},
		{"E.zip", series.KindStock, 40},
		{"F.zip", series.KindCrypto, 20000},
		{"G.zip", series.KindCrypto, 0.07},
		{"H.zip", series.KindCrypto, 1500},
		{"I.zip", series.KindCrypto, 60},
		{"J.zip", series.KindCrypto, 150},
	}

	for _, sp := range specs {
		path := filepath.Join(*out, sp.file)
		if err := series.WriteArchive(path, walk(rng, sp.kind, sp.start, *days)); err != nil {
			fmt.Fprintf(os.Stderr, "write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%d days)\n", path, *days)
	}
}

// walk generates a geometric random walk with per-sample jitter and
// occasional gap slots.
func walk(rng *rand.Rand, kind series.Kind, start float64, days int) [][]float64 {
	perDay := stockSamplesPerDay
	if kind == series.KindCrypto {
		perDay = cryptoSamplesPerDay
	}

	price := start
	out := make([][]float64, days)
	for d := range out {
		day := make([]float64, perDay)
		for i := range day {
			price *= math.Exp(rng.NormFloat64() * 0.0004)
			if rng.Float64() < gapChance {
				day[i] = math.NaN()
				continue
			}
			day[i] = price
		}
		out[d] = day
	}
	return out
}

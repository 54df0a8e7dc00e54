// Command analyze reads an S-box from a file and prints its cryptanalysis
// report (C9, spec.md section 6).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kargakis/sboxlab/pkg/analysis"
	"github.com/kargakis/sboxlab/pkg/fsutil"
	"github.com/kargakis/sboxlab/pkg/serialize"
)

var (
	sboxPath = flag.String("sbox", "", "Path to the S-box file (256 byte tokens, decimal or 0x hex)")
	compare  = flag.String("compare", "", "Optional second S-box file; if set, prints a Compare report instead")
)

func main() {
	flag.Parse()

	if *sboxPath == "" {
		fmt.Println("Missing required flag -sbox")
		os.Exit(1)
	}

	fsys, err := fsutil.Get(fsutil.OsType)
	if err != nil {
		fmt.Printf("Cannot select filesystem: %v\n", err)
		os.Exit(1)
	}

	s, err := serialize.ReadSBoxFile(fsys, *sboxPath)
	if err != nil {
		fmt.Printf("Cannot read S-box: %v\n", err)
		os.Exit(1)
	}

	if *compare == "" {
		printReport(analysis.Analyze(s))
		return
	}

	other, err := serialize.ReadSBoxFile(fsys, *compare)
	if err != nil {
		fmt.Printf("Cannot read comparison S-box: %v\n", err)
		os.Exit(1)
	}
	ra, rb, delta := analysis.Compare(s, other)
	fmt.Println("=== S-box A ===")
	printReport(ra)
	fmt.Println("=== S-box B ===")
	printReport(rb)
	fmt.Printf("Nonlinearity delta (B - A): %d\n", delta)
}

func printReport(r analysis.Report) {
	fmt.Printf("Nonlinearity:         %d\n", r.Nonlinearity)
	fmt.Printf("SAC score:            %.6f (max deviation %.6f)\n", r.SAC.Score, r.SAC.MaxDeviation)
	fmt.Printf("Differential unif.:   %d (DAP %.6f)\n", r.DifferentialUnif, r.DifferentialProb)
	fmt.Printf("LAP max bias:         %d (LAP %.6f)\n", r.LAPMaxBias, r.LAPProbability)
	fmt.Printf("Algebraic degree:     %d\n", r.AlgebraicDegree)
	fmt.Printf("Transparency order:   %.6f\n", r.TransparencyOrder)
	fmt.Printf("BIC-NL min/mean:      %d / %.6f\n", r.BICNL.Min, r.BICNL.Mean)
	fmt.Printf("BIC-SAC max/mean:     %.6f / %.6f\n", r.BICSAC.Max, r.BICSAC.Mean)
	fmt.Printf("Correlation immunity: %d\n", r.CorrelationImmunity)
	fmt.Printf("Balanced / Bijection: %v / %v\n", r.Balanced, r.Bijection)
	fmt.Printf("Security level:       %s\n", r.Security.Level)
	for _, s := range r.Security.Strengths {
		fmt.Printf("  + %s\n", s)
	}
	for _, w := range r.Security.Weaknesses {
		fmt.Printf("  - %s\n", w)
	}
}

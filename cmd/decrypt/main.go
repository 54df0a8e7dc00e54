// Command decrypt runs the AES-128 inverse cipher over a ciphertext block
// and key, printing the resulting plaintext and, optionally, the full
// 42-step trace (C7-C9, spec.md sections 4.8-4.9).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kargakis/sboxlab/pkg/analysis"
	"github.com/kargakis/sboxlab/pkg/fsutil"
	"github.com/kargakis/sboxlab/pkg/sbox"
	"github.com/kargakis/sboxlab/pkg/serialize"
)

var (
	ctPath   = flag.String("ct", "", "Path to the ciphertext block file (16 bytes, hex)")
	keyPath  = flag.String("key", "", "Path to the key file (16 bytes, hex)")
	sboxPath = flag.String("sbox", "", "Optional S-box file; defaults to the standard AES S-box")
	showStep = flag.Bool("trace", false, "Print every step of the decryption")
)

func main() {
	flag.Parse()

	if *ctPath == "" || *keyPath == "" {
		fmt.Println("Missing required flags -ct and -key")
		os.Exit(1)
	}

	fsys, err := fsutil.Get(fsutil.OsType)
	if err != nil {
		fmt.Printf("Cannot select filesystem: %v\n", err)
		os.Exit(1)
	}

	ct, err := serialize.ReadBlockFile(fsys, *ctPath)
	if err != nil {
		fmt.Printf("Cannot read ciphertext: %v\n", err)
		os.Exit(1)
	}
	key, err := serialize.ReadBlockFile(fsys, *keyPath)
	if err != nil {
		fmt.Printf("Cannot read key: %v\n", err)
		os.Exit(1)
	}

	s := sbox.StandardAES()
	if *sboxPath != "" {
		s, err = serialize.ReadSBoxFile(fsys, *sboxPath)
		if err != nil {
			fmt.Printf("Cannot read S-box: %v\n", err)
			os.Exit(1)
		}
	}

	rec, pt, err := analysis.DecryptTrace(ct, key, s)
	if err != nil {
		fmt.Printf("Cannot decrypt: %v\n", err)
		os.Exit(1)
	}

	if *showStep {
		for i, step := range rec.Steps() {
			fmt.Printf("[%2d/%2d] round=%-2d op=%-13s progress=%3d%% state=%x\n",
				i, rec.Len()-1, step.Round, step.Operation, step.Progress, step.State.Bytes())
		}
	}
	fmt.Println(serialize.FormatBlock(pt))
}

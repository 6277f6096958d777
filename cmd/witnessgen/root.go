// Command witnessgen reads a JSON fixture describing a batch of raw lookup
// and permutation arguments and builds the witness matrix and AIR for them,
// printing the trace height, column count and argument count and, when run
// with --verify, every constraint violation found.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/witness-air/trace"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "witnessgen <fixture.json>",
	Short: "Build a log-derivative lookup / permutation witness from a JSON fixture",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

var verify bool

func init() {
	rootCmd.Flags().BoolVar(&verify, "verify", false, "re-evaluate the AIR against the built witness and report any violation")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	fx, err := readFixture(args[0])
	if err != nil {
		return err
	}

	alpha, err := decodeChallenge(fx.Alpha)
	if err != nil {
		return fmt.Errorf("alpha: %w", err)
	}

	delta, err := decodeChallenge(fx.Delta)
	if err != nil {
		return fmt.Errorf("delta: %w", err)
	}

	batch := &trace.Batch{Alpha: alpha, Delta: delta, Log: log.StandardLogger()}

	for _, lj := range fx.Lookups {
		l, err := lj.decode()
		if err != nil {
			return fmt.Errorf("lookup %s: %w", lj.Handle, err)
		}

		batch.Lookups = append(batch.Lookups, l)
	}

	for _, pj := range fx.Permutations {
		p, err := pj.decode()
		if err != nil {
			return fmt.Errorf("permutation %s: %w", pj.Handle, err)
		}

		batch.Permutations = append(batch.Permutations, p)
	}

	result, err := batch.Run()
	if err != nil {
		return err
	}

	fmt.Printf("height=%d columns=%d arguments=%d\n",
		result.Matrix.Height, result.Matrix.Width(), len(result.AIR.Configs()))

	if verbose {
		fmt.Print(trace.Describe(result.AIR))
	}

	if verify {
		d := trace.Evaluate(result.AIR, result.Matrix, alpha, delta)
		if d.Ok() {
			fmt.Println("verify: ok")
			return nil
		}

		for _, f := range d.Failures() {
			fmt.Printf("verify: FAIL %s at row %d: %s\n", f.Name, f.Row, f.Value)
		}

		os.Exit(1)
	}

	return nil
}

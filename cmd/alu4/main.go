// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ezrec/alu4/alu"
	"github.com/ezrec/alu4/bench"
	"github.com/ezrec/alu4/io"
)

func main() {
	var verbose bool
	var dump string
	var input string
	var output string

	var rootCmd = &cobra.Command{
		Use:   "alu4",
		Short: "4-bit ALU core simulator",
		Long: `Simulates the alu4 processing core: four operand registers loaded
from an 8-bit bus, sixteen kernels selected by opcode, and a two-nibble
output latch.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")

	var runCmd = &cobra.Command{
		Use:   "run FILE...",
		Short: "Run stimulus scripts, checking every expectation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, name := range args {
				script, err := os.ReadFile(name)
				if err != nil {
					return err
				}

				bn := bench.NewBench()
				bn.Verbose = verbose
				err = bn.Load(string(script))
				if err != nil {
					return fmt.Errorf("%v: %w", name, err)
				}

				if len(dump) != 0 {
					err = dumpTape(dump, bn)
					if err != nil {
						return err
					}
				}

				report, _ := bn.Run()
				failed += summarize(name, report)
			}

			if failed != 0 {
				return fmt.Errorf("%d checks failed", failed)
			}

			return nil
		},
	}
	runCmd.Flags().StringVarP(&dump, "tape", "t", "", "Write the stimulus of the last script as a pin tape")

	var evalCmd = &cobra.Command{
		Use:   "eval A B C D OP",
		Short: "Evaluate a single opcode on a freshly reset core",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			var reg [4]alu.Nibble
			for n := range reg {
				value, err := strconv.ParseInt(args[n], 0, 64)
				if err != nil {
					return err
				}
				reg[n], err = alu.MakeNibble(int(value))
				if err != nil {
					return err
				}
			}

			op, err := alu.ParseOpcode(args[4])
			if err != nil {
				return err
			}

			core := alu.NewCore()
			core.Verbose = verbose
			core.Step(alu.Input{Control: alu.MakeControl(alu.OP_NOP, alu.LOAD_AB), Bus: alu.Pack(reg[0], reg[1]), Enable: true})
			core.Step(alu.Input{Control: alu.MakeControl(alu.OP_NOP, alu.LOAD_CD), Bus: alu.Pack(reg[2], reg[3]), Enable: true})
			out := core.Step(alu.Input{Control: alu.MakeControl(op, alu.LOAD_NONE), Enable: true})

			if verbose {
				fmt.Print(core.String())
			}
			fmt.Printf("%v: uo_out=0x%02x M=%d N=%d\n", op, out, core.M, core.N)

			return nil
		},
	}

	var goldenCmd = &cobra.Command{
		Use:   "golden",
		Short: "Run the reference vectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bn := bench.NewBench()
			bn.Verbose = verbose
			err := bn.Load(bench.GoldenScript)
			if err != nil {
				return err
			}

			report, _ := bn.Run()
			if summarize("golden", report) != 0 {
				return bench.ErrMismatch
			}

			return nil
		},
	}

	var tapeCmd = &cobra.Command{
		Use:   "tape",
		Short: "Stream a pin tape through the core",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tape := &io.Tape{}

			if input == "-" {
				tape.Input = os.Stdin
			} else {
				inf, err := os.Open(input)
				if err != nil {
					return err
				}
				defer inf.Close()
				tape.Input = inf
			}

			if output == "-" {
				tape.Output = os.Stdout
			} else {
				ouf, err := os.Create(output)
				if err != nil {
					return err
				}
				defer ouf.Close()
				tape.Output = ouf
			}

			bn := bench.NewBench()
			bn.Verbose = verbose
			err := bn.Stream(tape)
			if err != nil {
				return err
			}

			return tape.Err()
		},
	}
	tapeCmd.Flags().StringVarP(&input, "input", "i", "-", "Tape input")
	tapeCmd.Flags().StringVarP(&output, "output", "o", "-", "Tape output")

	rootCmd.AddCommand(runCmd, evalCmd, goldenCmd, tapeCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}

// summarize prints a report, and returns the number of failures.
func summarize(name string, report bench.Report) int {
	for _, fail := range report.Failures {
		fmt.Printf("%v: %v\n", name, &fail)
	}
	fmt.Printf("%v: %d/%d checks passed\n", name, report.Passed, report.Checks)

	return len(report.Failures)
}

// dumpTape writes the stimulus of a loaded bench program as a pin tape.
func dumpTape(name string, bn *bench.Bench) (err error) {
	ouf, err := os.Create(name)
	if err != nil {
		return
	}
	defer func() {
		cerr := ouf.Close()
		if err == nil {
			err = cerr
		}
	}()

	tape := &io.Tape{Output: ouf}
	err = tape.Record(bn.Program.Inputs())

	return
}

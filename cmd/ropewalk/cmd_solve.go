package main

import (
	"github.com/spf13/cobra"

	"ropewalk/internal/config"
	"ropewalk/internal/solve"
)

// solveCmd prints the visited count for every input and chain length
var solveCmd = &cobra.Command{
	Use:   "solve [files...]",
	Short: "Count the tail's distinct positions for each input",
	Long: `Reads one movement log per file (standard input when no file or "-" is
given) and prints one line per configured chain length:

  input.txt part1 (N=2): 13
  input.txt part2 (N=10): 1

Files are solved concurrently; output follows argument order.`,
	RunE: runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	parts := cfg.Parts
	if s, _ := cmd.Flags().GetString("parts"); s != "" {
		p, err := config.ParseParts(s)
		if err != nil {
			return err
		}
		parts = p
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	solver := solve.New(parts, parser(), logger)
	solver.Stdin = cmd.InOrStdin()
	results, err := solver.SolveFiles(commandContext(cmd), paths)
	if err != nil {
		return err
	}
	return solve.Format(cmd.OutOrStdout(), results...)
}

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/blockfield/arcade/internal/about"
)

var flagLength int

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Compare bubble sort and insertion sort on a random array",
	Long: `Generate a random array, sort copies of it with bubble sort and
insertion sort, and report which one was faster. Arrays longer than
10 elements are not printed.

Examples:
  arcade sort
  arcade sort --length 1000
  arcade sort --seed 7`,
	Args: cobra.NoArgs,
	RunE: runSort,
}

var guessCmd = &cobra.Command{
	Use:   "guess",
	Short: "Guess the result of 5π·ln(B) / (sin(A) + 1)",
	Long: `Enter two numbers A and B, then guess the value of
5π·ln(B) / (sin(A) + 1) within 0.0001. You have three attempts.`,
	Args: cobra.NoArgs,
	RunE: runGuess,
}

var authorCmd = &cobra.Command{
	Use:   "author",
	Short: "Show author information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := io.WriteString(cmd.OutOrStdout(), about.Text())
		return err
	},
}

func init() {
	sortCmd.Flags().IntVar(&flagLength, "length", 0, "Array length (default from config)")
}

func runSort(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("length") && flagLength <= 0 {
		return fmt.Errorf("--length must be positive, got %d", flagLength)
	}

	c, done := newConsole(cmd)
	defer done()
	if flagLength > 0 {
		c.SetSortLength(flagLength)
	}
	return c.RunSort()
}

func runGuess(cmd *cobra.Command, _ []string) error {
	c, done := newConsole(cmd)
	defer done()

	err := c.PlayGuess()
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

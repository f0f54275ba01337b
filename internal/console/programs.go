package console

import (
	"fmt"
	"strings"

	"github.com/blockfield/arcade/internal/guess"
	"github.com/blockfield/arcade/internal/sorting"
	"github.com/blockfield/arcade/internal/storage"
)

// PlayGuess runs one round of the guessing game.
func (c *Console) PlayGuess() error {
	fmt.Fprintln(c.out, "--- Guess the result ---")

	a, err := c.readNumber("Enter number A:")
	if err != nil {
		return err
	}
	b, err := c.readNumber("Enter number B:")
	if err != nil {
		return err
	}

	session := guess.NewSession(guess.Answer(a, b), c.guess.Attempts, c.guess.Tolerance)
	fmt.Fprintf(c.out, "Guess the result of the calculation. You have %d attempts.\n", session.Attempts())

	for !session.Over() {
		x, err := c.readNumber("Enter your answer:")
		if err != nil {
			return err
		}
		out := session.Guess(x)
		if out.Correct {
			fmt.Fprintf(c.out, "Congratulations! You guessed the correct answer: %v\n", session.Answer())
			break
		}
		fmt.Fprintf(c.out, "Wrong. Attempts left: %d\n", out.Remaining)
	}
	if !session.Won() {
		fmt.Fprintf(c.out, "You lost! The correct answer: %v\n", session.Answer())
	}

	c.logger.Info("guess round finished", "won", session.Won(), "attempts", session.Used())
	c.recordGuess(session)
	return nil
}

// readNumber prompts once and re-reads until the line parses.
func (c *Console) readNumber(prompt string) (float64, error) {
	fmt.Fprintln(c.out, prompt)
	for {
		line, err := c.in.ReadLine()
		if err != nil {
			return 0, err
		}
		v, err := guess.ParseNumber(line)
		if err == nil {
			return v, nil
		}
		c.logger.Debug("rejected number", "input", strings.TrimSpace(line))
		fmt.Fprintln(c.out, "Enter a number:")
	}
}

func (c *Console) recordGuess(s *guess.Session) {
	if c.store == nil {
		return
	}
	if _, err := c.store.SaveGuess(storage.GuessEntry{Correct: s.Won(), Attempts: s.Used()}); err != nil {
		c.logger.Warn("cannot record guess round", "err", err)
		return
	}
	played, won, err := c.store.GuessRecord()
	if err != nil {
		c.logger.Warn("cannot read guess record", "err", err)
		return
	}
	fmt.Fprintf(c.out, "Rounds won this session: %d of %d\n", won, played)
}

// RunSort generates a random array and compares the two sorts on it.
func (c *Console) RunSort() error {
	data := sorting.RandomArray(c.rng, c.sort.Length, c.sort.Min, c.sort.Max)
	report := sorting.Compare(data)
	if _, err := report.WriteTo(c.out); err != nil {
		return fmt.Errorf("console: cannot print sort report: %w", err)
	}

	c.logger.Info("sort benchmark",
		"length", len(data),
		"bubble", report.Bubble.Elapsed,
		"insertion", report.Insertion.Elapsed,
		"faster", report.Faster,
	)

	if c.store != nil {
		_, err := c.store.SaveBenchmark(storage.BenchmarkEntry{
			Length:    len(data),
			Bubble:    report.Bubble.Elapsed,
			Insertion: report.Insertion.Elapsed,
			Winner:    string(report.Faster),
		})
		if err != nil {
			c.logger.Warn("cannot record benchmark", "err", err)
		}
	}
	return nil
}

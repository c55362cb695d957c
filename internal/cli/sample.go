package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mkarev/whichmore/internal/pool"
	"github.com/spf13/cobra"
)

var sampleCount int

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample <pool.json>",
	Short: "Print random questions from a pool",
	Long: `Sample loads a generated pool and prints a few random questions,
answers included. Useful as a smoke test before shipping a pool to the quiz.

Example:
  whichmore sample data/questions/pool.json
  whichmore sample data/questions/pool.json -n 10`,
	Args: cobra.ExactArgs(1),
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().IntVarP(&sampleCount, "count", "n", 5, "number of questions to print")
}

func runSample(cmd *cobra.Command, args []string) error {
	p, err := pool.Load(args[0])
	if err != nil {
		return err
	}
	if p.Len() == 0 {
		return fmt.Errorf("pool is empty")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i, q := range p.Sample(rng, sampleCount) {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("[%s] %s\n", q.Category, q.Question)
		fmt.Printf("  A) %s\n", q.OptionA.Name)
		fmt.Printf("  B) %s\n", q.OptionB.Name)
		fmt.Printf("  Answer: %s. %s\n", q.CorrectAnswer, q.Explanation)
	}
	return nil
}

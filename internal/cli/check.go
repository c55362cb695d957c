package cli

import (
	"fmt"
	"os"

	"github.com/mkarev/whichmore/internal/pool"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <pool.json>",
	Short: "Verify a question pool against the consumer contract",
	Long: `Check loads a generated pool and verifies every question:
- options are in canonical (lexicographic) order
- no question pairs a place with itself
- the answer key matches the embedded values (ties favor A)
- question IDs are unique

Exit status is non-zero when any violation is found.

Example:
  whichmore check data/questions/pool.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	p, err := pool.Load(args[0])
	if err != nil {
		return err
	}

	violations := p.Verify()
	for _, v := range violations {
		fmt.Fprintf(os.Stderr, "✗ %s\n", v)
	}
	if len(violations) > 0 {
		return fmt.Errorf("%d of %d questions violate the contract", len(violations), p.Len())
	}

	fmt.Printf("✓ %d questions OK\n", p.Len())
	return nil
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/abiram/tonedrill/internal/curriculum"
	"github.com/abiram/tonedrill/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()

		cats, err := st.CategoryAccuracy(ctx)
		if err != nil {
			return fmt.Errorf("category accuracy: %w", err)
		}
		if len(cats) == 0 {
			fmt.Println("No practice history yet. Run `tonedrill play` first.")
			return nil
		}

		fmt.Println("Accuracy by category")
		fmt.Printf("%-16s  %8s  %8s  %8s\n", "Category", "Asked", "Correct", "Accuracy")
		fmt.Println(strings.Repeat("─", 46))
		for _, c := range cats {
			fmt.Printf("%-16s  %8d  %8d  %7.1f%%\n",
				c.Category, c.Attempts, c.Correct, c.Accuracy)
		}

		weakest, err := st.WeakestItems(ctx, 3, 10)
		if err != nil {
			return fmt.Errorf("weakest items: %w", err)
		}
		if len(weakest) > 0 {
			fmt.Println("\nWeakest items (3+ attempts)")
			fmt.Printf("%-28s  %8s  %8s\n", "Item", "Asked", "Accuracy")
			fmt.Println(strings.Repeat("─", 48))
			for _, w := range weakest {
				fmt.Printf("%-28s  %8d  %7.1f%%\n",
					w.FullDescription, w.Attempts, w.Accuracy)
			}
		}

		sessions, err := st.RecentSessions(ctx, 10)
		if err != nil {
			return fmt.Errorf("recent sessions: %w", err)
		}
		if len(sessions) > 0 {
			fmt.Println("\nRecent sessions")
			fmt.Printf("%-16s  %-30s  %5s  %8s  %s\n", "Date", "Level", "Asked", "Accuracy", "")
			fmt.Println(strings.Repeat("─", 70))
			for _, s := range sessions {
				name := s.LevelID
				if l, err := curriculum.GetLevel(s.LevelID); err == nil {
					name = l.Name
				}
				passed := ""
				if s.Advanced {
					passed = "passed"
				}
				fmt.Printf("%-16s  %-30s  %5d  %7.1f%%  %s\n",
					s.StartedAt.Format("2006-01-02 15:04"), name,
					s.TotalQuestions, s.Accuracy, passed)
			}
		}

		return nil
	},
}

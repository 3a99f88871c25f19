package cmd

import (
	"fmt"
	"strings"

	"github.com/abiram/tonedrill/internal/curriculum"
	"github.com/abiram/tonedrill/internal/theory"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Browse the level catalog",
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels (optionally filtered by segment or category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		segment, _ := cmd.Flags().GetString("segment")
		category, _ := cmd.Flags().GetString("category")

		var levels []curriculum.Level

		switch {
		case segment != "" && category != "":
			return fmt.Errorf("use --segment or --category, not both")
		case segment != "":
			for _, seg := range curriculum.Segments() {
				if seg.ID == segment {
					levels = seg.Levels
					break
				}
			}
			if len(levels) == 0 {
				return fmt.Errorf("no levels found for segment %q", segment)
			}
		case category != "":
			for _, l := range curriculum.AllLevels() {
				if l.Category == theory.Category(category) {
					levels = append(levels, l)
				}
			}
			if len(levels) == 0 {
				return fmt.Errorf("no levels found for category %q", category)
			}
		default:
			levels = curriculum.AllLevels()
		}

		// Header.
		fmt.Printf("%-26s  %-34s  %-14s  %5s  %5s\n",
			"ID", "Name", "Category", "Items", "Pass")
		fmt.Println(strings.Repeat("─", 92))

		for _, l := range levels {
			name := l.Name
			if len(name) > 34 {
				name = name[:31] + "..."
			}
			fmt.Printf("%-26s  %-34s  %-14s  %5d  %4.0f%%\n",
				l.ID, name, l.Category, len(l.Items), l.UnlockThreshold)
		}

		fmt.Printf("\n%d levels\n", len(levels))
		return nil
	},
}

func init() {
	levelsListCmd.Flags().String("segment", "", "Filter by segment (e.g. intervals)")
	levelsListCmd.Flags().String("category", "", "Filter by category (e.g. triad, mode)")

	levelsCmd.AddCommand(levelsListCmd)
}

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/abiram/tonedrill/internal/audio"
	"github.com/abiram/tonedrill/internal/curriculum"
	"github.com/abiram/tonedrill/internal/quizgen"
	"github.com/abiram/tonedrill/internal/theory"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated questions for a level (no database)",
	Long: `Generate and interactively answer questions for a specific level.

This is a stateless developer tool — no database, no progress tracking.
The rendered notes are printed alongside each question, so it is useful
for checking stimulus construction and answer sets, not for ear practice.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("level", "", "Level ID (required)")
	previewCmd.Flags().String("key", "", "Session key, sharp names only (e.g. C, C#, D); random if unset")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	_ = previewCmd.MarkFlagRequired("level")
}

func runPreview(cmd *cobra.Command, args []string) error {
	levelID, _ := cmd.Flags().GetString("level")
	keyVal, _ := cmd.Flags().GetString("key")
	count, _ := cmd.Flags().GetInt("count")

	level, err := curriculum.GetLevel(levelID)
	if err != nil {
		var ids []string
		for _, l := range curriculum.AllLevels() {
			ids = append(ids, l.ID)
		}
		return fmt.Errorf("unknown level %q: known levels are %s", levelID, strings.Join(ids, ", "))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var key theory.PitchClass
	if keyVal != "" {
		pc, ok := theory.ParsePitch(keyVal)
		if !ok {
			return fmt.Errorf("invalid key %q: use sharp names like C, C#, D", keyVal)
		}
		key = pc
	} else {
		key = theory.PitchClass(rng.Intn(12))
	}

	gen := quizgen.New(audio.NewNotationPlayer(), rng)
	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	fmt.Printf("Level: %s — %s (key of %s)\n", level.ID, level.Name, key)
	fmt.Printf("Generating %d questions...\n\n", count)

	var correct int

	for i := 1; i <= count; i++ {
		q, err := gen.Next(ctx, level, key)
		if err != nil {
			fmt.Printf("Question %d: generation failed: %v\n\n", i, err)
			continue
		}

		fmt.Printf("── Question %d/%d ──\n", i, count)
		fmt.Printf("Notes: %s\n", strings.Join(q.PlayedNotes, " "))
		for j, c := range q.Choices {
			fmt.Printf("  %d) %s\n", j+1, curriculum.DisplayName(c))
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		idx, err := strconv.Atoi(answer)
		if err != nil || idx < 1 || idx > len(q.Choices) {
			fmt.Printf("(invalid choice %q)\n\n", answer)
			continue
		}

		if quizgen.CheckAnswer(q.Choices[idx-1], q) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", curriculum.DisplayName(q.CorrectAnswer))
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, count)
	return nil
}

package cmd

import (
	"fmt"

	"github.com/sagara/kotoba/internal/catalog"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		userID := resolveUser(cmd)
		stats, goal, ok, err := st.StatsRepo().Load(cmd.Context(), userID)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("No statistics for user %s yet. Complete a session first.\n", userID)
			return nil
		}

		fmt.Printf("User:               %s\n", userID)
		fmt.Printf("Total XP:           %d\n", stats.TotalXP)
		fmt.Printf("Current streak:     %d day(s)\n", stats.CurrentStreak)
		fmt.Printf("Longest streak:     %d day(s)\n", stats.LongestStreak)
		fmt.Printf("Lessons completed:  %d\n", stats.LessonsCompleted)
		fmt.Printf("Time spent:         %d min\n", stats.TimeSpentMinutes())
		fmt.Printf("Words learned:      %d\n", stats.WordsLearned)
		for _, script := range []catalog.Script{catalog.ScriptHiragana, catalog.ScriptKatakana, catalog.ScriptKanji} {
			if n := stats.CharactersLearned[script]; n > 0 {
				fmt.Printf("  %-17s %d\n", script+":", n)
			}
		}
		fmt.Printf("Accuracy:           %.0f%%\n", stats.AccuracyRate*100)
		fmt.Printf("Daily goal:         %d/%d min", goal.CompletedMinutes, goal.TargetMinutes)
		if goal.Met() {
			fmt.Print("  ✓")
		}
		fmt.Println()
		return nil
	},
}

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sagara/kotoba/internal/catalog"
	"github.com/sagara/kotoba/internal/progress"
	"github.com/sagara/kotoba/internal/scheduler"
	"github.com/sagara/kotoba/internal/session"
	"github.com/sagara/kotoba/internal/strength"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Run a review session",
	Long:  "Starts a review session, prompts for each queued item and records the results. Type 'quit' to abandon the session.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		cat, err := catalog.NewMemory(catalog.BuiltinItems())
		if err != nil {
			return fmt.Errorf("build catalog: %w", err)
		}

		coord := session.NewCoordinator(session.Options{
			Records:   st.RecordRepo(),
			Events:    st.EventRepo(),
			Stats:     st.StatsRepo(),
			Scheduler: scheduler.New(st.RecordRepo(), st.EventRepo(), cat, scheduler.DefaultConfig()),
			Catalog:   cat,
			Model:     strength.NewModel(strength.DefaultParams()),
			Agg:       progress.NewAggregator(progress.DefaultParams()),
			Mix:       scheduler.DefaultMix(),
		})

		userID := resolveUser(cmd)
		maxItems, _ := cmd.Flags().GetInt("max")

		sess, err := coord.Start(cmd.Context(), userID, maxItems)
		if err != nil {
			var empty *session.EmptyQueueError
			if errors.As(err, &empty) {
				fmt.Println("Nothing to review. Come back later.")
				return nil
			}
			return err
		}

		fmt.Printf("Session of %d item(s). Type the meaning or reading; 'quit' to abandon.\n\n", len(sess.Queue))
		reader := bufio.NewReader(os.Stdin)

		for _, entry := range sess.Queue {
			item, ok := cat.Item(entry.ItemID)
			if !ok {
				continue
			}
			fmt.Printf("  %s", item.Japanese)
			if entry.New {
				fmt.Printf("  (new: %s", item.Meaning)
				if item.Reading != "" {
					fmt.Printf(", read %q", item.Reading)
				}
				fmt.Print(")")
			}
			fmt.Print("\n  > ")

			started := time.Now()
			line, err := reader.ReadString('\n')
			if err != nil {
				if abErr := coord.Abandon(cmd.Context(), userID); abErr != nil {
					return abErr
				}
				fmt.Println("\nSession abandoned.")
				return nil
			}
			answer := strings.TrimSpace(line)
			if strings.EqualFold(answer, "quit") {
				if err := coord.Abandon(cmd.Context(), userID); err != nil {
					return err
				}
				fmt.Println("Session abandoned. Nothing was counted.")
				return nil
			}

			res, err := coord.SubmitAnswer(cmd.Context(), userID, entry.ItemID, answer, 0, time.Since(started))
			if err != nil {
				return err
			}
			if res.Correct {
				fmt.Printf("  Correct. Strength %d -> %d", res.StrengthBefore, res.StrengthAfter)
				if res.NewlyMastered {
					fmt.Print("  (mastered!)")
				}
				fmt.Println()
			} else {
				fmt.Printf("  Not quite: %s", item.Meaning)
				if item.Reading != "" {
					fmt.Printf(" (%s)", item.Reading)
				}
				fmt.Printf(". Strength %d -> %d, again tomorrow.\n", res.StrengthBefore, res.StrengthAfter)
			}
			fmt.Println()
		}

		stats, goal, err := coord.Complete(cmd.Context(), userID)
		if err != nil {
			var partial *session.PartialPersistError
			if errors.As(err, &partial) {
				fmt.Printf("Warning: %d item(s) could not be saved and were excluded: %s\n",
					len(partial.FailedItemIDs), strings.Join(partial.FailedItemIDs, ", "))
			} else {
				return err
			}
		}

		fmt.Printf("Session complete. Total XP: %d, streak: %d day(s), goal: %d/%d min",
			stats.TotalXP, stats.CurrentStreak, goal.CompletedMinutes, goal.TargetMinutes)
		if goal.Met() {
			fmt.Print("  ✓")
		}
		fmt.Println()
		return nil
	},
}

func init() {
	reviewCmd.Flags().Int("max", 10, "Maximum session size")
}

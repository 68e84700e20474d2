package cmd

import (
	"fmt"
	"time"

	"github.com/sagara/kotoba/internal/catalog"
	"github.com/sagara/kotoba/internal/scheduler"
	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show the current review queue",
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

		maxItems, _ := cmd.Flags().GetInt("max")
		sched := scheduler.New(st.RecordRepo(), st.EventRepo(), cat, scheduler.DefaultConfig())
		queue, err := sched.BuildQueue(cmd.Context(), resolveUser(cmd), maxItems, scheduler.DefaultMix(), time.Now())
		if err != nil {
			return err
		}
		if len(queue) == 0 {
			fmt.Println("Nothing due. Come back later.")
			return nil
		}

		for i, e := range queue {
			label := ""
			if e.New {
				label = "  (new)"
			}
			japanese := e.ItemID
			if it, ok := cat.Item(e.ItemID); ok {
				japanese = it.Japanese
			}
			fmt.Printf("%2d. %-12s %s%s\n", i+1, e.ItemType, japanese, label)
		}
		return nil
	},
}

func init() {
	dueCmd.Flags().Int("max", 10, "Maximum queue size")
}

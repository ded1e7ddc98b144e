package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lazypower/pond/internal/engine"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Remove expired event instances",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, log, err := openStack()
		if err != nil {
			return err
		}
		defer db.Close()
		defer log.Sync()

		eng := engine.New(db, log)
		removed, err := eng.CleanupExpired()
		if err != nil {
			return err
		}
		fmt.Printf("removed %d expired events\n", removed)
		return nil
	},
}

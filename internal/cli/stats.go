package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lazypower/pond/internal/catalog"
	"github.com/lazypower/pond/internal/engine"
)

var statsCmd = &cobra.Command{
	Use:   "stats <group> <user>",
	Short: "Show a user's ledger and collection",
	Args:  cobra.ExactArgs(2),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	_, db, log, err := openStack()
	if err != nil {
		return err
	}
	defer db.Close()
	defer log.Sync()

	groupID, userID := args[0], args[1]
	day := engine.LogicalDate(time.Now())

	acct, err := db.GetAccount(groupID, userID, day)
	if err != nil {
		return err
	}
	if acct == nil {
		fmt.Println("no account")
		return nil
	}

	fmt.Printf("%s (%s/%s)\n", acct.Nickname, groupID, userID)
	fmt.Printf("  karma: today %d, total %d\n", acct.TodayKarma, acct.TotalKarma)
	fmt.Printf("  draws: %d, bait today: %d\n", acct.TotalDraws, acct.BaitCount)
	if len(acct.UnlockedTitles) > 0 {
		fmt.Printf("  titles: %v\n", acct.UnlockedTitles)
	}

	eng := engine.New(db, log)
	summary, err := eng.Collection(groupID, userID)
	if err != nil {
		return err
	}
	fmt.Printf("  collection: %d/%d", summary.Unlocked, summary.Total)
	for _, r := range catalog.Rarities {
		fmt.Printf("  %s %d", r, summary.ByRarity[r])
	}
	fmt.Println()
	fmt.Printf("  dark %d/%d, shiny %d/%d\n",
		summary.DarkCount, summary.DarkTotal, summary.ShinyCount, summary.ShinyTotal)
	return nil
}

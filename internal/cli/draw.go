package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lazypower/pond/internal/engine"
)

var drawNickname string

var drawCmd = &cobra.Command{
	Use:   "draw <group> <user>",
	Short: "Run one draw against the local database",
	Args:  cobra.ExactArgs(2),
	RunE:  runDraw,
}

func init() {
	drawCmd.Flags().StringVar(&drawNickname, "nickname", "", "display name for the user")
}

func runDraw(cmd *cobra.Command, args []string) error {
	_, db, log, err := openStack()
	if err != nil {
		return err
	}
	defer db.Close()
	defer log.Sync()

	groupID, userID := args[0], args[1]
	nickname := drawNickname
	if nickname == "" {
		nickname = userID
	}

	eng := engine.New(db, log)
	res, err := eng.Draw(groupID, userID, nickname)
	switch {
	case errors.Is(err, engine.ErrBlocked):
		fmt.Println(res.Message)
		return nil
	case errors.Is(err, engine.ErrUnlucky):
		fmt.Println(res.Message)
		fmt.Printf("karma %+d (today %d, total %d)\n", res.KarmaDelta, res.TodayKarma, res.TotalKarma)
		return nil
	case err != nil:
		return err
	}

	if res.EventMessage != "" {
		fmt.Println(res.EventMessage)
	}
	if !res.Success {
		fmt.Println(res.Message)
		return nil
	}

	printCatch("caught", res.Catch)
	if res.Extra != nil {
		printCatch("extra", res.Extra)
	}
	fmt.Printf("karma %+d (today %d, total %d)\n", res.KarmaDelta, res.TodayKarma, res.TotalKarma)
	for _, title := range res.NewTitles {
		fmt.Printf("title unlocked: %s\n", title)
	}
	return nil
}

func printCatch(label string, c *engine.Catch) {
	marks := ""
	if c.IsNew {
		marks += " NEW"
	}
	if c.IsRecord {
		marks += " RECORD"
	}
	fmt.Printf("%s: %s %s [%s] %.1fcm%s\n",
		label, c.Species.Emoji, c.Species.Name, c.Species.Rarity, c.Length, marks)
}

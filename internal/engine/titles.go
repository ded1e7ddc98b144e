package engine

import (
	"fmt"
)

type titleRule struct {
	Threshold int64
	Title     string
}

// Title unlock thresholds. Unlocks are permanent even when the triggering
// total later resets or drops.
var (
	todayKarmaTitles = []titleRule{
		{100, "Karma Novice"},
		{500, "Digital Hermit"},
		{1000, "Quantum Bodhisattva"},
	}
	totalKarmaTitles = []titleRule{
		{1000, "Pond Disciple"},
		{2000, "Cyber Arhat"},
		{5000, "Machine Ascendant"},
		{10000, "Cyber Buddha"},
	}
	collectionTitles = []titleRule{
		{50, "Seasoned Angler"},
		{200, "Cyber Fish King"},
	}
)

// CheckTitles unlocks every title whose threshold the account has crossed
// and returns the newly unlocked ones.
func (e *Engine) CheckTitles(groupID, userID, day string) ([]string, error) {
	acct, err := e.DB.GetAccount(groupID, userID, day)
	if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}
	if acct == nil {
		return nil, nil
	}

	var fresh []string
	unlock := func(title string) error {
		ok, err := e.DB.UnlockTitle(groupID, userID, title)
		if err != nil {
			return err
		}
		if ok {
			fresh = append(fresh, title)
		}
		return nil
	}

	for _, rule := range todayKarmaTitles {
		if acct.TodayKarma >= rule.Threshold {
			if err := unlock(rule.Title); err != nil {
				return nil, err
			}
		}
	}
	for _, rule := range totalKarmaTitles {
		if acct.TotalKarma >= rule.Threshold {
			if err := unlock(rule.Title); err != nil {
				return nil, err
			}
		}
	}

	count, err := e.DB.CollectionCount(groupID, userID)
	if err != nil {
		return nil, err
	}
	for _, rule := range collectionTitles {
		if int64(count) >= rule.Threshold {
			if err := unlock(rule.Title); err != nil {
				return nil, err
			}
		}
	}

	return fresh, nil
}

package engine

import (
	"fmt"
)

// BaitCost is the karma price of one bait toss.
const BaitCost = 10

// BaitResult is the outcome of a bait toss.
type BaitResult struct {
	Count        int   `json:"count"`
	CostPaid     int64 `json:"cost_paid"`
	BonusPercent int   `json:"bonus_percent"`
}

// AddBait charges the bait cost (waived by a free-bait flag) and bumps the
// daily bait counter. Returns ErrInsufficientFunds when lifetime karma
// cannot cover the cost.
func (e *Engine) AddBait(groupID, userID, nickname string) (*BaitResult, error) {
	key := accountKey(groupID, userID)
	unlock := e.keys.Lock(key)
	defer unlock()

	day := LogicalDate(e.now())

	acct, err := e.DB.GetOrCreateAccount(groupID, userID, nickname, day)
	if err != nil {
		return nil, fmt.Errorf("load account: %w", err)
	}

	free := e.personal.consumeFreeBait(key)
	var cost int64
	if !free {
		cost = BaitCost
		if acct.TotalKarma < cost {
			return nil, ErrInsufficientFunds
		}
		if _, _, err := e.DB.UpdateKarma(groupID, userID, nickname, -cost, day); err != nil {
			return nil, fmt.Errorf("charge bait cost: %w", err)
		}
	}

	count, err := e.DB.IncrementBait(groupID, userID, day)
	if err != nil {
		return nil, fmt.Errorf("count bait: %w", err)
	}

	bonus := count * 2
	if bonus > 20 {
		bonus = 20
	}
	return &BaitResult{Count: count, CostPaid: cost, BonusPercent: bonus}, nil
}

// AdjustKarma applies a signed delta outside the draw flow, for moderation
// collaborators. Returns the new (today, total) totals.
func (e *Engine) AdjustKarma(groupID, userID, nickname string, delta int64) (int64, int64, error) {
	unlock := e.keys.Lock(accountKey(groupID, userID))
	defer unlock()

	day := LogicalDate(e.now())
	today, total, err := e.DB.UpdateKarma(groupID, userID, nickname, delta, day)
	if err != nil {
		return 0, 0, fmt.Errorf("adjust karma: %w", err)
	}
	return today, total, nil
}

// EnsureDailyValue returns the user's stable daily value, computing and
// caching it on first read of the logical day.
func (e *Engine) EnsureDailyValue(groupID, userID string) (int, error) {
	now := e.now()
	day := LogicalDate(now)

	acct, err := e.DB.GetAccount(groupID, userID, day)
	if err != nil {
		return 0, fmt.Errorf("load account: %w", err)
	}
	if acct != nil && acct.DailyValue != nil {
		return *acct.DailyValue, nil
	}

	value := DailyStableValue(userID, groupID, now)
	if err := e.DB.SetDailyValue(groupID, userID, value, day); err != nil {
		return 0, err
	}
	return value, nil
}

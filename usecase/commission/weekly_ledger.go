package commission

import (
	"github.com/radhian/commission-system/entity"
	"github.com/shopspring/decimal"
)

type Bucket struct {
	Week    int
	CashOut decimal.Decimal
}

func (b Bucket) Add(amount decimal.Decimal) Bucket {
	b.CashOut = b.CashOut.Add(amount)
	return b
}

// WeeklyLedger keeps the natural cash-out totals per user and week for a
// single batch. It is not safe for concurrent use.
type WeeklyLedger struct {
	buckets map[entity.UserID]map[int]Bucket
}

func NewWeeklyLedger() *WeeklyLedger {
	return &WeeklyLedger{
		buckets: make(map[entity.UserID]map[int]Bucket),
	}
}

// CashedOut returns the amount accumulated so far, zero for an unseen user or week.
func (l *WeeklyLedger) CashedOut(userID entity.UserID, week int) decimal.Decimal {
	return l.bucket(userID, week).CashOut
}

func (l *WeeklyLedger) Add(userID entity.UserID, week int, amount decimal.Decimal) {
	b := l.bucket(userID, week).Add(amount)
	l.buckets[userID][week] = b
}

func (l *WeeklyLedger) bucket(userID entity.UserID, week int) Bucket {
	weeks, ok := l.buckets[userID]
	if !ok {
		weeks = make(map[int]Bucket)
		l.buckets[userID] = weeks
	}

	b, ok := weeks[week]
	if !ok {
		b = Bucket{Week: week, CashOut: decimal.Zero}
		weeks[week] = b
	}
	return b
}

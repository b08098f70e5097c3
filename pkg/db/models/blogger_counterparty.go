package models

// BloggerCounterparty joins bloggers to the counterparties that can be paid
// for their placements.
type BloggerCounterparty struct {
	BloggerID      int64 `gorm:"column:blogger_id;primaryKey"`
	CounterpartyID int64 `gorm:"column:counterparty_id;primaryKey"`
}

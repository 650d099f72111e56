package collateral

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("collateral item not found")

type Status string

const (
	StatusPledged   Status = "PLEDGED"
	StatusReleased  Status = "RELEASED"
	StatusAuctioned Status = "AUCTIONED"
	StatusLost      Status = "LOST"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPledged, StatusReleased, StatusAuctioned, StatusLost:
		return true
	}
	return false
}

// Item is one pledged gold item. Valuation is frozen at pledge time:
// TotalValue = WeightGrams * RateAtPledge, never recomputed against a live
// market rate.
type Item struct {
	ID          uint64  `gorm:"primaryKey;column:id" json:"-"`
	ItemID      string  `gorm:"size:32;uniqueIndex:ux_items_item_id_active" json:"item_id"`
	LoanID      uint64  `gorm:"index:idx_items_loan" json:"-"`
	ItemType    string  `gorm:"size:64" json:"item_type"`
	WeightGrams float64 `gorm:"type:decimal(10,3)" json:"weight_grams"`
	Purity      string  `gorm:"size:16" json:"purity"`
	RateAtPledge float64 `gorm:"type:decimal(18,2)" json:"rate_at_pledge"`
	TotalValue   float64 `gorm:"type:decimal(18,2)" json:"total_value"`
	Description  string  `gorm:"type:text" json:"description,omitempty"`
	Status       Status  `gorm:"type:enum('PLEDGED','RELEASED','AUCTIONED','LOST');default:'PLEDGED'" json:"status"`

	ReleasedToName  string     `gorm:"size:128" json:"released_to_name,omitempty"`
	ReleasedToPhone string     `gorm:"size:32" json:"released_to_phone,omitempty"`
	ReleaseNotes    string     `gorm:"type:text" json:"release_notes,omitempty"`
	ReleasedAt      *time.Time `gorm:"type:datetime" json:"released_at,omitempty"`
	ReleasedBy      string     `gorm:"size:32" json:"released_by,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy string         `gorm:"size:32" json:"-"`
}

func (Item) TableName() string { return "collateral_items" }

// ItemValue computes the frozen pledge valuation: weight * rate at pledge
// time, rounded to 2 decimal places.
func ItemValue(weightGrams, rateAtPledge float64) float64 {
	v := decimal.NewFromFloat(weightGrams).Mul(decimal.NewFromFloat(rateAtPledge))
	f, _ := v.Round(2).Float64()
	return f
}

// Summary is the read-side projection over a loan's items. It is a pure
// fold recomputed on every read, never persisted.
type Summary struct {
	TotalItems    int     `json:"total_items"`
	TotalWeight   float64 `json:"total_weight_grams"`
	TotalValue    float64 `json:"total_value"`
	PledgedItems  int     `json:"pledged_items"`
	ReleasedItems int     `json:"released_items"`
}

func Summarize(items []Item) Summary {
	var s Summary
	for _, it := range items {
		s.TotalItems++
		s.TotalWeight += it.WeightGrams
		s.TotalValue += it.TotalValue
		switch it.Status {
		case StatusPledged:
			s.PledgedItems++
		case StatusReleased:
			s.ReleasedItems++
		}
	}
	return s
}

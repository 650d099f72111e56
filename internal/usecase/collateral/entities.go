package collateral

import (
	domain "goldvault-backend/internal/domain/collateral"
)

type AddItemInput struct {
	LoanID       string  `json:"loan_id"`
	Actor        string  `json:"-"`
	ItemType     string  `json:"item_type"`
	WeightGrams  float64 `json:"weight_grams"`
	Purity       string  `json:"purity"`
	RateAtPledge float64 `json:"rate_at_pledge"`
	Description  string  `json:"description"`
}

// UpdateItemInput uses pointers so only supplied fields change. Valuation
// is recomputed when weight or rate changes; both remain frozen-at-pledge
// semantics because edits are only legal while the loan is PENDING.
type UpdateItemInput struct {
	ItemID       string   `json:"-"`
	Actor        string   `json:"-"`
	ItemType     *string  `json:"item_type"`
	WeightGrams  *float64 `json:"weight_grams"`
	Purity       *string  `json:"purity"`
	RateAtPledge *float64 `json:"rate_at_pledge"`
	Description  *string  `json:"description"`
}

type ReleaseItemInput struct {
	ItemID          string `json:"-"`
	Actor           string `json:"-"`
	ReleasedToName  string `json:"released_to_name"`
	ReleasedToPhone string `json:"released_to_phone"`
	Notes           string `json:"notes"`
}

type ReleaseAllInput struct {
	LoanID          string `json:"-"`
	Actor           string `json:"-"`
	ReleasedToName  string `json:"released_to_name"`
	ReleasedToPhone string `json:"released_to_phone"`
	Notes           string `json:"notes"`
}

// LoanItemsDTO is the read projection for one loan's custody position.
type LoanItemsDTO struct {
	LoanID  string         `json:"loan_id"`
	Summary domain.Summary `json:"summary"`
	Items   []domain.Item  `json:"items"`
}

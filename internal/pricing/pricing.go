// Package pricing maps selection sizes to flat price tiers.
package pricing

// Tier is a pricing band keyed by the maximum selection count it covers.
type Tier struct {
	MaxCount int
	Price    int
	Label    string
}

// Tiers is the fixed tier table, ascending by MaxCount. Maxima are strictly
// increasing; NextPackInfo relies on that to avoid a zero-width band.
var Tiers = []Tier{
	{MaxCount: 3, Price: 4000, Label: "Pack hasta 3 procesos"},
	{MaxCount: 5, Price: 6000, Label: "Pack hasta 5 procesos"},
	{MaxCount: 10, Price: 10000, Label: "Pack hasta 10 procesos"},
	{MaxCount: 15, Price: 13000, Label: "Pack hasta 15 procesos"},
}

// Result is the outcome of a price lookup. IsCustom marks counts beyond the
// last tier; callers must treat a nil *Result (count 0) as "no price yet",
// distinct from a custom quote.
type Result struct {
	Price    int    `json:"price"`
	PackName string `json:"packName"`
	IsCustom bool   `json:"isCustom"`
}

// Calculate returns the price tier for a selection of the given size, nil for
// an empty selection, or a custom-quote result past the last tier.
func Calculate(count int) *Result {
	if count == 0 {
		return nil
	}

	for _, tier := range Tiers {
		if count <= tier.MaxCount {
			return &Result{
				Price:    tier.Price,
				PackName: tier.Label,
				IsCustom: false,
			}
		}
	}

	return &Result{
		Price:    0,
		PackName: "Presupuesto personalizado",
		IsCustom: true,
	}
}

// NextPack describes progress toward the next tier boundary.
type NextPack struct {
	Remaining    int     `json:"remaining"`
	NextPackSize int     `json:"nextPackSize"`
	Progress     float64 `json:"progress"`
}

// NextPackInfo returns how far the given count is from the next tier, or nil
// once the count reaches the last tier's maximum. Progress is a 0-100
// percentage across the current band, resetting to 0 at each band's start.
func NextPackInfo(count int) *NextPack {
	last := Tiers[len(Tiers)-1]
	if count >= last.MaxCount {
		return nil
	}

	for i, tier := range Tiers {
		if count < tier.MaxCount {
			prevMax := 0
			if i > 0 {
				prevMax = Tiers[i-1].MaxCount
			}
			return &NextPack{
				Remaining:    tier.MaxCount - count,
				NextPackSize: tier.MaxCount,
				Progress:     float64(count-prevMax) / float64(tier.MaxCount-prevMax) * 100,
			}
		}
	}

	return nil
}

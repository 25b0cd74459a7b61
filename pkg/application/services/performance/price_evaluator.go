package performance

import "github.com/storesim/invperf/pkg/domain/entities"

// Price index cut points. The index is the product's price divided by the
// market reference price; 1.0 means priced exactly at market.
const (
	priceIndexWellAboveMarket = 1.15
	priceIndexHighCeiling     = 1.10
	priceIndexSlightlyHigh    = 1.05
	priceIndexNeutralFloor    = 0.90
	priceIndexCompetitive     = 0.80
	priceIndexBargainFloor    = 0.70
)

// PriceFeedback is the qualitative pricing verdict for a product.
type PriceFeedback struct {
	Label string
	Tone  entities.Tone
}

// PriceEvaluator maps a price-index ratio onto qualitative feedback. Pure
// and stateless; no state machine behind it.
type PriceEvaluator struct{}

// NewPriceEvaluator creates a new price evaluator
func NewPriceEvaluator() *PriceEvaluator {
	return &PriceEvaluator{}
}

// Evaluate returns pricing feedback for a price index. blockedByPrice marks
// products whose demand the simulation has cut off entirely because of
// price, which dominates any index value.
func (e *PriceEvaluator) Evaluate(priceIndex float64, blockedByPrice bool) PriceFeedback {
	switch {
	case blockedByPrice || priceIndex > priceIndexWellAboveMarket:
		return PriceFeedback{Label: "Price well above market", Tone: entities.ToneDanger}
	case priceIndex > priceIndexHighCeiling:
		return PriceFeedback{Label: "Price high, demand dropping", Tone: entities.ToneDanger}
	case priceIndex > priceIndexSlightlyHigh:
		return PriceFeedback{Label: "Price slightly above market", Tone: entities.ToneWarning}
	case priceIndex > priceIndexNeutralFloor:
		return PriceFeedback{Label: "Price in line with market", Tone: entities.ToneNeutral}
	case priceIndex > priceIndexCompetitive:
		return PriceFeedback{Label: "Price competitive", Tone: entities.TonePositive}
	case priceIndex > priceIndexBargainFloor:
		return PriceFeedback{Label: "Price low, strong demand", Tone: entities.TonePositive}
	default:
		return PriceFeedback{Label: "Price very low, margin at risk", Tone: entities.ToneWarning}
	}
}

package domain

// CostTier is the quality tier of groceries bought
type CostTier string

const (
	CostTierBudget   CostTier = "budget"
	CostTierModerate CostTier = "moderate"
	CostTierPremium  CostTier = "premium"
)

// PrepStyle is how much of the food is prepared at home
type PrepStyle string

const (
	PrepMostlyHome     PrepStyle = "mostly_home"
	PrepMixed          PrepStyle = "mixed"
	PrepMostlyPrepared PrepStyle = "mostly_prepared"
)

// StoreType is the kind of store most groceries come from
type StoreType string

const (
	StoreDiscount StoreType = "discount"
	StoreStandard StoreType = "standard"
	StorePremium  StoreType = "premium"
)

// WasteLevel is the self-reported amount of food thrown away
type WasteLevel string

const (
	WasteLow     WasteLevel = "low"
	WasteAverage WasteLevel = "average"
	WasteHigh    WasteLevel = "high"
)

// WasteLevels lists waste levels from least to most waste
var WasteLevels = []WasteLevel{WasteLow, WasteAverage, WasteHigh}

// Valid reports whether c is a known cost tier
func (c CostTier) Valid() bool {
	return c == CostTierBudget || c == CostTierModerate || c == CostTierPremium
}

// Valid reports whether p is a known prep style
func (p PrepStyle) Valid() bool {
	return p == PrepMostlyHome || p == PrepMixed || p == PrepMostlyPrepared
}

// Valid reports whether s is a known store type
func (s StoreType) Valid() bool {
	return s == StoreDiscount || s == StoreStandard || s == StorePremium
}

// Valid reports whether w is a known waste level
func (w WasteLevel) Valid() bool {
	return w == WasteLow || w == WasteAverage || w == WasteHigh
}

// ShoppingPreferences is the household's shopping selection state
type ShoppingPreferences struct {
	CostTier   CostTier   `yaml:"cost_tier" json:"costTier"`
	PrepStyle  PrepStyle  `yaml:"prep_style" json:"prepStyle"`
	StoreType  StoreType  `yaml:"store_type" json:"storeType"`
	WasteLevel WasteLevel `yaml:"waste_level" json:"wasteLevel"`
}

// DefaultPreferences returns the neutral moderate/mixed/standard/average selection
func DefaultPreferences() ShoppingPreferences {
	return ShoppingPreferences{
		CostTier:   CostTierModerate,
		PrepStyle:  PrepMixed,
		StoreType:  StoreStandard,
		WasteLevel: WasteAverage,
	}
}

// WithDefaults fills any empty selection with its neutral default
func (sp ShoppingPreferences) WithDefaults() ShoppingPreferences {
	def := DefaultPreferences()
	if sp.CostTier == "" {
		sp.CostTier = def.CostTier
	}
	if sp.PrepStyle == "" {
		sp.PrepStyle = def.PrepStyle
	}
	if sp.StoreType == "" {
		sp.StoreType = def.StoreType
	}
	if sp.WasteLevel == "" {
		sp.WasteLevel = def.WasteLevel
	}
	return sp
}

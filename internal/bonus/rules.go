package bonus

import "github.com/shopspring/decimal"

// Collectible names with a gameplay effect
const (
	LadyBug           = "Lady Bug"
	BlackBearry       = "Black Bearry"
	SquirrelMonkey    = "Squirrel Monkey"
	ImmortalPear      = "Immortal Pear"
	Nancy             = "Nancy"
	Scarecrow         = "Scarecrow"
	GoldenCauliflower = "Golden Cauliflower"
	MysteriousParsnip = "Mysterious Parsnip"
	WoodyTheBeaver    = "Woody the Beaver"
	TunnelMole        = "Tunnel Mole"
)

// DefaultRules returns the boosts granted by placed collectibles
func DefaultRules() []Rule {
	d := decimal.RequireFromString
	return []Rule{
		{Collectible: LadyBug, Family: FamilyFruit, Species: "Apple", ModifierType: ModifierTypeYield, Value: d("1.25")},
		{Collectible: BlackBearry, Family: FamilyFruit, Species: "Blueberry", ModifierType: ModifierTypeYield, Value: d("2")},
		{Collectible: SquirrelMonkey, Family: FamilyFruit, Species: "Orange", ModifierType: ModifierTypeTimeSkip, Value: d("0.5")},
		{Collectible: ImmortalPear, Family: FamilyFruit, ModifierType: ModifierTypeExtraHarvests, Value: d("1")},

		{Collectible: Nancy, Family: FamilyCrop, ModifierType: ModifierTypeTimeSkip, Value: d("0.15")},
		{Collectible: Scarecrow, Family: FamilyCrop, ModifierType: ModifierTypeTimeSkip, Value: d("0.15")},
		{Collectible: Scarecrow, Family: FamilyCrop, ModifierType: ModifierTypeYield, Value: d("1.2")},
		{Collectible: GoldenCauliflower, Family: FamilyCrop, Species: "Cauliflower", ModifierType: ModifierTypeYield, Value: d("2")},
		{Collectible: MysteriousParsnip, Family: FamilyCrop, Species: "Parsnip", ModifierType: ModifierTypeTimeSkip, Value: d("0.5")},

		{Collectible: WoodyTheBeaver, Family: FamilyResource, Species: "Wood", ModifierType: ModifierTypeYield, Value: d("1.2")},
		{Collectible: TunnelMole, Family: FamilyResource, Species: "Stone", ModifierType: ModifierTypeYield, Value: d("1.25")},
	}
}

package domain

// Farm event types. Tags follow <entity>.<action> and are the wire
// discriminant of an event payload.
const (
	EventTypeFruitPlanted   = "fruit.planted"
	EventTypeFruitHarvested = "fruit.harvested"
	EventTypeSeedPlanted    = "seed.planted"
	EventTypeCropHarvested  = "crop.harvested"
	EventTypeTimberChopped  = "timber.chopped"
	EventTypeStoneMined     = "stone.mined"
	EventTypeSeedBought     = "seed.bought"
	EventTypeItemSold       = "item.sold"
)

// Bus event types published by the session service once an event has been
// accepted or rejected.
const (
	EventTypeFarmEventApplied  = "farm.event.applied"
	EventTypeFarmEventRejected = "farm.event.rejected"
	EventTypeFarmSettled       = "farm.settled"
)

// Well-known inventory items
const (
	ItemAxe     = "Axe"
	ItemPickaxe = "Pickaxe"
	ItemWood    = "Wood"
	ItemStone   = "Stone"

	// CurrencyName identifies the balance in reconciliation verdicts
	CurrencyName = "currency"
)

// Activity counter names not derived from an item name
const (
	ActivityTreeChopped = "Tree Chopped"
	ActivityStoneMined  = "Stone Mined"
	ActivitySFLSpent    = "SFL Spent"
	ActivitySFLEarned   = "SFL Earned"
)

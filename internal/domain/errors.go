package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Handler reasons are shown to players verbatim, so keep their wording stable.
const (
	// Shared handler preconditions
	ErrMsgNoBumpkin          = "You do not have a Bumpkin"
	ErrMsgExpansionNotFound  = "Expansion does not exist"
	ErrMsgNotEnoughSeeds     = "Not enough seeds"
	ErrMsgNothingPlanted     = "Nothing was planted"
	ErrMsgNotReady           = "Not ready"
	ErrMsgInvalidAmount      = "Invalid amount"
	ErrMsgInsufficientTokens = "Insufficient tokens"

	// Fruit patches
	ErrMsgNoFruitPatches         = "Expansion does not have any fruit patches"
	ErrMsgFruitPatchNotFound     = "Fruit patch does not exist"
	ErrMsgFruitAlreadyPlanted    = "Fruit is already planted"
	ErrMsgNotFruitSeed           = "Not a fruit seed"
	ErrMsgInvalidHarvestsLeft    = "Invalid harvests left amount"
	ErrMsgFruitStillReplenishing = "Fruit is still replenishing"
	ErrMsgNoHarvestLeft          = "No harvest left"

	// Crop plots
	ErrMsgNoPlots            = "Expansion does not have any plots"
	ErrMsgPlotNotFound       = "Plot does not exist"
	ErrMsgCropAlreadyPlanted = "Crop is already planted"
	ErrMsgNotCropSeed        = "Not a crop seed"

	// Trees and stones
	ErrMsgNoTrees          = "Expansion does not have any trees"
	ErrMsgTreeNotFound     = "Tree does not exist"
	ErrMsgNotEnoughAxes    = "Not enough axes"
	ErrMsgTreeStillGrowing = "Tree is still growing"
	ErrMsgNoStones         = "Expansion does not have any stones"
	ErrMsgStoneNotFound    = "Stone does not exist"
	ErrMsgNotEnoughPickaxe = "Not enough pickaxes"
	ErrMsgRockRecovering   = "Rock is still recovering"

	// Economy
	ErrMsgNotASeed          = "This item is not a seed"
	ErrMsgNotForSale        = "Not for sale"
	ErrMsgInsufficientStock = "Insufficient crops to sell"

	// Dispatch and persistence
	ErrMsgUnknownEventType = "unknown event type"
	ErrMsgFarmNotFound     = "farm not found"
	ErrMsgVersionConflict  = "farm was modified concurrently"
	ErrMsgProgressRejected = "progress exceeds session limits"
	ErrMsgInvalidInput     = "invalid input"
)

// Handler precondition errors. Each Error() is exactly the reason shown to
// the player; match with errors.Is.
var (
	ErrNoBumpkin          = errors.New(ErrMsgNoBumpkin)
	ErrExpansionNotFound  = errors.New(ErrMsgExpansionNotFound)
	ErrNotEnoughSeeds     = errors.New(ErrMsgNotEnoughSeeds)
	ErrNothingPlanted     = errors.New(ErrMsgNothingPlanted)
	ErrNotReady           = errors.New(ErrMsgNotReady)
	ErrInvalidAmount      = errors.New(ErrMsgInvalidAmount)
	ErrInsufficientTokens = errors.New(ErrMsgInsufficientTokens)

	ErrNoFruitPatches         = errors.New(ErrMsgNoFruitPatches)
	ErrFruitPatchNotFound     = errors.New(ErrMsgFruitPatchNotFound)
	ErrFruitAlreadyPlanted    = errors.New(ErrMsgFruitAlreadyPlanted)
	ErrNotFruitSeed           = errors.New(ErrMsgNotFruitSeed)
	ErrInvalidHarvestsLeft    = errors.New(ErrMsgInvalidHarvestsLeft)
	ErrFruitStillReplenishing = errors.New(ErrMsgFruitStillReplenishing)
	ErrNoHarvestLeft          = errors.New(ErrMsgNoHarvestLeft)

	ErrNoPlots            = errors.New(ErrMsgNoPlots)
	ErrPlotNotFound       = errors.New(ErrMsgPlotNotFound)
	ErrCropAlreadyPlanted = errors.New(ErrMsgCropAlreadyPlanted)
	ErrNotCropSeed        = errors.New(ErrMsgNotCropSeed)

	ErrNoTrees          = errors.New(ErrMsgNoTrees)
	ErrTreeNotFound     = errors.New(ErrMsgTreeNotFound)
	ErrNotEnoughAxes    = errors.New(ErrMsgNotEnoughAxes)
	ErrTreeStillGrowing = errors.New(ErrMsgTreeStillGrowing)
	ErrNoStones         = errors.New(ErrMsgNoStones)
	ErrStoneNotFound    = errors.New(ErrMsgStoneNotFound)
	ErrNotEnoughPickaxe = errors.New(ErrMsgNotEnoughPickaxe)
	ErrRockRecovering   = errors.New(ErrMsgRockRecovering)

	ErrNotASeed          = errors.New(ErrMsgNotASeed)
	ErrNotForSale        = errors.New(ErrMsgNotForSale)
	ErrInsufficientStock = errors.New(ErrMsgInsufficientStock)
)

// Integration and persistence errors
var (
	// ErrUnknownEventType means the caller and the handler set disagree on
	// the event vocabulary. Wrapped with the offending tag.
	ErrUnknownEventType = errors.New(ErrMsgUnknownEventType)

	ErrFarmNotFound     = errors.New(ErrMsgFarmNotFound)
	ErrVersionConflict  = errors.New(ErrMsgVersionConflict)
	ErrProgressRejected = errors.New(ErrMsgProgressRejected)
	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)
)

// IsRuleViolation reports whether err is one of the player-facing handler
// precondition failures rather than an infrastructure or integration error.
func IsRuleViolation(err error) bool {
	for _, target := range ruleViolations {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var ruleViolations = []error{
	ErrNoBumpkin, ErrExpansionNotFound, ErrNotEnoughSeeds, ErrNothingPlanted,
	ErrNotReady, ErrInvalidAmount, ErrInsufficientTokens,
	ErrNoFruitPatches, ErrFruitPatchNotFound, ErrFruitAlreadyPlanted,
	ErrNotFruitSeed, ErrInvalidHarvestsLeft, ErrFruitStillReplenishing,
	ErrNoHarvestLeft,
	ErrNoPlots, ErrPlotNotFound, ErrCropAlreadyPlanted, ErrNotCropSeed,
	ErrNoTrees, ErrTreeNotFound, ErrNotEnoughAxes, ErrTreeStillGrowing,
	ErrNoStones, ErrStoneNotFound, ErrNotEnoughPickaxe, ErrRockRecovering,
	ErrNotASeed, ErrNotForSale, ErrInsufficientStock,
}

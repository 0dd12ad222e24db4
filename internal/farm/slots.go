package farm

import "github.com/ykatyhoney/sunflower-land/internal/domain"

// slot is a resolved (expansion, slot) address on a state
type slot struct {
	expansion int
	index     int
}

func requireBumpkin(s domain.GameState) error {
	if s.Bumpkin == nil {
		return domain.ErrNoBumpkin
	}
	return nil
}

func expansionAt(s domain.GameState, idx Index) (int, error) {
	i, ok := idx.Int()
	if !ok || i >= len(s.Expansions) {
		return 0, domain.ErrExpansionNotFound
	}
	return i, nil
}

// locate resolves a slot in one of an expansion's maps. none is returned
// when the map is empty, missing when the index has no entry.
func locate[T any](s domain.GameState, expansionIdx, idx Index, pick func(domain.Expansion) map[int]T, none, missing error) (slot, T, error) {
	var zero T

	e, err := expansionAt(s, expansionIdx)
	if err != nil {
		return slot{}, zero, err
	}
	slots := pick(s.Expansions[e])
	if len(slots) == 0 {
		return slot{}, zero, none
	}
	i, ok := idx.Int()
	if !ok {
		return slot{}, zero, missing
	}
	v, ok := slots[i]
	if !ok {
		return slot{}, zero, missing
	}
	return slot{expansion: e, index: i}, v, nil
}

func fruitPatches(e domain.Expansion) map[int]domain.Plot { return e.FruitPatches }
func plots(e domain.Expansion) map[int]domain.Plot        { return e.Plots }
func trees(e domain.Expansion) map[int]domain.Tree        { return e.Trees }
func stones(e domain.Expansion) map[int]domain.Stone      { return e.Stones }

package farm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykatyhoney/sunflower-land/internal/bonus"
	"github.com/ykatyhoney/sunflower-land/internal/domain"
)

func TestPlantCrop_Preconditions(t *testing.T) {
	p := NewDefaultProcessor()
	seeded := func() domain.GameState {
		s := newTestState()
		s.Inventory["Sunflower Seed"] = d("1")
		s.Inventory["Apple Seed"] = d("1")
		return s
	}

	tests := []struct {
		name  string
		state func() domain.GameState
		event SeedPlanted
		want  error
	}{
		{
			name: "no bumpkin",
			state: func() domain.GameState {
				s := seeded()
				s.Bumpkin = nil
				return s
			},
			event: SeedPlanted{Seed: "Sunflower Seed"},
			want:  domain.ErrNoBumpkin,
		},
		{name: "expansion does not exist", state: seeded, event: SeedPlanted{ExpansionIndex: 1, Seed: "Sunflower Seed"}, want: domain.ErrExpansionNotFound},
		{
			name: "no plots",
			state: func() domain.GameState {
				s := seeded()
				s.Expansions[0].Plots = nil
				return s
			},
			event: SeedPlanted{Seed: "Sunflower Seed"},
			want:  domain.ErrNoPlots,
		},
		{name: "plot does not exist", state: seeded, event: SeedPlanted{Index: 9, Seed: "Sunflower Seed"}, want: domain.ErrPlotNotFound},
		{
			name: "already planted",
			state: func() domain.GameState {
				return withCrop(seeded(), 0, domain.Crop{Name: "Sunflower", Amount: d("1")})
			},
			event: SeedPlanted{Seed: "Sunflower Seed"},
			want:  domain.ErrCropAlreadyPlanted,
		},
		{name: "fruit seed on a plot", state: seeded, event: SeedPlanted{Seed: "Apple Seed"}, want: domain.ErrNotCropSeed},
		{name: "not enough seeds", state: newTestState, event: SeedPlanted{Seed: "Potato Seed"}, want: domain.ErrNotEnoughSeeds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Process(tt.state(), tt.event, testNow)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.want.Error(), err.Error())
		})
	}
}

func TestPlantCrop_Success(t *testing.T) {
	p := NewDefaultProcessor()
	s := newTestState()
	s.Inventory["Cauliflower Seed"] = d("2")
	place(&s, bonus.Scarecrow, bonus.GoldenCauliflower)

	next, err := p.Process(s, SeedPlanted{Index: 1, Seed: "Cauliflower Seed"}, testNow)
	require.NoError(t, err)

	crop := next.Expansions[0].Plots[1].Crop
	require.NotNil(t, crop)
	assert.Equal(t, "Cauliflower", crop.Name)
	assert.True(t, crop.Amount.Equal(d("2.4")))
	skip := int64(8*time.Hour/time.Millisecond) * 15 / 100
	assert.Equal(t, testNow.UnixMilli()-skip, crop.PlantedAt)
	assert.True(t, next.Inventory["Cauliflower Seed"].Equal(d("1")))
	assert.True(t, next.Bumpkin.Activity["Cauliflower Seed Planted"].Equal(d("1")))
	assert.Nil(t, s.Expansions[0].Plots[1].Crop)
}

func TestHarvestCrop(t *testing.T) {
	p := NewDefaultProcessor()
	s := newTestState()
	s.Inventory["Sunflower Seed"] = d("1")

	planted, err := p.Process(s, SeedPlanted{Seed: "Sunflower Seed"}, testNow)
	require.NoError(t, err)

	_, err = p.Process(planted, CropHarvested{}, testNow.Add(59*time.Second))
	require.ErrorIs(t, err, domain.ErrNotReady)

	harvested, err := p.Process(planted, CropHarvested{}, testNow.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, harvested.Inventory["Sunflower"].Equal(d("1")))
	assert.Nil(t, harvested.Expansions[0].Plots[0].Crop)
	assert.True(t, harvested.Bumpkin.Activity["Sunflower Harvested"].Equal(d("1")))

	_, err = p.Process(harvested, CropHarvested{}, testNow.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrNothingPlanted)
}

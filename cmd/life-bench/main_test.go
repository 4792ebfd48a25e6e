package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitlife/pkg/core"
)

func TestBuildScenarios(t *testing.T) {
	sets, err := buildScenarios("8x4, 16x16", "demo,noise")
	require.NoError(t, err)
	require.Len(t, sets, 4)
	assert.Equal(t, "8x4/demo", sets[0].String())
	assert.Equal(t, "16x16/noise", sets[3].String())

	_, err = buildScenarios("8by4", "demo")
	assert.Error(t, err)
	_, err = buildScenarios("0x4", "demo")
	assert.ErrorIs(t, err, core.ErrInvalidDimensions)
	_, err = buildScenarios("8x4", "plaid")
	assert.Error(t, err)
}

func TestSweepRunsEveryScenario(t *testing.T) {
	sets, err := buildScenarios("8x8,12x6", "demo,dead")
	require.NoError(t, err)

	results := sweep(context.Background(), sets, 3, 5, 1)
	require.Len(t, results, 4)
	for _, res := range results {
		require.NoError(t, res.err, res.scenario.String())
		assert.Equal(t, 5, res.steps)
		if res.scenario.fill == core.FillDead {
			assert.Zero(t, res.population)
		}
	}

	var buf bytes.Buffer
	report(&buf, results, time.Second)
	assert.Contains(t, buf.String(), "12x6/dead")
}

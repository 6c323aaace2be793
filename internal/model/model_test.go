package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestingSideForBuyAndSell(t *testing.T) {
	assert.Equal(t, Bid, RestingSideFor(Buy))
	assert.Equal(t, Ask, RestingSideFor(Sell))
}

func TestCounterpartySideForBuyAndSell(t *testing.T) {
	assert.Equal(t, Ask, CounterpartySideFor(Buy))
	assert.Equal(t, Bid, CounterpartySideFor(Sell))
}

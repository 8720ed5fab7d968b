package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionValid(t *testing.T) {
	assert.True(t, DirectionIncome.Valid())
	assert.True(t, DirectionExpense.Valid())
	assert.False(t, Direction("").Valid())
	assert.False(t, Direction("transfer").Valid())
}

func TestDirectionSigned(t *testing.T) {
	amount := decimal.NewFromInt(100)

	assert.True(t, DirectionIncome.Signed(amount).Equal(decimal.NewFromInt(100)))
	assert.True(t, DirectionExpense.Signed(amount).Equal(decimal.NewFromInt(-100)))
}

func TestDirectionValue(t *testing.T) {
	tests := []struct {
		name      string
		direction Direction
		want      float64
	}{
		{name: "income stores as 1", direction: DirectionIncome, want: 1.0},
		{name: "expense stores as 0", direction: DirectionExpense, want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.direction.Value()
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestDirectionScan(t *testing.T) {
	tests := []struct {
		src  any
		want Direction
		name string
	}{
		{name: "float one is income", src: float64(1), want: DirectionIncome},
		{name: "float zero is expense", src: float64(0), want: DirectionExpense},
		{name: "int one is income", src: int64(1), want: DirectionIncome},
		{name: "int zero is expense", src: int64(0), want: DirectionExpense},
		{name: "null is expense", src: nil, want: DirectionExpense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Direction
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestDirectionRoundTrip(t *testing.T) {
	for _, d := range []Direction{DirectionIncome, DirectionExpense} {
		v, err := d.Value()
		require.NoError(t, err)

		var back Direction
		require.NoError(t, back.Scan(v))
		assert.Equal(t, d, back)
	}
}

func TestTransactionSignedAmount(t *testing.T) {
	income := Transaction{Amount: decimal.NewFromInt(75), Direction: DirectionIncome}
	expense := Transaction{Amount: decimal.NewFromInt(50), Direction: DirectionExpense}

	assert.True(t, income.SignedAmount().Equal(decimal.NewFromInt(75)))
	assert.True(t, expense.SignedAmount().Equal(decimal.NewFromInt(-50)))
}

package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/orderflow/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "integer", input: "10", want: "10.00"},
		{name: "two digits", input: "5.50", want: "5.50"},
		{name: "half up", input: "10.005", want: "10.01"},
		{name: "below half", input: "10.004", want: "10.00"},
		{name: "half up carries", input: "0.995", want: "1.00"},
		{name: "zero", input: "0", want: "0.00"},
		{name: "negative", input: "-1.00", wantErr: entities.ErrNegativeMoney},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := entities.ParseMoney(tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestParseMoney_Invalid(t *testing.T) {
	_, err := entities.ParseMoney("ten")
	assert.Error(t, err)
}

func TestMoney_Arithmetic(t *testing.T) {
	price := entities.MustParseMoney("5.50")

	subtotal, err := price.Mul(3)
	require.NoError(t, err)
	assert.Equal(t, "16.50", subtotal.String())

	total, err := subtotal.Add(entities.MustParseMoney("20"))
	require.NoError(t, err)
	assert.Equal(t, "36.50", total.String())
	assert.True(t, total.Equal(entities.MustParseMoney("36.5")))

	_, err = price.Mul(-1)
	assert.ErrorIs(t, err, entities.ErrNegativeMoney)
}

func TestMoney_ZeroValue(t *testing.T) {
	var m entities.Money
	assert.Equal(t, "0.00", m.String())
	assert.Equal(t, "0.00", entities.ZeroMoney().String())
}

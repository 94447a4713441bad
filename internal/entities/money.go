package entities

import (
	"fmt"

	"github.com/govalues/decimal"
)

const moneyScale = 2

// половина младшего разряда для округления half-up
var moneyHalfUnit = decimal.MustNew(5, moneyScale+1)

// Money неотрицательная денежная сумма с двумя знаками после запятой.
type Money struct {
	amount decimal.Decimal
}

func ZeroMoney() Money {
	return Money{amount: decimal.Zero.Pad(moneyScale)}
}

func NewMoney(d decimal.Decimal) (Money, error) {
	if d.IsNeg() {
		return Money{}, fmt.Errorf("%w: %s", ErrNegativeMoney, d)
	}
	rounded, err := roundHalfUp(d)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: rounded}, nil
}

func ParseMoney(s string) (Money, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money %q: %w", s, err)
	}
	return NewMoney(d)
}

func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Add(other Money) (Money, error) {
	sum, err := m.amount.Add(other.amount)
	if err != nil {
		return Money{}, fmt.Errorf("failed to add money: %w", err)
	}
	return NewMoney(sum)
}

func (m Money) Mul(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, fmt.Errorf("%w: multiplier %d", ErrNegativeMoney, quantity)
	}
	product, err := m.amount.Mul(decimal.MustNew(int64(quantity), 0))
	if err != nil {
		return Money{}, fmt.Errorf("failed to multiply money: %w", err)
	}
	return NewMoney(product)
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount.Pad(moneyScale)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Cmp(other.amount) == 0
}

func (m Money) String() string {
	return m.amount.Pad(moneyScale).String()
}

func (m Money) GobEncode() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) GobDecode(data []byte) error {
	parsed, err := ParseMoney(string(data))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// roundHalfUp работает только с неотрицательными значениями.
func roundHalfUp(d decimal.Decimal) (decimal.Decimal, error) {
	if d.Scale() <= moneyScale {
		return d.Pad(moneyScale), nil
	}
	shifted, err := d.Add(moneyHalfUnit)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to round money: %w", err)
	}
	return shifted.Trunc(moneyScale).Pad(moneyScale), nil
}

// Package fiscale provides the fiscal calculators shipped alongside the
// converter: progressive IRPEF, regional surcharge, INPS contributions and
// the wage-bonus helpers. All arithmetic is decimal to avoid float drift on
// money amounts.
package fiscale

import (
	"github.com/shopspring/decimal"
)

var (
	soglia15k = decimal.NewFromInt(15000)
	soglia20k = decimal.NewFromInt(20000)
	soglia28k = decimal.NewFromInt(28000)
	soglia50k = decimal.NewFromInt(50000)
	soglia55k = decimal.NewFromInt(55000)

	cento = decimal.NewFromInt(100)
)

func rate(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// AddizionaleRegionale computes the regional IRPEF surcharge for the given
// yearly income.
func AddizionaleRegionale(reddito decimal.Decimal) decimal.Decimal {
	switch {
	case reddito.LessThanOrEqual(soglia15k):
		return reddito.Mul(rate("0.0123"))
	case reddito.LessThanOrEqual(soglia28k):
		return reddito.Mul(rate("0.0318"))
	case reddito.LessThanOrEqual(soglia50k):
		return reddito.Mul(rate("0.0323"))
	default:
		return reddito.Mul(rate("0.0333"))
	}
}

// BonusRedditi attributes the income-based fiscal bonus.
func BonusRedditi(reddito decimal.Decimal) decimal.Decimal {
	switch {
	case reddito.LessThan(soglia15k):
		return reddito.Mul(rate("0.053"))
	case reddito.LessThanOrEqual(soglia20k):
		return reddito.Mul(rate("0.048"))
	default:
		return decimal.Zero
	}
}

// ContributiINPS computes INPS contributions, with the extra 1% over the
// 55000 threshold.
func ContributiINPS(reddito, aliquota decimal.Decimal) decimal.Decimal {
	base := reddito.Mul(aliquota)
	if reddito.GreaterThan(soglia55k) {
		return base.Add(reddito.Sub(soglia55k).Mul(rate("0.01")))
	}
	return base
}

// DetrazioneLavoroDipendente is the simplified employee deduction: 20% of
// income (never negative) plus the day-proportional monthly share.
func DetrazioneLavoroDipendente(reddito decimal.Decimal, giorni, mese int) decimal.Decimal {
	base := reddito.Mul(rate("0.2"))
	if base.IsNegative() {
		base = decimal.Zero
	}
	quota := decimal.NewFromInt(int64(giorni)).
		Div(decimal.NewFromInt(365)).
		Mul(decimal.NewFromInt(int64(mese)))
	return base.Add(quota)
}

// ExBonusRenzi returns the flat 1200 bonus for incomes under 15000.
func ExBonusRenzi(reddito decimal.Decimal) decimal.Decimal {
	if reddito.LessThan(soglia15k) {
		return decimal.NewFromInt(1200)
	}
	return decimal.Zero
}

// IRPEF computes the progressive IRPEF over the four brackets.
func IRPEF(reddito decimal.Decimal) decimal.Decimal {
	primo := soglia15k.Mul(rate("0.23"))
	secondo := soglia28k.Sub(soglia15k).Mul(rate("0.27"))
	terzo := soglia55k.Sub(soglia28k).Mul(rate("0.38"))

	switch {
	case reddito.LessThanOrEqual(soglia15k):
		return reddito.Mul(rate("0.23"))
	case reddito.LessThanOrEqual(soglia28k):
		return primo.Add(reddito.Sub(soglia15k).Mul(rate("0.27")))
	case reddito.LessThanOrEqual(soglia55k):
		return primo.Add(secondo).Add(reddito.Sub(soglia28k).Mul(rate("0.38")))
	default:
		return primo.Add(secondo).Add(terzo).Add(reddito.Sub(soglia55k).Mul(rate("0.41")))
	}
}

// IRPEFMensile is the monthly share of the yearly IRPEF.
func IRPEFMensile(reddito decimal.Decimal) decimal.Decimal {
	return IRPEF(reddito).Div(decimal.NewFromInt(12))
}

// IRPEFConAddizionali is the yearly IRPEF including the regional surcharge.
func IRPEFConAddizionali(reddito decimal.Decimal) decimal.Decimal {
	return IRPEF(reddito).Add(AddizionaleRegionale(reddito))
}

// TaglioCuneoFiscale applies the simplified 10% wedge cut for employees.
func TaglioCuneoFiscale(reddito decimal.Decimal, lavoratoreDipendente bool) decimal.Decimal {
	if lavoratoreDipendente {
		return reddito.Mul(rate("0.1"))
	}
	return decimal.Zero
}

// AliquotaPercent converts a percentage ("4", "22.5") to its decimal rate.
func AliquotaPercent(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(cento)
}

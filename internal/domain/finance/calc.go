package finance

import "math"

// Calculation is the result of applying the rate policy to one worked-time
// tuple. Monetary fields are rounded to two decimals; Profit is derived from
// the rounded Revenue and LaborCost so Profit == Revenue - LaborCost holds
// exactly on the returned values.
type Calculation struct {
	RegularPay    float64 `json:"regularPay"`
	OvertimePay   float64 `json:"overtimePay"`
	LaborCost     float64 `json:"laborCost"`
	Revenue       float64 `json:"revenue"`
	Profit        float64 `json:"profit"`
	ProfitMargin  float64 `json:"profitMargin"`
	TotalHours    float64 `json:"totalHours"`
	EffectiveRate float64 `json:"effectiveRate"`
}

// Calculate derives cost, billing and profit for one block of worked time.
// hourlyRate is what the organization pays, actualRate is what the client is
// billed. Overtime hours earn and bill at the policy multiplier. Inputs are
// expected to be non-negative; validation belongs to the caller.
func Calculate(regularHours, overtimeHours, hourlyRate, actualRate float64, policy RatePolicy) Calculation {
	regularPay := regularHours * hourlyRate
	overtimePay := overtimeHours * hourlyRate * policy.OvertimeMultiplier
	laborCost := Round2(regularPay + overtimePay)

	revenue := Round2(regularHours*actualRate + overtimeHours*actualRate*policy.OvertimeMultiplier)
	profit := Round2(revenue - laborCost)

	totalHours := regularHours + overtimeHours

	var margin float64
	if revenue != 0 {
		margin = Round2(profit / revenue * 100)
	}

	var effectiveRate float64
	if totalHours != 0 {
		effectiveRate = Round2(revenue / totalHours)
	}

	return Calculation{
		RegularPay:    Round2(regularPay),
		OvertimePay:   Round2(overtimePay),
		LaborCost:     laborCost,
		Revenue:       revenue,
		Profit:        profit,
		ProfitMargin:  margin,
		TotalHours:    totalHours,
		EffectiveRate: effectiveRate,
	}
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// Ratio returns numerator/denominator rounded to two decimals, or 0 when the
// denominator is zero. Every derived ratio in the system uses this so no
// metric ever reports NaN or Inf.
func Ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return Round2(numerator / denominator)
}

// Percent is Ratio scaled to a percentage.
func Percent(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return Round2(numerator / denominator * 100)
}

package finance

import "testing"

func TestCalculateStandardMonth(t *testing.T) {
	calc := Calculate(160, 10, 30, 50, DefaultPolicy())

	if calc.LaborCost != 5250 {
		t.Fatalf("expected labor cost 5250, got %v", calc.LaborCost)
	}
	if calc.Revenue != 8750 {
		t.Fatalf("expected revenue 8750, got %v", calc.Revenue)
	}
	if calc.Profit != 3500 {
		t.Fatalf("expected profit 3500, got %v", calc.Profit)
	}
	if calc.ProfitMargin != 40 {
		t.Fatalf("expected margin 40, got %v", calc.ProfitMargin)
	}
	if calc.TotalHours != 170 {
		t.Fatalf("expected total hours 170, got %v", calc.TotalHours)
	}
	if calc.EffectiveRate != Round2(8750.0/170.0) {
		t.Fatalf("unexpected effective rate %v", calc.EffectiveRate)
	}
}

func TestCalculateOvertimeMultiplier(t *testing.T) {
	calc := Calculate(0, 8, 20, 35, DefaultPolicy())

	if calc.OvertimePay != 240 {
		t.Fatalf("expected overtime pay 240, got %v", calc.OvertimePay)
	}
	if calc.RegularPay != 0 {
		t.Fatalf("expected regular pay 0, got %v", calc.RegularPay)
	}
	if calc.Revenue != 420 {
		t.Fatalf("expected revenue 420, got %v", calc.Revenue)
	}
}

func TestCalculateProfitIdentity(t *testing.T) {
	cases := [][4]float64{
		{160, 10, 30, 50},
		{7.25, 1.75, 12.33, 19.99},
		{0.1, 0.1, 0.01, 0.03},
		{2000, 500, 99.99, 100.01},
	}
	for _, c := range cases {
		calc := Calculate(c[0], c[1], c[2], c[3], DefaultPolicy())
		if calc.Profit != Round2(calc.Revenue-calc.LaborCost) {
			t.Fatalf("profit identity broken for %v: profit=%v revenue=%v cost=%v",
				c, calc.Profit, calc.Revenue, calc.LaborCost)
		}
	}
}

func TestCalculateZeroRevenue(t *testing.T) {
	calc := Calculate(40, 2, 25, 0, DefaultPolicy())

	if calc.Revenue != 0 {
		t.Fatalf("expected revenue 0, got %v", calc.Revenue)
	}
	if calc.ProfitMargin != 0 {
		t.Fatalf("margin must degrade to 0, got %v", calc.ProfitMargin)
	}
	if calc.Profit != -calc.LaborCost {
		t.Fatalf("expected profit -%v, got %v", calc.LaborCost, calc.Profit)
	}
}

func TestCalculateZeroHours(t *testing.T) {
	calc := Calculate(0, 0, 30, 50, DefaultPolicy())

	if calc.TotalHours != 0 || calc.EffectiveRate != 0 {
		t.Fatalf("expected zero hours and effective rate, got %v / %v", calc.TotalHours, calc.EffectiveRate)
	}
	if calc.LaborCost != 0 || calc.Revenue != 0 || calc.Profit != 0 {
		t.Fatalf("expected all-zero money, got %+v", calc)
	}
}

func TestCalculateCustomPolicy(t *testing.T) {
	policy := DefaultPolicy()
	policy.OvertimeMultiplier = 2

	calc := Calculate(100, 10, 10, 20, policy)
	if calc.LaborCost != 1200 {
		t.Fatalf("expected labor cost 1200 at 2x overtime, got %v", calc.LaborCost)
	}
	if calc.Revenue != 2400 {
		t.Fatalf("expected revenue 2400 at 2x overtime, got %v", calc.Revenue)
	}
}

func TestRatioHelpers(t *testing.T) {
	if Ratio(10, 0) != 0 {
		t.Fatal("ratio with zero denominator must be 0")
	}
	if Percent(1, 0) != 0 {
		t.Fatal("percent with zero denominator must be 0")
	}
	if Percent(1, 4) != 25 {
		t.Fatalf("expected 25, got %v", Percent(1, 4))
	}
	if Round2(3.14159) != 3.14 {
		t.Fatalf("unexpected rounding: %v", Round2(3.14159))
	}
	if Round2(0.125) != 0.13 {
		t.Fatalf("expected half away from zero, got %v", Round2(0.125))
	}
}

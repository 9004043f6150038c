package finance

// RatePolicy carries the statutory and contractual rates applied by every
// financial calculation. Values vary by jurisdiction and contract, so they
// are injected rather than hard-coded at call sites.
type RatePolicy struct {
	OvertimeMultiplier  float64 `json:"overtimeMultiplier"`
	GosiRate            float64 `json:"gosiRate"`
	DeductionRate       float64 `json:"deductionRate"`
	ExpectedWorkingDays float64 `json:"expectedWorkingDays"`
}

// DefaultPolicy returns the Saudi defaults: 1.5x overtime, 11% GOSI,
// 2% other deductions, 22 expected working days per month.
func DefaultPolicy() RatePolicy {
	return RatePolicy{
		OvertimeMultiplier:  1.5,
		GosiRate:            0.11,
		DeductionRate:       0.02,
		ExpectedWorkingDays: 22,
	}
}

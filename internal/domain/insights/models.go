package insights

import "time"

const (
	TypeOptimization   = "optimization"
	TypeAlert          = "alert"
	TypeAchievement    = "achievement"
	TypeRecommendation = "recommendation"

	ImpactLow    = "low"
	ImpactMedium = "medium"
	ImpactHigh   = "high"

	StatusNew = "new"

	CategoryWorkforce    = "workforce"
	CategoryFinancial    = "financial"
	CategoryProductivity = "productivity"
	CategoryCompliance   = "compliance"
	CategoryProjects     = "projects"
)

// Insight is one actionable finding derived from the current snapshot.
// Insights are recomputed, not persisted; Deadline is set only for rules
// that carry one.
type Insight struct {
	ID             string     `json:"id"`
	Type           string     `json:"type"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Impact         string     `json:"impact"`
	Category       string     `json:"category"`
	ActionRequired bool       `json:"actionRequired"`
	Priority       int        `json:"priority"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	Deadline       *time.Time `json:"deadline,omitempty"`
}

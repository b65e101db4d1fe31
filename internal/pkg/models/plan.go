package models

import "time"

// Plan represents a subscription offer with a fixed price and duration
type Plan struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Amount       int    `json:"amount"`   // in XOF, always a multiple of 5
	Currency     string `json:"currency"`
	DurationDays int    `json:"duration_days"`
	Description  string `json:"description"`
}

// Duration returns the plan duration as a time.Duration
func (p Plan) Duration() time.Duration {
	return time.Duration(p.DurationDays) * 24 * time.Hour
}

// Plan identifiers
const (
	PlanMonthly    = "monthly"
	PlanSemiannual = "semiannual"
	PlanAnnual     = "annual"
)

// plans is the fixed catalog of subscription offers
var plans = map[string]Plan{
	PlanMonthly: {
		ID:           PlanMonthly,
		Name:         "Abonnement mensuel",
		Amount:       2000,
		Currency:     "XOF",
		DurationDays: 30,
		Description:  "Acces illimite pendant 30 jours",
	},
	PlanSemiannual: {
		ID:           PlanSemiannual,
		Name:         "Abonnement semestriel",
		Amount:       7000,
		Currency:     "XOF",
		DurationDays: 180,
		Description:  "Acces illimite pendant 6 mois",
	},
	PlanAnnual: {
		ID:           PlanAnnual,
		Name:         "Abonnement annuel",
		Amount:       13000,
		Currency:     "XOF",
		DurationDays: 365,
		Description:  "Acces illimite pendant 12 mois",
	},
}

// GetPlan returns the plan for the given id
func GetPlan(id string) (Plan, bool) {
	p, ok := plans[id]
	return p, ok
}

// Plans returns the full plan catalog
func Plans() []Plan {
	return []Plan{plans[PlanMonthly], plans[PlanSemiannual], plans[PlanAnnual]}
}

package plan

import "github.com/Ok1nam/demo-edp-final/core"

// Budget is the initial budget needed to open a school.
type Budget struct {
	LocalCost     core.Number `json:"localCost"`
	EquipmentCost core.Number `json:"equipmentCost"`
	ITCost        core.Number `json:"itCost"`
	StartupCost   core.Number `json:"startupCost"`
}

func DefaultBudget() Budget {
	return Budget{LocalCost: 50000, EquipmentCost: 30000, ITCost: 15000, StartupCost: 10000}
}

func (b Budget) Total() float64 {
	return b.LocalCost.Float() + b.EquipmentCost.Float() + b.ITCost.Float() + b.StartupCost.Float()
}

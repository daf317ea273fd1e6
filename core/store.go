package core

import "context"

// Fixed store keys, one per tool.
const (
	KeyBusinessPlan     = "business_plan_data"
	KeyRentability      = "rentability_data"
	KeyLocations        = "location_analyses"
	KeyPartnerships     = "partnerships_data"
	KeySubsidies        = "subsidy_applications"
	KeyTrainingPlan     = "training_plan_data"
	KeyPedagogicalCosts = "pedagogical_costs_data"
	KeyQuestionnaire    = "questionnaire_state"
)

// StoreKeys lists every key a workspace may hold.
var StoreKeys = []string{
	KeyBusinessPlan,
	KeyRentability,
	KeyLocations,
	KeyPartnerships,
	KeySubsidies,
	KeyTrainingPlan,
	KeyPedagogicalCosts,
	KeyQuestionnaire,
}

type (
	// Store is a key-value store of JSON-serializable values.
	Store interface {
		// Load decodes the value stored under key into dst.
		// found is false (and dst untouched) when the key does not exist.
		Load(ctx context.Context, key string, dst interface{}) (found bool, err error)
		Save(ctx context.Context, key string, value interface{}) error
		Remove(ctx context.Context, key string) error
	}

	StoreOp string

	// StoreEvent is published after every successful write.
	StoreEvent struct {
		Key string  `json:"key"`
		Op  StoreOp `json:"op"`
	}

	// Subscriber is a Store that publishes its changes.
	Subscriber interface {
		// Subscribe registers fn and returns a func that unregisters it.
		Subscribe(fn func(StoreEvent)) (unsubscribe func())
	}
)

const (
	StoreOpSave   StoreOp = "save"
	StoreOpRemove StoreOp = "remove"
)

package events

import "time"

const ContractLifecycleTopic = "hr.contract.lifecycle.v1"

const (
	ContractFinalized = "contract_finalized"
	ContractClosed    = "contract_closed"
	ContractReopened  = "contract_reopened"
)

// ContractLifecycleEvent is published through the outbox whenever a contract
// changes status. Consumers invalidate derived read models (dashboard cache).
type ContractLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	ContractID string    `json:"contract_id"`
	EmployerID string    `json:"employer_id"`
	WorkerID   string    `json:"worker_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

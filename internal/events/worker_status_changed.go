package events

import "time"

const WorkerStatusChangedTopic = "sitepass.worker.lifecycle.v1"

const WorkerStatusChangedType = "worker.status_changed"

// WorkerStatusChangedEvent is written to the outbox in the same transaction
// as the status change it describes. From is empty for newly created workers.
type WorkerStatusChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	WorkerID   string    `json:"worker_id"`
	CompanyID  string    `json:"company_id"`
	Phone      string    `json:"phone"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to"`
	ActorID    string    `json:"actor_id,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

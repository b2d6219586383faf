package outboxrepo

import (
	"encoding/json"
	"time"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/order"
	"requisitions/internal/core/ports"
)

// OrderStatusChanged is the broker payload emitted for every history entry.
type OrderStatusChanged struct {
	EventID       string    `json:"eventId"`
	OrderID       string    `json:"orderId"`
	Status        string    `json:"status"`
	OriginID      string    `json:"originId"`
	DestinationID string    `json:"destinationId"`
	ChangedAt     time.Time `json:"changedAt"`
	ChangedBy     string    `json:"changedBy"`
}

// MessagesFor converts the pending changes of an order into outbox messages
// keyed by order id, so the broker keeps per-order ordering.
func MessagesFor(o *order.Order, topic string) ([]ports.OutboxMessage, error) {
	changes := o.Changes()
	messages := make([]ports.OutboxMessage, 0, len(changes))

	for _, change := range changes {
		id := kernel.NewUUID()
		payload, err := json.Marshal(OrderStatusChanged{
			EventID:       id.String(),
			OrderID:       o.ID().String(),
			Status:        change.Status().String(),
			OriginID:      o.Origin().String(),
			DestinationID: o.Destination().String(),
			ChangedAt:     change.ChangedAt(),
			ChangedBy:     change.ChangedBy().String(),
		})
		if err != nil {
			return nil, err
		}

		messages = append(messages, ports.OutboxMessage{
			ID:          id,
			AggregateID: o.ID(),
			Topic:       topic,
			Key:         o.ID().String(),
			Payload:     payload,
			CreatedAt:   change.ChangedAt(),
		})
	}

	return messages, nil
}

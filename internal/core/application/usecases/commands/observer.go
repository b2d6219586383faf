package commands

import "requisitions/internal/core/domain/model/order"

// TransitionObserver is notified after a status change has been committed.
type TransitionObserver interface {
	OrderTransitioned(status order.Status)
}

type noopObserver struct{}

func (noopObserver) OrderTransitioned(order.Status) {}

func observerOrNoop(o TransitionObserver) TransitionObserver {
	if o == nil {
		return noopObserver{}
	}
	return o
}

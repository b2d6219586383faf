// Package order provides the Order aggregate root of the requisition flow and
// the state machine that drives it.
//
// The package includes:
//   - Order: the aggregate root owning identity, branches, items and lifecycle
//   - Item: one product line of an order, created from a cart line
//   - Status: the forward-only lifecycle state machine
//   - HistoryEntry: one immutable audit record per status assignment
//
// Key business rules:
//   - Origin and destination are different branches
//   - An order has at least one item and every quantity is positive
//   - Status moves Created -> DestinationReceived -> Picking -> Shipped -> OriginReceived
//   - Every status assignment, including Created, yields exactly one HistoryEntry
//   - The order's current status always equals the status of its latest HistoryEntry
//
// Branch permissions are not decided here; see the services package.
package order

// Package services provides domain services that apply business rules spanning
// more than one aggregate of the requisition flow.
//
// The package includes:
//   - AccessPolicy: decides which branch may advance, confirm or view an order
//   - DestinationResolver: picks the fulfilling branch for a newly submitted order
//
// Both services are stateless and compare branches by identifier only.
package services

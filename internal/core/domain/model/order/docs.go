// Package order provides the domain entities and business rules for order
// management. It implements the Order aggregate root with its owned line
// items and the lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding identity, client, line items and lifecycle state
//   - Item: a value object for a single order line (description, quantity, unit price)
//   - Status: the lifecycle state machine
//
// Key business rules:
//   - Orders are created with at least one valid line item and status "initiated"
//   - The status only moves forward: initiated -> sent -> delivered
//   - "delivered" is terminal; reaching it removes the order from the active set
//   - A removed (soft-deleted) order accepts no further transitions
//
// The transition table is the total function Status.Next, so every caller
// shares one canonical rule for what follows a given status.
package order

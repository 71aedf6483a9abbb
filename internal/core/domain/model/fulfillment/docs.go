// Package fulfillment implements the order-fulfillment lifecycle aggregate.
//
// A Fulfillment tracks the physical shipment of one order from creation
// through warehouse processing, carrier handoff and delivery, ending in one
// of the terminal states (returned, cancelled). The aggregate owns:
//
//   - Status: a closed twelve-state enumeration with an explicit transition
//     table; every status change is guarded and disallowed transitions fail
//     without mutating the aggregate
//   - TrackingEvent: an append-only, insertion-ordered ledger of status
//     changes and carrier scans, exposed only as snapshot copies
//   - cost aggregation over the shipping/insurance/handling Money components
//   - lateness detection against the estimated delivery date
//
// The aggregate is a synchronous, in-process state holder: no I/O, no locks,
// no suspension points. It is not safe for unsynchronized concurrent mutation;
// the persistence layer serializes access per record using the aggregate's
// version counter for optimistic concurrency.
package fulfillment

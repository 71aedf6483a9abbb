package fulfillment

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrFulfillmentIsNotConstructed is returned when a Fulfillment instance was not
	// created through the NewFulfillment or RestoreFulfillment factory functions.
	ErrFulfillmentIsNotConstructed = errors.New(
		"Fulfillment must be created via NewFulfillment or RestoreFulfillment")

	// ErrTrackingNumberIsRequired is returned by Ship when no tracking number is supplied.
	ErrTrackingNumberIsRequired = errs.NewValueIsRequiredError("trackingNumber")

	// ErrReasonIsRequired is returned by MarkFailed when no failure reason is supplied.
	ErrReasonIsRequired = errs.NewValueIsRequiredError("reason")
)

// defaultCurrency is used by TotalCost when no cost component carries a currency.
const defaultCurrency = "USD"

// Fulfillment is the aggregate root tracking the physical shipment of one
// order from creation through delivery, return or cancellation.
//
// Fulfillment maintains these invariants:
//   - status is always one of the twelve lifecycle states, and every status
//     change is checked against the transition table before it happens
//   - the tracking-event ledger is append-only; every status change appends
//     exactly one event (carrier updates may append more)
//   - updatedAt is refreshed and version is incremented on every mutation,
//     including ones that do not change status
//   - packageCount is always at least 1
//
// Every operation either succeeds fully or leaves the aggregate unchanged;
// guard violations are synchronous domain errors, never partial updates.
// The aggregate performs no I/O and holds no locks: the surrounding
// application layer is responsible for serializing access per record, using
// the version counter for optimistic concurrency at save time.
type Fulfillment struct {
	id          kernel.UUID
	orderID     kernel.UUID
	orderNumber string

	status       Status
	statusReason string

	warehouseID          *kernel.UUID
	shippingMethodID     *kernel.UUID
	carrierID            *kernel.UUID
	fulfillmentPartnerID *kernel.UUID

	trackingNumber string
	trackingURL    string
	carrierCode    string
	serviceCode    string

	shipToAddress     kernel.Address
	packageWeight     *kernel.Weight
	packageDimensions *kernel.Dimensions
	packageCount      int

	shippingCost  *kernel.Money
	insuranceCost *kernel.Money
	handlingCost  *kernel.Money

	pickedAt            *time.Time
	packedAt            *time.Time
	shippedAt           *time.Time
	deliveredAt         *time.Time
	estimatedDeliveryAt *time.Time
	actualDeliveryAt    *time.Time
	createdAt           time.Time
	updatedAt           time.Time

	trackingEvents []TrackingEvent

	internalNotes string
	customerNotes string

	pickedBy  string
	packedBy  string
	shippedBy string

	// version increments on every mutation to support optimistic-concurrency
	// checks in the persistence layer. persistedVersion is the version the
	// aggregate was loaded with; the stored row must still carry exactly that
	// value for an update to land.
	version          int
	persistedVersion int

	guard guard.ConstructorGuard
}

// NewFulfillment creates a Fulfillment in pending status with an empty
// tracking ledger and a package count of 1. Optional attributes (order number,
// warehouse, shipping method, estimated delivery) are set afterwards through
// the corresponding operations.
func NewFulfillment(id, orderID kernel.UUID, shipToAddress kernel.Address) (*Fulfillment, error) {
	f := &Fulfillment{
		status:       Pending,
		packageCount: 1,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		f.setID(id),
		f.setOrderID(orderID),
		f.setShipToAddress(shipToAddress),
	); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	f.createdAt = now
	f.updatedAt = now
	return f, nil
}

// RestoreFulfillmentParams carries the full persisted field set for rehydration.
type RestoreFulfillmentParams struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	OrderNumber string

	Status       Status
	StatusReason string

	WarehouseID          *kernel.UUID
	ShippingMethodID     *kernel.UUID
	CarrierID            *kernel.UUID
	FulfillmentPartnerID *kernel.UUID

	TrackingNumber string
	TrackingURL    string
	CarrierCode    string
	ServiceCode    string

	ShipToAddress     kernel.Address
	PackageWeight     *kernel.Weight
	PackageDimensions *kernel.Dimensions
	PackageCount      int

	ShippingCost  *kernel.Money
	InsuranceCost *kernel.Money
	HandlingCost  *kernel.Money

	PickedAt            *time.Time
	PackedAt            *time.Time
	ShippedAt           *time.Time
	DeliveredAt         *time.Time
	EstimatedDeliveryAt *time.Time
	ActualDeliveryAt    *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	TrackingEvents []TrackingEvent

	InternalNotes string
	CustomerNotes string

	PickedBy  string
	PackedBy  string
	ShippedBy string

	Version int
}

// RestoreFulfillment reconstructs a Fulfillment from persistence.
// The persisted state is trusted: business invariants are not re-validated,
// matching the rehydration contract where the repository is the source of truth.
func RestoreFulfillment(p RestoreFulfillmentParams) *Fulfillment {
	events := make([]TrackingEvent, len(p.TrackingEvents))
	copy(events, p.TrackingEvents)

	return &Fulfillment{
		id:                   p.ID,
		orderID:              p.OrderID,
		orderNumber:          p.OrderNumber,
		status:               p.Status,
		statusReason:         p.StatusReason,
		warehouseID:          p.WarehouseID,
		shippingMethodID:     p.ShippingMethodID,
		carrierID:            p.CarrierID,
		fulfillmentPartnerID: p.FulfillmentPartnerID,
		trackingNumber:       p.TrackingNumber,
		trackingURL:          p.TrackingURL,
		carrierCode:          p.CarrierCode,
		serviceCode:          p.ServiceCode,
		shipToAddress:        p.ShipToAddress,
		packageWeight:        p.PackageWeight,
		packageDimensions:    p.PackageDimensions,
		packageCount:         p.PackageCount,
		shippingCost:         p.ShippingCost,
		insuranceCost:        p.InsuranceCost,
		handlingCost:         p.HandlingCost,
		pickedAt:             p.PickedAt,
		packedAt:             p.PackedAt,
		shippedAt:            p.ShippedAt,
		deliveredAt:          p.DeliveredAt,
		estimatedDeliveryAt:  p.EstimatedDeliveryAt,
		actualDeliveryAt:     p.ActualDeliveryAt,
		createdAt:            p.CreatedAt,
		updatedAt:            p.UpdatedAt,
		trackingEvents:       events,
		internalNotes:        p.InternalNotes,
		customerNotes:        p.CustomerNotes,
		pickedBy:             p.PickedBy,
		packedBy:             p.PackedBy,
		shippedBy:            p.ShippedBy,
		version:              p.Version,
		persistedVersion:     p.Version,
		guard:                guard.NewConstructorGuard(),
	}
}

// Validate ensures the Fulfillment instance was properly constructed.
func (f *Fulfillment) Validate() error {
	if f == nil {
		return ErrFulfillmentIsNotConstructed
	}
	return f.guard.Validate(ErrFulfillmentIsNotConstructed)
}

// IsEqual compares two fulfillments by their unique identifiers.
func (f *Fulfillment) IsEqual(other *Fulfillment) bool {
	return other != nil && f.id.IsEqual(other.id)
}

// StartProcessing moves a pending fulfillment into processing,
// signalling that the warehouse has accepted it.
func (f *Fulfillment) StartProcessing() error {
	return f.transitionTo(Processing, "")
}

// StartPicking moves the fulfillment into picking and records who is picking
// and when picking started. An empty pickedBy leaves the actor unset.
func (f *Fulfillment) StartPicking(pickedBy string) error {
	if err := f.transitionTo(Picking, ""); err != nil {
		return err
	}

	now := time.Now().UTC()
	f.pickedAt = &now
	if pickedBy != "" {
		f.pickedBy = pickedBy
	}
	return nil
}

// CompletePicking moves the fulfillment from picking into packing.
// Unlike the generic transition, it requires the current status to be exactly
// picking; the operation is meaningless from anywhere else.
func (f *Fulfillment) CompletePicking() error {
	if f.status != Picking {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("must be in picking status to complete picking, current status is %s", f.status))
	}

	return f.transitionTo(Packing, "")
}

// StartPacking records who is packing the fulfillment. This is a sub-step
// inside the packing phase and does not change status.
func (f *Fulfillment) StartPacking(packedBy string) {
	if packedBy != "" {
		f.packedBy = packedBy
	}
	f.touch()
}

// CompletePacking records the final package weight, dimensions and count,
// stamps packedAt, and moves the fulfillment to ready_to_ship.
// A packageCount of 0 means "not specified" and defaults to 1; negative
// counts are rejected. Requires the current status to be exactly packing.
func (f *Fulfillment) CompletePacking(
	weight *kernel.Weight,
	dimensions *kernel.Dimensions,
	packageCount int,
) error {
	if f.status != Packing {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("must be in packing status to complete packing, current status is %s", f.status))
	}
	if packageCount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("packageCount",
			fmt.Errorf("%d is negative", packageCount))
	}
	if weight != nil {
		if err := weight.Validate(); err != nil {
			return err
		}
	}
	if dimensions != nil {
		if err := dimensions.Validate(); err != nil {
			return err
		}
	}

	if err := f.transitionTo(ReadyToShip, ""); err != nil {
		return err
	}

	if weight != nil {
		w := *weight
		f.packageWeight = &w
	}
	if dimensions != nil {
		d := *dimensions
		f.packageDimensions = &d
	}
	if packageCount == 0 {
		packageCount = 1
	}
	f.packageCount = packageCount

	now := time.Now().UTC()
	f.packedAt = &now
	return nil
}

// Ship records the carrier tracking details, stamps shippedAt, and moves the
// fulfillment to shipped. Requires the current status to be exactly
// ready_to_ship and a non-empty tracking number.
func (f *Fulfillment) Ship(trackingNumber, trackingURL, shippedBy string) error {
	if f.status != ReadyToShip {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("must be in ready_to_ship status to ship, current status is %s", f.status))
	}
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	if err := f.transitionTo(Shipped, ""); err != nil {
		return err
	}

	f.trackingNumber = trackingNumber
	f.trackingURL = trackingURL
	if shippedBy != "" {
		f.shippedBy = shippedBy
	}

	now := time.Now().UTC()
	f.shippedAt = &now
	return nil
}

// UpdateInTransit logs a carrier scan. When the fulfillment is still in
// shipped status it first transitions to in_transit; in every case it then
// appends an in_transit tracking event with the scan location.
//
// The operation is intentionally repeatable: once in_transit, further calls
// keep appending scan events without attempting another transition.
func (f *Fulfillment) UpdateInTransit(location string) error {
	if f.status == Shipped {
		if err := f.transitionTo(InTransit, ""); err != nil {
			return err
		}
	}

	f.appendEvent(InTransit.String(), location, "package in transit")
	f.touch()
	return nil
}

// OutForDelivery moves the fulfillment onto the final delivery vehicle.
func (f *Fulfillment) OutForDelivery() error {
	return f.transitionTo(OutForDelivery, "")
}

// MarkDelivered records the delivery and moves the fulfillment to delivered.
// A nil actualDeliveryAt defaults to now; the value is mirrored into
// deliveredAt.
func (f *Fulfillment) MarkDelivered(actualDeliveryAt *time.Time) error {
	if err := f.transitionTo(Delivered, ""); err != nil {
		return err
	}

	delivered := time.Now().UTC()
	if actualDeliveryAt != nil {
		delivered = *actualDeliveryAt
	}
	f.actualDeliveryAt = &delivered
	f.deliveredAt = &delivered
	return nil
}

// MarkFailed records a delivery failure with a mandatory reason.
// The fulfillment can later recover to processing or move to returned.
func (f *Fulfillment) MarkFailed(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}
	return f.transitionTo(Failed, reason)
}

// MarkReturned moves the fulfillment to the terminal returned status.
// The reason is optional; a default message is derived when empty.
func (f *Fulfillment) MarkReturned(reason string) error {
	return f.transitionTo(Returned, reason)
}

// Cancel moves the fulfillment to the terminal cancelled status.
// The reason is optional; a default message is derived when empty.
func (f *Fulfillment) Cancel(reason string) error {
	return f.transitionTo(Cancelled, reason)
}

// AddTrackingEvent appends a carrier-relayed entry to the tracking ledger
// without checking or altering the lifecycle status. The label is free text
// and may differ from the canonical status names.
func (f *Fulfillment) AddTrackingEvent(status, description, location string) error {
	event, err := NewTrackingEvent(time.Now().UTC(), status, location, description)
	if err != nil {
		return err
	}

	f.trackingEvents = append(f.trackingEvents, event)
	f.touch()
	return nil
}

// AssignWarehouse records which warehouse will fulfill the order.
// Only permitted while the fulfillment is still pending.
func (f *Fulfillment) AssignWarehouse(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	if f.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("warehouse can only be assigned in pending status, current status is %s", f.status))
	}

	f.warehouseID = &warehouseID
	f.touch()
	return nil
}

// AssignShippingMethod records the shipping method and optionally the carrier.
// Forbidden once the package has shipped or the fulfillment is complete.
func (f *Fulfillment) AssignShippingMethod(shippingMethodID kernel.UUID, carrierID *kernel.UUID) error {
	if err := shippingMethodID.Validate(); err != nil {
		return err
	}
	if carrierID != nil {
		if err := carrierID.Validate(); err != nil {
			return err
		}
	}
	if f.IsShipped() || f.IsComplete() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("shipping method cannot be changed in %s status", f.status))
	}

	f.shippingMethodID = &shippingMethodID
	if carrierID != nil {
		id := *carrierID
		f.carrierID = &id
	}
	f.touch()
	return nil
}

// AssignFulfillmentPartner records the third-party partner handling this fulfillment.
func (f *Fulfillment) AssignFulfillmentPartner(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	f.fulfillmentPartnerID = &partnerID
	f.touch()
	return nil
}

// SetCarrierCodes records the carrier and service codes used for rate and
// label references.
func (f *Fulfillment) SetCarrierCodes(carrierCode, serviceCode string) {
	f.carrierCode = carrierCode
	f.serviceCode = serviceCode
	f.touch()
}

// SetOrderNumber records the human-readable order number.
func (f *Fulfillment) SetOrderNumber(orderNumber string) {
	f.orderNumber = orderNumber
	f.touch()
}

// SetShippingCost records the shipping cost component.
func (f *Fulfillment) SetShippingCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	f.shippingCost = &cost
	f.touch()
	return nil
}

// SetInsuranceCost records the insurance cost component.
func (f *Fulfillment) SetInsuranceCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	f.insuranceCost = &cost
	f.touch()
	return nil
}

// SetHandlingCost records the handling cost component.
func (f *Fulfillment) SetHandlingCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	f.handlingCost = &cost
	f.touch()
	return nil
}

// SetEstimatedDelivery records when the package is expected to arrive.
func (f *Fulfillment) SetEstimatedDelivery(estimatedDeliveryAt time.Time) error {
	if estimatedDeliveryAt.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDeliveryAt")
	}

	t := estimatedDeliveryAt.UTC()
	f.estimatedDeliveryAt = &t
	f.touch()
	return nil
}

// SetInternalNotes records free-text notes visible to back-office staff only.
func (f *Fulfillment) SetInternalNotes(notes string) {
	f.internalNotes = notes
	f.touch()
}

// SetCustomerNotes records free-text notes visible to the customer.
func (f *Fulfillment) SetCustomerNotes(notes string) {
	f.customerNotes = notes
	f.touch()
}

// IsPending reports whether the fulfillment has not yet been accepted by a warehouse.
func (f *Fulfillment) IsPending() bool {
	return f.status == Pending
}

// IsProcessing reports whether the fulfillment is anywhere in the warehouse
// phase: processing, picking or packing.
func (f *Fulfillment) IsProcessing() bool {
	return f.status == Processing || f.status == Picking || f.status == Packing
}

// IsReadyToShip reports whether the package awaits carrier pickup.
func (f *Fulfillment) IsReadyToShip() bool {
	return f.status == ReadyToShip
}

// IsShipped reports whether the package is with the carrier:
// shipped, in_transit or out_for_delivery.
func (f *Fulfillment) IsShipped() bool {
	return f.status == Shipped || f.status == InTransit || f.status == OutForDelivery
}

// IsDelivered reports whether the package reached the customer.
func (f *Fulfillment) IsDelivered() bool {
	return f.status == Delivered
}

// IsCancelled reports whether the fulfillment was cancelled.
func (f *Fulfillment) IsCancelled() bool {
	return f.status == Cancelled
}

// IsFailed reports whether the last delivery attempt failed.
func (f *Fulfillment) IsFailed() bool {
	return f.status == Failed
}

// IsComplete reports whether the lifecycle has finished:
// delivered, returned or cancelled.
func (f *Fulfillment) IsComplete() bool {
	return f.status == Delivered || f.status == Returned || f.status == Cancelled
}

// TotalCost sums the shipping, insurance and handling cost components that
// are present. The currency defaults to the shipping cost's currency, or USD
// when no shipping cost is set; a currency mismatch between components is an
// error. With no components present the result is zero.
func (f *Fulfillment) TotalCost() (kernel.Money, error) {
	currency := defaultCurrency
	if f.shippingCost != nil {
		currency = f.shippingCost.Currency()
	}

	total, err := kernel.NewZeroMoney(currency)
	if err != nil {
		return kernel.Money{}, err
	}

	for _, cost := range []*kernel.Money{f.shippingCost, f.insuranceCost, f.handlingCost} {
		if cost == nil {
			continue
		}
		total, err = total.Add(*cost)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}

// IsLate reports whether the fulfillment missed its delivery estimate.
// Without an estimate nothing is ever late. A delivered fulfillment is late
// when the actual delivery happened after the estimate; an undelivered one is
// late as soon as the wall clock passes the estimate, even before any failure
// is declared.
func (f *Fulfillment) IsLate() bool {
	if f.estimatedDeliveryAt == nil {
		return false
	}

	if f.IsDelivered() && f.actualDeliveryAt != nil {
		return f.actualDeliveryAt.After(*f.estimatedDeliveryAt)
	}

	return time.Now().After(*f.estimatedDeliveryAt)
}

// ID returns the fulfillment's unique identifier.
func (f *Fulfillment) ID() kernel.UUID {
	return f.id
}

// OrderID returns the identifier of the order being fulfilled.
func (f *Fulfillment) OrderID() kernel.UUID {
	return f.orderID
}

// OrderNumber returns the human-readable order number, empty if unset.
func (f *Fulfillment) OrderNumber() string {
	return f.orderNumber
}

// Status returns the current lifecycle status.
func (f *Fulfillment) Status() Status {
	return f.status
}

// StatusReason returns the reason recorded with the last status change.
func (f *Fulfillment) StatusReason() string {
	return f.statusReason
}

// WarehouseID returns the assigned warehouse, nil if unassigned.
func (f *Fulfillment) WarehouseID() *kernel.UUID {
	return copyUUIDPtr(f.warehouseID)
}

// ShippingMethodID returns the assigned shipping method, nil if unassigned.
func (f *Fulfillment) ShippingMethodID() *kernel.UUID {
	return copyUUIDPtr(f.shippingMethodID)
}

// CarrierID returns the assigned carrier, nil if unassigned.
func (f *Fulfillment) CarrierID() *kernel.UUID {
	return copyUUIDPtr(f.carrierID)
}

// FulfillmentPartnerID returns the assigned fulfillment partner, nil if unassigned.
func (f *Fulfillment) FulfillmentPartnerID() *kernel.UUID {
	return copyUUIDPtr(f.fulfillmentPartnerID)
}

// TrackingNumber returns the carrier tracking number, empty until shipped.
func (f *Fulfillment) TrackingNumber() string {
	return f.trackingNumber
}

// TrackingURL returns the carrier tracking URL, empty if unset.
func (f *Fulfillment) TrackingURL() string {
	return f.trackingURL
}

// CarrierCode returns the carrier code, empty if unset.
func (f *Fulfillment) CarrierCode() string {
	return f.carrierCode
}

// ServiceCode returns the carrier service code, empty if unset.
func (f *Fulfillment) ServiceCode() string {
	return f.serviceCode
}

// ShipToAddress returns the delivery destination.
func (f *Fulfillment) ShipToAddress() kernel.Address {
	return f.shipToAddress
}

// PackageWeight returns the recorded package weight, nil if not yet packed.
func (f *Fulfillment) PackageWeight() *kernel.Weight {
	if f.packageWeight == nil {
		return nil
	}
	w := *f.packageWeight
	return &w
}

// PackageDimensions returns the recorded package dimensions, nil if not yet packed.
func (f *Fulfillment) PackageDimensions() *kernel.Dimensions {
	if f.packageDimensions == nil {
		return nil
	}
	d := *f.packageDimensions
	return &d
}

// PackageCount returns the number of packages, always at least 1.
func (f *Fulfillment) PackageCount() int {
	return f.packageCount
}

// ShippingCost returns the shipping cost component, nil if unset.
func (f *Fulfillment) ShippingCost() *kernel.Money {
	return copyMoneyPtr(f.shippingCost)
}

// InsuranceCost returns the insurance cost component, nil if unset.
func (f *Fulfillment) InsuranceCost() *kernel.Money {
	return copyMoneyPtr(f.insuranceCost)
}

// HandlingCost returns the handling cost component, nil if unset.
func (f *Fulfillment) HandlingCost() *kernel.Money {
	return copyMoneyPtr(f.handlingCost)
}

// PickedAt returns when picking started, nil if not yet picked.
func (f *Fulfillment) PickedAt() *time.Time {
	return copyTimePtr(f.pickedAt)
}

// PackedAt returns when packing completed, nil if not yet packed.
func (f *Fulfillment) PackedAt() *time.Time {
	return copyTimePtr(f.packedAt)
}

// ShippedAt returns when the carrier took the package, nil if not yet shipped.
func (f *Fulfillment) ShippedAt() *time.Time {
	return copyTimePtr(f.shippedAt)
}

// DeliveredAt returns when the package was delivered, nil if not delivered.
func (f *Fulfillment) DeliveredAt() *time.Time {
	return copyTimePtr(f.deliveredAt)
}

// EstimatedDeliveryAt returns the delivery estimate, nil if unset.
func (f *Fulfillment) EstimatedDeliveryAt() *time.Time {
	return copyTimePtr(f.estimatedDeliveryAt)
}

// ActualDeliveryAt returns the actual delivery timestamp, nil if not delivered.
func (f *Fulfillment) ActualDeliveryAt() *time.Time {
	return copyTimePtr(f.actualDeliveryAt)
}

// CreatedAt returns when the fulfillment was created.
func (f *Fulfillment) CreatedAt() time.Time {
	return f.createdAt
}

// UpdatedAt returns when the fulfillment was last mutated.
func (f *Fulfillment) UpdatedAt() time.Time {
	return f.updatedAt
}

// TrackingEvents returns a snapshot copy of the tracking ledger in insertion
// order. Callers never receive the live sequence; the ledger is owned
// exclusively by the aggregate.
func (f *Fulfillment) TrackingEvents() []TrackingEvent {
	events := make([]TrackingEvent, len(f.trackingEvents))
	copy(events, f.trackingEvents)
	return events
}

// InternalNotes returns the back-office notes.
func (f *Fulfillment) InternalNotes() string {
	return f.internalNotes
}

// CustomerNotes returns the customer-visible notes.
func (f *Fulfillment) CustomerNotes() string {
	return f.customerNotes
}

// PickedBy returns who picked the items, empty if unrecorded.
func (f *Fulfillment) PickedBy() string {
	return f.pickedBy
}

// PackedBy returns who packed the package, empty if unrecorded.
func (f *Fulfillment) PackedBy() string {
	return f.packedBy
}

// ShippedBy returns who handed the package to the carrier, empty if unrecorded.
func (f *Fulfillment) ShippedBy() string {
	return f.shippedBy
}

// Version returns the optimistic-concurrency version counter.
func (f *Fulfillment) Version() int {
	return f.version
}

// PersistedVersion returns the version this aggregate carried when it was
// loaded from storage. Mutations advance Version but leave this untouched,
// giving the persistence layer the value to match against the stored row.
func (f *Fulfillment) PersistedVersion() int {
	return f.persistedVersion
}

// ConfirmPersisted re-baselines the persisted version after a successful
// write. Called by the persistence layer, never by application code.
func (f *Fulfillment) ConfirmPersisted() {
	f.persistedVersion = f.version
}

// transitionTo performs a guarded status change: the transition table is
// checked first, and only on success are the status, reason, ledger and
// timestamps updated. An empty reason derives a default message.
func (f *Fulfillment) transitionTo(target Status, reason string) error {
	newStatus, err := f.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if reason == "" {
		reason = fmt.Sprintf("status changed to %s", target)
	}

	f.status = newStatus
	f.statusReason = reason
	f.appendEvent(target.String(), "", reason)
	f.touch()
	return nil
}

// appendEvent appends a ledger entry stamped with the current time.
// Callers are responsible for calling touch.
func (f *Fulfillment) appendEvent(status, location, description string) {
	f.trackingEvents = append(f.trackingEvents, TrackingEvent{
		timestamp:   time.Now().UTC(),
		status:      status,
		location:    location,
		description: description,
		guard:       guard.NewConstructorGuard(),
	})
}

// touch refreshes updatedAt and increments the version counter.
// Every mutating operation ends here, including non-transition setters.
func (f *Fulfillment) touch() {
	f.updatedAt = time.Now().UTC()
	f.version++
}

func (f *Fulfillment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Fulfillment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	f.orderID = orderID
	return nil
}

func (f *Fulfillment) setShipToAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	f.shipToAddress = address
	return nil
}

func copyUUIDPtr(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copyMoneyPtr(m *kernel.Money) *kernel.Money {
	if m == nil {
		return nil
	}
	v := *m
	return &v
}

func copyTimePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

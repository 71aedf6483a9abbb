// Package fulfillmentrepo provides data transfer objects and mapping functions
// for fulfillment persistence. This package implements the repository pattern
// for the fulfillment aggregate, handling the conversion between domain
// entities and database representations.
package fulfillmentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/fulfillment"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FulfillmentDTO represents the database structure for persisting fulfillment
// aggregates. The tracking-event ledger lives in a child table; everything
// else is flattened onto the fulfillments row.
type FulfillmentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	OrderNumber string

	Status       int `gorm:"index"`
	StatusReason string

	WarehouseID          *uuid.UUID `gorm:"type:uuid"`
	ShippingMethodID     *uuid.UUID `gorm:"type:uuid"`
	CarrierID            *uuid.UUID `gorm:"type:uuid"`
	FulfillmentPartnerID *uuid.UUID `gorm:"type:uuid"`

	TrackingNumber string `gorm:"index"`
	TrackingURL    string
	CarrierCode    string
	ServiceCode    string

	ShipTo AddressDTO `gorm:"embedded;embeddedPrefix:ship_to_"`

	WeightValue *float64
	WeightUnit  *string

	DimensionsLength *float64
	DimensionsWidth  *float64
	DimensionsHeight *float64
	DimensionsUnit   *string

	PackageCount int

	ShippingCostAmount    *float64
	ShippingCostCurrency  *string
	InsuranceCostAmount   *float64
	InsuranceCostCurrency *string
	HandlingCostAmount    *float64
	HandlingCostCurrency  *string

	PickedAt            *time.Time
	PackedAt            *time.Time
	ShippedAt           *time.Time
	DeliveredAt         *time.Time
	EstimatedDeliveryAt *time.Time `gorm:"index"`
	ActualDeliveryAt    *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	TrackingEvents []TrackingEventDTO `gorm:"foreignKey:FulfillmentID;references:ID"`

	InternalNotes string
	CustomerNotes string

	PickedBy  string
	PackedBy  string
	ShippedBy string

	Version int
}

// TableName specifies the database table name for fulfillment entities.
func (FulfillmentDTO) TableName() string {
	return "fulfillments"
}

// AddressDTO represents the embedded ship-to address within the fulfillments
// table. Latitude and longitude are null when the address is not geocoded.
type AddressDTO struct {
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
	Latitude   *float64
	Longitude  *float64
}

// TrackingEventDTO represents one row of the append-only tracking ledger.
// Rows are ordered by the surrogate key, which preserves insertion order.
type TrackingEventDTO struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	FulfillmentID uuid.UUID `gorm:"type:uuid;index"`
	Timestamp     time.Time
	Status        string
	Location      string
	Description   string
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "fulfillment_tracking_events"
}

// fromDomain converts a fulfillment aggregate to its database representation.
func fromDomain(f *fulfillment.Fulfillment) FulfillmentDTO {
	dto := FulfillmentDTO{
		ID:                   f.ID().Bytes(),
		OrderID:              f.OrderID().Bytes(),
		OrderNumber:          f.OrderNumber(),
		Status:               int(f.Status()),
		StatusReason:         f.StatusReason(),
		WarehouseID:          uuidPtrFromDomain(f.WarehouseID()),
		ShippingMethodID:     uuidPtrFromDomain(f.ShippingMethodID()),
		CarrierID:            uuidPtrFromDomain(f.CarrierID()),
		FulfillmentPartnerID: uuidPtrFromDomain(f.FulfillmentPartnerID()),
		TrackingNumber:       f.TrackingNumber(),
		TrackingURL:          f.TrackingURL(),
		CarrierCode:          f.CarrierCode(),
		ServiceCode:          f.ServiceCode(),
		ShipTo:               addressFromDomain(f.ShipToAddress()),
		PackageCount:         f.PackageCount(),
		PickedAt:             f.PickedAt(),
		PackedAt:             f.PackedAt(),
		ShippedAt:            f.ShippedAt(),
		DeliveredAt:          f.DeliveredAt(),
		EstimatedDeliveryAt:  f.EstimatedDeliveryAt(),
		ActualDeliveryAt:     f.ActualDeliveryAt(),
		CreatedAt:            f.CreatedAt(),
		UpdatedAt:            f.UpdatedAt(),
		InternalNotes:        f.InternalNotes(),
		CustomerNotes:        f.CustomerNotes(),
		PickedBy:             f.PickedBy(),
		PackedBy:             f.PackedBy(),
		ShippedBy:            f.ShippedBy(),
		Version:              f.Version(),
	}

	if w := f.PackageWeight(); w != nil {
		value := w.Value()
		unit := w.Unit().String()
		dto.WeightValue = &value
		dto.WeightUnit = &unit
	}

	if d := f.PackageDimensions(); d != nil {
		length, width, height := d.Length(), d.Width(), d.Height()
		unit := d.Unit().String()
		dto.DimensionsLength = &length
		dto.DimensionsWidth = &width
		dto.DimensionsHeight = &height
		dto.DimensionsUnit = &unit
	}

	dto.ShippingCostAmount, dto.ShippingCostCurrency = moneyFromDomain(f.ShippingCost())
	dto.InsuranceCostAmount, dto.InsuranceCostCurrency = moneyFromDomain(f.InsuranceCost())
	dto.HandlingCostAmount, dto.HandlingCostCurrency = moneyFromDomain(f.HandlingCost())

	events := f.TrackingEvents()
	dto.TrackingEvents = make([]TrackingEventDTO, 0, len(events))
	for _, event := range events {
		dto.TrackingEvents = append(dto.TrackingEvents, TrackingEventDTO{
			FulfillmentID: dto.ID,
			Timestamp:     event.Timestamp(),
			Status:        event.Status(),
			Location:      event.Location(),
			Description:   event.Description(),
		})
	}

	return dto
}

// toDomain converts a database DTO to a fulfillment aggregate.
// Reconstructs the complete aggregate including the tracking ledger using
// RestoreFulfillment.
func toDomain(dto FulfillmentDTO) (*fulfillment.Fulfillment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	warehouseID, err := uuidPtrToDomain(dto.WarehouseID)
	if err != nil {
		return nil, err
	}
	shippingMethodID, err := uuidPtrToDomain(dto.ShippingMethodID)
	if err != nil {
		return nil, err
	}
	carrierID, err := uuidPtrToDomain(dto.CarrierID)
	if err != nil {
		return nil, err
	}
	partnerID, err := uuidPtrToDomain(dto.FulfillmentPartnerID)
	if err != nil {
		return nil, err
	}

	shipTo, err := addressToDomain(dto.ShipTo)
	if err != nil {
		return nil, err
	}

	var weight *kernel.Weight
	if dto.WeightValue != nil && dto.WeightUnit != nil {
		w, weightErr := kernel.NewWeight(*dto.WeightValue, kernel.WeightUnit(*dto.WeightUnit))
		if weightErr != nil {
			return nil, weightErr
		}
		weight = &w
	}

	var dimensions *kernel.Dimensions
	if dto.DimensionsLength != nil && dto.DimensionsWidth != nil &&
		dto.DimensionsHeight != nil && dto.DimensionsUnit != nil {
		d, dimErr := kernel.NewDimensions(
			*dto.DimensionsLength,
			*dto.DimensionsWidth,
			*dto.DimensionsHeight,
			kernel.DimensionUnit(*dto.DimensionsUnit),
		)
		if dimErr != nil {
			return nil, dimErr
		}
		dimensions = &d
	}

	shippingCost, err := moneyToDomain(dto.ShippingCostAmount, dto.ShippingCostCurrency)
	if err != nil {
		return nil, err
	}
	insuranceCost, err := moneyToDomain(dto.InsuranceCostAmount, dto.InsuranceCostCurrency)
	if err != nil {
		return nil, err
	}
	handlingCost, err := moneyToDomain(dto.HandlingCostAmount, dto.HandlingCostCurrency)
	if err != nil {
		return nil, err
	}

	events := make([]fulfillment.TrackingEvent, 0, len(dto.TrackingEvents))
	for _, eventDTO := range dto.TrackingEvents {
		event, eventErr := fulfillment.NewTrackingEvent(
			eventDTO.Timestamp,
			eventDTO.Status,
			eventDTO.Location,
			eventDTO.Description,
		)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	return fulfillment.RestoreFulfillment(fulfillment.RestoreFulfillmentParams{
		ID:                   id,
		OrderID:              orderID,
		OrderNumber:          dto.OrderNumber,
		Status:               fulfillment.Status(dto.Status),
		StatusReason:         dto.StatusReason,
		WarehouseID:          warehouseID,
		ShippingMethodID:     shippingMethodID,
		CarrierID:            carrierID,
		FulfillmentPartnerID: partnerID,
		TrackingNumber:       dto.TrackingNumber,
		TrackingURL:          dto.TrackingURL,
		CarrierCode:          dto.CarrierCode,
		ServiceCode:          dto.ServiceCode,
		ShipToAddress:        shipTo,
		PackageWeight:        weight,
		PackageDimensions:    dimensions,
		PackageCount:         dto.PackageCount,
		ShippingCost:         shippingCost,
		InsuranceCost:        insuranceCost,
		HandlingCost:         handlingCost,
		PickedAt:             dto.PickedAt,
		PackedAt:             dto.PackedAt,
		ShippedAt:            dto.ShippedAt,
		DeliveredAt:          dto.DeliveredAt,
		EstimatedDeliveryAt:  dto.EstimatedDeliveryAt,
		ActualDeliveryAt:     dto.ActualDeliveryAt,
		CreatedAt:            dto.CreatedAt,
		UpdatedAt:            dto.UpdatedAt,
		TrackingEvents:       events,
		InternalNotes:        dto.InternalNotes,
		CustomerNotes:        dto.CustomerNotes,
		PickedBy:             dto.PickedBy,
		PackedBy:             dto.PackedBy,
		ShippedBy:            dto.ShippedBy,
		Version:              dto.Version,
	}), nil
}

func addressFromDomain(addr kernel.Address) AddressDTO {
	dto := AddressDTO{
		Line1:      addr.Line1(),
		Line2:      addr.Line2(),
		City:       addr.City(),
		State:      addr.State(),
		PostalCode: addr.PostalCode(),
		Country:    addr.Country(),
	}

	if lat, lon, ok := addr.Coordinates(); ok {
		dto.Latitude = &lat
		dto.Longitude = &lon
	}

	return dto
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	if dto.Latitude != nil && dto.Longitude != nil {
		return kernel.NewAddressWithCoordinates(
			dto.Line1, dto.Line2, dto.City, dto.State, dto.PostalCode, dto.Country,
			*dto.Latitude, *dto.Longitude,
		)
	}

	return kernel.NewAddress(dto.Line1, dto.Line2, dto.City, dto.State, dto.PostalCode, dto.Country)
}

func moneyFromDomain(m *kernel.Money) (*float64, *string) {
	if m == nil {
		return nil, nil
	}

	amount := m.Amount()
	currency := m.Currency()
	return &amount, &currency
}

func moneyToDomain(amount *float64, currency *string) (*kernel.Money, error) {
	if amount == nil || currency == nil {
		return nil, nil
	}

	m, err := kernel.NewMoney(*amount, *currency)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func uuidPtrFromDomain(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}

	raw := id.Bytes()
	return &raw
}

func uuidPtrToDomain(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}

	return &id, nil
}

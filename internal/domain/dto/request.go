// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model. The rate
// request in particular absorbs every input shape upstream checkouts are
// known to send, so the core only ever sees one normalized form.
package dto

import (
	"encoding/json"

	"github.com/spedire/rate-service/internal/domain/model"
)

// Destination is the shipment destination. Checkout platforms send the
// province either as "region" or as "province"; both are accepted.
type Destination struct {
	Region   string `json:"region"`
	Province string `json:"province"`
}

// value returns whichever key was populated.
func (d *Destination) value() string {
	if d == nil {
		return ""
	}
	if d.Region != "" {
		return d.Region
	}
	return d.Province
}

// LineItemPayload is one order line. Weight arrives as "weight_grams" or the
// carrier-callback legacy "grams"; a missing or non-positive value falls back
// to the configured default downstream.
type LineItemPayload struct {
	WeightGrams float64 `json:"weight_grams"`
	Grams       float64 `json:"grams"`
	Quantity    int     `json:"quantity"`
}

func (p LineItemPayload) toModel() model.LineItem {
	grams := p.WeightGrams
	if grams <= 0 {
		grams = p.Grams
	}
	return model.LineItem{UnitWeightGrams: grams, Quantity: p.Quantity}
}

// shipment is the common payload core, found either at the top level or
// under the carrier-callback "rate" wrapper.
type shipment struct {
	Destination *Destination      `json:"destination"`
	Items       []LineItemPayload `json:"items"`
	LineItems   []LineItemPayload `json:"line_items"`
}

// RateRequest represents the JSON request body for the rate quote endpoint.
//
// Two envelopes are accepted: the plain document
// {"destination": {...}, "items": [...]} and the Shopify carrier-service
// callback {"rate": {"destination": {...}, "line_items": [...]}}.
type RateRequest struct {
	Rate *shipment `json:"rate"`
	shipment
}

// UnmarshalJSON decodes both envelopes without double-reading the body.
func (r *RateRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Rate        *shipment         `json:"rate"`
		Destination *Destination      `json:"destination"`
		Items       []LineItemPayload `json:"items"`
		LineItems   []LineItemPayload `json:"line_items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Rate = raw.Rate
	r.Destination = raw.Destination
	r.Items = raw.Items
	r.LineItems = raw.LineItems
	return nil
}

// Region returns the raw destination region string, empty when absent.
func (r *RateRequest) Region() string {
	if r.Rate != nil {
		if v := r.Rate.Destination.value(); v != "" {
			return v
		}
	}
	return r.Destination.value()
}

// ModelItems returns the normalized line items. "line_items" wins over
// "items" when both are present, matching the carrier callback contract.
func (r *RateRequest) ModelItems() []model.LineItem {
	src := r.pickItems()
	items := make([]model.LineItem, len(src))
	for i, p := range src {
		items[i] = p.toModel()
	}
	return items
}

func (r *RateRequest) pickItems() []LineItemPayload {
	if r.Rate != nil {
		if len(r.Rate.LineItems) > 0 {
			return r.Rate.LineItems
		}
		if len(r.Rate.Items) > 0 {
			return r.Rate.Items
		}
	}
	if len(r.LineItems) > 0 {
		return r.LineItems
	}
	return r.Items
}

// ReplaceTariffsRequest represents the JSON request body for replacing the
// tariff table. Both a bare array of records (the shape of an exported
// tariffs.json) and an object with a "records" field are accepted.
type ReplaceTariffsRequest struct {
	Records   []model.TariffRecord `json:"records"`
	CreatedBy string               `json:"created_by,omitempty"`
}

// UnmarshalJSON tries the bare-array shape first, then the object shape.
func (r *ReplaceTariffsRequest) UnmarshalJSON(data []byte) error {
	var records []model.TariffRecord
	if err := json.Unmarshal(data, &records); err == nil {
		r.Records = records
		return nil
	}
	var raw struct {
		Records   []model.TariffRecord `json:"records"`
		CreatedBy string               `json:"created_by"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Records = raw.Records
	r.CreatedBy = raw.CreatedBy
	return nil
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ErrNoRecords is returned when a tariff replacement carries no records.
var ErrNoRecords = &ValidationError{
	Field:   "records",
	Message: "must contain at least one tariff record",
}

// Validate performs structural validation on the replacement request.
func (r *ReplaceTariffsRequest) Validate() error {
	if len(r.Records) == 0 {
		return ErrNoRecords
	}
	return nil
}

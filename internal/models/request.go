package models

import (
	"github.com/shopspring/decimal"
)

// PlaceOrderRequest is the order submission payload from the kiosk.
// ClientTotal is display-only: the server recomputes every amount and the
// client figure is used for nothing but a mismatch log line.
type PlaceOrderRequest struct {
	OrderType   OrderType         `json:"order_type"`
	Customer    CustomerRequest   `json:"customer"`
	Items       []LineItemRequest `json:"items"`
	ClientTotal *decimal.Decimal  `json:"client_total,omitempty"`
	Notes       string            `json:"notes,omitempty"`
}

type CustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

type LineItemRequest struct {
	ProductID       uint               `json:"product_id"`
	Quantity        int                `json:"quantity"`
	Notes           string             `json:"notes,omitempty"`
	SelectedOptions []SelectionRequest `json:"selected_options,omitempty"`
}

// SelectionRequest carries one choice for one option group. Which fields
// are meaningful depends on the group's type; the validator checks the
// shape exhaustively per type and rejects everything else:
//
//	single_choice:   OptionValueID
//	multiple_choice: OptionValueIDs
//	half_and_half:   LeftValueID + RightValueID, or FullValueID
//	quantity:        OptionValueID + Quantity
type SelectionRequest struct {
	OptionGroupID  uint   `json:"option_group_id"`
	OptionValueID  *uint  `json:"option_value_id,omitempty"`
	OptionValueIDs []uint `json:"option_value_ids,omitempty"`
	LeftValueID    *uint  `json:"left_value_id,omitempty"`
	RightValueID   *uint  `json:"right_value_id,omitempty"`
	FullValueID    *uint  `json:"full_value_id,omitempty"`
	Quantity       *int   `json:"quantity,omitempty"`
	TextValue      string `json:"text_value,omitempty"`
}

type UpdateStatusRequest struct {
	Status OrderStatus `json:"status"`
}

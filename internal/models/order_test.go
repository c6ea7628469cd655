package models

import "testing"

func TestOrderStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{name: "pending to confirmed", from: OrderPending, to: OrderConfirmed, want: true},
		{name: "pending to cancelled", from: OrderPending, to: OrderCancelled, want: true},
		{name: "confirmed to preparing", from: OrderConfirmed, to: OrderPreparing, want: true},
		{name: "confirmed to cancelled", from: OrderConfirmed, to: OrderCancelled, want: true},
		{name: "preparing to ready", from: OrderPreparing, to: OrderReady, want: true},
		{name: "ready to delivered", from: OrderReady, to: OrderDelivered, want: true},

		{name: "pending cannot skip to preparing", from: OrderPending, to: OrderPreparing, want: false},
		{name: "pending cannot skip to delivered", from: OrderPending, to: OrderDelivered, want: false},
		{name: "preparing cannot cancel", from: OrderPreparing, to: OrderCancelled, want: false},
		{name: "ready cannot cancel", from: OrderReady, to: OrderCancelled, want: false},
		{name: "delivered is terminal", from: OrderDelivered, to: OrderPending, want: false},
		{name: "cancelled is terminal", from: OrderCancelled, to: OrderConfirmed, want: false},
		{name: "no backwards moves", from: OrderReady, to: OrderPreparing, want: false},
		{name: "no self transition", from: OrderPending, to: OrderPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestOrderStatusIsTerminal(t *testing.T) {
	for _, s := range []OrderStatus{OrderDelivered, OrderCancelled} {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []OrderStatus{OrderPending, OrderConfirmed, OrderPreparing, OrderReady} {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
	if OrderStatus("bogus").IsTerminal() {
		t.Error("unknown status must not report terminal")
	}
}

func TestOrderTypeIsValid(t *testing.T) {
	if !DineIn.IsValid() || !Takeaway.IsValid() {
		t.Error("known order types should be valid")
	}
	if OrderType("delivery").IsValid() {
		t.Error("unknown order type should be invalid")
	}
}

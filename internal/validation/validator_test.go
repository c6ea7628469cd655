package validation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"order_kiosk/internal/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int    { return &v }

// pizzaProduct builds a product with one group of every type:
//
//	10 size (single_choice, required):  11 Medium +0, 12 Large +20
//	20 toppings (multiple_choice):      21 Olives +2, 22 Onion +1.50
//	30 halves (half_and_half, required): 31 Pepperoni left +5, 32 Mushroom right +3,
//	                                     33 Margherita full +0
//	40 extra cheese (quantity):         41 Cheese +2.50
func pizzaProduct() *models.Product {
	return &models.Product{
		ID:         1,
		BusinessID: 1,
		Name:       "Margherita Pizza",
		BasePrice:  dec("45.00"),
		OptionGroups: []models.OptionGroup{
			{
				ID: 10, ProductID: 1, Name: "Size", Type: models.SingleChoice, IsRequired: true,
				Values: []models.OptionValue{
					{ID: 11, OptionGroupID: 10, Name: "Medium", AdditionalPrice: dec("0.00"), IsDefault: true},
					{ID: 12, OptionGroupID: 10, Name: "Large", AdditionalPrice: dec("20.00")},
				},
			},
			{
				ID: 20, ProductID: 1, Name: "Toppings", Type: models.MultipleChoice,
				Values: []models.OptionValue{
					{ID: 21, OptionGroupID: 20, Name: "Olives", AdditionalPrice: dec("2.00")},
					{ID: 22, OptionGroupID: 20, Name: "Onion", AdditionalPrice: dec("1.50")},
				},
			},
			{
				ID: 30, ProductID: 1, Name: "Halves", Type: models.HalfAndHalf, IsRequired: true,
				Values: []models.OptionValue{
					{ID: 31, OptionGroupID: 30, Name: "Pepperoni", AdditionalPrice: dec("5.00"), HalfPosition: models.HalfLeft},
					{ID: 32, OptionGroupID: 30, Name: "Mushroom", AdditionalPrice: dec("3.00"), HalfPosition: models.HalfRight},
					{ID: 33, OptionGroupID: 30, Name: "Margherita", AdditionalPrice: dec("0.00"), HalfPosition: models.HalfFull},
				},
			},
			{
				ID: 40, ProductID: 1, Name: "Extra Cheese", Type: models.Quantity,
				Values: []models.OptionValue{
					{ID: 41, OptionGroupID: 40, Name: "Cheese", AdditionalPrice: dec("2.50")},
				},
			},
		},
	}
}

func validItem() *models.LineItemRequest {
	return &models.LineItemRequest{
		ProductID: 1,
		Quantity:  1,
		SelectedOptions: []models.SelectionRequest{
			{OptionGroupID: 10, OptionValueID: uintPtr(12)},
			{OptionGroupID: 30, LeftValueID: uintPtr(31), RightValueID: uintPtr(32)},
		},
	}
}

func TestResolveSelectionsValid(t *testing.T) {
	product := pizzaProduct()
	item := validItem()
	item.SelectedOptions = append(item.SelectedOptions,
		models.SelectionRequest{OptionGroupID: 20, OptionValueIDs: []uint{21, 22}},
		models.SelectionRequest{OptionGroupID: 40, OptionValueID: uintPtr(41), Quantity: intPtr(2)},
	)

	resolved, verr := ResolveSelections(product, item, "items[0]")
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}

	// large + left + right + 2 toppings + cheese
	if len(resolved) != 6 {
		t.Fatalf("resolved %d selections, want 6", len(resolved))
	}

	var sum decimal.Decimal
	for _, sel := range resolved {
		sum = sum.Add(sel.AdditionalPrice.Mul(decimal.NewFromInt(int64(sel.Count))))
	}
	// 20 + 5 + 3 + 2 + 1.50 + 2.50*2
	if !sum.Equal(dec("36.50")) {
		t.Errorf("captured delta sum = %s, want 36.50", sum)
	}
}

func TestResolveSelectionsFullHalfValue(t *testing.T) {
	product := pizzaProduct()
	item := &models.LineItemRequest{
		ProductID: 1,
		Quantity:  1,
		SelectedOptions: []models.SelectionRequest{
			{OptionGroupID: 10, OptionValueID: uintPtr(11)},
			{OptionGroupID: 30, FullValueID: uintPtr(33)},
		},
	}

	resolved, verr := ResolveSelections(product, item, "items[0]")
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}
	if len(resolved) != 2 {
		t.Fatalf("resolved %d selections, want 2", len(resolved))
	}
	if resolved[1].HalfPosition != models.HalfFull {
		t.Errorf("half position = %q, want full", resolved[1].HalfPosition)
	}
}

func TestResolveSelectionsFullValueUsableAsSide(t *testing.T) {
	product := pizzaProduct()
	item := &models.LineItemRequest{
		ProductID: 1,
		Quantity:  1,
		SelectedOptions: []models.SelectionRequest{
			{OptionGroupID: 10, OptionValueID: uintPtr(11)},
			{OptionGroupID: 30, LeftValueID: uintPtr(33), RightValueID: uintPtr(32)},
		},
	}

	if _, verr := ResolveSelections(product, item, "items[0]"); verr != nil {
		t.Fatalf("full-tagged value should be valid for a half: %v", verr)
	}
}

func TestResolveSelectionsErrors(t *testing.T) {
	tests := []struct {
		name    string
		item    *models.LineItemRequest
		wantIn  string
		errorsN int
	}{
		{
			name: "missing required groups reported together",
			item: &models.LineItemRequest{ProductID: 1, Quantity: 1},
			// both Size and Halves missing
			wantIn:  "required option group",
			errorsN: 2,
		},
		{
			name: "foreign option group rejected",
			item: &models.LineItemRequest{
				ProductID: 1, Quantity: 1,
				SelectedOptions: []models.SelectionRequest{
					{OptionGroupID: 999, OptionValueID: uintPtr(12)},
				},
			},
			wantIn: "does not belong to product",
		},
		{
			name: "value from another group rejected",
			item: &models.LineItemRequest{
				ProductID: 1, Quantity: 1,
				SelectedOptions: []models.SelectionRequest{
					{OptionGroupID: 10, OptionValueID: uintPtr(21)},
					{OptionGroupID: 30, FullValueID: uintPtr(33)},
				},
			},
			wantIn: "does not belong to option group",
		},
		{
			name: "half group with one side rejected",
			item: &models.LineItemRequest{
				ProductID: 1, Quantity: 1,
				SelectedOptions: []models.SelectionRequest{
					{OptionGroupID: 10, OptionValueID: uintPtr(11)},
					{OptionGroupID: 30, LeftValueID: uintPtr(31)},
				},
			},
			wantIn: "both a left and a right value",
		},
		{
			name: "side value on wrong half rejected",
			item: &models.LineItemRequest{
				ProductID: 1, Quantity: 1,
				SelectedOptions: []models.SelectionRequest{
					{OptionGroupID: 10, OptionValueID: uintPtr(11)},
					{OptionGroupID: 30, LeftValueID: uintPtr(32), RightValueID: uintPtr(31)},
				},
			},
			wantIn: "cannot be used for the",
		},
		{
			name: "quantity group without count rejected",
			item: &models.LineItemRequest{
				ProductID: 1, Quantity: 1,
				SelectedOptions: []models.SelectionRequest{
					{OptionGroupID: 10, OptionValueID: uintPtr(11)},
					{OptionGroupID: 30, FullValueID: uintPtr(33)},
					{OptionGroupID: 40, OptionValueID: uintPtr(41)},
				},
			},
			wantIn: "needs a numeric quantity",
		},
		{
			name: "zero line quantity rejected",
			item: &models.LineItemRequest{
				ProductID: 1, Quantity: 0,
				SelectedOptions: []models.SelectionRequest{
					{OptionGroupID: 10, OptionValueID: uintPtr(11)},
					{OptionGroupID: 30, FullValueID: uintPtr(33)},
				},
			},
			wantIn: "must be at least 1",
		},
		{
			name: "wrong payload shape for single choice",
			item: &models.LineItemRequest{
				ProductID: 1, Quantity: 1,
				SelectedOptions: []models.SelectionRequest{
					{OptionGroupID: 10, OptionValueIDs: []uint{11, 12}},
					{OptionGroupID: 30, FullValueID: uintPtr(33)},
				},
			},
			wantIn: "requires exactly one value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, verr := ResolveSelections(pizzaProduct(), tt.item, "items[0]")
			if verr == nil {
				t.Fatal("expected a validation error, got none")
			}
			if resolved != nil {
				t.Error("resolved selections should be nil on validation failure")
			}
			if !strings.Contains(verr.Error(), tt.wantIn) {
				t.Errorf("error %q does not mention %q", verr.Error(), tt.wantIn)
			}
			if tt.errorsN > 0 && len(verr.Fields) != tt.errorsN {
				t.Errorf("got %d field errors, want %d: %v", len(verr.Fields), tt.errorsN, verr)
			}
		})
	}
}

func TestResolveSelectionsAccumulatesAllProblems(t *testing.T) {
	item := &models.LineItemRequest{
		ProductID: 1,
		Quantity:  0,
		SelectedOptions: []models.SelectionRequest{
			{OptionGroupID: 999, OptionValueID: uintPtr(1)},
		},
	}

	_, verr := ResolveSelections(pizzaProduct(), item, "items[0]")
	if verr == nil {
		t.Fatal("expected a validation error")
	}
	// bad quantity + foreign group + two missing required groups
	if len(verr.Fields) != 4 {
		t.Errorf("got %d field errors, want 4: %v", len(verr.Fields), verr)
	}
}

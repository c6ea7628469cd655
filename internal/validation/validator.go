package validation

import (
	"fmt"

	"order_kiosk/internal/apperrors"
	"order_kiosk/internal/models"
)

// ResolveSelections checks one line item's selections against the
// product's option group definitions and converts them into priced
// SelectedOption snapshots. Price deltas are captured from the catalog
// at this point and never re-read afterwards.
//
// All problems are accumulated into the returned ValidationError; the
// field names are prefixed so a multi-item request can merge them.
func ResolveSelections(product *models.Product, item *models.LineItemRequest, fieldPrefix string) ([]models.SelectedOption, *apperrors.ValidationError) {
	verr := apperrors.NewValidationError()

	if item.Quantity < 1 {
		verr.Add(fieldPrefix+".quantity", "must be at least 1, got %d", item.Quantity)
	}

	resolved := make([]models.SelectedOption, 0, len(item.SelectedOptions))
	seenGroups := make(map[uint]bool)

	for i, sel := range item.SelectedOptions {
		field := fmt.Sprintf("%s.selected_options[%d]", fieldPrefix, i)

		group := product.GroupByID(sel.OptionGroupID)
		if group == nil {
			verr.Add(field, "option group %d does not belong to product %d", sel.OptionGroupID, product.ID)
			continue
		}
		if seenGroups[group.ID] {
			verr.Add(field, "duplicate selection for option group %q", group.Name)
			continue
		}
		seenGroups[group.ID] = true

		switch group.Type {
		case models.SingleChoice:
			resolved = appendSingleChoice(resolved, verr, group, &sel, field)
		case models.MultipleChoice:
			resolved = appendMultipleChoice(resolved, verr, group, &sel, field)
		case models.HalfAndHalf:
			resolved = appendHalfAndHalf(resolved, verr, group, &sel, field)
		case models.Quantity:
			resolved = appendQuantity(resolved, verr, group, &sel, field)
		default:
			verr.Add(field, "option group %q has unknown type %q", group.Name, group.Type)
		}
	}

	checkRequiredGroups(verr, product, seenGroups, fieldPrefix)

	if verr.HasErrors() {
		return nil, verr
	}
	return resolved, nil
}

func appendSingleChoice(resolved []models.SelectedOption, verr *apperrors.ValidationError, group *models.OptionGroup, sel *models.SelectionRequest, field string) []models.SelectedOption {
	if sel.OptionValueID == nil {
		verr.Add(field, "option group %q requires exactly one value", group.Name)
		return resolved
	}
	if len(sel.OptionValueIDs) > 0 || sel.LeftValueID != nil || sel.RightValueID != nil || sel.FullValueID != nil || sel.Quantity != nil {
		verr.Add(field, "option group %q accepts only a single value", group.Name)
		return resolved
	}
	value := group.ValueByID(*sel.OptionValueID)
	if value == nil {
		verr.Add(field, "value %d does not belong to option group %q", *sel.OptionValueID, group.Name)
		return resolved
	}
	return append(resolved, snapshot(group, value, "", 1, sel.TextValue))
}

func appendMultipleChoice(resolved []models.SelectedOption, verr *apperrors.ValidationError, group *models.OptionGroup, sel *models.SelectionRequest, field string) []models.SelectedOption {
	ids := sel.OptionValueIDs
	if sel.OptionValueID != nil {
		ids = append(ids, *sel.OptionValueID)
	}
	if len(ids) == 0 {
		verr.Add(field, "option group %q needs at least one value", group.Name)
		return resolved
	}
	if sel.LeftValueID != nil || sel.RightValueID != nil || sel.FullValueID != nil || sel.Quantity != nil {
		verr.Add(field, "option group %q accepts only a list of values", group.Name)
		return resolved
	}
	for _, id := range ids {
		value := group.ValueByID(id)
		if value == nil {
			verr.Add(field, "value %d does not belong to option group %q", id, group.Name)
			continue
		}
		resolved = append(resolved, snapshot(group, value, "", 1, ""))
	}
	return resolved
}

func appendHalfAndHalf(resolved []models.SelectedOption, verr *apperrors.ValidationError, group *models.OptionGroup, sel *models.SelectionRequest, field string) []models.SelectedOption {
	if sel.OptionValueID != nil || len(sel.OptionValueIDs) > 0 || sel.Quantity != nil {
		verr.Add(field, "option group %q takes left/right or full values", group.Name)
		return resolved
	}

	if sel.FullValueID != nil {
		if sel.LeftValueID != nil || sel.RightValueID != nil {
			verr.Add(field, "option group %q takes either a full value or both halves, not both", group.Name)
			return resolved
		}
		value := group.ValueByID(*sel.FullValueID)
		if value == nil {
			verr.Add(field, "value %d does not belong to option group %q", *sel.FullValueID, group.Name)
			return resolved
		}
		if value.HalfPosition != models.HalfFull {
			verr.Add(field, "value %q is not a full-coverage value", value.Name)
			return resolved
		}
		return append(resolved, snapshot(group, value, models.HalfFull, 1, ""))
	}

	if sel.LeftValueID == nil || sel.RightValueID == nil {
		verr.Add(field, "option group %q needs both a left and a right value", group.Name)
		return resolved
	}

	resolved = appendHalf(resolved, verr, group, *sel.LeftValueID, models.HalfLeft, field)
	resolved = appendHalf(resolved, verr, group, *sel.RightValueID, models.HalfRight, field)
	return resolved
}

func appendHalf(resolved []models.SelectedOption, verr *apperrors.ValidationError, group *models.OptionGroup, valueID uint, side models.HalfPosition, field string) []models.SelectedOption {
	value := group.ValueByID(valueID)
	if value == nil {
		verr.Add(field, "value %d does not belong to option group %q", valueID, group.Name)
		return resolved
	}
	// A full-tagged value is valid for either half.
	if value.HalfPosition != side && value.HalfPosition != models.HalfFull {
		verr.Add(field, "value %q cannot be used for the %s half", value.Name, side)
		return resolved
	}
	return append(resolved, snapshot(group, value, side, 1, ""))
}

func appendQuantity(resolved []models.SelectedOption, verr *apperrors.ValidationError, group *models.OptionGroup, sel *models.SelectionRequest, field string) []models.SelectedOption {
	if sel.Quantity == nil {
		verr.Add(field, "option group %q needs a numeric quantity", group.Name)
		return resolved
	}
	if *sel.Quantity < 1 {
		verr.Add(field, "option group %q quantity must be at least 1, got %d", group.Name, *sel.Quantity)
		return resolved
	}
	if sel.OptionValueID == nil {
		verr.Add(field, "option group %q needs the value the quantity applies to", group.Name)
		return resolved
	}
	value := group.ValueByID(*sel.OptionValueID)
	if value == nil {
		verr.Add(field, "value %d does not belong to option group %q", *sel.OptionValueID, group.Name)
		return resolved
	}
	return append(resolved, snapshot(group, value, "", *sel.Quantity, ""))
}

func checkRequiredGroups(verr *apperrors.ValidationError, product *models.Product, seenGroups map[uint]bool, fieldPrefix string) {
	for i := range product.OptionGroups {
		group := &product.OptionGroups[i]
		if group.IsRequired && !seenGroups[group.ID] {
			verr.Add(fieldPrefix+".selected_options", "required option group %q has no selection", group.Name)
		}
	}
}

func snapshot(group *models.OptionGroup, value *models.OptionValue, side models.HalfPosition, count int, text string) models.SelectedOption {
	valueID := value.ID
	return models.SelectedOption{
		OptionGroupID:   group.ID,
		GroupName:       group.Name,
		GroupType:       group.Type,
		OptionValueID:   &valueID,
		ValueName:       value.Name,
		AdditionalPrice: value.AdditionalPrice,
		HalfPosition:    side,
		Count:           count,
		TextValue:       text,
	}
}

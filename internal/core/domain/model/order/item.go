package order

import (
	"fmt"

	"requisitions/internal/core/domain/model/cart"
	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/pkg/errs"
)

// Item is one product line of an order. Quantities are always positive and an
// order never holds two items for the same product.
type Item struct {
	productID kernel.UUID
	quantity  int
}

func NewItem(productID kernel.UUID, quantity int) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if err := validateQuantity(productID, quantity); err != nil {
		return Item{}, err
	}
	return Item{productID: productID, quantity: quantity}, nil
}

func (i Item) ProductID() kernel.UUID {
	return i.productID
}

func (i Item) Quantity() int {
	return i.quantity
}

func validateItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.productID.Validate(); err != nil {
			return err
		}
		if err := validateQuantity(item.productID, item.quantity); err != nil {
			return err
		}
		if _, ok := seen[item.productID]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"order items", fmt.Errorf("product %s appears more than once", item.productID))
		}
		seen[item.productID] = struct{}{}
	}
	return nil
}

func validateQuantity(productID kernel.UUID, quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d for product %s is not greater than 0", quantity, productID))
	}
	if quantity > cart.MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, cart.MaxQuantity)
	}
	return nil
}

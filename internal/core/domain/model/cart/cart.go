// Package cart provides the Cart value object: the product/quantity selection a
// user accumulates before submitting an order.
//
// A Cart is immutable. Every operation returns a new Cart, so the request layer
// can keep one per session and hand a snapshot to order creation without any
// shared mutable state.
package cart

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/pkg/errs"
	"requisitions/internal/pkg/guard"
)

// MaxQuantity is the largest quantity a single line may hold, accumulated
// selections included. It matches the capacity of the stored quantity column.
const MaxQuantity = math.MaxInt32

var (
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or FromLines")

	// ErrCartIsEmpty is returned when an empty cart is submitted.
	ErrCartIsEmpty = errs.NewValueIsRequiredErrorWithCause(
		"cart", errors.New("cart is empty, add at least one product before submitting"))
)

// Line is one product selection.
type Line struct {
	ProductID kernel.UUID
	Quantity  int
}

// Cart maps products to positive quantities.
type Cart struct { //nolint:recvcheck //using for validation
	lines map[kernel.UUID]int
	guard guard.ConstructorGuard
}

// NewCart returns an empty cart.
func NewCart() Cart {
	return Cart{
		lines: make(map[kernel.UUID]int),
		guard: guard.NewConstructorGuard(),
	}
}

// FromLines builds a cart from raw selections. Repeated products accumulate,
// so {A:2, A:3} yields a single line A:5.
func FromLines(lines []Line) (Cart, error) {
	c := NewCart()
	var err error
	for _, l := range lines {
		if c, err = c.Add(l.ProductID, l.Quantity); err != nil {
			return Cart{}, err
		}
	}
	return c, nil
}

func (c Cart) Validate() error {
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// Add accumulates quantity onto the product's line.
func (c Cart) Add(productID kernel.UUID, quantity int) (Cart, error) {
	if err := productID.Validate(); err != nil {
		return Cart{}, err
	}
	if err := validateQuantity(productID, quantity); err != nil {
		return Cart{}, err
	}

	current := c.lines[productID]
	if quantity > MaxQuantity-current {
		return Cart{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"quantity", int64(current)+int64(quantity), 1, MaxQuantity,
			fmt.Errorf("accumulated quantity for product %s exceeds %d", productID, MaxQuantity),
		)
	}

	next := c.clone()
	next.lines[productID] = current + quantity
	return next, nil
}

// Set replaces the product's quantity; a quantity of zero or less removes the line.
func (c Cart) Set(productID kernel.UUID, quantity int) (Cart, error) {
	if err := productID.Validate(); err != nil {
		return Cart{}, err
	}
	if quantity <= 0 {
		return c.Remove(productID), nil
	}
	if err := validateQuantity(productID, quantity); err != nil {
		return Cart{}, err
	}

	next := c.clone()
	next.lines[productID] = quantity
	return next, nil
}

// Remove drops the product's line if present.
func (c Cart) Remove(productID kernel.UUID) Cart {
	next := c.clone()
	delete(next.lines, productID)
	return next
}

// Quantity returns the selected quantity of a product (0 when absent).
func (c Cart) Quantity(productID kernel.UUID) int {
	return c.lines[productID]
}

func (c Cart) Len() int {
	return len(c.lines)
}

func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns the selections ordered by product id.
func (c Cart) Lines() []Line {
	lines := make([]Line, 0, len(c.lines))
	for id, qty := range c.lines {
		lines = append(lines, Line{ProductID: id, Quantity: qty})
	}
	slices.SortFunc(lines, func(a, b Line) int {
		return a.ProductID.Compare(b.ProductID)
	})
	return lines
}

// ProductIDs returns the distinct products in the cart, ordered by id.
func (c Cart) ProductIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, l := range c.Lines() {
		ids = append(ids, l.ProductID)
	}
	return ids
}

func (c Cart) clone() Cart {
	lines := make(map[kernel.UUID]int, len(c.lines)+1)
	for id, qty := range c.lines {
		lines[id] = qty
	}
	return Cart{lines: lines, guard: guard.NewConstructorGuard()}
}

func validateQuantity(productID kernel.UUID, quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d for product %s is not greater than 0", quantity, productID),
		)
	}
	if quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	return nil
}

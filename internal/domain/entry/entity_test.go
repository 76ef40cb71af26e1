package entry

import (
	"errors"
	"testing"
)

func validEntry() *Entry {
	return &Entry{
		ID:        "e1",
		ProductID: "p1",
		Quantity:  12,
		CostPrice: 4.5,
		SalePrice: 7.9,
	}
}

func TestValidate(t *testing.T) {
	if err := validEntry().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	e := validEntry()
	e.ProductID = ""
	if err := e.Validate(); !errors.Is(err, ErrEmptyProduct) {
		t.Fatalf("sem produto: %v, esperado ErrEmptyProduct", err)
	}

	e = validEntry()
	e.Quantity = 0
	if err := e.Validate(); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("quantidade zero: %v, esperado ErrInvalidQuantity", err)
	}

	e = validEntry()
	e.CostPrice = -1
	if err := e.Validate(); !errors.Is(err, ErrInvalidCostPrice) {
		t.Fatalf("custo negativo: %v, esperado ErrInvalidCostPrice", err)
	}
}

func TestStockDeltaRoundTrip(t *testing.T) {
	e := validEntry()

	if e.StockDelta() != 12 {
		t.Fatalf("StockDelta = %d, esperado a quantidade da entrada", e.StockDelta())
	}

	// A criação credita o estoque e a exclusão estorna o mesmo valor
	stock := 30
	stock += e.StockDelta()
	if stock != 42 {
		t.Fatalf("estoque após a entrada = %d, esperado 42", stock)
	}
	stock -= e.StockDelta()
	if stock != 30 {
		t.Fatalf("estoque após o estorno = %d, esperado 30", stock)
	}
}

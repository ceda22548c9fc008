package catalog

import (
	"fmt"
	"io"
	"strconv"
)

type Product struct {
	name  string
	price float64
}

func NewProduct(name string, price float64) Product {
	return Product{name: name, price: price}
}

func (p Product) Name() string {
	return p.name
}

func (p Product) Price() float64 {
	return p.price
}

func (p Product) String() string {
	return fmt.Sprintf("The product %s has a price of %s", p.name, strconv.FormatFloat(p.price, 'f', -1, 64))
}

// View writes the product line to w.
func (p Product) View(w io.Writer) error {
	_, err := fmt.Fprintln(w, p.String())
	return err
}

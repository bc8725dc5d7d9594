package models

// CartItem is one book held in the visitor's cart. Selected marks
// whether the item participates in the checkout subtotal.
type CartItem struct {
	ID       int64  `json:"id"`
	BookID   int64  `json:"bookId"`
	Title    string `json:"title"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Selected bool   `json:"selected"`
}

type Cart struct {
	Items []CartItem `json:"items"`
}

// SelectedSubtotal sums only the selected items. Unselected items stay
// in the cart but never count toward checkout.
func (c Cart) SelectedSubtotal() int64 {
	var total int64
	for _, item := range c.Items {
		if !item.Selected {
			continue
		}
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		total += item.Price * int64(qty)
	}
	return total
}

// SelectedCount reports how many items would be checked out.
func (c Cart) SelectedCount() int {
	n := 0
	for _, item := range c.Items {
		if item.Selected {
			n++
		}
	}
	return n
}

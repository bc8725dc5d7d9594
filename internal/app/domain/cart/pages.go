package cart

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/bangg2309/book-exchange/internal/app/models"
	"github.com/bangg2309/book-exchange/internal/pkg/format"
)

func CartPage(cart models.Cart) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1 class="text-xl font-semibold mb-4">Giỏ hàng</h1>`); err != nil {
			return err
		}
		return CartContents(cart).Render(ctx, w)
	})
}

// CartContents is the HTMX swap target: item rows plus the subtotal of
// selected items only.
func CartContents(cart models.Cart) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="cart-contents">`); err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			if _, err := io.WriteString(w, `<p class="text-sm text-gray-500">Giỏ hàng trống.</p></div>`); err != nil {
				return err
			}
			return nil
		}
		for _, item := range cart.Items {
			checked := ""
			if item.Selected {
				checked = " checked"
			}
			if _, err := fmt.Fprintf(w,
				`<div class="flex items-center gap-3 border-b py-3">`+
					`<input type="checkbox" name="selected" value="true"%s `+
					`hx-put="/cart/items/%d/selection" hx-target="#cart-contents" hx-swap="outerHTML" `+
					`hx-vals='js:{selected: event.target.checked ? "true" : "false"}'>`+
					`<img src="%s" alt="" class="h-14 w-10 object-cover rounded">`+
					`<span class="flex-1 text-sm">%s</span>`+
					`<span class="text-sm font-medium">%s</span>`+
					`<button hx-delete="/cart/items/%d" hx-target="#cart-contents" hx-swap="outerHTML" class="text-xs text-red-500">Xoá</button>`+
					`</div>`,
				checked, item.ID,
				templ.EscapeString(item.Thumbnail),
				templ.EscapeString(item.Title),
				templ.EscapeString(format.VND(item.Price)),
				item.ID); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w,
			`<div class="flex justify-between items-center mt-4">`+
				`<span class="text-sm">Đã chọn %d sản phẩm</span>`+
				`<span class="font-semibold">Tạm tính: %s</span>`+
				`<a href="/checkout" class="bg-gray-900 text-white rounded px-6 py-2 text-sm">Thanh toán</a>`+
				`</div></div>`,
			cart.SelectedCount(),
			templ.EscapeString(format.VND(cart.SelectedSubtotal()))); err != nil {
			return err
		}
		return nil
	})
}

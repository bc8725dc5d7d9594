package checkout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/bangg2309/book-exchange/internal/app/models"
	"github.com/bangg2309/book-exchange/internal/pkg/format"
)

func CheckoutPage(cart models.Cart, addresses []models.Address) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1 class="text-xl font-semibold mb-4">Thanh toán</h1>`+
			`<form method="post" action="/checkout" class="grid gap-6 md:grid-cols-2">`); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<section><h2 class="font-medium mb-2">Địa chỉ giao hàng</h2>`); err != nil {
			return err
		}
		if len(addresses) == 0 {
			if _, err := io.WriteString(w,
				`<p class="text-sm text-gray-500">Chưa có địa chỉ nào. `+
					`<a href="/addresses" class="underline">Thêm địa chỉ</a></p>`); err != nil {
				return err
			}
		}
		for _, addr := range addresses {
			checked := ""
			if addr.Default {
				checked = " checked"
			}
			if _, err := fmt.Fprintf(w,
				`<label class="flex items-start gap-2 border rounded p-3 mb-2 text-sm">`+
					`<input type="radio" name="addressId" value="%d"%s>`+
					`<span><strong>%s</strong> · %s<br>%s, %s, %s, %s</span>`+
					`</label>`,
				addr.ID, checked,
				templ.EscapeString(addr.Recipient),
				templ.EscapeString(addr.Phone),
				templ.EscapeString(addr.Street),
				templ.EscapeString(addr.Ward),
				templ.EscapeString(addr.District),
				templ.EscapeString(addr.Province)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</section>`); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<section><h2 class="font-medium mb-2">Sản phẩm đã chọn</h2>`); err != nil {
			return err
		}
		for _, item := range cart.Items {
			if !item.Selected {
				continue
			}
			qty := item.Quantity
			if qty < 1 {
				qty = 1
			}
			if _, err := fmt.Fprintf(w,
				`<div class="flex justify-between text-sm py-1"><span>%s × %d</span><span>%s</span></div>`,
				templ.EscapeString(item.Title), qty,
				templ.EscapeString(format.VND(item.Price*int64(qty)))); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w,
			`<div class="flex justify-between font-semibold border-t mt-2 pt-2">`+
				`<span>Tổng cộng</span><span>%s</span></div>`+
				`<button type="submit" class="mt-4 w-full bg-gray-900 text-white rounded py-2">Đặt hàng và thanh toán</button>`+
				`</section></form>`,
			templ.EscapeString(format.VND(cart.SelectedSubtotal()))); err != nil {
			return err
		}
		return nil
	})
}

func OrdersPage(orders models.Page[models.Order]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1 class="text-xl font-semibold mb-4">Đơn hàng của tôi</h1>`); err != nil {
			return err
		}
		if len(orders.Items) == 0 {
			_, err := io.WriteString(w, `<p class="text-sm text-gray-500">Bạn chưa có đơn hàng nào.</p>`)
			return err
		}
		for _, order := range orders.Items {
			if _, err := fmt.Fprintf(w,
				`<a href="/orders/%d" class="flex justify-between border rounded p-3 mb-2 text-sm">`+
					`<span>Đơn #%d</span><span>%s</span><span class="font-medium">%s</span></a>`,
				order.ID, order.ID,
				templ.EscapeString(statusLabel(order.Status)),
				templ.EscapeString(format.VND(order.Total))); err != nil {
				return err
			}
		}
		return nil
	})
}

func OrderDetailPage(order models.Order) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<h1 class="text-xl font-semibold mb-1">Đơn hàng #%d</h1>`+
				`<p class="text-sm text-gray-500 mb-4">%s</p>`,
			order.ID, templ.EscapeString(statusLabel(order.Status))); err != nil {
			return err
		}
		for _, item := range order.Items {
			if _, err := fmt.Fprintf(w,
				`<div class="flex justify-between text-sm py-1"><span>%s × %d</span><span>%s</span></div>`,
				templ.EscapeString(item.Title), item.Quantity,
				templ.EscapeString(format.VND(item.Price*int64(item.Quantity)))); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`<div class="flex justify-between font-semibold border-t mt-2 pt-2"><span>Tổng cộng</span><span>%s</span></div>`,
			templ.EscapeString(format.VND(order.Total)))
		return err
	})
}

func statusLabel(status models.OrderStatus) string {
	switch status {
	case models.OrderPending:
		return "Chờ thanh toán"
	case models.OrderPaid:
		return "Đã thanh toán"
	case models.OrderShipping:
		return "Đang giao"
	case models.OrderCompleted:
		return "Hoàn thành"
	case models.OrderCancelled:
		return "Đã huỷ"
	}
	return string(status)
}

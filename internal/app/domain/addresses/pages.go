package addresses

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/bangg2309/book-exchange/internal/app/models"
)

func AddressesPage(list []models.Address, provinces []models.Province) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1 class="text-xl font-semibold mb-4">Địa chỉ giao hàng</h1>`); err != nil {
			return err
		}
		if err := AddressList(list).Render(ctx, w); err != nil {
			return err
		}
		return addressForm(provinces).Render(ctx, w)
	})
}

func AddressList(list []models.Address) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="address-list" class="mb-6">`); err != nil {
			return err
		}
		if len(list) == 0 {
			_, err := io.WriteString(w, `<p class="text-sm text-gray-500">Chưa có địa chỉ nào.</p></div>`)
			return err
		}
		for _, addr := range list {
			badge := ""
			if addr.Default {
				badge = ` <span class="text-xs bg-gray-900 text-white rounded px-1">Mặc định</span>`
			}
			if _, err := fmt.Fprintf(w,
				`<div class="flex items-start justify-between border rounded p-3 mb-2 text-sm">`+
					`<span><strong>%s</strong> · %s%s<br>%s, %s, %s, %s</span>`+
					`<button hx-delete="/addresses/%d" hx-target="#address-list" hx-swap="outerHTML" `+
					`hx-confirm="Xoá địa chỉ này?" class="text-xs text-red-500">Xoá</button>`+
					`</div>`,
				templ.EscapeString(addr.Recipient),
				templ.EscapeString(addr.Phone),
				badge,
				templ.EscapeString(addr.Street),
				templ.EscapeString(addr.Ward),
				templ.EscapeString(addr.District),
				templ.EscapeString(addr.Province),
				addr.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func addressForm(provinces []models.Province) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<form method="post" action="/addresses" class="grid gap-3 max-w-md">`+
				`<h2 class="font-medium">Thêm địa chỉ mới</h2>`+
				`<input name="recipient" placeholder="Người nhận" class="border rounded px-3 py-2 text-sm" required>`+
				`<input name="phone" placeholder="Số điện thoại" class="border rounded px-3 py-2 text-sm" required>`+
				`<select name="provinceCode" class="border rounded px-3 py-2 text-sm" `+
				`hx-get="/addresses/districts" hx-target="#district-select" hx-swap="outerHTML" hx-include="this">`+
				`<option value="">Chọn tỉnh/thành</option>`); err != nil {
			return err
		}
		for _, p := range provinces {
			if _, err := fmt.Fprintf(w, `<option value="%s">%s</option>`,
				templ.EscapeString(p.Code), templ.EscapeString(p.Name)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select>`); err != nil {
			return err
		}
		if err := DistrictSelect(nil).Render(ctx, w); err != nil {
			return err
		}
		if err := WardSelect(nil).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w,
			`<input name="street" placeholder="Số nhà, tên đường" class="border rounded px-3 py-2 text-sm" required>`+
				`<label class="text-sm flex items-center gap-2"><input type="checkbox" name="default" value="true"> Đặt làm mặc định</label>`+
				`<button type="submit" class="bg-gray-900 text-white rounded py-2 text-sm">Lưu địa chỉ</button>`+
				`</form>`)
		return err
	})
}

func DistrictSelect(districts []models.District) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<select id="district-select" name="districtCode" class="border rounded px-3 py-2 text-sm" `+
				`hx-get="/addresses/wards" hx-target="#ward-select" hx-swap="outerHTML" hx-include="this">`+
				`<option value="">Chọn quận/huyện</option>`); err != nil {
			return err
		}
		for _, d := range districts {
			if _, err := fmt.Fprintf(w, `<option value="%s">%s</option>`,
				templ.EscapeString(d.Code), templ.EscapeString(d.Name)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</select>`)
		return err
	})
}

func WardSelect(wards []models.Ward) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<select id="ward-select" name="wardCode" class="border rounded px-3 py-2 text-sm">`+
				`<option value="">Chọn phường/xã</option>`); err != nil {
			return err
		}
		for _, ward := range wards {
			if _, err := fmt.Fprintf(w, `<option value="%s">%s</option>`,
				templ.EscapeString(ward.Code), templ.EscapeString(ward.Name)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</select>`)
		return err
	})
}

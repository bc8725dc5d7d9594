package listings

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/bangg2309/book-exchange/internal/app/models"
	"github.com/bangg2309/book-exchange/internal/pkg/format"
)

func MyListingsPage(listings models.Page[models.Listing]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<div class="flex justify-between items-center mb-4">`+
				`<h1 class="text-xl font-semibold">Tin đăng của tôi</h1>`+
				`<a href="/listings/new" class="bg-gray-900 text-white rounded px-4 py-2 text-sm">Đăng bán sách</a>`+
				`</div>`); err != nil {
			return err
		}
		return ListingList(listings).Render(ctx, w)
	})
}

func ListingList(listings models.Page[models.Listing]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="listing-list">`); err != nil {
			return err
		}
		if len(listings.Items) == 0 {
			_, err := io.WriteString(w, `<p class="text-sm text-gray-500">Bạn chưa có tin đăng nào.</p></div>`)
			return err
		}
		for _, listing := range listings.Items {
			if _, err := fmt.Fprintf(w,
				`<div class="flex items-center gap-3 border rounded p-3 mb-2 text-sm">`+
					`<span class="flex-1">%s</span>`+
					`<span class="font-medium">%s</span>`+
					`<span class="text-xs rounded px-2 py-1 %s">%s</span>`,
				templ.EscapeString(listing.Book.Title),
				templ.EscapeString(format.VND(listing.Book.Price)),
				statusClasses(listing.Status),
				templ.EscapeString(statusLabel(listing.Status))); err != nil {
				return err
			}
			if listing.Status == models.ListingDraft {
				if _, err := fmt.Fprintf(w,
					`<button hx-post="/listings/%d/submit" hx-target="#listing-list" hx-swap="outerHTML" `+
						`class="text-xs underline">Gửi duyệt</button>`, listing.ID); err != nil {
					return err
				}
			}
			if listing.Status == models.ListingRejected && listing.Note != "" {
				if _, err := fmt.Fprintf(w, `<span class="text-xs text-red-500">%s</span>`,
					templ.EscapeString(listing.Note)); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w,
				`<button hx-delete="/listings/%d" hx-target="#listing-list" hx-swap="outerHTML" `+
					`hx-confirm="Xoá tin đăng này?" class="text-xs text-red-500">Xoá</button>`+
					`</div>`, listing.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func NewListingPage(categories []models.Category) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<h1 class="text-xl font-semibold mb-4">Đăng bán sách</h1>`+
				`<form method="post" action="/listings" class="grid gap-3 max-w-md">`+
				`<input name="title" placeholder="Tiêu đề" class="border rounded px-3 py-2 text-sm" required>`+
				`<textarea name="description" placeholder="Mô tả tình trạng, ghi chú" class="border rounded px-3 py-2 text-sm" rows="4"></textarea>`+
				`<input name="price" type="number" min="1000" step="1000" placeholder="Giá bán (VND)" class="border rounded px-3 py-2 text-sm" required>`+
				`<select name="condition" class="border rounded px-3 py-2 text-sm">`+
				`<option value="LIKE_NEW">Như mới</option>`+
				`<option value="GOOD">Tốt</option>`+
				`<option value="FAIR">Trung bình</option>`+
				`</select>`+
				`<select name="categoryId" class="border rounded px-3 py-2 text-sm">`+
				`<option value="">Chọn thể loại</option>`); err != nil {
			return err
		}
		for _, category := range categories {
			if _, err := fmt.Fprintf(w, `<option value="%d">%s</option>`,
				category.ID, templ.EscapeString(category.Name)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w,
			`</select>`+
				`<input name="images" placeholder="Ảnh (URL)" class="border rounded px-3 py-2 text-sm">`+
				`<button type="submit" class="bg-gray-900 text-white rounded py-2 text-sm">Lưu nháp</button>`+
				`</form>`)
		return err
	})
}

func statusLabel(status models.ListingStatus) string {
	switch status {
	case models.ListingDraft:
		return "Nháp"
	case models.ListingPending:
		return "Chờ duyệt"
	case models.ListingApproved:
		return "Đã duyệt"
	case models.ListingRejected:
		return "Bị từ chối"
	}
	return string(status)
}

func statusClasses(status models.ListingStatus) string {
	switch status {
	case models.ListingApproved:
		return "bg-green-100 text-green-700"
	case models.ListingRejected:
		return "bg-red-100 text-red-700"
	case models.ListingPending:
		return "bg-yellow-100 text-yellow-700"
	}
	return "bg-gray-100 text-gray-600"
}

package admin

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/bangg2309/book-exchange/internal/app/models"
	"github.com/bangg2309/book-exchange/internal/pkg/format"
)

func adminNav(w io.Writer) error {
	_, err := io.WriteString(w,
		`<nav class="flex gap-4 text-sm border-b pb-2 mb-6">`+
			`<a href="/admin">Tổng quan</a>`+
			`<a href="/admin/books">Sách</a>`+
			`<a href="/admin/authors">Tác giả</a>`+
			`<a href="/admin/users">Người dùng</a>`+
			`<a href="/admin/slides">Banner</a>`+
			`<a href="/admin/listings">Duyệt tin</a>`+
			`</nav>`)
	return err
}

func DashboardPage(pendingCount int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := adminNav(w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<h1 class="text-xl font-semibold mb-4">Bảng điều khiển</h1>`+
				`<div class="border rounded p-4 inline-block">`+
				`<p class="text-3xl font-semibold">%d</p>`+
				`<p class="text-sm text-gray-500">Tin đăng chờ duyệt</p>`+
				`<a href="/admin/listings" class="text-sm underline">Xem hàng chờ</a>`+
				`</div>`, pendingCount)
		return err
	})
}

func AuthorsPage(authors models.Page[models.Author]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := adminNav(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<h1 class="text-xl font-semibold mb-4">Tác giả</h1>`); err != nil {
			return err
		}
		if err := AuthorTable(authors).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w,
			`<form method="post" action="/admin/authors" class="grid gap-3 max-w-md mt-6">`+
				`<h2 class="font-medium">Thêm tác giả</h2>`+
				`<input name="name" placeholder="Tên tác giả" class="border rounded px-3 py-2 text-sm" required>`+
				`<textarea name="bio" placeholder="Tiểu sử" class="border rounded px-3 py-2 text-sm" rows="3"></textarea>`+
				`<input name="avatar" placeholder="Ảnh đại diện (URL)" class="border rounded px-3 py-2 text-sm">`+
				`<button type="submit" class="bg-gray-900 text-white rounded py-2 text-sm">Thêm</button>`+
				`</form>`)
		return err
	})
}

func AuthorTable(authors models.Page[models.Author]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="author-table">`); err != nil {
			return err
		}
		if len(authors.Items) == 0 {
			_, err := io.WriteString(w, `<p class="text-sm text-gray-500">Chưa có tác giả nào.</p></div>`)
			return err
		}
		for _, author := range authors.Items {
			if _, err := fmt.Fprintf(w,
				`<div class="flex items-center justify-between border-b py-2 text-sm">`+
					`<span>%s <span class="text-gray-500">(%d sách)</span></span>`+
					`<button hx-delete="/admin/authors/%d" hx-target="#author-table" hx-swap="outerHTML" `+
					`hx-confirm="Xóa tác giả này?" class="text-xs text-red-500">Xóa</button>`+
					`</div>`,
				templ.EscapeString(author.Name), author.BookCount, author.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func BooksPage(books models.Page[models.Book], categories []models.Category) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := adminNav(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<h1 class="text-xl font-semibold mb-4">Sách</h1>`); err != nil {
			return err
		}
		for _, book := range books.Items {
			if _, err := fmt.Fprintf(w,
				`<div class="flex items-center justify-between border-b py-2 text-sm">`+
					`<span>%s</span><span class="font-medium">%s</span>`+
					`<form method="post" action="/admin/books/%d/delete" onsubmit="return confirm('Xóa sách này?')">`+
					`<button type="submit" class="text-xs text-red-500">Xóa</button></form>`+
					`</div>`,
				templ.EscapeString(book.Title),
				templ.EscapeString(format.VND(book.Price)),
				book.ID); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w,
			`<form method="post" action="/admin/books" class="grid gap-3 max-w-md mt-6">`+
				`<h2 class="font-medium">Thêm sách</h2>`+
				`<input name="title" placeholder="Tiêu đề" class="border rounded px-3 py-2 text-sm" required>`+
				`<input name="price" type="number" min="1000" step="1000" placeholder="Giá (VND)" class="border rounded px-3 py-2 text-sm" required>`+
				`<input name="thumbnail" placeholder="Ảnh bìa (URL)" class="border rounded px-3 py-2 text-sm">`+
				`<select name="categoryId" class="border rounded px-3 py-2 text-sm"><option value="">Chọn thể loại</option>`); err != nil {
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
				`<button type="submit" class="bg-gray-900 text-white rounded py-2 text-sm">Thêm</button>`+
				`</form>`)
		return err
	})
}

func UsersPage(users models.Page[models.UserProfile]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := adminNav(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<h1 class="text-xl font-semibold mb-4">Người dùng</h1>`); err != nil {
			return err
		}
		for _, user := range users.Items {
			roleChecks := func(role models.RoleName) string {
				if user.Roles.Has(role) {
					return " checked"
				}
				return ""
			}
			if _, err := fmt.Fprintf(w,
				`<div class="border-b py-2 text-sm">`+
					`<div class="flex items-center justify-between">`+
					`<span><strong>%s</strong> · %s</span>`+
					`<form method="post" action="/admin/users/%s/delete" onsubmit="return confirm('Xóa người dùng này?')">`+
					`<button type="submit" class="text-xs text-red-500">Xóa</button></form>`+
					`</div>`+
					`<form method="post" action="/admin/users/%s/roles" class="flex gap-3 mt-1 text-xs items-center">`+
					`<label><input type="checkbox" name="roles" value="ADMIN"%s> ADMIN</label>`+
					`<label><input type="checkbox" name="roles" value="SELLER"%s> SELLER</label>`+
					`<label><input type="checkbox" name="roles" value="USER"%s> USER</label>`+
					`<button type="submit" class="underline">Lưu vai trò</button>`+
					`</form></div>`,
				templ.EscapeString(user.Username),
				templ.EscapeString(user.Email),
				templ.EscapeString(user.ID),
				templ.EscapeString(user.ID),
				roleChecks(models.RoleAdmin),
				roleChecks(models.RoleSeller),
				roleChecks(models.RoleUser)); err != nil {
				return err
			}
		}
		return nil
	})
}

func SlidesPage(slides []models.Slide) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := adminNav(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<h1 class="text-xl font-semibold mb-4">Banner trang chủ</h1>`); err != nil {
			return err
		}
		for _, slide := range slides {
			state := "Ẩn"
			if slide.Active {
				state = "Hiển thị"
			}
			if _, err := fmt.Fprintf(w,
				`<div class="flex items-center gap-3 border-b py-2 text-sm">`+
					`<img src="%s" alt="" class="h-10 w-20 object-cover rounded">`+
					`<span class="flex-1">%s</span>`+
					`<span class="text-xs text-gray-500">#%d · %s</span>`+
					`<form method="post" action="/admin/slides/%d/delete" onsubmit="return confirm('Xóa banner này?')">`+
					`<button type="submit" class="text-xs text-red-500">Xóa</button></form>`+
					`</div>`,
				templ.EscapeString(slide.ImageURL),
				templ.EscapeString(slide.Title),
				slide.Ordinal, state, slide.ID); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w,
			`<form method="post" action="/admin/slides" class="grid gap-3 max-w-md mt-6">`+
				`<h2 class="font-medium">Thêm banner</h2>`+
				`<input name="title" placeholder="Tiêu đề" class="border rounded px-3 py-2 text-sm">`+
				`<input name="imageUrl" placeholder="Ảnh (URL)" class="border rounded px-3 py-2 text-sm" required>`+
				`<input name="linkUrl" placeholder="Liên kết khi bấm" class="border rounded px-3 py-2 text-sm">`+
				`<input name="ordinal" type="number" min="0" placeholder="Thứ tự" class="border rounded px-3 py-2 text-sm">`+
				`<label class="text-sm"><input type="checkbox" name="active" value="true" checked> Hiển thị</label>`+
				`<button type="submit" class="bg-gray-900 text-white rounded py-2 text-sm">Thêm</button>`+
				`</form>`)
		return err
	})
}

func PendingListingsPage(pending models.Page[models.Listing]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := adminNav(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<h1 class="text-xl font-semibold mb-4">Tin đăng chờ duyệt</h1>`); err != nil {
			return err
		}
		if len(pending.Items) == 0 {
			_, err := io.WriteString(w, `<p class="text-sm text-gray-500">Không có tin đăng nào chờ duyệt.</p>`)
			return err
		}
		for _, listing := range pending.Items {
			if _, err := fmt.Fprintf(w,
				`<div class="border rounded p-3 mb-3 text-sm">`+
					`<div class="flex justify-between mb-2">`+
					`<span><strong>%s</strong> · %s</span>`+
					`<span class="text-xs text-gray-500">Người bán: %s</span>`+
					`</div>`+
					`<form method="post" action="/admin/listings/%d/review" class="flex gap-2 items-center">`+
					`<input name="note" placeholder="Ghi chú (bắt buộc khi từ chối)" class="border rounded px-3 py-1 text-sm flex-1">`+
					`<button type="submit" name="decision" value="approve" class="bg-green-600 text-white rounded px-3 py-1 text-xs">Duyệt</button>`+
					`<button type="submit" name="decision" value="reject" class="bg-red-600 text-white rounded px-3 py-1 text-xs">Từ chối</button>`+
					`</form></div>`,
				templ.EscapeString(listing.Book.Title),
				templ.EscapeString(format.VND(listing.Book.Price)),
				templ.EscapeString(listing.SellerID),
				listing.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/bangg2309/book-exchange/internal/app/models"
	"github.com/bangg2309/book-exchange/internal/pkg/format"
)

func BooksPage(books models.Page[models.Book], categories []models.Category, schools []models.School, search string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<form method="get" action="/books" class="mb-4 flex gap-2">
<input name="q" value="%s" placeholder="Tìm sách..." class="border rounded px-3 py-2 flex-1">
<select name="category" class="border rounded px-2">
<option value="">Tất cả danh mục</option>`, templ.EscapeString(search)); err != nil {
			return err
		}
		for _, category := range categories {
			if _, err := fmt.Fprintf(w, `<option value="%d">%s</option>`,
				category.ID, templ.EscapeString(category.Name)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select><select name="school" class="border rounded px-2">
<option value="">Tất cả trường</option>`); err != nil {
			return err
		}
		for _, school := range schools {
			if _, err := fmt.Fprintf(w, `<option value="%d">%s</option>`,
				school.ID, templ.EscapeString(school.Name)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</select><button type="submit" class="bg-gray-900 text-white rounded px-4">Tìm</button></form>`); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<div class="grid grid-cols-2 md:grid-cols-4 gap-4">`); err != nil {
			return err
		}
		for _, book := range books.Items {
			if _, err := fmt.Fprintf(w,
				`<a href="/books/%d" class="border rounded-lg bg-white p-3 hover:shadow">`+
					`<img src="%s" alt="" class="h-36 w-full object-cover rounded mb-2">`+
					`<p class="text-sm font-medium line-clamp-2">%s</p>`+
					`<p class="text-sm text-red-600 font-semibold">%s</p></a>`,
				book.ID,
				templ.EscapeString(book.Thumbnail),
				templ.EscapeString(book.Title),
				templ.EscapeString(format.VND(book.Price))); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}

		return pager(w, "/books", books.Page, books.DisplayPage(), books.DisplayTotalPages(), books.HasPrev(), books.HasNext())
	})
}

// pager renders prev/next controls; out-of-range pages are disabled,
// never navigable.
func pager(w io.Writer, base string, page, display, total int, hasPrev, hasNext bool) error {
	if _, err := io.WriteString(w, `<nav class="mt-6 flex items-center justify-center gap-4 text-sm">`); err != nil {
		return err
	}
	if hasPrev {
		if _, err := fmt.Fprintf(w, `<a href="%s?page=%d" class="border rounded px-3 py-1">Trước</a>`, base, page-1); err != nil {
			return err
		}
	} else {
		if _, err := io.WriteString(w, `<span class="border rounded px-3 py-1 text-gray-300" aria-disabled="true">Trước</span>`); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, `<span>Trang %d / %d</span>`, display, total); err != nil {
		return err
	}
	if hasNext {
		if _, err := fmt.Fprintf(w, `<a href="%s?page=%d" class="border rounded px-3 py-1">Sau</a>`, base, page+1); err != nil {
			return err
		}
	} else {
		if _, err := io.WriteString(w, `<span class="border rounded px-3 py-1 text-gray-300" aria-disabled="true">Sau</span>`); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</nav>`)
	return err
}

func BookDetailPage(book models.Book, reviews []models.Review) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<article class="grid md:grid-cols-2 gap-6">
<img src="%s" alt="" class="rounded-lg object-cover w-full">
<div>
<h1 class="text-2xl font-semibold">%s</h1>
<p class="text-xl text-red-600 font-bold mt-2">%s</p>
<p class="text-sm text-gray-500 mt-1">Tình trạng: %s · Người bán: %s</p>
<p class="mt-4 text-sm">%s</p>
<button hx-post="/cart/items" hx-vals='{"bookId": %d}' hx-swap="none" class="mt-4 bg-gray-900 text-white rounded px-6 py-2">Thêm vào giỏ</button>
</div>
</article>`,
			templ.EscapeString(book.Thumbnail),
			templ.EscapeString(book.Title),
			templ.EscapeString(format.VND(book.Price)),
			templ.EscapeString(book.Condition),
			templ.EscapeString(book.SellerName),
			templ.EscapeString(book.Description),
			book.ID); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<section class="mt-8"><h2 class="font-semibold mb-2">Đánh giá (%d)</h2>`, len(reviews)); err != nil {
			return err
		}
		for _, review := range reviews {
			if _, err := fmt.Fprintf(w,
				`<div class="border-t py-2 text-sm"><span class="font-medium">%s</span> · %d/5<p>%s</p></div>`,
				templ.EscapeString(review.Reviewer), review.Rating, templ.EscapeString(review.Comment)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

func AuthorsPage(authors models.Page[models.Author]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="grid grid-cols-2 md:grid-cols-4 gap-4">`); err != nil {
			return err
		}
		for _, author := range authors.Items {
			if _, err := fmt.Fprintf(w,
				`<a href="/authors/%d" class="border rounded-lg bg-white p-3 text-center hover:shadow">`+
					`<p class="font-medium">%s</p><p class="text-xs text-gray-500">%d đầu sách</p></a>`,
				author.ID, templ.EscapeString(author.Name), author.BookCount); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}
		return pager(w, "/authors", authors.Page, authors.DisplayPage(), authors.DisplayTotalPages(), authors.HasPrev(), authors.HasNext())
	})
}

func AuthorDetailPage(author models.Author, books models.Page[models.Book]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1 class="text-2xl font-semibold">%s</h1><p class="text-sm text-gray-600 mt-1">%s</p>
<h2 class="font-semibold mt-6 mb-3">Sách của tác giả</h2><div class="grid grid-cols-2 md:grid-cols-4 gap-4">`,
			templ.EscapeString(author.Name), templ.EscapeString(author.Bio)); err != nil {
			return err
		}
		for _, book := range books.Items {
			if _, err := fmt.Fprintf(w,
				`<a href="/books/%d" class="border rounded-lg bg-white p-3 hover:shadow">`+
					`<p class="text-sm font-medium">%s</p><p class="text-sm text-red-600">%s</p></a>`,
				book.ID, templ.EscapeString(book.Title), templ.EscapeString(format.VND(book.Price))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

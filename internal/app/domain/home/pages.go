package home

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/bangg2309/book-exchange/internal/app/models"
	"github.com/bangg2309/book-exchange/internal/pkg/format"
)

func HomePage(slides []models.Slide, books models.Page[models.Book]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(slides) > 0 {
			if _, err := io.WriteString(w, `<section class="mb-6 flex gap-3 overflow-x-auto">`); err != nil {
				return err
			}
			for _, slide := range slides {
				if !slide.Active {
					continue
				}
				if _, err := fmt.Fprintf(w,
					`<a href="%s"><img src="%s" alt="%s" class="h-40 rounded-lg object-cover"></a>`,
					templ.EscapeString(slide.LinkURL),
					templ.EscapeString(slide.ImageURL),
					templ.EscapeString(slide.Title)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</section>`); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `<h2 class="text-lg font-semibold mb-3">Sách mới đăng</h2>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div class="grid grid-cols-2 md:grid-cols-4 gap-4">`); err != nil {
			return err
		}
		for _, book := range books.Items {
			if err := bookCard(w, book); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func bookCard(w io.Writer, book models.Book) error {
	_, err := fmt.Fprintf(w,
		`<a href="/books/%d" class="border rounded-lg bg-white p-3 hover:shadow">`+
			`<img src="%s" alt="" class="h-36 w-full object-cover rounded mb-2">`+
			`<p class="text-sm font-medium line-clamp-2">%s</p>`+
			`<p class="text-sm text-red-600 font-semibold">%s</p>`+
			`</a>`,
		book.ID,
		templ.EscapeString(book.Thumbnail),
		templ.EscapeString(book.Title),
		templ.EscapeString(format.VND(book.Price)))
	return err
}

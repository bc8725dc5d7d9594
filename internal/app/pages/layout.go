package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/bangg2309/book-exchange/internal/app/models"
)

// LayoutPage wraps page content in the shared shell: head, nav, toast
// region (fed over SSE) and footer. HTMX fragment responses skip this
// and render content alone.
func LayoutPage(data models.LayoutTempl) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="/assets/css/app.css">
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://unpkg.com/htmx.org@1.9.12/dist/ext/sse.js"></script>
<script src="/assets/js/app.js" defer></script>
</head>
<body class="min-h-screen bg-gray-50 text-gray-900">`, templ.EscapeString(data.Title)); err != nil {
			return err
		}

		if err := navBar(data).Render(ctx, w); err != nil {
			return err
		}

		// Toasts stream in here; each banner auto-dismisses itself.
		if _, err := io.WriteString(w,
			`<div id="toast-region" class="fixed top-4 right-4 z-50 flex flex-col gap-2 w-80" `+
				`hx-ext="sse" sse-connect="/events/notifications" sse-swap="toast" hx-swap="beforeend"></div>`); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<main id="main" class="mx-auto max-w-6xl px-4 py-6">`); err != nil {
			return err
		}
		if data.Content != nil {
			if err := data.Content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func navBar(data models.LayoutTempl) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<nav class="bg-white border-b"><div class="mx-auto max-w-6xl px-4 py-3 flex items-center gap-6">`+
			`<a href="/" class="font-bold text-lg">Trạm Sách Cũ</a>`); err != nil {
			return err
		}
		for _, item := range data.Nav.Items {
			class := "text-sm text-gray-600 hover:text-gray-900"
			if item.Name == data.ActiveNav {
				class = "text-sm font-semibold text-gray-900"
			}
			if _, err := fmt.Fprintf(w, `<a href="%s" class="%s">%s</a>`,
				templ.EscapeString(item.URL), class, templ.EscapeString(item.Name)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<span class="flex-1"></span>`); err != nil {
			return err
		}
		if data.User != nil {
			name := data.User.FullName
			if name == "" {
				name = data.User.Username
			}
			if _, err := fmt.Fprintf(w,
				`<a href="/profile" class="text-sm">%s</a>`+
					`<form method="post" action="/auth/logout"><button type="submit" class="text-sm text-gray-500">Đăng xuất</button></form>`,
				templ.EscapeString(name)); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w,
				`<a href="/auth/signin" class="text-sm">Đăng nhập</a>`+
					`<a href="/auth/signup" class="text-sm font-medium">Đăng ký</a>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div></nav>`)
		return err
	})
}

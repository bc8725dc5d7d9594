package auth

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func SignIn() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="mx-auto max-w-sm">
<h1 class="text-xl font-semibold mb-4">Đăng nhập</h1>
<div id="auth-feedback"></div>
<form id="login-form" hx-post="/auth/signin" hx-swap="none" class="flex flex-col gap-3">
<input name="username" placeholder="Tên đăng nhập" class="border rounded px-3 py-2" autocomplete="username">
<input name="password" type="password" placeholder="Mật khẩu" class="border rounded px-3 py-2" autocomplete="current-password">
<button type="submit" class="bg-gray-900 text-white rounded py-2">Đăng nhập</button>
</form>
<a href="/auth/oauth/google" class="block mt-3 text-center border rounded py-2 text-sm">Tiếp tục với Google</a>
<p class="mt-3 text-sm text-gray-600">Chưa có tài khoản? <a href="/auth/signup" class="underline">Đăng ký</a></p>
</section>`)
		return err
	})
}

func SignUp() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="mx-auto max-w-sm">
<h1 class="text-xl font-semibold mb-4">Đăng ký</h1>
<div id="auth-feedback"></div>
<form id="register-form" hx-post="/auth/signup" hx-swap="none" class="flex flex-col gap-3">
<input name="username" placeholder="Tên đăng nhập" class="border rounded px-3 py-2">
<input name="full_name" placeholder="Họ và tên" class="border rounded px-3 py-2">
<input name="email" type="email" placeholder="Email" class="border rounded px-3 py-2">
<input name="password" type="password" placeholder="Mật khẩu" class="border rounded px-3 py-2" autocomplete="new-password">
<input name="confirm_password" type="password" placeholder="Nhập lại mật khẩu" class="border rounded px-3 py-2" autocomplete="new-password">
<button type="submit" class="bg-gray-900 text-white rounded py-2">Tạo tài khoản</button>
</form>
</section>`)
		return err
	})
}

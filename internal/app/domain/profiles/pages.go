package profiles

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/bangg2309/book-exchange/internal/app/models"
)

func ProfilePage(profile *models.UserProfile) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1 class="text-xl font-semibold mb-4">Hồ sơ của tôi</h1>`); err != nil {
			return err
		}
		if profile == nil {
			_, err := io.WriteString(w, `<p class="text-sm text-gray-500">Không tải được hồ sơ, thử lại sau.</p>`)
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<form method="post" action="/profile" class="grid gap-3 max-w-md mb-8">`+
				`<label class="text-sm">Tên đăng nhập<br>`+
				`<input value="%s" class="border rounded px-3 py-2 text-sm w-full bg-gray-100" disabled></label>`+
				`<label class="text-sm">Email<br>`+
				`<input value="%s" class="border rounded px-3 py-2 text-sm w-full bg-gray-100" disabled></label>`+
				`<label class="text-sm">Họ tên<br>`+
				`<input name="fullName" value="%s" class="border rounded px-3 py-2 text-sm w-full"></label>`+
				`<label class="text-sm">Số điện thoại<br>`+
				`<input name="phone" value="%s" class="border rounded px-3 py-2 text-sm w-full"></label>`+
				`<input type="hidden" name="avatar" value="%s">`+
				`<button type="submit" class="bg-gray-900 text-white rounded py-2 text-sm">Lưu thay đổi</button>`+
				`</form>`,
			templ.EscapeString(profile.Username),
			templ.EscapeString(profile.Email),
			templ.EscapeString(profile.FullName),
			templ.EscapeString(profile.Phone),
			templ.EscapeString(profile.Avatar)); err != nil {
			return err
		}
		_, err := io.WriteString(w,
			`<form hx-put="/profile/password" class="grid gap-3 max-w-md">`+
				`<h2 class="font-medium">Đổi mật khẩu</h2>`+
				`<div id="password-feedback"></div>`+
				`<input type="password" name="currentPassword" placeholder="Mật khẩu hiện tại" class="border rounded px-3 py-2 text-sm" required>`+
				`<input type="password" name="newPassword" placeholder="Mật khẩu mới" class="border rounded px-3 py-2 text-sm" required>`+
				`<input type="password" name="confirmPassword" placeholder="Nhập lại mật khẩu mới" class="border rounded px-3 py-2 text-sm" required>`+
				`<button type="submit" class="bg-gray-900 text-white rounded py-2 text-sm">Đổi mật khẩu</button>`+
				`</form>`)
		return err
	})
}

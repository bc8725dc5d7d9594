package banner

import (
	"context"
	"fmt"
	"io"

	"github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	"github.com/a-h/templ"
)

type BannerType string

const (
	BannerSuccess BannerType = "success"
	BannerError   BannerType = "error"
	BannerWarning BannerType = "warning"
	BannerInfo    BannerType = "info"
)

type BannerProps struct {
	Type        BannerType
	Message     string
	Description string
	ID          string
	Dismissable bool
	// AutoDismiss is seconds until the banner removes itself; 0 keeps
	// it visible.
	AutoDismiss int
}

func classesFor(t BannerType) string {
	base := "rounded-md border p-3 text-sm shadow-sm"
	switch t {
	case BannerSuccess:
		return twmerge.Merge(base, "border-green-300 bg-green-50 text-green-800")
	case BannerError:
		return twmerge.Merge(base, "border-red-300 bg-red-50 text-red-800")
	case BannerWarning:
		return twmerge.Merge(base, "border-yellow-300 bg-yellow-50 text-yellow-800")
	default:
		return twmerge.Merge(base, "border-blue-300 bg-blue-50 text-blue-800")
	}
}

// Banner renders one toast/notice. With AutoDismiss set, the element
// removes itself client-side after the delay; the dismiss button works
// at any time and doing both is harmless.
func Banner(props BannerProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := props.ID
		if id == "" {
			id = "banner"
		}
		if _, err := fmt.Fprintf(w, `<div id="%s" class="%s" role="alert"`,
			templ.EscapeString(id), templ.EscapeString(classesFor(props.Type))); err != nil {
			return err
		}
		if props.AutoDismiss > 0 {
			// The attribute is milliseconds.
			if _, err := fmt.Fprintf(w, ` data-auto-dismiss="%d"`, props.AutoDismiss*1000); err != nil {
				return err
			}
		}
		if props.Dismissable {
			if _, err := io.WriteString(w, ` data-dismissable="true"`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `>`); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<p class="font-medium">%s</p>`, templ.EscapeString(props.Message)); err != nil {
			return err
		}
		if props.Description != "" {
			if _, err := fmt.Fprintf(w, `<p class="mt-1">%s</p>`, templ.EscapeString(props.Description)); err != nil {
				return err
			}
		}
		if props.Dismissable {
			if _, err := io.WriteString(w,
				`<button type="button" class="mt-2 text-xs underline">Đóng</button>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

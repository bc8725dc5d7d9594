package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestSignInPage(t *testing.T) {
	t.Run("it renders the sign-in form", func(t *testing.T) {
		var sb strings.Builder
		if err := SignIn().Render(context.Background(), &sb); err != nil {
			t.Fatalf("failed to render: %v", err)
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
		if err != nil {
			t.Fatalf("failed to read rendered HTML: %v", err)
		}

		form := doc.Find("form")
		if form.Length() == 0 {
			t.Error("expected a form element to be rendered, but it wasn't")
		}

		if hxPost, _ := form.Attr("hx-post"); hxPost != "/auth/signin" {
			t.Errorf(`expected hx-post attribute to be "/auth/signin", but got "%s"`, hxPost)
		}

		if form.Find("input[name='username']").Length() == 0 {
			t.Error("expected a username input element to be rendered, but it wasn't")
		}
		if form.Find("input[name='password']").Length() == 0 {
			t.Error("expected a password input element to be rendered, but it wasn't")
		}
		if form.Find("button[type='submit']").Length() == 0 {
			t.Error("expected a submit button to be rendered, but it wasn't")
		}
	})

	t.Run("it renders the inline feedback target", func(t *testing.T) {
		var sb strings.Builder
		if err := SignIn().Render(context.Background(), &sb); err != nil {
			t.Fatalf("failed to render: %v", err)
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
		if err != nil {
			t.Fatalf("failed to read rendered HTML: %v", err)
		}

		if doc.Find("#auth-feedback").Length() == 0 {
			t.Error("expected the #auth-feedback target to be rendered, but it wasn't")
		}
	})

	t.Run("it has a link to the Google flow", func(t *testing.T) {
		var sb strings.Builder
		if err := SignIn().Render(context.Background(), &sb); err != nil {
			t.Fatalf("failed to render: %v", err)
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
		if err != nil {
			t.Fatalf("failed to read rendered HTML: %v", err)
		}

		if doc.Find("a[href='/auth/oauth/google']").Length() == 0 {
			t.Error("expected a Google sign-in link to be rendered, but it wasn't")
		}
	})
}

func TestSignUpPage(t *testing.T) {
	var sb strings.Builder
	if err := SignUp().Render(context.Background(), &sb); err != nil {
		t.Fatalf("failed to render: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("failed to read rendered HTML: %v", err)
	}

	form := doc.Find("form")
	if hxPost, _ := form.Attr("hx-post"); hxPost != "/auth/signup" {
		t.Errorf(`expected hx-post attribute to be "/auth/signup", but got "%s"`, hxPost)
	}

	for _, name := range []string{"username", "email", "password", "confirm_password"} {
		if form.Find("input[name='"+name+"']").Length() == 0 {
			t.Errorf("expected an input named %q to be rendered, but it wasn't", name)
		}
	}
}

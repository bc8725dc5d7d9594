package models

import "github.com/a-h/templ"

type NavItem struct {
	Name string
	URL  string
}

type Navigation struct {
	Items []NavItem
}

// LayoutTempl carries everything the page shell needs: titles, nav
// state and the authenticated user (nil for anonymous visitors).
type LayoutTempl struct {
	Title     string
	Content   templ.Component
	Nav       Navigation
	ActiveNav string
	User      *UserProfile
}

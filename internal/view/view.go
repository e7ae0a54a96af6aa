// Package view renders the handful of HTML pages the backend serves. The
// JSON API is the primary surface; these pages are minimal forms posting to
// it.
package view

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

func page(title string, body func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>%s · inkwell</title></head>
<body>
<nav><a href="/">inkwell</a> <a href="/user/signin">Sign in</a> <a href="/user/signup">Sign up</a></nav>
`, templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

// HomePage lists the latest blog titles. fullName is empty for anonymous
// visitors.
func HomePage(fullName string, titles []string) templ.Component {
	return page("Home", func(w io.Writer) error {
		if fullName != "" {
			if _, err := fmt.Fprintf(w, "<p>Signed in as %s · <a href=\"/user/logout\">Log out</a></p>\n", templ.EscapeString(fullName)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "<h1>Latest posts</h1>\n<ul>\n"); err != nil {
			return err
		}
		for _, t := range titles {
			if _, err := fmt.Fprintf(w, "<li>%s</li>\n", templ.EscapeString(t)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>\n")
		return err
	})
}

// SignInPage renders the sign-in form.
func SignInPage() templ.Component {
	return page("Sign in", func(w io.Writer) error {
		_, err := io.WriteString(w, `<h1>Sign in</h1>
<form method="post" action="/user/signin">
<label>Email <input type="email" name="email" required></label>
<label>Password <input type="password" name="password" required></label>
<button type="submit">Sign in</button>
</form>
`)
		return err
	})
}

// SignUpPage renders the registration form.
func SignUpPage() templ.Component {
	return page("Sign up", func(w io.Writer) error {
		_, err := io.WriteString(w, `<h1>Create account</h1>
<form method="post" action="/user/signup">
<label>Full name <input type="text" name="fullName" required></label>
<label>Email <input type="email" name="email" required></label>
<label>Password <input type="password" name="password" required></label>
<button type="submit">Sign up</button>
</form>
`)
		return err
	})
}

// AddBlogPage renders the blog creation form. fullName is empty for
// anonymous visitors, who can see the form but not submit it.
func AddBlogPage(fullName string) templ.Component {
	return page("New post", func(w io.Writer) error {
		if fullName != "" {
			if _, err := fmt.Fprintf(w, "<p>Posting as %s</p>\n", templ.EscapeString(fullName)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `<h1>New post</h1>
<form method="post" action="/blog/add-new" enctype="multipart/form-data">
<label>Title <input type="text" name="title" required></label>
<label>Body <textarea name="body" required></textarea></label>
<label>Cover image <input type="file" name="coverImage" accept="image/png,image/jpeg"></label>
<button type="submit">Publish</button>
</form>
`)
		return err
	})
}

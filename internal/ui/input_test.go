package ui

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func renderInput(t *testing.T, in *Input) *html.Node {
	t.Helper()

	var buf bytes.Buffer

	require.NoError(t, in.Render(&buf))

	return parse(t, buf.String())
}

func inputElement(t *testing.T, doc *html.Node) *html.Node {
	t.Helper()

	inputs := findAll(doc, byTag("input"))
	require.Len(t, inputs, 1)

	return inputs[0]
}

func icons(doc *html.Node, name string) []*html.Node {
	return findAll(doc, byAttr("data-icon", name))
}

func TestInput_PasswordToggle(t *testing.T) {
	t.Parallel()

	in := &Input{Name: "accountPassword", Type: "password", Value: "s3cret"}

	doc := renderInput(t, in)
	typ, _ := attr(inputElement(t, doc), "type")
	require.Equal(t, "password", typ)
	require.Len(t, icons(doc, IconVisibilityOff), 1)
	require.Empty(t, icons(doc, IconVisibilityOn))

	in.Toggle()

	doc = renderInput(t, in)
	typ, _ = attr(inputElement(t, doc), "type")
	require.Equal(t, "text", typ)
	require.Len(t, icons(doc, IconVisibilityOn), 1)
	require.Empty(t, icons(doc, IconVisibilityOff))

	in.Toggle()

	doc = renderInput(t, in)
	typ, _ = attr(inputElement(t, doc), "type")
	require.Equal(t, "password", typ)
	require.Len(t, icons(doc, IconVisibilityOff), 1)
}

func TestInput_NewInstanceStartsHidden(t *testing.T) {
	t.Parallel()

	a := &Input{Type: "password"}
	a.Toggle()

	b := &Input{Type: "password"}

	require.True(t, a.ShowPassword())
	require.False(t, b.ShowPassword())
	require.Equal(t, "password", b.EffectiveType())
}

func TestInput_ToggleIconClass(t *testing.T) {
	t.Parallel()

	doc := renderInput(t, &Input{Type: "password"})

	icon := icons(doc, IconVisibilityOff)[0]
	class, _ := attr(icon, "class")
	require.Equal(t, "absolute right-6 top-1/2 -translate-y-1/2 transform cursor-pointer", class)

	post, _ := attr(icon, "hx-post")
	require.Equal(t, ToggleInputURL, post)
}

func TestInput_ErrorGlyph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		typ       string
		invalid   bool
		wantError string
		toggle    bool
	}{
		{"invalid password", "password", true, "absolute right-14 top-1/2 -translate-y-1/2 transform", true},
		{"invalid text", "text", true, "absolute right-6 top-1/2 -translate-y-1/2 transform", false},
		{"invalid email", "email", true, "absolute right-6 top-1/2 -translate-y-1/2 transform", false},
		{"valid text", "text", false, "", false},
		{"valid password", "password", false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := renderInput(t, &Input{Type: tt.typ, IsInvalid: tt.invalid})

			errIcons := icons(doc, IconError)
			if tt.wantError == "" {
				require.Empty(t, errIcons)
			} else {
				require.Len(t, errIcons, 1)

				class, _ := attr(errIcons[0], "class")
				require.Equal(t, tt.wantError, class)
			}

			toggles := len(icons(doc, IconVisibilityOff)) + len(icons(doc, IconVisibilityOn))
			if tt.toggle {
				require.Equal(t, 1, toggles)
			} else {
				require.Zero(t, toggles)
			}
		})
	}
}

func TestInput_Classes(t *testing.T) {
	t.Parallel()

	base := "h-14 rounded-[4px] bg-surface-primary text-body1 w-full px-4 text-md font-regular placeholder:text-disable focus:outline focus:outline-1"

	tests := []struct {
		name string
		in   Input
		want string
	}{
		{"valid", Input{Type: "text"}, base + " focus:outline-primary-500"},
		{"invalid", Input{Type: "text", IsInvalid: true}, base + " outline outline-1 outline-red-500"},
		{"password", Input{Type: "password"}, base + " focus:outline-primary-500 pr-14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := renderInput(t, &tt.in)
			class, _ := attr(inputElement(t, doc), "class")
			require.Equal(t, tt.want, class)
		})
	}
}

func TestInput_PassThrough(t *testing.T) {
	t.Parallel()

	in := &Input{
		ID:           "email",
		Name:         "managerEmail",
		Type:         "email",
		Value:        `a"b@c.io`,
		Placeholder:  "이메일",
		AutoComplete: "email",
		ClassName:    "mt-4",
		Required:     true,
		Disabled:     true,
		Attrs: map[string]string{
			"aria-describedby": "email-help",
			"data-testid":      "manager-email",
			"hx-get":           "/check",
			"onclick":          "alert(1)",
		},
	}

	doc := renderInput(t, in)
	el := inputElement(t, doc)

	for key, want := range map[string]string{
		"id":               "email",
		"name":             "managerEmail",
		"type":             "email",
		"value":            `a"b@c.io`,
		"placeholder":      "이메일",
		"autocomplete":     "email",
		"aria-describedby": "email-help",
		"data-testid":      "manager-email",
		"hx-get":           "/check",
	} {
		got, ok := attr(el, key)
		require.True(t, ok, key)
		require.Equal(t, want, got, key)
	}

	_, ok := attr(el, "required")
	require.True(t, ok)

	_, ok = attr(el, "disabled")
	require.True(t, ok)

	_, ok = attr(el, "onclick")
	require.False(t, ok)

	wrapper := findAll(doc, byTag("div"))[0]
	class, _ := attr(wrapper, "class")
	require.Equal(t, "relative mt-4", class)
}

func TestInput_ToggleRoundTrip(t *testing.T) {
	t.Parallel()

	in := &Input{
		ID:        "pw",
		Name:      "accountPassword",
		Type:      "password",
		ClassName: "mt-2",
		IsInvalid: true,
		Attrs:     map[string]string{"data-testid": "pw"},
	}

	doc := renderInput(t, in)
	raw, ok := attr(icons(doc, IconVisibilityOff)[0], "hx-vals")
	require.True(t, ok)

	var vals map[string]string

	require.NoError(t, json.Unmarshal([]byte(raw), &vals))

	form := url.Values{}
	for k, v := range vals {
		form.Set(k, v)
	}

	form.Set("accountPassword", "typed-so-far")

	got := InputFromToggle(form)
	got.Toggle()

	require.Equal(t, "pw", got.ID)
	require.Equal(t, "typed-so-far", got.Value)
	require.True(t, got.IsInvalid)
	require.True(t, got.ShowPassword())
	require.Equal(t, map[string]string{"data-testid": "pw"}, got.Attrs)

	doc = renderInput(t, &got)
	typ, _ := attr(inputElement(t, doc), "type")
	require.Equal(t, "text", typ)
	require.Len(t, icons(doc, IconVisibilityOn), 1)

	raw, _ = attr(icons(doc, IconVisibilityOn)[0], "hx-vals")
	require.True(t, strings.Contains(raw, `"_input.show":"true"`))
}

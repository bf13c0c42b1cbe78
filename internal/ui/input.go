package ui

import (
	"encoding/json"
	"html/template"
	"io"
	"net/url"
	"strconv"
)

const (
	inputClass        = "h-14 rounded-[4px] bg-surface-primary text-body1 w-full px-4 text-md font-regular placeholder:text-disable focus:outline focus:outline-1"
	inputInvalidClass = "outline outline-1 outline-red-500"
	inputValidClass   = "focus:outline-primary-500"
	inputToggleSpace  = "pr-14"
	toggleIconClass   = "absolute right-6 top-1/2 -translate-y-1/2 transform cursor-pointer"
	errorIconBase     = "top-1/2 -translate-y-1/2 transform"

	IconVisibilityOn  = "visibility-on"
	IconVisibilityOff = "visibility-off"
	IconError         = "error"

	typePassword = "password"
	typeText     = "text"
)

// Form keys of the toggle action. They carry the component props so the server can render
// the same input with the visibility flipped.
const (
	toggleKeyID           = "_input.id"
	toggleKeyName         = "_input.name"
	toggleKeyType         = "_input.type"
	toggleKeyPlaceholder  = "_input.placeholder"
	toggleKeyAutoComplete = "_input.autocomplete"
	toggleKeyClassName    = "_input.class"
	toggleKeyInvalid      = "_input.invalid"
	toggleKeyRequired     = "_input.required"
	toggleKeyDisabled     = "_input.disabled"
	toggleKeyShow         = "_input.show"
	toggleKeyAttrs        = "_input.attrs"
)

// Input is a text field that can show a validation error glyph and, for passwords, a
// visibility toggle. It does not validate anything itself.
type Input struct {
	ID           string
	Name         string
	Type         string
	Value        string
	Placeholder  string
	AutoComplete string
	ClassName    string
	Required     bool
	Disabled     bool
	IsInvalid    bool
	// Attrs are passed to the input element as is.
	Attrs map[string]string

	showPassword bool
}

// Toggle flips password visibility.
func (in *Input) Toggle() {
	in.showPassword = !in.showPassword
}

func (in *Input) ShowPassword() bool {
	return in.showPassword
}

func (in *Input) IsPassword() bool {
	return in.Type == typePassword
}

// EffectiveType is the type attribute actually rendered.
func (in *Input) EffectiveType() string {
	switch {
	case in.IsPassword() && in.showPassword:
		return typeText
	case in.Type == "":
		return typeText
	default:
		return in.Type
	}
}

func (in *Input) WrapperClass() string {
	return MergeClasses("relative", in.ClassName)
}

func (in *Input) InputClass() string {
	state := inputValidClass
	if in.IsInvalid {
		state = inputInvalidClass
	}

	space := ""
	if in.IsPassword() {
		space = inputToggleSpace
	}

	return MergeClasses(inputClass, state, space)
}

func (in *Input) ToggleIcon() string {
	if in.showPassword {
		return IconVisibilityOn
	}

	return IconVisibilityOff
}

func (in *Input) ToggleIconClass() string {
	return toggleIconClass
}

// ErrorIconClass keeps the glyph clear of the toggle icon when there is one.
func (in *Input) ErrorIconClass() string {
	right := "right-6"
	if in.IsPassword() {
		right = "right-14"
	}

	return "absolute " + right + " " + errorIconBase
}

func (in *Input) ToggleURL() string {
	return ToggleInputURL
}

// ToggleValues is the hx-vals payload of the toggle action.
func (in *Input) ToggleValues() string {
	vals := map[string]string{
		toggleKeyID:           in.ID,
		toggleKeyName:         in.Name,
		toggleKeyType:         in.Type,
		toggleKeyPlaceholder:  in.Placeholder,
		toggleKeyAutoComplete: in.AutoComplete,
		toggleKeyClassName:    in.ClassName,
		toggleKeyInvalid:      strconv.FormatBool(in.IsInvalid),
		toggleKeyRequired:     strconv.FormatBool(in.Required),
		toggleKeyDisabled:     strconv.FormatBool(in.Disabled),
		toggleKeyShow:         strconv.FormatBool(in.showPassword),
	}

	if len(in.Attrs) > 0 {
		attrs, err := json.Marshal(in.Attrs)
		if err == nil {
			vals[toggleKeyAttrs] = string(attrs)
		}
	}

	data, _ := json.Marshal(vals) //nolint:errchkjson

	return string(data)
}

// InputFromToggle rebuilds the input posted by its toggle action, before the flip.
// The current value is read from the field itself, which the action includes.
func InputFromToggle(form url.Values) Input {
	in := Input{
		ID:           form.Get(toggleKeyID),
		Name:         form.Get(toggleKeyName),
		Type:         form.Get(toggleKeyType),
		Placeholder:  form.Get(toggleKeyPlaceholder),
		AutoComplete: form.Get(toggleKeyAutoComplete),
		ClassName:    form.Get(toggleKeyClassName),
		IsInvalid:    parseBool(form.Get(toggleKeyInvalid)),
		Required:     parseBool(form.Get(toggleKeyRequired)),
		Disabled:     parseBool(form.Get(toggleKeyDisabled)),
		showPassword: parseBool(form.Get(toggleKeyShow)),
	}

	if in.Name != "" {
		in.Value = form.Get(in.Name)
	}

	if raw := form.Get(toggleKeyAttrs); raw != "" {
		var attrs map[string]string
		if json.Unmarshal([]byte(raw), &attrs) == nil {
			in.Attrs = attrs
		}
	}

	return in
}

func (in *Input) Render(w io.Writer) error {
	return render(w, "input", in)
}

func (in *Input) HTML() (template.HTML, error) {
	return renderHTML("input", in)
}

func parseBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}

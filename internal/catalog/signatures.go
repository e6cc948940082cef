package catalog

// DefaultID is the identifier the detector falls back to when nothing scores.
const DefaultID = "text"

var defaultCatalog = MustNew(
	Signature{
		ID:            "text",
		DisplayName:   "Text Input",
		Shape:         ShapeRectangle,
		Size:          &Size{Width: 200, Height: 40},
		LabelKeywords: []string{"name", "username", "text", "input", "field"},
	},
	Signature{
		ID:            "password",
		DisplayName:   "Password Input",
		Shape:         ShapeRectangle,
		Size:          &Size{Width: 200, Height: 40},
		IconKeywords:  []string{"eye", "eye-slash", "lock", "key"},
		LabelKeywords: []string{"password", "pwd", "pass", "secret"},
	},
	Signature{
		ID:            "email",
		DisplayName:   "Email Input",
		Shape:         ShapeRectangle,
		Size:          &Size{Width: 200, Height: 40},
		IconKeywords:  []string{"@", "envelope", "mail"},
		LabelKeywords: []string{"email", "e-mail", "mail", "contact"},
	},
	Signature{
		ID:            "number",
		DisplayName:   "Number Input",
		Shape:         ShapeRectangle,
		Size:          &Size{Width: 120, Height: 40},
		LabelKeywords: []string{"number", "quantity", "amount", "age", "count"},
		SpecialTraits: []string{"spinner", "stepper"},
	},
	Signature{
		ID:            "checkbox",
		DisplayName:   "Checkbox Input",
		Shape:         ShapeSquare,
		Size:          &Size{Width: 20, Height: 20},
		IconKeywords:  []string{"check", "tick"},
		LabelKeywords: []string{"checkbox", "check", "toggle", "accept", "agree"},
	},
	Signature{
		ID:            "radio",
		DisplayName:   "Radio Input",
		Shape:         ShapeCircle,
		Size:          &Size{Width: 20, Height: 20},
		LabelKeywords: []string{"radio", "option", "select", "choice"},
	},
	Signature{
		ID:            "color",
		DisplayName:   "Color Input",
		Shape:         ShapeRectangle,
		Size:          &Size{Width: 40, Height: 40},
		IconKeywords:  []string{"palette", "color-picker"},
		LabelKeywords: []string{"color", "colour", "picker", "theme"},
	},
	Signature{
		ID:            "date",
		DisplayName:   "Date Input",
		Shape:         ShapeRectangle,
		Size:          &Size{Width: 200, Height: 40},
		IconKeywords:  []string{"calendar", "date"},
		LabelKeywords: []string{"date", "day", "calendar", "schedule"},
	},
	Signature{
		ID:            "time",
		DisplayName:   "Time Input",
		Shape:         ShapeRectangle,
		Size:          &Size{Width: 120, Height: 40},
		IconKeywords:  []string{"clock", "time", "watch"},
		LabelKeywords: []string{"time", "hour", "schedule"},
	},
	Signature{
		ID:            "file",
		DisplayName:   "File Input",
		Shape:         ShapeRectangle,
		Size:          &Size{Width: 200, Height: 40},
		IconKeywords:  []string{"upload", "file", "attachment", "paperclip"},
		LabelKeywords: []string{"file", "upload", "attachment", "browse"},
	},
	Signature{
		ID:            "range",
		DisplayName:   "Range Input",
		Shape:         ShapeRectangle,
		Size:          &Size{Width: 200, Height: 20},
		LabelKeywords: []string{"range", "slider", "scale"},
		SpecialTraits: []string{"slider", "track"},
	},
	Signature{
		ID:            "search",
		DisplayName:   "Search Input",
		Shape:         ShapeRectangle,
		Size:          &Size{Width: 200, Height: 40},
		IconKeywords:  []string{"search", "magnifier", "find"},
		LabelKeywords: []string{"search", "find", "lookup"},
	},
	Signature{
		ID:            "tel",
		DisplayName:   "Telephone Input",
		Shape:         ShapeRectangle,
		Size:          &Size{Width: 200, Height: 40},
		IconKeywords:  []string{"phone", "telephone"},
		LabelKeywords: []string{"tel", "telephone", "phone", "mobile"},
	},
	Signature{
		ID:            "url",
		DisplayName:   "URL Input",
		Shape:         ShapeRectangle,
		Size:          &Size{Width: 250, Height: 40},
		IconKeywords:  []string{"link", "web", "globe"},
		LabelKeywords: []string{"url", "website", "link", "web"},
	},
	Signature{
		ID:            "button",
		DisplayName:   "Button Input",
		Shape:         ShapeRectangle,
		Size:          &Size{Width: 100, Height: 40},
		LabelKeywords: []string{"button", "submit", "click", "action"},
	},
	Signature{
		ID:            "submit",
		DisplayName:   "Submit Button",
		Shape:         ShapeRectangle,
		Size:          &Size{Width: 100, Height: 40},
		LabelKeywords: []string{"submit", "send", "save", "confirm"},
	},
	Signature{
		ID:            "reset",
		DisplayName:   "Reset Button",
		Shape:         ShapeRectangle,
		Size:          &Size{Width: 100, Height: 40},
		LabelKeywords: []string{"reset", "clear", "cancel"},
	},
)

// Default returns the built-in catalog of form-input signatures.
//
// The same *Catalog is returned on every call.
func Default() *Catalog {
	return defaultCatalog
}

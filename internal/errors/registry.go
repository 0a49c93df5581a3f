package errors

// Template defines a registered error type.
type Template struct {
	Category Category
	Message  string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// Definition errors (E001-E019)
	"E001": {CategoryDefinition, "Custom element tag name is required"},
	"E002": {CategoryDefinition, "Render function is required"},
	"E003": {CategoryDefinition, "Invalid custom element name"},
	"E004": {CategoryDefinition, "Custom element already defined"},

	// Manifest errors (E100-E119)
	"E100": {CategoryConfig, "Manifest not found"},
	"E101": {CategoryConfig, "Invalid manifest"},
	"E102": {CategoryConfig, "Unknown component"},
	"E103": {CategoryConfig, "Unknown wrapper"},
	"E104": {CategoryConfig, "Invalid server address"},

	// Publish errors (E120-E139)
	"E120": {CategoryPublish, "Invalid publish destination"},
	"E121": {CategoryPublish, "Snapshot upload failed"},
	"E122": {CategoryPublish, "Snapshot write failed"},

	// Host errors (E140-E159)
	"E140": {CategoryHost, "Element instance not found"},
	"E141": {CategoryHost, "Tag is not a defined custom element"},
	"E142": {CategoryHost, "Property is not a callable handler"},
	"E143": {CategoryHost, "Malformed request body"},

	// CLI errors (E160-E179)
	"E160": {CategoryCLI, "Markup could not be parsed"},
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}

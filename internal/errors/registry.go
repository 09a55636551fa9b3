package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// Renderer error codes. These are stable identifiers; tests and callers
// match on them.
const (
	CodeUnknownVariant   = "E001"
	CodePropertyConflict = "E002"
	CodeMalformedStyles  = "E003"
)

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Renderer Errors (E001-E099)
	// ============================================

	CodeUnknownVariant: {
		Category: CategoryRender,
		Message:  "Unknown element variant",
		Detail:   "The requested variant tag is not in the supported set. The renderer never falls back to the default variant for an unknown tag, since that would hide the bug at the call site.",
		DocURL:   "https://fpkit.dev/docs/errors/E001",
	},
	CodePropertyConflict: {
		Category: CategoryRender,
		Message:  "Conflicting property keys",
		Detail:   "A renderer-managed key (styles, classes) and its native counterpart (style, class) were both supplied. The renderer owns those native slots and cannot pick one silently.",
		DocURL:   "https://fpkit.dev/docs/errors/E002",
	},
	CodeMalformedStyles: {
		Category: CategoryRender,
		Message:  "Malformed style configuration",
		Detail:   "Style values must be flat string-keyed scalars. Nested maps, slices, and non-scalar values are rejected rather than coerced.",
		DocURL:   "https://fpkit.dev/docs/errors/E003",
	},

	// ============================================
	// Config Errors (E100-E199)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "Config file not found",
		Detail:   "No acss.json was found in this directory or any parent directory.",
		DocURL:   "https://fpkit.dev/docs/errors/E100",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "Invalid config file",
		Detail:   "acss.json could not be parsed as JSON.",
		DocURL:   "https://fpkit.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
		DocURL:   "https://fpkit.dev/docs/errors/E102",
	},

	// ============================================
	// CLI Errors (E200-E299)
	// ============================================

	"E200": {
		Category: CategoryCLI,
		Message:  "Target file already exists",
		Detail:   "Generation would overwrite an existing file. Remove it first or pick another name.",
		DocURL:   "https://fpkit.dev/docs/errors/E200",
	},
	"E201": {
		Category: CategoryCLI,
		Message:  "Invalid component name",
		Detail:   "Component names must start with a letter and contain only letters and digits.",
		DocURL:   "https://fpkit.dev/docs/errors/E201",
	},

	// ============================================
	// Server Errors (E300-E399)
	// ============================================

	"E300": {
		Category: CategoryServer,
		Message:  "Preview server failed to start",
		DocURL:   "https://fpkit.dev/docs/errors/E300",
	},

	// ============================================
	// Publish Errors (E400-E499)
	// ============================================

	"E400": {
		Category: CategoryCLI,
		Message:  "Publish failed",
		Detail:   "The built gallery could not be copied to the publish target.",
		DocURL:   "https://fpkit.dev/docs/errors/E400",
	},
	"E401": {
		Category: CategoryCLI,
		Message:  "Nothing to publish",
		Detail:   "The output directory does not exist. Run `acss build` first.",
		DocURL:   "https://fpkit.dev/docs/errors/E401",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for a code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a custom error template. Intended for tests.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}

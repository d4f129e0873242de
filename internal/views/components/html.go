package components

// Editor endpoints the rendered fragments post back to.
const (
	EditorPath       = "/app/products/new"
	AddOptionPath    = "/app/products/variants/options"
	RemoveOptionPath = "/app/products/variants/options/remove"
	RegeneratePath   = "/app/products/variants/regenerate"
	PreviewPath      = "/app/products/variants/preview"
)

// Element identifiers targeted by HTMX swaps.
const (
	EditorID          = "variantEditor"
	OptionContainerID = "optionContainer"
	VariantListID     = "variantList"
)

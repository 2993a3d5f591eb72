package assets

// Embedded is the shared loader over the templates compiled into the binary.
// It backs the default component registry.
var Embedded = NewEmbeddedLoader()

// LoadTemplate loads a component template by name from Embedded.
// The name should not include the .html extension or path components.
// Returns ErrTemplateNotFound if the template does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadTemplate(name string) (string, error) {
	return Embedded.LoadTemplate(name)
}

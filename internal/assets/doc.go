// Package assets provides the html/template sources of the built-in
// components and lets a directory on disk override them.
//
// Loaders form a chain:
//
//	Resolver
//	    ├── FilesystemLoader  {basePath}/components/{name}.html, optional
//	    └── EmbeddedLoader    templates compiled into the binary
//
// Template names follow the component name grammar. Files are read through
// an os.Root confined to basePath, so symlinks cannot leak outside files.
package assets

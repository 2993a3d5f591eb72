package main

import (
	"fmt"
	"io"
	"path/filepath"

	spellbook "github.com/alnah/go-spellbook"
	"github.com/alnah/go-spellbook/internal/assets"
	"github.com/alnah/go-spellbook/internal/fileutil"
)

// runTemplates lists the built-in components, prints one template, or
// ejects every template into an asset directory.
func runTemplates(args []string, env *Environment) error {
	f, positional, err := parseTemplatesFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}

	switch {
	case f.eject != "" && len(positional) > 0:
		return fmt.Errorf("%w: --eject takes no component name", ErrUsage)
	case f.eject != "":
		return ejectTemplates(env.Stdout, f.eject, f.force)
	case len(positional) > 1:
		return fmt.Errorf("%w: expected at most one component name, got %d", ErrUsage, len(positional))
	case len(positional) == 1:
		content, err := spellbook.BuiltinTemplate(positional[0])
		if err != nil {
			return err
		}
		_, err = io.WriteString(env.Stdout, content)
		return err
	}

	for _, name := range spellbook.BuiltinComponents() {
		fmt.Fprintln(env.Stdout, name)
	}
	return nil
}

// ejectTemplates writes each built-in template to dir/components/<name>.html.
// Existing files are kept unless force is set.
func ejectTemplates(w io.Writer, dir string, force bool) error {
	target := filepath.Join(dir, assets.ComponentsDir)

	for _, name := range spellbook.BuiltinComponents() {
		path := filepath.Join(target, name+".html")
		if !force && fileutil.FileExists(path) {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrOutputExists, path)
		}

		content, err := spellbook.BuiltinTemplate(name)
		if err != nil {
			return err
		}
		if err := writeOutput(path, []byte(content)); err != nil {
			return err
		}
		fmt.Fprintf(w, "Created %s\n", path)
	}
	return nil
}

// Package pipeline renders a scanned block tree to HTML.
//
// Rendering is bottom-up. Each block's content is rendered first, then the
// block's component (or HTML element) wraps it, and the resulting fragment is
// parked behind an opaque placeholder token. The surrounding markdown is then
// converted by goldmark and the tokens are swapped back for their fragments,
// so component output never passes through the markdown parser.
//
// The package also derives data from rendered HTML:
//   - the heading outline (Outline)
//   - word count and reading time (WordCount, ReadingMinutes)
//   - relative link rewriting for multi-document builds (RewriteLinks)
package pipeline

package style

import (
	"fmt"
	"io"
)

// Reporter prints run progress for humans.
type Reporter struct {
	w      io.Writer
	styles *Styles
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w, styles: NewStyles(w)}
}

// Start announces generation of the named output
func (r *Reporter) Start(output string) {
	r.printf("🚀 %s\n", r.styles.Title.Render(fmt.Sprintf("Generating %s exports...", output)))
}

// Package announces one package being scanned
func (r *Reporter) Package(name, version string) {
	r.printf("📦 %s %s\n", r.styles.Package.Render(name), r.styles.Version.Render(version))
}

// Collision reports a name dropped from a package
func (r *Reporter) Collision(name, kept, dropped string) {
	r.printf("⚠️  %s\n", r.styles.Warning.Render(
		fmt.Sprintf("%s from %s is shadowed by %s", name, dropped, kept)))
}

// Writing announces the output write
func (r *Reporter) Writing(path string) {
	r.printf("📝 Writing %s...\n", r.styles.Path.Render(path))
}

// Done announces the end of the run
func (r *Reporter) Done() {
	r.printf("🏁 %s\n", r.styles.Success.Render("Done!"))
}

func (r *Reporter) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}

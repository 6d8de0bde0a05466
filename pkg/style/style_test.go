package style

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestReporter_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.Start("remix.ts")
	r.Package("@remix-run/node", "2.3.1")
	r.Collision("json", "@remix-run/node", "remix-utils")
	r.Writing("./app/remix.ts")
	r.Done()

	want := "🚀 Generating remix.ts exports...\n" +
		"📦 @remix-run/node 2.3.1\n" +
		"⚠️  json from remix-utils is shadowed by @remix-run/node\n" +
		"📝 Writing ./app/remix.ts...\n" +
		"🏁 Done!\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderMarkdown_NotTerminal(t *testing.T) {
	content := "# Usage\n\n`gen-remix [options]`\n"
	assert.Equal(t, content, RenderMarkdown(&bytes.Buffer{}, content))
}

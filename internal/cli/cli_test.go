package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-urlfor/pkg/helpers"
	"github.com/goliatone/go-urlfor/pkg/router"
)

const testConfig = `
static_root: /static/
routes:
  - name: index
    pattern: /
  - name: item-details
    pattern: /items/{id:[0-9]+}
  - name: post
    pattern: /blog/{year}/{slug}
`

type stubPrompter struct {
	answers map[string]string
	asked   []string
}

func (s *stubPrompter) Input(message string) (string, error) {
	s.asked = append(s.asked, message)
	for key, answer := range s.answers {
		if strings.Contains(message, "{"+key+"}") {
			return answer, nil
		}
	}
	return "", nil
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "urlfor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, deps Deps, args ...string) (string, error) {
	t.Helper()
	if deps.Env == nil {
		deps.Env = func(string) (string, bool) { return "", false }
	}
	cmd := NewRootCmd(deps)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestResolve_PrintsURL(t *testing.T) {
	cfg := writeConfig(t, testConfig)

	out, err := run(t, Deps{}, "resolve", "item-details", "id=123", "--query", "active=true", "-c", cfg)
	require.NoError(t, err)
	assert.Equal(t, "/items/123?active=true\n", out)
}

func TestResolve_ReportsRouteErrors(t *testing.T) {
	cfg := writeConfig(t, testConfig)

	_, err := run(t, Deps{}, "resolve", "item-details", "id=abc", "-c", cfg)
	require.ErrorIs(t, err, router.ErrParamMismatch)

	_, err = run(t, Deps{}, "resolve", "missing", "-c", cfg)
	require.ErrorIs(t, err, router.ErrRouteNotFound)

	_, err = run(t, Deps{}, "resolve", "item-details", "id", "-c", cfg)
	require.Error(t, err)
}

func TestResolve_InteractivePromptsForMissingParams(t *testing.T) {
	cfg := writeConfig(t, testConfig)
	prompter := &stubPrompter{answers: map[string]string{"slug": "hello"}}

	out, err := run(t, Deps{Prompter: prompter}, "resolve", "post", "year=2024", "--interactive", "-c", cfg)
	require.NoError(t, err)
	assert.Equal(t, "/blog/2024/hello\n", out)
	assert.Equal(t, []string{"post {slug}:"}, prompter.asked)
}

func TestStatic_UsesEnvOverride(t *testing.T) {
	cfg := writeConfig(t, testConfig)
	env := func(key string) (string, bool) {
		if key == "URLFOR_STATIC_ROOT" {
			return "https://cdn.example.com/", true
		}
		return "", false
	}

	out, err := run(t, Deps{Env: env}, "static", "/css/app.css", "js/app.js", "-c", cfg)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/css/app.css\nhttps://cdn.example.com/js/app.js\n", out)
}

func TestStatic_MissingRoot(t *testing.T) {
	cfg := writeConfig(t, "routes: []\n")

	_, err := run(t, Deps{}, "static", "app.js", "-c", cfg)
	require.ErrorIs(t, err, helpers.ErrStaticRootMissing)
}

func TestRoutes_ListsTable(t *testing.T) {
	cfg := writeConfig(t, testConfig)

	out, err := run(t, Deps{}, "routes", "-c", cfg)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, lines[1], "index")
	assert.Contains(t, lines[3], "year,slug")
}

func TestParsePairs(t *testing.T) {
	got, err := parsePairs([]string{"id=42", "slug=007", "name=a=b"}, true)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": 42, "slug": "007", "name": "a=b"}, got)

	_, err = parsePairs([]string{"=x"}, false)
	require.Error(t, err)
}

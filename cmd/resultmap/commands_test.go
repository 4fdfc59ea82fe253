package resultmap

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"

	rmerrors "github.com/arthur-debert/resultmap/pkg/errors"
	"github.com/arthur-debert/resultmap/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)


func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"path_only", []string{"resolve", "/book/list"}, "/book/list\n"},
		{"plain_value", []string{"resolve", "/book/list", "ok"}, "/book/list\tok\n"},
		{"back_marker", []string{"resolve", "/book/list", "#"}, "/book\n"},
		{"back_marker_with_value", []string{"resolve", "/book/list.html", "#.error"}, "/book/list\terror\n"},
		{"absolute_split", []string{"resolve", "/a/b", "/x/y..z"}, "/x/y\tz\n"},
		{"string", []string{"resolve", "/book/list", "ok", "--string"}, "/book/list.ok\n"},
		{"prefix", []string{"resolve", "/a", "ok", "--prefix", "/WEB-INF"}, "/WEB-INF/a\tok\n"},
		{"prefix_skips_absolute", []string{"resolve", "/a", "/b", "-p", "/WEB-INF"}, "/b\n"},
		{"alias_flag", []string{"resolve", "/a", "<home>", "--alias", "home=/index"}, "/index\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.NewTestEnvironment(t)
			out, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestResolveUsesConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteFile("conf/aliases.xml", `<aliases><action name="bookList" path="/book/list"/></aliases>`)
	path := env.WriteFile("conf/rm.toml", `
include = ["aliases.xml"]

[results]
prefix = "/pages"

[aliases]
home = "/index"
`)

	out, err := execute(t, "", "--config", path, "resolve", "/a", "<home>")
	require.NoError(t, err)
	assert.Equal(t, "/index\n", out)

	out, err = execute(t, "", "-c", path, "resolve", "/a", "<bookList>..ok")
	require.NoError(t, err)
	assert.Equal(t, "/book/list\tok\n", out)

	out, err = execute(t, "", "-c", path, "resolve", "/a", "ok")
	require.NoError(t, err)
	assert.Equal(t, "/pages/a\tok\n", out)

	// --prefix wins over the file
	out, err = execute(t, "", "-c", path, "resolve", "/a", "ok", "--prefix", "/flag")
	require.NoError(t, err)
	assert.Equal(t, "/flag/a\tok\n", out)
}

func TestResolveBatch(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	input := "/book/list\tok\n\n/book/list.html\t#.error\n/a/b\n"

	out, err := execute(t, input, "resolve", "--batch", "-")
	require.NoError(t, err)
	assert.Equal(t, "/book/list\tok\n/book/list\terror\n/a/b\n", out)

	file := env.WriteFile("batch.tsv", input)
	out, err = execute(t, "", "resolve", "-b", file, "--format", "json")
	require.NoError(t, err)

	var decoded struct {
		Resolutions []struct {
			Result struct {
				Path  string  `json:"path"`
				Value *string `json:"value"`
			} `json:"result"`
		} `json:"resolutions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Resolutions, 3)
	assert.Equal(t, "/book/list", decoded.Resolutions[1].Result.Path)
	require.NotNil(t, decoded.Resolutions[1].Result.Value)
	assert.Equal(t, "error", *decoded.Resolutions[1].Result.Value)
	assert.Nil(t, decoded.Resolutions[2].Result.Value)
}

func TestResolveBatchString(t *testing.T) {
	testutil.NewTestEnvironment(t)
	input := "/book/list\tok\n/book/list.html\t#.error\n/x\t<home>\n"

	out, err := execute(t, input, "resolve", "--batch", "-", "--string", "--alias", "home=/index")
	require.NoError(t, err)
	assert.Equal(t, "/book/list.ok\n/book/list.error\n/index\n", out)
}

func TestResolveEmptyString(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := execute(t, "", "resolve", "", "--string", "--format", "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	resolved, ok := decoded["resolved"]
	assert.True(t, ok, "empty string result must still be reported")
	assert.Equal(t, "", resolved)
}

func TestResolveErrors(t *testing.T) {
	t.Run("missing_path", func(t *testing.T) {
		testutil.NewTestEnvironment(t)
		_, err := execute(t, "", "resolve")
		assert.Error(t, err)
	})

	t.Run("batch_with_args", func(t *testing.T) {
		testutil.NewTestEnvironment(t)
		_, err := execute(t, "", "resolve", "/a", "--batch", "-")
		assert.True(t, rmerrors.IsErrorCode(err, rmerrors.ErrInvalidInput))
	})

	t.Run("batch_empty_path", func(t *testing.T) {
		testutil.NewTestEnvironment(t)
		_, err := execute(t, "\tok\n", "resolve", "--batch", "-")
		assert.True(t, rmerrors.IsErrorCode(err, rmerrors.ErrInvalidInput))
	})

	t.Run("batch_missing_file", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		_, err := execute(t, "", "resolve", "--batch", filepath.Join(env.Root, "nope.tsv"))
		assert.True(t, rmerrors.IsErrorCode(err, rmerrors.ErrFileAccess))
	})

	t.Run("bad_alias_flag", func(t *testing.T) {
		testutil.NewTestEnvironment(t)
		_, err := execute(t, "", "resolve", "/a", "ok", "--alias", "home")
		assert.True(t, rmerrors.IsErrorCode(err, rmerrors.ErrInvalidInput))
	})

	t.Run("bad_format", func(t *testing.T) {
		testutil.NewTestEnvironment(t)
		_, err := execute(t, "", "resolve", "/a", "--format", "xml")
		assert.Error(t, err)
	})

	t.Run("bad_config", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t)
		path := env.WriteFile("rm.toml", "[actions]\nbad = \"relative\"\n")
		_, err := execute(t, "", "--config", path, "resolve", "/a")
		assert.True(t, rmerrors.IsErrorCode(err, rmerrors.ErrActionInvalid))
	})
}

func TestExpandCommand(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := execute(t, "", "expand", "<a>/<b>.jsp", "-a", "a=/x", "-a", "b=y")
	require.NoError(t, err)
	assert.Equal(t, "/x/y.jsp\n", out)

	out, err = execute(t, "", "expand", "home", "-a", "home=/index")
	require.NoError(t, err)
	assert.Equal(t, "/index\n", out)

	out, err = execute(t, "", "expand", "plain")
	require.NoError(t, err)
	assert.Equal(t, "plain\n", out)
}

func TestAliasesCommand(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	path := env.WriteFile("rm.yaml", `
aliases:
  home: /index
actions:
  bookList: /book/list
`)

	out, err := execute(t, "", "-c", path, "aliases")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"bookList", "/book/list", "action"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"home", "/index", "alias"}, strings.Fields(lines[1]))

	out, err = execute(t, "", "-c", path, "aliases", "-f", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: bookList")
	assert.Contains(t, out, "kind: action")

	out, err = execute(t, "", "-c", path, "aliases", "--export")
	require.NoError(t, err)
	exported := env.WriteFile("exported.toml", out)
	out, err = execute(t, "", "resolve", "/a", "<home>", "-c", writeIncludeConfig(env, exported))
	require.NoError(t, err)
	assert.Equal(t, "/index\n", out)
}

// writeIncludeConfig writes a config whose only content is an include of file
func writeIncludeConfig(env *testutil.TestEnvironment, file string) string {
	return env.WriteFile("include.toml", "include = [\""+file+"\"]\n")
}

func TestGenConfigCommand(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	out, err := execute(t, "", "genconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "# prefix = ")

	out, err = execute(t, "", "genconfig", "--example")
	require.NoError(t, err)
	assert.Contains(t, out, "\nprefix = ")

	out, err = execute(t, "", "genconfig", "--write")
	require.NoError(t, err)
	written := env.UserConfigPath()
	assert.Contains(t, out, written)
	assert.FileExists(t, written)

	_, err = execute(t, "", "genconfig", "--write")
	assert.True(t, rmerrors.IsErrorCode(err, rmerrors.ErrInvalidInput))

	_, err = execute(t, "", "genconfig", "--write", "--force")
	assert.NoError(t, err)

	// the written file is discovered and loads cleanly
	_, err = execute(t, "", "aliases")
	assert.NoError(t, err)
}

func TestGenConfigExampleWriteIsUsable(t *testing.T) {
	testutil.NewTestEnvironment(t)

	_, err := execute(t, "", "genconfig", "--example", "--write")
	require.NoError(t, err)

	out, err := execute(t, "", "resolve", "/a", "<home>")
	require.NoError(t, err)
	assert.Equal(t, "/index\n", out)

	out, err = execute(t, "", "resolve", "/a", "ok")
	require.NoError(t, err)
	assert.Equal(t, "/WEB-INF/jsp/a\tok\n", out)
}

func TestVersionAndCompletion(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "resultmap dev"))

	out, err = execute(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "resultmap")

	_, err = execute(t, "", "completion", "tcsh")
	assert.Error(t, err)
}

func TestHelpTopics(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := execute(t, "", "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "macros")
	assert.Contains(t, out, "config")

	out, err = execute(t, "", "help", "macros")
	require.NoError(t, err)
	assert.Contains(t, out, "markers")
}

func TestRootWithoutCommand(t *testing.T) {
	testutil.NewTestEnvironment(t)
	_, err := execute(t, "")
	assert.EqualError(t, err, MsgErrNoCommand)
}

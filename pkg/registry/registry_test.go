package registry

import (
	stderrors "errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/arthur-debert/resultmap/pkg/errors"
	"github.com/arthur-debert/resultmap/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAlias(t *testing.T) {
	t.Run("register_and_lookup", func(t *testing.T) {
		r := New()
		require.NoError(t, r.RegisterAlias("home", "/index"))

		target, ok := r.Lookup("home")
		assert.True(t, ok)
		assert.Equal(t, "/index", target)
	})

	t.Run("empty_target_is_found", func(t *testing.T) {
		r := New()
		require.NoError(t, r.RegisterAlias("blank", ""))

		target, ok := r.Lookup("blank")
		assert.True(t, ok)
		assert.Empty(t, target)
	})

	t.Run("same_target_twice_is_noop", func(t *testing.T) {
		r := New()
		require.NoError(t, r.RegisterAlias("home", "/index"))
		require.NoError(t, r.RegisterAlias("home", "/index"))
		assert.Equal(t, 1, r.Len())
	})

	t.Run("conflicting_target", func(t *testing.T) {
		r := New()
		require.NoError(t, r.RegisterAlias("home", "/index"))

		err := r.RegisterAlias("home", "/other")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrAliasExists))
		assert.Equal(t, "/index", errors.GetErrorDetails(err)["existing"])
	})

	t.Run("invalid_names", func(t *testing.T) {
		r := New()
		for _, name := range []string{"", "<home>", "a>b", "a<"} {
			err := r.RegisterAlias(name, "/x")
			assert.True(t, errors.IsErrorCode(err, errors.ErrAliasInvalid), "name %q", name)
		}
		assert.Equal(t, 0, r.Len())
	})
}

func TestRegisterAction(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterAction("bookList", "/book/list"))

	err := r.RegisterAction("relative", "book/list")
	assert.True(t, errors.IsErrorCode(err, errors.ErrActionInvalid))

	err = r.RegisterAction("", "/x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrAliasInvalid))
}

func TestLookupFallsBackToActions(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterAction("bookList", "/book/list"))
	require.NoError(t, r.RegisterAction("home", "/action/home"))
	require.NoError(t, r.RegisterAlias("home", "/index"))

	target, ok := r.Lookup("home")
	assert.True(t, ok)
	assert.Equal(t, "/index", target, "path aliases win over actions")

	target, ok = r.Lookup("bookList")
	assert.True(t, ok)
	assert.Equal(t, "/book/list", target)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestEntries(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterAlias("zeta", "/z"))
	require.NoError(t, r.RegisterAction("home", "/action/home"))
	require.NoError(t, r.RegisterAlias("home", "/index"))

	assert.Equal(t, []Entry{
		{Name: "home", Target: "/index", Kind: KindAlias},
		{Name: "home", Target: "/action/home", Kind: KindAction},
		{Name: "zeta", Target: "/z", Kind: KindAlias},
	}, r.Entries())
}

func TestConcurrentAccess(t *testing.T) {
	r := New()
	var wg sync.WaitGroup

	for i := 0; i < 32; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = r.RegisterAlias(fmt.Sprintf("a%d", i), fmt.Sprintf("/p%d", i))
		}(i)
		go func(i int) {
			defer wg.Done()
			_, _ = r.Lookup(fmt.Sprintf("a%d", i))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 32, r.Len())
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	return testutil.CreateFile(t, t.TempDir(), name, content)
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "aliases.toml",
			content: `
[aliases]
home = "/index"

[actions]
bookList = "/book/list"
`,
		},
		{
			name: "yaml",
			file: "aliases.yaml",
			content: `
aliases:
  home: /index
actions:
  bookList: /book/list
`,
		},
		{
			name: "yml",
			file: "aliases.yml",
			content: `
aliases:
  home: /index
actions:
  bookList: /book/list
`,
		},
		{
			name: "xml",
			file: "aliases.xml",
			content: `<?xml version="1.0"?>
<aliases>
  <alias name="home" path="/index"/>
  <action name="bookList" path="/book/list"/>
</aliases>
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			require.NoError(t, r.LoadFile(writeFile(t, tt.file, tt.content)))

			assert.Equal(t, []Entry{
				{Name: "bookList", Target: "/book/list", Kind: KindAction},
				{Name: "home", Target: "/index", Kind: KindAlias},
			}, r.Entries())
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		err := New().LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrAliasFileLoad))
	})

	t.Run("unknown_extension", func(t *testing.T) {
		err := New().LoadFile(writeFile(t, "aliases.ini", "home=/index"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrAliasFileFormat))
	})

	t.Run("bad_toml", func(t *testing.T) {
		err := New().LoadFile(writeFile(t, "aliases.toml", "[aliases\nhome ="))
		assert.True(t, errors.IsErrorCode(err, errors.ErrAliasFileLoad))
	})

	t.Run("xml_wrong_root", func(t *testing.T) {
		err := New().LoadFile(writeFile(t, "aliases.xml", `<paths><alias name="a" path="/a"/></paths>`))
		assert.True(t, errors.IsErrorCode(err, errors.ErrAliasFileLoad))
	})

	t.Run("xml_unknown_element", func(t *testing.T) {
		err := New().LoadFile(writeFile(t, "aliases.xml", `<aliases><route name="a" path="/a"/></aliases>`))
		assert.True(t, errors.IsErrorCode(err, errors.ErrAliasFileLoad))
	})

	t.Run("duplicate_names_rejected_in_every_format", func(t *testing.T) {
		files := map[string]string{
			"dup.toml": "[aliases]\nhome = \"/a\"\nhome = \"/b\"\n",
			"dup.yaml": "aliases:\n  home: /a\n  home: /b\n",
			"dup.xml":  `<aliases><alias name="home" path="/a"/><alias name="home" path="/b"/></aliases>`,
		}
		for name, content := range files {
			r := New()
			err := r.LoadFile(writeFile(t, name, content))
			assert.True(t, errors.IsErrorCode(err, errors.ErrAliasFileLoad), name)
			assert.Equal(t, 0, r.Len(), name)
		}
	})

	t.Run("xml_duplicate_is_format_error", func(t *testing.T) {
		err := New().LoadFile(writeFile(t, "dup.xml",
			`<aliases><action name="list" path="/a"/><action name="list" path="/a"/></aliases>`))
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errors.New(errors.ErrAliasFileFormat, "")))
	})

	t.Run("xml_same_name_alias_and_action_allowed", func(t *testing.T) {
		r := New()
		require.NoError(t, r.LoadFile(writeFile(t, "both.xml",
			`<aliases><alias name="home" path="/index"/><action name="home" path="/home"/></aliases>`)))
		assert.Equal(t, 2, r.Len())
	})

	t.Run("invalid_action_in_file", func(t *testing.T) {
		err := New().LoadFile(writeFile(t, "aliases.toml", "[actions]\nbad = \"relative\"\n"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrActionInvalid))
	})
}

func TestExportTOMLRoundTrip(t *testing.T) {
	r := New()
	require.NoError(t, r.RegisterAlias("home", "/index"))
	require.NoError(t, r.RegisterAction("bookList", "/book/list"))

	data, err := r.ExportTOML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "[aliases]")
	assert.Contains(t, string(data), "[actions]")

	loaded := New()
	require.NoError(t, loaded.LoadFile(writeFile(t, "export.toml", string(data))))
	assert.Equal(t, r.Entries(), loaded.Entries())
}

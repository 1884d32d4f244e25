package registry

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	exterrors "github.com/NVIDIA/extensible/pkg/errors"
	"github.com/NVIDIA/extensible/pkg/option"
)

// Mock extension for testing
type mockExtension struct {
	point string
	name  string
	label string
	desc  string
	opts  []option.Option
}

func (m *mockExtension) ExtensionType() string             { return m.point }
func (m *mockExtension) ExtensionName() string             { return m.name }
func (m *mockExtension) ExtensionOptions() []option.Option { return m.opts }
func (m *mockExtension) ExtensionLabel() string            { return m.label }
func (m *mockExtension) ExtensionDesc() string             { return m.desc }

// bare implements only the required interface
type bare struct{ point, name string }

func (b bare) ExtensionType() string             { return b.point }
func (b bare) ExtensionName() string             { return b.name }
func (b bare) ExtensionOptions() []option.Option { return nil }

func TestCatalog_RegisterAndLookup(t *testing.T) {
	c := New("printer")
	ext := &mockExtension{point: "printer", name: "pretty"}

	require.NoError(t, c.Register("pretty", ext))

	got, err := c.Extension("pretty")
	require.NoError(t, err)
	if got != ext {
		t.Errorf("Extension() = %v, want %v", got, ext)
	}
	assert.Equal(t, []string{"pretty"}, c.RegisteredNames())
	assert.True(t, c.IsRegistered("pretty"))
	assert.Equal(t, "printer", c.Point())
}

func TestCatalog_RegisterDefaultsName(t *testing.T) {
	c := New("printer")
	require.NoError(t, c.Register("", bare{point: "printer", name: "plain"}))
	assert.Equal(t, []string{"plain"}, c.RegisteredNames())
}

func TestCatalog_RegisterOverwrites(t *testing.T) {
	c := New("printer")
	first := &mockExtension{point: "printer", name: "a"}
	second := &mockExtension{point: "printer", name: "a"}

	c.MustRegister("a", first)
	c.MustRegister("a", second)

	got, err := c.Extension("a")
	require.NoError(t, err)
	if got != second {
		t.Error("expected the second registration to win")
	}
}

func TestCatalog_RegisterErrors(t *testing.T) {
	c := New("printer")

	tests := []struct {
		name string
		ext  Extensible
	}{
		{"nil extension", nil},
		{"nil pointer extension", (*mockExtension)(nil)},
		{"wrong point", &mockExtension{point: "reader", name: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Register("x", tt.ext)
			require.Error(t, err)
			assert.Equal(t, exterrors.ErrCodeInternal, exterrors.CodeOf(err))
		})
	}

	assert.Panics(t, func() {
		c.MustRegister("x", nil)
	})
	assert.Panics(t, func() {
		c.MustRegister("x", (*mockExtension)(nil))
	})
}

func TestCatalog_UnknownExtension(t *testing.T) {
	c := New("printer")

	_, err := c.Extension("nope")
	require.Error(t, err)
	assert.Equal(t, exterrors.ErrCodeInternal, exterrors.CodeOf(err))
	assert.Contains(t, err.Error(), "unknown extension 'nope' of type 'printer'")
}

func TestCatalog_LazyLoadsOnce(t *testing.T) {
	c := New("printer")
	c.RegisterLazy("fancy", "printers/fancy")

	calls := 0
	c.SetLoader(func(locator string) error {
		calls++
		assert.Equal(t, "printers/fancy", locator)
		return c.Register("fancy", &mockExtension{point: "printer", name: "fancy"})
	})

	assert.Equal(t, []string{"fancy"}, c.RegisteredNames())
	assert.Equal(t, 0, calls)

	for i := 0; i < 3; i++ {
		ext, err := c.Extension("fancy")
		require.NoError(t, err)
		assert.Equal(t, "fancy", ext.ExtensionName())
	}
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"fancy"}, c.RegisteredNames())
}

func TestCatalog_LazyUnitDoesNotRegister(t *testing.T) {
	c := New("printer")
	c.RegisterLazy("ghost", "printers/ghost")
	c.SetLoader(func(string) error { return nil })

	_, err := c.Extension("ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown extension 'ghost' of type 'printer'")
}

func TestCatalog_LazyLoaderError(t *testing.T) {
	c := New("printer")
	c.RegisterLazy("broken", "printers/broken")
	cause := errors.New("boom")
	c.SetLoader(func(string) error { return cause })

	_, err := c.Extension("broken")
	require.Error(t, err)
	assert.Equal(t, exterrors.ErrCodeInternal, exterrors.CodeOf(err))
	assert.ErrorIs(t, err, cause)
}

func TestCatalog_EagerWinsOverLazy(t *testing.T) {
	c := New("printer")
	c.RegisterLazy("a", "printers/a")
	c.SetLoader(func(string) error {
		t.Fatal("loader must not run for eagerly registered names")
		return nil
	})
	c.MustRegister("a", &mockExtension{point: "printer", name: "a"})

	_, err := c.Extension("a")
	require.NoError(t, err)
}

func TestCatalog_RegisteredNamesUnion(t *testing.T) {
	c := New("printer")
	c.MustRegister("b", &mockExtension{point: "printer", name: "b"})
	c.MustRegister("a", &mockExtension{point: "printer", name: "a"})
	c.RegisterLazy("c", "x")
	c.RegisterLazy("a", "y")

	assert.Equal(t, []string{"a", "b", "c"}, c.RegisteredNames())
}

func TestLoadUnit(t *testing.T) {
	point := "test-load-unit"
	runs := 0
	DefineUnit("test/unit", func() {
		runs++
		Get(point).MustRegister("lazy", bare{point: point, name: "lazy"})
	})
	Get(point).RegisterLazy("lazy", "test/unit")

	for i := 0; i < 2; i++ {
		_, err := Get(point).Extension("lazy")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, runs)
	assert.Contains(t, Units(), "test/unit")

	err := LoadUnit("test/missing")
	require.Error(t, err)
	assert.Equal(t, exterrors.ErrCodeNotFound, exterrors.CodeOf(err))
}

func TestGlobalCatalogs(t *testing.T) {
	a := Get("test-global")
	b := Get("test-global")
	if a != b {
		t.Error("Get() must return the same catalog for the same point")
	}
	assert.Contains(t, Points(), "test-global")

	c, ok := Lookup("test-global")
	assert.True(t, ok)
	assert.Same(t, a, c)

	_, ok = Lookup("test-never-created")
	assert.False(t, ok)
}

func TestGlobalCatalogs_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	catalogs := make([]*Catalog, 20)
	for i := range catalogs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			catalogs[i] = Get("test-concurrent")
		}(i)
	}
	wg.Wait()

	for i, c := range catalogs {
		if c != catalogs[0] {
			t.Errorf("catalog %d differs", i)
		}
	}
}

func TestCatalog_ConcurrentReads(t *testing.T) {
	c := New("printer")
	for i := 0; i < 10; i++ {
		name := fmt.Sprintf("p%d", i)
		c.MustRegister(name, &mockExtension{point: "printer", name: name})
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := c.Extension(fmt.Sprintf("p%d", i))
			assert.NoError(t, err)
			assert.Len(t, c.RegisteredNames(), 10)
		}(i)
	}
	wg.Wait()
}

func TestDescribe(t *testing.T) {
	c := New("printer")
	c.MustRegister("pretty", &mockExtension{
		point: "printer",
		name:  "pretty",
		label: "Pretty Printer",
		desc:  "Indented output",
		opts:  []option.Option{option.New("indent", option.WithType(option.TypeInt))},
	})
	c.MustRegister("plain", bare{point: "printer", name: "plain"})

	d, err := c.Describe("pretty")
	require.NoError(t, err)
	assert.Equal(t, "printer", d.Type)
	assert.Equal(t, "pretty", d.Name)
	assert.Equal(t, "Pretty Printer", d.Label)
	assert.Equal(t, "Indented output", d.Doc)
	require.Len(t, d.Options, 1)
	assert.Equal(t, "indent", d.Options[0].Name())

	d, err = c.Describe("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", d.Label)
	assert.Equal(t, NoDocumentation, d.Doc)
	assert.NotNil(t, d.Options)
	assert.Empty(t, d.Options)

	_, err = c.Describe("missing")
	require.Error(t, err)
}

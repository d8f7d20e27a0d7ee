package whitelist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool {
	return &b
}

func stringPtr(s string) *string {
	return &s
}

func testDefinition() Definition {
	return Definition{
		Controllers: map[string]ControllerDef{
			"example": {
				Enabled: boolPtr(true),
				Pages: map[string]PageDef{
					"home":   {Enabled: boolPtr(true)},
					"mars":   {Enabled: boolPtr(true)},
					"drafts": {Enabled: boolPtr(false)},
					"broken": {},
				},
			},
			"file":   {Enabled: boolPtr(true)},
			"legacy": {Enabled: boolPtr(false)},
		},
		Shortcuts: map[string]ShortcutDef{
			"mars":  {Enabled: boolPtr(true), Path: stringPtr("example/mars")},
			"old":   {Enabled: boolPtr(false), Path: stringPtr("example/home")},
			"empty": {Enabled: boolPtr(true), Path: stringPtr("")},
		},
	}
}

func TestNewStore(t *testing.T) {
	tests := []struct {
		name    string
		def     Definition
		wantErr error
		errText string
	}{
		{
			name: "Valid definition",
			def:  testDefinition(),
		},
		{
			name:    "Controller without enabled flag",
			def:     Definition{Controllers: map[string]ControllerDef{"blog": {}}},
			wantErr: ErrMissingEnabled,
			errText: `controller "blog"`,
		},
		{
			name: "Shortcut without enabled flag",
			def: Definition{Shortcuts: map[string]ShortcutDef{
				"cooking": {Path: stringPtr("blog/cooking")},
			}},
			wantErr: ErrMissingEnabled,
			errText: `shortcut "cooking"`,
		},
		{
			name: "Shortcut without path",
			def: Definition{Shortcuts: map[string]ShortcutDef{
				"cooking": {Enabled: boolPtr(true)},
			}},
			wantErr: ErrMissingPath,
			errText: `shortcut "cooking"`,
		},
		{
			name: "Empty definition",
			def:  Definition{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewStore(tt.def)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.errText)
				assert.Nil(t, store)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, store)
		})
	}
}

func TestStore_ControllerIsEnabled(t *testing.T) {
	store, err := NewStore(testDefinition())
	require.NoError(t, err)

	assert.True(t, store.ControllerIsEnabled("example"))
	assert.True(t, store.ControllerIsEnabled("file"))
	assert.False(t, store.ControllerIsEnabled("legacy"))
	assert.False(t, store.ControllerIsEnabled("unknown"))
	assert.False(t, store.ControllerIsEnabled(""))
}

func TestStore_Shortcut(t *testing.T) {
	store, err := NewStore(testDefinition())
	require.NoError(t, err)

	sc, ok := store.Shortcut("mars")
	require.True(t, ok)
	assert.Equal(t, ShortcutEntry{ID: "mars", Enabled: true, Path: "example/mars"}, sc)
	assert.True(t, store.ShortcutIsEnabled("mars"))

	_, ok = store.Shortcut("old")
	assert.False(t, ok)
	assert.False(t, store.ShortcutIsEnabled("old"))

	_, ok = store.Shortcut("missing")
	assert.False(t, ok)

	// Пустой путь допустим: он ведет на контроллер по умолчанию
	sc, ok = store.Shortcut("empty")
	require.True(t, ok)
	assert.Equal(t, "", sc.Path)
}

func TestStore_IsPageEnabled(t *testing.T) {
	store, err := NewStore(testDefinition())
	require.NoError(t, err)

	tests := []struct {
		name       string
		controller string
		page       string
		want       bool
		wantErr    error
	}{
		{name: "Enabled page", controller: "example", page: "home", want: true},
		{name: "Disabled page", controller: "example", page: "drafts", want: false},
		{name: "Unregistered page", controller: "example", page: "venus", want: false},
		{name: "Page without enabled flag", controller: "example", page: "broken", wantErr: ErrMissingEnabled},
		{name: "Controller without page whitelist", controller: "file", page: "home", wantErr: ErrPageWhitelistUndeclared},
		{name: "Unknown controller", controller: "blog", page: "home", wantErr: ErrUnknownController},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.IsPageEnabled(tt.controller, tt.page)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore_IsImmutable(t *testing.T) {
	def := testDefinition()
	store, err := NewStore(def)
	require.NoError(t, err)

	// Изменения исходного определения не должны влиять на хранилище
	*def.Controllers["example"].Pages["home"].Enabled = false
	delete(def.Controllers, "file")

	enabled, err := store.IsPageEnabled("example", "home")
	require.NoError(t, err)
	assert.True(t, enabled)
	assert.True(t, store.ControllerIsEnabled("file"))
}

func TestStore_Listings(t *testing.T) {
	store, err := NewStore(testDefinition())
	require.NoError(t, err)

	controllers := store.Controllers()
	require.Len(t, controllers, 3)
	assert.Equal(t, "example", controllers[0].ID)
	assert.Equal(t, "file", controllers[1].ID)
	assert.Equal(t, "legacy", controllers[2].ID)

	shortcuts := store.Shortcuts()
	require.Len(t, shortcuts, 3)
	assert.Equal(t, "empty", shortcuts[0].ID)
	assert.Equal(t, "mars", shortcuts[1].ID)
	assert.Equal(t, "old", shortcuts[2].ID)

	assert.True(t, store.HasPageWhitelist("example"))
	assert.False(t, store.HasPageWhitelist("file"))
	assert.False(t, store.HasPageWhitelist("unknown"))
}

func TestLoad(t *testing.T) {
	input := `{
		"controllers": {
			"example": {"enabled": true, "pages": {"home": {"enabled": true}}},
			"file": {"enabled": true}
		},
		"shortcuts": {
			"mars": {"enabled": true, "path": "example/mars"}
		}
	}`

	def, err := Load(strings.NewReader(input))
	require.NoError(t, err)

	store, err := NewStore(def)
	require.NoError(t, err)
	assert.True(t, store.ControllerIsEnabled("example"))
	assert.True(t, store.ShortcutIsEnabled("mars"))

	enabled, err := store.IsPageEnabled("example", "home")
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(strings.NewReader(`{"controllers": {"example": {"enabled": "yes"}}}`))
	assert.Error(t, err)

	_, err = Load(strings.NewReader(`{"controlers": {}}`))
	assert.Error(t, err)

	_, err = LoadFile("/nonexistent/whitelist.json")
	assert.Error(t, err)
}

package theme_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/bnema/themehost/internal/contrib"
	"github.com/bnema/themehost/internal/domain/entity"
	"github.com/bnema/themehost/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func themesExt(name, themes string) entity.Extension {
	return entity.Extension{
		Name:        name,
		Location:    "file:///ext/" + name,
		Contributes: map[string]json.RawMessage{"themes": json.RawMessage(themes)},
	}
}

func TestRegisterContributionPoint_Idempotent(t *testing.T) {
	ctx := testContext()
	reg := contrib.NewRegistry()
	themes := theme.NewRegistry()

	first, err := theme.RegisterContributionPoint(ctx, reg, themes)
	require.NoError(t, err)
	second, err := theme.RegisterContributionPoint(ctx, reg, themes)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, []string{"themes"}, reg.Names())

	p, ok := reg.Lookup("themes")
	require.True(t, ok)
	assert.NotNil(t, p.Schema())
	assert.Same(t, first, p.Handler())
}

func TestRegisterContributionPoint_DifferentRegistryFails(t *testing.T) {
	ctx := testContext()
	reg := contrib.NewRegistry()
	first := theme.NewRegistry()
	other := theme.NewRegistry()

	cp, err := theme.RegisterContributionPoint(ctx, reg, first)
	require.NoError(t, err)

	_, err = theme.RegisterContributionPoint(ctx, reg, other)
	require.Error(t, err)
	assert.ErrorIs(t, err, theme.ErrRegistryMismatch)

	p, ok := reg.Lookup("themes")
	require.True(t, ok)
	assert.Same(t, cp, p.Handler())

	users := contrib.BuildUsers(ctx, []entity.Extension{
		themesExt("acme-dark", `[{"label":"Acme Dark","uiTheme":"vs-dark","path":"./themes/dark.json"}]`),
	}, entity.ThemeContributionPoint)
	_, err = cp.Accept(ctx, users)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Len())
	assert.Zero(t, other.Len())
}

func TestRegisterContributionPoint_OtherErrorPropagates(t *testing.T) {
	ctx := testContext()
	reg := contrib.NewRegistry()
	p, err := reg.Register(contrib.PointDescriptor{Name: "themes"})
	require.NoError(t, err)
	require.NoError(t, p.SetHandler(contrib.HandlerFunc(func(context.Context, []contrib.User) error { return nil })))

	_, err = theme.RegisterContributionPoint(ctx, reg, theme.NewRegistry())

	require.Error(t, err)
	assert.ErrorIs(t, err, contrib.ErrHandlerAlreadySet)
	assert.NotErrorIs(t, err, contrib.ErrDuplicateRegistration)
}

func TestContributionPoint_AcceptUsers(t *testing.T) {
	ctx := testContext()
	themes := theme.NewRegistry()
	cp, err := theme.RegisterContributionPoint(ctx, contrib.NewRegistry(), themes)
	require.NoError(t, err)

	users := contrib.BuildUsers(ctx, []entity.Extension{
		themesExt("acme-dark", `[{"label":"Acme Dark","uiTheme":"vs-dark","path":"./themes/dark.json"}]`),
		themesExt("solar", `[
			{"id":"solar-light","label":"Solarized Light","uiTheme":"vs","path":"./light.json"},
			{"id":"solar-hc","uiTheme":"hc-black","path":"./hc.json","settingsId":"Solar HC"}
		]`),
	}, entity.ThemeContributionPoint)

	result, err := cp.Accept(ctx, users)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Accepted)
	assert.Zero(t, result.Rejected)
	assert.Equal(t, []string{"Acme Dark", "Solarized Light", "Solar HC"}, themes.SettingsIDs())

	hc, ok := themes.FindBySettingsID("Solar HC")
	require.True(t, ok)
	assert.Equal(t, entity.AppearanceHighContrastDark, hc.Appearance)
	assert.Equal(t, "file:///ext/solar/hc.json", hc.Location)
}

func TestContributionPoint_DuplicateSettingsIDLaterWins(t *testing.T) {
	ctx := testContext()
	themes := theme.NewRegistry()
	cp, err := theme.RegisterContributionPoint(ctx, contrib.NewRegistry(), themes)
	require.NoError(t, err)

	users := contrib.BuildUsers(ctx, []entity.Extension{
		themesExt("first", `[{"label":"Shared","uiTheme":"vs","path":"a.json"}]`),
		themesExt("second", `[{"label":"Shared","uiTheme":"vs-dark","path":"b.json"}]`),
	}, entity.ThemeContributionPoint)

	require.NoError(t, cp.AcceptUsers(ctx, users))

	assert.Equal(t, 1, themes.Len())
	got, ok := themes.FindBySettingsID("Shared")
	require.True(t, ok)
	assert.Equal(t, "second", got.ExtensionName)
	assert.Equal(t, entity.AppearanceDark, got.Appearance)
}

func TestContributionPoint_RepeatedBatchesReplace(t *testing.T) {
	ctx := testContext()
	themes := theme.NewRegistry()
	cp, err := theme.RegisterContributionPoint(ctx, contrib.NewRegistry(), themes)
	require.NoError(t, err)

	batch := func(exts ...entity.Extension) []contrib.User {
		return contrib.BuildUsers(ctx, exts, entity.ThemeContributionPoint)
	}

	require.NoError(t, cp.AcceptUsers(ctx, batch(
		themesExt("a", `[{"label":"A","uiTheme":"vs","path":"a.json"},{"label":"B","uiTheme":"vs","path":"b.json"}]`),
	)))
	require.NoError(t, cp.AcceptUsers(ctx, batch(
		themesExt("a", `[{"label":"B","uiTheme":"vs-dark","path":"b2.json"}]`),
	)))

	assert.Equal(t, []string{"A", "B"}, themes.SettingsIDs())
	b, _ := themes.FindBySettingsID("B")
	assert.Equal(t, "file:///ext/a/b2.json", b.Location)
}

func TestContributionPoint_MalformedEntriesReported(t *testing.T) {
	ctx := testContext()
	themes := theme.NewRegistry()
	cp, err := theme.RegisterContributionPoint(ctx, contrib.NewRegistry(), themes)
	require.NoError(t, err)

	users := contrib.BuildUsers(ctx, []entity.Extension{
		themesExt("not-array", `{"label":"X"}`),
		themesExt("mixed", `[
			{"label":"Good","uiTheme":"vs","path":"good.json"},
			{"label":"No Path","uiTheme":"vs"},
			{"label":"Bad UI","uiTheme":"vs-purple","path":"x.json"},
			{"uiTheme":"vs","path":"anon.json"},
			{"label":5,"uiTheme":"vs","path":"x.json"},
			"just a string"
		]`),
	}, entity.ThemeContributionPoint)

	result, err := cp.Accept(ctx, users)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)
	assert.Equal(t, 6, result.Rejected)
	assert.Equal(t, []string{"Good"}, themes.SettingsIDs())

	require.Len(t, users[0].Collector.Messages(), 1)
	assert.Contains(t, users[0].Collector.Messages()[0].Text, "expected an array")

	msgs := users[1].Collector.Messages()
	require.Len(t, msgs, 5)
	assert.Contains(t, msgs[0].Text, "themes[1].path")
	assert.Contains(t, msgs[1].Text, "themes[2].uiTheme")
	assert.Contains(t, msgs[2].Text, "themes[3].label")
	assert.Contains(t, msgs[3].Text, "themes[4].label")
	assert.Contains(t, msgs[4].Text, "themes[5]")
	for _, m := range msgs {
		assert.Equal(t, contrib.SeverityError, m.Severity)
	}
}

func TestContributionPoint_FactoryOption(t *testing.T) {
	ctx := testContext()
	themes := theme.NewRegistry()
	boom := errors.New("boom")
	cp, err := theme.RegisterContributionPoint(ctx, contrib.NewRegistry(), themes,
		theme.WithDescriptorFactory(func(ext entity.Extension, c entity.ThemeContribution) (*theme.Descriptor, error) {
			if c.Label == "Fails" {
				return nil, boom
			}
			return theme.NewDescriptor(ext, c)
		}))
	require.NoError(t, err)

	users := contrib.BuildUsers(ctx, []entity.Extension{
		themesExt("f", `[{"label":"Fails","uiTheme":"vs","path":"a.json"},{"label":"Works","uiTheme":"vs","path":"b.json"}]`),
	}, entity.ThemeContributionPoint)

	result, err := cp.Accept(ctx, users)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Accepted)
	assert.Equal(t, 1, result.Rejected)
	assert.Contains(t, users[0].Collector.Messages()[0].Text, "boom")
}

func TestContributionSchema(t *testing.T) {
	s := theme.ContributionSchema()

	assert.Equal(t, "array", s.Type)
	require.NotNil(t, s.Items)
	assert.Contains(t, s.Items.Required, "uiTheme")
	assert.Contains(t, s.Items.Required, "path")

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hc-light")
}

package contrib_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bnema/themehost/internal/contrib"
	"github.com/bnema/themehost/internal/domain/entity"
	"github.com/bnema/themehost/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func ext(name string, contributes map[string]string) entity.Extension {
	e := entity.Extension{Name: name, Publisher: "acme"}
	if contributes != nil {
		e.Contributes = make(map[string]json.RawMessage, len(contributes))
		for k, v := range contributes {
			e.Contributes[k] = json.RawMessage(v)
		}
	}
	return e
}

func TestBuildUsers_FiltersAndPreservesOrder(t *testing.T) {
	extensions := []entity.Extension{
		ext("zeta", map[string]string{"themes": `[{"label":"Z"}]`}),
		ext("no-contrib", nil),
		ext("grammar-only", map[string]string{"grammars": `[]`}),
		ext("alpha", map[string]string{"themes": `[{"label":"A"}]`}),
	}

	users := contrib.BuildUsers(testContext(), extensions, "themes")

	require.Len(t, users, 2)
	assert.Equal(t, "zeta", users[0].Extension.Name)
	assert.Equal(t, "alpha", users[1].Extension.Name)
	assert.JSONEq(t, `[{"label":"Z"}]`, string(users[0].Value))
	assert.Equal(t, "acme.zeta", users[0].Collector.Extension())
	assert.Equal(t, "themes", users[0].Collector.Point())
}

func TestBuildUsers_PassesMalformedValueThrough(t *testing.T) {
	extensions := []entity.Extension{
		ext("broken", map[string]string{"themes": `{"not":"an array"}`}),
	}

	users := contrib.BuildUsers(testContext(), extensions, "themes")

	require.Len(t, users, 1)
	assert.Equal(t, `{"not":"an array"}`, string(users[0].Value))
	assert.Empty(t, users[0].Collector.Messages())
}

func TestBuildUsers_Empty(t *testing.T) {
	users := contrib.BuildUsers(testContext(), nil, "themes")
	assert.Empty(t, users)
}

func TestCollector_MessagesAreCopied(t *testing.T) {
	c := contrib.NewCollector(testContext(), "acme.zeta", "themes")
	c.Info("first")
	c.Warn("second")
	c.Error("third")

	msgs := c.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, contrib.SeverityInfo, msgs[0].Severity)
	assert.Equal(t, contrib.SeverityWarning, msgs[1].Severity)
	assert.Equal(t, contrib.SeverityError, msgs[2].Severity)
	assert.Equal(t, "acme.zeta", msgs[2].Extension)
	assert.Equal(t, "themes", msgs[2].Point)
	assert.True(t, c.HasErrors())

	msgs[0].Text = "mutated"
	assert.Equal(t, "first", c.Messages()[0].Text)
}

func TestMessages_FlattensUsers(t *testing.T) {
	users := contrib.BuildUsers(testContext(), []entity.Extension{
		ext("a", map[string]string{"themes": `[]`}),
		ext("b", map[string]string{"themes": `[]`}),
	}, "themes")
	users[0].Collector.Warn("a warning")
	users[1].Collector.Error("b error")

	msgs := contrib.Messages(users)

	require.Len(t, msgs, 2)
	assert.Equal(t, "acme.a", msgs[0].Extension)
	assert.Equal(t, "acme.b", msgs[1].Extension)
}

package theme_test

import (
	"sync"
	"testing"

	"github.com/bnema/themehost/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func desc(id, settingsID string) *theme.Descriptor {
	return &theme.Descriptor{ID: id, SettingsID: settingsID, Label: settingsID}
}

func TestRegistry_FindBySettingsID(t *testing.T) {
	reg := theme.NewRegistry()
	reg.ReplaceBatch([]*theme.Descriptor{desc("vs-dark a-one", "One"), desc("vs b-two", "Two")})

	got, ok := reg.FindBySettingsID("One")
	require.True(t, ok)
	assert.Equal(t, "vs-dark a-one", got.ID)

	_, ok = reg.FindBySettingsID("one")
	assert.False(t, ok, "lookup is case-sensitive")

	_, ok = reg.FindBySettingsID("")
	assert.False(t, ok)

	byID, ok := reg.FindByID("vs b-two")
	require.True(t, ok)
	assert.Equal(t, "Two", byID.SettingsID)
}

func TestRegistry_ReplaceBatch_LaterWinsWithinBatch(t *testing.T) {
	reg := theme.NewRegistry()
	first := desc("vs-dark a-x", "Same")
	second := desc("vs-dark b-x", "Same")

	replaced := reg.ReplaceBatch([]*theme.Descriptor{first, second})

	assert.Equal(t, 1, reg.Len())
	got, _ := reg.FindBySettingsID("Same")
	assert.Same(t, second, got)
	require.Len(t, replaced, 1)
	assert.True(t, replaced[0].InBatch)
	assert.Same(t, first, replaced[0].Previous)
}

func TestRegistry_ReplaceBatch_KeepsAbsentIdentifiers(t *testing.T) {
	reg := theme.NewRegistry()
	reg.ReplaceBatch([]*theme.Descriptor{desc("1", "A"), desc("2", "B")})

	newB := desc("3", "B")
	replaced := reg.ReplaceBatch([]*theme.Descriptor{newB, desc("4", "C"), nil})

	assert.Equal(t, []string{"A", "B", "C"}, reg.SettingsIDs())
	got, _ := reg.FindBySettingsID("B")
	assert.Same(t, newB, got)
	require.Len(t, replaced, 1)
	assert.False(t, replaced[0].InBatch)
	assert.Equal(t, "2", replaced[0].Previous.ID)

	ids := make([]string, 0, 3)
	for _, d := range reg.List() {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"1", "3", "4"}, ids)
}

func TestRegistry_ConcurrentReadersSeeWholeBatches(t *testing.T) {
	reg := theme.NewRegistry()

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				n := reg.Len()
				assert.Zero(t, n%2, "batch applied partially")
			}
		}()
	}

	for i := 0; i < 200; i++ {
		reg.ReplaceBatch([]*theme.Descriptor{
			desc("a", "even-"+string(rune('a'+i%26))+string(rune('a'+i/26))),
			desc("b", "odd-"+string(rune('a'+i%26))+string(rune('a'+i/26))),
		})
	}
	close(stop)
	wg.Wait()

	assert.Equal(t, 400, reg.Len())
}

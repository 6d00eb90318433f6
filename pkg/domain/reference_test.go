package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func images(n int) []ReferenceImage {
	out := make([]ReferenceImage, n)
	for i := range out {
		out[i] = NewReferenceImage(fmt.Sprintf("data:image/png;base64,%d", i))
	}
	return out
}

func TestReferencePool_Add(t *testing.T) {
	t.Run("上限までしか受け付けない", func(t *testing.T) {
		var p ReferencePool
		accepted := p.Add(images(8)...)
		assert.Len(t, accepted, 8)

		accepted = p.Add(images(5)...)
		assert.Len(t, accepted, 2)
		assert.Equal(t, MaxPoolSize, p.Len())
		assert.Equal(t, 0, p.Remaining())

		accepted = p.Add(images(1)...)
		assert.Empty(t, accepted)
		assert.Equal(t, MaxPoolSize, p.Len())
	})

	t.Run("新しい画像は選択済みで一意な ID を持つ", func(t *testing.T) {
		imgs := images(2)
		assert.True(t, imgs[0].Selected)
		assert.NotEmpty(t, imgs[0].ID)
		assert.NotEqual(t, imgs[0].ID, imgs[1].ID)
	})
}

func TestReferencePool_ToggleRemove(t *testing.T) {
	var p ReferencePool
	imgs := p.Add(images(3)...)

	require.True(t, p.Toggle(imgs[1].ID))
	sel := p.Selected()
	require.Len(t, sel, 2)
	assert.Equal(t, imgs[0].ID, sel[0].ID)
	assert.Equal(t, imgs[2].ID, sel[1].ID)

	assert.False(t, p.Toggle("missing"))

	require.True(t, p.Remove(imgs[0].ID))
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, imgs[1].ID, p.Items()[0].ID)
	assert.False(t, p.Remove(imgs[0].ID))
}

func TestReferencePools_Selection(t *testing.T) {
	var pools ReferencePools
	assert.True(t, pools.Selection().Empty())

	pools.Pool(PoolClothing).Add(images(1)...)
	sel := pools.Selection()
	assert.False(t, sel.Empty())
	assert.Len(t, sel.Clothing, 1)
	assert.Nil(t, pools.Pool("unknown"))
}

func TestParsePoolKind(t *testing.T) {
	k, err := ParsePoolKind("location")
	require.NoError(t, err)
	assert.Equal(t, PoolLocation, k)

	_, err = ParsePoolKind("shoes")
	assert.Error(t, err)
}

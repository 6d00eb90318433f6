package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// MaxPoolSize は 1 つの参照プールに保持できる画像の上限です。
const MaxPoolSize = 10

// PoolKind は参照プールの種類です。
type PoolKind string

const (
	PoolModel    PoolKind = "model"
	PoolClothing PoolKind = "clothing"
	PoolLocation PoolKind = "location"
)

// ParsePoolKind は文字列を PoolKind に変換します。
func ParsePoolKind(s string) (PoolKind, error) {
	switch k := PoolKind(s); k {
	case PoolModel, PoolClothing, PoolLocation:
		return k, nil
	}
	return "", fmt.Errorf("unknown reference pool: %q", s)
}

// ReferenceImage はアップロードされた参照画像です。URL は data URI です。
type ReferenceImage struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Selected bool   `json:"selected"`
}

// NewReferenceImage は選択済み状態の新しい参照画像を作成します。
func NewReferenceImage(dataURI string) ReferenceImage {
	return ReferenceImage{ID: uuid.NewString(), URL: dataURI, Selected: true}
}

// ReferencePool は上限付きの参照画像の列です。
// 要素は追加・選択切り替え・削除以外では変更されません。
type ReferencePool struct {
	items []ReferenceImage
}

// Len は保持している画像の数です。
func (p *ReferencePool) Len() int { return len(p.items) }

// Remaining は追加可能な残り枠数です。
func (p *ReferencePool) Remaining() int {
	if n := MaxPoolSize - len(p.items); n > 0 {
		return n
	}
	return 0
}

// Items は保持している画像のコピーを返します。
func (p *ReferencePool) Items() []ReferenceImage {
	out := make([]ReferenceImage, len(p.items))
	copy(out, p.items)
	return out
}

// Selected は選択中の画像だけを順序を保って返します。
func (p *ReferencePool) Selected() []ReferenceImage {
	var out []ReferenceImage
	for _, img := range p.items {
		if img.Selected {
			out = append(out, img)
		}
	}
	return out
}

// Add は上限に達するまで画像を追加し、受け付けた画像を返します。
// 上限を超えた分は黙って捨てられます。
func (p *ReferencePool) Add(imgs ...ReferenceImage) []ReferenceImage {
	n := min(p.Remaining(), len(imgs))
	accepted := imgs[:n]
	p.items = append(p.items, accepted...)
	return accepted
}

// Toggle は指定 ID の選択状態を反転します。見つからなければ false を返します。
func (p *ReferencePool) Toggle(id string) bool {
	for i := range p.items {
		if p.items[i].ID == id {
			p.items[i].Selected = !p.items[i].Selected
			return true
		}
	}
	return false
}

// Remove は指定 ID の画像を削除します。見つからなければ false を返します。
func (p *ReferencePool) Remove(id string) bool {
	for i := range p.items {
		if p.items[i].ID == id {
			p.items = append(p.items[:i:i], p.items[i+1:]...)
			return true
		}
	}
	return false
}

// ReferencePools はモデル・衣装・ロケーションの 3 つの独立したプールです。
type ReferencePools struct {
	Model    ReferencePool
	Clothing ReferencePool
	Location ReferencePool
}

// Pool は種類に対応するプールを返します。
func (r *ReferencePools) Pool(kind PoolKind) *ReferencePool {
	switch kind {
	case PoolModel:
		return &r.Model
	case PoolClothing:
		return &r.Clothing
	case PoolLocation:
		return &r.Location
	}
	return nil
}

// SelectedSet は生成リクエストに渡す選択済み画像の組です。
type SelectedSet struct {
	Model    []ReferenceImage
	Clothing []ReferenceImage
	Location []ReferenceImage
}

// Selection は 3 つのプールの選択済み画像をまとめて返します。
func (r *ReferencePools) Selection() SelectedSet {
	return SelectedSet{
		Model:    r.Model.Selected(),
		Clothing: r.Clothing.Selected(),
		Location: r.Location.Selected(),
	}
}

// Empty は選択済み画像が 1 枚もないかを返します。
func (s SelectedSet) Empty() bool {
	return len(s.Model) == 0 && len(s.Clothing) == 0 && len(s.Location) == 0
}

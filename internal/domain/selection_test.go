package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionSet_Toggle(t *testing.T) {
	s := NewSelectionSet()
	assert.True(t, s.IsEmpty())

	// Включаем базу услуги
	s.Toggle("Manicure", BaseItemKey)
	assert.False(t, s.IsEmpty())
	assert.True(t, s.Has("Manicure", BaseItemKey))

	// База и опции могут быть выбраны одновременно (чекбоксы, не радиокнопки)
	s.Toggle("Manicure", "101")
	s.Toggle("Manicure", "102")
	assert.True(t, s.Has("Manicure", BaseItemKey))
	assert.True(t, s.Has("Manicure", "101"))
	assert.True(t, s.Has("Manicure", "102"))
	assert.Equal(t, 3, s.Count())
}

func TestSelectionSet_ToggleIsIdempotentUntoggle(t *testing.T) {
	s := NewSelectionSet()
	s.Toggle("Haircut", BaseItemKey)

	before := s.Clone()

	// Двойное переключение возвращает набор ровно в прежнее состояние
	s.Toggle("Haircut", "55")
	s.Toggle("Haircut", "55")

	assert.True(t, s.Equal(before))
}

func TestSelectionSet_RemovingLastItemRemovesServiceKey(t *testing.T) {
	s := NewSelectionSet()
	s.Toggle("Haircut", BaseItemKey)
	s.Toggle("Haircut", BaseItemKey)

	// Снятие последней позиции удаляет ключ услуги целиком:
	// пустое множество никогда не остаётся в map
	_, exists := s["Haircut"]
	assert.False(t, exists)
	assert.True(t, s.IsEmpty())
}

func TestSelectionSet_ToggleOrderIndependent(t *testing.T) {
	a := NewSelectionSet()
	a.Toggle("Manicure", BaseItemKey)
	a.Toggle("Haircut", "7")
	a.Toggle("Manicure", "3")

	b := NewSelectionSet()
	b.Toggle("Manicure", "3")
	b.Toggle("Manicure", BaseItemKey)
	b.Toggle("Haircut", "7")

	assert.True(t, a.Equal(b))
}

func TestSelectionSet_Clone(t *testing.T) {
	s := NewSelectionSet()
	s.Toggle("Manicure", BaseItemKey)

	frozen := s.Clone()

	// Изменение оригинала не затрагивает замороженную копию
	s.Toggle("Manicure", "101")
	s.Toggle("Haircut", BaseItemKey)

	assert.Equal(t, 1, frozen.Count())
	assert.True(t, frozen.Has("Manicure", BaseItemKey))
	assert.False(t, frozen.Has("Manicure", "101"))
}

func TestSelectionSet_JSONRoundTrip(t *testing.T) {
	s := NewSelectionSet()
	s.Toggle("Manicure", BaseItemKey)
	s.Toggle("Manicure", "101")
	s.Toggle("Haircut", BaseItemKey)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var restored SelectionSet
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.True(t, s.Equal(restored))
}

func TestSelectionSet_UnmarshalDropsEmptyItemLists(t *testing.T) {
	var s SelectionSet
	require.NoError(t, json.Unmarshal([]byte(`{"Manicure":["base"],"Haircut":[]}`), &s))

	// Пустой список позиций не создаёт ключ услуги
	_, exists := s["Haircut"]
	assert.False(t, exists)
	assert.True(t, s.Has("Manicure", BaseItemKey))
}

package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

// SelectionSet набор выбранных позиций будущего бронирования.
// Ключ внешней map - название услуги, значение - множество item-ключей:
// BaseItemKey ("base") для самой услуги либо ID опции услуги.
//
// Инвариант: название услуги присутствует как ключ только пока его
// множество непусто. Снятие последней позиции удаляет ключ целиком -
// пустое множество в map никогда не хранится.
//
// Семантика выбора - чекбоксы, не радиокнопки: одновременно могут быть
// выбраны и база, и любое количество опций; каждая позиция добавляет
// свою цену и длительность независимо.
type SelectionSet map[string]map[string]struct{}

// NewSelectionSet создает пустой набор выбора
func NewSelectionSet() SelectionSet {
	return make(SelectionSet)
}

// Toggle переключает выбор позиции itemKey для услуги serviceName.
// Если позиция была выбрана - снимает выбор; если множество услуги
// опустело - удаляет ключ услуги целиком.
func (s SelectionSet) Toggle(serviceName, itemKey string) {
	items, ok := s[serviceName]
	if !ok {
		s[serviceName] = map[string]struct{}{itemKey: {}}
		return
	}

	if _, selected := items[itemKey]; selected {
		delete(items, itemKey)
		if len(items) == 0 {
			delete(s, serviceName)
		}
		return
	}

	items[itemKey] = struct{}{}
}

// Has возвращает true, если позиция itemKey выбрана для услуги serviceName
func (s SelectionSet) Has(serviceName, itemKey string) bool {
	items, ok := s[serviceName]
	if !ok {
		return false
	}
	_, selected := items[itemKey]
	return selected
}

// IsEmpty возвращает true, если не выбрано ни одной позиции
func (s SelectionSet) IsEmpty() bool {
	return len(s) == 0
}

// Count возвращает общее количество выбранных позиций
func (s SelectionSet) Count() int {
	total := 0
	for _, items := range s {
		total += len(items)
	}
	return total
}

// ServiceNames возвращает отсортированный список выбранных услуг
func (s SelectionSet) ServiceNames() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ItemKeys возвращает отсортированный список item-ключей услуги
func (s SelectionSet) ItemKeys(serviceName string) []string {
	items, ok := s[serviceName]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Clone возвращает глубокую копию набора выбора
// Используется для заморозки выбора в момент подтверждения бронирования
func (s SelectionSet) Clone() SelectionSet {
	clone := make(SelectionSet, len(s))
	for name, items := range s {
		itemsCopy := make(map[string]struct{}, len(items))
		for key := range items {
			itemsCopy[key] = struct{}{}
		}
		clone[name] = itemsCopy
	}
	return clone
}

// Equal возвращает true при структурном равенстве двух наборов
func (s SelectionSet) Equal(other SelectionSet) bool {
	if len(s) != len(other) {
		return false
	}
	for name, items := range s {
		otherItems, ok := other[name]
		if !ok || len(items) != len(otherItems) {
			return false
		}
		for key := range items {
			if _, ok := otherItems[key]; !ok {
				return false
			}
		}
	}
	return true
}

// MarshalJSON сериализует набор как map[string][]string с сортированными ключами
func (s SelectionSet) MarshalJSON() ([]byte, error) {
	plain := make(map[string][]string, len(s))
	for name := range s {
		plain[name] = s.ItemKeys(name)
	}
	return json.Marshal(plain)
}

// UnmarshalJSON восстанавливает набор из map[string][]string
// Пустые списки позиций отбрасываются, поддерживая инвариант непустых множеств
func (s *SelectionSet) UnmarshalJSON(data []byte) error {
	var plain map[string][]string
	if err := json.Unmarshal(data, &plain); err != nil {
		return err
	}

	result := make(SelectionSet, len(plain))
	for name, keys := range plain {
		if len(keys) == 0 {
			continue
		}
		items := make(map[string]struct{}, len(keys))
		for _, key := range keys {
			items[key] = struct{}{}
		}
		result[name] = items
	}

	*s = result
	return nil
}

// Value сериализует набор для хранения в JSONB колонке
func (s SelectionSet) Value() (driver.Value, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Scan восстанавливает набор из JSONB колонки
func (s *SelectionSet) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = NewSelectionSet()
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("domain: cannot scan %T into SelectionSet", src)
	}
}

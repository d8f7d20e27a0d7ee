// Package whitelist хранит белые списки контроллеров, ярлыков и страниц.
// Store заполняется один раз при старте и после этого только читается,
// поэтому параллельные читатели не нуждаются в синхронизации.
package whitelist

import (
	"fmt"
	"sort"
)

// ControllerEntry представляет контроллер верхнего уровня
type ControllerEntry struct {
	ID      string
	Enabled bool
}

// ShortcutEntry представляет ярлык. Path - сырой запрос, который разбирается заново.
type ShortcutEntry struct {
	ID      string
	Enabled bool
	Path    string
}

// PageEntry представляет страницу в белом списке одного контроллера.
// Enabled равен nil, если флаг не был задан.
type PageEntry struct {
	ID      string
	Enabled *bool
}

type controllerRecord struct {
	entry ControllerEntry
	pages map[string]PageEntry // nil, если контроллер не объявил белый список страниц
}

// Store - неизменяемое хранилище белых списков
type Store struct {
	controllers map[string]controllerRecord
	shortcuts   map[string]ShortcutEntry
}

// NewStore проверяет определение и создает хранилище.
// Контроллер или ярлык без обязательных полей - фатальная ошибка конфигурации.
func NewStore(def Definition) (*Store, error) {
	s := &Store{
		controllers: make(map[string]controllerRecord, len(def.Controllers)),
		shortcuts:   make(map[string]ShortcutEntry, len(def.Shortcuts)),
	}

	for id, c := range def.Controllers {
		if c.Enabled == nil {
			return nil, fmt.Errorf("controller %q: %w", id, ErrMissingEnabled)
		}

		record := controllerRecord{
			entry: ControllerEntry{ID: id, Enabled: *c.Enabled},
		}
		if c.Pages != nil {
			record.pages = make(map[string]PageEntry, len(c.Pages))
			for pageID, p := range c.Pages {
				entry := PageEntry{ID: pageID}
				if p.Enabled != nil {
					enabled := *p.Enabled
					entry.Enabled = &enabled
				}
				record.pages[pageID] = entry
			}
		}
		s.controllers[id] = record
	}

	for id, sc := range def.Shortcuts {
		if sc.Enabled == nil {
			return nil, fmt.Errorf("shortcut %q: %w", id, ErrMissingEnabled)
		}
		if sc.Path == nil {
			return nil, fmt.Errorf("shortcut %q: %w", id, ErrMissingPath)
		}
		s.shortcuts[id] = ShortcutEntry{ID: id, Enabled: *sc.Enabled, Path: *sc.Path}
	}

	return s, nil
}

// ControllerIsEnabled сообщает, зарегистрирован ли контроллер и включен ли он
func (s *Store) ControllerIsEnabled(id string) bool {
	record, ok := s.controllers[id]
	return ok && record.entry.Enabled
}

// ShortcutIsEnabled сообщает, зарегистрирован ли ярлык и включен ли он
func (s *Store) ShortcutIsEnabled(id string) bool {
	sc, ok := s.shortcuts[id]
	return ok && sc.Enabled
}

// Shortcut возвращает включенный ярлык по ID
func (s *Store) Shortcut(id string) (ShortcutEntry, bool) {
	sc, ok := s.shortcuts[id]
	if !ok || !sc.Enabled {
		return ShortcutEntry{}, false
	}
	return sc, true
}

// HasPageWhitelist сообщает, объявил ли контроллер белый список страниц
func (s *Store) HasPageWhitelist(controllerID string) bool {
	record, ok := s.controllers[controllerID]
	return ok && record.pages != nil
}

// IsPageEnabled проверяет страницу по белому списку контроллера.
// Незарегистрированная страница - это false без ошибки. Ошибка означает
// ошибку программиста или конфигурации, а не запрос пользователя.
func (s *Store) IsPageEnabled(controllerID, pageID string) (bool, error) {
	record, ok := s.controllers[controllerID]
	if !ok {
		return false, fmt.Errorf("controller %q: %w", controllerID, ErrUnknownController)
	}
	if record.pages == nil {
		return false, fmt.Errorf("controller %q: %w", controllerID, ErrPageWhitelistUndeclared)
	}

	page, ok := record.pages[pageID]
	if !ok {
		return false, nil
	}
	if page.Enabled == nil {
		return false, fmt.Errorf("page %q of controller %q: %w", pageID, controllerID, ErrMissingEnabled)
	}

	return *page.Enabled, nil
}

// Controllers возвращает все контроллеры, отсортированные по ID
func (s *Store) Controllers() []ControllerEntry {
	result := make([]ControllerEntry, 0, len(s.controllers))
	for _, record := range s.controllers {
		result = append(result, record.entry)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Shortcuts возвращает все ярлыки, отсортированные по ID
func (s *Store) Shortcuts() []ShortcutEntry {
	result := make([]ShortcutEntry, 0, len(s.shortcuts))
	for _, sc := range s.shortcuts {
		result = append(result, sc)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

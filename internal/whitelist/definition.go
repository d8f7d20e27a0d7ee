package whitelist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Definition описывает белый список в том виде, в котором он хранится в JSON файле.
// Флаги и пути объявлены указателями: отсутствие поля отличается от false/"".
type Definition struct {
	Controllers map[string]ControllerDef `json:"controllers"`
	Shortcuts   map[string]ShortcutDef   `json:"shortcuts,omitempty"`
}

// ControllerDef описывает контроллер и, при наличии, его белый список страниц
type ControllerDef struct {
	Enabled *bool              `json:"enabled"`
	Pages   map[string]PageDef `json:"pages,omitempty"`
}

// ShortcutDef описывает ярлык: ключевое слово и путь запроса, на который он указывает
type ShortcutDef struct {
	Enabled *bool   `json:"enabled"`
	Path    *string `json:"path"`
}

// PageDef описывает страницу контроллера
type PageDef struct {
	Enabled *bool `json:"enabled"`
}

// Load декодирует определение белого списка из JSON.
// Неизвестные поля считаются ошибкой конфигурации.
func Load(r io.Reader) (Definition, error) {
	var def Definition

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&def); err != nil {
		return Definition{}, fmt.Errorf("error decoding whitelist: %w", err)
	}

	return def, nil
}

// LoadFile читает определение белого списка из файла
func LoadFile(path string) (Definition, error) {
	file, err := os.Open(path)
	if err != nil {
		return Definition{}, fmt.Errorf("error opening whitelist file: %w", err)
	}
	defer file.Close()

	def, err := Load(file)
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}

	return def, nil
}

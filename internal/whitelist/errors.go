package whitelist

import "errors"

// ErrMissingEnabled возвращается, когда у записи белого списка нет флага enabled
var ErrMissingEnabled = errors.New("whitelist entry is missing the \"enabled\" property")

// ErrMissingPath возвращается, когда у ярлыка нет целевого пути
var ErrMissingPath = errors.New("shortcut is missing the \"path\" property")

// ErrUnknownController возвращается, когда контроллер не зарегистрирован в белом списке
var ErrUnknownController = errors.New("controller ID does not exist")

// ErrPageWhitelistUndeclared возвращается, когда контроллер не объявил белый список страниц
var ErrPageWhitelistUndeclared = errors.New("page whitelist not declared for controller")

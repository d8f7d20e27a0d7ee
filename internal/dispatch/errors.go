package dispatch

import "errors"

// ErrNotFound возвращается контроллером, когда запрошенная страница или файл не найдены.
// На границе HTTP превращается в ответ 404.
var ErrNotFound = errors.New("not found")

// ErrControllerNotRegistered возвращается, когда для включенного контроллера нет реализации
var ErrControllerNotRegistered = errors.New("controller is whitelisted but not registered")

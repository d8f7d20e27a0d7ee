package router

import "errors"

// ErrDefaultControllerDisabled возвращается, когда контроллер по умолчанию не включен в белом списке
var ErrDefaultControllerDisabled = errors.New("default controller is not whitelisted or disabled")

// ErrShortcutCycle возвращается, когда цепочка ярлыков возвращается к уже пройденному ярлыку
var ErrShortcutCycle = errors.New("shortcut cycle detected")

// ErrShortcutDepth возвращается, когда цепочка ярлыков длиннее допустимой
var ErrShortcutDepth = errors.New("shortcut chain is too deep")

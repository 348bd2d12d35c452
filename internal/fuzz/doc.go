// Package fuzztests houses Go fuzz harnesses for the decoders that read
// persisted trees: ast.Unmarshal and astcache.Decode. `serpent check x.mp`
// feeds them arbitrary bytes, so they must fail with an error, never panic.
//
// Назначение: прогонять случайные байты через декодеры и то, что идёт за
// ними (обход дерева, validate, повторное кодирование).
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/ast, internal/astcache, internal/testkit,
// internal/validate.

package fuzztests

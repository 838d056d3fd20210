// Package repository define las entidades del dominio y las interfaces
// de acceso a datos. Las implementaciones viven en internal/store/*.
//
// Toda operación retorna errores centinela (ErrNotFound, ErrConflict,
// ErrInvalidInput) que los callers matchean con errors.Is; los drivers
// nunca dejan filtrar errores crudos de su librería hacia arriba.
package repository

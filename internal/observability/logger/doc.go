// Package logger es el logging estructurado del servicio: un zap raíz
// único más scoping por contexto.
//
// El raíz se construye una vez en main con Init (consola coloreada en
// dev, JSON en prod, nivel configurable). El middleware de logging cuelga
// un logger con los campos del request en el contexto, y cualquier capa
// lo recupera con From(ctx):
//
//	log := logger.From(ctx).With(
//	    logger.Layer("service"),
//	    logger.Component("organizations"),
//	    logger.Op("Create"),
//	)
//	log.Info("organization created", logger.OrgID(org.ID))
//
// Fuera de un request (arranque, CLIs) se usa el raíz directo:
//
//	logger.L().Info("service started")
package logger

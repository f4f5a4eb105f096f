// Package logger wraps log/slog with functional options, attribute helpers
// and injection of values stored in context.Context.
//
// New builds a text or JSON handler and decorates it with LogHandlerDecorator,
// which runs every registered ContextExtractor before a record is written:
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "paramcheck"),
//	    logger.WithContextExtractors(requestid.Extractor()),
//	)
//	log.WarnContext(ctx, "parameters rejected",
//	    logger.Component("reqparams"),
//	    logger.Field("page"),
//	)
//
// NewNop returns a logger that discards output; packages fall back to it when
// the caller passes no logger.
package logger

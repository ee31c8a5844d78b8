// Package logger builds *slog.Logger values with functional options and
// offers attribute helpers with consistent keys.
//
// New selects slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it with LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks on every record logged through the *Context
// methods.
//
// # Usage
//
//	import "github.com/dmitrymomot/rulekit/pkg/logger"
//
//	var s logger.Settings
//	if err := config.Load(&s); err != nil {
//	    return err
//	}
//
//	log := logger.New(
//	    logger.WithSettings(s),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	v := validator.New[Customer](validator.WithLogger(log))
//
// Components that log only when asked default to Discard.
//
// # Configuration
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter – output format.
//   - WithLevel – minimum slog.Level.
//   - WithSettings – level and format read from LOG_LEVEL and LOG_FORMAT.
//   - WithAttr – static attributes.
//   - WithContextExtractors / WithContextValue – attributes from context.
//
// # Attributes
//
// Property, Rule, FailureCount, Locale and Duration describe validation
// events. Error, Property and Locale return an empty Attr for empty input, so
//
//	log.Warn("validation aborted", logger.Error(err))
//
// needs no nil check.
package logger

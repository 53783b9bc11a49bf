// internal/common/errors/handler.go
package errors

// Reporter is the one-way error sink. Nothing reported here propagates back
// to the caller.
type Reporter struct {
	logger   Logger
	observer func(code ErrorCode)
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewReporter(logger Logger) *Reporter {
	return &Reporter{logger: logger}
}

// WithObserver returns a copy of the reporter that also calls fn with the
// code of every reported error. Used to feed failure metrics.
func (r *Reporter) WithObserver(fn func(code ErrorCode)) *Reporter {
	return &Reporter{logger: r.logger, observer: fn}
}

// Report logs err as "Ошибка: <message>".
func (r *Reporter) Report(err error) {
	if err == nil {
		return
	}
	stdErr := Normalize(err)

	fields := map[string]interface{}{
		"errorCode": string(stdErr.Code),
		"details":   stdErr.Details,
		"fatal":     IsFatal(stdErr),
	}
	for k, v := range stdErr.Metadata {
		fields[k] = v
	}
	r.logger.Error("Ошибка: "+stdErr.Message, fields)

	if r.observer != nil {
		r.observer(stdErr.Code)
	}
}

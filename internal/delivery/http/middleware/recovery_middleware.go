package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"patient-records-service/pkg/response"

	"github.com/sirupsen/logrus"
)

// RecoveryMiddleware is the outermost error boundary. Panics escaping a
// handler are logged with full detail and translated to the generic error
// body; the real message leaks to the caller only outside production.
type RecoveryMiddleware struct {
	log        *logrus.Logger
	production bool
}

func NewRecoveryMiddleware(log *logrus.Logger, production bool) *RecoveryMiddleware {
	return &RecoveryMiddleware{
		log:        log,
		production: production,
	}
}

func (m *RecoveryMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}

			m.log.Errorf("Unhandled error on %s %s: %+v", req.Method, req.URL.Path, err)

			statusCode := http.StatusInternalServerError
			var missingArg *response.MissingArgumentError
			if errors.As(err, &missingArg) {
				statusCode = http.StatusBadRequest
			}

			message := "Internal Server Error"
			if !m.production {
				message = err.Error()
			}

			response.Error(w, statusCode, message)
		}()

		next.ServeHTTP(w, req)
	})
}

package logging

import (
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData := GetLogData(req.Context())
		if logData == nil {
			logData = NewLogData(log)
		}
		log.Debugf("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		err := handler(w, req, logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Debugf("Handler.%v.Complete", loggingName)
	}
}

// Middleware gives every request its own LogData, tagged with a request ID,
// and logs one line per request once the response is written.
func Middleware(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			requestID := req.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.Must(uuid.NewV4()).String()
			}
			w.Header().Set(RequestIDHeader, requestID)

			logData := NewLogData(log)
			logData.AddData("requestID", requestID)
			logData.AddData("method", req.Method)
			logData.AddData("path", req.URL.Path)

			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			endTimer := logData.AddTiming("requestMs")
			next.ServeHTTP(rw, req.WithContext(WithLogData(req.Context(), logData)))
			endTimer()

			logData.AddData("status", rw.status)
			entry := logData.Log()
			switch {
			case rw.status >= http.StatusInternalServerError:
				entry.Error("HttpServer.Request.Complete")
			case rw.status >= http.StatusBadRequest:
				entry.Warn("HttpServer.Request.Complete")
			default:
				entry.Info("HttpServer.Request.Complete")
			}
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

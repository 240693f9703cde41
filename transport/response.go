package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responder renders envelopes. With errorStatus unset failures are sent with 200
// and only the envelope code tells them apart.
type responder struct {
	errorStatus bool
}

func (rs responder) writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func (rs responder) writeError(w http.ResponseWriter, err error) {
	rs.writeErrorDetail(w, err, "")
}

func (rs responder) writeErrorDetail(w http.ResponseWriter, err error, detail string) {
	ce := errors.Normalize(err)
	status := http.StatusOK
	if rs.errorStatus {
		status = ce.ErrorHTTPCode()
	}
	writeJSON(w, status, Response{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
		Error:   detail,
	})
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] encode response", zap.String("error", err.Error()))
	}
}

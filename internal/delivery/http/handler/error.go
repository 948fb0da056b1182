package handler

import (
	"errors"
	"net/http"

	"hospital-frontdesk/internal/infrastructure/hospitalapi"
	"hospital-frontdesk/pkg/response"
)

// respondRemoteError relays a hospital API failure to the caller with the
// extracted upstream message. Transport-level failures without a usable
// status surface as 502.
func respondRemoteError(w http.ResponseWriter, err error, fallback string) {
	var remoteErr *hospitalapi.RemoteError
	if errors.As(err, &remoteErr) {
		status := remoteErr.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		response.Error(w, status, remoteErr.Message, nil)
		return
	}
	response.BadGateway(w, fallback)
}

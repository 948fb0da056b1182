package hospitalapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

const defaultFailureMessage = "hospital service request failed"

// RemoteError is a failure reported by the hospital API, either a non-2xx
// status or an envelope with success=false. Message carries the most
// specific human-readable text the response offered.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("hospital api: %s (status %d)", e.Message, e.StatusCode)
}

// failureBody covers the two error payload shapes the hospital API emits:
// the plain envelope message (either casing) and the validation summary with
// a title plus per-field error details.
type failureBody struct {
	Message      string              `json:"message"`
	MessageUpper string              `json:"Message"`
	Title        string              `json:"title"`
	Errors       map[string][]string `json:"errors"`
}

// extractMessage picks the most specific message from a failure body:
// message, then Message, then title joined with the itemized field errors,
// then a status-specific or generic fallback.
func extractMessage(status int, raw []byte) string {
	var body failureBody
	if err := json.Unmarshal(raw, &body); err == nil {
		switch {
		case body.Message != "":
			return body.Message
		case body.MessageUpper != "":
			return body.MessageUpper
		case body.Title != "":
			msg := body.Title
			var details []string
			for _, fieldErrors := range body.Errors {
				details = append(details, fieldErrors...)
			}
			if len(details) > 0 {
				sort.Strings(details)
				msg += ": " + strings.Join(details, "; ")
			}
			return msg
		}
	}
	if status == http.StatusNotFound {
		return "requested record was not found"
	}
	return defaultFailureMessage
}

package http

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// errorDetailStrategy derives the detail part of a DisableError message from
// an error response body. ok is false when the strategy does not apply.
type errorDetailStrategy func(body []byte) (detail string, ok bool)

// errorDetailStrategies are tried in order; the first match wins.
var errorDetailStrategies = []errorDetailStrategy{
	detailCodeDetail,
	messageDetail,
	plainTextDetail,
}

// errorDetail runs the strategy chain, falling back to "HTTP <status>".
func errorDetail(statusCode int, body []byte) string {
	for _, strategy := range errorDetailStrategies {
		if detail, ok := strategy(body); ok {
			return detail
		}
	}
	return fmt.Sprintf("HTTP %d", statusCode)
}

// detailCodeDetail matches {"detailCode": ..., "trackingId": ...}.
func detailCodeDetail(body []byte) (string, bool) {
	if !gjson.ValidBytes(body) {
		return "", false
	}
	code := truthyString(gjson.GetBytes(body, "detailCode"))
	if code == "" {
		return "", false
	}
	return code + " - " + truthyString(gjson.GetBytes(body, "trackingId")), true
}

// messageDetail matches {"message": ...}.
func messageDetail(body []byte) (string, bool) {
	if !gjson.ValidBytes(body) {
		return "", false
	}
	msg := truthyString(gjson.GetBytes(body, "message"))
	return msg, msg != ""
}

// plainTextDetail uses a non-JSON body verbatim.
func plainTextDetail(body []byte) (string, bool) {
	if len(body) == 0 || gjson.ValidBytes(body) {
		return "", false
	}
	return string(body), true
}

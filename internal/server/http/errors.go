package http

import (
	"net/http"

	"github.com/dmitrijs2005/bloglist/internal/common"
)

// StatusFor maps every error kind to its response status.
func StatusFor(kind common.Kind) int {
	switch kind {
	case common.KindValidation, common.KindConflict, common.KindInvalidID:
		return http.StatusBadRequest
	case common.KindUnauthenticated, common.KindTokenInvalid, common.KindTokenExpired:
		return http.StatusUnauthorized
	case common.KindForbidden:
		return http.StatusForbidden
	case common.KindNotFound:
		return http.StatusNotFound
	case common.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

var (
	errMalformedBody   = common.NewError(common.KindValidation, "malformed JSON body")
	errUnknownEndpoint = common.NewError(common.KindNotFound, "unknown endpoint")
)

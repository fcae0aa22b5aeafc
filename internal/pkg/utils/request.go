package utils

import (
	"context"
	"net/http"
	"strconv"

	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/exceptions"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("page_size")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

// SessionFromContext pulls the authenticated session placed on the context by
// the Authenticate middleware.
func SessionFromContext(ctx context.Context) (*models.Session, error) {
	sessionData, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	return sessionData, nil
}

package utils

import (
	"clinicgate-service/internal/pkg/constvars"
	"clinicgate-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
)

func BuildListActivityLogsRequest(r *http.Request) *requests.ListActivityLogs {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page <= 0 {
		page = constvars.AppDefaultPage
	}

	pageSize, err := strconv.Atoi(query.Get("pageSize"))
	if err != nil || pageSize <= 0 {
		pageSize = constvars.AppDefaultPageSize
	}
	if pageSize > constvars.AppMaxPageSize {
		pageSize = constvars.AppMaxPageSize
	}

	return &requests.ListActivityLogs{
		Page:     page,
		PageSize: pageSize,
		Actor:    query.Get("actor"),
		Action:   query.Get("action"),
		From:     query.Get("from"),
		To:       query.Get("to"),
	}
}

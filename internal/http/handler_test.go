package http

import (
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"task-board-system.com/task-board-system/internal/constants"
)

func queryContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodGet, "/tasks?"+rawQuery, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func badRequest(t *testing.T, err error) {
	t.Helper()
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected an echo HTTP error, got %v", err)
	}
	if httpErr.Code != nethttp.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}

func TestCriteriaFromQuery_ParsesValidFilters(t *testing.T) {
	c := queryContext(t, "status=review&priority=high&project=apollo&overdue=true")

	criteria, err := criteriaFromQuery(c)
	if err != nil {
		t.Fatalf("valid query rejected: %v", err)
	}
	if criteria.Status != constants.StatusReview {
		t.Errorf("expected review status filter, got %q", criteria.Status)
	}
	if criteria.Priority != constants.PriorityHigh {
		t.Errorf("expected high priority filter, got %q", criteria.Priority)
	}
	if criteria.Project != "apollo" || !criteria.Overdue {
		t.Errorf("project/overdue not carried over: %+v", criteria)
	}
}

func TestCriteriaFromQuery_RejectsUnknownStatus(t *testing.T) {
	_, err := criteriaFromQuery(queryContext(t, "status=banana"))
	if err == nil {
		t.Fatal("unknown status value must be rejected, not coerced into a filter")
	}
	badRequest(t, err)
}

func TestCriteriaFromQuery_RejectsUnknownPriority(t *testing.T) {
	_, err := criteriaFromQuery(queryContext(t, "priority=asap"))
	if err == nil {
		t.Fatal("unknown priority value must be rejected, not coerced into a filter")
	}
	badRequest(t, err)
}

func TestCriteriaFromQuery_RejectsMalformedDates(t *testing.T) {
	for _, query := range []string{"due_from=yesterday", "due_to=31-12-2026"} {
		_, err := criteriaFromQuery(queryContext(t, query))
		if err == nil {
			t.Fatalf("malformed date %q must be rejected", query)
		}
		badRequest(t, err)
	}
}

func TestCriteriaFromQuery_EmptyQueryMeansNoFilters(t *testing.T) {
	criteria, err := criteriaFromQuery(queryContext(t, ""))
	if err != nil {
		t.Fatalf("empty query rejected: %v", err)
	}
	if criteria.Status != "" || criteria.Priority != "" || criteria.Overdue {
		t.Errorf("empty query must leave every filter unset: %+v", criteria)
	}
}

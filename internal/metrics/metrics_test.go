// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordDBQuery(t *testing.T) {
	before := testutil.CollectAndCount(DBQueryDuration)
	RecordDBQuery("select", "books", 5*time.Millisecond, nil)
	after := testutil.CollectAndCount(DBQueryDuration)
	if after <= before-1 && after == 0 {
		t.Error("DBQueryDuration not collected after RecordDBQuery")
	}
}

func TestRecordDBQueryError(t *testing.T) {
	RecordDBQuery("insert", "sales", time.Millisecond, errors.New("constraint violation"))
	got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("insert", "sales"))
	if got < 1 {
		t.Errorf("DBQueryErrors = %v, want >= 1", got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	RecordAPIRequest("GET", "/api/v1/books", "200", 10*time.Millisecond)
	got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/books", "200"))
	if got < 1 {
		t.Errorf("APIRequestsTotal = %v, want >= 1", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != start+1 {
		t.Errorf("APIActiveRequests after inc = %v, want %v", got, start+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != start {
		t.Errorf("APIActiveRequests after dec = %v, want %v", got, start)
	}
}

func TestRecordRecommendFallback(t *testing.T) {
	RecordRecommendFallback("collaborative_filtering", "unknown_customer")
	got := testutil.ToFloat64(RecommendFallbacks.WithLabelValues("collaborative_filtering", "unknown_customer"))
	if got < 1 {
		t.Errorf("RecommendFallbacks = %v, want >= 1", got)
	}
}

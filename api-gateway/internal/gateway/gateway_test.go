package gateway_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodfinder/api-gateway/internal/gateway"
	"foodfinder/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testConfig = gateway.Config{
	SearchSvcURL:    "http://search-svc:8081",
	AnalyticsSvcURL: "http://analytics-svc:8083",
}

func okResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(testConfig, mocks.NewHTTPClient(t))

	rr := httptest.NewRecorder()
	gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"api-gateway"}`, rr.Body.String())
}

func TestGateway_RouteHandler(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		path    string
		wantURL string
	}{
		{
			name:    "restaurant search",
			method:  http.MethodGet,
			path:    "/api/restaurants/search?dish=sushi&radius=3000",
			wantURL: "http://search-svc:8081/api/restaurants/search?dish=sushi&radius=3000",
		},
		{
			name:    "restaurant details",
			method:  http.MethodGet,
			path:    "/api/restaurants/r-1",
			wantURL: "http://search-svc:8081/api/restaurants/r-1",
		},
		{
			name:    "food recognition",
			method:  http.MethodPost,
			path:    "/api/food/recognize?search=true",
			wantURL: "http://search-svc:8081/api/food/recognize?search=true",
		},
		{
			name:    "analytics",
			method:  http.MethodGet,
			path:    "/api/analytics/dishes/top-today",
			wantURL: "http://analytics-svc:8083/api/analytics/dishes/top-today",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.Method == testCase.method && req.URL.String() == testCase.wantURL
			})).Return(okResponse(`{"ok":true}`), nil).Once()

			gw := gateway.NewGateway(testConfig, mockClient)
			rr := httptest.NewRecorder()
			gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(testCase.method, testCase.path, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"ok":true}`, rr.Body.String())
		})
	}
}

func TestGateway_UnknownRoute(t *testing.T) {
	gw := gateway.NewGateway(testConfig, mocks.NewHTTPClient(t))

	for _, path := range []string{"/api/cafes", "/api/restaurantsX"} {
		rr := httptest.NewRecorder()
		gw.SetupRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusNotFound, rr.Code, path)
		assert.Contains(t, rr.Body.String(), "API route not found")
	}
}

func TestGateway_ProxyRequest_UpstreamError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	gw := gateway.NewGateway(testConfig, mockClient)
	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, httptest.NewRequest(http.MethodGet, "/api/restaurants/search?dish=pizza", nil))

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_ProxyRequest_PassesStatusAndHeaders(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Header.Get("Accept-Language") == "ru" && req.Header.Get("X-Forwarded-For") != ""
	})).Return(&http.Response{
		StatusCode: http.StatusBadRequest,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(`{"error":"dish is required"}`)),
	}, nil).Once()

	gw := gateway.NewGateway(testConfig, mockClient)
	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/search", nil)
	req.Header.Set("Accept-Language", "ru")
	rr := httptest.NewRecorder()
	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "dish is required")
}

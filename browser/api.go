package browser

import (
	"encoding/json"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/matchqueue/e2e/logging"
)

// APIHelper issues requests through the browser context's request client, so
// calls share cookies with the page, and stubs network routes for tests that
// need a response the backend will not produce.
type APIHelper struct {
	page playwright.Page
}

// API returns the request helper bound to this page's context.
func (in *Interactions) API() *APIHelper {
	return &APIHelper{page: in.page}
}

// APIResult is the distilled outcome of a request.
type APIResult struct {
	Status  int
	Body    []byte
	Headers map[string]string
}

// JSON unmarshals the response body into v.
func (r APIResult) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// OK reports a 2xx status.
func (r APIResult) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Get issues a GET request.
func (a *APIHelper) Get(url string, headers map[string]string) (APIResult, error) {
	resp, err := a.request().Get(url, playwright.APIRequestContextGetOptions{Headers: headers})
	if err != nil {
		return APIResult{}, fmt.Errorf("GET %s: %w", url, err)
	}
	return collect(resp)
}

// Post issues a POST request with a JSON-encodable body.
func (a *APIHelper) Post(url string, data any, headers map[string]string) (APIResult, error) {
	resp, err := a.request().Post(url, playwright.APIRequestContextPostOptions{Data: data, Headers: headers})
	if err != nil {
		return APIResult{}, fmt.Errorf("POST %s: %w", url, err)
	}
	return collect(resp)
}

// Put issues a PUT request with a JSON-encodable body.
func (a *APIHelper) Put(url string, data any, headers map[string]string) (APIResult, error) {
	resp, err := a.request().Put(url, playwright.APIRequestContextPutOptions{Data: data, Headers: headers})
	if err != nil {
		return APIResult{}, fmt.Errorf("PUT %s: %w", url, err)
	}
	return collect(resp)
}

// Delete issues a DELETE request.
func (a *APIHelper) Delete(url string, headers map[string]string) (APIResult, error) {
	resp, err := a.request().Delete(url, playwright.APIRequestContextDeleteOptions{Headers: headers})
	if err != nil {
		return APIResult{}, fmt.Errorf("DELETE %s: %w", url, err)
	}
	return collect(resp)
}

// MockResponse intercepts every request whose URL contains urlPart and
// fulfills it with the given status and JSON body instead of hitting the
// backend. It stays in effect for the page's lifetime.
func (a *APIHelper) MockResponse(urlPart string, status int, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode mock body: %w", err)
	}
	logging.Info("mocking route", "url", urlPart, "status", status)
	return a.page.Route("**"+urlPart+"**", func(route playwright.Route) {
		if err := route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(status),
			ContentType: playwright.String("application/json"),
			Body:        payload,
		}); err != nil {
			logging.Error("mock fulfill failed", err, "url", urlPart)
		}
	})
}

func (a *APIHelper) request() playwright.APIRequestContext {
	return a.page.Context().Request()
}

func collect(resp playwright.APIResponse) (APIResult, error) {
	body, err := resp.Body()
	if err != nil {
		return APIResult{}, fmt.Errorf("read response body: %w", err)
	}
	return APIResult{
		Status:  resp.Status(),
		Body:    body,
		Headers: resp.Headers(),
	}, nil
}

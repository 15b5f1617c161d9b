package assertion

import (
	"fmt"
	"strings"

	"github.com/itchyny/gojq"

	"apiprobe/internal/httpclient"
)

// StatusCode asserts the response carries exactly the expected status.
func StatusCode(resp *httpclient.Response, expected int) error {
	if resp.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d", expected, resp.StatusCode)
	}
	return nil
}

// StatusIn asserts the response status is one of the accepted values.
// The backend contract tolerates 400 or 422 for malformed bodies, so
// error-handling checks assert against a set rather than a single code.
func StatusIn(resp *httpclient.Response, accepted ...int) error {
	for _, code := range accepted {
		if resp.StatusCode == code {
			return nil
		}
	}
	return fmt.Errorf("expected status in %v, got %d", accepted, resp.StatusCode)
}

// JSONPath evaluates a jq expression against the response body and
// compares the first result with the expected value.
func JSONPath(resp *httpclient.Response, path string, expected interface{}) error {
	actual, err := EvalJSONPath(resp, path)
	if err != nil {
		return err
	}
	if fmt.Sprintf("%v", actual) != fmt.Sprintf("%v", expected) {
		return fmt.Errorf("JSON path %s: expected %v, got %v", path, expected, actual)
	}
	return nil
}

// EvalJSONPath evaluates a jq expression and returns its first result.
func EvalJSONPath(resp *httpclient.Response, path string) (interface{}, error) {
	data, err := resp.JSON()
	if err != nil {
		return nil, err
	}

	query, err := gojq.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON path %s: %w", path, err)
	}

	iter := query.Run(data)
	v, ok := iter.Next()
	if !ok {
		return nil, fmt.Errorf("JSON path %s returned no results", path)
	}
	if err, ok := v.(error); ok {
		return nil, fmt.Errorf("error evaluating JSON path %s: %w", path, err)
	}
	return v, nil
}

// HeaderPresent asserts the named response header exists and returns its value.
func HeaderPresent(resp *httpclient.Response, name string) (string, error) {
	value := resp.Header(name)
	if value == "" {
		return "", fmt.Errorf("missing %s header", name)
	}
	return value, nil
}

// HeaderContains asserts the named header exists and contains want
// (case-insensitive). Useful for comma-separated CORS method lists.
func HeaderContains(resp *httpclient.Response, name, want string) error {
	value := resp.Header(name)
	if value == "" {
		return fmt.Errorf("missing %s header", name)
	}
	if !strings.Contains(strings.ToLower(value), strings.ToLower(want)) {
		return fmt.Errorf("%s header %q does not contain %q", name, value, want)
	}
	return nil
}

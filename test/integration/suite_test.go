//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/tidwall/gjson"
)

// testContext holds state shared across step definitions within a scenario.
type testContext struct {
	t       *testing.T
	baseURL string
	client  *http.Client

	token string
	vars  map[string]string

	response     *http.Response
	responseBody []byte
}

// newTestContext targets BASE_URL when set, otherwise an in-process service
// is started for each scenario.
func newTestContext(t *testing.T) *testContext {
	return &testContext{
		t:       t,
		baseURL: os.Getenv("BASE_URL"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// reset clears per-scenario state.
func (tc *testContext) reset() {
	tc.token = ""
	tc.vars = map[string]string{
		"run": strconv.FormatInt(time.Now().UnixNano(), 36),
	}
	tc.response = nil
	tc.responseBody = nil
}

// initializeScenario registers step definitions for each scenario.
func (tc *testContext) initializeScenario(ctx *godog.ScenarioContext) {
	external := tc.baseURL != ""

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		tc.reset()
		if !external {
			tc.baseURL = startService(tc.t, nil).URL
		}

		return ctx, nil
	})

	ctx.Step(`^the service is running$`, tc.theServiceIsRunning)
	ctx.Step(`^I register "([^"]*)" with password "([^"]*)"$`, tc.iRegister)
	ctx.Step(`^I log in as "([^"]*)" with password "([^"]*)"$`, tc.iLogIn)
	ctx.Step(`^I am signed in as "([^"]*)"$`, tc.iAmSignedInAs)
	ctx.Step(`^I sign out$`, tc.iSignOut)
	ctx.Step(`^I use the token "([^"]*)"$`, tc.iUseTheToken)
	ctx.Step(`^I request (GET|DELETE) "([^"]*)"$`, tc.iRequest)
	ctx.Step(`^I request POST "([^"]*)" with:$`, tc.iRequestPOSTWith)
	ctx.Step(`^I save the JSON field "([^"]*)" as "([^"]*)"$`, tc.iSaveTheJSONField)
	ctx.Step(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, tc.theResponseShouldContain)
	ctx.Step(`^the JSON field "([^"]*)" should be "([^"]*)"$`, tc.theJSONFieldShouldBe)
	ctx.Step(`^the JSON field "([^"]*)" should be (\d+)$`, tc.theJSONFieldShouldBeNumber)
	ctx.Step(`^the JSON field "([^"]*)" should be null$`, tc.theJSONFieldShouldBeNull)
	ctx.Step(`^the response header "([^"]*)" should contain "([^"]*)"$`, tc.theResponseHeaderShouldContain)
	ctx.Step(`^the response body should be a PDF$`, tc.theResponseBodyShouldBeAPDF)
}

// expand replaces {name} placeholders with saved values.
func (tc *testContext) expand(s string) string {
	for k, v := range tc.vars {
		s = strings.ReplaceAll(s, "{"+k+"}", v)
	}

	return s
}

func (tc *testContext) do(method, path string, body []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, tc.baseURL+tc.expand(path), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if tc.token != "" {
		req.Header.Set("Authorization", "Bearer "+tc.token)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return nil
}

func (tc *testContext) postJSON(path string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return tc.do(http.MethodPost, path, body)
}

// theServiceIsRunning verifies the service is reachable.
func (tc *testContext) theServiceIsRunning() error {
	if err := tc.do(http.MethodGet, "/-/live", nil); err != nil {
		return fmt.Errorf("service is not running at %s: %w", tc.baseURL, err)
	}

	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status %d", tc.response.StatusCode)
	}

	return nil
}

func (tc *testContext) iRegister(email, password string) error {
	return tc.postJSON("/api/v1/auth/register", map[string]string{
		"email":    tc.expand(email),
		"password": password,
	})
}

func (tc *testContext) iLogIn(email, password string) error {
	err := tc.postJSON("/api/v1/auth/login", map[string]string{
		"email":    tc.expand(email),
		"password": password,
	})
	if err != nil {
		return err
	}

	if tc.response.StatusCode == http.StatusOK {
		tc.token = gjson.GetBytes(tc.responseBody, "token").String()
	}

	return nil
}

// iAmSignedInAs registers a fresh account and logs in with it.
func (tc *testContext) iAmSignedInAs(email string) error {
	const password = "correct horse battery"

	if err := tc.iRegister(email, password); err != nil {
		return err
	}

	if err := tc.theResponseStatusShouldBe(http.StatusCreated); err != nil {
		return err
	}

	if err := tc.iLogIn(email, password); err != nil {
		return err
	}

	return tc.theResponseStatusShouldBe(http.StatusOK)
}

func (tc *testContext) iSignOut() error {
	tc.token = ""

	return nil
}

func (tc *testContext) iUseTheToken(token string) error {
	tc.token = token

	return nil
}

func (tc *testContext) iRequest(method, path string) error {
	return tc.do(method, path, nil)
}

func (tc *testContext) iRequestPOSTWith(path string, body *godog.DocString) error {
	return tc.do(http.MethodPost, path, []byte(tc.expand(body.Content)))
}

func (tc *testContext) iSaveTheJSONField(path, name string) error {
	res := gjson.GetBytes(tc.responseBody, path)
	if !res.Exists() {
		return fmt.Errorf("field %q not found in %s", path, tc.responseBody)
	}

	tc.vars[name] = res.String()

	return nil
}

// theResponseStatusShouldBe asserts the response status code.
func (tc *testContext) theResponseStatusShouldBe(expectedCode int) error {
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}

	if tc.response.StatusCode != expectedCode {
		return fmt.Errorf("expected status %d, got %d. Body: %s",
			expectedCode, tc.response.StatusCode, string(tc.responseBody))
	}

	return nil
}

// theResponseShouldContain asserts the response body contains the given text.
func (tc *testContext) theResponseShouldContain(text string) error {
	if tc.responseBody == nil {
		return fmt.Errorf("no response body")
	}

	if !bytes.Contains(tc.responseBody, []byte(tc.expand(text))) {
		return fmt.Errorf("response body does not contain %q.\nBody: %s", text, tc.responseBody)
	}

	return nil
}

func (tc *testContext) theJSONFieldShouldBe(path, want string) error {
	got := gjson.GetBytes(tc.responseBody, path)
	if !got.Exists() || got.String() != tc.expand(want) {
		return fmt.Errorf("expected %s to be %q, got %q.\nBody: %s", path, want, got.String(), tc.responseBody)
	}

	return nil
}

func (tc *testContext) theJSONFieldShouldBeNumber(path string, want int) error {
	got := gjson.GetBytes(tc.responseBody, path)
	if got.Type != gjson.Number || got.Int() != int64(want) {
		return fmt.Errorf("expected %s to be %d, got %s.\nBody: %s", path, want, got.Raw, tc.responseBody)
	}

	return nil
}

func (tc *testContext) theJSONFieldShouldBeNull(path string) error {
	got := gjson.GetBytes(tc.responseBody, path)
	if got.Type != gjson.Null {
		return fmt.Errorf("expected %s to be null, got %s", path, got.Raw)
	}

	return nil
}

func (tc *testContext) theResponseHeaderShouldContain(header, want string) error {
	got := tc.response.Header.Get(header)
	if !strings.Contains(got, tc.expand(want)) {
		return fmt.Errorf("expected header %s to contain %q, got %q", header, want, got)
	}

	return nil
}

func (tc *testContext) theResponseBodyShouldBeAPDF() error {
	if !bytes.HasPrefix(tc.responseBody, []byte("%PDF-")) {
		return fmt.Errorf("body is not a PDF document (%d bytes)", len(tc.responseBody))
	}

	return nil
}

// TestFeatures runs the GoDog BDD test suite.
func TestFeatures(t *testing.T) {
	tc := newTestContext(t)

	suite := godog.TestSuite{
		ScenarioInitializer: tc.initializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/pocket-ledger/backend/config"
	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/infra/dependency"
	"github.com/pocket-ledger/backend/internal/integration/persistence/model"
	"github.com/pocket-ledger/backend/test/integration/mock"
)

const (
	testUsername = "admin"
	testPassword = "ledger-integration-secret"
	testSecret   = "test-jwt-secret-key-for-testing-purposes"
)

// exportBaseTime is the frozen clock instant; export filenames derive from it.
var exportBaseTime = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

var (
	envInit        sync.Once
	serverInit     sync.Once
	testServerPort int

	testDB        *mock.Db
	testClock     *mock.Clock
	downloadSpy   *mock.DeliveryRecorder
	filesystemSpy *mock.DeliveryRecorder
	emailSpy      *mock.DeliveryRecorder
)

type testContext struct {
	uri     string
	client  *http.Client
	headers map[string]string

	accessToken string

	responseStatus  int
	responseBody    []byte
	responseHeaders http.Header

	transactionIDs []uuid.UUID
}

func initializeEnv() {
	envInit.Do(func() {
		testServerPort = findAvailablePort()

		hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
		if err != nil {
			panic(fmt.Sprintf("failed to hash test password: %v", err))
		}

		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("JWT_SECRET", testSecret)
		_ = os.Setenv("AUTH_USERNAME", testUsername)
		_ = os.Setenv("AUTH_PASSWORD_HASH", string(hash))

		testDB = mock.NewDb(
			&model.TransactionModel{},
			&model.CategoryModel{},
			&model.PersonModel{},
		)
		testClock = mock.NewClock(exportBaseTime)
		downloadSpy = mock.NewDeliveryRecorder("download")
		filesystemSpy = mock.NewDeliveryRecorder("filesystem")
		emailSpy = mock.NewDeliveryRecorder("email")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		initializeEnv()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializeEnv()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^I am authenticated$`, test.iAmAuthenticated)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)

	// Data setup steps
	ctx.Given(`^a transaction exists with date "([^"]*)", type "([^"]*)", amount "([^"]*)" and category "([^"]*)"$`, test.aTransactionExists)
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response should not contain "([^"]*)"$`, test.theResponseShouldNotContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response should have (\d+) lines$`, test.theResponseShouldHaveLines)
	ctx.Then(`^the response header "([^"]*)" should contain "([^"]*)"$`, test.theResponseHeaderShouldContain)

	// Database and delivery assertion steps
	ctx.Then(`^the db should contain (\d+) transactions$`, test.theDbShouldContainTransactions)
	ctx.Then(`^the "([^"]*)" delivery should have received a file named "([^"]*)"$`, test.theDeliveryShouldHaveReceivedAFileNamed)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.responseStatus = 0
	t.responseBody = nil
	t.responseHeaders = nil
	t.transactionIDs = nil

	testClock.SetNow(exportBaseTime)
	downloadSpy.Reset()
	filesystemSpy.Reset()
	emailSpy.Reset()

	if testDB != nil {
		_ = testDB.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			cfg := config.Load()
			injector := dependency.NewInjectorWithOverrides(
				cfg,
				testDB.DbConn,
				mock.NewRedis(),
				dependency.Overrides{
					Clock: testClock,
					Deliveries: map[string]adapter.Delivery{
						"download":   downloadSpy,
						"filesystem": filesystemSpy,
						"email":      emailSpy,
					},
				},
			)
			engine := injector.Router.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for the server to accept requests
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

// Step implementations

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) iAmAuthenticated() error {
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, testUsername, testPassword)
	resp, err := t.client.Post(t.uri+"/api/v1/auth/login", "application/json", strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("login failed with status %d: %s", resp.StatusCode, payload)
	}

	var login struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return fmt.Errorf("failed to decode login response: %w", err)
	}

	t.accessToken = login.AccessToken
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) aTransactionExists(date, txnType, amount, category string) error {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	txn := entity.NewTransaction(
		parsedDate,
		entity.TransactionType(txnType),
		parsedAmount,
		category,
		category+" payee",
		"", "", "",
		nil,
		entity.TransactionStatusPosted,
	)
	// Spread creation timestamps so snapshot order matches insertion order.
	txn.CreatedAt = txn.CreatedAt.Add(time.Duration(len(t.transactionIDs)) * time.Millisecond)
	txn.UpdatedAt = txn.CreatedAt

	if err := testDB.DbConn.Create(model.TransactionFromEntity(txn)).Error; err != nil {
		return fmt.Errorf("failed to seed transaction: %w", err)
	}

	t.transactionIDs = append(t.transactionIDs, txn.ID)
	return nil
}

func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	cat := entity.NewCategory(name, entity.CategoryType(categoryType), "", "")
	if err := testDB.DbConn.Create(model.CategoryFromEntity(cat)).Error; err != nil {
		return fmt.Errorf("failed to seed category: %w", err)
	}
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

// replacePlaceholders substitutes seeded transaction ids into paths and
// bodies: {{transaction_id}} is the last seeded id, {{transaction_id_N}} the
// N-th (1-based).
func (t *testContext) replacePlaceholders(content string) string {
	if len(t.transactionIDs) > 0 {
		last := t.transactionIDs[len(t.transactionIDs)-1]
		content = strings.ReplaceAll(content, "{{transaction_id}}", last.String())
	}
	for i, id := range t.transactionIDs {
		placeholder := fmt.Sprintf("{{transaction_id_%d}}", i+1)
		content = strings.ReplaceAll(content, placeholder, id.String())
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	t.responseStatus = resp.StatusCode
	t.responseHeaders = resp.Header
	t.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.responseStatus != expected {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expected, t.responseStatus, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	var js json.RawMessage
	if err := json.Unmarshal(t.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if !strings.Contains(string(t.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseShouldNotContain(unexpected string) error {
	if strings.Contains(string(t.responseBody), unexpected) {
		return fmt.Errorf("response contains %q. Body: %s", unexpected, t.responseBody)
	}
	return nil
}

// theResponseFieldShouldBe supports dotted paths into nested objects, e.g.
// "totals.count".
func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := t.lookupField(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.lookupField(field)
	return err
}

func (t *testContext) lookupField(field string) (any, error) {
	var data map[string]any
	if err := json.Unmarshal(t.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	var value any = data
	for _, part := range strings.Split(field, ".") {
		obj, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q is not an object in response", field)
		}
		value, ok = obj[part]
		if !ok {
			return nil, fmt.Errorf("field %q not found in response. Body: %s", field, t.responseBody)
		}
	}
	return value, nil
}

func (t *testContext) theResponseShouldHaveLines(expected int) error {
	lines := strings.Split(strings.TrimRight(string(t.responseBody), "\n"), "\n")
	if len(lines) != expected {
		return fmt.Errorf("expected %d lines, got %d. Body: %s", expected, len(lines), t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldContain(header, expected string) error {
	actual := t.responseHeaders.Get(header)
	if !strings.Contains(actual, expected) {
		return fmt.Errorf("header %q is %q, expected it to contain %q", header, actual, expected)
	}
	return nil
}

func (t *testContext) theDbShouldContainTransactions(expected int) error {
	count, err := testDB.Count(&model.TransactionModel{})
	if err != nil {
		return fmt.Errorf("failed to count transactions: %w", err)
	}
	if count != int64(expected) {
		return fmt.Errorf("expected %d transactions in db, got %d", expected, count)
	}
	return nil
}

func (t *testContext) theDeliveryShouldHaveReceivedAFileNamed(method, filename string) error {
	var recorder *mock.DeliveryRecorder
	switch method {
	case "download":
		recorder = downloadSpy
	case "filesystem":
		recorder = filesystemSpy
	case "email":
		recorder = emailSpy
	default:
		return fmt.Errorf("unknown delivery method %q", method)
	}

	if recorder.Calls() == 0 {
		return fmt.Errorf("the %s delivery was never invoked", method)
	}
	if recorder.Filename() != filename {
		return fmt.Errorf("expected file %q, got %q", filename, recorder.Filename())
	}
	return nil
}

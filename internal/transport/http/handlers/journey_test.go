package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"clubpos/internal/app/server"
	"clubpos/internal/platform/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// TestNightJourney walks a full night against a clean test database:
// configure fees, roster a cast with a shift, seat a party, ring up
// items, check out, then close the day and read the monthly rollup.
func TestNightJourney(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := config.Config{
		Addr:          ":0",
		DatabaseURL:   dbURL,
		Environment:   "test",
		MigrationsDir: mustFindMigrations(t),
		RunMigrations: true,
		RunSeed:       true,
	}

	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	defer app.Close()

	ts := httptest.NewServer(app.Router)
	defer ts.Close()
	client := ts.Client()

	doJSON(t, client, http.MethodPut, ts.URL+"/api/v1/settings", map[string]any{
		"hourlySetFee": 5000, "douhanFee": 3000, "douhanBackRate": 0.5,
		"serviceFeeRate": 0.1, "taxRate": 0.1,
		"openTime": "20:00", "closeTime": "05:00",
	}, http.StatusOK)

	var castRow struct {
		ID string `json:"id"`
	}
	decodeData(t, doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/casts", map[string]any{
		"name": fmt.Sprintf("journey-cast-%d", time.Now().UnixNano()), "hourlyWage": 3000,
	}, http.StatusCreated), &castRow)

	today := time.Now().Format("2006-01-02")
	doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/shifts", map[string]any{
		"castId": castRow.ID, "date": today, "startTime": "20:00",
	}, http.StatusOK)

	var tableRow struct {
		ID string `json:"id"`
	}
	decodeData(t, doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/tables", map[string]any{
		"number": int(time.Now().UnixNano() % 1_000_000), "seats": 4,
	}, http.StatusCreated), &tableRow)

	var category struct {
		ID string `json:"id"`
	}
	decodeData(t, doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/menu/categories", map[string]any{
		"name": "Drinks",
	}, http.StatusCreated), &category)

	var item struct {
		ID string `json:"id"`
	}
	decodeData(t, doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/menu/items", map[string]any{
		"categoryId": category.ID, "name": "Champagne Glass", "price": 1200,
		"isAvailable": true, "backRate": 0.5,
	}, http.StatusCreated), &item)

	var opened struct {
		ID string `json:"id"`
	}
	decodeData(t, doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/orders", map[string]any{
		"tableId": tableRow.ID,
		"guests": []map[string]any{
			{"name": "Tanaka", "shimeiCastId": castRow.ID, "isDouhan": true},
			{"name": "Sato", "shimeiCastId": castRow.ID},
		},
	}, http.StatusCreated), &opened)

	for i := 0; i < 2; i++ {
		doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/orders/"+opened.ID+"/items", map[string]any{
			"menuItemId": item.ID, "backCastId": castRow.ID,
		}, http.StatusOK)
	}

	var checked struct {
		Totals struct {
			ItemsTotal  float64 `json:"itemsTotal"`
			SetFeeTotal float64 `json:"setFeeTotal"`
			DouhanTotal float64 `json:"douhanTotal"`
			ServiceFee  float64 `json:"serviceFee"`
			Tax         float64 `json:"tax"`
			Total       float64 `json:"total"`
			BilledHours int     `json:"billedHours"`
		} `json:"totals"`
		Status string `json:"status"`
	}
	decodeData(t, doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/orders/"+opened.ID+"/checkout", nil, http.StatusOK), &checked)

	if checked.Status != "completed" {
		t.Fatalf("order status after checkout = %s", checked.Status)
	}
	// 2x1200 items + 1h minimum set fee + one douhan guest, then 10%
	// service on 10400 and 10% tax on 11440.
	if checked.Totals.BilledHours != 1 {
		t.Errorf("billed hours = %d, want 1", checked.Totals.BilledHours)
	}
	if checked.Totals.ItemsTotal != 2400 || checked.Totals.SetFeeTotal != 5000 || checked.Totals.DouhanTotal != 3000 {
		t.Errorf("component totals = %+v", checked.Totals)
	}
	if checked.Totals.Total != 12584 {
		t.Errorf("grand total = %v, want 12584", checked.Totals.Total)
	}

	var daily struct {
		TotalSales      float64 `json:"totalSales"`
		CustomerCount   int     `json:"customerCount"`
		CastPerformance []struct {
			CastID           string  `json:"castId"`
			ShimeiCount      int     `json:"shimeiCount"`
			DouhanCount      int     `json:"douhanCount"`
			DouhanBackIncome float64 `json:"douhanBackIncome"`
		} `json:"castPerformance"`
		IsClosed bool `json:"isClosed"`
	}
	decodeData(t, doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/reports/daily?date="+today, nil, http.StatusOK), &daily)

	if daily.TotalSales != 12584 || daily.CustomerCount != 2 {
		t.Errorf("daily sales/customers = %v/%d, want 12584/2", daily.TotalSales, daily.CustomerCount)
	}
	found := false
	for _, perf := range daily.CastPerformance {
		if perf.CastID != castRow.ID {
			continue
		}
		found = true
		if perf.ShimeiCount != 2 || perf.DouhanCount != 1 || perf.DouhanBackIncome != 1500 {
			t.Errorf("cast performance = %+v", perf)
		}
	}
	if !found {
		t.Errorf("cast %s missing from daily performance", castRow.ID)
	}

	resp := doRaw(t, client, http.MethodGet, ts.URL+"/api/v1/reports/daily/export?date="+today+"&format=csv", nil)
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != "text/csv" {
		t.Errorf("csv export status/type = %d/%s", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
	resp.Body.Close()
	resp = doRaw(t, client, http.MethodGet, ts.URL+"/api/v1/reports/daily/export?date="+today+"&format=pdf", nil)
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != "application/pdf" {
		t.Errorf("pdf export status/type = %d/%s", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
	resp.Body.Close()

	doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/reports/daily/close", map[string]any{"date": today}, http.StatusOK)

	// Closed days reject further saves and closes untouched.
	env := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/reports/daily/save", map[string]any{"date": today}, http.StatusConflict)
	if env.Error == nil || env.Error.Code != "report_closed" {
		t.Errorf("save on closed day error = %+v", env.Error)
	}
	doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/reports/daily/close", map[string]any{"date": today}, http.StatusConflict)

	now := time.Now()
	var monthly struct {
		Summary struct {
			WorkingDays int     `json:"workingDays"`
			TotalSales  float64 `json:"totalSales"`
		} `json:"summary"`
		CastPerformance []struct {
			CastID string `json:"castId"`
		} `json:"castPerformance"`
	}
	decodeData(t, doJSON(t, client, http.MethodGet,
		fmt.Sprintf("%s/api/v1/reports/monthly?year=%d&month=%d", ts.URL, now.Year(), int(now.Month())), nil, http.StatusOK), &monthly)

	if monthly.Summary.WorkingDays < 1 || monthly.Summary.TotalSales < 12584 {
		t.Errorf("monthly summary = %+v", monthly.Summary)
	}
	found = false
	for _, perf := range monthly.CastPerformance {
		if perf.CastID == castRow.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("cast %s missing from monthly rollup", castRow.ID)
	}
}

func doJSON(t *testing.T, client *http.Client, method, url string, payload any, wantStatus int) envelope {
	t.Helper()
	resp := doRaw(t, client, method, url, payload)
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode envelope: %v", method, url, err)
	}
	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s: status %d, want %d (error: %+v)", method, url, resp.StatusCode, wantStatus, env.Error)
	}
	return env
}

func doRaw(t *testing.T, client *http.Client, method, url string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Buffer = bytes.NewBuffer(nil)
	if payload != nil {
		if err := json.NewEncoder(body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func mustFindMigrations(t *testing.T) string {
	t.Helper()
	for _, dir := range []string{"migrations", "../../../../migrations"} {
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
	}
	t.Fatal("migrations directory not found")
	return ""
}

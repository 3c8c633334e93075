package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"schedsim/internal/sched"
)

func newTestApp() *fiber.App {
	cfg := sched.DefaultConfig()
	cfg.MaxProcesses = 4
	return NewApp(NewSchedulerHandlerImpl(cfg))
}

func post(t *testing.T, app *fiber.App, path, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, data
}

const sjfBody = `{"processes":[
	{"pid":1,"arrival":0,"burst":7},
	{"pid":2,"arrival":2,"burst":4},
	{"pid":3,"arrival":4,"burst":1},
	{"pid":4,"arrival":5,"burst":4}]}`

func TestScheduleEndpoints(t *testing.T) {
	tests := []struct {
		path       string
		algorithms []string
	}{
		{"/api/v1/fcfs", []string{"fcfs"}},
		{"/api/v1/sjf", []string{"sjf"}},
		{"/api/v1/all", []string{"fcfs", "sjf"}},
	}
	app := newTestApp()
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := post(t, app, tt.path, sjfBody)
			if resp.StatusCode != fiber.StatusOK {
				t.Fatalf("status = %d, body %s", resp.StatusCode, body)
			}
			var got ScheduleResponse
			if err := json.Unmarshal(body, &got); err != nil {
				t.Fatal(err)
			}
			var names []string
			for _, r := range got.Results {
				names = append(names, r.Algorithm)
			}
			if !reflect.DeepEqual(names, tt.algorithms) {
				t.Fatalf("algorithms = %v, want %v", names, tt.algorithms)
			}
		})
	}
}

func TestScheduleSJFOrder(t *testing.T) {
	_, body := post(t, newTestApp(), "/api/v1/sjf", sjfBody)
	var got ScheduleResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatal(err)
	}
	var order []int
	for _, m := range got.Results[0].Metrics {
		order = append(order, m.PID)
	}
	if !reflect.DeepEqual(order, []int{1, 3, 2, 4}) {
		t.Fatalf("order = %v", order)
	}
	if !strings.Contains(string(body), `"kind":"Dispatch"`) {
		t.Fatalf("events should serialize kinds by name: %s", body)
	}
}

func TestScheduleErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed", `{"processes":`, fiber.StatusBadRequest},
		{"empty", `{"processes":[]}`, fiber.StatusUnprocessableEntity},
		{"zero burst", `{"processes":[{"pid":1,"arrival":0,"burst":0}]}`, fiber.StatusUnprocessableEntity},
		{"too many", `{"processes":[{"pid":1,"burst":1},{"pid":2,"burst":1},{"pid":3,"burst":1},{"pid":4,"burst":1},{"pid":5,"burst":1}]}`, fiber.StatusRequestEntityTooLarge},
	}
	app := newTestApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, app, "/api/v1/all", tt.body)
			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", resp.StatusCode, tt.status, body)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp, err := newTestApp().Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

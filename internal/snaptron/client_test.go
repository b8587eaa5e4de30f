package snaptron

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/langmead-lab/snaptron-mcp/internal/common"
)

func testLogger() *common.Logger {
	return common.NewSilentLogger()
}

func testClient(baseURL string) *Client {
	return NewClient(baseURL, 5*time.Second, testLogger())
}

func TestClient_Fetch_Success(t *testing.T) {
	const payload = "DataSource:Type\tsnaptron_id\nSRAv2:I\t5\n"
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		if r.Header.Get("X-Correlation-ID") == "" {
			t.Error("Expected X-Correlation-ID header on outbound request")
		}
		w.Write([]byte(payload))
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	body, err := client.Fetch(context.Background(), mockServer.URL+"/gtexv2/snaptron?regions=BRCA1&header=1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if body != payload {
		t.Errorf("Body not passed through verbatim: %q", body)
	}
}

func TestClient_Fetch_ErrorBodyPassthrough(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bad region format"))
	}))
	defer mockServer.Close()

	client := testClient(mockServer.URL)
	_, err := client.Fetch(context.Background(), mockServer.URL+"/gtexv2/snaptron")
	if err == nil {
		t.Fatal("Expected error for 400 response")
	}
	if !strings.Contains(err.Error(), "400") {
		t.Errorf("Error should carry status code: %v", err)
	}
	if !strings.Contains(err.Error(), "bad region format") {
		t.Errorf("Error should carry remote body: %v", err)
	}
}

func TestClient_Fetch_ConnectionRefused(t *testing.T) {
	client := testClient("http://localhost:1")
	_, err := client.Fetch(context.Background(), "http://localhost:1/gtexv2/snaptron")
	if err == nil {
		t.Fatal("Expected error for unreachable server")
	}
	if !strings.Contains(err.Error(), "snaptron request failed") {
		t.Errorf("Transport errors should be wrapped: %v", err)
	}
}

func TestClient_QueryURL_UsesBase(t *testing.T) {
	client := testClient("http://snaptron.cs.jhu.edu/")
	got := client.QueryURL("gtexv2", ResourceJunctions, Params{Regions: "BRCA1"})
	want := "http://snaptron.cs.jhu.edu/gtexv2/snaptron?regions=BRCA1&header=1"
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestClient_RegistryURL(t *testing.T) {
	client := testClient("http://snaptron.cs.jhu.edu")
	if got := client.RegistryURL(); got != "http://snaptron.cs.jhu.edu/snaptron/registry" {
		t.Errorf("Unexpected registry URL: %s", got)
	}
}

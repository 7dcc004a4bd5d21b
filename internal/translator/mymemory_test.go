package translator

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newMyMemoryTest(handler http.HandlerFunc) (*MyMemoryService, *httptest.Server) {
	ts := httptest.NewServer(handler)
	svc := &MyMemoryService{
		baseURL: ts.URL,
		client:  ts.Client(),
	}
	return svc, ts
}

func TestMyMemoryTranslate(t *testing.T) {
	var gotQuery, gotLangpair string
	svc, ts := newMyMemoryTest(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotLangpair = r.URL.Query().Get("langpair")
		fmt.Fprint(w, `{"responseData":{"translatedText":"Me dɔ wo","match":0.85},"responseStatus":200}`)
	})
	defer ts.Close()

	res, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "I love you"})
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if res.TranslatedText != "Me dɔ wo" {
		t.Errorf("translated = %q", res.TranslatedText)
	}
	if res.Confidence != 0.85 {
		t.Errorf("confidence = %v", res.Confidence)
	}
	if gotQuery != "I love you" {
		t.Errorf("query = %q", gotQuery)
	}
	if gotLangpair != "en|ak" {
		t.Errorf("langpair = %q, want en|ak", gotLangpair)
	}
}

func TestMyMemoryTranslateEmail(t *testing.T) {
	var gotEmail string
	svc, ts := newMyMemoryTest(func(w http.ResponseWriter, r *http.Request) {
		gotEmail = r.URL.Query().Get("de")
		fmt.Fprint(w, `{"responseData":{"translatedText":"ok","match":1},"responseStatus":200}`)
	})
	defer ts.Close()
	svc.email = "dev@example.com"

	if _, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "hi"}); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if gotEmail != "dev@example.com" {
		t.Errorf("de param = %q", gotEmail)
	}
}

func TestMyMemoryTranslateAPIError(t *testing.T) {
	svc, ts := newMyMemoryTest(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"responseStatus":403,"responseDetails":"invalid language pair"}`)
	})
	defer ts.Close()

	res, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "hi"})
	if err == nil {
		t.Fatal("Translate succeeded on API error")
	}
	if res.Error == "" {
		t.Error("result carries no error string")
	}
}

func TestMyMemoryLangPairOverride(t *testing.T) {
	var gotLangpair string
	svc, ts := newMyMemoryTest(func(w http.ResponseWriter, r *http.Request) {
		gotLangpair = r.URL.Query().Get("langpair")
		fmt.Fprint(w, `{"responseData":{"translatedText":"ok","match":1},"responseStatus":200}`)
	})
	defer ts.Close()

	req := TranslateRequest{Text: "hi", SourceLang: "fr", TargetLang: "en"}
	if _, err := svc.Translate(context.Background(), ServiceConfig{}, req); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if gotLangpair != "fr|en" {
		t.Errorf("langpair = %q, want fr|en", gotLangpair)
	}
}

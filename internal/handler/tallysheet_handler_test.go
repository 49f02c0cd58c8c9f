package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gambutlab/tallysheet/internal/handler"
	"github.com/gambutlab/tallysheet/internal/router"
	"github.com/gambutlab/tallysheet/internal/service"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	h := handler.NewTallysheetHandler(service.NewTallysheetService(), 64)
	srv := httptest.NewServer(router.New(h))
	t.Cleanup(srv.Close)
	return srv
}

func postForm(t *testing.T, baseURL string, fields map[string]string, files map[string][]byte) *http.Response {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	for k, v := range files {
		fw, err := mw.CreateFormFile(k, k+".jpg")
		if err != nil {
			t.Fatalf("create file field %s: %v", k, err)
		}
		fw.Write(v)
	}
	mw.Close()

	resp, err := http.Post(baseURL+"/generate-full-section", mw.FormDataContentType(), &body)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	return resp
}

func attachmentName(t *testing.T, resp *http.Response) string {
	t.Helper()
	_, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition"))
	if err != nil {
		t.Fatalf("parse content-disposition: %v", err)
	}
	return params["filename"]
}

func TestGenerateFullSectionEmptyForm(t *testing.T) {
	srv := newServer(t)

	resp := postForm(t, srv.URL, nil, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != docxContentType {
		t.Fatalf("unexpected content type %q", ct)
	}

	name := attachmentName(t, resp)
	if !strings.HasPrefix(name, "tallysheet_") || !strings.HasSuffix(name, ".docx") {
		t.Fatalf("unexpected attachment name %q", name)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if len(data) < 4 || string(data[:2]) != "PK" {
		t.Fatal("body is not a docx (zip) file")
	}
}

func TestGenerateFullSectionInvalidInteger(t *testing.T) {
	srv := newServer(t)

	resp := postForm(t, srv.URL, map[string]string{"banjir_lama_hari": "abc"}, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}

	var body struct {
		Detail []struct {
			Field string `json:"field"`
			Msg   string `json:"msg"`
		} `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Detail) != 1 {
		t.Fatalf("expected 1 error, got %d", len(body.Detail))
	}
	if body.Detail[0].Field != "banjir_lama_hari" {
		t.Fatalf("unexpected field %q", body.Detail[0].Field)
	}
	if !strings.Contains(body.Detail[0].Msg, "integer") {
		t.Fatalf("message does not name the expected kind: %q", body.Detail[0].Msg)
	}
}

func TestGenerateFullSectionCollectsAllErrors(t *testing.T) {
	srv := newServer(t)

	resp := postForm(t, srv.URL, map[string]string{
		"elevasi_lahan":    "high",
		"banjir_lama_hari": "5.5",
	}, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}

	var body struct {
		Detail []struct {
			Field string `json:"field"`
		} `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Detail) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(body.Detail))
	}
}

func TestGenerateFullSectionCorruptPhotoStillSucceeds(t *testing.T) {
	srv := newServer(t)

	resp := postForm(t, srv.URL, nil, map[string][]byte{
		"foto_tmat_1": []byte("not an image"),
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestGenerateSample(t *testing.T) {
	srv := newServer(t)

	resp, err := http.Get(srv.URL + "/generate-sample")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	name := attachmentName(t, resp)
	if !strings.HasPrefix(name, "tallysheet_sample_") {
		t.Fatalf("unexpected attachment name %q", name)
	}
}

func TestOutputFilenamesDoNotCollide(t *testing.T) {
	srv := newServer(t)

	r1 := postForm(t, srv.URL, nil, nil)
	defer r1.Body.Close()
	r2 := postForm(t, srv.URL, nil, nil)
	defer r2.Body.Close()

	n1, n2 := attachmentName(t, r1), attachmentName(t, r2)
	if n1 == n2 {
		t.Fatalf("two requests produced the same filename %q", n1)
	}
}

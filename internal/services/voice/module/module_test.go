package module

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"careerassist/internal/adapters/groq"
	modkit "careerassist/internal/modkit"
	"careerassist/internal/platform/config"
	phttp "careerassist/internal/platform/net/http"
)

type echoSTT struct{ got groq.Audio }

func (e *echoSTT) Transcribe(_ context.Context, a groq.Audio) (groq.Transcript, error) {
	e.got = a
	return groq.Transcript{Text: "எனக்கு வேலை வேண்டும்", Language: "tamil"}, nil
}

func newServer(t *testing.T, stt *echoSTT) *httptest.Server {
	t.Helper()
	m := New(modkit.Deps{Cfg: config.New()}, modkit.WithPorts(Ports{Transcriber: stt}))
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url string, fields map[string]string, audio []byte) (int, map[string]any) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	if audio != nil {
		fw, err := w.CreateFormFile("audio", "clip.m4a")
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		_, _ = fw.Write(audio)
	}
	_ = w.Close()

	resp, err := http.Post(url, w.FormDataContentType(), &body)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	var env map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, env
}

func TestTranscribeRoute(t *testing.T) {
	stt := &echoSTT{}
	srv := newServer(t, stt)

	code, env := post(t, srv.URL+"/voice/transcribe", map[string]string{"language": "ta"}, []byte("RIFF...."))
	if code != http.StatusOK {
		t.Fatalf("POST /voice/transcribe = %d (%v), want 200", code, env["error"])
	}
	data, _ := env["data"].(map[string]any)
	if data["language"] != "ta" || data["confidence"] != 0.9 || data["text"] != "எனக்கு வேலை வேண்டும்" {
		t.Fatalf("data = %v", data)
	}
	if stt.got.Filename != "clip.m4a" || string(stt.got.Data) != "RIFF...." || stt.got.Language != "ta" {
		t.Fatalf("audio = %+v", stt.got)
	}
}

func TestTranscribeRoute_MissingAudio(t *testing.T) {
	srv := newServer(t, &echoSTT{})

	code, env := post(t, srv.URL+"/voice/transcribe", map[string]string{"language": "ta"}, nil)
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("POST without audio = %d (%v), want 422", code, env["error"])
	}

	resp, err := http.Post(srv.URL+"/voice/transcribe", "application/json", bytes.NewBufferString(`{}`))
	if err != nil {
		t.Fatalf("POST json: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("POST json = %d, want 422", resp.StatusCode)
	}
}

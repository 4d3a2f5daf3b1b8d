package media_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/soapboxsocial/stories/pkg/conf"
	"github.com/soapboxsocial/stories/pkg/media"
)

func TestFileBackend(t *testing.T) {
	dir, err := os.MkdirTemp("", "media")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	fb := media.NewFileBackend(dir, "https://cdn.example.com/")
	ctx := context.Background()

	handle, err := fb.Store(ctx, []byte("png"))
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, handle))
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "png" {
		t.Fatalf("unexpected content %s", data)
	}

	url := fb.URL(handle)
	if url != "https://cdn.example.com/"+handle {
		t.Fatalf("unexpected url %s", url)
	}

	back, err := fb.Handle(url)
	if err != nil {
		t.Fatal(err)
	}

	if back != handle {
		t.Fatalf("%s does not match %s", back, handle)
	}

	err = fb.Remove(ctx, handle)
	if err != nil {
		t.Fatal(err)
	}

	_, err = os.Stat(filepath.Join(dir, handle))
	if !os.IsNotExist(err) {
		t.Fatal("file should be removed")
	}
}

func TestFileBackend_StoreUnavailable(t *testing.T) {
	fb := media.NewFileBackend("/does/not/exist", "")

	_, err := fb.Store(context.Background(), []byte("png"))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestHandleFromURL_ForeignURL(t *testing.T) {
	_, err := media.HandleFromURL("https://cdn.example.com", "https://elsewhere.com/a.png")
	if err == nil {
		t.Fatal("expected error")
	}

	if err.Error() != "url https://elsewhere.com/a.png is not served from https://cdn.example.com" {
		t.Fatalf("unexpected error %s", err)
	}
}

func TestNewStorage_Unknown(t *testing.T) {
	_, err := media.NewStorage(context.Background(), conf.MediaConf{Backend: "ftp"})
	if err == nil {
		t.Fatal("expected error")
	}
}
